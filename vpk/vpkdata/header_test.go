// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpkdata

import (
	"bytes"
	"encoding/binary"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "go.chromium.org/luci/common/testing/assertions"
)

func rawHeader(words ...uint32) []byte {
	buf := &bytes.Buffer{}
	for _, w := range words {
		binary.Write(buf, binary.LittleEndian, w)
	}
	return buf.Bytes()
}

func TestHeader(t *testing.T) {
	t.Parallel()

	Convey("Header", t, func() {
		Convey("version 1", func() {
			c := NewCursor(bytes.NewReader(rawHeader(Magic, 1, 64)))
			h, err := ReadHeader(c)
			So(err, ShouldBeNil)
			So(h, ShouldResemble, Header{Signature: Magic, Version: 1, TreeLength: 64})
			So(h.Len(), ShouldEqual, 12)
			So(c.Consumed(), ShouldEqual, 12)
		})

		Convey("version 2 consumes the reserved words", func() {
			raw := rawHeader(Magic, 2, 64, 0xDEAD, 0xBEEF, 0, 0)
			// tree bytes begin right after the reserved words
			raw = append(raw, 't', 'x', 't', 0x00)

			c := NewCursor(bytes.NewReader(raw))
			h, err := ReadHeader(c)
			So(err, ShouldBeNil)
			So(h.Len(), ShouldEqual, 28)
			So(c.Consumed(), ShouldEqual, 28)

			s, err := c.ReadString()
			So(err, ShouldBeNil)
			So(s, ShouldEqual, "txt")
		})

		Convey("bad signature", func() {
			c := NewCursor(bytes.NewReader(rawHeader(0x4B435041, 1, 64)))
			_, err := ReadHeader(c)
			So(err, ShouldErrLike, "bad signature")
			So(FormatError.In(err), ShouldBeTrue)
		})

		Convey("bad version", func() {
			Convey("0", func() {
				_, err := ReadHeader(NewCursor(bytes.NewReader(rawHeader(Magic, 0, 64))))
				So(err, ShouldErrLike, "unsupported version: 0")
				So(FormatError.In(err), ShouldBeTrue)
			})

			Convey("3", func() {
				_, err := ReadHeader(NewCursor(bytes.NewReader(rawHeader(Magic, 3, 64))))
				So(err, ShouldErrLike, "unsupported version: 3")
				So(FormatError.In(err), ShouldBeTrue)
			})
		})

		Convey("short header", func() {
			c := NewCursor(bytes.NewReader(rawHeader(Magic, 1)))
			_, err := ReadHeader(c)
			So(err, ShouldErrLike, "reading tree length")
			So(IOError.In(err), ShouldBeTrue)
		})
	})
}
