// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpkdata

import (
	"bytes"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "go.chromium.org/luci/common/testing/assertions"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	Convey("Cursor", t, func() {
		Convey("ReadUint32", func() {
			Convey("little-endian", func() {
				c := NewCursor(bytes.NewReader([]byte{0x34, 0x12, 0xAA, 0x55}))
				v, err := c.ReadUint32()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 0x55AA1234)
				So(c.Consumed(), ShouldEqual, 4)
			})

			Convey("short read", func() {
				c := NewCursor(bytes.NewReader([]byte{0x34, 0x12}))
				_, err := c.ReadUint32()
				So(err, ShouldErrLike, io.ErrUnexpectedEOF)
				So(IOError.In(err), ShouldBeTrue)
			})
		})

		Convey("ReadUint16", func() {
			Convey("little-endian", func() {
				c := NewCursor(bytes.NewReader([]byte{0xFF, 0x7F}))
				v, err := c.ReadUint16()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 0x7FFF)
			})

			Convey("empty stream", func() {
				c := NewCursor(bytes.NewReader(nil))
				_, err := c.ReadUint16()
				So(IOError.In(err), ShouldBeTrue)
			})
		})

		Convey("ReadString", func() {
			Convey("null-terminated", func() {
				c := NewCursor(bytes.NewReader([]byte("sounds\x00beep\x00")))
				s, err := c.ReadString()
				So(err, ShouldBeNil)
				So(s, ShouldEqual, "sounds")
				s, err = c.ReadString()
				So(err, ShouldBeNil)
				So(s, ShouldEqual, "beep")
			})

			Convey("empty", func() {
				c := NewCursor(bytes.NewReader([]byte{0x00}))
				s, err := c.ReadString()
				So(err, ShouldBeNil)
				So(s, ShouldEqual, "")
			})

			Convey("stream end acts as terminator", func() {
				c := NewCursor(bytes.NewReader([]byte("trunc")))
				s, err := c.ReadString()
				So(err, ShouldBeNil)
				So(s, ShouldEqual, "trunc")

				// and again at EOF, the empty string
				s, err = c.ReadString()
				So(err, ShouldBeNil)
				So(s, ShouldEqual, "")
			})
		})

		Convey("ReadBytes", func() {
			Convey("exact", func() {
				c := NewCursor(bytes.NewReader([]byte{0x41, 0x42, 0x43}))
				buf, err := c.ReadBytes(2)
				So(err, ShouldBeNil)
				So(buf, ShouldResemble, []byte{0x41, 0x42})
				So(c.Consumed(), ShouldEqual, 2)
			})

			Convey("short read", func() {
				c := NewCursor(bytes.NewReader([]byte{0x41}))
				_, err := c.ReadBytes(2)
				So(err, ShouldErrLike, io.ErrUnexpectedEOF)
				So(IOError.In(err), ShouldBeTrue)
			})
		})
	})
}
