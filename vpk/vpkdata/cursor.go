// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpkdata

import (
	"encoding/binary"
	"io"
	"strings"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/iotools"
)

// Cursor is a sequential, forward-only reader over a VPK byte stream. It
// decodes the handful of primitive shapes the format is built from:
// little-endian fixed-width integers, null-terminated strings, and raw byte
// runs.
type Cursor struct {
	r       *iotools.CountingReader
	scratch [4]byte
}

// NewCursor returns a Cursor reading from r.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: &iotools.CountingReader{Reader: r}}
}

// Consumed returns the total number of bytes read so far.
func (c *Cursor) Consumed() int64 {
	return c.r.Count
}

// ReadUint32 reads a little-endian 32-bit value. A short read is an IOError.
func (c *Cursor) ReadUint32() (uint32, error) {
	if _, err := io.ReadFull(c.r, c.scratch[:4]); err != nil {
		return 0, errors.Annotate(err, "reading uint32").Tag(IOError).Err()
	}
	return binary.LittleEndian.Uint32(c.scratch[:4]), nil
}

// ReadUint16 reads a little-endian 16-bit value. A short read is an IOError.
func (c *Cursor) ReadUint16() (uint16, error) {
	if _, err := io.ReadFull(c.r, c.scratch[:2]); err != nil {
		return 0, errors.Annotate(err, "reading uint16").Tag(IOError).Err()
	}
	return binary.LittleEndian.Uint16(c.scratch[:2]), nil
}

// ReadString reads bytes until a null terminator is consumed, returning the
// accumulated string without the terminator. The end of the stream also ends
// the string: a Cursor positioned at EOF yields "", which the tree parser
// treats the same as an explicit terminator. Only genuine read failures
// produce an error.
func (c *Cursor) ReadString() (string, error) {
	sb := strings.Builder{}
	for {
		if _, err := io.ReadFull(c.r, c.scratch[:1]); err != nil {
			if err == io.EOF {
				return sb.String(), nil
			}
			return sb.String(), errors.Annotate(err, "reading string").Tag(IOError).Err()
		}
		if c.scratch[0] == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(c.scratch[0])
	}
}

// ReadBytes reads exactly n bytes. Anything short of n is an IOError.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.r, buf); err != nil {
		return nil, errors.Annotate(err, "reading %d bytes", n).Tag(IOError).Err()
	}
	return buf, nil
}
