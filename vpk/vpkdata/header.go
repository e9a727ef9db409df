// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpkdata

import (
	"go.chromium.org/luci/common/errors"
)

// Magic is the signature at the beginning of every VPK archive.
const Magic uint32 = 0x55AA1234

// MaxVersion is the newest VPK version this package understands.
const MaxVersion uint32 = 2

// Header is the fixed-size prefix of a VPK archive.
type Header struct {
	Signature  uint32
	Version    uint32
	TreeLength uint32
}

// Len returns the on-disk byte length of the header: 12 for version 1, 28
// for version 2 (whose four reserved words are read and discarded). It is a
// pure function of Version.
func (h Header) Len() uint32 {
	if h.Version == 2 {
		return 28
	}
	return 12
}

// ReadHeader reads and validates an archive header from c, consuming the
// version 2 reserved words so that c is left positioned at the first byte of
// the directory tree.
func ReadHeader(c *Cursor) (h Header, err error) {
	if h.Signature, err = c.ReadUint32(); err != nil {
		return h, errors.Annotate(err, "reading signature").Err()
	}
	if h.Signature != Magic {
		return h, errors.Reason("bad signature: 0x%08X, expected 0x%08X",
			h.Signature, Magic).Tag(FormatError).Err()
	}
	if h.Version, err = c.ReadUint32(); err != nil {
		return h, errors.Annotate(err, "reading version").Err()
	}
	if h.Version < 1 || h.Version > MaxVersion {
		return h, errors.Reason("unsupported version: %d", h.Version).
			Tag(FormatError).Err()
	}
	if h.TreeLength, err = c.ReadUint32(); err != nil {
		return h, errors.Annotate(err, "reading tree length").Err()
	}
	if h.Version == 2 {
		// Four reserved u32 fields with no semantics for extraction.
		for i := 0; i < 4; i++ {
			if _, err = c.ReadUint32(); err != nil {
				return h, errors.Annotate(err, "reading reserved word %d", i).Err()
			}
		}
	}
	return h, nil
}
