// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpk

import (
	"io"
	"os"

	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/vpak/vpk/vpkdata"
)

// DirIndex is the reserved archive index meaning "the payload lives in the
// target container itself, immediately after the header and directory tree"
// rather than at an absolute offset in a payload-only sibling file.
const DirIndex uint16 = 0x7FFF

// Entry is the metadata for one packed file, plus the context needed to
// resolve its bytes. Entries are created during Open and never mutated by
// read operations.
type Entry struct {
	// arc is a borrowed reference to the owning archive, used for sibling
	// path and offset resolution.
	arc *Archive

	Name string
	Ext  string

	// CRC is the stored crc32 of the payload. It is parsed, not verified.
	CRC uint32

	// Preload holds the inline payload embedded in the tree section, if any.
	Preload []byte

	// ArchiveIndex selects which physical file holds the on-disk payload;
	// DirIndex means the target container file itself.
	ArchiveIndex uint16

	// Offset and Length locate the on-disk payload beyond the preload.
	Offset uint32
	Length uint32

	// Terminator is the trailing 16-bit field of the entry record. Reserved;
	// read but not interpreted.
	Terminator uint16
}

// FullName returns the entry's file name with its extension.
func (e *Entry) FullName() string {
	return e.Name + "." + e.Ext
}

// ReadData resolves and returns the entry's complete payload: the preload
// bytes (if any) followed by Length bytes read from the target container
// file. When Length is zero no file is opened at all, and the result is
// exactly the preload buffer.
//
// The target file is opened and closed per call; concurrent calls on
// distinct entries are safe.
func (e *Entry) ReadData() ([]byte, error) {
	if e.Length == 0 {
		return e.Preload, nil
	}

	buf := make([]byte, len(e.Preload)+int(e.Length))
	copy(buf, e.Preload)

	target := e.arc.path
	if e.arc.multiPart {
		var err error
		if target, err = e.arc.SiblingPath(e.ArchiveIndex); err != nil {
			return nil, errors.Annotate(err, "resolving payload container").Err()
		}
	}

	offset := int64(e.Offset)
	if e.ArchiveIndex == DirIndex {
		// Payload sits behind the header and tree of the target file; the
		// stored offset is relative to the end of the tree section.
		offset += int64(e.arc.Header.Len()) + int64(e.arc.Header.TreeLength)
	}

	f, err := os.Open(target)
	if err != nil {
		return nil, errors.Annotate(err, "opening payload container").Tag(vpkdata.IOError).Err()
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.Annotate(err, "seeking to payload").Tag(vpkdata.IOError).Err()
	}
	if _, err := io.ReadFull(f, buf[len(e.Preload):]); err != nil {
		return nil, errors.Annotate(err, "reading %d payload bytes at 0x%X of %q",
			e.Length, offset, target).Tag(vpkdata.IOError).Err()
	}
	return buf, nil
}

// Extract writes the entry's fully resolved payload to a new file at dest,
// truncating any existing content.
func (e *Entry) Extract(dest string) error {
	data, err := e.ReadData()
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0666); err != nil {
		return errors.Annotate(err, "writing %q", dest).Tag(vpkdata.IOError).Err()
	}
	return nil
}
