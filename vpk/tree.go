// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpk

import (
	"strings"

	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/vpak/vpk/vpkdata"
)

// readTree parses the flattened directory tree into a.Directories.
//
// The tree is a three-level nested scan: extensions, then paths, then file
// names, each level a run of null-terminated strings closed by an empty
// string. Because the cursor reports "" at end-of-stream too, a truncated
// tree (or one whose final terminators were omitted) still ends cleanly at
// a level boundary.
func (a *Archive) readTree(c *vpkdata.Cursor) error {
	for {
		ext, err := c.ReadString()
		if err != nil {
			return errors.Annotate(err, "reading extension").Err()
		}
		if ext == "" {
			return nil
		}
		for {
			path, err := c.ReadString()
			if err != nil {
				return errors.Annotate(err, "reading path under %q", ext).Err()
			}
			if path == "" {
				break
			}
			// A fresh directory record per path token. Paths repeat across
			// extensions (and the root is written as a single space); they
			// are recorded as-is, in order, never merged.
			d := &Directory{Path: strings.TrimSpace(path)}
			a.Directories = append(a.Directories, d)
			for {
				name, err := c.ReadString()
				if err != nil {
					return errors.Annotate(err, "reading file name in %q", d.Path).Err()
				}
				if name == "" {
					break
				}
				e, err := a.readEntry(c, name, ext)
				if err != nil {
					return errors.Annotate(err, "reading entry %q in %q", name+"."+ext, d.Path).Err()
				}
				d.Entries = append(d.Entries, e)
			}
		}
	}
}

// readEntry parses the fixed metadata block (and any inline preload payload)
// which follows a file name in the tree.
func (a *Archive) readEntry(c *vpkdata.Cursor, name, ext string) (e *Entry, err error) {
	e = &Entry{arc: a, Name: name, Ext: ext}
	if e.CRC, err = c.ReadUint32(); err != nil {
		return nil, errors.Annotate(err, "crc").Err()
	}
	preloadSize, err := c.ReadUint16()
	if err != nil {
		return nil, errors.Annotate(err, "preload size").Err()
	}
	if e.ArchiveIndex, err = c.ReadUint16(); err != nil {
		return nil, errors.Annotate(err, "archive index").Err()
	}
	if e.Offset, err = c.ReadUint32(); err != nil {
		return nil, errors.Annotate(err, "offset").Err()
	}
	if e.Length, err = c.ReadUint32(); err != nil {
		return nil, errors.Annotate(err, "length").Err()
	}
	if e.Terminator, err = c.ReadUint16(); err != nil {
		return nil, errors.Annotate(err, "terminator").Err()
	}
	if preloadSize > 0 {
		if e.Preload, err = c.ReadBytes(int(preloadSize)); err != nil {
			return nil, errors.Annotate(err, "preload payload").Err()
		}
	}
	return e, nil
}
