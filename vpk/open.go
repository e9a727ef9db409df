// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpk

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/vpak/vpk/vpkdata"
)

// MultiPartMarker is the substring of a file name which marks the
// directory-only member of a multi-part archive (e.g. "pak01_dir.vpk").
// Detection is purely name-based; the header carries no in-band flag.
const MultiPartMarker = "_dir"

// Archive represents one loaded VPK archive.
type Archive struct {
	// Header is the parsed archive header.
	Header vpkdata.Header

	// Directories holds every directory record in on-disk encounter order.
	// The same path may appear more than once (once per extension); records
	// are never merged or sorted.
	Directories []*Directory

	path      string
	multiPart bool

	opts openOptionData
}

// Path returns the source file the archive was opened from.
func (a *Archive) Path() string { return a.path }

// MultiPart reports whether the archive is the directory-only member of a
// split archive.
func (a *Archive) MultiPart() bool { return a.multiPart }

// RemoveDirectory removes a directory record from the archive, reporting
// whether it was present. The loader never calls this; it exists for callers
// that post-process the tree before extraction.
func (a *Archive) RemoveDirectory(d *Directory) bool {
	for i, have := range a.Directories {
		if have == d {
			a.Directories = append(a.Directories[:i], a.Directories[i+1:]...)
			return true
		}
	}
	return false
}

// Walk invokes cb for every (directory, entry) pair in on-disk order.
//
// Walk never returns an error by itself, but will forward the error returned
// by `cb` (if any). Returning an error from cb immediately stops the walk.
func (a *Archive) Walk(cb func(d *Directory, e *Entry) error) error {
	for _, d := range a.Directories {
		for _, e := range d.Entries {
			if err := cb(d, e); err != nil {
				return err
			}
		}
	}
	return nil
}

type openOptionData struct {
	unpackBufferSize int
	multiPart        *bool
}

// OpenOption functions can be supplied to the Open function.
type OpenOption func(*openOptionData)

// WithUnpackBufferSize is an OpenOption factory which sets the size of the
// copy buffer UnpackTo uses per file. Default if unspecified is 32KB.
func WithUnpackBufferSize(size int) OpenOption {
	return func(o *openOptionData) {
		o.unpackBufferSize = size
	}
}

// WithMultiPart is an OpenOption which overrides the name-based multi-part
// detection. Useful for 'dir' files that were renamed on disk.
func WithMultiPart(val bool) OpenOption {
	return func(o *openOptionData) {
		o.multiPart = &val
	}
}

// Open opens and fully loads the VPK archive at path.
//
// It reads and validates the header, then parses the whole directory tree.
// Entry payloads are not touched; they are read lazily by Entry.ReadData.
// Loading is all-or-nothing: on any failure Open returns a nil Archive.
func Open(path string, options ...OpenOption) (*Archive, error) {
	opts := openOptionData{
		unpackBufferSize: 32 * 1024,
	}
	for _, o := range options {
		o(&opts)
	}

	a := &Archive{
		path:      path,
		multiPart: strings.Contains(filepath.Base(path), MultiPartMarker),
		opts:      opts,
	}
	if opts.multiPart != nil {
		a.multiPart = *opts.multiPart
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "opening archive").Tag(vpkdata.IOError).Err()
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if a.Header, err = vpkdata.ReadHeader(vpkdata.NewCursor(br)); err != nil {
		return nil, errors.Annotate(err, "reading header").Err()
	}

	tree := vpkdata.NewCursor(io.LimitReader(br, int64(a.Header.TreeLength)))
	if err := a.readTree(tree); err != nil {
		return nil, errors.Annotate(err, "reading directory tree").Err()
	}

	return a, nil
}
