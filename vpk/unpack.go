// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpk

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/riannucci/vpak/vpk/vpkdata"
)

func ensureRoot(root string) error {
	st, err := os.Stat(root)
	if os.IsNotExist(err) {
		return errors.Annotate(os.MkdirAll(root, 0777), "making root dir").Err()
	}
	if err != nil {
		return err
	}
	if !st.IsDir() {
		return errors.Reason("%q is not a directory", root).Err()
	}
	f, err := os.Open(root)
	if err != nil {
		return err
	}
	finfos, err := f.Readdirnames(1)
	f.Close()
	if err != nil && err != io.EOF {
		return err
	}
	if len(finfos) != 0 {
		return errors.New("dir not empty")
	}
	return nil
}

func (a *Archive) unpackEntry(abs string, e *Entry, buf []byte) error {
	data, err := e.ReadData()
	if err != nil {
		return errors.Annotate(err, "resolving data").Err()
	}
	f, err := os.Create(abs)
	if err != nil {
		return errors.Annotate(err, "creating file").Tag(vpkdata.IOError).Err()
	}
	if _, err := io.CopyBuffer(f, bytes.NewReader(data), buf); err != nil {
		f.Close()
		return errors.Annotate(err, "writing file").Tag(vpkdata.IOError).Err()
	}
	return errors.Annotate(f.Close(), "closing file").Err()
}

// UnpackTo extracts the entire archive to the provided location.
//
// root must be either a non-existent path, or a path to an empty directory.
//
// Directory creation failures abort immediately. Per-entry failures are
// logged and extraction continues, so one corrupt or missing payload file
// doesn't discard everything else; if any entry failed, UnpackTo returns an
// error after the walk completes.
func (a *Archive) UnpackTo(ctx context.Context, root string) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return errors.Annotate(err, "making abspath").Err()
	}

	if err := ensureRoot(root); err != nil {
		return errors.Annotate(err, "checking root").Err()
	}

	// The same path may appear several times in a.Directories (once per
	// extension); create each destination directory only once.
	made := stringset.New(len(a.Directories))
	buf := make([]byte, a.opts.unpackBufferSize)

	hadError := false
	for _, d := range a.Directories {
		abs := filepath.Join(root, filepath.FromSlash(d.Path))
		if made.Add(abs) && d.Path != "" {
			if err := os.MkdirAll(abs, 0777); err != nil {
				// this immediately quits the unpack
				return errors.Annotate(err, "FATAL: making dir %q", d.Path).
					Tag(vpkdata.IOError).Err()
			}
		}
		for _, e := range d.Entries {
			err := a.unpackEntry(filepath.Join(abs, e.FullName()), e, buf)
			if err == nil {
				continue
			}
			if !hadError {
				logging.Errorf(ctx, "errors while unpacking to %q:", root)
				hadError = true
			}
			logging.Errorf(ctx, "  %s: %s", d.PathFor(e), err)
		}
	}
	if hadError {
		return errors.New("errors while unpacking (see log)")
	}
	return nil
}
