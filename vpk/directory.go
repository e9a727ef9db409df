// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpk

import (
	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
)

// Directory is one logical grouping of entries sharing a path prefix.
//
// A path is stored trimmed; the empty string denotes the archive root (the
// wire format writes the root as a single space). Entries appear in on-disk
// encounter order.
type Directory struct {
	Path    string
	Entries []*Entry
}

// PathFor joins the directory path and the entry's full name with '/'.
// Entries at the root join to just their full name.
func (d *Directory) PathFor(e *Entry) string {
	if d.Path == "" {
		return e.FullName()
	}
	return d.Path + "/" + e.FullName()
}

// RemoveEntry removes an entry from the directory, reporting whether it was
// present. The loader never calls this; it exists for callers that
// post-process the tree before extraction.
func (d *Directory) RemoveEntry(e *Entry) bool {
	for i, have := range d.Entries {
		if have == e {
			d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// Validate checks that no two entries in the directory share a full name.
// Well-formed archives never contain such duplicates within a single
// extension/path group; this catches trees that were manipulated after
// loading.
func (d *Directory) Validate() error {
	names := stringset.New(len(d.Entries))
	for _, e := range d.Entries {
		if !names.Add(e.FullName()) {
			return errors.Reason("duplicate entry %q in directory %q",
				e.FullName(), d.Path).Err()
		}
	}
	return nil
}
