// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpk

import (
	"fmt"
	"path/filepath"

	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/vpak/vpk/vpkdata"
)

// SiblingExt is the extension of the numbered payload members of a
// multi-part archive.
const SiblingExt = ".vpk"

// dirSuffixLen is the length of the "_dir.vpk" suffix stripped from the
// directory-only member's name when deriving sibling names.
const dirSuffixLen = len(MultiPartMarker + SiblingExt)

// SiblingPath computes the path of the numbered payload file holding data
// for the given archive index, e.g. "pak01_dir.vpk" + 5 -> "pak01_005.vpk"
// in the same parent directory.
//
// It fails with a StateError if the archive is not multi-part, and with a
// FormatError if the source name is too short to carry the directory-member
// suffix.
func (a *Archive) SiblingPath(index uint16) (string, error) {
	if !a.multiPart {
		return "", errors.Reason("archive %q is not multi-part", a.path).
			Tag(vpkdata.StateError).Err()
	}
	base := filepath.Base(a.path)
	if a.path == "" || len(base) <= dirSuffixLen {
		return "", errors.Reason("cannot derive sibling names from %q", a.path).
			Tag(vpkdata.FormatError).Err()
	}
	name := fmt.Sprintf("%s_%03d%s", base[:len(base)-dirSuffixLen], index, SiblingExt)
	return filepath.Join(filepath.Dir(a.path), name), nil
}
