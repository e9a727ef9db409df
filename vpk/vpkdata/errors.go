// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package vpkdata

import (
	"go.chromium.org/luci/common/errors"
)

// These tags classify every error produced by the decoder. They survive
// errors.Annotate, so callers can check the kind of a failure at any level
// with e.g. vpkdata.FormatError.In(err).
var (
	// FormatError marks data that does not conform to the VPK layout: a bad
	// signature, an unsupported version, or a 'dir' file name too short to
	// derive sibling names from.
	FormatError = errors.BoolTag{Key: errors.NewTagKey("vpk: archive format error")}

	// IOError marks failures of the underlying byte source, including short
	// reads of fixed-width fields.
	IOError = errors.BoolTag{Key: errors.NewTagKey("vpk: io error")}

	// StateError marks operations invoked on an archive that does not
	// support them, such as sibling resolution on a single-part archive.
	StateError = errors.BoolTag{Key: errors.NewTagKey("vpk: state error")}
)
