// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package vpak implements a read-only decoder for Valve's pak ("VPK")
// archive container, the format used to ship game assets for Source engine
// titles. A VPK archive is either a single self-contained file, or a 'dir'
// file (e.g. "pak01_dir.vpk") holding only the directory tree, accompanied
// by numbered payload files ("pak01_000.vpk", "pak01_001.vpk", ...).
//
// It has a fairly basic format:
//   * header: magic (0x55AA1234, u32 LE), version (u32 LE, 1 or 2), and the
//     byte length of the directory tree (u32 LE). Version 2 headers carry
//     four additional reserved u32 words which this package consumes and
//     ignores.
//   * directory tree: a flattened three-level encoding of
//     extension -> path -> file name, each level a run of null-terminated
//     strings closed by an empty string. Every file node is followed by its
//     metadata (crc32, preload size, archive index, offset, length,
//     terminator) and, if the preload size is non-zero, that many bytes of
//     inline payload.
//   * payload data: either appended directly after the tree in the same
//     file (archive index 0x7FFF), or stored in one of the numbered sibling
//     files of a multi-part archive.
//
// Unlike ZIP or TAR, the tree groups files by extension first, and the same
// directory path may therefore appear several times (once per extension);
// this package preserves those duplicate records and their on-disk order
// rather than merging them.
//
// The decoder lives in the vpk package; low-level wire primitives live in
// vpk/vpkdata. Writing or repacking archives is out of scope, as is
// verification of the per-file crc32 (it is parsed and exposed, nothing
// more).
package vpak
