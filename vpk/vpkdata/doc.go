// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package vpkdata implements IO routines for reading the low-level chunks of
// the VPK format: the little-endian wire cursor, the versioned archive
// header, and the error kinds shared by the whole decoder.
package vpkdata
