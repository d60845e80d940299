// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

// Flags relaxes individual decode checks. The zero value is strict: every
// version, checksum and terminator mismatch is fatal. The only flag the
// encoder consults is IgnoreBig (set through SaveOptions); every other
// invariant violation on encode is always fatal.
type Flags struct {
	IgnoreFileVersion         bool
	IgnoreAreaVersion         bool
	IgnoreRecordVersion       bool
	IgnoreFileHeaderChecksum  bool
	IgnoreAreaChecksum        bool
	IgnoreRecordHeaderChecksum bool
	IgnoreRecordDataChecksum  bool
	IgnoreAreaEOF             bool
	IgnoreMissingEOL          bool
	IgnoreMRDataLength        bool
	IgnoreBig                 bool
}
