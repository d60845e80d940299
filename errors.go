// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "fmt"

// ErrorKind classifies the cause of a failing library call. It groups into
// input-shape, size, format, content, state, terminus and generic kinds, as
// grouped in the constant block below.
type ErrorKind int

// Error kinds.
const (
	// input shape
	KindNonHex ErrorKind = iota + 1
	KindNonPrint
	KindNotEven
	KindRange
	KindBadEnc
	KindAutoEnc

	// size
	KindTooSmall
	KindTooBig
	KindSizeMismatch

	// format
	KindHeaderVersion
	KindHeaderChecksum
	KindHeaderBadPointer
	KindDataChecksum
	KindAreaVersion
	KindAreaChecksum
	KindNoTerminator
	KindDuplicateArea
	KindBadAreaType
	KindAreaNotSupported

	// content
	KindNoField
	KindNoRecord
	KindNoData
	KindBadData
	KindMgmtRecordBad
	KindMRNotSupported
	KindBoardDate

	// state
	KindInit
	KindAreaEnabled
	KindAreaDisabled
	KindBadPosition
	KindNotEmpty

	// terminus - not a true failure, returned so callers can tell
	// "last record" from "more records remain".
	KindMREnd

	// generic - delegates the cause to an underlying error (I/O, etc).
	KindGeneric
)

var kindNames = map[ErrorKind]string{
	KindNonHex:           "NonHex",
	KindNonPrint:         "NonPrint",
	KindNotEven:          "NotEven",
	KindRange:            "Range",
	KindBadEnc:           "BadEnc",
	KindAutoEnc:          "AutoEnc",
	KindTooSmall:         "TooSmall",
	KindTooBig:           "TooBig",
	KindSizeMismatch:     "SizeMismatch",
	KindHeaderVersion:    "HeaderVersion",
	KindHeaderChecksum:   "HeaderChecksum",
	KindHeaderBadPointer: "HeaderBadPointer",
	KindDataChecksum:     "DataChecksum",
	KindAreaVersion:      "AreaVersion",
	KindAreaChecksum:     "AreaChecksum",
	KindNoTerminator:     "NoTerminator",
	KindDuplicateArea:    "DuplicateArea",
	KindBadAreaType:      "BadAreaType",
	KindAreaNotSupported: "AreaNotSupported",
	KindNoField:          "NoField",
	KindNoRecord:         "NoRecord",
	KindNoData:           "NoData",
	KindBadData:          "BadData",
	KindMgmtRecordBad:    "MgmtRecordBad",
	KindMRNotSupported:   "MRNotSupported",
	KindBoardDate:        "BoardDate",
	KindInit:             "Init",
	KindAreaEnabled:      "AreaEnabled",
	KindAreaDisabled:     "AreaDisabled",
	KindBadPosition:      "BadPosition",
	KindNotEmpty:         "NotEmpty",
	KindMREnd:            "MREnd",
	KindGeneric:          "Generic",
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Source names where a failure originated: one of the five areas, or a
// general/caller-level failure not tied to a specific area.
type Source int

// Error sources.
const (
	SourceGeneral Source = iota
	SourceCaller
	SourceInternal
	SourceChassis
	SourceBoard
	SourceProduct
	SourceMR
)

var sourceNames = map[Source]string{
	SourceGeneral:  "general",
	SourceCaller:   "caller",
	SourceInternal: "internal",
	SourceChassis:  "chassis",
	SourceBoard:    "board",
	SourceProduct:  "product",
	SourceMR:       "multirecord",
}

// String implements fmt.Stringer.
func (s Source) String() string {
	if n, ok := sourceNames[s]; ok {
		return n
	}
	return "unknown"
}

// AreaSource maps an AreaType to its matching error Source.
func AreaSource(a AreaType) Source {
	switch a {
	case AreaInternal:
		return SourceInternal
	case AreaChassis:
		return SourceChassis
	case AreaBoard:
		return SourceBoard
	case AreaProduct:
		return SourceProduct
	case AreaMR:
		return SourceMR
	default:
		return SourceGeneral
	}
}

// Error is the structured failure value returned by every fallible entry
// point in this package: it carries a Kind, the Source area or caller it
// relates to, and an Index pointing at the offending field or record
// (-1 if not applicable). This is the Go-idiomatic rendering of the
// source implementation's thread-local "last error" triple - threading an
// explicit *Error through return values instead of mutating per-thread
// state (see SPEC_FULL.md §7).
type Error struct {
	Kind   ErrorKind
	Source Source
	Index  int
	Cause  error // optional wrapped cause, e.g. an I/O error
}

// newErr builds an *Error with the given kind/source and no specific index.
func newErr(kind ErrorKind, source Source) *Error {
	return &Error{Kind: kind, Source: source, Index: -1}
}

// newErrAt builds an *Error pointing at a specific field/record index.
func newErrAt(kind ErrorKind, source Source, index int) *Error {
	return &Error{Kind: kind, Source: source, Index: index}
}

// wrapErr builds a KindGeneric *Error wrapping cause.
func wrapErr(source Source, cause error) *Error {
	return &Error{Kind: KindGeneric, Source: source, Index: -1, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("fru: %s (source=%s, index=%d)", e.Kind, e.Source, e.Index)
	}
	if e.Cause != nil {
		return fmt.Sprintf("fru: %s (source=%s): %v", e.Kind, e.Source, e.Cause)
	}
	return fmt.Sprintf("fru: %s (source=%s)", e.Kind, e.Source)
}

// Unwrap lets callers use errors.Is/errors.As against a wrapped Cause.
func (e *Error) Unwrap() error {
	return e.Cause
}
