// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package fru implements the binary codec for IPMI Platform Management FRU
// (Field Replaceable Unit) Information Storage records, as defined by the
// IPMI FRU Information Storage Definition v1.0, rev 1.3.
//
// A decoded FRU instance is not safe for concurrent use: all mutation and
// all encode/decode entry points assume a single goroutine owns the
// instance at a time. Different instances may be used concurrently from
// different goroutines.
package fru

import "time"

// AreaType identifies one of the five areas a FRU file may carry. Values
// are deliberately equal to the byte offset of the matching pointer field
// in the 8-byte file header (see FRU.encode and decodeFile in file.go), so that a header
// can be indexed directly by AreaType.
type AreaType uint8

// The five area types, in file-header byte-offset order.
const (
	AreaInternal AreaType = 1
	AreaChassis  AreaType = 2
	AreaBoard    AreaType = 3
	AreaProduct  AreaType = 4
	AreaMR       AreaType = 5
)

var areaNames = map[AreaType]string{
	AreaInternal: "Internal",
	AreaChassis:  "Chassis",
	AreaBoard:    "Board",
	AreaProduct:  "Product",
	AreaMR:       "MultiRecord",
}

// String implements fmt.Stringer.
func (a AreaType) String() string {
	if s, ok := areaNames[a]; ok {
		return s
	}
	return "Unknown"
}

// areaCount is the number of areas tracked by Present/Order.
const areaCount = 5

// allAreas lists every area type in canonical (default) order.
var allAreas = [areaCount]AreaType{AreaInternal, AreaChassis, AreaBoard, AreaProduct, AreaMR}

// blockSize is the alignment unit ("block") used throughout the format:
// the file header encodes area offsets in blocks, and every area's encoded
// size is rounded up to a whole number of blocks.
const blockSize = 8

// fruEpoch is the zero point of the Board area's manufacturing-date field:
// 1996-01-01T00:00:00 UTC, per the IPMI FRU specification.
var fruEpoch = time.Date(1996, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxFileSize is the library's self-imposed cap on an encoded FRU file,
// relaxable with SaveOptions.IgnoreBig.
const maxFileSize = 64 * 1024

// FRU is the decoded, in-memory representation of a FRU Information Storage
// image. It owns every allocation reachable from it: the Internal string,
// the custom-field slices of Chassis/Board/Product, and the MR slice. There
// is no sharing between instances.
type FRU struct {
	Internal string `json:"internal,omitempty"` // uppercase hex string, even length; "" + !Present[Internal] means absent

	Chassis ChassisArea `json:"chassis"`
	Board   BoardArea   `json:"board"`
	Product ProductArea `json:"product"`
	MR      []Record    `json:"mr,omitempty"`

	// Present reports whether area a occupies a slot in Order (indexed by
	// a-1). Invariant I2: absent areas cluster at the front of Order, so
	// every slot of Order after a present area's slot is also present.
	Present [areaCount]bool `json:"present"`

	// Order is a permutation of the five area types giving on-disk
	// layout order (invariant I1).
	Order [areaCount]AreaType `json:"order"`
}

// Init returns a new FRU instance with every area absent and the areas in
// canonical order (Internal, Chassis, Board, Product, MR).
func Init() *FRU {
	f := &FRU{}
	f.Order = allAreas
	return f
}

// presentIndex returns the index of area in f.Present/implicit slot array.
func presentIndex(area AreaType) int {
	return int(area) - 1
}

// orderSlot returns the index of area within f.Order, or -1 if area does
// not appear there (which should never happen once Order is a full
// permutation, but callers defensively check).
func (f *FRU) orderSlot(area AreaType) int {
	for i, a := range f.Order {
		if a == area {
			return i
		}
	}
	return -1
}
