// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "testing"

func TestAddCustomInsertsAtIndex(t *testing.T) {
	f := Init()
	if _, err := f.AddCustom(AreaChassis, -1, TextField("a")); err != nil {
		t.Fatalf("AddCustom(a) error: %v", err)
	}
	if _, err := f.AddCustom(AreaChassis, -1, TextField("c")); err != nil {
		t.Fatalf("AddCustom(c) error: %v", err)
	}
	// Insert "b" between the two existing entries.
	idx, err := f.AddCustom(AreaChassis, 1, TextField("b"))
	if err != nil {
		t.Fatalf("AddCustom(b, 1) error: %v", err)
	}
	if idx != 1 {
		t.Fatalf("got index %d, want 1", idx)
	}
	want := []string{"a", "b", "c"}
	if len(f.Chassis.Custom) != len(want) {
		t.Fatalf("got %d custom fields, want %d", len(f.Chassis.Custom), len(want))
	}
	for i, w := range want {
		if f.Chassis.Custom[i].Val != w {
			t.Fatalf("custom[%d] = %q, want %q", i, f.Chassis.Custom[i].Val, w)
		}
	}
}

func TestAddCustomIndexBeyondLengthAppends(t *testing.T) {
	f := Init()
	if _, err := f.AddCustom(AreaBoard, -1, TextField("only")); err != nil {
		t.Fatalf("AddCustom error: %v", err)
	}
	// Index 99 is well past the current length, so it should append
	// rather than error.
	idx, err := f.AddCustom(AreaBoard, 99, TextField("second"))
	if err != nil {
		t.Fatalf("AddCustom(99) error: %v", err)
	}
	if idx != 1 {
		t.Fatalf("got index %d, want 1", idx)
	}
	if len(f.Board.Custom) != 2 || f.Board.Custom[1].Val != "second" {
		t.Fatalf("got %+v", f.Board.Custom)
	}
}
