// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "testing"

func TestHexToBinStrict(t *testing.T) {
	got, err := hexToBin("DEADBEEF", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if len(got) != len(want) {
		t.Fatalf("got %x, want %x", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %x, want %x", got, want)
		}
	}
}

func TestHexToBinStrictOddLength(t *testing.T) {
	_, err := hexToBin("ABC", false)
	if e, ok := err.(*Error); !ok || e.Kind != KindNotEven {
		t.Fatalf("expected KindNotEven, got %v", err)
	}
}

func TestHexToBinStrictNonHex(t *testing.T) {
	_, err := hexToBin("ZZ", false)
	if e, ok := err.(*Error); !ok || e.Kind != KindNonHex {
		t.Fatalf("expected KindNonHex, got %v", err)
	}
}

func TestHexToBinRelaxedSkipsSeparators(t *testing.T) {
	got, err := hexToBin("DE-AD:BE.EF", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := binToHex([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if binToHex(got) != want {
		t.Fatalf("got %s, want %s", binToHex(got), want)
	}
}

func TestBinToHexUppercaseNoSeparators(t *testing.T) {
	got := binToHex([]byte{0x01, 0xab, 0xFF})
	if got != "01ABFF" {
		t.Fatalf("got %q", got)
	}
}

func TestIsHexString(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0A1B", true},
		{"0A1", false},  // odd length
		{"0A1G", false}, // non-hex
		{"", true},
	}
	for _, c := range cases {
		if got := isHexString(c.in); got != c.want {
			t.Errorf("isHexString(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
