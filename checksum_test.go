// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "testing"

func TestChecksumRoundTrip(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	cs := checksum(data)
	withChecksum := append(append([]byte{}, data...), cs)
	if !verifyChecksum(withChecksum) {
		t.Fatalf("checksum %x does not verify over %x", cs, withChecksum)
	}
}

func TestChecksumZeroData(t *testing.T) {
	if got := checksum(nil); got != 0 {
		t.Fatalf("checksum(nil) = %d, want 0", got)
	}
}

func TestVerifyChecksumDetectsCorruption(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	cs := checksum(data)
	withChecksum := append(append([]byte{}, data...), cs)
	withChecksum[0] ^= 0xFF
	if verifyChecksum(withChecksum) {
		t.Fatalf("verifyChecksum should have failed after corruption")
	}
}
