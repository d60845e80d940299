// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "testing"

func TestManagementAccessSystemNameRoundTrip(t *testing.T) {
	rec := Record{Kind: KindManagementRecord, Management: ManagementRecord{
		Subtype: SubtypeSystemName,
		Data:    "rack-01-node-02", // 15 chars, within [8,64]
	}}
	enc, err := encodeMRArea([]Record{rec})
	if err != nil {
		t.Fatalf("encodeMRArea error: %v", err)
	}
	got, err := decodeMRArea(enc, nil, nil)
	if err != nil {
		t.Fatalf("decodeMRArea error: %v", err)
	}
	if len(got) != 1 || got[0].Management.Subtype != SubtypeSystemName ||
		got[0].Management.Data != "rack-01-node-02" {
		t.Fatalf("got %+v", got)
	}
}

func TestManagementAccessSystemUUIDByteSwapRoundTrip(t *testing.T) {
	// Canonical UUID 01020304-0506-0708-090a-0b0c0d0e0f10.
	uuidHex := "0102030405060708090a0b0c0d0e0f10"
	rec := Record{Kind: KindManagementRecord, Management: ManagementRecord{
		Subtype: SubtypeSystemUUID,
		Data:    uuidHex,
	}}
	enc, err := encodeMRArea([]Record{rec})
	if err != nil {
		t.Fatalf("encodeMRArea error: %v", err)
	}
	// The on-wire payload (after the 5-byte header and the subtype byte)
	// should carry the SMBIOS byte-swapped form, not the canonical form.
	payload := enc[6:22]
	wantWire := []byte{0x04, 0x03, 0x02, 0x01, 0x06, 0x05, 0x08, 0x07, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	for i := range wantWire {
		if payload[i] != wantWire[i] {
			t.Fatalf("wire byte %d = %x, want %x", i, payload[i], wantWire[i])
		}
	}
	got, err := decodeMRArea(enc, nil, nil)
	if err != nil {
		t.Fatalf("decodeMRArea error: %v", err)
	}
	// The decoder renders the UUID as uppercase hex.
	wantData := "0102030405060708090A0B0C0D0E0F10"
	if got[0].Management.Data != wantData {
		t.Fatalf("got %q, want %q (swap should round-trip)", got[0].Management.Data, wantData)
	}
}

func TestManagementAccessRejectsOutOfRangeLength(t *testing.T) {
	rec := Record{Kind: KindManagementRecord, Management: ManagementRecord{
		Subtype: SubtypeSystemPing,
		Data:    "short", // below the 8-byte minimum
	}}
	if _, err := encodeMRArea([]Record{rec}); err == nil {
		t.Fatal("expected an error for a too-short SystemPing payload")
	}
}

func TestRawRecordFallbackTextVsBinary(t *testing.T) {
	recs := []Record{
		{Kind: KindRawRecord, Raw: RawRecord{Type: 0xC0, Enc: EncText, Data: "oem blob"}},
		{Kind: KindRawRecord, Raw: RawRecord{Type: 0xC1, Enc: EncBinary, Data: "DEADBEEF"}},
	}
	enc, err := encodeMRArea(recs)
	if err != nil {
		t.Fatalf("encodeMRArea error: %v", err)
	}
	got, err := decodeMRArea(enc, nil, nil)
	if err != nil {
		t.Fatalf("decodeMRArea error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Kind != KindRawRecord || got[0].Raw.Enc != EncText || got[0].Raw.Data != "oem blob" {
		t.Fatalf("record 0: got %+v", got[0])
	}
	if got[1].Kind != KindRawRecord || got[1].Raw.Enc != EncBinary || got[1].Raw.Data != "DEADBEEF" {
		t.Fatalf("record 1: got %+v", got[1])
	}
}

func TestMRAreaSetsEOLOnlyOnLastRecord(t *testing.T) {
	recs := []Record{
		{Kind: KindRawRecord, Raw: RawRecord{Type: 0xC0, Enc: EncText, Data: "first"}},
		{Kind: KindRawRecord, Raw: RawRecord{Type: 0xC0, Enc: EncText, Data: "second"}},
	}
	enc, err := encodeMRArea(recs)
	if err != nil {
		t.Fatalf("encodeMRArea error: %v", err)
	}
	if enc[1]&0x80 != 0 {
		t.Fatal("first record header has the EOL bit set, want only the last")
	}
	firstLen := int(enc[2])
	secondHdrOff := 5 + firstLen
	if enc[secondHdrOff+1]&0x80 == 0 {
		t.Fatal("last record header is missing the EOL bit")
	}
}

func TestMRAreaEmptyListFails(t *testing.T) {
	if _, err := encodeMRArea(nil); err == nil {
		t.Fatal("expected KindNoRecord for an empty record list")
	}
}

func TestMRAreaOutputIsBlockAligned(t *testing.T) {
	// A single record with a 1-byte payload: header (5) + payload (1) = 6
	// raw bytes, not a multiple of blockSize. The MR area has no length
	// field of its own, so the encoder must pad it out itself.
	rec := Record{Kind: KindRawRecord, Raw: RawRecord{Type: 0xC0, Enc: EncText, Data: "x"}}
	enc, err := encodeMRArea([]Record{rec})
	if err != nil {
		t.Fatalf("encodeMRArea error: %v", err)
	}
	if len(enc)%blockSize != 0 {
		t.Fatalf("encodeMRArea output is %d bytes, not block-aligned", len(enc))
	}
	got, err := decodeMRArea(enc, nil, nil)
	if err != nil {
		t.Fatalf("decodeMRArea error: %v", err)
	}
	if len(got) != 1 || got[0].Raw.Data != "x" {
		t.Fatalf("got %+v", got)
	}
}

func TestMRAreaDecodeDetectsHeaderChecksumCorruption(t *testing.T) {
	rec := Record{Kind: KindRawRecord, Raw: RawRecord{Type: 0xC0, Enc: EncText, Data: "x"}}
	enc, err := encodeMRArea([]Record{rec})
	if err != nil {
		t.Fatalf("encodeMRArea error: %v", err)
	}
	enc[4] ^= 0xFF // corrupt header checksum
	if _, err := decodeMRArea(enc, nil, nil); err == nil {
		t.Fatal("expected a header checksum error")
	}
	if _, err := decodeMRArea(enc, &Flags{IgnoreRecordHeaderChecksum: true}, nil); err != nil {
		t.Fatalf("IgnoreRecordHeaderChecksum should have tolerated this: %v", err)
	}
}

func TestMRAreaDecodeDetectsDataChecksumCorruption(t *testing.T) {
	rec := Record{Kind: KindRawRecord, Raw: RawRecord{Type: 0xC0, Enc: EncText, Data: "xyz"}}
	enc, err := encodeMRArea([]Record{rec})
	if err != nil {
		t.Fatalf("encodeMRArea error: %v", err)
	}
	enc[5] ^= 0xFF // corrupt first payload byte without touching the header
	if _, err := decodeMRArea(enc, nil, nil); err == nil {
		t.Fatal("expected a data checksum error")
	}
	if _, err := decodeMRArea(enc, &Flags{IgnoreRecordDataChecksum: true}, nil); err != nil {
		t.Fatalf("IgnoreRecordDataChecksum should have tolerated this: %v", err)
	}
}

func TestMRAreaDecodeMissingEOLFails(t *testing.T) {
	rec := Record{Kind: KindRawRecord, Raw: RawRecord{Type: 0xC0, Enc: EncText, Data: "x"}}
	enc, err := encodeMRArea([]Record{rec})
	if err != nil {
		t.Fatalf("encodeMRArea error: %v", err)
	}
	enc[1] &^= 0x80             // clear the EOL bit, simulating a truncated/corrupt area
	enc[4] = checksum(enc[0:4]) // keep the header checksum valid so only EOL is missing
	if _, err := decodeMRArea(enc, nil, nil); err == nil {
		t.Fatal("expected a missing-EOL error")
	}
	if _, err := decodeMRArea(enc, &Flags{IgnoreMissingEOL: true}, nil); err != nil {
		t.Fatalf("IgnoreMissingEOL should have tolerated this: %v", err)
	}
}
