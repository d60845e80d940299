// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import (
	"testing"
	"time"
)

func TestChassisAreaRoundTrip(t *testing.T) {
	c := ChassisArea{
		Type:       0x17, // rack mount chassis
		PartNumber: Field{Enc: EncText, Val: "CHS-1000"},
		SerialNo:   Field{Enc: EncText, Val: "SN00042"},
		Custom:     []Field{{Enc: EncText, Val: "extra"}},
	}
	enc, err := c.encode()
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if len(enc)%blockSize != 0 {
		t.Fatalf("area length %d is not block-aligned", len(enc))
	}
	got, n, err := decodeChassisArea(enc, nil, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if n != len(enc) {
		t.Fatalf("decoded length %d, want %d", n, len(enc))
	}
	if got.Type != c.Type || got.PartNumber.Val != c.PartNumber.Val ||
		got.SerialNo.Val != c.SerialNo.Val || len(got.Custom) != 1 ||
		got.Custom[0].Val != "extra" {
		t.Fatalf("got %+v", got)
	}
}

func TestChassisAreaChecksumCorruption(t *testing.T) {
	c := ChassisArea{PartNumber: EmptyField(), SerialNo: EmptyField()}
	enc, err := c.encode()
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	enc[len(enc)-1] ^= 0xFF
	if _, _, err := decodeChassisArea(enc, nil, nil); err == nil {
		t.Fatal("expected checksum error, got nil")
	}
	if _, _, err := decodeChassisArea(enc, &Flags{IgnoreAreaChecksum: true}, nil); err != nil {
		t.Fatalf("IgnoreAreaChecksum should have tolerated this: %v", err)
	}
}

func TestBoardAreaRoundTripWithDate(t *testing.T) {
	mfg := fruEpoch.Add(1000 * time.Minute)
	b := BoardArea{
		LangCode:     0,
		MfgDate:      mfg,
		Manufacturer: Field{Enc: EncText, Val: "Acme"},
		ProductName:  Field{Enc: EncText, Val: "Widget"},
		SerialNo:     Field{Enc: EncText, Val: "SN1"},
		PartNumber:   Field{Enc: EncText, Val: "PN1"},
		FRUFileID:    EmptyField(),
	}
	enc, err := b.encode()
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	got, _, err := decodeBoardArea(enc, nil, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !got.MfgDate.Equal(mfg) {
		t.Fatalf("got mfg date %v, want %v", got.MfgDate, mfg)
	}
	if got.Manufacturer.Val != "Acme" || got.ProductName.Val != "Widget" {
		t.Fatalf("got %+v", got)
	}
}

func TestBoardAreaUnspecifiedDateRoundTrips(t *testing.T) {
	b := BoardArea{
		Manufacturer: EmptyField(), ProductName: EmptyField(),
		SerialNo: EmptyField(), PartNumber: EmptyField(), FRUFileID: EmptyField(),
	}
	enc, err := b.encode()
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	got, _, err := decodeBoardArea(enc, nil, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !got.MfgDate.IsZero() {
		t.Fatalf("expected unspecified mfg date, got %v", got.MfgDate)
	}
}

func TestBoardAreaDateOutOfRangeRejected(t *testing.T) {
	b := BoardArea{MfgDate: fruEpoch.Add(-time.Minute)}
	if _, err := b.encode(); err == nil {
		t.Fatal("expected KindBoardDate error for a date before fruEpoch")
	}
	b2 := BoardArea{MfgDate: fruEpoch.Add((maxBoardMinutes + 1) * time.Minute)}
	if _, err := b2.encode(); err == nil {
		t.Fatal("expected KindBoardDate error for a date past the 24-bit minute range")
	}
}

func TestBoardAreaMfgDateAutoSubstitutesNow(t *testing.T) {
	b := BoardArea{
		MfgDateAuto:  true,
		Manufacturer: EmptyField(), ProductName: EmptyField(),
		SerialNo: EmptyField(), PartNumber: EmptyField(), FRUFileID: EmptyField(),
	}
	before := time.Now().UTC()
	enc, err := b.encode()
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	got, _, err := decodeBoardArea(enc, nil, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.MfgDate.Before(before.Add(-time.Minute)) {
		t.Fatalf("expected a timestamp near now, got %v (before %v)", got.MfgDate, before)
	}
}

func TestProductAreaRoundTrip(t *testing.T) {
	p := ProductArea{
		LangCode:     0,
		Manufacturer: Field{Enc: EncText, Val: "Acme"},
		ProductName:  Field{Enc: EncText, Val: "Gadget"},
		PartModelNo:  Field{Enc: EncText, Val: "PM-1"},
		Version:      Field{Enc: EncText, Val: "1.0"},
		SerialNo:     Field{Enc: EncText, Val: "SN2"},
		AssetTag:     Field{Enc: EncText, Val: "AT2"},
		FRUFileID:    EmptyField(),
		Custom:       []Field{{Enc: EncText, Val: "note"}},
	}
	enc, err := p.encode()
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	got, _, err := decodeProductArea(enc, nil, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.ProductName.Val != "Gadget" || got.AssetTag.Val != "AT2" ||
		len(got.Custom) != 1 || got.Custom[0].Val != "note" {
		t.Fatalf("got %+v", got)
	}
}

func TestAreaDecodeMissingTerminatorFails(t *testing.T) {
	c := ChassisArea{PartNumber: EmptyField(), SerialNo: EmptyField()}
	enc, err := c.encode()
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	// Overwrite every remaining byte after the header with non-terminator
	// padding so no 0xC1 terminator remains before the checksum.
	for i := chassisHeaderLen; i < len(enc)-1; i++ {
		enc[i] = 0x00
	}
	enc[len(enc)-1] = checksum(enc[:len(enc)-1])
	if _, _, err := decodeChassisArea(enc, nil, nil); err == nil {
		t.Fatal("expected KindNoTerminator error")
	}
	if _, _, err := decodeChassisArea(enc, &Flags{IgnoreAreaEOF: true}, nil); err != nil {
		t.Fatalf("IgnoreAreaEOF should have tolerated this: %v", err)
	}
}
