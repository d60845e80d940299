// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import (
	"encoding/json"
	"strings"
)

// Encoding selects how a Field's value is represented on the wire. The
// four "real" encodings map 1:1 to the type/length byte's 2-bit encoding
// nibble. Empty, Auto and Preserve are meta-encodings with no nibble of
// their own: Auto and Preserve are API-level inputs to the encoder only,
// and Empty marks a present but zero-length field.
type Encoding uint8

// Real, on-wire encodings - values match the IPMI type/length byte's
// 2-bit encoding nibble exactly.
const (
	EncBinary  Encoding = 0
	EncBCDPlus Encoding = 1
	EncSixBit  Encoding = 2
	EncText    Encoding = 3
)

// Meta-encodings. Auto and Preserve are API-level selectors resolved by the
// encoder before any byte is written and are never returned from a
// decoder. Empty encodes as a bare 0x00 type/length byte, and decodeField
// returns it for any zero-length field.
const (
	EncEmpty Encoding = 0x80 + iota
	EncAuto
	EncPreserve
)

func (e Encoding) isReal() bool {
	return e == EncBinary || e == EncBCDPlus || e == EncSixBit || e == EncText
}

var encodingNames = map[Encoding]string{
	EncBinary:   "binary",
	EncBCDPlus:  "bcdplus",
	EncSixBit:   "6bit",
	EncText:     "text",
	EncEmpty:    "empty",
	EncAuto:     "auto",
	EncPreserve: "preserve",
}

// String implements fmt.Stringer.
func (e Encoding) String() string {
	if s, ok := encodingNames[e]; ok {
		return s
	}
	return "unknown"
}

// fieldMaxPayload is the largest encoded payload length a single field can
// carry: the type/length byte's low 6 bits (invariant I3).
const fieldMaxPayload = 0x3F

// fieldTerminator is the type/length byte that ends a mandatory/custom
// field list: Text encoding, length 1 (0xC1). Real Text fields of length
// 1 are padded to length 2 on encode precisely so they cannot collide
// with this value (spec Open Question 1).
const fieldTerminator = byte(EncText)<<6 | 1

var encodingValues = map[string]Encoding{
	"binary":   EncBinary,
	"bcdplus":  EncBCDPlus,
	"6bit":     EncSixBit,
	"text":     EncText,
	"empty":    EncEmpty,
	"auto":     EncAuto,
	"preserve": EncPreserve,
}

// MarshalJSON renders e as its lowercase name (e.g. "text"), so JSON
// templates stay human-editable.
func (e Encoding) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON parses the lowercase name produced by MarshalJSON.
func (e *Encoding) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := encodingValues[strings.ToLower(s)]
	if !ok {
		return newErr(KindBadEnc, SourceCaller)
	}
	*e = v
	return nil
}

// Field is a value-with-encoding pair: one info-area field.
type Field struct {
	Enc Encoding `json:"enc"`
	Val string   `json:"val"`
}

// EmptyField returns a present-but-zero-length field.
func EmptyField() Field { return Field{Enc: EncEmpty} }

// TextField returns a field that will be encoded as Text.
func TextField(val string) Field { return Field{Enc: EncText, Val: val} }

// AutoField returns a field whose encoding is chosen by the encoder (see
// classifyAuto for the selection order).
func AutoField(val string) Field { return Field{Enc: EncAuto, Val: val} }

// SetFieldBinary builds a Binary field from raw bytes, the parallel
// raw-bytes entry point resolving spec Open Question 2 (Binary's `Val` is
// a hex string at the API boundary; this is how callers avoid hand
// hex-encoding their own data).
func SetFieldBinary(data []byte) Field {
	return Field{Enc: EncBinary, Val: binToHex(data)}
}

// encodeField resolves f's encoding (Auto/Preserve/Empty/real) and returns
// the on-wire type/length byte followed by the payload.
func encodeField(f Field, source Source, index int) ([]byte, error) {
	switch f.Enc {
	case EncEmpty:
		return []byte{0x00}, nil
	case EncAuto:
		return encodeAuto(f.Val, source, index)
	case EncPreserve:
		// A non-real current encoding is treated as Auto.
		return encodeField(Field{Enc: EncAuto, Val: f.Val}, source, index)
	case EncBinary:
		return encodeBinary(f.Val, source, index)
	case EncBCDPlus:
		return encodeBCDPlus(f.Val, source, index)
	case EncSixBit:
		return encodeSixBit(f.Val, source, index)
	case EncText:
		return encodeText(f.Val, source, index)
	default:
		return nil, newErrAt(KindBadEnc, source, index)
	}
}

// classifyAuto picks the most restrictive of Binary/BCD+/6-bit/Text, in
// that order, that can hold every character of val: Binary if every
// character is a hex digit, else BCD+ if every character is in the BCD+
// set, else 6-bit if every character is in 6-bit ASCII's range, else Text.
func classifyAuto(val string) Encoding {
	allHex, allBCD, allSix := true, true, true
	for i := 0; i < len(val); i++ {
		c := val[i]
		if _, ok := hexNibble(c); !ok {
			allHex = false
		}
		if strings.IndexByte(bcdPlusChars, c) < 0 {
			allBCD = false
		}
		if c < sixBitBase || c > sixBitMax {
			allSix = false
		}
	}
	switch {
	case allHex:
		return EncBinary
	case allBCD:
		return EncBCDPlus
	case allSix:
		return EncSixBit
	default:
		return EncText
	}
}

// encodeAuto classifies val (see classifyAuto) and encodes it with that
// single encoding - there is no fallback to a looser encoding if the
// chosen one turns out not to fit (e.g. an odd-length run of hex digits
// classifies as Binary and fails there rather than retrying as BCD+).
func encodeAuto(val string, source Source, index int) ([]byte, error) {
	if val == "" {
		return []byte{0x00}, nil
	}
	for i := 0; i < len(val); i++ {
		if val[i] < 0x20 || val[i] > 0x7E {
			return nil, newErrAt(KindNonPrint, source, index)
		}
	}
	switch classifyAuto(val) {
	case EncBinary:
		return encodeBinary(val, source, index)
	case EncBCDPlus:
		return encodeBCDPlus(val, source, index)
	case EncSixBit:
		return encodeSixBit(val, source, index)
	default:
		return encodeText(val, source, index)
	}
}

func encodePayload(enc Encoding, payload []byte, source Source, index int) ([]byte, error) {
	n := len(payload)
	if n == 0 {
		return []byte{0x00}, nil
	}
	if n == 1 && enc == EncText {
		// Open Question 1: pad a length-1 Text field to length 2 so it
		// cannot collide with the 0xC1 terminator.
		payload = append(payload, 0x00)
		n = 2
	}
	if n > fieldMaxPayload {
		return nil, newErrAt(KindTooBig, source, index)
	}
	out := make([]byte, 1+n)
	out[0] = byte(enc)<<6 | byte(n)
	copy(out[1:], payload)
	return out, nil
}

func encodeBinary(val string, source Source, index int) ([]byte, error) {
	if !isHexString(val) {
		if len(val)%2 != 0 {
			return nil, newErrAt(KindNotEven, source, index)
		}
		return nil, newErrAt(KindNonHex, source, index)
	}
	payload, err := hexToBin(val, false)
	if err != nil {
		return nil, err
	}
	return encodePayload(EncBinary, payload, source, index)
}

var bcdPlusChars = "0123456789 -."

func encodeBCDPlus(val string, source Source, index int) ([]byte, error) {
	for i := 0; i < len(val); i++ {
		if strings.IndexByte(bcdPlusChars, val[i]) < 0 {
			return nil, newErrAt(KindRange, source, index)
		}
	}
	nbytes := (len(val) + 1) / 2
	payload := make([]byte, nbytes)
	for i := 0; i < len(val); i++ {
		nibble := bcdPlusNibble(val[i])
		if i%2 == 0 {
			payload[i/2] |= nibble << 4
		} else {
			payload[i/2] |= nibble
		}
	}
	// An odd-length value leaves the low nibble of the last byte unset
	// (0x0), which decodes back to '0' - per spec, such trailing content
	// is a space, so pad odd lengths with a trailing space nibble (0xA)
	// instead, keeping round-trip correct for reconstructed values.
	if len(val)%2 != 0 {
		payload[nbytes-1] |= 0x0A
	}
	return encodePayload(EncBCDPlus, payload, source, index)
}

func bcdPlusNibble(c byte) byte {
	switch c {
	case ' ':
		return 0xA
	case '-':
		return 0xB
	case '.':
		return 0xC
	default:
		return c - '0'
	}
}

const sixBitBase = 0x20
const sixBitMax = 0x5F

func encodeSixBit(val string, source Source, index int) ([]byte, error) {
	for i := 0; i < len(val); i++ {
		if val[i] < sixBitBase || val[i] > sixBitMax {
			return nil, newErrAt(KindRange, source, index)
		}
	}
	n := len(val)
	nbytes := (n*3 + 3) / 4
	payload := make([]byte, nbytes)
	var acc uint32
	var nbits uint
	pos := 0
	for i := 0; i < n; i++ {
		v := uint32(val[i]-sixBitBase) & 0x3F
		acc |= v << nbits
		nbits += 6
		for nbits >= 8 {
			payload[pos] = byte(acc)
			pos++
			acc >>= 8
			nbits -= 8
		}
	}
	if nbits > 0 && pos < nbytes {
		payload[pos] = byte(acc)
	}
	return encodePayload(EncSixBit, payload, source, index)
}

func encodeText(val string, source Source, index int) ([]byte, error) {
	for i := 0; i < len(val); i++ {
		if val[i] < 0x20 || val[i] > 0x7E {
			return nil, newErrAt(KindNonPrint, source, index)
		}
	}
	return encodePayload(EncText, []byte(val), source, index)
}

// decodeField decodes one field starting at data[0]. It returns the
// decoded field and the number of bytes consumed (1 + payload length).
// Callers must check for the 0xC1 terminator before calling decodeField.
func decodeField(data []byte, source Source, index int) (Field, int, error) {
	if len(data) == 0 {
		return Field{}, 0, newErrAt(KindTooSmall, source, index)
	}
	typelen := data[0]
	enc := Encoding(typelen >> 6)
	length := int(typelen & fieldMaxPayload)
	if 1+length > len(data) {
		return Field{}, 0, newErrAt(KindTooSmall, source, index)
	}
	if length == 0 {
		return Field{Enc: EncEmpty}, 1, nil
	}
	payload := data[1 : 1+length]
	var val string
	var err error
	switch enc {
	case EncBinary:
		val = binToHex(payload)
	case EncBCDPlus:
		val = decodeBCDPlus(payload)
	case EncSixBit:
		val = decodeSixBit(payload)
	case EncText:
		val, err = decodeText(payload, source, index)
	default:
		return Field{}, 0, newErrAt(KindBadEnc, source, index)
	}
	if err != nil {
		return Field{}, 0, err
	}
	return Field{Enc: enc, Val: val}, 1 + length, nil
}

func cutTrailingSpaces(s string) string {
	return strings.TrimRight(s, " ")
}

func decodeBCDPlus(payload []byte) string {
	out := make([]byte, len(payload)*2)
	for i := range out {
		var nibble byte
		if i%2 == 0 {
			nibble = payload[i/2] >> 4
		} else {
			nibble = payload[i/2] & 0x0F
		}
		switch {
		case nibble <= 9:
			out[i] = '0' + nibble
		case nibble == 0xA:
			out[i] = ' '
		case nibble == 0xB:
			out[i] = '-'
		case nibble == 0xC:
			out[i] = '.'
		default:
			out[i] = '?'
		}
	}
	return cutTrailingSpaces(string(out))
}

func decodeSixBit(payload []byte) string {
	n := (len(payload) * 4) / 3
	out := make([]byte, n)
	var acc uint32
	var nbits uint
	pos := 0
	for i := 0; i < n; i++ {
		for nbits < 6 && pos < len(payload) {
			acc |= uint32(payload[pos]) << nbits
			pos++
			nbits += 8
		}
		v := byte(acc & 0x3F)
		acc >>= 6
		nbits -= 6
		out[i] = v + sixBitBase
	}
	return cutTrailingSpaces(string(out))
}

func decodeText(payload []byte, source Source, index int) (string, error) {
	// A length-2 payload ending in NUL is a single character that
	// encodePayload padded away from the 0xC1 terminator.
	if len(payload) == 2 && payload[1] == 0x00 {
		payload = payload[:1]
	}
	for _, b := range payload {
		if b < 0x20 || b > 0x7E {
			return "", newErrAt(KindNonPrint, source, index)
		}
	}
	return string(payload), nil
}
