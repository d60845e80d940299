// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "strings"

// hexSeparators are the characters hexToBin skips between byte pairs (not
// between the two nibbles of one byte) when running in relaxed mode.
const hexSeparators = " -:."

// hex2byte decodes two hex digits into a byte. It fails with KindNonHex if
// either character is outside [0-9A-Fa-f].
func hex2byte(hi, lo byte) (byte, error) {
	hv, ok := hexNibble(hi)
	if !ok {
		return 0, newErr(KindNonHex, SourceCaller)
	}
	lv, ok := hexNibble(lo)
	if !ok {
		return 0, newErr(KindNonHex, SourceCaller)
	}
	return hv<<4 | lv, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// hexToBin converts a hex string to bytes. In strict mode the input must
// be exactly hex digits with an even length, failing with KindNotEven on
// an odd digit count and KindNonHex on any other character. In relaxed
// mode the separator set {' ', '-', ':', '.'} is silently skipped between
// byte pairs (never between the two nibbles of one byte).
func hexToBin(s string, relaxed bool) ([]byte, error) {
	if !relaxed {
		if len(s)%2 != 0 {
			return nil, newErr(KindNotEven, SourceCaller)
		}
		out := make([]byte, len(s)/2)
		for i := 0; i < len(out); i++ {
			b, err := hex2byte(s[2*i], s[2*i+1])
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return out, nil
	}

	var digits []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		// A separator inside a byte pair is kept, so hex2byte rejects it.
		if strings.IndexByte(hexSeparators, c) >= 0 && len(digits)%2 == 0 {
			continue
		}
		digits = append(digits, c)
	}
	if len(digits)%2 != 0 {
		return nil, newErr(KindNotEven, SourceCaller)
	}
	out := make([]byte, len(digits)/2)
	for i := 0; i < len(out); i++ {
		b, err := hex2byte(digits[2*i], digits[2*i+1])
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

const hexDigits = "0123456789ABCDEF"

// binToHex renders b as an uppercase hex string with no separators.
func binToHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[2*i] = hexDigits[v>>4]
		out[2*i+1] = hexDigits[v&0x0F]
	}
	return string(out)
}

// isHexString reports whether s is a valid strict hex string (even length,
// every character a hex digit). Used by the Binary field encoder and by
// SetSystemUUID; a separator such as the '-' in "12-34-56" makes it false.
func isHexString(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexNibble(s[i]); !ok {
			return false
		}
	}
	return true
}
