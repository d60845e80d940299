// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "github.com/ipmifru/frugo/log"

// internalAreaVersion is the only version value the format defines for the
// Internal Use area.
const internalAreaVersion = 0x01

// The Internal Use area has no internal structure beyond a version byte:
// its length is implied by the offset of the next present area (or end of
// file), not self-described, so encode/decode operate on an already-sized
// slice handed to them by the file assembler.

// encodeInternalArea renders data as a version byte followed by the raw
// payload; encodeInternalAreaFull pads the result to a block boundary.
func encodeInternalArea(data []byte) []byte {
	out := make([]byte, 1+len(data))
	out[0] = internalAreaVersion
	copy(out[1:], data)
	return out
}

// encodeInternalAreaFull converts hexStr (the decoded model's hex
// representation) to raw bytes, prepends the version byte, and pads with
// zeros to a block boundary - the Internal Use area has no length field
// of its own, so its on-disk size must already be block-aligned before
// the next area's offset is computed.
func encodeInternalAreaFull(hexStr string) ([]byte, error) {
	raw, err := hexToBin(hexStr, false)
	if err != nil {
		return nil, wrapErr(SourceInternal, err)
	}
	data := encodeInternalArea(raw)
	for len(data)%blockSize != 0 {
		data = append(data, 0x00)
	}
	return data, nil
}

// decodeInternalArea strips the version byte from a block of length
// areaLen starting at data[0], returning the opaque payload as a hex
// string.
func decodeInternalArea(data []byte, areaLen int, flags *Flags, logger *log.Helper) (string, error) {
	if areaLen < 1 || areaLen > len(data) {
		return "", newErr(KindTooSmall, SourceInternal)
	}
	if data[0]&0x0F != internalAreaVersion {
		if !(flags != nil && flags.IgnoreAreaVersion) {
			return "", newErr(KindAreaVersion, SourceInternal)
		}
		logger.Warnf("%s: ignoring unexpected area version %#x", SourceInternal, data[0])
	}
	return binToHex(data[1:areaLen]), nil
}
