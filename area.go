// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "github.com/ipmifru/frugo/log"

// areaVersion is the only version value the format defines for an info
// area: the low nibble is 1, the high nibble reserved as 0.
const areaVersion = 0x01

// encodeAreaBody assembles one info area (Chassis, Board or Product): a
// 2+len(headerExtra)-byte header (version, a length-in-blocks placeholder, and
// whatever extra header bytes the caller supplies), followed by fields in
// order, the 0xC1 terminator, zero padding out to a block boundary, and a
// trailing checksum byte. headerExtra is the header content after the
// version/length-placeholder pair (e.g. language code, or language code
// plus mfg-date for Board).
func encodeAreaBody(headerExtra []byte, fields []Field, source Source) ([]byte, error) {
	body := make([]byte, 2, 2+len(headerExtra)+16)
	body[0] = areaVersion
	body = append(body, headerExtra...)

	for i, f := range fields {
		enc, err := encodeField(f, source, i)
		if err != nil {
			return nil, err
		}
		body = append(body, enc...)
	}
	body = append(body, fieldTerminator)

	for (len(body)+1)%blockSize != 0 {
		body = append(body, 0x00)
	}

	nblocks := (len(body) + 1) / blockSize
	if nblocks > 0xFF {
		return nil, newErr(KindTooBig, source)
	}
	body[1] = byte(nblocks)
	body = append(body, checksum(body))
	return body, nil
}

// decodeAreaBody parses one info area out of data (which may hold trailing
// areas after this one). headerLen is the byte size of the fixed header
// (2 for version+length plus len(extra header bytes), i.e. 3 for
// Chassis/Product, 6 for Board). It returns the extra header bytes, the
// decoded field list (mandatory fields followed by custom fields, in wire
// order - the caller slices off the mandatory prefix it expects) and the
// area's total size in bytes (a multiple of blockSize). logger receives a
// Warnf for every check flags tolerates; it may be nil.
func decodeAreaBody(data []byte, source Source, headerLen int, flags *Flags, logger *log.Helper) (headerExtra []byte, fields []Field, areaLen int, err error) {
	if len(data) < 2 {
		return nil, nil, 0, newErr(KindTooSmall, source)
	}
	version := data[0]
	if version&0x0F != areaVersion {
		if !(flags != nil && flags.IgnoreAreaVersion) {
			return nil, nil, 0, newErr(KindAreaVersion, source)
		}
		logger.Warnf("%s: ignoring unexpected area version %#x", source, version)
	}
	nblocks := int(data[1])
	areaLen = nblocks * blockSize
	if areaLen == 0 || areaLen > len(data) {
		return nil, nil, 0, newErr(KindSizeMismatch, source)
	}
	areaData := data[:areaLen]
	if !verifyChecksum(areaData) {
		if !(flags != nil && flags.IgnoreAreaChecksum) {
			return nil, nil, 0, newErr(KindAreaChecksum, source)
		}
		logger.Warnf("%s: ignoring area checksum mismatch", source)
	}

	if headerLen < 2 || headerLen > areaLen {
		return nil, nil, 0, newErr(KindTooSmall, source)
	}
	headerExtra = append([]byte(nil), areaData[2:headerLen]...)

	pos := headerLen
	found := false
	for pos < len(areaData)-1 {
		if areaData[pos] == fieldTerminator {
			found = true
			break
		}
		f, n, ferr := decodeField(areaData[pos:len(areaData)-1], source, len(fields))
		if ferr != nil {
			return nil, nil, 0, ferr
		}
		fields = append(fields, f)
		pos += n
	}
	if !found {
		if !(flags != nil && flags.IgnoreAreaEOF) {
			return nil, nil, 0, newErr(KindNoTerminator, source)
		}
		logger.Warnf("%s: no field terminator found before end of area, ignoring", source)
	}
	return headerExtra, fields, areaLen, nil
}

// splitMandatory separates the first n fields (the mandatory ones) from
// the remainder (custom fields), padding with zero Field values if the
// area held fewer than n fields (tolerated so a hand-crafted or truncated
// area still decodes instead of panicking; no error reports the shortfall).
func splitMandatory(fields []Field, n int) (mandatory []Field, custom []Field) {
	mandatory = make([]Field, n)
	copy(mandatory, fields)
	if len(fields) > n {
		custom = append(custom, fields[n:]...)
	}
	return mandatory, custom
}
