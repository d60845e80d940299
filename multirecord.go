// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "github.com/ipmifru/frugo/log"

// mrVersion is the only record-header format version this package writes
// or accepts without IgnoreRecordVersion.
const mrVersion = 2

// mrTypeManagementAccess is the record type dispatched to the Management
// Access decoder/encoder; every other type is handled as Raw.
const mrTypeManagementAccess = 0x03

// mrMaxPayload is the largest payload a record header can describe (the
// length byte is a single byte).
const mrMaxPayload = 0xFF

// RecordKind discriminates the Record tagged union.
type RecordKind int

// Record kinds.
const (
	KindManagementRecord RecordKind = iota
	KindRawRecord
)

// RawRecord is an unrecognized or user-authored multirecord whose payload
// this package does not interpret further.
type RawRecord struct {
	Type byte     `json:"type"`
	Enc  Encoding `json:"enc"` // EncText or EncBinary
	Data string   `json:"data"` // text, or hex if Enc == EncBinary
}

// Record is one entry of the multirecord area's linked list, holding
// either a ManagementRecord or a RawRecord depending on Kind.
type Record struct {
	Kind       RecordKind       `json:"kind"`
	Management ManagementRecord `json:"management,omitempty"`
	Raw        RawRecord        `json:"raw,omitempty"`
}

func encodeRecordPayload(r Record, index int) (recType byte, payload []byte, err error) {
	switch r.Kind {
	case KindManagementRecord:
		payload, err = encodeManagement(r.Management, index)
		return mrTypeManagementAccess, payload, err
	case KindRawRecord:
		switch r.Raw.Enc {
		case EncText:
			return r.Raw.Type, []byte(r.Raw.Data), nil
		case EncBinary:
			b, herr := hexToBin(r.Raw.Data, false)
			if herr != nil {
				return 0, nil, herr
			}
			return r.Raw.Type, b, nil
		default:
			return 0, nil, newErrAt(KindBadEnc, SourceMR, index)
		}
	default:
		return 0, nil, newErrAt(KindMgmtRecordBad, SourceMR, index)
	}
}

func decodeRecord(recType byte, payload []byte, index int) (Record, error) {
	if recType == mrTypeManagementAccess {
		m, err := decodeManagement(payload, index)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: KindManagementRecord, Management: m}, nil
	}
	enc := EncBinary
	allPrintable := true
	for _, b := range payload {
		if b < 0x20 || b > 0x7E {
			allPrintable = false
			break
		}
	}
	var val string
	if allPrintable {
		enc = EncText
		val = string(payload)
	} else {
		val = binToHex(payload)
	}
	return Record{Kind: KindRawRecord, Raw: RawRecord{Type: recType, Enc: enc, Data: val}}, nil
}

// encodeMRArea serializes the multirecord list. Saving an empty list
// fails with NoRecord: the format has no representation for a present-but-
// empty multirecord area.
func encodeMRArea(records []Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, newErr(KindNoRecord, SourceMR)
	}
	var out []byte
	lastHeaderOff := 0
	for i, r := range records {
		recType, payload, err := encodeRecordPayload(r, i)
		if err != nil {
			return nil, err
		}
		if len(payload) > mrMaxPayload {
			return nil, newErrAt(KindTooBig, SourceMR, i)
		}
		hdr := make([]byte, 5)
		hdr[0] = recType
		hdr[1] = mrVersion
		hdr[2] = byte(len(payload))
		hdr[3] = checksum(payload)
		hdr[4] = checksum(hdr[:4])

		lastHeaderOff = len(out)
		out = append(out, hdr...)
		out = append(out, payload...)
	}

	out[lastHeaderOff+1] |= 0x80
	out[lastHeaderOff+4] = checksum(out[lastHeaderOff : lastHeaderOff+4])

	// The MR area has no length field of its own, so its on-disk size
	// must already be block-aligned before the next area's offset is
	// computed - same rule as encodeInternalAreaFull.
	for len(out)%blockSize != 0 {
		out = append(out, 0x00)
	}
	return out, nil
}

// decodeMRArea parses the multirecord linked list starting at data[0],
// which holds the MR area as decodeFile slices it (from the file header's
// offset to the next area's start or end of file). Like the Internal Use
// area, the MR area has no length field of its own, so the end-of-list bit
// is what ends the list.
func decodeMRArea(data []byte, flags *Flags, logger *log.Helper) ([]Record, error) {
	var records []Record
	pos := 0
	for {
		if pos+5 > len(data) {
			return nil, newErrAt(KindTooSmall, SourceMR, len(records))
		}
		hdr := data[pos : pos+5]
		if hdr[1]&0x07 != mrVersion {
			if !(flags != nil && flags.IgnoreRecordVersion) {
				return nil, newErrAt(KindHeaderVersion, SourceMR, len(records))
			}
			logger.Warnf("mr[%d]: ignoring unexpected record version %#x", len(records), hdr[1]&0x07)
		}
		if checksum(hdr[:4]) != hdr[4] {
			if !(flags != nil && flags.IgnoreRecordHeaderChecksum) {
				return nil, newErrAt(KindHeaderChecksum, SourceMR, len(records))
			}
			logger.Warnf("mr[%d]: ignoring record header checksum mismatch", len(records))
		}
		length := int(hdr[2])
		if pos+5+length > len(data) {
			if flags != nil && flags.IgnoreMRDataLength && pos+5 <= len(data) {
				length = len(data) - pos - 5
				logger.Warnf("mr[%d]: truncating declared length to %d remaining bytes", len(records), length)
			} else {
				return nil, newErrAt(KindSizeMismatch, SourceMR, len(records))
			}
		}
		payload := data[pos+5 : pos+5+length]
		if checksum(payload) != hdr[3] {
			if !(flags != nil && flags.IgnoreRecordDataChecksum) {
				return nil, newErrAt(KindDataChecksum, SourceMR, len(records))
			}
			logger.Warnf("mr[%d]: ignoring record data checksum mismatch", len(records))
		}
		rec, err := decodeRecord(hdr[0], payload, len(records))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		pos += 5 + length

		if hdr[1]&0x80 != 0 {
			break
		}
		// No end-of-list bit: either another record header follows, or
		// this was meant to be the last record and what remains is
		// nothing but the trailing block-padding encodeMRArea appends.
		if pos >= len(data) || isZeroPadding(data[pos:]) {
			if flags != nil && flags.IgnoreMissingEOL {
				logger.Warnf("mr[%d]: no end-of-list record found, stopping at end of data", len(records))
				break
			}
			return nil, newErrAt(KindNoTerminator, SourceMR, len(records))
		}
	}
	return records, nil
}

// isZeroPadding reports whether b holds nothing but zero bytes, the shape
// of the block-alignment padding encodeMRArea appends after the last
// record.
func isZeroPadding(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
