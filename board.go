// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import (
	"time"

	"github.com/ipmifru/frugo/log"
)

// boardHeaderLen is the Board area's fixed header size: version (1),
// length-in-blocks (1), language code (1), mfg date/time (3).
const boardHeaderLen = 6

// boardDateUnspec is the wire value (0 minutes since fruEpoch) reserved to
// mean "manufacturing date unspecified".
const boardDateUnspec = 0

// BoardArea is the decoded Board Information Area.
type BoardArea struct {
	LangCode uint8     `json:"lang_code"`
	MfgDate  time.Time `json:"mfg_date"` // zero value means unspecified (encodes as 0x000000)

	// MfgDateAuto, when true, makes encode substitute the current UTC
	// time for MfgDate rather than using its stored value.
	MfgDateAuto bool `json:"mfg_date_auto,omitempty"`

	Manufacturer Field `json:"manufacturer"`
	ProductName  Field `json:"product_name"`
	SerialNo     Field `json:"serial_no"`
	PartNumber   Field `json:"part_number"`
	FRUFileID    Field `json:"fru_file_id"`

	Custom []Field `json:"custom,omitempty"`
}

// maxBoardMinutes is the largest minute count a 24-bit field can hold
// (2^24 - 1), bounding the Board timestamp to
// [fruEpoch, fruEpoch + (2^24-1) minutes] per invariant I4.
const maxBoardMinutes = 1<<24 - 1

func encodeBoardDate(t time.Time) ([3]byte, error) {
	if t.IsZero() {
		return [3]byte{}, nil
	}
	minutes := t.Sub(fruEpoch).Minutes()
	if minutes < 0 || minutes > maxBoardMinutes {
		return [3]byte{}, newErr(KindBoardDate, SourceBoard)
	}
	m := uint32(minutes)
	return [3]byte{byte(m), byte(m >> 8), byte(m >> 16)}, nil
}

func decodeBoardDate(b []byte) time.Time {
	minutes := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	if minutes == boardDateUnspec {
		return time.Time{}
	}
	return fruEpoch.Add(time.Duration(minutes) * time.Minute)
}

func (b *BoardArea) encode() ([]byte, error) {
	mfgDate := b.MfgDate
	if b.MfgDateAuto {
		mfgDate = time.Now().UTC()
	}
	date, err := encodeBoardDate(mfgDate)
	if err != nil {
		return nil, err
	}
	headerExtra := []byte{b.LangCode, date[0], date[1], date[2]}
	fields := append([]Field{b.Manufacturer, b.ProductName, b.SerialNo, b.PartNumber, b.FRUFileID}, b.Custom...)
	return encodeAreaBody(headerExtra, fields, SourceBoard)
}

func decodeBoardArea(data []byte, flags *Flags, logger *log.Helper) (BoardArea, int, error) {
	headerExtra, fields, areaLen, err := decodeAreaBody(data, SourceBoard, boardHeaderLen, flags, logger)
	if err != nil {
		return BoardArea{}, 0, err
	}
	mandatory, custom := splitMandatory(fields, 5)
	b := BoardArea{
		LangCode:     headerExtra[0],
		MfgDate:      decodeBoardDate(headerExtra[1:4]),
		Manufacturer: mandatory[0],
		ProductName:  mandatory[1],
		SerialNo:     mandatory[2],
		PartNumber:   mandatory[3],
		FRUFileID:    mandatory[4],
		Custom:       custom,
	}
	return b, areaLen, nil
}
