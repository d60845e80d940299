// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "github.com/ipmifru/frugo/log"

// chassisHeaderLen is the Chassis area's fixed header size: version (1),
// length-in-blocks (1), chassis type (1).
const chassisHeaderLen = 3

// ChassisArea is the decoded Chassis Information Area.
type ChassisArea struct {
	Type uint8 `json:"type"` // IPMI chassis type enumeration (Table 16-6 family)

	PartNumber Field `json:"part_number"`
	SerialNo   Field `json:"serial_no"`

	Custom []Field `json:"custom,omitempty"`
}

func (c *ChassisArea) encode() ([]byte, error) {
	fields := append([]Field{c.PartNumber, c.SerialNo}, c.Custom...)
	return encodeAreaBody([]byte{c.Type}, fields, SourceChassis)
}

func decodeChassisArea(data []byte, flags *Flags, logger *log.Helper) (ChassisArea, int, error) {
	headerExtra, fields, areaLen, err := decodeAreaBody(data, SourceChassis, chassisHeaderLen, flags, logger)
	if err != nil {
		return ChassisArea{}, 0, err
	}
	mandatory, custom := splitMandatory(fields, 2)
	c := ChassisArea{
		Type:       headerExtra[0],
		PartNumber: mandatory[0],
		SerialNo:   mandatory[1],
		Custom:     custom,
	}
	return c, areaLen, nil
}
