// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "github.com/ipmifru/frugo/log"

// productHeaderLen is the Product area's fixed header size: version (1),
// length-in-blocks (1), language code (1).
const productHeaderLen = 3

// ProductArea is the decoded Product Information Area.
type ProductArea struct {
	LangCode uint8 `json:"lang_code"`

	Manufacturer Field `json:"manufacturer"`
	ProductName  Field `json:"product_name"`
	PartModelNo  Field `json:"part_model_no"`
	Version      Field `json:"version"`
	SerialNo     Field `json:"serial_no"`
	AssetTag     Field `json:"asset_tag"`
	FRUFileID    Field `json:"fru_file_id"`

	Custom []Field `json:"custom,omitempty"`
}

func (p *ProductArea) encode() ([]byte, error) {
	fields := append([]Field{
		p.Manufacturer, p.ProductName, p.PartModelNo, p.Version,
		p.SerialNo, p.AssetTag, p.FRUFileID,
	}, p.Custom...)
	return encodeAreaBody([]byte{p.LangCode}, fields, SourceProduct)
}

func decodeProductArea(data []byte, flags *Flags, logger *log.Helper) (ProductArea, int, error) {
	headerExtra, fields, areaLen, err := decodeAreaBody(data, SourceProduct, productHeaderLen, flags, logger)
	if err != nil {
		return ProductArea{}, 0, err
	}
	mandatory, custom := splitMandatory(fields, 7)
	p := ProductArea{
		LangCode:     headerExtra[0],
		Manufacturer: mandatory[0],
		ProductName:  mandatory[1],
		PartModelNo:  mandatory[2],
		Version:      mandatory[3],
		SerialNo:     mandatory[4],
		AssetTag:     mandatory[5],
		FRUFileID:    mandatory[6],
		Custom:       custom,
	}
	return p, areaLen, nil
}
