// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import "strings"

// GetField returns a pointer to the named mandatory field of area, for
// callers (chiefly the frugen CLI's `--set area.field=val` mutation) that
// address fields by name rather than through the typed Chassis/Board/
// Product structs directly. name is case-insensitive.
func (f *FRU) GetField(area AreaType, name string) (*Field, error) {
	name = strings.ToLower(name)
	switch area {
	case AreaChassis:
		switch name {
		case "partnumber":
			return &f.Chassis.PartNumber, nil
		case "serialno":
			return &f.Chassis.SerialNo, nil
		}
	case AreaBoard:
		switch name {
		case "manufacturer":
			return &f.Board.Manufacturer, nil
		case "productname":
			return &f.Board.ProductName, nil
		case "serialno":
			return &f.Board.SerialNo, nil
		case "partnumber":
			return &f.Board.PartNumber, nil
		case "frufileid":
			return &f.Board.FRUFileID, nil
		}
	case AreaProduct:
		switch name {
		case "manufacturer":
			return &f.Product.Manufacturer, nil
		case "productname":
			return &f.Product.ProductName, nil
		case "partmodelno":
			return &f.Product.PartModelNo, nil
		case "version":
			return &f.Product.Version, nil
		case "serialno":
			return &f.Product.SerialNo, nil
		case "assettag":
			return &f.Product.AssetTag, nil
		case "frufileid":
			return &f.Product.FRUFileID, nil
		}
	}
	return nil, newErr(KindNoField, AreaSource(area))
}

func (f *FRU) customSlice(area AreaType) (*[]Field, error) {
	switch area {
	case AreaChassis:
		return &f.Chassis.Custom, nil
	case AreaBoard:
		return &f.Board.Custom, nil
	case AreaProduct:
		return &f.Product.Custom, nil
	default:
		return nil, newErr(KindAreaNotSupported, AreaSource(area))
	}
}

// AddCustom inserts val into area's custom-field list at index, shifting
// later entries up. An index at or beyond the current list length - or a
// negative index - appends, same as index == len(list). Returns the index
// the field ended up at.
func (f *FRU) AddCustom(area AreaType, index int, val Field) (int, error) {
	custom, err := f.customSlice(area)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(*custom) {
		index = len(*custom)
		*custom = append(*custom, val)
		return index, nil
	}
	*custom = append(*custom, Field{})
	copy((*custom)[index+1:], (*custom)[index:])
	(*custom)[index] = val
	return index, nil
}

// GetCustom returns a pointer to area's custom field at index.
func (f *FRU) GetCustom(area AreaType, index int) (*Field, error) {
	custom, err := f.customSlice(area)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(*custom) {
		return nil, newErrAt(KindNoField, AreaSource(area), index)
	}
	return &(*custom)[index], nil
}

// DeleteCustom removes area's custom field at index.
func (f *FRU) DeleteCustom(area AreaType, index int) error {
	custom, err := f.customSlice(area)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*custom) {
		return newErrAt(KindNoField, AreaSource(area), index)
	}
	*custom = append((*custom)[:index], (*custom)[index+1:]...)
	return nil
}

// AddMR appends r to the multirecord list and returns its index.
func (f *FRU) AddMR(r Record) int {
	f.MR = append(f.MR, r)
	return len(f.MR) - 1
}

// GetMR returns a pointer to the multirecord at index.
func (f *FRU) GetMR(index int) (*Record, error) {
	if index < 0 || index >= len(f.MR) {
		return nil, newErrAt(KindNoRecord, SourceMR, index)
	}
	return &f.MR[index], nil
}

// FindMR returns the index of the first record for which match returns
// true, or KindNoRecord if none matches.
func (f *FRU) FindMR(match func(Record) bool) (int, error) {
	for i, r := range f.MR {
		if match(r) {
			return i, nil
		}
	}
	return -1, newErr(KindNoRecord, SourceMR)
}

// ReplaceMR overwrites the multirecord at index.
func (f *FRU) ReplaceMR(index int, r Record) error {
	if index < 0 || index >= len(f.MR) {
		return newErrAt(KindNoRecord, SourceMR, index)
	}
	f.MR[index] = r
	return nil
}

// DeleteMR removes the multirecord at index.
func (f *FRU) DeleteMR(index int) error {
	if index < 0 || index >= len(f.MR) {
		return newErrAt(KindNoRecord, SourceMR, index)
	}
	f.MR = append(f.MR[:index], f.MR[index+1:]...)
	return nil
}

// FindSystemUUID returns the index of the Management Access record
// carrying the SystemUUID subtype, if any.
func (f *FRU) FindSystemUUID() (int, error) {
	return f.FindMR(func(r Record) bool {
		return r.Kind == KindManagementRecord && r.Management.Subtype == SubtypeSystemUUID
	})
}

// SetSystemUUID sets or adds the System UUID Management Access record.
// uuidHex is a 32-character hex string (canonical byte order, no dashes).
func (f *FRU) SetSystemUUID(uuidHex string) error {
	uuidHex = strings.ToUpper(strings.ReplaceAll(uuidHex, "-", ""))
	if !isHexString(uuidHex) || len(uuidHex) != uuidLen*2 {
		return newErr(KindMgmtRecordBad, SourceMR)
	}
	rec := Record{Kind: KindManagementRecord, Management: ManagementRecord{
		Subtype: SubtypeSystemUUID,
		Data:    uuidHex,
	}}
	idx, err := f.FindSystemUUID()
	if err != nil {
		f.AddMR(rec)
		return nil
	}
	return f.ReplaceMR(idx, rec)
}
