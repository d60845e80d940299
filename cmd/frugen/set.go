// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ipmifru/frugo"
)

var areaNamesByTag = map[string]fru.AreaType{
	"chassis": fru.AreaChassis,
	"board":   fru.AreaBoard,
	"product": fru.AreaProduct,
}

var encByTag = map[string]fru.Encoding{
	"binary":   fru.EncBinary,
	"bcdplus":  fru.EncBCDPlus,
	"6bit":     fru.EncSixBit,
	"text":     fru.EncText,
	"auto":     fru.EncAuto,
	"preserve": fru.EncPreserve,
}

// applySet applies one `[<enc>:]<area>.<field>=<val>` mutation, where
// <field> is either a named mandatory field, `custom` (append a new
// custom field), or `custom.<N>` (insert a custom field at index N,
// shifting later entries up; N at or beyond the current list length
// appends).
func applySet(f *fru.FRU, spec string) error {
	rest := spec
	enc := fru.EncAuto
	if i := strings.Index(rest, ":"); i >= 0 {
		if e, ok := encByTag[strings.ToLower(rest[:i])]; ok {
			enc = e
			rest = rest[i+1:]
		}
	}

	eq := strings.Index(rest, "=")
	if eq < 0 {
		return fmt.Errorf("--set %q: missing '='", spec)
	}
	path, val := rest[:eq], rest[eq+1:]

	parts := strings.SplitN(path, ".", 3)
	if len(parts) < 2 {
		return fmt.Errorf("--set %q: expected <area>.<field>", spec)
	}
	area, ok := areaNamesByTag[strings.ToLower(parts[0])]
	if !ok {
		return fmt.Errorf("--set %q: unknown area %q", spec, parts[0])
	}

	field := fru.Field{Enc: enc, Val: val}

	if strings.EqualFold(parts[1], "custom") {
		idx := -1
		if len(parts) == 3 {
			var err error
			idx, err = strconv.Atoi(parts[2])
			if err != nil {
				return fmt.Errorf("--set %q: bad custom index: %w", spec, err)
			}
		}
		_, err := f.AddCustom(area, idx, field)
		return err
	}

	p, err := f.GetField(area, parts[1])
	if err != nil {
		return err
	}
	*p = field
	return nil
}
