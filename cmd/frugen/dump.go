// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ipmifru/frugo"
)

// textDump renders f as a human-readable table, in the teacher's
// tabwriter-based dump style.
func textDump(w io.Writer, f *fru.FRU) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Area order:\t%v\n", f.Order)

	if f.Present[fru.AreaInternal-1] {
		fmt.Fprintf(tw, "Internal Use:\t%s\n", f.Internal)
	}

	if f.Present[fru.AreaChassis-1] {
		fmt.Fprintln(tw, "\n[Chassis]")
		fmt.Fprintf(tw, "Type:\t%d\n", f.Chassis.Type)
		fmt.Fprintf(tw, "Part Number:\t%s\t(%s)\n", f.Chassis.PartNumber.Val, f.Chassis.PartNumber.Enc)
		fmt.Fprintf(tw, "Serial Number:\t%s\t(%s)\n", f.Chassis.SerialNo.Val, f.Chassis.SerialNo.Enc)
		dumpCustom(tw, f.Chassis.Custom)
	}

	if f.Present[fru.AreaBoard-1] {
		fmt.Fprintln(tw, "\n[Board]")
		fmt.Fprintf(tw, "Language:\t%d\n", f.Board.LangCode)
		if f.Board.MfgDate.IsZero() {
			fmt.Fprintln(tw, "Mfg Date:\tunspecified")
		} else {
			fmt.Fprintf(tw, "Mfg Date:\t%s\n", f.Board.MfgDate.Format("02/01/2006 15:04"))
		}
		fmt.Fprintf(tw, "Manufacturer:\t%s\t(%s)\n", f.Board.Manufacturer.Val, f.Board.Manufacturer.Enc)
		fmt.Fprintf(tw, "Product Name:\t%s\t(%s)\n", f.Board.ProductName.Val, f.Board.ProductName.Enc)
		fmt.Fprintf(tw, "Serial Number:\t%s\t(%s)\n", f.Board.SerialNo.Val, f.Board.SerialNo.Enc)
		fmt.Fprintf(tw, "Part Number:\t%s\t(%s)\n", f.Board.PartNumber.Val, f.Board.PartNumber.Enc)
		fmt.Fprintf(tw, "FRU File ID:\t%s\t(%s)\n", f.Board.FRUFileID.Val, f.Board.FRUFileID.Enc)
		dumpCustom(tw, f.Board.Custom)
	}

	if f.Present[fru.AreaProduct-1] {
		fmt.Fprintln(tw, "\n[Product]")
		fmt.Fprintf(tw, "Language:\t%d\n", f.Product.LangCode)
		fmt.Fprintf(tw, "Manufacturer:\t%s\t(%s)\n", f.Product.Manufacturer.Val, f.Product.Manufacturer.Enc)
		fmt.Fprintf(tw, "Product Name:\t%s\t(%s)\n", f.Product.ProductName.Val, f.Product.ProductName.Enc)
		fmt.Fprintf(tw, "Part/Model Number:\t%s\t(%s)\n", f.Product.PartModelNo.Val, f.Product.PartModelNo.Enc)
		fmt.Fprintf(tw, "Version:\t%s\t(%s)\n", f.Product.Version.Val, f.Product.Version.Enc)
		fmt.Fprintf(tw, "Serial Number:\t%s\t(%s)\n", f.Product.SerialNo.Val, f.Product.SerialNo.Enc)
		fmt.Fprintf(tw, "Asset Tag:\t%s\t(%s)\n", f.Product.AssetTag.Val, f.Product.AssetTag.Enc)
		fmt.Fprintf(tw, "FRU File ID:\t%s\t(%s)\n", f.Product.FRUFileID.Val, f.Product.FRUFileID.Enc)
		dumpCustom(tw, f.Product.Custom)
	}

	if f.Present[fru.AreaMR-1] {
		fmt.Fprintln(tw, "\n[MultiRecord]")
		for i, r := range f.MR {
			if r.Kind == fru.KindManagementRecord {
				fmt.Fprintf(tw, "%d:\tManagement\t%s\t%s\n", i, r.Management.Subtype, r.Management.Data)
			} else {
				fmt.Fprintf(tw, "%d:\tRaw\ttype=0x%02X\t%s (%s)\n", i, r.Raw.Type, r.Raw.Data, r.Raw.Enc)
			}
		}
	}
}

func dumpCustom(tw *tabwriter.Writer, custom []fru.Field) {
	for i, c := range custom {
		fmt.Fprintf(tw, "Custom[%d]:\t%s\t(%s)\n", i, c.Val, c.Enc)
	}
}
