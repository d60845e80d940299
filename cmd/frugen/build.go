// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ipmifru/frugo"
)

func newBuildCmd() *cobra.Command {
	var (
		template        string
		templateJSON    bool
		output          string
		outputJSON      bool
		sets            []string
		mrUUID          string
		boardDateUnspec bool
		boardDate       string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a FRU image from a template and --set mutations",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := fru.Init()
			if template != "" {
				loaded, err := loadFRU(template, templateJSON || isJSONPath(template))
				if err != nil {
					return err
				}
				f = loaded
			}

			for _, s := range sets {
				if err := applySet(f, s); err != nil {
					return err
				}
			}

			if boardDateUnspec {
				f.Board.MfgDate = time.Time{}
				f.Board.MfgDateAuto = false
			} else if boardDate != "" {
				t, err := time.Parse("02/01/2006 15:04", boardDate)
				if err != nil {
					return err
				}
				f.Board.MfgDate = t.UTC()
				f.Board.MfgDateAuto = false
			}

			if mrUUID != "" {
				if err := f.SetSystemUUID(mrUUID); err != nil {
					return err
				}
			}

			return writeFRU(output, f, outputJSON || isJSONPath(output))
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "starting template (binary or JSON)")
	cmd.Flags().BoolVar(&templateJSON, "template-json", false, "force JSON parsing of --template")
	cmd.Flags().StringVarP(&output, "output", "o", "fru.bin", "output file path")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "emit JSON instead of binary")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "[<enc>:]<area>.<field>=<val>, repeatable")
	cmd.Flags().StringVar(&mrUUID, "mr-uuid", "", "set the System UUID Management Access record")
	cmd.Flags().BoolVar(&boardDateUnspec, "board-date-unspec", false, "mark the board mfg date unspecified")
	cmd.Flags().StringVar(&boardDate, "board-date", "", "board mfg date, DD/MM/YYYY HH:MM")
	return cmd
}
