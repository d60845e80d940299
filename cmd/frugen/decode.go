// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var asJSON, asText bool

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a binary FRU image and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFRU(args[0], false)
			if err != nil {
				return err
			}

			if asText {
				textDump(cmd.OutOrStdout(), f)
				return nil
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(f)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", true, "emit JSON (default)")
	cmd.Flags().BoolVar(&asText, "text", false, "emit a human-readable dump")
	return cmd
}
