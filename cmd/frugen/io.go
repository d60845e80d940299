// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ipmifru/frugo"
)

// isJSONPath guesses whether path holds a JSON template from its
// extension, used when --template-json/--json is not given explicitly.
func isJSONPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}

func loadFRU(path string, asJSON bool) (*fru.FRU, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if asJSON {
		f := fru.Init()
		if err := json.Unmarshal(data, f); err != nil {
			return nil, err
		}
		return f, nil
	}
	file, err := fru.NewBytes(data, nil)
	if err != nil {
		return nil, err
	}
	return file.FRU, nil
}

func writeFRU(path string, f *fru.FRU, asJSON bool) error {
	var data []byte
	var err error
	if asJSON {
		data, err = json.MarshalIndent(f, "", "  ")
	} else {
		data, err = fru.Save(f, nil)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
