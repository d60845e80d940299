// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

// Fuzz is the go-fuzz entry point: it decodes data as a FRU image and
// reports 1 for input go-fuzz should prioritize mutating further (a clean
// decode), 0 otherwise.
func Fuzz(data []byte) int {
	f, err := NewBytes(data, nil)
	if err != nil {
		return 0
	}
	if _, err := Save(f.FRU, nil); err != nil {
		return 0
	}
	return 1
}
