// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

// Wipe resets f to the same state Init returns: every area absent, custom
// and MR lists released, canonical area order restored. f itself is
// reused rather than reallocated.
func (f *FRU) Wipe() {
	f.Internal = ""
	f.Chassis = ChassisArea{}
	f.Board = BoardArea{}
	f.Product = ProductArea{}
	f.MR = nil
	f.Present = [areaCount]bool{}
	f.Order = allAreas
}
