// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

// Position selects where Enable/Move place an area among the other
// present areas. Absent areas always cluster at the front of f.Order
// (invariant I2); a Position only orders the present sub-sequence.
type Position struct {
	kind positionKind
	ref  AreaType
}

type positionKind int

const (
	posAuto positionKind = iota
	posFirst
	posLast
	posBefore
	posAfter
)

// Auto places the area where it would fall in canonical area order
// (Internal, Chassis, Board, Product, MR) relative to whichever other
// areas are already present.
func Auto() Position { return Position{kind: posAuto} }

// First places the area before every other present area.
func First() Position { return Position{kind: posFirst} }

// Last places the area after every other present area.
func Last() Position { return Position{kind: posLast} }

// Before places the area immediately ahead of ref, which must already be
// present.
func Before(ref AreaType) Position { return Position{kind: posBefore, ref: ref} }

// After places the area immediately behind ref, which must already be
// present.
func After(ref AreaType) Position { return Position{kind: posAfter, ref: ref} }

// presentList returns the present areas of f.Order, in their current
// relative order.
func (f *FRU) presentList() []AreaType {
	out := make([]AreaType, 0, areaCount)
	for _, a := range f.Order {
		if f.Present[presentIndex(a)] {
			out = append(out, a)
		}
	}
	return out
}

func canonicalIndex(a AreaType) int {
	for i, c := range allAreas {
		if c == a {
			return i
		}
	}
	return -1
}

func insertAt(list []AreaType, area AreaType, pos Position) ([]AreaType, error) {
	switch pos.kind {
	case posFirst:
		return append([]AreaType{area}, list...), nil
	case posLast:
		return append(append([]AreaType{}, list...), area), nil
	case posBefore, posAfter:
		idx := -1
		for i, a := range list {
			if a == pos.ref {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, newErr(KindBadPosition, AreaSource(pos.ref))
		}
		if pos.kind == posAfter {
			idx++
		}
		out := make([]AreaType, 0, len(list)+1)
		out = append(out, list[:idx]...)
		out = append(out, area)
		out = append(out, list[idx:]...)
		return out, nil
	default: // posAuto
		ci := canonicalIndex(area)
		idx := len(list)
		for i, a := range list {
			if canonicalIndex(a) > ci {
				idx = i
				break
			}
		}
		out := make([]AreaType, 0, len(list)+1)
		out = append(out, list[:idx]...)
		out = append(out, area)
		out = append(out, list[idx:]...)
		return out, nil
	}
}

// rebuild writes f.Order as the absent areas (canonical order) followed
// by presentList, keeping invariant I2 intact.
func (f *FRU) rebuild(presentList []AreaType) {
	present := make(map[AreaType]bool, len(presentList))
	for _, a := range presentList {
		present[a] = true
	}
	idx := 0
	for _, a := range allAreas {
		if !present[a] {
			f.Order[idx] = a
			idx++
		}
	}
	for _, a := range presentList {
		f.Order[idx] = a
		idx++
	}
}

// Enable marks area present, inserting it among the other present areas
// per pos. It fails with AreaEnabled if area is already present.
func (f *FRU) Enable(area AreaType, pos Position) error {
	if f.Present[presentIndex(area)] {
		return newErr(KindAreaEnabled, AreaSource(area))
	}
	list, err := insertAt(f.presentList(), area, pos)
	if err != nil {
		return err
	}
	f.Present[presentIndex(area)] = true
	f.rebuild(list)
	return nil
}

// Disable marks area absent, moving it to the front cluster. Its
// decoded data is left untouched so a later Enable restores it.
func (f *FRU) Disable(area AreaType) error {
	if !f.Present[presentIndex(area)] {
		return newErr(KindAreaDisabled, AreaSource(area))
	}
	list := f.presentList()
	out := make([]AreaType, 0, len(list))
	for _, a := range list {
		if a != area {
			out = append(out, a)
		}
	}
	f.Present[presentIndex(area)] = false
	f.rebuild(out)
	return nil
}

// Move repositions an already-present area among the other present areas.
// It fails with AreaDisabled if area is not currently present.
func (f *FRU) Move(area AreaType, pos Position) error {
	if !f.Present[presentIndex(area)] {
		return newErr(KindAreaDisabled, AreaSource(area))
	}
	list := f.presentList()
	withoutArea := make([]AreaType, 0, len(list))
	for _, a := range list {
		if a != area {
			withoutArea = append(withoutArea, a)
		}
	}
	out, err := insertAt(withoutArea, area, pos)
	if err != nil {
		return err
	}
	f.rebuild(out)
	return nil
}
