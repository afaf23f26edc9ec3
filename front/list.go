// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package front

// List is the ordered collection of wetting fronts L = [f1,...,fN], f1 the
// shallowest. It owns its fronts for the lifetime of the engine; no
// operation here re-establishes the structural invariants (I1)-(I6) by
// itself — those are only guaranteed again after a full advance (see the
// lgar package's AdvanceFronts).
type List struct {
	fronts []*Front
}

// NewList builds a List from fronts already in shallow-to-deep order.
func NewList(fronts ...*Front) *List {
	l := &List{fronts: make([]*Front, len(fronts))}
	copy(l.fronts, fronts)
	return l
}

// Len returns the number of fronts.
func (l *List) Len() int {
	return len(l.fronts)
}

// At returns the front at the given 0-based position (0 = shallowest).
func (l *List) At(i int) *Front {
	return l.fronts[i]
}

// Head returns the shallowest front, or nil if the list is empty.
func (l *List) Head() *Front {
	if len(l.fronts) == 0 {
		return nil
	}
	return l.fronts[0]
}

// Tail returns the deepest front, or nil if the list is empty.
func (l *List) Tail() *Front {
	if len(l.fronts) == 0 {
		return nil
	}
	return l.fronts[len(l.fronts)-1]
}

// Next returns the successor (deeper neighbour) of the front at i, or nil
// if i is the last index.
func (l *List) Next(i int) *Front {
	if i+1 >= len(l.fronts) {
		return nil
	}
	return l.fronts[i+1]
}

// Prev returns the predecessor (shallower neighbour) of the front at i, or
// nil if i is the first index.
func (l *List) Prev(i int) *Front {
	if i <= 0 {
		return nil
	}
	return l.fronts[i-1]
}

// Append adds a front at the deep end of the list.
func (l *List) Append(f *Front) {
	l.fronts = append(l.fronts, f)
}

// InsertBefore inserts f immediately before the front currently at index i.
func (l *List) InsertBefore(i int, f *Front) {
	l.fronts = append(l.fronts, nil)
	copy(l.fronts[i+1:], l.fronts[i:])
	l.fronts[i] = f
}

// InsertAfter inserts f immediately after the front currently at index i.
func (l *List) InsertAfter(i int, f *Front) {
	l.InsertBefore(i+1, f)
}

// Delete removes the front at index i.
func (l *List) Delete(i int) {
	l.fronts = append(l.fronts[:i], l.fronts[i+1:]...)
}

// FirstInLayer returns the 0-based index of the shallowest front in layer
// n, or -1 if layer n has no front.
func (l *List) FirstInLayer(n int) int {
	for i, f := range l.fronts {
		if f.LayerNum == n {
			return i
		}
	}
	return -1
}

// LastInLayer returns the 0-based index of the deepest front in layer n,
// or -1 if layer n has no front.
func (l *List) LastInLayer(n int) int {
	idx := -1
	for i, f := range l.fronts {
		if f.LayerNum == n {
			idx = i
		}
	}
	return idx
}

// Walk calls visit for every front, shallowest first, passing its 0-based
// index. Used by the advancer and mass calculator for a structural walk
// without exposing the backing slice.
func (l *List) Walk(visit func(i int, f *Front)) {
	for i, f := range l.fronts {
		visit(i, f)
	}
}

// Copy returns an independent deep copy of the list: every front is
// cloned, so mutating the copy (or the original) afterwards never
// aliases. This is the snapshot taken for a FatalError report and
// whenever a caller needs to diff the list across an operation.
func (l *List) Copy() *List {
	cp := &List{fronts: make([]*Front, len(l.fronts))}
	for i, f := range l.fronts {
		cp.fronts[i] = f.Copy()
	}
	return cp
}

// Slice returns the backing fronts, shallowest first. Callers must not
// retain the slice across a mutating List operation.
func (l *List) Slice() []*Front {
	return l.fronts
}
