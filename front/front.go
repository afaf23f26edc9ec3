// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package front implements the wetting-front record and the ordered
// collection of fronts (the column state) that the LGAR solver advances.
// BmiLGAR's intrusive singly linked list with a module-global head
// pointer is re-architected here as an owned, slice-backed ordered
// container: a "previous state" snapshot becomes a value-type clone
// instead of a manual node-by-node copy.
package front

// Front is one wetting front: the leading edge of a discrete wetting
// pulse moving down the column.
type Front struct {
	DepthCm   float64 // depth of the leading edge from the surface
	Theta     float64 // water content behind the front
	PsiCm     float64 // matric head consistent with Theta (tension, >= 0)
	LayerNum  int     // 1-based layer containing the leading edge
	KCmPerH   float64 // effective hydraulic conductivity at Theta
	DzDt      float64 // current vertical velocity, cm/h
	ToBottom  bool    // true iff the front sits exactly at its layer's bottom
}

// Copy returns an independent copy of f.
func (f *Front) Copy() *Front {
	cp := *f
	return &cp
}
