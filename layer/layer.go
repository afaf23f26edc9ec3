// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package layer implements the vertically stacked soil layers of a column:
// thickness, soil-type reference, cumulative-thickness boundaries and the
// per-layer frozen factor that scales Ks when the frozen-soil coupler is
// active.
package layer

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/lgar/soiltype"
)

// Layer is one 1-based-indexed soil layer of the column.
type Layer struct {
	Num            int            // 1-based layer index
	ThicknessCm    float64        // layer thickness, cm
	Soil           *soiltype.Type // soil-type record
	FrozenFactor   float64        // multiplies Ks when sft_coupled; default 1
	BackgroundTheta float64       // antecedent theta set from initial_psi_cm, used below the deepest front
}

// Column is the ordered stack of layers making up the soil profile, with
// precomputed cumulative-thickness boundaries.
type Column struct {
	Layers       []*Layer
	cumThickness []float64 // cumThickness[i] = depth of the bottom of Layers[i], cm
}

// NewColumn builds a Column from layers already in top-to-bottom order and
// precomputes cumulative boundaries. Every layer's FrozenFactor defaults
// to 1 (no freezing) unless already set by the caller.
func NewColumn(layers []*Layer) (*Column, error) {
	if len(layers) == 0 {
		return nil, chk.Err("column must have at least one layer")
	}
	c := &Column{Layers: layers, cumThickness: make([]float64, len(layers))}
	sum := 0.0
	for i, l := range layers {
		if l.ThicknessCm <= 0 {
			return nil, chk.Err("layer %d: thickness must be positive (got %v)", l.Num, l.ThicknessCm)
		}
		if l.FrozenFactor == 0 {
			l.FrozenFactor = 1.0
		}
		sum += l.ThicknessCm
		c.cumThickness[i] = sum
	}
	return c, nil
}

// TotalDepthCm returns the depth of the column's bottom boundary.
func (c *Column) TotalDepthCm() float64 {
	return c.cumThickness[len(c.cumThickness)-1]
}

// BottomCm returns the depth of the bottom boundary of layer (1-based) n.
func (c *Column) BottomCm(n int) float64 {
	return c.cumThickness[n-1]
}

// TopCm returns the depth of the top boundary of layer (1-based) n.
func (c *Column) TopCm(n int) float64 {
	if n == 1 {
		return 0.0
	}
	return c.cumThickness[n-2]
}

// At returns the layer with the given 1-based index.
func (c *Column) At(n int) *Layer {
	return c.Layers[n-1]
}

// NumLayers returns the number of layers in the column.
func (c *Column) NumLayers() int {
	return len(c.Layers)
}

// LayerAtDepth returns the 1-based index of the layer containing depthCm:
// a front exactly on a boundary belongs to the shallower layer, since a
// to_bottom front sits on the boundary and belongs to the upper layer.
func (c *Column) LayerAtDepth(depthCm float64) int {
	for i, bottom := range c.cumThickness {
		if depthCm <= bottom {
			return i + 1
		}
	}
	return len(c.Layers)
}
