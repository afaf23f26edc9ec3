// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frozen implements the frozen-soil coupler: a closed-form
// scaling of a layer's saturated conductivity by how frozen its soil
// currently is. Freeze/thaw state arrives as a per-layer temperature
// profile in Kelvin, matching the BMI exchange item; this package
// supplies the simplest defensible reduction curve, a linear ramp
// between a fully-frozen and a fully-thawed temperature threshold,
// clamped to [minFactor, 1].
package frozen

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/lgar/layer"
)

// Coupler holds the two temperature thresholds bounding the ramp and the
// conductivity floor applied at or below the frozen threshold.
type Coupler struct {
	ThawedAboveK float64 // temperature (K) at/above which soil is fully thawed (factor = 1)
	FrozenBelowK float64 // temperature (K) at/below which soil is fully frozen (factor = MinFactor)
	MinFactor    float64 // conductivity multiplier at/below FrozenBelowK, in (0, 1]
}

// NewCoupler validates the two thresholds and the floor factor.
func NewCoupler(thawedAboveK, frozenBelowK, minFactor float64) (*Coupler, error) {
	if thawedAboveK <= frozenBelowK {
		return nil, chk.Err("frozen: thawed threshold %v must be above the frozen threshold %v", thawedAboveK, frozenBelowK)
	}
	if minFactor <= 0 || minFactor > 1 {
		return nil, chk.Err("frozen: min_factor must be in (0, 1], got %v", minFactor)
	}
	return &Coupler{ThawedAboveK: thawedAboveK, FrozenBelowK: frozenBelowK, MinFactor: minFactor}, nil
}

// Factor returns the conductivity multiplier for a layer's soil
// temperature: 1 when fully thawed, MinFactor when fully frozen, and a
// linear ramp in between.
func (c *Coupler) Factor(soilTempK float64) float64 {
	if soilTempK >= c.ThawedAboveK {
		return 1.0
	}
	if soilTempK <= c.FrozenBelowK {
		return c.MinFactor
	}
	span := c.ThawedAboveK - c.FrozenBelowK
	frac := (soilTempK - c.FrozenBelowK) / span
	return c.MinFactor + frac*(1.0-c.MinFactor)
}

// Update recomputes every layer's FrozenFactor from a per-layer soil
// temperature profile (Kelvin), one entry per layer, top to bottom.
func (c *Coupler) Update(layers []*layer.Layer, tempProfileK []float64) error {
	if len(tempProfileK) != len(layers) {
		return chk.Err("frozen: temperature profile has %d entries, column has %d layers", len(tempProfileK), len(layers))
	}
	for i, lyr := range layers {
		lyr.FrozenFactor = c.Factor(tempProfileK[i])
	}
	return nil
}
