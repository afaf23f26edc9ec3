// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

// Ledger records the run's mass-balance bookkeeping: one instance per
// forcing step, and a second, separately accumulated instance held by
// the engine across the whole run. All volumes are in cm of depth over
// unit area.
type Ledger struct {
	PrecipCm      float64
	PETCm         float64
	AETCm         float64
	InfiltrationCm float64
	PercolationCm float64
	PondingCm     float64
	RunoffCm      float64
	RoutedCm      float64 // post-GIUH discharge
	StorageCm     float64 // final column storage
}

// Add accumulates a per-step ledger into a cumulative one, field by field.
// StorageCm and PondingCm are end-of-run snapshots, not sums, matching the
// source's "volon_cm = volon_timestep_cm" (assignment, not +=) treatment
// of surface state versus the flux accumulators.
func (c *Ledger) Add(step Ledger) {
	c.PrecipCm += step.PrecipCm
	c.PETCm += step.PETCm
	c.AETCm += step.AETCm
	c.InfiltrationCm += step.InfiltrationCm
	c.PercolationCm += step.PercolationCm
	c.RunoffCm += step.RunoffCm
	c.RoutedCm += step.RoutedCm
	c.PondingCm = step.PondingCm
	c.StorageCm = step.StorageCm
}

// Residual computes start + precip + prevPond - runoff - AET - pond -
// percolation - end, the per-step mass-balance check: it must evaluate
// to (near) zero for every sub-step of every forcing interval.
func Residual(start, precip, prevPond, runoff, aet, pond, percolation, end float64) float64 {
	return start + precip + prevPond - runoff - aet - pond - percolation - end
}
