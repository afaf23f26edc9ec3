// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package giuh implements the Geomorphological Instantaneous Unit
// Hydrograph convolution that routes surface runoff, following the
// giuh_runoff_queue / giuh_convolution_integral bookkeeping of BmiLGAR:
// a fixed-length queue is updated by each step's runoff weighted by the
// GIUH ordinates, and its head entry is drained and returned as the
// routed discharge for that step.
package giuh

import "github.com/cpmech/gosl/chk"

// Buffer holds the convolution state for one GIUH ordinate set.
type Buffer struct {
	ordinates []float64 // sums to 1, shallowest (fastest response) first
	queue     []float64 // length len(ordinates)+1
}

// NewBuffer builds a Buffer from a set of GIUH ordinates. The ordinates
// must be non-empty and non-negative; they need not already be
// normalised to sum to 1 — NewBuffer normalises them.
func NewBuffer(ordinates []float64) (*Buffer, error) {
	if len(ordinates) == 0 {
		return nil, chk.Err("giuh: at least one ordinate is required")
	}
	sum := 0.0
	for i, o := range ordinates {
		if o < 0 {
			return nil, chk.Err("giuh: ordinate %d is negative (%v)", i, o)
		}
		sum += o
	}
	if sum <= 0 {
		return nil, chk.Err("giuh: ordinates must sum to a positive value")
	}
	b := &Buffer{
		ordinates: make([]float64, len(ordinates)),
		queue:     make([]float64, len(ordinates)+1),
	}
	for i, o := range ordinates {
		b.ordinates[i] = o / sum
	}
	return b, nil
}

// Convolve distributes runoffCm across the buffer's ordinates, drains and
// returns the discharge due this step, then shifts the queue so the
// next-due entry becomes the new head.
func (b *Buffer) Convolve(runoffCm float64) float64 {
	for i, ord := range b.ordinates {
		b.queue[i] += runoffCm * ord
	}
	routed := b.queue[0]
	copy(b.queue, b.queue[1:])
	b.queue[len(b.queue)-1] = 0
	return routed
}

// Pending returns the total runoff still queued but not yet routed,
// useful for a final Finalize-time mass accounting.
func (b *Buffer) Pending() float64 {
	total := 0.0
	for _, q := range b.queue {
		total += q
	}
	return total
}
