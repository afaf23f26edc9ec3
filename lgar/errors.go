// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/lgar/front"
)

// FatalError is the typed error raised for every condition this solver
// treats as fatal: a mass-balance residual above tolerance, a negative
// infiltration capacity or runoff, a non-positive front conductivity, an
// advance on an empty front list, or a non-positive step length. Theta
// range, NaN front attributes and layer bookkeeping are not checked, so
// none of them raises a FatalError. It carries a deep copy of the front
// list at the moment of failure so a host framework can report instead
// of crashing the process.
type FatalError struct {
	Reason   string
	Snapshot *front.List
}

// Error implements the error interface, dumping the front list the way
// BmiLGAR's listPrint() does before aborting.
func (e *FatalError) Error() string {
	msg := io.Sf("lgar: fatal: %s\n", e.Reason)
	if e.Snapshot != nil {
		msg += "front list at failure:\n"
		e.Snapshot.Walk(func(i int, f *front.Front) {
			msg += io.Sf("  [%d] depth=%.6f theta=%.6f psi=%.6f layer=%d K=%.6f dzdt=%.6f to_bottom=%v\n",
				i, f.DepthCm, f.Theta, f.PsiCm, f.LayerNum, f.KCmPerH, f.DzDt, f.ToBottom)
		})
	}
	return msg
}

// fatal constructs a FatalError with a snapshot of l.
func fatal(l *front.List, format string, args ...interface{}) error {
	return &FatalError{Reason: io.Sf(format, args...), Snapshot: l.Copy()}
}
