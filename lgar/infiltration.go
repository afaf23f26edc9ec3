// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/lgar/front"
	"github.com/cpmech/lgar/layer"
)

// FreeDrainageIndex returns the 0-based index of the shallowest front
// whose theta is below its layer's theta_s — the free-drainage front
// f* — or -1 if every front is saturated.
func FreeDrainageIndex(l *front.List, col *layer.Column) int {
	found := -1
	l.Walk(func(i int, f *front.Front) {
		if found >= 0 {
			return
		}
		if f.Theta < col.At(f.LayerNum).Soil.ThetaS {
			found = i
		}
	})
	return found
}

// greenAmptCapacity computes the Green-Ampt infiltration capacity over
// dtH: the fronts from the surface down to and including fIdx act as
// Darcy resistances in series (the "cumulative conductance
// stack of wetter fronts above"), and an nint-point trapezoidal average of
// K(theta) between f*'s theta and its layer's theta_s stands in for the
// sharp front's internal resistance in the unit-gradient Green-Ampt
// expression flux = K * (ponding + depth + psi_ae) / depth.
func greenAmptCapacity(nint int, dtH, pondedCm float64, fIdx int, l *front.List, col *layer.Column) (float64, error) {
	fStar := l.At(fIdx)
	lyr := col.At(fStar.LayerNum)

	// nint-point trapezoidal mean of K(theta) across the sharp front,
	// replacing the single-point K(f*.theta) in the series sum below.
	if nint < 2 {
		nint = 2
	}
	thetas := utl.LinSpace(fStar.Theta, lyr.Soil.ThetaS, nint)
	sum := 0.0
	for i, th := range thetas {
		w := 1.0
		if i == 0 || i == len(thetas)-1 {
			w = 0.5
		}
		sum += w * lyr.Soil.K(th)
	}
	kFront := sum / float64(len(thetas)-1) * lyr.FrozenFactor

	// resistances in series from the surface down to fStar
	resistance := 0.0
	prevDepth := 0.0
	for i := 0; i <= fIdx; i++ {
		f := l.At(i)
		span := f.DepthCm - prevDepth
		k := col.At(f.LayerNum).Soil.K(f.Theta) * col.At(f.LayerNum).FrozenFactor
		if i == fIdx {
			k = kFront
		}
		if k <= 0 {
			return 0, fatal(l, "front %d has non-positive conductivity %v", i, k)
		}
		resistance += span / k
		prevDepth = f.DepthCm
	}

	kEff := fStar.DepthCm / resistance
	if fStar.DepthCm <= 0 {
		kEff = kFront
	}

	gradient := (pondedCm + fStar.DepthCm + lyr.Soil.PsiAE) / fStar.DepthCm
	if fStar.DepthCm <= 0 {
		gradient = 1.0
	}
	capacityCmPerH := kEff * gradient
	if capacityCmPerH < 0 {
		return 0, fatal(l, "negative infiltration capacity %v", capacityCmPerH)
	}
	return capacityCmPerH * dtH, nil
}

// InfiltrationStep partitions the available surface water W into
// infiltration, runoff and remaining ponding.
func InfiltrationStep(nint int, dtH, wCm, rCmPerH, pMaxCm float64, l *front.List, col *layer.Column) (infiltratedCm, runoffCm, pondingCm float64, err error) {
	fIdx := FreeDrainageIndex(l, col)
	if fIdx < 0 {
		fIdx = l.Len() - 1
	}
	iCap, err := greenAmptCapacity(nint, dtH, wCm, fIdx, l, col)
	if err != nil {
		return 0, 0, 0, err
	}
	if rCmPerH*dtH <= iCap && wCm <= iCap {
		return wCm, 0, 0, nil
	}
	infiltratedCm = iCap
	residual := wCm - iCap
	newPond := residual
	if newPond > pMaxCm {
		newPond = pMaxCm
	}
	runoffCm = residual - newPond
	if runoffCm < 0 {
		return 0, 0, 0, fatal(l, "negative runoff %v computing infiltration step", runoffCm)
	}
	return infiltratedCm, runoffCm, newPond, nil
}
