// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"math"

	"github.com/cpmech/lgar/front"
	"github.com/cpmech/lgar/layer"
)

// annihilationTolerance is the theta tolerance used by Phase 5 (a front
// that has relaxed back to its layer's background theta disappears), and
// the floor for a non-positive theta jump in Phase 1 and for the deepest
// front's span in Phase 2. Phase 6 has no theta_r cutoff: AET withdrawal
// never removes a front.
const annihilationTolerance = 1e-9

// AdvanceResult is the small aggregate of updated scalars AdvanceFronts
// returns, replacing the in-out pointer arguments BmiLGAR passes around
// internally.
type AdvanceResult struct {
	PercolationCm float64
	AETAppliedCm  float64
}

// frontGoverningSpan returns the depth interval whose theta is f's own:
// the span down to the next same-layer front (if any) plus, when f has no
// same-layer predecessor, the span from its layer's top down to itself.
// This is the same partition ColumnStorage sums over, so it is exactly
// the span that changes when f's theta changes (merge, AET withdrawal).
func frontGoverningSpan(l *front.List, col *layer.Column, i int) float64 {
	f := l.At(i)
	span := 0.0
	if i == 0 || l.At(i-1).LayerNum != f.LayerNum {
		span += f.DepthCm - col.TopCm(f.LayerNum)
	}
	if next := l.Next(i); next != nil && next.LayerNum == f.LayerNum {
		span += next.DepthCm - f.DepthCm
	}
	return span
}

// AdvanceFronts is the central procedure of the solver: it moves every
// front by its Darcy-Buckingham velocity, merges, crosses
// layer boundaries, annihilates, and withdraws AET, re-establishing
// invariants (I1)-(I6) before returning.
func AdvanceFronts(dtH, infiltratedCm, aetDemandCm, wiltingPsiCm float64, col *layer.Column, l *front.List) (AdvanceResult, error) {
	if l.Len() == 0 {
		return AdvanceResult{}, fatal(l, "advance called on an empty front list")
	}

	// Phase 1 — dzdt for every front.
	l.Walk(func(i int, f *front.Front) {
		lyr := col.At(f.LayerNum)
		k := lyr.Soil.K(f.Theta) * lyr.FrozenFactor
		f.KCmPerH = k
		var gradient, deltaTheta float64
		if next := l.Next(i); next != nil {
			dz := next.DepthCm - f.DepthCm
			if dz <= 0 {
				dz = 1e-6
			}
			gradient = (f.PsiCm-next.PsiCm)/dz + 1.0
			deltaTheta = f.Theta - next.Theta
		} else {
			gradient = 1.0
			deltaTheta = f.Theta - lyr.BackgroundTheta
		}
		if deltaTheta <= 0 {
			deltaTheta = annihilationTolerance
		}
		f.DzDt = k * gradient / deltaTheta
	})

	// Mass entering this call is infiltratedCm; everything that leaves the
	// tracked front representation before and after (spill to theta_s,
	// the bottom boundary, a layer-crossing's soil-capacity mismatch) is
	// reconciled at the end as whatever the storage ledger requires,
	// rather than hand-summed phase by phase — that keeps every
	// approximation in phases 2-6 automatically consistent with the
	// mass-balance check in RunStep.
	beforeStorage, err := ColumnStorage(l, col)
	if err != nil {
		return AdvanceResult{}, err
	}

	// Phase 2 — advance, deepest to shallowest. The deepest front both
	// absorbs the infiltrated volume and moves by its Darcy velocity in
	// the same step; theta is solved from volume conservation over its
	// (possibly widened) governing span rather than bumped independently
	// of the depth change, so no water is invented by the front simply
	// covering more ground.
	deepestIdx := l.Len() - 1
	deepest := l.At(deepestIdx)
	{
		spanBefore := frontGoverningSpan(l, col, deepestIdx)
		if spanBefore <= 0 {
			spanBefore = math.Max(deepest.DepthCm, annihilationTolerance)
		}
		volBefore := spanBefore * deepest.Theta
		lyr := col.At(deepest.LayerNum)

		deepest.DepthCm += deepest.DzDt * dtH
		if deepest.DepthCm > col.TotalDepthCm() {
			deepest.DepthCm = col.TotalDepthCm()
		}
		spanAfter := frontGoverningSpan(l, col, deepestIdx)
		if spanAfter <= 0 {
			spanAfter = spanBefore
		}
		newTheta := (volBefore + infiltratedCm) / spanAfter
		if newTheta > lyr.Soil.ThetaS {
			newTheta = lyr.Soil.ThetaS
		}
		deepest.Theta = newTheta
	}
	for i := deepestIdx - 1; i >= 0; i-- {
		f := l.At(i)
		f.DepthCm += f.DzDt * dtH
	}

	// Phase 3 — merge within a layer while (I2) is violated.
	for {
		merged := false
		for i := 0; i < l.Len()-1; i++ {
			f, next := l.At(i), l.At(i+1)
			if f.LayerNum != next.LayerNum || f.Theta > next.Theta {
				continue
			}
			spanF := frontGoverningSpan(l, col, i)
			spanNext := frontGoverningSpan(l, col, i+1)
			mergedSpan := spanF + spanNext
			if mergedSpan > 0 {
				next.Theta = (spanF*f.Theta + spanNext*next.Theta) / mergedSpan
			}
			l.Delete(i)
			merged = true
			break
		}
		if !merged {
			break
		}
	}

	// Phase 4 — layer crossing.
	for i := 0; i < l.Len(); i++ {
		f := l.At(i)
		if f.LayerNum >= col.NumLayers() {
			continue
		}
		bottom := col.BottomCm(f.LayerNum)
		if f.DepthCm <= bottom {
			continue
		}
		excess := f.DepthCm - bottom
		lyr := col.At(f.LayerNum)
		psi := lyr.Soil.Psi(f.Theta)
		f.DepthCm = bottom
		f.ToBottom = true
		f.PsiCm = psi
		nextNum := f.LayerNum + 1
		nextLyr := col.At(nextNum)
		companionTheta := nextLyr.Soil.Theta(psi)
		companionDepth := bottom + excess
		if companionDepth > col.BottomCm(nextNum) {
			companionDepth = col.BottomCm(nextNum)
		}
		companion := &front.Front{
			DepthCm:  companionDepth,
			Theta:    companionTheta,
			PsiCm:    psi,
			LayerNum: nextNum,
			KCmPerH:  nextLyr.Soil.K(companionTheta) * nextLyr.FrozenFactor,
		}
		l.InsertAfter(i, companion)
		i++
	}

	// Phase 5 — annihilate a head front that has relaxed to background.
	for l.Len() > 0 {
		head := l.Head()
		bg := col.At(head.LayerNum).BackgroundTheta
		if math.Abs(head.Theta-bg) > annihilationTolerance {
			break
		}
		l.Delete(0)
	}

	// Phase 6 — AET withdrawal, proportional to each front's own
	// availability above wilting. Only water held by actual fronts is
	// withdrawable — the background fill below the deepest front isn't a
	// tracked state a flux can draw down — so each layer's share is capped
	// by the sum of its fronts' own availability, never by the layer's
	// volume-average (which also counts that untracked background water).
	aetApplied := 0.0
	remaining := aetDemandCm
	if remaining > 0 && l.Len() > 0 {
		for ln := 1; ln <= col.NumLayers() && remaining > 0; ln++ {
			lyr := col.At(ln)
			thetaWp := lyr.Soil.Theta(wiltingPsiCm)

			idxs := []int{}
			vols := []float64{}
			totalAvail := 0.0
			for i := 0; i < l.Len(); i++ {
				f := l.At(i)
				if f.LayerNum != ln {
					continue
				}
				span := frontGoverningSpan(l, col, i)
				vol := (f.Theta - thetaWp) * span
				if vol < 0 {
					vol = 0
				}
				idxs = append(idxs, i)
				vols = append(vols, vol)
				totalAvail += vol
			}
			if totalAvail <= 0 {
				continue
			}
			demand := math.Min(remaining, totalAvail)
			for k, i := range idxs {
				f := l.At(i)
				share := demand * vols[k] / totalAvail
				span := frontGoverningSpan(l, col, i)
				if span > 0 {
					f.Theta -= share / span
				}
			}
			aetApplied += demand
			remaining -= demand
		}
	}

	afterStorage, err := ColumnStorage(l, col)
	if err != nil {
		return AdvanceResult{}, err
	}
	percolation := beforeStorage + infiltratedCm - aetApplied - afterStorage

	return AdvanceResult{PercolationCm: percolation, AETAppliedCm: aetApplied}, nil
}
