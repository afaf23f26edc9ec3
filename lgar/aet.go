// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"math"

	"github.com/cpmech/lgar/front"
	"github.com/cpmech/lgar/layer"
)

// AET-related constants governing the Budyko-curve reduction below.
const (
	aetThresholdTheta = 0.85 // Theta*, scaled-moisture threshold
	aetBudykoExponent = 1.0  // e
)

// layerStorageCm sums the wedge contributions of ColumnStorage confined to
// one layer, used to derive that layer's volume-averaged theta.
func layerStorageCm(l *front.List, col *layer.Column, layerNum int) float64 {
	top := col.TopCm(layerNum)
	bottom := col.BottomCm(layerNum)
	total := 0.0
	last := -1
	l.Walk(func(i int, f *front.Front) {
		if f.LayerNum != layerNum {
			return
		}
		if i == 0 || l.At(i-1).LayerNum != layerNum {
			total += (f.DepthCm - top) * f.Theta
		}
		last = i
		if next := l.Next(i); next != nil && next.LayerNum == layerNum {
			total += (next.DepthCm - f.DepthCm) * f.Theta
		}
	})
	if last == -1 {
		return (bottom - top) * col.At(layerNum).BackgroundTheta
	}
	lastFront := l.At(last)
	tailTheta := col.At(layerNum).BackgroundTheta
	if l.Next(last) != nil {
		tailTheta = lastFront.Theta
	}
	total += (bottom - lastFront.DepthCm) * tailTheta
	return total
}

// LayerAverageTheta returns the volume-averaged theta of layerNum given
// the current front list.
func LayerAverageTheta(l *front.List, col *layer.Column, layerNum int) float64 {
	thickness := col.BottomCm(layerNum) - col.TopCm(layerNum)
	return layerStorageCm(l, col, layerNum) / thickness
}

// ComputeAET computes actual evapotranspiration for the sub-step,
// summing a Budyko-curve rate across every layer, capped by the water
// available above each layer's theta_r.
func ComputeAET(petCmPerH, dtH, wiltingPsiCm float64, l *front.List, col *layer.Column) float64 {
	total := 0.0
	for ln := 1; ln <= col.NumLayers(); ln++ {
		lyr := col.At(ln)
		thetaWp := lyr.Soil.Theta(wiltingPsiCm)
		avgTheta := LayerAverageTheta(l, col, ln)
		s := (avgTheta - thetaWp) / (lyr.Soil.ThetaS - thetaWp)
		if s < 0 {
			s = 0
		}
		rate := petCmPerH
		if s < aetThresholdTheta {
			rate = petCmPerH * math.Pow(s/aetThresholdTheta, aetBudykoExponent)
		}
		demand := rate * dtH
		thickness := col.BottomCm(ln) - col.TopCm(ln)
		available := (avgTheta - lyr.Soil.ThetaR) * thickness
		if available < 0 {
			available = 0
		}
		if demand > available {
			demand = available
		}
		total += demand
	}
	return total
}
