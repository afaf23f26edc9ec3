// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"math"

	"github.com/cpmech/lgar/layer"
)

// DryDepth estimates the initial depth of a newly created surficial
// front, given the current top-layer theta, so that its arrival
// conductance matches the available precipitation over dtH. The result
// is clamped to the top layer's thickness.
func DryDepth(dtH, thetaTop float64, col *layer.Column) float64 {
	top := col.At(1)
	dTheta := top.Soil.ThetaS - thetaTop
	if dTheta <= 0 {
		return 0
	}
	k := top.Soil.K(thetaTop) * top.FrozenFactor
	a := dtH * k / dTheta
	b := 4.0 * dtH * k * math.Abs(top.Soil.PsiAE) / dTheta
	d := 0.5 * (a + math.Sqrt(a*a+b))
	if d > top.ThicknessCm {
		d = top.ThicknessCm
	}
	return d
}
