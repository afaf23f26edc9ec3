// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soiltype implements the closed-form van Genuchten-Mualem
// retention and conductivity functions for a soil type, following the
// same parameter-table and factory conventions as gofem's mreten and
// mconduct packages, but collapsed into the single immutable record the
// LGAR wetting-front solver needs: theta(psi), psi(theta), K(theta) and
// dK/dtheta, all defined on psi >= 0 (tension head, cm).
package soiltype

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// seClamp keeps effective saturation away from the 0/1 singularities of the
// van Genuchten-Mualem closed forms.
const seClamp = 1e-6

// Type is an immutable soil-type record: van Genuchten retention
// parameters plus Mualem's hydraulic conductivity model.
type Type struct {
	Name    string  // identifying name, e.g. "silt-loam"
	ThetaR  float64 // residual water content
	ThetaS  float64 // saturated water content (porosity)
	Alpha   float64 // van Genuchten alpha, 1/cm
	N       float64 // van Genuchten n (> 1)
	M       float64 // 1 - 1/n, derived
	Ks      float64 // saturated hydraulic conductivity, cm/h
	PsiAE   float64 // air-entry (bubbling) pressure head, cm
	Lambda  float64 // optional Brooks-Corey lambda, carried but unused by the VG-Mualem closed form
}

// New builds a Type from a named parameter table, following the same
// case-insensitive-name dispatch as mreten.BrooksCorey.Init /
// retention.VanGen.Init.
func New(name string, prms fun.Prms) (t *Type, err error) {
	t = &Type{Name: name}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "theta_r", "thetar":
			t.ThetaR = p.V
		case "theta_s", "thetas":
			t.ThetaS = p.V
		case "alpha":
			t.Alpha = p.V
		case "n":
			t.N = p.V
		case "ks":
			t.Ks = p.V
		case "psi_ae", "psiae":
			t.PsiAE = p.V
		case "lambda":
			t.Lambda = p.V
		default:
			return nil, chk.Err("soiltype %q: parameter named %q is incorrect\n", name, p.N)
		}
	}
	if t.N <= 1.0 {
		return nil, chk.Err("soiltype %q: n must be > 1 (n = %v)\n", name, t.N)
	}
	if t.ThetaS <= t.ThetaR {
		return nil, chk.Err("soiltype %q: theta_s must be > theta_r\n", name)
	}
	t.M = 1.0 - 1.0/t.N
	return t, nil
}

// dtheta returns theta_s - theta_r, the span used to normalise Se.
func (t *Type) dtheta() float64 {
	return t.ThetaS - t.ThetaR
}

// Se computes the effective saturation for a given theta, clamped away
// from 0 and 1 to keep the closed forms below from overflowing.
func (t *Type) Se(theta float64) float64 {
	se := (theta - t.ThetaR) / t.dtheta()
	if se < seClamp {
		se = seClamp
	}
	if se > 1.0-seClamp {
		se = 1.0 - seClamp
	}
	return se
}

// Theta computes theta(psi): theta_s on psi <= 0, the van Genuchten
// closed form otherwise.
func (t *Type) Theta(psi float64) float64 {
	if psi <= 0.0 {
		return t.ThetaS
	}
	return t.ThetaR + t.dtheta()*math.Pow(1.0+math.Pow(t.Alpha*psi, t.N), -t.M)
}

// Psi inverts Theta: given a theta in [theta_r, theta_s], returns the
// tension head psi >= 0 consistent with it.
func (t *Type) Psi(theta float64) float64 {
	se := t.Se(theta)
	if se >= 1.0-seClamp {
		return 0.0
	}
	return (1.0 / t.Alpha) * math.Pow(math.Pow(se, -1.0/t.M)-1.0, 1.0/t.N)
}

// K computes the Mualem hydraulic conductivity at theta.
func (t *Type) K(theta float64) float64 {
	se := t.Se(theta)
	inner := 1.0 - math.Pow(1.0-math.Pow(se, 1.0/t.M), t.M)
	return t.Ks * math.Sqrt(se) * inner * inner
}

// DKDTheta computes the analytic partial derivative dK/dtheta. On psi <= 0
// (i.e. at or above saturation) the derivative is defined to be zero.
func (t *Type) DKDTheta(theta float64) float64 {
	dth := t.dtheta()
	se := t.Se(theta)
	if se >= 1.0-seClamp {
		return 0.0
	}
	seM := math.Pow(se, 1.0/t.M)
	inner := 1.0 - math.Pow(1.0-seM, t.M)
	// d(inner^2 * sqrt(se))/dse, chain-ruled through dse/dtheta = 1/dtheta
	dInnerDse := math.Pow(1.0-seM, t.M-1.0) * seM / se
	dDse := 0.5*math.Pow(se, -0.5)*inner*inner + math.Sqrt(se)*2.0*inner*dInnerDse
	return t.Ks * dDse / dth
}
