// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soiltype

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/fun"
)

func siltLoam(tst *testing.T) *Type {
	t, err := New("silt-loam", fun.Prms{
		&fun.Prm{N: "theta_r", V: 0.015},
		&fun.Prm{N: "theta_s", V: 0.485},
		&fun.Prm{N: "alpha", V: 0.0066},
		&fun.Prm{N: "n", V: 1.37},
		&fun.Prm{N: "ks", V: 0.65},
		&fun.Prm{N: "psi_ae", V: 20.8},
	})
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	return t
}

func Test_theta_psi_roundtrip(tst *testing.T) {
	s := siltLoam(tst)
	for _, psi := range []float64{5, 20, 50, 150, 500} {
		th := s.Theta(psi)
		back := s.Psi(th)
		if math.Abs(back-psi) > 1e-6*psi+1e-6 {
			tst.Errorf("roundtrip mismatch at psi=%v: theta=%v psi(theta)=%v", psi, th, back)
		}
	}
}

func Test_theta_saturates_at_zero_tension(tst *testing.T) {
	s := siltLoam(tst)
	if s.Theta(0) != s.ThetaS {
		tst.Errorf("theta(0) = %v, want theta_s = %v", s.Theta(0), s.ThetaS)
	}
	if s.Theta(-10) != s.ThetaS {
		tst.Errorf("theta(-10) = %v, want theta_s = %v", s.Theta(-10), s.ThetaS)
	}
}

func Test_K_monotone_in_theta(tst *testing.T) {
	s := siltLoam(tst)
	prev := 0.0
	for _, psi := range []float64{500, 200, 100, 50, 20, 5} {
		th := s.Theta(psi)
		k := s.K(th)
		if k < prev {
			tst.Errorf("K not monotone increasing with theta: at theta=%v K=%v < previous %v", th, k, prev)
		}
		if k < 0 {
			tst.Errorf("K negative: %v", k)
		}
		prev = k
	}
	if prev > s.Ks+1e-9 {
		tst.Errorf("K(theta_s-ish) = %v exceeds Ks = %v", prev, s.Ks)
	}
}

func Test_DKDTheta_nonnegative(tst *testing.T) {
	s := siltLoam(tst)
	for _, psi := range []float64{200, 100, 50, 20, 5} {
		th := s.Theta(psi)
		d := s.DKDTheta(th)
		if d < 0 {
			tst.Errorf("dK/dtheta negative at theta=%v: %v", th, d)
		}
	}
}

func Test_New_rejects_bad_params(tst *testing.T) {
	if _, err := New("bad", fun.Prms{&fun.Prm{N: "bogus", V: 1}}); err == nil {
		tst.Errorf("expected error for unknown parameter name")
	}
	if _, err := New("bad", fun.Prms{&fun.Prm{N: "theta_r", V: 0.5}, &fun.Prm{N: "theta_s", V: 0.1}, &fun.Prm{N: "n", V: 2.0}}); err == nil {
		tst.Errorf("expected error for theta_s <= theta_r")
	}
}
