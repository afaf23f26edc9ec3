// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"testing"

	"github.com/cpmech/lgar/front"
)

func Test_RunStep_rejects_non_positive_dtH(tst *testing.T) {
	col := homogeneousColumn(tst, 0.1)
	l := front.NewList(&front.Front{DepthCm: 10, Theta: 0.2, LayerNum: 1})
	_, err := RunStep(StepInputs{DtH: 0}, col, l)
	if err == nil {
		tst.Fatalf("expected an error for non-positive dtH")
	}
}

func Test_RunStep_closes_mass_balance_on_a_dry_column(tst *testing.T) {
	col := homogeneousColumn(tst, 0.1)
	l := front.NewList(&front.Front{DepthCm: 20, Theta: 0.2, LayerNum: 1})

	in := StepInputs{
		DtH:          1.0,
		SubDtH:       0.25,
		PrecipCmPerH: 0.5,
		PETCmPerH:    0.01,
		MaxPondingCm: 2.0,
		WiltingPsiCm: -15000,
		Nint:         5,
	}
	res, err := RunStep(in, col, l)
	if err != nil {
		tst.Fatalf("RunStep failed (mass balance or otherwise): %v", err)
	}
	if res.Ledger.PrecipCm <= 0 {
		tst.Errorf("expected accumulated precipitation, got %v", res.Ledger.PrecipCm)
	}
}

func Test_RunStep_creates_surficial_front_on_empty_column(tst *testing.T) {
	col := homogeneousColumn(tst, 0.1)
	l := front.NewList()

	in := StepInputs{
		DtH:          0.5,
		SubDtH:       0.5,
		PrecipCmPerH: 1.0,
		PETCmPerH:    0,
		MaxPondingCm: 5.0,
		WiltingPsiCm: -15000,
		Nint:         3,
	}
	_, err := RunStep(in, col, l)
	if err != nil {
		tst.Fatalf("RunStep failed: %v", err)
	}
	if l.Len() == 0 {
		tst.Errorf("expected a surficial front to have been created")
	}
}

func Test_RunStep_no_forcing_is_a_no_op_within_tolerance(tst *testing.T) {
	col := homogeneousColumn(tst, 0.1)
	l := front.NewList(&front.Front{DepthCm: 20, Theta: 0.3, LayerNum: 1})

	in := StepInputs{DtH: 1.0, SubDtH: 1.0, WiltingPsiCm: -15000, Nint: 2}
	res, err := RunStep(in, col, l)
	if err != nil {
		tst.Fatalf("RunStep failed: %v", err)
	}
	if res.Ledger.InfiltrationCm != 0 || res.Ledger.RunoffCm != 0 {
		tst.Errorf("expected no fluxes with zero forcing, got %+v", res.Ledger)
	}
}
