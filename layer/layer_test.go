// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"testing"

	"github.com/cpmech/lgar/soiltype"
)

func twoLayers(tst *testing.T) *Column {
	sand := &soiltype.Type{Name: "sand", ThetaR: 0.02, ThetaS: 0.43, Alpha: 0.035, N: 3.2, M: 1.0 - 1.0/3.2, Ks: 10.0, PsiAE: 7.3}
	clay := &soiltype.Type{Name: "clay", ThetaR: 0.09, ThetaS: 0.46, Alpha: 0.008, N: 1.09, M: 1.0 - 1.0/1.09, Ks: 0.02, PsiAE: 37.3}
	c, err := NewColumn([]*Layer{
		{Num: 1, ThicknessCm: 30, Soil: sand},
		{Num: 2, ThicknessCm: 170, Soil: clay},
	})
	if err != nil {
		tst.Fatalf("NewColumn failed: %v", err)
	}
	return c
}

func Test_boundaries(tst *testing.T) {
	c := twoLayers(tst)
	if c.TotalDepthCm() != 200 {
		tst.Errorf("total depth = %v, want 200", c.TotalDepthCm())
	}
	if c.BottomCm(1) != 30 || c.TopCm(1) != 0 {
		tst.Errorf("layer 1 boundaries wrong: top=%v bottom=%v", c.TopCm(1), c.BottomCm(1))
	}
	if c.BottomCm(2) != 200 || c.TopCm(2) != 30 {
		tst.Errorf("layer 2 boundaries wrong: top=%v bottom=%v", c.TopCm(2), c.BottomCm(2))
	}
}

func Test_LayerAtDepth(tst *testing.T) {
	c := twoLayers(tst)
	cases := []struct {
		depth float64
		want  int
	}{{0, 1}, {15, 1}, {30, 1}, {30.001, 2}, {100, 2}, {200, 2}}
	for _, tc := range cases {
		if got := c.LayerAtDepth(tc.depth); got != tc.want {
			tst.Errorf("LayerAtDepth(%v) = %v, want %v", tc.depth, got, tc.want)
		}
	}
}

func Test_NewColumn_rejects_bad_thickness(tst *testing.T) {
	sand := &soiltype.Type{Name: "sand", ThetaR: 0.02, ThetaS: 0.43, Alpha: 0.035, N: 3.2, M: 1 - 1.0/3.2, Ks: 10, PsiAE: 7.3}
	if _, err := NewColumn([]*Layer{{Num: 1, ThicknessCm: 0, Soil: sand}}); err == nil {
		tst.Errorf("expected error for zero thickness")
	}
}
