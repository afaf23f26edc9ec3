// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package giuh

import "testing"

func Test_NewBuffer_rejects_empty_and_negative(tst *testing.T) {
	if _, err := NewBuffer(nil); err == nil {
		tst.Errorf("expected an error for empty ordinates")
	}
	if _, err := NewBuffer([]float64{0.5, -0.1}); err == nil {
		tst.Errorf("expected an error for a negative ordinate")
	}
}

func Test_NewBuffer_normalises_ordinates(tst *testing.T) {
	b, err := NewBuffer([]float64{2, 2})
	if err != nil {
		tst.Fatalf("NewBuffer failed: %v", err)
	}
	sum := 0.0
	for _, o := range b.ordinates {
		sum += o
	}
	if diff := sum - 1.0; diff > 1e-12 || diff < -1e-12 {
		tst.Errorf("ordinates did not normalise to 1, got %v", sum)
	}
}

func Test_Convolve_conserves_total_mass(tst *testing.T) {
	b, err := NewBuffer([]float64{0.5, 0.3, 0.2})
	if err != nil {
		tst.Fatalf("NewBuffer failed: %v", err)
	}
	total := 0.0
	total += b.Convolve(1.0)
	total += b.Convolve(0.0)
	total += b.Convolve(0.0)
	total += b.Convolve(0.0)
	if diff := total - 1.0; diff > 1e-9 || diff < -1e-9 {
		tst.Errorf("routed total = %v, want 1.0 after the pulse drains", total)
	}
	if b.Pending() > 1e-9 {
		tst.Errorf("expected the queue to be empty once drained, got pending=%v", b.Pending())
	}
}
