// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"github.com/cpmech/lgar/front"
	"github.com/cpmech/lgar/layer"
)

// ColumnStorage walks the fronts in order and sums wedge contributions.
// Between two adjacent fronts in the same layer, the span
// belongs to the shallower (wetter) front's theta: that soil was wetted to
// that value as the shallower front advanced past it. A front that opens a
// new layer (no predecessor sharing its layer_num — the column head, or a
// companion just created by a layer crossing) additionally claims the
// span from its layer's top down to itself, at its own theta, since
// nothing shallower already accounts for it. Below the deepest front, the
// column carries each remaining layer's antecedent background theta down
// to the column bottom; with no fronts at all, the whole column is at
// background theta.
func ColumnStorage(l *front.List, col *layer.Column) (float64, error) {
	n := l.Len()
	if n == 0 {
		total := 0.0
		for ln := 1; ln <= col.NumLayers(); ln++ {
			total += (col.BottomCm(ln) - col.TopCm(ln)) * col.At(ln).BackgroundTheta
		}
		return total, nil
	}
	total := 0.0

	l.Walk(func(i int, f *front.Front) {
		// own-wedge: span from this layer's top (or the deepest point a
		// shallower layer's pairwise wedge reached) down to this front,
		// only when no predecessor shares this front's layer.
		if i == 0 || l.At(i-1).LayerNum != f.LayerNum {
			total += (f.DepthCm - col.TopCm(f.LayerNum)) * f.Theta
		}

		next := l.Next(i)
		if next == nil {
			return
		}
		if next.LayerNum == f.LayerNum {
			total += (next.DepthCm - f.DepthCm) * f.Theta
			return
		}
		// cross-layer pair: this front's own layer span is bounded at its
		// layer's bottom; any fully-skipped intervening layers carry
		// their own background theta (adjacent fronts normally differ by
		// exactly one layer, since a companion front is created at every
		// crossing).
		total += (col.BottomCm(f.LayerNum) - f.DepthCm) * f.Theta
		for ln := f.LayerNum + 1; ln < next.LayerNum; ln++ {
			lyr := col.At(ln)
			total += (col.BottomCm(ln) - col.TopCm(ln)) * lyr.BackgroundTheta
		}
	})

	deepest := l.Tail()
	total += (col.BottomCm(deepest.LayerNum) - deepest.DepthCm) * col.At(deepest.LayerNum).BackgroundTheta
	for ln := deepest.LayerNum + 1; ln <= col.NumLayers(); ln++ {
		lyr := col.At(ln)
		total += (col.BottomCm(ln) - col.TopCm(ln)) * lyr.BackgroundTheta
	}
	return total, nil
}
