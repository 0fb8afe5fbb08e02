// Copyright 2016 The Gophase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabular

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the interpolated curve together with the samples
//  argsCurve -- arguments for the interpolated curve; e.g. &plt.A{C:"b"}
//  argsDots  -- arguments for the samples; e.g. &plt.A{C:"k", M:"o"}
//               if argsDots == nil, samples are skiped
func Plot(tab *Table, xmin, xmax float64, npts int, argsCurve, argsDots *plt.A) {
	X := utl.LinSpace(xmin, xmax, npts)
	Y := make([]float64, npts)
	for i, x := range X {
		Y[i] = tab.Interpolate(x)
	}
	plt.Plot(X, Y, argsCurve)
	if argsDots != nil {
		plt.Plot(tab.xx, tab.yy, argsDots)
	}
}
