// Copyright 2016 The Gophase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tabular implements one-dimensional lookup tables with linear
// interpolation and clamped extrapolation
package tabular

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Point holds one table sample
type Point struct {
	X float64 `json:"x"` // sample coordinate; e.g. mole fraction
	Y float64 `json:"y"` // tabulated value at X
}

// Table implements a lookup table over strictly increasing sample coordinates
type Table struct {
	xx []float64 // sorted sample coordinates
	yy []float64 // values corresponding to xx
}

// New returns a new table from samples in any order
//  Note: the input is copied and sorted by X; an "invalid table" error is
//        returned if points is empty or two samples share the same X
func New(points []Point) (o *Table, err error) {
	if len(points) < 1 {
		return nil, chk.Err("invalid table: at least one sample is required")
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	o = new(Table)
	o.xx = make([]float64, len(pts))
	o.yy = make([]float64, len(pts))
	for i, p := range pts {
		if i > 0 && p.X == o.xx[i-1] {
			return nil, chk.Err("invalid table: duplicate x coordinate (x=%g)", p.X)
		}
		o.xx[i] = p.X
		o.yy[i] = p.Y
	}
	return
}

// Len returns the number of samples
func (o *Table) Len() int {
	return len(o.xx)
}

// Xmin returns the smallest sample coordinate
func (o *Table) Xmin() float64 {
	return o.xx[0]
}

// Xmax returns the largest sample coordinate
func (o *Table) Xmax() float64 {
	return o.xx[len(o.xx)-1]
}

// Interpolate computes the value at x
//  Note: between bracketing samples the value is linear; at a sample
//        coordinate the sample's value is returned exactly; outside
//        [Xmin,Xmax] the nearest boundary value is returned (clamped
//        extrapolation, never an error)
func (o *Table) Interpolate(x float64) float64 {
	n := len(o.xx)
	if x <= o.xx[0] {
		return o.yy[0]
	}
	if x >= o.xx[n-1] {
		return o.yy[n-1]
	}
	// binary search for the smallest i with xx[i] ≥ x; here 0 < i < n
	i := sort.SearchFloat64s(o.xx, x)
	if o.xx[i] == x {
		return o.yy[i]
	}
	return o.yy[i-1] + (o.yy[i]-o.yy[i-1])*(x-o.xx[i-1])/(o.xx[i]-o.xx[i-1])
}
