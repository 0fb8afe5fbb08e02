// Copyright 2016 The Gophase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements models for the thermodynamic state of solution
// phases, to be consumed by chemical equilibrium and kinetics solvers
package phase

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Rgas is the universal gas constant [J/(kmol·K)]
const Rgas = 8314.462618

// Species holds basic species data
type Species struct {
	Name string  `json:"name"`      // name; e.g. "Li[anode]"
	M    float64 `json:"molarmass"` // molar mass [kg/kmol]
}

// ActivityModel defines the activity/concentration interface consumed by
// kinetics managers to compute forward and reverse reaction rates
type ActivityModel interface {
	StandardConcentration(k int) float64 // standard concentration c⁰ₖ [kmol/m³]
	ActivityConcentrations(c []float64)  // cₖ = aₖ·c⁰ₖ; len(c) must equal the number of species
	ActivityCoefficients(ac []float64)   // molar-based activity coefficients; len(ac) must equal the number of species
}

// ReferenceStateProvider defines access to the nondimensional reference-state
// properties of all species. The returned slices are owned by the model and
// are always fresh: every composition or temperature setter refreshes them
// before returning, thus reads here are pure
type ReferenceStateProvider interface {
	RefEnthalpiesRT() []float64 // hₖ/(R·T) for all species
	RefEntropiesR() []float64   // sₖ/R for all species
}

// Model defines solution phase models
type Model interface {
	Init(species []Species, prms dbf.Params) error // initialises phase model
	GetPrms(example bool) dbf.Params               // gets (an example) of parameters
	ActivityModel
	ReferenceStateProvider
}

// New returns a new phase model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'phase' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
