// Copyright 2016 The Gophase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/floats"
)

// ConstDensity implements an incompressible ideal-solution phase: the mass
// density is constant no matter what the composition, activity coefficients
// are all unity and the activity of a species equals its mole fraction.
// Reference-state enthalpies and entropies are constant per species
type ConstDensity struct {

	// species data
	species []Species // names and molar masses

	// parameters
	rho float64   // constant mass density [kg/m³]
	h0  []float64 // per-species reference molar enthalpy [J/kmol]
	s0  []float64 // per-species reference molar entropy [J/(kmol·K)]

	// state
	x []float64 // mole fractions
	T float64   // temperature [K]

	// reference state (nondimensional)
	hRT []float64 // h/(R·T)
	sR  []float64 // s/R

	// refresh recomputes the reference-state slices from the current state;
	// called at the end of every composition/temperature setter so that
	// property accessors are pure reads. Variants embedding ConstDensity
	// replace this hook during their Init
	refresh func()
}

// add model to factory
func init() {
	allocators["constdensity"] = func() Model { return new(ConstDensity) }
}

// Init initialises this structure
//  Parameters:
//   rho       -- mass density [kg/m³]
//   T0        -- initial temperature [K]; optional, default is 298.15
//   h0_<name> -- reference molar enthalpy of species <name> [J/kmol]; optional, default is 0
//   s0_<name> -- reference molar entropy of species <name> [J/(kmol·K)]; optional, default is 0
func (o *ConstDensity) Init(species []Species, prms dbf.Params) (err error) {

	// species data
	if len(species) < 1 {
		return chk.Err("constdensity: at least one species is required")
	}
	o.species = species
	nsp := len(species)
	o.x = make([]float64, nsp)
	la.Vector(o.x).Fill(1.0 / float64(nsp))
	o.h0 = make([]float64, nsp)
	o.s0 = make([]float64, nsp)
	o.hRT = make([]float64, nsp)
	o.sR = make([]float64, nsp)
	o.T = 298.15

	// parameters
	for _, p := range prms {
		name := strings.ToLower(p.N)
		switch {
		case name == "rho":
			o.rho = p.V
		case name == "t0":
			o.T = p.V
		case strings.HasPrefix(name, "h0_"):
			k := o.SpeciesIndex(p.N[len("h0_"):])
			if k < 0 {
				return chk.Err("constdensity: species %q in parameter %q is unknown", p.N[len("h0_"):], p.N)
			}
			o.h0[k] = p.V
		case strings.HasPrefix(name, "s0_"):
			k := o.SpeciesIndex(p.N[len("s0_"):])
			if k < 0 {
				return chk.Err("constdensity: species %q in parameter %q is unknown", p.N[len("s0_"):], p.N)
			}
			o.s0[k] = p.V
		default:
			return chk.Err("constdensity: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.rho < 1e-13 {
		return chk.Err("constdensity: 'rho' must be given in database of material parameters")
	}
	for k, sp := range species {
		if sp.M < 1e-13 {
			return chk.Err("constdensity: molar mass of species %q (index %d) must be positive", sp.Name, k)
		}
	}

	// reference state
	o.refresh = o.refreshRef
	o.refresh()
	return
}

// GetPrms gets (an example) of parameters
func (o ConstDensity) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rho", V: 2200.0}, // [kg/m³]
			&dbf.P{N: "T0", V: 298.15},  // [K]
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.rho},
		&dbf.P{N: "T0", V: o.T},
	}
}

// Nspecies returns the number of species
func (o *ConstDensity) Nspecies() int {
	return len(o.species)
}

// SpeciesIndex returns the index of the named species, or -1 if absent
func (o *ConstDensity) SpeciesIndex(name string) int {
	for k, sp := range o.species {
		if sp.Name == name {
			return k
		}
	}
	return -1
}

// Temperature returns the current temperature [K]
func (o *ConstDensity) Temperature() float64 {
	return o.T
}

// MoleFractions returns the current mole fractions (read-only)
func (o *ConstDensity) MoleFractions() []float64 {
	return o.x
}

// MeanMolarMass computes Σ xₖ·Mₖ [kg/kmol]
func (o *ConstDensity) MeanMolarMass() float64 {
	var mmw float64
	for k, sp := range o.species {
		mmw += o.x[k] * sp.M
	}
	return mmw
}

// MolarDensity computes ρ/M̄ [kmol/m³]
func (o *ConstDensity) MolarDensity() float64 {
	return o.rho / o.MeanMolarMass()
}

// SetTemperature sets the temperature [K] and refreshes the reference state
func (o *ConstDensity) SetTemperature(T float64) {
	o.T = T
	o.refresh()
}

// SetMoleFractions sets mole fractions, normalising them to sum to one
func (o *ConstDensity) SetMoleFractions(x []float64) {
	copy(o.x, x)
	floats.Scale(1.0/floats.Sum(o.x), o.x)
	o.refresh()
}

// SetMoleFractionsNoNorm sets mole fractions without normalisation
func (o *ConstDensity) SetMoleFractionsNoNorm(x []float64) {
	copy(o.x, x)
	o.refresh()
}

// SetMassFractions sets the composition from mass fractions, normalising the
// input to sum to one before converting to mole fractions
func (o *ConstDensity) SetMassFractions(y []float64) {
	sum := floats.Sum(y)
	for k, sp := range o.species {
		o.x[k] = y[k] / (sum * sp.M)
	}
	floats.Scale(1.0/floats.Sum(o.x), o.x)
	o.refresh()
}

// SetMassFractionsNoNorm sets the composition from mass fractions taken as
// given (no renormalisation of the input)
func (o *ConstDensity) SetMassFractionsNoNorm(y []float64) {
	for k, sp := range o.species {
		o.x[k] = y[k] / sp.M
	}
	floats.Scale(1.0/floats.Sum(o.x), o.x)
	o.refresh()
}

// SetConcentrations sets the composition from molar concentrations [kmol/m³]
func (o *ConstDensity) SetConcentrations(conc []float64) {
	copy(o.x, conc)
	floats.Scale(1.0/floats.Sum(o.x), o.x)
	o.refresh()
}

// StandardConcentration returns the standard concentration c⁰ₖ [kmol/m³]
// used to normalise the activity concentration of species k. For this phase
// the value is species independent; the index k exists for interface
// uniformity with phases of non-uniform standard concentration
func (o *ConstDensity) StandardConcentration(k int) float64 {
	return o.MolarDensity()
}

// ActivityConcentrations computes cₖ = xₖ·c⁰ (activity equals mole fraction)
func (o *ConstDensity) ActivityConcentrations(c []float64) {
	c0 := o.MolarDensity()
	for k := range o.x {
		c[k] = o.x[k] * c0
	}
}

// ActivityCoefficients fills ac with ones (ideal solution)
func (o *ConstDensity) ActivityCoefficients(ac []float64) {
	la.Vector(ac).Fill(1.0)
}

// RefEnthalpiesRT returns hₖ/(R·T) for all species
func (o *ConstDensity) RefEnthalpiesRT() []float64 {
	return o.hRT
}

// RefEntropiesR returns sₖ/R for all species
func (o *ConstDensity) RefEntropiesR() []float64 {
	return o.sR
}

// refreshRef recomputes the nondimensional reference state of all species
// from the constant per-species h0 and s0
func (o *ConstDensity) refreshRef() {
	for k := range o.species {
		o.hRT[k] = o.h0[k] / (Rgas * o.T)
		o.sR[k] = o.s0[k] / Rgas
	}
}
