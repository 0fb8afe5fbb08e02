// Copyright 2016 The Gophase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"github.com/CSM-Offenburg/gophase/mdl/tabular"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ConstDensityTabulated implements a constant-density solution phase whose
// reference-state enthalpy and entropy are not closed-form but tabulated
// against the mole fraction of one "active" (e.g. intercalating) species.
// Typical use is a solid intercalation electrode where the open-circuit
// data fixes h(x) and s(x) of the intercalated species.
//
// The model keeps the last interpolated molar (h, s) pair together with the
// mole fraction and temperature they were computed at; as long as neither
// changes, refresh does not touch the tables. The nondimensional forms
// h/(R·T) and s/R are rewritten from the cached molar values whenever only
// the temperature changed
type ConstDensityTabulated struct {
	ConstDensity // constant-density ideal-solution bookkeeping

	// tables
	htab *tabular.Table // molar enthalpy [J/kmol] vs active mole fraction
	stab *tabular.Table // molar entropy [J/(kmol·K)] vs active mole fraction

	// active species
	kact int // index of the active species; -1 before SetActiveSpecies

	// cache
	lastX    float64 // active mole fraction at the last refresh
	lastT    float64 // temperature at the last refresh
	hc, sc   float64 // cached molar h and s interpolated at lastX
	valid    bool    // cache holds values for lastX
	nlookups int     // number of table interpolation passes
}

// add model to factory
func init() {
	allocators["constdensitytabulated"] = func() Model { return new(ConstDensityTabulated) }
}

// Init initialises this structure. Parameters are those of ConstDensity;
// tables and the active species are wired afterwards with SetTables and
// SetActiveSpecies
func (o *ConstDensityTabulated) Init(species []Species, prms dbf.Params) (err error) {
	err = o.ConstDensity.Init(species, prms)
	if err != nil {
		return
	}
	o.kact = -1
	o.refresh = o.refreshTab
	return
}

// SetTables sets the enthalpy and entropy tables
//  Note: the two tables need not share the same mole-fraction grid
func (o *ConstDensityTabulated) SetTables(h, s *tabular.Table) (err error) {
	if h == nil || s == nil {
		return chk.Err("constdensitytabulated: both enthalpy and entropy tables must be given")
	}
	o.htab = h
	o.stab = s
	o.valid = false
	o.refresh()
	return
}

// SetActiveSpecies fixes the species whose mole fraction indexes the tables.
// Must be called exactly once; the choice is immutable afterwards
func (o *ConstDensityTabulated) SetActiveSpecies(name string) (err error) {
	if o.kact >= 0 {
		return chk.Err("constdensitytabulated: active species is already set to %q and cannot be changed", o.species[o.kact].Name)
	}
	k := o.SpeciesIndex(name)
	if k < 0 {
		return chk.Err("constdensitytabulated: active species %q is not in this phase", name)
	}
	o.kact = k
	o.valid = false
	o.refresh()
	return
}

// Active returns the index of the active species, or -1 if not set yet
func (o *ConstDensityTabulated) Active() int {
	return o.kact
}

// NLookups returns the number of table interpolation passes performed so far
func (o *ConstDensityTabulated) NLookups() int {
	return o.nlookups
}

// Invalidate marks the cached reference state stale, forcing the next
// refresh to recompute even if the active mole fraction is unchanged
func (o *ConstDensityTabulated) Invalidate() {
	o.valid = false
}

// SetMoleFractions sets mole fractions (normalised) and invalidates the cache
func (o *ConstDensityTabulated) SetMoleFractions(x []float64) {
	o.valid = false
	o.ConstDensity.SetMoleFractions(x)
}

// SetMoleFractionsNoNorm sets mole fractions as given and invalidates the cache
func (o *ConstDensityTabulated) SetMoleFractionsNoNorm(x []float64) {
	o.valid = false
	o.ConstDensity.SetMoleFractionsNoNorm(x)
}

// SetMassFractions sets the composition from mass fractions (normalised) and
// invalidates the cache
func (o *ConstDensityTabulated) SetMassFractions(y []float64) {
	o.valid = false
	o.ConstDensity.SetMassFractions(y)
}

// SetMassFractionsNoNorm sets the composition from mass fractions as given
// and invalidates the cache
func (o *ConstDensityTabulated) SetMassFractionsNoNorm(y []float64) {
	o.valid = false
	o.ConstDensity.SetMassFractionsNoNorm(y)
}

// SetConcentrations sets the composition from molar concentrations and
// invalidates the cache
func (o *ConstDensityTabulated) SetConcentrations(conc []float64) {
	o.valid = false
	o.ConstDensity.SetConcentrations(conc)
}

// refreshTab recomputes the reference state. The active species' slot gets
// the tabulated values; all other species keep the constant-density ones
func (o *ConstDensityTabulated) refreshTab() {
	if o.htab == nil || o.stab == nil || o.kact < 0 {
		o.refreshRef()
		return
	}
	x := o.x[o.kact]
	if o.valid && x == o.lastX && o.T == o.lastT {
		return
	}
	o.refreshRef()
	if !o.valid || x != o.lastX {
		o.hc = o.htab.Interpolate(x)
		o.sc = o.stab.Interpolate(x)
		o.nlookups++
	}
	o.hRT[o.kact] = o.hc / (Rgas * o.T)
	o.sR[o.kact] = o.sc / Rgas
	o.lastX = x
	o.lastT = o.T
	o.valid = true
}
