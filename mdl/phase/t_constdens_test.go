// Copyright 2016 The Gophase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_constdens01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constdens01. parameters and activity model")

	mdl, err := New("constdensity")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	species := []Species{
		{Name: "Li[an]", M: 6.94},
		{Name: "host", M: 50.0},
	}
	prms := dbf.Params{
		&dbf.P{N: "rho", V: 2200.0},
		&dbf.P{N: "T0", V: 300.0},
		&dbf.P{N: "h0_host", V: 1000.0},
		&dbf.P{N: "s0_host", V: 100.0},
	}
	err = mdl.Init(species, prms)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	m := mdl.(*ConstDensity)
	chk.IntAssert(m.Nspecies(), 2)
	chk.IntAssert(m.SpeciesIndex("host"), 1)
	chk.IntAssert(m.SpeciesIndex("unknown"), -1)
	chk.Float64(tst, "T", 1e-17, m.Temperature(), 300.0)

	// uniform composition after Init
	chk.Array(tst, "x", 1e-17, m.MoleFractions(), []float64{0.5, 0.5})
	mmw := 0.5*6.94 + 0.5*50.0
	chk.Float64(tst, "mmw", 1e-15, m.MeanMolarMass(), mmw)
	chk.Float64(tst, "c0", 1e-14, m.MolarDensity(), 2200.0/mmw)

	// standard concentration is species independent
	chk.Float64(tst, "c0(0)==c0(1)", 1e-17, m.StandardConcentration(0), m.StandardConcentration(1))

	// activity concentrations and coefficients
	c := make([]float64, 2)
	ac := make([]float64, 2)
	m.ActivityConcentrations(c)
	m.ActivityCoefficients(ac)
	c0 := m.MolarDensity()
	chk.Array(tst, "c", 1e-15, c, []float64{0.5 * c0, 0.5 * c0})
	chk.Array(tst, "ac", 1e-17, ac, []float64{1, 1})

	// reference state: h0 and s0 default to zero except for 'host'
	chk.Array(tst, "h/RT", 1e-17, m.RefEnthalpiesRT(), []float64{0, 1000.0 / (Rgas * 300.0)})
	chk.Array(tst, "s/R", 1e-17, m.RefEntropiesR(), []float64{0, 100.0 / Rgas})

	// temperature change rescales h/RT but not s/R
	m.SetTemperature(600.0)
	chk.Array(tst, "h/RT", 1e-17, m.RefEnthalpiesRT(), []float64{0, 1000.0 / (Rgas * 600.0)})
	chk.Array(tst, "s/R", 1e-17, m.RefEntropiesR(), []float64{0, 100.0 / Rgas})
}

func Test_constdens02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constdens02. composition setters")

	mdl, err := New("constdensity")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	species := []Species{
		{Name: "Li[an]", M: 6.94},
		{Name: "host", M: 50.0},
	}
	err = mdl.Init(species, dbf.Params{&dbf.P{N: "rho", V: 2200.0}})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	m := mdl.(*ConstDensity)

	// mole fractions are normalised
	m.SetMoleFractions([]float64{2, 2})
	chk.Array(tst, "x", 1e-17, m.MoleFractions(), []float64{0.5, 0.5})

	// ... unless the caller says otherwise
	m.SetMoleFractionsNoNorm([]float64{0.3, 0.3})
	chk.Array(tst, "x", 1e-17, m.MoleFractions(), []float64{0.3, 0.3})

	// mass fractions converted through the molar masses
	y := []float64{0.2, 0.8}
	n0, n1 := y[0]/6.94, y[1]/50.0
	m.SetMassFractions(y)
	chk.Array(tst, "x", 1e-14, m.MoleFractions(), []float64{n0 / (n0 + n1), n1 / (n0 + n1)})

	// concentrations normalised by their sum
	m.SetConcentrations([]float64{30.0, 10.0})
	chk.Array(tst, "x", 1e-15, m.MoleFractions(), []float64{0.75, 0.25})

	// activity concentration follows the composition
	c := make([]float64, 2)
	m.ActivityConcentrations(c)
	c0 := m.MolarDensity()
	chk.Array(tst, "c", 1e-14, c, []float64{0.75 * c0, 0.25 * c0})
}

func Test_constdens03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constdens03. initialisation errors")

	var m ConstDensity
	species := []Species{{Name: "a", M: 1.0}}

	// missing rho
	err := m.Init(species, nil)
	if err == nil {
		tst.Errorf("Init should have failed without 'rho'\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// unknown parameter
	err = m.Init(species, dbf.Params{&dbf.P{N: "rho", V: 1.0}, &dbf.P{N: "wrong", V: 0}})
	if err == nil {
		tst.Errorf("Init should have failed with unknown parameter\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// unknown species in h0_ parameter
	err = m.Init(species, dbf.Params{&dbf.P{N: "rho", V: 1.0}, &dbf.P{N: "h0_b", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed with unknown species\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// no species
	err = m.Init(nil, dbf.Params{&dbf.P{N: "rho", V: 1.0}})
	if err == nil {
		tst.Errorf("Init should have failed without species\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// unknown model name
	_, err = New("unknownmodel")
	if err == nil {
		tst.Errorf("New should have failed with unknown model\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
