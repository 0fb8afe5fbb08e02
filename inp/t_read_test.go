// Copyright 2016 The Gophase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/CSM-Offenburg/gophase/mdl/phase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. tabulated thermo data file")

	htab, stab, err := ReadTable("data", "limn2o4.csv")
	if err != nil {
		tst.Errorf("ReadTable failed: %v\n", err)
		return
	}

	// samples are sorted on load; comments and blank lines are skiped
	chk.IntAssert(htab.Len(), 6)
	chk.IntAssert(stab.Len(), 6)
	chk.Float64(tst, "xmin", 1e-17, htab.Xmin(), 0.0)
	chk.Float64(tst, "xmax", 1e-17, htab.Xmax(), 1.0)

	// the 0.4 sample appears after the 0.6 one in the file
	chk.Float64(tst, "h(0.4)", 1e-17, htab.Interpolate(0.4), -1.35e7)
	chk.Float64(tst, "s(0.4)", 1e-17, stab.Interpolate(0.4), 1.60e4)
	chk.Float64(tst, "h(0.5)", 1e-10, htab.Interpolate(0.5), -1.425e7)
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. phase database")

	db, err := ReadPhases("data", "phases.json")
	if err != nil {
		tst.Errorf("ReadPhases failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", db)
	chk.IntAssert(len(db.Phases), 2)

	// tabulated cathode phase
	ca := db.Get("cathode")
	if ca == nil {
		tst.Errorf("cannot find phase 'cathode'\n")
		return
	}
	chk.StrAssert(ca.Model, "constdensitytabulated")
	m, ok := ca.Phase.(*phase.ConstDensityTabulated)
	if !ok {
		tst.Errorf("phase 'cathode' has wrong model type\n")
		return
	}
	chk.IntAssert(m.Nspecies(), 2)
	chk.IntAssert(m.Active(), 0)

	// tabulated reference state responds to composition
	m.SetMoleFractions([]float64{0.4, 0.6})
	T := m.Temperature()
	chk.Float64(tst, "h/RT", 1e-15, m.RefEnthalpiesRT()[0], -1.35e7/(phase.Rgas*T))
	chk.Float64(tst, "s/R", 1e-15, m.RefEntropiesR()[0], 1.60e4/phase.Rgas)

	// constant-density electrolyte phase
	el := db.Get("electrolyte")
	if el == nil {
		tst.Errorf("cannot find phase 'electrolyte'\n")
		return
	}
	chk.IntAssert(el.Phase.(*phase.ConstDensity).Nspecies(), 3)
	chk.Float64(tst, "h/RT Li+", 1e-15, el.Phase.RefEnthalpiesRT()[0], -2.0e7/(phase.Rgas*298.15))
	chk.Float64(tst, "s/R Li+", 1e-15, el.Phase.RefEntropiesR()[0], 1.2e4/phase.Rgas)

	// unknown phase
	if db.Get("unknown") != nil {
		tst.Errorf("Get should have returned nil for unknown phase\n")
		return
	}
}
