// Copyright 2016 The Gophase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/CSM-Offenburg/gophase/inp"
	"github.com/CSM-Offenburg/gophase/mdl/phase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".json", true)
	phasename := io.ArgToString(1, "")
	npts := io.ArgToInt(2, 11)

	// message
	io.PfWhite("\nGophase -- tabulated solution phase properties\n\n")
	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"phase database path", "fnamepath", fnamepath,
		"phase to report; first tabulated phase if empty", "phasename", phasename,
		"number of composition points", "npts", npts,
	))

	// read phase database
	dir, fn := filepath.Dir(fnamepath), filepath.Base(fnamepath)
	db, err := inp.ReadPhases(dir, fn)
	if err != nil {
		chk.Panic("cannot read phase database %q:\n%v", fnkey, err)
	}

	// find phase
	var data *inp.PhaseData
	if phasename == "" {
		for _, p := range db.Phases {
			if _, ok := p.Phase.(*phase.ConstDensityTabulated); ok {
				data = p
				break
			}
		}
		if data == nil {
			chk.Panic("database %q has no tabulated phase", fnkey)
		}
	} else {
		data = db.Get(phasename)
		if data == nil {
			chk.Panic("cannot find phase %q in database %q", phasename, fnkey)
		}
	}
	mdl, ok := data.Phase.(*phase.ConstDensityTabulated)
	if !ok {
		chk.Panic("phase %q does not use a tabulated model", data.Name)
	}

	// sweep the active species' mole fraction
	nsp := mdl.Nspecies()
	kact := mdl.Active()
	x := make([]float64, nsp)
	c := make([]float64, nsp)
	io.Pf("\nphase %q, T = %g K, c⁰ sweep below\n\n", data.Name, mdl.Temperature())
	io.Pf("%10s%14s%14s%14s%14s\n", "x", "h/RT", "s/R", "c0", "c_act")
	for _, xa := range utl.LinSpace(0, 1, npts) {
		if nsp > 1 {
			for k := 0; k < nsp; k++ {
				x[k] = (1.0 - xa) / float64(nsp-1)
			}
		}
		x[kact] = xa
		mdl.SetMoleFractions(x)
		mdl.ActivityConcentrations(c)
		io.Pf("%10.4f%14.6g%14.6g%14.6g%14.6g\n",
			xa, mdl.RefEnthalpiesRT()[kact], mdl.RefEntropiesR()[kact],
			mdl.StandardConcentration(kact), c[kact])
	}
}
