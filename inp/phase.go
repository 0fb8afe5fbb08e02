// Copyright 2016 The Gophase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from phase database files and
// tabulated-thermo data files
package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/CSM-Offenburg/gophase/mdl/phase"
	"github.com/CSM-Offenburg/gophase/mdl/tabular"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// PhaseData holds phase data
type PhaseData struct {

	// input
	Name      string          `json:"name"`      // name of phase
	Model     string          `json:"model"`     // name of model; e.g. "constdensity", "constdensitytabulated"
	Species   []phase.Species `json:"species"`   // species in this phase
	Prms      dbf.Params      `json:"prms"`      // model parameters
	Active    string          `json:"active"`    // name of active species (tabulated models only)
	TableFile string          `json:"tablefile"` // file with (x, h, s) samples (tabulated models only)

	// derived
	Phase phase.Model // allocated and initialised phase model
}

// PhasesData holds all phases
type PhasesData []*PhaseData

// PhaseDb implements a database of phases
type PhaseDb struct {
	Phases PhasesData `json:"phases"`
}

// ReadPhases reads a phase database from a .json file and initialises all
// phase models, including the tables of tabulated models
func ReadPhases(dir, fn string) (db *PhaseDb, err error) {

	// new database
	db = new(PhaseDb)

	// read and decode file
	b := io.ReadFile(filepath.Join(dir, fn))
	err = json.Unmarshal(b, db)
	if err != nil {
		return
	}

	// alloc/init phases
	for _, p := range db.Phases {
		p.Phase, err = phase.New(p.Model)
		if err != nil {
			return
		}
		err = p.Phase.Init(p.Species, p.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise phase %q: %v", p.Name, err)
		}

		// tabulated models need tables and an active species
		tab, isTabulated := p.Phase.(*phase.ConstDensityTabulated)
		if !isTabulated {
			if p.TableFile != "" || p.Active != "" {
				return nil, chk.Err("phase %q: 'tablefile' and 'active' can only be given for tabulated models", p.Name)
			}
			continue
		}
		if p.TableFile == "" || p.Active == "" {
			return nil, chk.Err("phase %q: tabulated models require both 'tablefile' and 'active'", p.Name)
		}
		htab, stab, err := ReadTable(dir, p.TableFile)
		if err != nil {
			return nil, chk.Err("cannot read table file of phase %q: %v", p.Name, err)
		}
		err = tab.SetTables(htab, stab)
		if err != nil {
			return nil, err
		}
		err = tab.SetActiveSpecies(p.Active)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Get returns a phase
//  Note: returns nil if not found
func (o *PhaseDb) Get(name string) *PhaseData {
	for _, p := range o.Phases {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ReadTable reads tabulated molar enthalpy and entropy from a text file with
// one "x,h,s" sample per line. Blank lines and lines starting with '#' are
// skiped. The samples need not be sorted
func ReadTable(dir, fn string) (htab, stab *tabular.Table, err error) {

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// parse lines
	var hpts, spts []tabular.Point
	for i, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, nil, chk.Err("line %d: need 3 comma-separated values (x,h,s); got %d", i+1, len(fields))
		}
		x := io.Atof(strings.TrimSpace(fields[0]))
		h := io.Atof(strings.TrimSpace(fields[1]))
		s := io.Atof(strings.TrimSpace(fields[2]))
		hpts = append(hpts, tabular.Point{X: x, Y: h})
		spts = append(spts, tabular.Point{X: x, Y: s})
	}

	// build tables
	htab, err = tabular.New(hpts)
	if err != nil {
		return
	}
	stab, err = tabular.New(spts)
	return
}

// String prints one phase
func (o *PhaseData) String() string {
	l := io.Sf("    {\n      \"name\"   : %q,\n      \"model\"  : %q,\n      \"active\" : %q,\n      \"prms\"   : [", o.Name, o.Model, o.Active)
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        { \"n\":%q, \"v\":%g }", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints the phase database
func (o *PhaseDb) String() string {
	l := "{\n  \"phases\" : [\n"
	for i, p := range o.Phases {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", p)
	}
	l += "\n  ]\n}"
	return l
}
