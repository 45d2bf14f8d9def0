// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test flow simulations
package tests

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DavideBaroliUniLu/porepy/fvm"
	"github.com/DavideBaroliUniLu/porepy/inp"
)

// Results holds numerical results
type Results struct {
	Note      string        // note about the reference values
	Pressures [][]float64   // [ngrid][ncell] pressures per grid, grids in node-ordering sequence
	Fluxes    [][][]float64 // [ngrid][...][2] (face id, flux) pairs; may be empty
}

// CompareResults runs the simulation in simfilepath and compares the solved
// pressures (and fluxes, if present) against the reference values in cmpfname
func CompareResults(tst *testing.T, simfilepath, cmpfname, alias string, tolp, tolf float64, verbose bool) {

	// simulation data
	sim := inp.ReadSim(simfilepath, alias, false)

	// allocate solver
	ell, err := fvm.NewElliptic(sim.Bkt, sim.Pars)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}
	defer ell.Free()
	if err = ell.SetFlux(sim.Data.Flux); err != nil {
		chk.Panic("cannot set flux discretization:\n%v", err)
	}
	ell.Dom.SetSolver(sim.LinSol.Name)

	// run simulation
	err = ell.Solve()
	if err != nil {
		chk.Panic("Solve failed:\n%v", err)
	}

	// read file with comparison results
	buf, err := io.ReadFile(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:%v\n", err)
		return
	}

	// unmarshal json
	var cmp Results
	err = json.Unmarshal(buf, &cmp)
	if err != nil {
		tst.Errorf("CompareResults: Unmarshal failed\n")
		return
	}

	// run comparisons
	if len(cmp.Pressures) != len(ell.Dom.Grids) {
		tst.Errorf("CompareResults: reference has %d grids; simulation has %d\n", len(cmp.Pressures), len(ell.Dom.Grids))
		return
	}
	for i, g := range ell.Dom.Grids {
		if verbose {
			io.PfYel("\ngrid %q . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . .\n", g.Name)
		}

		// check pressures
		p, err := ell.Pressure(g)
		if err != nil {
			chk.Panic("cannot extract pressures:\n%v", err)
		}
		ref := cmp.Pressures[i]
		if len(ref) != len(p) {
			tst.Errorf("CompareResults: reference of grid %q has %d values; grid has %d cells\n", g.Name, len(ref), len(p))
			return
		}
		for c := range p {
			chk.AnaNum(tst, io.Sf("p%d", c), tolp, p[c], ref[c], verbose)
		}

		// check fluxes
		if i < len(cmp.Fluxes) && len(cmp.Fluxes[i]) > 0 {
			F, err := ell.Fluxes(g)
			if err != nil {
				chk.Panic("cannot extract fluxes:\n%v", err)
			}
			for _, pair := range cmp.Fluxes[i] {
				f := int(pair[0])
				if f < 0 || f >= len(F) {
					tst.Errorf("CompareResults: reference flux face %d is out of range of grid %q\n", f, g.Name)
					return
				}
				chk.AnaNum(tst, io.Sf("F%d", f), tolf, F[f], pair[1], verbose)
			}
		}
	}
}
