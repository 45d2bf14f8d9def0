// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/DavideBaroliUniLu/porepy/fvm"
	"github.com/DavideBaroliUniLu/porepy/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/darcy", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	alias := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nPorepy -- Finite Volume Flow on Mixed-Dimensional Grids\n\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"word to add to results", "alias", alias,
		))
	}

	// profiling?
	defer utl.DoProf(false)()

	// simulation data
	sim := inp.ReadSim(fnamepath, alias, erasePrev)

	// allocate solver
	ell, err := fvm.NewElliptic(sim.Bkt, sim.Pars)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}
	defer ell.Free()
	ell.ShowMsg = verbose
	if err = ell.SetFlux(sim.Data.Flux); err != nil {
		chk.Panic("cannot set flux discretization:\n%v", err)
	}
	ell.Dom.Physics = sim.Data.Physics
	ell.Dom.SetSolver(sim.LinSol.Name)
	ell.Dom.SolSymm = sim.LinSol.Symmetric
	ell.Dom.SolVerb = sim.LinSol.Verbose
	ell.Dom.SolTiming = sim.LinSol.Timing

	// plot functions
	if sim.PlotF != nil {
		sim.Functions.PlotAll(sim.PlotF, sim.DirOut, sim.Key)
	}

	// run simulation
	t0 := time.Now()
	err = ell.Solve()
	if err != nil {
		chk.Panic("Solve failed:\n%v", err)
	}

	// results summary
	err = ell.Split("pressure")
	if err != nil {
		chk.Panic("cannot split pressures:\n%v", err)
	}
	if verbose {
		io.Pf("\n")
		for _, g := range ell.Dom.Grids {
			p, _ := ell.Pressure(g)
			pmin, pmax := p[0], p[0]
			for _, v := range p {
				pmin = utl.Min(pmin, v)
				pmax = utl.Max(pmax, v)
			}
			io.Pf("%-20q ncells=%4d  pmin=%-12g pmax=%-12g\n", g.Name, g.NumCells(), pmin, pmax)
		}
		io.Pfblue2("\nelapsed time = %v\n", time.Now().Sub(t0))
	}

	// save results
	err = ell.SaveSol(sim.DirOut, sim.Key, sim.EncType, verbose)
	if err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}
}
