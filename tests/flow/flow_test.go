// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DavideBaroliUniLu/porepy/fvm"
	"github.com/DavideBaroliUniLu/porepy/grid"
	"github.com/DavideBaroliUniLu/porepy/inp"
	"github.com/DavideBaroliUniLu/porepy/tests"
)

func Test_flow01a(tst *testing.T) {

	/* Pressure equation on a square of 11 by 11 unit cells
	 *
	 *      +----+----+-- ... --+----+
	 *      |110 |111 |         |120 |
	 *      +----+----+-- ... --+----+      p = 0 on the whole boundary
	 *      |                        |
	 *      .        +----+          .      unit injection in cell 60,
	 *      .        | 60 |          .      the centre of the square
	 *      .        +----+          .
	 *      |                        |
	 *      +----+----+-- ... --+----+
	 *      | 0  | 1  |         | 10 |
	 *      +----+----+-- ... --+----+
	 */

	//tests.Verbose()
	chk.PrintTitle("flow01a. Injection in a square. Check DOFs")

	// simulation data
	sim := inp.ReadSim("data/darcy-sq.sim", "", true)
	chk.IntAssert(len(sim.Bkt.Grids), 1)

	// allocate solver
	ell, err := fvm.NewElliptic(sim.Bkt, sim.Pars)
	if err != nil {
		tst.Errorf("NewElliptic failed:\n%v", err)
		return
	}
	defer ell.Free()

	// check equations
	dom := ell.Dom
	chk.IntAssert(dom.Ny, 121)
	chk.IntAssert(len(dom.Fb), 121)
	chk.IntAssert(len(dom.P), 121)
	names, offsets := tests.GetNamesOffsets(dom)
	io.Pforan("names   = %v\n", names)
	io.Pforan("offsets = %v\n", offsets)
	chk.Ints(tst, "offsets", offsets, []int{0})
	chk.String(tst, names[0], "cart2d_11x11")

	// check grid
	g := dom.Grids[0]
	chk.IntAssert(g.NumCells(), 121)
	chk.IntAssert(g.NumFaces(), 264)
	chk.Vector(tst, "xc60", 1e-15, g.CellCenters[60], []float64{5.5, 5.5})
	chk.Scalar(tst, "vol60", 1e-15, g.CellVolumes[60], 1.0)

	// check face sets
	xmin, err := g.FaceSet("xmin")
	if err != nil {
		tst.Errorf("FaceSet failed:\n%v", err)
		return
	}
	boundary := g.FacesWithTag(grid.TagDomainBoundary)
	chk.IntAssert(len(xmin), 11)
	chk.IntAssert(len(boundary), 44)
}

func Test_flow01b(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("flow01b. Injection in a square. Symmetry and balance")

	// simulation data
	sim := inp.ReadSim("data/darcy-sq.sim", "", false)

	// allocate solver
	ell, err := fvm.NewElliptic(sim.Bkt, sim.Pars)
	if err != nil {
		tst.Errorf("NewElliptic failed:\n%v", err)
		return
	}
	defer ell.Free()
	ell.Dom.SetSolver(sim.LinSol.Name)

	// run simulation
	err = ell.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// pressures
	g := ell.Dom.Grids[0]
	p, err := ell.Pressure(g)
	if err != nil {
		tst.Errorf("cannot extract pressures:\n%v", err)
		return
	}

	// the injected cell must hold the peak and all cells must be pressurised
	for c := 0; c < g.NumCells(); c++ {
		if p[c] <= 0 {
			tst.Errorf("p%d = %g is not positive\n", c, p[c])
			return
		}
		if c != 60 && p[c] >= p[60] {
			tst.Errorf("p%d = %g exceeds the peak p60 = %g\n", c, p[c], p[60])
			return
		}
	}

	// mirror and transpose symmetries about the centre
	for j := 0; j < 11; j++ {
		for i := 0; i < 11; i++ {
			c := j*11 + i
			chk.Scalar(tst, io.Sf("p%d mirror x", c), 1e-12, p[c], p[j*11+10-i])
			chk.Scalar(tst, io.Sf("p%d mirror y", c), 1e-12, p[c], p[(10-j)*11+i])
			chk.Scalar(tst, io.Sf("p%d transpose", c), 1e-12, p[c], p[i*11+j])
		}
	}

	// conservation
	src := make([]float64, g.NumCells())
	src[60] = 1.0
	bal := tests.Balance{Tst: tst, Tol: 1e-11, Verb: chk.Verbose}
	bal.Cellwise(ell, g, src)
	bal.Global(ell, 1.0)
}

func Test_flow02a(tst *testing.T) {

	/* Horizontal fracture through a square of 10 by 10 unit cells
	 *
	 *      Cells                          Equations
	 *
	 *    +----+----+-- ... --+----+
	 *    | 90 | 91 |         | 99 |     matrix    0 ... 99
	 *    +----+----+-- ... --+----+
	 *    | 50 | 51 |         | 59 |     fracture  100 ... 109
	 *    +====+====+== ... ==+====+     o----o----o-- ... --o----o
	 *    | 40 | 41 |         | 49 |      100  101            109
	 *    +----+----+-- ... --+----+
	 *    | 0  | 1  |         | 9  |
	 *    +----+----+-- ... --+----+
	 *
	 * The faces along y = 5 are split so that rows 40..49 and 50..59
	 * only communicate through the fracture cells.
	 */

	//tests.Verbose()
	chk.PrintTitle("flow02a. Fractured square. Check DOFs")

	// simulation data
	sim := inp.ReadSim("data/darcy-frac.sim", "", true)
	chk.IntAssert(len(sim.Bkt.Grids), 2)

	// allocate solver
	ell, err := fvm.NewElliptic(sim.Bkt, sim.Pars)
	if err != nil {
		tst.Errorf("NewElliptic failed:\n%v", err)
		return
	}
	defer ell.Free()

	// check equations
	dom := ell.Dom
	chk.IntAssert(dom.Ny, 110)
	names, offsets := tests.GetNamesOffsets(dom)
	io.Pforan("names   = %v\n", names)
	io.Pforan("offsets = %v\n", offsets)
	chk.Ints(tst, "offsets", offsets, []int{0, 100})
	chk.String(tst, names[0], "cart2d_10x10")
	chk.String(tst, names[1], "frac1d_0")

	// check matrix grid: 220 faces plus 10 duplicated by the splitting
	gm := dom.Grids[0]
	chk.IntAssert(gm.NumCells(), 100)
	chk.IntAssert(gm.NumFaces(), 230)
	chk.IntAssert(len(gm.FacesWithTag(grid.TagFracture)), 20)
	chk.IntAssert(len(gm.FacesWithTag(grid.TagDomainBoundary)), 40)

	// split faces do not sit on the domain boundary
	for _, f := range gm.FacesWithTag(grid.TagFracture) {
		if gm.Tags[f].Has(grid.TagDomainBoundary) {
			tst.Errorf("split face %d is marked as domain boundary\n", f)
			return
		}
	}

	// check fracture grid: both endpoints daylight on the outer boundary
	gf := dom.Grids[1]
	chk.IntAssert(gf.NumCells(), 10)
	chk.IntAssert(gf.NumFaces(), 11)
	chk.Ints(tst, "fracture ends", gf.FacesWithTag(grid.TagDomainBoundary), []int{0, 10})
	chk.IntAssert(len(gf.FacesWithTag(grid.TagTip)), 0)
	chk.Vector(tst, "fracture xc0", 1e-15, gf.CellCenters[0], []float64{0.5, 5.0})
	chk.Vector(tst, "fracture xc9", 1e-15, gf.CellCenters[9], []float64{9.5, 5.0})

	// one interface binding the fracture cells to their wall face pairs
	ifaces := sim.Bkt.InterfacesOf(gf)
	chk.IntAssert(len(ifaces), 1)
	chk.IntAssert(len(ifaces[0].HiFaces), 10)
}

func Test_flow02b(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("flow02b. Fractured square. Symmetry and balance")

	// simulation data
	sim := inp.ReadSim("data/darcy-frac.sim", "", false)

	// allocate solver
	ell, err := fvm.NewElliptic(sim.Bkt, sim.Pars)
	if err != nil {
		tst.Errorf("NewElliptic failed:\n%v", err)
		return
	}
	defer ell.Free()
	ell.Dom.SetSolver(sim.LinSol.Name)

	// run simulation
	err = ell.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// pressures
	gm, gf := ell.Dom.Grids[0], ell.Dom.Grids[1]
	pm, err := ell.Pressure(gm)
	if err != nil {
		tst.Errorf("cannot extract pressures:\n%v", err)
		return
	}
	pf, err := ell.Pressure(gf)
	if err != nil {
		tst.Errorf("cannot extract pressures:\n%v", err)
		return
	}
	if chk.Verbose {
		io.Pf("fracture pressures = %v\n", pf)
	}

	// mirror symmetry along the fracture
	for i := 0; i < 5; i++ {
		chk.Scalar(tst, io.Sf("pf%d mirror", i), 1e-10, pf[i], pf[9-i])
	}

	// the matrix sees the same field above and below the fracture
	for j := 0; j < 10; j++ {
		for i := 0; i < 10; i++ {
			c := j*10 + i
			chk.Scalar(tst, io.Sf("pm%d mirror y", c), 1e-10, pm[c], pm[(9-j)*10+i])
			chk.Scalar(tst, io.Sf("pm%d mirror x", c), 1e-10, pm[c], pm[j*10+9-i])
		}
	}

	// injected fluid leaves the fracture through its walls, so the
	// fracture must be at a higher pressure than the rows beside it
	for i := 0; i < 10; i++ {
		if pf[i] <= pm[40+i] {
			tst.Errorf("pf%d = %g does not exceed the wall cell pressure %g\n", i, pf[i], pm[40+i])
			return
		}
	}

	// conservation: ten fracture cells receive a unit rate each and the
	// whole of it must leave through the domain boundary
	bal := tests.Balance{Tst: tst, Tol: 1e-9, Verb: chk.Verbose}
	bal.Cellwise(ell, gm, nil)
	bal.Global(ell, 10.0)
}

func Test_flow03(tst *testing.T) {

	/* Fixed end pressures on a 1D channel of 8 cells
	 *
	 *        p=3                              p=1
	 *         |  0    1    2    3    4    5    6    7  |
	 *         +----+----+----+----+----+----+----+----+
	 *        x=0                                      x=4
	 *
	 * The two-point scheme reproduces the linear profile exactly,
	 * with a uniform flux of one half through every face.
	 */

	//tests.Verbose()
	chk.PrintTitle("flow03. Channel with fixed end pressures")

	tests.CompareResults(tst, "data/linear-1d.sim", "data/linear-1d.cmp", "", 1e-14, 1e-14, chk.Verbose)
}

func Test_flow04(tst *testing.T) {

	/* Fixed pressures on the x walls of a 4 by 4 square. The exact
	 * solution is linear in x and uniform in y, and both schemes
	 * must reproduce it to machine precision.
	 */

	//tests.Verbose()
	chk.PrintTitle("flow04. Strip with fixed wall pressures. TPFA and MPFA")

	tests.CompareResults(tst, "data/linear-2d.sim", "data/linear-2d.cmp", "", 1e-13, 1e-13, chk.Verbose)
	tests.CompareResults(tst, "data/linear-2d-mpfa.sim", "data/linear-2d.cmp", "", 1e-10, 1e-10, chk.Verbose)
}

func Test_flow05(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("flow05. Fractured square. TPFA versus MPFA")

	// simulation data
	sim := inp.ReadSim("data/darcy-frac.sim", "", false)

	// two-point solution
	ellA, err := fvm.NewElliptic(sim.Bkt, sim.Pars)
	if err != nil {
		tst.Errorf("NewElliptic failed:\n%v", err)
		return
	}
	defer ellA.Free()
	err = ellA.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// multi-point solution
	ellB, err := fvm.NewElliptic(sim.Bkt, sim.Pars)
	if err != nil {
		tst.Errorf("NewElliptic failed:\n%v", err)
		return
	}
	defer ellB.Free()
	err = ellB.SetFlux("mpfa")
	if err != nil {
		tst.Errorf("SetFlux failed:\n%v", err)
		return
	}
	err = ellB.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// the grids are square and the permeabilities isotropic, hence the
	// multi-point stencils collapse to the two-point ones
	for _, g := range ellA.Dom.Grids {
		pa, err := ellA.Pressure(g)
		if err != nil {
			tst.Errorf("cannot extract pressures:\n%v", err)
			return
		}
		pb, err := ellB.Pressure(g)
		if err != nil {
			tst.Errorf("cannot extract pressures:\n%v", err)
			return
		}
		chk.Vector(tst, io.Sf("p @ %s", g.Name), 1e-8, pb, pa)
	}
}
