// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DavideBaroliUniLu/porepy/grid"
	"github.com/DavideBaroliUniLu/porepy/par"
)

// fracData fills the parameters of a lower-dimensional grid the way the
// tutorial problem does: high permeability, small aperture, unit sources
// and zero pressure where the fracture reaches the domain boundary.
func fracData(tst *testing.T, g *grid.Grid, withSource bool) *par.Parameters {
	prm := par.NewParameters(g)
	nc := g.NumCells()
	kxx := make([]float64, nc)
	ap := make([]float64, nc)
	src := make([]float64, nc)
	for c := 0; c < nc; c++ {
		kxx[c] = 100
		ap[c] = 0.01
		if withSource {
			src[c] = 1
		}
	}
	k, err := par.NewIsoTensor(g.Ndim, kxx)
	if err != nil {
		tst.Errorf("cannot build fracture tensor:\n%v", err)
		return nil
	}
	if err = prm.SetTensor("flow", k); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return nil
	}
	if err = prm.SetAperture("flow", ap); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return nil
	}
	if err = prm.SetSource("flow", src); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return nil
	}
	if dom := g.FacesWithTag(grid.TagDomainBoundary); len(dom) > 0 {
		bc := dirZero(tst, g, dom)
		if bc == nil {
			return nil
		}
		if err = prm.SetBC("flow", bc); err != nil {
			tst.Errorf("test failed:\n%v", err)
			return nil
		}
	}
	return prm
}

// matrixData gives the matrix grid unit permeability and zero pressure on
// the domain boundary
func matrixData(tst *testing.T, g *grid.Grid) *par.Parameters {
	prm := par.NewParameters(g)
	dom, err := g.FaceSet("domain")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return nil
	}
	bc := dirZero(tst, g, dom)
	if bc == nil {
		return nil
	}
	if err = prm.SetBC("flow", bc); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return nil
	}
	return prm
}

func Test_coupling01(tst *testing.T) {

	/*  zero pressure all around; sources along the fracture
	 *
	 *   10 +--------------------+
	 *      |                    |
	 *      |        matrix      |
	 *    5 +====================+  <- fracture, k=100, aperture=0.01
	 *      |                    |
	 *      |                    |
	 *    0 +--------------------+
	 *      0                   10
	 */

	//verbose()
	chk.PrintTitle("coupling01. fractured domain with tpfa")

	// meshed bucket
	bkt, err := grid.NewCartBucket([]*grid.Frac{{A: []float64{0, 5}, B: []float64{10, 5}}}, []int{10, 10}, []float64{10, 10})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	gm := bkt.GridsOfDim(2)[0]
	gl := bkt.GridsOfDim(1)[0]

	// physical data
	pars := map[*grid.Grid]*par.Parameters{
		gm: matrixData(tst, gm),
		gl: fracData(tst, gl, true),
	}
	if pars[gm] == nil || pars[gl] == nil {
		return
	}

	// solve
	e, err := NewElliptic(bkt, pars)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	defer e.Free()
	err = e.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	pm, err := e.Pressure(gm)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	pl, err := e.Pressure(gl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// positive pressures with the overall peak inside the fracture
	maxm, maxl := 0.0, 0.0
	for _, v := range pm {
		if v <= 0 {
			tst.Errorf("matrix pressure is not positive: %g", v)
			return
		}
		if v > maxm {
			maxm = v
		}
	}
	for _, v := range pl {
		if v <= 0 {
			tst.Errorf("fracture pressure is not positive: %g", v)
			return
		}
		if v > maxl {
			maxl = v
		}
	}
	if maxl <= maxm {
		tst.Errorf("sources sit in the fracture so its pressure must peak: frac=%g matrix=%g", maxl, maxm)
		return
	}

	// mirror symmetries of the setup
	for j := 0; j < 10; j++ {
		for i := 0; i < 10; i++ {
			c := j*10 + i
			chk.Scalar(tst, io.Sf("xmirror%d", c), 1e-10, pm[c], pm[j*10+9-i])
			chk.Scalar(tst, io.Sf("ymirror%d", c), 1e-10, pm[c], pm[(9-j)*10+i])
		}
	}
	for i := 0; i < 10; i++ {
		chk.Scalar(tst, io.Sf("fmirror%d", i), 1e-10, pl[i], pl[9-i])
	}

	// the ten injected units leave through the two boundaries
	Fm, err := e.Fluxes(gm)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	Fl, err := e.Fluxes(gl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "mass balance", 1e-9, outflux(gm, Fm)+outflux(gl, Fl), 10.0)

	// split writes both fields
	err = e.Split("pressure")
	if err != nil {
		tst.Errorf("Split failed:\n%v", err)
		return
	}
	chk.Vector(tst, "matrix field", 1e-15, bkt.Field(gm, "pressure"), pm)
	chk.Vector(tst, "fracture field", 1e-15, bkt.Field(gl, "pressure"), pl)
}

func Test_coupling02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coupling02. mpfa variant matches tpfa here")

	// same fractured problem
	bkt, err := grid.NewCartBucket([]*grid.Frac{{A: []float64{0, 5}, B: []float64{10, 5}}}, []int{10, 10}, []float64{10, 10})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	gm := bkt.GridsOfDim(2)[0]
	gl := bkt.GridsOfDim(1)[0]
	pars := map[*grid.Grid]*par.Parameters{
		gm: matrixData(tst, gm),
		gl: fracData(tst, gl, true),
	}
	if pars[gm] == nil || pars[gl] == nil {
		return
	}
	e, err := NewElliptic(bkt, pars)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	defer e.Free()
	err = e.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	pm1, _ := e.Pressure(gm)
	pl1, _ := e.Pressure(gl)

	// solving again with mpfa must reproduce tpfa: the permeabilities are
	// isotropic and the grid axes aligned
	err = e.SetFlux("mpfa")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = e.Solve()
	if err != nil {
		tst.Errorf("mpfa Solve failed:\n%v", err)
		return
	}
	pm2, _ := e.Pressure(gm)
	pl2, _ := e.Pressure(gl)
	chk.Vector(tst, "matrix pressure", 1e-8, pm2, pm1)
	chk.Vector(tst, "fracture pressure", 1e-8, pl2, pl1)
}

func Test_coupling03(tst *testing.T) {

	/*  two crossing fractures meet in a point grid
	 *
	 *   10 +---------+----------+
	 *      |         |          |
	 *      |         |          |
	 *    5 +=========o==========+
	 *      |         |          |
	 *      |         |          |
	 *    0 +---------+----------+
	 *      0         5         10
	 */

	//verbose()
	chk.PrintTitle("coupling03. crossing fractures and the point grid")

	bkt, err := grid.NewCartBucket([]*grid.Frac{
		{A: []float64{0, 5}, B: []float64{10, 5}},
		{A: []float64{5, 0}, B: []float64{5, 10}},
	}, []int{10, 10}, []float64{10, 10})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	gm := bkt.GridsOfDim(2)[0]
	fr := bkt.GridsOfDim(1)
	chk.IntAssert(len(fr), 2)
	ga, gb := fr[0], fr[1]
	g0 := bkt.GridsOfDim(0)[0]

	// the point grid carries the fracture aperture but no sources
	pars := map[*grid.Grid]*par.Parameters{
		gm: matrixData(tst, gm),
		ga: fracData(tst, ga, true),
		gb: fracData(tst, gb, true),
		g0: fracData(tst, g0, false),
	}
	for _, prm := range pars {
		if prm == nil {
			return
		}
	}

	// solve
	e, err := NewElliptic(bkt, pars)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	defer e.Free()
	err = e.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	pm, _ := e.Pressure(gm)
	pa, _ := e.Pressure(ga)
	pb, _ := e.Pressure(gb)
	p0, _ := e.Pressure(g0)

	// the two fractures are images of each other under x<->y
	chk.Vector(tst, "fracture twins", 1e-9, pa, pb)

	// four-fold symmetry of the matrix pressure
	for j := 0; j < 10; j++ {
		for i := 0; i < 10; i++ {
			c := j*10 + i
			chk.Scalar(tst, io.Sf("xmirror%d", c), 1e-9, pm[c], pm[j*10+9-i])
			chk.Scalar(tst, io.Sf("ymirror%d", c), 1e-9, pm[c], pm[(9-j)*10+i])
			chk.Scalar(tst, io.Sf("transp%d", c), 1e-9, pm[c], pm[i*10+j])
		}
	}

	// the intersection has no source, so its pressure is the coupled
	// average of the four equal neighbor cells
	chk.Scalar(tst, "intersection pressure", 1e-9, p0[0], pa[4])
	chk.Scalar(tst, "crossing cells", 1e-9, pa[4], pa[5])

	// twenty injected units leave through the boundaries
	Fm, err := e.Fluxes(gm)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	Fa, err := e.Fluxes(ga)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	Fb, err := e.Fluxes(gb)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "mass balance", 1e-8, outflux(gm, Fm)+outflux(ga, Fa)+outflux(gb, Fb), 20.0)
}
