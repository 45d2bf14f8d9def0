// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm implements the finite volume solver for the steady pressure
// equation on mixed-dimensional grids
package fvm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DavideBaroliUniLu/porepy/fv"
	"github.com/DavideBaroliUniLu/porepy/grid"
	"github.com/DavideBaroliUniLu/porepy/par"
)

// Elliptic drives the solution of the pressure equation over a grid bucket:
// discretize fluxes, assemble conservation with interface couplings, solve,
// and split the pressure back onto the grids.
type Elliptic struct {
	Dom     *Domain // dof layout and linear system
	ShowMsg bool    // print progress messages
	solved  bool
}

// NewElliptic allocates the solver for a bucket. pars maps each grid to its
// physical data; missing grids get defaults. A nil map is accepted.
func NewElliptic(bkt *grid.Bucket, pars map[*grid.Grid]*par.Parameters) (o *Elliptic, err error) {
	o = new(Elliptic)
	o.Dom, err = NewDomain(bkt, pars, "umfpack", "flow")
	if err != nil {
		return nil, err
	}
	return
}

// NewEllipticGrid wraps a single grid in a bucket; prm may be nil
func NewEllipticGrid(g *grid.Grid, prm *par.Parameters) (o *Elliptic, err error) {
	bkt := grid.NewBucket()
	if err = bkt.Add(g); err != nil {
		return nil, err
	}
	pars := make(map[*grid.Grid]*par.Parameters)
	if prm != nil {
		pars[g] = prm
	}
	return NewElliptic(bkt, pars)
}

// SetFlux selects the flux discretization by name; e.g. "tpfa" or "mpfa"
func (o *Elliptic) SetFlux(name string) (err error) {
	if _, err = fv.New(name); err != nil {
		return
	}
	o.Dom.FluxName = name
	return
}

// Solve discretizes, assembles and solves the pressure equation. It can be
// called again after parameters change; the system is rebuilt from scratch.
func (o *Elliptic) Solve() (err error) {
	if o.ShowMsg {
		io.Pf("> Discretizing fluxes (%s)\n", o.Dom.FluxName)
	}
	err = o.Dom.discretize()
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Number of equations = %d\n", o.Dom.Ny)
	}
	err = o.Dom.assemble()
	if err != nil {
		return
	}
	err = o.Dom.solve()
	if err != nil {
		return
	}
	o.solved = true
	if o.ShowMsg {
		io.Pf("> Solve completed\n")
	}
	return
}

// Solved tells whether a solution is available already
func (o *Elliptic) Solved() bool {
	return o.solved
}

// Split stores the per-grid pressure slices as a labelled bucket field
func (o *Elliptic) Split(label string) (err error) {
	if !o.solved {
		return chk.Err("cannot split %q before solving", label)
	}
	for _, g := range o.Dom.Grids {
		off := o.Dom.Offset[g]
		vals := make([]float64, g.NumCells())
		copy(vals, o.Dom.P[off:off+g.NumCells()])
		if err = o.Dom.Bkt.SetField(g, label, vals); err != nil {
			return
		}
	}
	return
}

// Pressure returns a copy of the solved pressures of grid g
func (o *Elliptic) Pressure(g *grid.Grid) (p []float64, err error) {
	if !o.solved {
		return nil, chk.Err("pressure is not available before solving")
	}
	off, ok := o.Dom.Offset[g]
	if !ok {
		return nil, chk.Err("grid %q is not in the bucket", g.Name)
	}
	p = make([]float64, g.NumCells())
	copy(p, o.Dom.P[off:off+g.NumCells()])
	return
}

// Fluxes reconstructs the face fluxes of grid g from its stencil and the
// solved pressure. Fluxes follow the stored face normals; interface
// exchange does not show up here since it bypasses the face stencils.
func (o *Elliptic) Fluxes(g *grid.Grid) (F []float64, err error) {
	if !o.solved {
		return nil, chk.Err("fluxes are not available before solving")
	}
	off, ok := o.Dom.Offset[g]
	if !ok {
		return nil, chk.Err("grid %q is not in the bucket", g.Name)
	}
	st := o.Dom.Stencils[g]
	dat := o.Dom.effdat[g]
	p := o.Dom.P[off : off+g.NumCells()]
	F = make([]float64, g.NumFaces())
	for f := 0; f < g.NumFaces(); f++ {
		F[f] = st.Flux(f, p, dat.BC.Val)
	}
	return
}

// Free frees the linear solver memory
func (o *Elliptic) Free() {
	o.Dom.Free()
}
