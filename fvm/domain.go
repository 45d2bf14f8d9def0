// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/DavideBaroliUniLu/porepy/fv"
	"github.com/DavideBaroliUniLu/porepy/grid"
	"github.com/DavideBaroliUniLu/porepy/par"
)

// Domain holds the grids of a bucket together with the degree-of-freedom
// layout and the global linear system. One equation per cell; the equations
// of a grid are contiguous and grids are laid out by node-ordering number.
type Domain struct {

	// init: input data
	Bkt     *grid.Bucket                   // mixed-dimensional grid set
	Pars    map[*grid.Grid]*par.Parameters // physical data per grid
	Physics string                         // physics key into Pars; e.g. "flow"

	// init: flux discretization and linear solver
	FluxName  string    // "tpfa" or "mpfa"
	SolName   string    // linear solver kind; e.g. "umfpack"
	SolSymm   bool      // tell the solver that the matrix is symmetric
	SolVerb   bool      // run the linear solver in verbose mode
	SolTiming bool      // show linear solver timing statistics
	LinSol    la.LinSol // sparse linear solver

	// dof layout
	Grids  []*grid.Grid       // grids sorted by node-ordering number
	Offset map[*grid.Grid]int // first equation of each grid
	Ny     int                // total number of equations

	// discretization
	Stencils map[*grid.Grid]*fv.Stencil   // flux stencils per grid
	effdat   map[*grid.Grid]*par.FlowData // data with in-plane aperture scaling applied

	// linear system
	Kb       *la.Triplet // conservation equations Jacobian
	Fb       []float64   // right-hand side
	Wb       []float64   // workspace: solution of the linear system
	P        []float64   // solved pressures (copy of Wb after a solve)
	InitLSol bool        // flag telling that linear solver needs to be initialised prior to any further call
}

// NewDomain allocates a domain over bkt. Grids missing from pars get
// default parameters (unit isotropic permeability, unit aperture, zero
// source, zero-flux boundaries).
func NewDomain(bkt *grid.Bucket, pars map[*grid.Grid]*par.Parameters, solname, physics string) (o *Domain, err error) {

	// check input
	if bkt == nil || len(bkt.Grids) == 0 {
		return nil, chk.Err("domain needs a bucket with at least one grid")
	}
	o = new(Domain)
	o.Bkt = bkt
	o.Physics = physics
	o.FluxName = "tpfa"
	o.SolName = solname

	// complete parameters set
	o.Pars = make(map[*grid.Grid]*par.Parameters)
	for _, g := range bkt.Grids {
		if prm, ok := pars[g]; ok && prm != nil {
			if prm.Grid() != g {
				return nil, chk.Err("parameters given for grid %q belong to another grid", g.Name)
			}
			o.Pars[g] = prm
			continue
		}
		o.Pars[g] = par.NewParameters(g)
	}

	// dof layout following the node ordering
	o.Grids = bkt.OrderedGrids()
	o.Offset = make(map[*grid.Grid]int)
	n := 0
	for _, g := range o.Grids {
		o.Offset[g] = n
		n += g.NumCells()
	}
	o.Ny = n

	// linear system
	o.Kb = new(la.Triplet)
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)
	o.P = make([]float64, o.Ny)
	o.LinSol = la.GetSolver(o.SolName)
	o.InitLSol = true
	return
}

// Free frees the linear solver memory
func (o *Domain) Free() {
	if !o.InitLSol {
		o.LinSol.Free()
		o.InitLSol = true
	}
}

// SetSolver switches to another sparse linear solver kind
func (o *Domain) SetSolver(name string) {
	o.Free()
	o.SolName = name
	o.LinSol = la.GetSolver(name)
}

// discretize computes the flux stencil of each grid. Grids below the top
// dimension flow through a reduced cross-section, so their in-plane
// permeability is scaled by aperture per missing dimension.
func (o *Domain) discretize() (err error) {
	disc, err := fv.New(o.FluxName)
	if err != nil {
		return
	}
	D := o.Bkt.MaxDim()
	o.Stencils = make(map[*grid.Grid]*fv.Stencil)
	o.effdat = make(map[*grid.Grid]*par.FlowData)
	for _, g := range o.Grids {
		dat := o.Pars[g].Get(o.Physics)
		eff := dat
		if g.Dim < D {
			factors := make([]float64, g.NumCells())
			for c := range factors {
				factors[c] = math.Pow(dat.Aperture[c], float64(D-g.Dim))
			}
			var ks *par.SecondOrder
			ks, err = dat.Perm.Scaled(factors)
			if err != nil {
				return chk.Err("cannot scale permeability of grid %q:\n%v", g.Name, err)
			}
			eff = &par.FlowData{BC: dat.BC, Perm: ks, Source: dat.Source, Aperture: dat.Aperture}
		}
		o.effdat[g] = eff
		var st *fv.Stencil
		st, err = disc.Assemble(g, eff)
		if err != nil {
			return chk.Err("%s discretization of grid %q failed:\n%v", o.FluxName, g.Name, err)
		}
		o.Stencils[g] = st
	}
	return
}

// assemble builds Kb and Fb from the flux stencils, the sources and the
// interface couplings. Each cell states conservation: the sum of outward
// face fluxes equals the cell source.
func (o *Domain) assemble() (err error) {

	// number of nonzeros
	nnz := 0
	for _, g := range o.Grids {
		st := o.Stencils[g]
		for f := 0; f < g.NumFaces(); f++ {
			nadj := 0
			if g.FaceCells[f][0] >= 0 {
				nadj++
			}
			if g.FaceCells[f][1] >= 0 {
				nadj++
			}
			nnz += nadj * len(st.Cells[f])
		}
	}
	for _, ifc := range o.Bkt.Ifaces {
		for _, pair := range ifc.HiFaces {
			for _, f := range pair {
				if f >= 0 {
					nnz += 4
				}
			}
		}
	}
	o.Kb.Init(o.Ny, o.Ny, nnz)
	la.VecFill(o.Fb, 0)

	// flux divergence and boundary data
	for _, g := range o.Grids {
		off := o.Offset[g]
		st := o.Stencils[g]
		dat := o.effdat[g]
		for f := 0; f < g.NumFaces(); f++ {
			for _, c := range g.FaceCells[f] {
				if c < 0 {
					continue
				}
				s := float64(g.CellFaceSign(c, f))
				row := off + c
				for i, cc := range st.Cells[f] {
					o.Kb.Put(row, off+cc, s*st.Coef[f][i])
				}
				for j, bf := range st.Bfaces[f] {
					o.Fb[row] -= s * st.Bcoef[f][j] * dat.BC.Val[bf]
				}
			}
		}

		// sources are integrated rates per cell
		for c := 0; c < g.NumCells(); c++ {
			o.Fb[off+c] += dat.Source[c]
		}
	}

	// interface couplings
	return o.couple()
}

// solve factorises Kb and solves for Wb. The stencil pattern may change
// between calls, so a previous factorisation is never reused.
func (o *Domain) solve() (err error) {
	if !o.InitLSol {
		o.LinSol.Free()
		o.LinSol = la.GetSolver(o.SolName)
		o.InitLSol = true
	}
	err = o.LinSol.InitR(o.Kb, o.SolSymm, o.SolVerb, o.SolTiming)
	if err != nil {
		return chk.Err("cannot initialise linear solver:\n%v", err)
	}
	o.InitLSol = false
	err = o.LinSol.Fact()
	if err != nil {
		return chk.Err("factorisation failed:\n%v", err)
	}
	err = o.LinSol.SolveR(o.Wb, o.Fb, false)
	if err != nil {
		return chk.Err("solve failed:\n%v", err)
	}
	copy(o.P, o.Wb)
	return
}
