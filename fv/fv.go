// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fv implements the interface between grids and finite volume flux
// discretizations together with a registry of implementations
package fv

import (
	"github.com/cpmech/gosl/chk"

	"github.com/DavideBaroliUniLu/porepy/grid"
	"github.com/DavideBaroliUniLu/porepy/par"
)

// Stencil holds one linear flux expansion per face. The flux through face
// f, positive along the stored face normal, is
//
//    F[f] = Σ Coef[f][i] p[Cells[f][i]]  +  Σ Bcoef[f][j] bc.Val[Bfaces[f][j]]
//
type Stencil struct {
	Cells  [][]int     // [nfaces][...] cells entering the flux of each face
	Coef   [][]float64 // [nfaces][...] cell pressure coefficients
	Bfaces [][]int     // [nfaces][...] boundary faces entering the flux
	Bcoef  [][]float64 // [nfaces][...] boundary value coefficients
}

// NewStencil allocates a stencil for nf faces
func NewStencil(nf int) *Stencil {
	return &Stencil{
		Cells:  make([][]int, nf),
		Coef:   make([][]float64, nf),
		Bfaces: make([][]int, nf),
		Bcoef:  make([][]float64, nf),
	}
}

// Set fills the expansion of face f
func (o *Stencil) Set(f int, cells []int, coef []float64, bfaces []int, bcoef []float64) {
	o.Cells[f] = cells
	o.Coef[f] = coef
	o.Bfaces[f] = bfaces
	o.Bcoef[f] = bcoef
}

// Flux evaluates the expansion of face f with pressures p and boundary
// values bcval
func (o *Stencil) Flux(f int, p, bcval []float64) (res float64) {
	for i, c := range o.Cells[f] {
		res += o.Coef[f][i] * p[c]
	}
	for j, b := range o.Bfaces[f] {
		res += o.Bcoef[f][j] * bcval[b]
	}
	return
}

// Discretizer defines flux discretizations: from one grid and its
// parameters to one flux stencil per face
type Discretizer interface {
	Name() string
	Assemble(g *grid.Grid, dat *par.FlowData) (*Stencil, error)
}

// New flux discretizer
func New(name string) (d Discretizer, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("flux discretization %q is not available in 'fv' database", name)
	}
	return allocator(), nil
}

// Register adds a flux discretization to the database
func Register(name string, allocator func() Discretizer) {
	if _, ok := allocators[name]; ok {
		chk.Panic("flux discretization %q is already registered", name)
	}
	allocators[name] = allocator
}

// allocators holds all available flux discretizations
var allocators = map[string]func() Discretizer{}

// HalfTrans computes the half-transmissibility of cell c at its face f
//
//    t = A_f (n・K・d) / (d・d)      d = x_f - x_c
//
// with n the face normal oriented out of the cell. The permeability must
// already carry any aperture scaling.
func HalfTrans(g *grid.Grid, k *par.SecondOrder, c, f int) (t float64, err error) {
	s := g.CellFaceSign(c, f)
	if s == 0 {
		return 0, chk.Err("face %d does not belong to cell %d", f, c)
	}
	d := make([]float64, g.Ndim)
	dd := 0.0
	for i := 0; i < g.Ndim; i++ {
		d[i] = g.FaceCenters[f][i] - g.CellCenters[c][i]
		dd += d[i] * d[i]
	}
	if dd < grid.Gtol*grid.Gtol {
		return 0, chk.Err("face %d sits on the centre of cell %d", f, c)
	}
	t = g.FaceAreas[f] * float64(s) * k.Dot(c, g.FaceNormals[f], d) / dd
	return
}
