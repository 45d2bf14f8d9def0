// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package par implements containers for the physical parameters of one
// grid: boundary conditions, permeability tensors, sources and apertures,
// grouped per physics label such as "flow"
package par

import (
	"github.com/cpmech/gosl/chk"

	"github.com/DavideBaroliUniLu/porepy/grid"
)

// FlowData holds the parameters of a pressure equation on one grid.
// Aperture means the cross sectional opening of lower-dimensional cells; it
// is 1 for cells of the highest dimension.
type FlowData struct {
	BC       *BoundaryCondition // face conditions
	Perm     *SecondOrder       // cell permeabilities
	Source   []float64          // [ncells] integrated source rates
	Aperture []float64          // [ncells] openings
}

// Parameters holds the parameter sets of one grid keyed by physics label.
// Accessing a label materialises default parameters first: homogeneous
// Neumann conditions, unit isotropic permeability, zero sources and unit
// apertures.
type Parameters struct {
	g    *grid.Grid
	data map[string]*FlowData
}

// NewParameters creates an empty parameter container for grid g
func NewParameters(g *grid.Grid) *Parameters {
	return &Parameters{g: g, data: make(map[string]*FlowData)}
}

// Grid returns the grid the parameters belong to
func (o *Parameters) Grid() *grid.Grid { return o.g }

// Get returns the parameter set of one physics label, materialising the
// defaults when the label is accessed for the first time
func (o *Parameters) Get(physics string) *FlowData {
	if d, ok := o.data[physics]; ok {
		return d
	}
	nc := o.g.NumCells()
	ones := make([]float64, nc)
	for c := range ones {
		ones[c] = 1
	}
	perm, err := NewIsoTensor(o.g.Ndim, ones)
	if err != nil {
		chk.Panic("INTERNAL ERROR: cannot create default permeability: %v", err)
	}
	d := &FlowData{
		BC: &BoundaryCondition{
			IsDir: make([]bool, o.g.NumFaces()),
			Val:   make([]float64, o.g.NumFaces()),
		},
		Perm:     perm,
		Source:   make([]float64, nc),
		Aperture: append([]float64{}, ones...),
	}
	o.data[physics] = d
	return d
}

// SetBC sets the boundary conditions of one physics label
func (o *Parameters) SetBC(physics string, bc *BoundaryCondition) (err error) {
	if bc == nil {
		return chk.Err("boundary conditions cannot be nil")
	}
	if len(bc.IsDir) != o.g.NumFaces() {
		return chk.Err("conditions cover %d faces; grid %q has %d", len(bc.IsDir), o.g.Name, o.g.NumFaces())
	}
	o.Get(physics).BC = bc
	return
}

// SetTensor sets the permeability tensors of one physics label
func (o *Parameters) SetTensor(physics string, k *SecondOrder) (err error) {
	if k == nil {
		return chk.Err("permeability cannot be nil")
	}
	if k.NumCells() != o.g.NumCells() {
		return chk.Err("permeability covers %d cells; grid %q has %d", k.NumCells(), o.g.Name, o.g.NumCells())
	}
	o.Get(physics).Perm = k
	return
}

// SetSource sets the integrated source rates of one physics label
func (o *Parameters) SetSource(physics string, src []float64) (err error) {
	if len(src) != o.g.NumCells() {
		return chk.Err("sources cover %d cells; grid %q has %d", len(src), o.g.Name, o.g.NumCells())
	}
	o.Get(physics).Source = src
	return
}

// SetAperture sets the cell openings of one physics label
func (o *Parameters) SetAperture(physics string, a []float64) (err error) {
	if len(a) != o.g.NumCells() {
		return chk.Err("apertures cover %d cells; grid %q has %d", len(a), o.g.Name, o.g.NumCells())
	}
	for c, v := range a {
		if v <= 0 {
			return chk.Err("aperture of cell %d is not positive: %g", c, v)
		}
	}
	o.Get(physics).Aperture = a
	return
}
