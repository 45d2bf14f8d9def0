// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DavideBaroliUniLu/porepy/fvm"
	"github.com/DavideBaroliUniLu/porepy/grid"
)

// Balance helps on checking conservation of solved simulations
type Balance struct {

	// input (must)
	Tst  *testing.T // testing structure
	Tol  float64    // tolerance to compare flux sums
	Verb bool       // verbose: show results
}

// Cellwise checks cell-by-cell conservation of grid g: the net outgoing flux
// of every cell must match its integrated source. Cells touching a face
// created by fracture splitting are skipped since the interface exchange
// through those faces bypasses the stencils.
func (o *Balance) Cellwise(ell *fvm.Elliptic, g *grid.Grid, src []float64) {
	F, err := ell.Fluxes(g)
	if err != nil {
		chk.Panic("cannot extract fluxes:\n%v", err)
	}
	for c := 0; c < g.NumCells(); c++ {
		coupled := false
		div := 0.0
		for _, f := range g.CellFaces[c] {
			if g.Tags[f].Has(grid.TagFracture) {
				coupled = true
				break
			}
			div += float64(g.CellFaceSign(c, f)) * F[f]
		}
		if coupled {
			continue
		}
		qc := 0.0
		if src != nil {
			qc = src[c]
		}
		chk.AnaNum(o.Tst, io.Sf("div%d", c), o.Tol, div, qc, o.Verb)
	}
}

// Global checks the balance of the whole bucket: the flux leaving through
// all domain-boundary faces must match qtot, the sum of all sources
func (o *Balance) Global(ell *fvm.Elliptic, qtot float64) {
	out := 0.0
	for _, g := range ell.Dom.Grids {
		F, err := ell.Fluxes(g)
		if err != nil {
			chk.Panic("cannot extract fluxes:\n%v", err)
		}
		for _, f := range g.FacesWithTag(grid.TagDomainBoundary) {
			c := g.FaceCells[f][0]
			if c < 0 {
				c = g.FaceCells[f][1]
			}
			out += float64(g.CellFaceSign(c, f)) * F[f]
		}
	}
	chk.AnaNum(o.Tst, "outflux", o.Tol, out, qtot, o.Verb)
}
