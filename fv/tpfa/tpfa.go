// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tpfa implements the two-point flux approximation
package tpfa

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/DavideBaroliUniLu/porepy/fv"
	"github.com/DavideBaroliUniLu/porepy/grid"
	"github.com/DavideBaroliUniLu/porepy/par"
)

// Tpfa approximates the flux through a face from the pressures of its two
// cells. Interior faces combine the half-transmissibilities harmonically
//
//    T = t₁ t₂ / (t₁ + t₂)
//
// Dirichlet faces use the half-transmissibility of their single cell
// against the boundary value and Neumann faces carry the prescribed
// outward flux.
type Tpfa struct{}

// add discretization to factory
func init() {
	fv.Register("tpfa", func() fv.Discretizer { return new(Tpfa) })
}

// Name returns the name of this discretization
func (o *Tpfa) Name() string { return "tpfa" }

// Assemble builds the flux stencils of all faces of g
func (o *Tpfa) Assemble(g *grid.Grid, dat *par.FlowData) (s *fv.Stencil, err error) {
	s = fv.NewStencil(g.NumFaces())
	for f := 0; f < g.NumFaces(); f++ {
		cp, cm := g.FaceCells[f][0], g.FaceCells[f][1]
		switch {

		// interior
		case cp >= 0 && cm >= 0:
			tp, e := fv.HalfTrans(g, dat.Perm, cp, f)
			if e != nil {
				return nil, e
			}
			tm, e := fv.HalfTrans(g, dat.Perm, cm, f)
			if e != nil {
				return nil, e
			}
			T := 0.0
			if den := tp + tm; math.Abs(den) > 1e-30 {
				T = tp * tm / den
			}
			s.Set(f, []int{cp, cm}, []float64{T, -T}, nil, nil)

		// boundary
		case cp >= 0 || cm >= 0:
			c, sign := cp, 1.0
			if c < 0 {
				c, sign = cm, -1.0
			}
			if dat.BC.IsDir[f] {
				t, e := fv.HalfTrans(g, dat.Perm, c, f)
				if e != nil {
					return nil, e
				}
				s.Set(f, []int{c}, []float64{sign * t}, []int{f}, []float64{-sign * t})
			} else {
				s.Set(f, nil, nil, []int{f}, []float64{sign})
			}

		default:
			return nil, chk.Err("face %d of grid %q has no cells", f, g.Name)
		}
	}
	return
}
