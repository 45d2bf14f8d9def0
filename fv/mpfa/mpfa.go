// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpfa implements the multi-point flux approximation (O variant)
package mpfa

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/DavideBaroliUniLu/porepy/fv"
	"github.com/DavideBaroliUniLu/porepy/fv/tpfa"
	"github.com/DavideBaroliUniLu/porepy/grid"
	"github.com/DavideBaroliUniLu/porepy/par"
)

// Mpfa approximates the flux through a face from the pressures of all cells
// sharing a vertex with it. Around every vertex an interaction region is
// built with one unknown pressure gradient per cell; flux and potential
// continuity at the face centres (plus Dirichlet potential or Neumann flux
// closure on boundary half-faces) determine the gradients, and the
// half-face fluxes condense into per-face stencils. The two half-face
// fluxes of a face always sum to the full face flux.
//
// The construction covers 2D grids; 1D and 0D grids fall back to the
// two-point scheme, which is exact there.
type Mpfa struct{}

// add discretization to factory
func init() {
	fv.Register("mpfa", func() fv.Discretizer { return new(Mpfa) })
}

// Name returns the name of this discretization
func (o *Mpfa) Name() string { return "mpfa" }

// Assemble builds the flux stencils of all faces of g
func (o *Mpfa) Assemble(g *grid.Grid, dat *par.FlowData) (stn *fv.Stencil, err error) {

	// dispatch on dimension
	switch g.Dim {
	case 0, 1:
		return new(tpfa.Tpfa).Assemble(g, dat)
	case 3:
		return nil, chk.Err("mpfa is not available for 3D grids")
	}

	// node => faces map
	nf := g.NumFaces()
	nodeFaces := make([][]int, g.NumNodes())
	for f, nodes := range g.FaceNodes {
		for _, v := range nodes {
			nodeFaces[v] = append(nodeFaces[v], f)
		}
	}

	// per-face stencil accumulators
	cellCoef := make([]map[int]float64, nf)
	bndCoef := make([]map[int]float64, nf)
	for f := 0; f < nf; f++ {
		cellCoef[f] = make(map[int]float64)
		bndCoef[f] = make(map[int]float64)
	}

	// one interaction region per vertex
	for v := 0; v < g.NumNodes(); v++ {
		if len(nodeFaces[v]) == 0 {
			continue
		}
		err = o.region(g, dat, v, nodeFaces[v], cellCoef, bndCoef)
		if err != nil {
			return
		}
	}

	// condense the accumulators
	stn = fv.NewStencil(nf)
	for f := 0; f < nf; f++ {
		cp, cm := g.FaceCells[f][0], g.FaceCells[f][1]
		if cp < 0 && cm < 0 {
			return nil, chk.Err("face %d of grid %q has no cells", f, g.Name)
		}
		if (cp < 0 || cm < 0) && !dat.BC.IsDir[f] {
			sgn := 1.0
			if cp < 0 {
				sgn = -1.0
			}
			stn.Set(f, nil, nil, []int{f}, []float64{sgn})
			continue
		}
		cells := make([]int, 0, len(cellCoef[f]))
		for c := range cellCoef[f] {
			cells = append(cells, c)
		}
		sort.Ints(cells)
		coefs := make([]float64, len(cells))
		for i, c := range cells {
			coefs[i] = cellCoef[f][c]
		}
		bfaces := make([]int, 0, len(bndCoef[f]))
		for b := range bndCoef[f] {
			bfaces = append(bfaces, b)
		}
		sort.Ints(bfaces)
		bcoefs := make([]float64, len(bfaces))
		for j, b := range bfaces {
			bcoefs[j] = bndCoef[f][b]
		}
		stn.Set(f, cells, coefs, bfaces, bcoefs)
	}
	return
}

// region assembles and solves the interaction region of vertex v and adds
// the resulting half-face flux expansions to the accumulators
func (o *Mpfa) region(g *grid.Grid, dat *par.FlowData, v int, faces []int, cellCoef, bndCoef []map[int]float64) (err error) {

	// cells around the vertex
	var cells []int
	for _, f := range faces {
		for _, c := range g.FaceCells[f] {
			if c < 0 {
				continue
			}
			found := false
			for _, have := range cells {
				if have == c {
					found = true
					break
				}
			}
			if !found {
				cells = append(cells, c)
			}
		}
	}
	if len(cells) == 0 {
		return
	}
	sort.Ints(cells)
	cidx := make(map[int]int)
	for i, c := range cells {
		cidx[c] = i
	}

	// boundary faces get one value column each, after the cell columns
	var bfs []int
	for _, f := range faces {
		if g.FaceCells[f][0] < 0 || g.FaceCells[f][1] < 0 {
			bfs = append(bfs, f)
		}
	}
	ncv := len(cells)
	ncols := ncv + len(bfs)
	bcol := make(map[int]int)
	for j, f := range bfs {
		bcol[f] = ncv + j
	}

	// unknowns: one gradient (two components) per cell; equations: flux and
	// potential continuity per interior face, one closure per boundary face
	n := 2 * ncv
	A := mat.NewDense(n, n, nil)
	B := mat.NewDense(n, ncols, nil)
	r := 0
	for _, f := range faces {
		cp, cm := g.FaceCells[f][0], g.FaceCells[f][1]
		half := g.FaceAreas[f] / 2.0
		if cp >= 0 && cm >= 0 {

			// flux continuity across the half-face
			wx, wy := kdotn(g, dat, f, cp)
			A.Set(r, 2*cidx[cp], half*wx)
			A.Set(r, 2*cidx[cp]+1, half*wy)
			wx, wy = kdotn(g, dat, f, cm)
			A.Set(r, 2*cidx[cm], -half*wx)
			A.Set(r, 2*cidx[cm]+1, -half*wy)
			r++

			// potential continuity at the face centre
			A.Set(r, 2*cidx[cp], g.FaceCenters[f][0]-g.CellCenters[cp][0])
			A.Set(r, 2*cidx[cp]+1, g.FaceCenters[f][1]-g.CellCenters[cp][1])
			A.Set(r, 2*cidx[cm], -(g.FaceCenters[f][0] - g.CellCenters[cm][0]))
			A.Set(r, 2*cidx[cm]+1, -(g.FaceCenters[f][1] - g.CellCenters[cm][1]))
			B.Set(r, cidx[cm], 1)
			B.Set(r, cidx[cp], -1)
			r++
			continue
		}

		// boundary closure
		c, sgn := cp, 1.0
		if c < 0 {
			c, sgn = cm, -1.0
		}
		if dat.BC.IsDir[f] {
			A.Set(r, 2*cidx[c], g.FaceCenters[f][0]-g.CellCenters[c][0])
			A.Set(r, 2*cidx[c]+1, g.FaceCenters[f][1]-g.CellCenters[c][1])
			B.Set(r, cidx[c], -1)
			B.Set(r, bcol[f], 1)
		} else {
			wx, wy := kdotn(g, dat, f, c)
			A.Set(r, 2*cidx[c], sgn*half*wx)
			A.Set(r, 2*cidx[c]+1, sgn*half*wy)
			B.Set(r, bcol[f], -0.5) // prescribed values are outward fluxes
		}
		r++
	}
	if r != n {
		return chk.Err("grid %q: interaction region at node %d is not closed: %d equations for %d unknowns", g.Name, v, r, n)
	}

	// gradients as linear functions of cell pressures and boundary values
	var lu mat.LU
	lu.Factorize(A)
	var X mat.Dense
	if e := lu.SolveTo(&X, false, B); e != nil {
		return chk.Err("grid %q: interaction region at node %d is singular:\n%v", g.Name, v, e)
	}

	// half-face fluxes along the stored normals
	for _, f := range faces {
		cp, cm := g.FaceCells[f][0], g.FaceCells[f][1]
		if (cp < 0 || cm < 0) && !dat.BC.IsDir[f] {
			continue // prescribed flux; no expansion needed
		}
		c := cp
		if c < 0 {
			c = cm
		}
		half := g.FaceAreas[f] / 2.0
		wx, wy := kdotn(g, dat, f, c)
		i := cidx[c]
		for j := 0; j < ncols; j++ {
			val := -half * (wx*X.At(2*i, j) + wy*X.At(2*i+1, j))
			if j < ncv {
				cellCoef[f][cells[j]] += val
			} else {
				bndCoef[f][bfs[j-ncv]] += val
			}
		}
	}
	return
}

// kdotn computes K・n of cell c at face f
func kdotn(g *grid.Grid, dat *par.FlowData, f, c int) (wx, wy float64) {
	K := dat.Perm.Mat(c)
	n := g.FaceNormals[f]
	wx = K[0][0]*n[0] + K[0][1]*n[1]
	wy = K[1][0]*n[0] + K[1][1]*n[1]
	return
}
