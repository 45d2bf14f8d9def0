// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// NewCartGrid creates a structured grid of line (1D), quadrilateral (2D) or
// hexahedral (3D) cells depending on len(ndiv). lengths holds the physical
// domain size per direction; nil means unit cell sizes (size == ndiv).
// Cells are numbered row-major with x fastest; faces are grouped by normal
// direction (x-normal block first, then y, then z); the grid is ready for
// use after ComputeGeometry.
//
// Numbering of the 2D case with ndiv=[3,2]:
//
//   nodes:            cells:         x-faces:        y-faces:
//   8---9--10--11                   +---+---+---+   +-14-+-15-+-16-+
//   |   |   |   |     | 3 | 4 | 5 | 4   5   6   7   |    |    |    |
//   4---5---6---7                   +---+---+---+   +-11-+-12-+-13-+
//   |   |   |   |     | 0 | 1 | 2 | 0   1   2   3   |    |    |    |
//   0---1---2---3                   +---+---+---+   +--8-+--9-+-10-+
func NewCartGrid(ndiv []int, lengths []float64) (g *Grid, err error) {
	if len(ndiv) < 1 || len(ndiv) > 3 {
		return nil, chk.Err("ndiv must have 1, 2 or 3 entries; got %d", len(ndiv))
	}
	for k, n := range ndiv {
		if n < 1 {
			return nil, chk.Err("ndiv[%d]=%d is invalid", k, n)
		}
	}
	if lengths == nil {
		lengths = make([]float64, len(ndiv))
		for k, n := range ndiv {
			lengths[k] = float64(n)
		}
	}
	if len(lengths) != len(ndiv) {
		return nil, chk.Err("lengths must have %d entries; got %d", len(ndiv), len(lengths))
	}
	for k, l := range lengths {
		if l <= 0 {
			return nil, chk.Err("lengths[%d]=%g is invalid", k, l)
		}
	}
	switch len(ndiv) {
	case 1:
		g = cart1d(ndiv[0], lengths[0])
	case 2:
		g = cart2d(ndiv[0], ndiv[1], lengths[0], lengths[1])
	case 3:
		g = cart3d(ndiv[0], ndiv[1], ndiv[2], lengths[0], lengths[1], lengths[2])
	}
	return
}

// NewPointGrid creates a 0D grid holding a single point cell
func NewPointGrid(x []float64) *Grid {
	return &Grid{
		Name:      "point",
		Dim:       0,
		Ndim:      len(x),
		X:         [][]float64{append([]float64{}, x...)},
		CellFaces: [][]int{{}},
		CellSigns: [][]int{{}},
	}
}

// cart1d builds a line grid: n cells, n+1 nodes, one point face per node
func cart1d(n int, l float64) (g *Grid) {
	g = &Grid{Name: io.Sf("cart1d_%d", n), Dim: 1, Ndim: 1}
	dx := l / float64(n)
	g.X = make([][]float64, n+1)
	g.FaceNodes = make([][]int, n+1)
	g.Tags = make([]FaceTag, n+1)
	for i := 0; i <= n; i++ {
		g.X[i] = []float64{float64(i) * dx}
		g.FaceNodes[i] = []int{i}
		if i == 0 || i == n {
			g.Tags[i] = TagBoundary | TagDomainBoundary
		}
	}
	g.CellFaces = make([][]int, n)
	g.CellSigns = make([][]int, n)
	for c := 0; c < n; c++ {
		g.CellFaces[c] = []int{c, c + 1}
		g.CellSigns[c] = []int{-1, 1}
	}
	return
}

// cart2d builds a quadrilateral grid
func cart2d(nx, ny int, lx, ly float64) (g *Grid) {
	g = &Grid{Name: io.Sf("cart2d_%dx%d", nx, ny), Dim: 2, Ndim: 2}
	dx, dy := lx/float64(nx), ly/float64(ny)
	node := func(i, j int) int { return i + j*(nx+1) }

	// nodes
	g.X = make([][]float64, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			g.X[node(i, j)] = []float64{float64(i) * dx, float64(j) * dy}
		}
	}

	// faces: x-normal block first, then y-normal
	nfx := (nx + 1) * ny
	nfy := nx * (ny + 1)
	xface := func(i, j int) int { return i + j*(nx+1) }
	yface := func(i, j int) int { return nfx + i + j*nx }
	g.FaceNodes = make([][]int, nfx+nfy)
	g.Tags = make([]FaceTag, nfx+nfy)
	for j := 0; j < ny; j++ {
		for i := 0; i <= nx; i++ {
			f := xface(i, j)
			g.FaceNodes[f] = []int{node(i, j), node(i, j+1)}
			if i == 0 || i == nx {
				g.Tags[f] = TagBoundary | TagDomainBoundary
			}
		}
	}
	for j := 0; j <= ny; j++ {
		for i := 0; i < nx; i++ {
			f := yface(i, j)
			g.FaceNodes[f] = []int{node(i, j), node(i+1, j)}
			if j == 0 || j == ny {
				g.Tags[f] = TagBoundary | TagDomainBoundary
			}
		}
	}

	// cells: west, east, south, north; normals point towards +x and +y
	g.CellFaces = make([][]int, nx*ny)
	g.CellSigns = make([][]int, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			c := i + j*nx
			g.CellFaces[c] = []int{xface(i, j), xface(i+1, j), yface(i, j), yface(i, j+1)}
			g.CellSigns[c] = []int{-1, 1, -1, 1}
		}
	}
	return
}

// cart3d builds a hexahedral grid with analytic geometry
func cart3d(nx, ny, nz int, lx, ly, lz float64) (g *Grid) {
	g = &Grid{Name: io.Sf("cart3d_%dx%dx%d", nx, ny, nz), Dim: 3, Ndim: 3}
	dx, dy, dz := lx/float64(nx), ly/float64(ny), lz/float64(nz)
	node := func(i, j, k int) int { return i + j*(nx+1) + k*(nx+1)*(ny+1) }

	// nodes
	g.X = make([][]float64, (nx+1)*(ny+1)*(nz+1))
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				g.X[node(i, j, k)] = []float64{float64(i) * dx, float64(j) * dy, float64(k) * dz}
			}
		}
	}

	// faces: x-normal, y-normal, z-normal blocks
	nfx := (nx + 1) * ny * nz
	nfy := nx * (ny + 1) * nz
	nfz := nx * ny * (nz + 1)
	xface := func(i, j, k int) int { return i + j*(nx+1) + k*(nx+1)*ny }
	yface := func(i, j, k int) int { return nfx + i + j*nx + k*nx*(ny+1) }
	zface := func(i, j, k int) int { return nfx + nfy + i + j*nx + k*nx*ny }
	g.FaceNodes = make([][]int, nfx+nfy+nfz)
	g.Tags = make([]FaceTag, nfx+nfy+nfz)
	g.FaceCenters = make([][]float64, nfx+nfy+nfz)
	g.FaceNormals = make([][]float64, nfx+nfy+nfz)
	g.FaceAreas = make([]float64, nfx+nfy+nfz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i <= nx; i++ {
				f := xface(i, j, k)
				g.FaceNodes[f] = []int{node(i, j, k), node(i, j+1, k), node(i, j+1, k+1), node(i, j, k+1)}
				g.FaceCenters[f] = []float64{float64(i) * dx, (float64(j) + 0.5) * dy, (float64(k) + 0.5) * dz}
				g.FaceNormals[f] = []float64{1, 0, 0}
				g.FaceAreas[f] = dy * dz
				if i == 0 || i == nx {
					g.Tags[f] = TagBoundary | TagDomainBoundary
				}
			}
		}
	}
	for k := 0; k < nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i < nx; i++ {
				f := yface(i, j, k)
				g.FaceNodes[f] = []int{node(i, j, k), node(i+1, j, k), node(i+1, j, k+1), node(i, j, k+1)}
				g.FaceCenters[f] = []float64{(float64(i) + 0.5) * dx, float64(j) * dy, (float64(k) + 0.5) * dz}
				g.FaceNormals[f] = []float64{0, 1, 0}
				g.FaceAreas[f] = dx * dz
				if j == 0 || j == ny {
					g.Tags[f] = TagBoundary | TagDomainBoundary
				}
			}
		}
	}
	for k := 0; k <= nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				f := zface(i, j, k)
				g.FaceNodes[f] = []int{node(i, j, k), node(i+1, j, k), node(i+1, j+1, k), node(i, j+1, k)}
				g.FaceCenters[f] = []float64{(float64(i) + 0.5) * dx, (float64(j) + 0.5) * dy, float64(k) * dz}
				g.FaceNormals[f] = []float64{0, 0, 1}
				g.FaceAreas[f] = dx * dy
				if k == 0 || k == nz {
					g.Tags[f] = TagBoundary | TagDomainBoundary
				}
			}
		}
	}

	// cells with analytic centers and volumes
	g.CellFaces = make([][]int, nx*ny*nz)
	g.CellSigns = make([][]int, nx*ny*nz)
	g.CellCenters = make([][]float64, nx*ny*nz)
	g.CellVolumes = make([]float64, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				c := i + j*nx + k*nx*ny
				g.CellFaces[c] = []int{xface(i, j, k), xface(i+1, j, k), yface(i, j, k), yface(i, j+1, k), zface(i, j, k), zface(i, j, k+1)}
				g.CellSigns[c] = []int{-1, 1, -1, 1, -1, 1}
				g.CellCenters[c] = []float64{(float64(i) + 0.5) * dx, (float64(j) + 0.5) * dy, (float64(k) + 0.5) * dz}
				g.CellVolumes[c] = dx * dy * dz
			}
		}
	}
	return
}
