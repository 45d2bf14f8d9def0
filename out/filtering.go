// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/DavideBaroliUniLu/porepy/grid"
)

// Point holds the coordinates and the results of one cell
type Point struct {
	Eq   int                // equation number of the cell in the assembled system
	G    *grid.Grid         // grid holding the cell
	C    int                // cell id within the grid
	X    []float64          // coordinates of the cell centre
	Dist float64            // distance from the reference point when located along a line
	Vals map[string]float64 // extracted results; e.g. "p"
}

// Points is a set of points
type Points []*Point

// Len returns the number of points
func (o Points) Len() int { return len(o) }

// Swap swaps two points
func (o Points) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

// Less compares two points by the distance from the reference point
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// Locator defines the interface for locating space positions
type Locator interface {
	Locate() Points
}

// At implements locator at point => Locator
type At []float64

// C implements [gridIndex][cell] locator
// Pairs of grid indices (following the node ordering) and cell ids
//  Note: negative cell ids means all cells of the grid
type C [][]int

// Along implements locator along line => LineLocator
//  Example: with 2 points in 2D: {{0, 0.5}, {1, 0.5}}
type Along [][]float64

// AlongX implements LineLocator with []float64{y_cte} or []float64{y_cte, z_cte}
type AlongX []float64

// AlongY implements LineLocator with []float64{x_cte} or []float64{x_cte, z_cte}
type AlongY []float64

// AlongZ implements LineLocator with []float64{x_cte, y_cte}
type AlongZ []float64

// Locate finds the cell whose centre is at the given coordinates
func (o At) Locate() Points {
	eq := CellBins.Find(binpoint(o))
	if eq >= 0 {
		q := get_cell_point(eq, nil)
		if q != nil {
			return Points{q}
		}
	}
	return nil
}

// Locate finds cells given grid index and cell id pairs
func (o C) Locate() (res Points) {
	var A []float64 // reference point
	for i := 0; i < len(o); i++ {
		if len(o[i]) != 2 {
			continue
		}
		gi, cid := o[i][0], o[i][1]
		if gi < 0 || gi >= len(Dom.Grids) {
			continue
		}
		g := Dom.Grids[gi]
		if cid < 0 {
			for c := 0; c < g.NumCells(); c++ {
				q := get_cell_point(Dom.Offset[g]+c, A)
				if q != nil {
					res = append(res, q)
					if A == nil {
						A = q.X
					}
				}
			}
			continue
		}
		if cid >= g.NumCells() {
			continue
		}
		q := get_cell_point(Dom.Offset[g]+cid, A)
		if q != nil {
			res = append(res, q)
			if A == nil {
				A = q.X
			}
		}
	}
	if len(res) < len(o) {
		chk.Panic("cannot locate all cells in %v", o)
	}
	return
}

// Locate finds cell centres along a line
func (o Along) Locate() (res Points) {

	// check if there are two points
	if len(o) != 2 {
		return
	}
	A := binpoint(o[0])
	B := binpoint(o[1])

	// cell quantities
	ids := CellBins.FindAlongLine(A, B, TolC)
	for _, eq := range ids {
		q := get_cell_point(eq, A)
		if q != nil {
			res = append(res, q)
		}
	}
	sort.Sort(res)
	return
}

// Locate finds cell centres along a line parallel to the x-axis
func (o AlongX) Locate() (res Points) {
	A := make([]float64, len(CcMin))
	B := make([]float64, len(CcMin))
	A[0], B[0] = CcMin[0], CcMax[0]
	for i := 1; i < len(A); i++ {
		if i-1 < len(o) {
			A[i], B[i] = o[i-1], o[i-1]
		}
	}
	return Along{A, B}.Locate()
}

// Locate finds cell centres along a line parallel to the y-axis
func (o AlongY) Locate() (res Points) {
	if len(CcMin) < 2 {
		return
	}
	A := make([]float64, len(CcMin))
	B := make([]float64, len(CcMin))
	if len(o) > 0 {
		A[0], B[0] = o[0], o[0]
	}
	A[1], B[1] = CcMin[1], CcMax[1]
	if len(CcMin) == 3 && len(o) > 1 {
		A[2], B[2] = o[1], o[1]
	}
	return Along{A, B}.Locate()
}

// Locate finds cell centres along a line parallel to the z-axis
func (o AlongZ) Locate() (res Points) {
	if len(CcMin) != 3 || len(o) < 2 {
		return
	}
	A := []float64{o[0], o[1], CcMin[2]}
	B := []float64{o[0], o[1], CcMax[2]}
	return Along{A, B}.Locate()
}

// AllCells returns a locator with all cells of all grids
func AllCells() C {
	var p [][]int
	for i := range Dom.Grids {
		p = append(p, []int{i, -1})
	}
	return p
}

// get_cell_point returns a point with the data of the cell behind equation eq.
// A is the reference point to compute distances; it may be nil
func get_cell_point(eq int, A []float64) *Point {
	g := EqGrid[eq]
	c := EqCell[eq]
	x := g.CellCenters[c]
	var dist float64
	if A != nil {
		for i := 0; i < len(x) && i < len(A); i++ {
			dist += math.Pow(x[i]-A[i], 2.0)
		}
		dist = math.Sqrt(dist)
	}
	return &Point{eq, g, c, x, dist, make(map[string]float64)}
}
