// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import (
	"github.com/cpmech/gosl/chk"

	"github.com/DavideBaroliUniLu/porepy/grid"
)

// BoundaryCondition holds the condition kind and value of every face of one
// grid. Faces start as homogeneous Neumann; Dirichlet can be requested for
// boundary faces only. Values mean pressure on Dirichlet faces and
// integrated outward flux on Neumann faces.
type BoundaryCondition struct {
	IsDir []bool    // [nfaces] true for Dirichlet faces
	Val   []float64 // [nfaces] pressure (Dirichlet) or outward flux (Neumann)
}

// NewBoundaryCondition creates a default (Neumann zero) condition set and
// applies the given kinds, "dir" or "neu", to the given faces
func NewBoundaryCondition(g *grid.Grid, faces []int, kinds []string) (o *BoundaryCondition, err error) {
	o = &BoundaryCondition{
		IsDir: make([]bool, g.NumFaces()),
		Val:   make([]float64, g.NumFaces()),
	}
	if len(faces) != len(kinds) {
		return nil, chk.Err("need one kind per face; got %d kinds for %d faces", len(kinds), len(faces))
	}
	for i, f := range faces {
		if f < 0 || f >= g.NumFaces() {
			return nil, chk.Err("face %d is out of range", f)
		}
		if !g.Tags[f].Has(grid.TagBoundary) {
			return nil, chk.Err("face %d is not a boundary face; conditions apply to boundary faces only", f)
		}
		switch kinds[i] {
		case "dir":
			o.IsDir[f] = true
		case "neu":
			o.IsDir[f] = false
		default:
			return nil, chk.Err("unknown condition kind %q for face %d", kinds[i], f)
		}
	}
	return
}

// SetVal sets the condition values of the given faces
func (o *BoundaryCondition) SetVal(faces []int, vals []float64) (err error) {
	if len(faces) != len(vals) {
		return chk.Err("need one value per face; got %d values for %d faces", len(vals), len(faces))
	}
	for i, f := range faces {
		if f < 0 || f >= len(o.Val) {
			return chk.Err("face %d is out of range", f)
		}
		o.Val[f] = vals[i]
	}
	return
}

// DirFaces returns the ids of all Dirichlet faces
func (o *BoundaryCondition) DirFaces() (faces []int) {
	for f, isdir := range o.IsDir {
		if isdir {
			faces = append(faces, f)
		}
	}
	return
}
