// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Interface couples a lower-dimensional grid to the higher-dimensional grid
// it is immersed in. Each lo cell lies between a pair of hi faces created by
// fracture splitting; one-sided contacts (e.g. a fracture ending on another
// fracture) leave the second entry at -1.
type Interface struct {
	Hi      *Grid    // higher-dimensional grid
	Lo      *Grid    // lower-dimensional grid
	HiFaces [][2]int // [lo.NumCells()] hi-face pair per lo cell
}

// Bucket holds a set of grids of decreasing dimension together with the
// interfaces coupling them and labelled per-grid result fields
type Bucket struct {

	// members
	Grids  []*Grid      // grids in insertion order
	Ifaces []*Interface // interfaces between grid pairs

	// derived
	NodeNum map[*Grid]int                  // grid => node number; see AssignNodeOrdering
	Fields  map[*Grid]map[string][]float64 // grid => label => per-cell values
}

// NewBucket creates an empty bucket
func NewBucket() *Bucket {
	return &Bucket{
		NodeNum: make(map[*Grid]int),
		Fields:  make(map[*Grid]map[string][]float64),
	}
}

// Add appends a grid to the bucket
func (o *Bucket) Add(g *Grid) (err error) {
	if g == nil {
		return chk.Err("cannot add nil grid to bucket")
	}
	for _, h := range o.Grids {
		if h == g {
			return chk.Err("grid %q is already in the bucket", g.Name)
		}
	}
	o.Grids = append(o.Grids, g)
	return
}

// AddInterface appends an interface; both grids must be members already
func (o *Bucket) AddInterface(i *Interface) (err error) {
	if !o.Has(i.Hi) || !o.Has(i.Lo) {
		return chk.Err("interface grids must be added to the bucket first")
	}
	if i.Hi.Dim != i.Lo.Dim+1 {
		return chk.Err("interface needs a dimension gap of one; got %d and %d", i.Hi.Dim, i.Lo.Dim)
	}
	if len(i.HiFaces) != i.Lo.NumCells() {
		return chk.Err("interface needs one hi-face pair per lo cell; got %d pairs for %d cells", len(i.HiFaces), i.Lo.NumCells())
	}
	o.Ifaces = append(o.Ifaces, i)
	return
}

// Has tells whether g is a member
func (o *Bucket) Has(g *Grid) bool {
	for _, h := range o.Grids {
		if h == g {
			return true
		}
	}
	return false
}

// GridsOfDim returns the member grids with topological dimension dim
func (o *Bucket) GridsOfDim(dim int) (res []*Grid) {
	for _, g := range o.Grids {
		if g.Dim == dim {
			res = append(res, g)
		}
	}
	return
}

// InterfacesOf returns the interfaces touching g, hi side or lo side
func (o *Bucket) InterfacesOf(g *Grid) (res []*Interface) {
	for _, i := range o.Ifaces {
		if i.Hi == g || i.Lo == g {
			res = append(res, i)
		}
	}
	return
}

// MaxDim returns the highest grid dimension in the bucket
func (o *Bucket) MaxDim() (d int) {
	for _, g := range o.Grids {
		if g.Dim > d {
			d = g.Dim
		}
	}
	return
}

// MinDim returns the lowest grid dimension in the bucket
func (o *Bucket) MinDim() (d int) {
	if len(o.Grids) == 0 {
		return 0
	}
	d = o.Grids[0].Dim
	for _, g := range o.Grids {
		if g.Dim < d {
			d = g.Dim
		}
	}
	return
}

// NumCellsTotal returns the total number of cells over all member grids
func (o *Bucket) NumCellsTotal() (n int) {
	for _, g := range o.Grids {
		n += g.NumCells()
	}
	return
}

// AssignNodeOrdering numbers the member grids 0..n-1 by descending
// dimension, keeping the insertion order within a dimension
func (o *Bucket) AssignNodeOrdering() {
	idx := make([]int, len(o.Grids))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return o.Grids[idx[a]].Dim > o.Grids[idx[b]].Dim
	})
	o.NodeNum = make(map[*Grid]int)
	for num, i := range idx {
		o.NodeNum[o.Grids[i]] = num
	}
}

// Ordered tells whether AssignNodeOrdering ran already
func (o *Bucket) Ordered() bool {
	return len(o.NodeNum) == len(o.Grids) && len(o.Grids) > 0
}

// OrderedGrids returns the member grids sorted by node number
func (o *Bucket) OrderedGrids() (res []*Grid) {
	if !o.Ordered() {
		o.AssignNodeOrdering()
	}
	res = append(res, o.Grids...)
	sort.SliceStable(res, func(a, b int) bool {
		return o.NodeNum[res[a]] < o.NodeNum[res[b]]
	})
	return
}

// SetField stores a labelled per-cell field for grid g
func (o *Bucket) SetField(g *Grid, label string, vals []float64) (err error) {
	if !o.Has(g) {
		return chk.Err("grid %q is not in the bucket", g.Name)
	}
	if len(vals) != g.NumCells() {
		return chk.Err("field %q needs %d values for grid %q; got %d", label, g.NumCells(), g.Name, len(vals))
	}
	if o.Fields[g] == nil {
		o.Fields[g] = make(map[string][]float64)
	}
	o.Fields[g][label] = vals
	return
}

// Field retrieves a labelled per-cell field of grid g; nil if absent
func (o *Bucket) Field(g *Grid, label string) []float64 {
	if m, ok := o.Fields[g]; ok {
		return m[label]
	}
	return nil
}

// String returns a JSON representation of *Bucket
func (o *Bucket) String() string {
	l := "{\n  \"grids\" : [\n"
	for i, g := range o.OrderedGrids() {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\"num\":%d, \"name\":%q, \"dim\":%d, \"ncells\":%d}", o.NodeNum[g], g.Name, g.Dim, g.NumCells())
	}
	l += "\n  ],\n  \"interfaces\" : [\n"
	for i, fc := range o.Ifaces {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\"hi\":%q, \"lo\":%q, \"ncells\":%d}", fc.Hi.Name, fc.Lo.Name, len(fc.HiFaces))
	}
	l += "\n  ]\n}"
	return l
}
