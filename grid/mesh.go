// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Frac holds the endpoints of one fracture segment. Segments must be
// axis-aligned and lie on the grid lines of the structured grid they are
// meshed into.
type Frac struct {
	A []float64 // first endpoint
	B []float64 // second endpoint
}

// fracPath holds intermediate meshing data of one fracture
type fracPath struct {
	ta, na int     // tangent and normal axes
	lo, hi float64 // range along the tangent axis
	level  float64 // coordinate along the normal axis
	gl     *Grid   // the 1D fracture grid
}

// NewCartBucket meshes axis-aligned fracture segments into a structured 2D
// grid and returns the resulting mixed-dimensional bucket: the matrix grid,
// one 1D grid per fracture, and a 0D point grid per fracture intersection.
// Matrix faces along a fracture are duplicated (one copy per side) and the
// nodes strictly inside the fracture path are split so the two sides
// disconnect; fracture cells are coupled to the duplicated face pairs
// through bucket interfaces. Node ordering is left to the caller.
func NewCartBucket(fracs []*Frac, ndiv []int, lengths []float64) (bkt *Bucket, err error) {

	// matrix grid
	if len(ndiv) != 2 {
		return nil, chk.Err("fracture meshing supports 2D grids only; got ndiv with %d entries", len(ndiv))
	}
	gh, err := NewCartGrid(ndiv, lengths)
	if err != nil {
		return
	}
	err = gh.ComputeGeometry()
	if err != nil {
		return
	}
	bkt = NewBucket()
	err = bkt.Add(gh)
	if err != nil {
		return
	}

	// mesh each fracture
	paths := make([]*fracPath, len(fracs))
	for i, frac := range fracs {
		paths[i], err = meshFrac(bkt, gh, frac, i)
		if err != nil {
			return nil, err
		}
	}

	// intersections
	err = meshCrossings(bkt, paths)
	return
}

// meshFrac splits the matrix faces along one fracture and builds its 1D grid
func meshFrac(bkt *Bucket, gh *Grid, frac *Frac, idx int) (path *fracPath, err error) {

	// classify the segment
	path = &fracPath{}
	switch {
	case math.Abs(frac.A[0]-frac.B[0]) < Gtol:
		path.ta, path.na = 1, 0 // vertical
	case math.Abs(frac.A[1]-frac.B[1]) < Gtol:
		path.ta, path.na = 0, 1 // horizontal
	default:
		return nil, chk.Err("fracture %d is not axis-aligned: a=%v b=%v", idx, frac.A, frac.B)
	}
	path.level = frac.A[path.na]
	path.lo = math.Min(frac.A[path.ta], frac.B[path.ta])
	path.hi = math.Max(frac.A[path.ta], frac.B[path.ta])
	if path.hi-path.lo < Gtol {
		return nil, chk.Err("fracture %d has zero length", idx)
	}

	// collect the matrix faces on the segment
	var ff []int
	for f := range gh.FaceNodes {
		c := gh.FaceCenters[f]
		if math.Abs(c[path.na]-path.level) < Gtol && c[path.ta] > path.lo+Gtol && c[path.ta] < path.hi-Gtol {
			if math.Abs(gh.FaceNormals[f][path.na]) > 1.0-Gtol {
				ff = append(ff, f)
			}
		}
	}
	if len(ff) == 0 {
		return nil, chk.Err("fracture %d does not lie on grid lines: a=%v b=%v", idx, frac.A, frac.B)
	}
	sort.Slice(ff, func(a, b int) bool {
		return gh.FaceCenters[ff[a]][path.ta] < gh.FaceCenters[ff[b]][path.ta]
	})

	// endpoints must sit on grid nodes: the face spans must tile the segment
	span := 0.0
	for _, f := range ff {
		span += gh.FaceAreas[f]
	}
	if math.Abs(span-(path.hi-path.lo)) > Gtol {
		return nil, chk.Err("fracture %d endpoints must coincide with grid nodes: a=%v b=%v", idx, frac.A, frac.B)
	}

	// split the faces
	dup, err := splitFaces(gh, ff, path)
	if err != nil {
		return nil, chk.Err("cannot split faces of fracture %d:\n%v", idx, err)
	}

	// 1D grid along the path
	var pos []float64
	for _, f := range ff {
		for _, n := range gh.FaceNodes[f] {
			pos = append(pos, gh.X[n][path.ta])
		}
	}
	pos = sortedUnique(pos)
	n1 := len(ff)
	if len(pos) != n1+1 {
		return nil, chk.Err("fracture %d path has %d breakpoints for %d faces", idx, len(pos), n1)
	}
	gl := &Grid{Name: io.Sf("frac1d_%d", idx), Dim: 1, Ndim: gh.Ndim}
	gl.X = make([][]float64, n1+1)
	gl.FaceNodes = make([][]int, n1+1)
	gl.Tags = make([]FaceTag, n1+1)
	for k, s := range pos {
		x := make([]float64, gh.Ndim)
		x[path.ta] = s
		x[path.na] = path.level
		gl.X[k] = x
		gl.FaceNodes[k] = []int{k}
	}
	gl.CellFaces = make([][]int, n1)
	gl.CellSigns = make([][]int, n1)
	for c := 0; c < n1; c++ {
		gl.CellFaces[c] = []int{c, c + 1}
		gl.CellSigns[c] = []int{-1, 1}
	}
	for _, k := range []int{0, n1} {
		if onDomainBoundary(gh, gl.X[k]) {
			gl.Tags[k] = TagBoundary | TagDomainBoundary
		} else {
			gl.Tags[k] = TagBoundary | TagTip
		}
	}
	err = gl.ComputeGeometry()
	if err != nil {
		return nil, err
	}

	// register
	err = bkt.Add(gl)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]int, n1)
	for j := range ff {
		pairs[j] = [2]int{ff[j], dup[j]}
	}
	err = bkt.AddInterface(&Interface{Hi: gh, Lo: gl, HiFaces: pairs})
	path.gl = gl
	return
}

// splitFaces duplicates the faces along a fracture and the nodes strictly
// inside its path (endpoint nodes only when they sit on the domain
// boundary), reassigning the positive-side cells and faces to the copies.
// The positive side is the side the face normals point into.
func splitFaces(gh *Grid, ff []int, path *fracPath) (dup []int, err error) {

	// duplicate faces
	dup = make([]int, len(ff))
	dupSet := make(map[int]bool)
	for j, f := range ff {
		cp, cm := gh.FaceCells[f][0], gh.FaceCells[f][1]
		if cp < 0 || cm < 0 {
			return nil, chk.Err("face %d is not an interior face; overlapping fractures?", f)
		}
		fd := gh.NumFaces()
		gh.FaceNodes = append(gh.FaceNodes, append([]int{}, gh.FaceNodes[f]...))
		gh.Tags[f] = gh.Tags[f].Add(TagBoundary | TagFracture)
		gh.Tags = append(gh.Tags, gh.Tags[f])
		replaceFace(gh, cm, f, fd)
		dup[j] = fd
		dupSet[fd] = true
	}
	err = gh.buildFaceCells()
	if err != nil {
		return
	}

	// nodes to duplicate
	var pathNodes []int
	seen := make(map[int]bool)
	for _, f := range ff {
		for _, n := range gh.FaceNodes[f] {
			if !seen[n] {
				seen[n] = true
				pathNodes = append(pathNodes, n)
			}
		}
	}

	// node => faces map
	nodeFaces := make(map[int][]int)
	for f, nodes := range gh.FaceNodes {
		for _, n := range nodes {
			if seen[n] {
				nodeFaces[n] = append(nodeFaces[n], f)
			}
		}
	}

	// split nodes
	for _, nd := range pathNodes {
		s := gh.X[nd][path.ta]
		endpoint := math.Abs(s-path.lo) < Gtol || math.Abs(s-path.hi) < Gtol
		if endpoint && !onDomainBoundary(gh, gh.X[nd]) {
			continue // tip: both sides stay connected here
		}
		ndNew := gh.NumNodes()
		gh.X = append(gh.X, append([]float64{}, gh.X[nd]...))
		for _, f := range nodeFaces[nd] {
			if dupSet[f] || allCellsPositive(gh, f, path) {
				replaceNode(gh, f, nd, ndNew)
			}
		}
	}

	// refresh geometry over the new topology
	err = gh.ComputeGeometry()
	return
}

// meshCrossings builds a 0D point grid wherever two fracture paths meet and
// couples it to the 1D grids, splitting their interior faces at the point
func meshCrossings(bkt *Bucket, paths []*fracPath) (err error) {

	// collect crossing points
	type hit struct {
		x     []float64
		fracs []*fracPath
	}
	var hits []*hit
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			p, q := paths[i], paths[j]
			if p.ta == q.ta {
				continue // parallel
			}
			x := make([]float64, 2)
			x[p.na] = p.level
			x[q.na] = q.level
			if x[p.ta] < p.lo-Gtol || x[p.ta] > p.hi+Gtol {
				continue
			}
			if x[q.ta] < q.lo-Gtol || x[q.ta] > q.hi+Gtol {
				continue
			}
			found := false
			for _, h := range hits {
				if math.Abs(h.x[0]-x[0]) < Gtol && math.Abs(h.x[1]-x[1]) < Gtol {
					h.fracs = appendPath(h.fracs, p, q)
					found = true
					break
				}
			}
			if !found {
				hits = append(hits, &hit{x: x, fracs: appendPath(nil, p, q)})
			}
		}
	}

	// one 0D grid per crossing point
	for k, h := range hits {
		g0 := NewPointGrid(h.x)
		g0.Name = io.Sf("isect0d_%d", k)
		err = g0.ComputeGeometry()
		if err != nil {
			return
		}
		err = bkt.Add(g0)
		if err != nil {
			return
		}
		for _, p := range h.fracs {
			pair, e := attachPoint(p, h.x)
			if e != nil {
				return e
			}
			err = bkt.AddInterface(&Interface{Hi: p.gl, Lo: g0, HiFaces: [][2]int{pair}})
			if err != nil {
				return
			}
		}
	}
	return
}

// attachPoint locates the crossing point on the 1D grid of path p and
// returns the face pair coupling it: the end face alone when the point is a
// fracture endpoint, otherwise the split interior face and its duplicate
func attachPoint(p *fracPath, x []float64) (pair [2]int, err error) {
	gl := p.gl
	k := -1
	for f := range gl.FaceNodes {
		if math.Abs(gl.FaceCenters[f][p.ta]-x[p.ta]) < Gtol {
			k = f
			break
		}
	}
	if k < 0 {
		return pair, chk.Err("crossing point %v is not a node of fracture grid %q", x, gl.Name)
	}

	// endpoint: one-sided coupling
	if gl.FaceCells[k][0] < 0 || gl.FaceCells[k][1] < 0 {
		gl.Tags[k] = TagBoundary | TagFracture
		return [2]int{k, -1}, nil
	}

	// interior: split the 1D face and its node
	cm := gl.FaceCells[k][1]
	kd := gl.NumFaces()
	ndNew := gl.NumNodes()
	gl.X = append(gl.X, append([]float64{}, gl.X[gl.FaceNodes[k][0]]...))
	gl.FaceNodes = append(gl.FaceNodes, []int{ndNew})
	gl.Tags[k] = TagBoundary | TagFracture
	gl.Tags = append(gl.Tags, TagBoundary|TagFracture)
	replaceFace(gl, cm, k, kd)
	err = gl.ComputeGeometry()
	return [2]int{k, kd}, err
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// replaceFace swaps face fOld for fNew in the face list of cell c
func replaceFace(g *Grid, c, fOld, fNew int) {
	for i, f := range g.CellFaces[c] {
		if f == fOld {
			g.CellFaces[c][i] = fNew
			return
		}
	}
	chk.Panic("INTERNAL ERROR: cell %d does not reference face %d", c, fOld)
}

// replaceNode swaps node ndOld for ndNew in the node list of face f
func replaceNode(g *Grid, f, ndOld, ndNew int) {
	for i, n := range g.FaceNodes[f] {
		if n == ndOld {
			g.FaceNodes[f][i] = ndNew
		}
	}
}

// allCellsPositive tells whether every cell of face f lies on the positive
// side of the fracture plane
func allCellsPositive(g *Grid, f int, path *fracPath) bool {
	any := false
	for _, c := range g.FaceCells[f] {
		if c < 0 {
			continue
		}
		any = true
		if g.CellCenters[c][path.na] < path.level {
			return false
		}
	}
	return any
}

// onDomainBoundary tells whether point x sits on the bounding box of grid g
func onDomainBoundary(g *Grid, x []float64) bool {
	if math.Abs(x[0]-g.Xmin) < Gtol || math.Abs(x[0]-g.Xmax) < Gtol {
		return true
	}
	if g.Ndim > 1 {
		if math.Abs(x[1]-g.Ymin) < Gtol || math.Abs(x[1]-g.Ymax) < Gtol {
			return true
		}
	}
	if g.Ndim > 2 {
		if math.Abs(x[2]-g.Zmin) < Gtol || math.Abs(x[2]-g.Zmax) < Gtol {
			return true
		}
	}
	return false
}

// sortedUnique sorts values and removes duplicates within Gtol
func sortedUnique(vals []float64) (res []float64) {
	sort.Float64s(vals)
	for _, v := range vals {
		if len(res) == 0 || v-res[len(res)-1] > Gtol {
			res = append(res, v)
		}
	}
	return
}

// appendPath appends paths avoiding duplicates
func appendPath(list []*fracPath, more ...*fracPath) []*fracPath {
	for _, p := range more {
		found := false
		for _, q := range list {
			if q == p {
				found = true
				break
			}
		}
		if !found {
			list = append(list, p)
		}
	}
	return list
}
