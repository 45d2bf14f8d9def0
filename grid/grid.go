// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements cell/face/node containers for finite volume grids
// of topological dimension 0 to 3, structured (Cartesian) constructors,
// fracture meshing by face splitting, and the mixed-dimensional grid bucket
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Gtol is the tolerance to compare coordinates
const Gtol = 1e-8

// Grid holds the topology and geometry of a single-dimension grid.
// Connectivity is face based: faces reference their nodes and cells
// reference their faces together with an orientation sign; +1 means the
// stored face normal points out of the cell.
type Grid struct {

	// basic data
	Name string      // grid name
	Dim  int         // topological dimension (0, 1, 2 or 3)
	Ndim int         // ambient space dimension
	X    [][]float64 // [nnodes][Ndim] node coordinates

	// connectivity
	FaceNodes [][]int // [nfaces][...] node ids of each face
	CellFaces [][]int // [ncells][...] face ids of each cell
	CellSigns [][]int // [ncells][...] +1 if face normal points out of cell

	// face tags
	Tags []FaceTag // [nfaces] face classification

	// derived
	FaceCells [][2]int // [nfaces] cells [plus-side, minus-side]; -1 if absent

	// geometry; computed by ComputeGeometry
	CellCenters [][]float64 // [ncells][Ndim] cell centroids
	CellVolumes []float64   // [ncells] measures: length (1D), area (2D), volume (3D)
	FaceCenters [][]float64 // [nfaces][Ndim] face centroids
	FaceNormals [][]float64 // [nfaces][Ndim] unit normals
	FaceAreas   []float64   // [nfaces] measures: 1 (0D faces), length (1D faces), area (2D faces)

	// limits
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate
}

// NumCells returns the number of cells
func (o *Grid) NumCells() int { return len(o.CellFaces) }

// NumFaces returns the number of faces
func (o *Grid) NumFaces() int { return len(o.FaceNodes) }

// NumNodes returns the number of nodes
func (o *Grid) NumNodes() int { return len(o.X) }

// FacesWithTag returns the ids of all faces carrying every bit of t
func (o *Grid) FacesWithTag(t FaceTag) (faces []int) {
	for f, tag := range o.Tags {
		if tag.Has(t) {
			faces = append(faces, f)
		}
	}
	return
}

// BoundaryFaces returns the ids of all faces on the boundary of this grid
func (o *Grid) BoundaryFaces() []int {
	return o.FacesWithTag(TagBoundary)
}

// CellFaceSign returns the orientation sign of face f in cell c or 0 if
// the face does not belong to the cell
func (o *Grid) CellFaceSign(c, f int) int {
	for i, g := range o.CellFaces[c] {
		if g == f {
			return o.CellSigns[c][i]
		}
	}
	return 0
}

// buildFaceCells derives the face => cells map from the cell => faces map.
// Position 0 holds the cell the normal leaves (sign +1) and position 1 the
// cell the normal enters (sign -1).
func (o *Grid) buildFaceCells() (err error) {
	o.FaceCells = make([][2]int, o.NumFaces())
	for f := range o.FaceCells {
		o.FaceCells[f] = [2]int{-1, -1}
	}
	for c, faces := range o.CellFaces {
		for i, f := range faces {
			k := 0
			if o.CellSigns[c][i] < 0 {
				k = 1
			}
			if o.FaceCells[f][k] >= 0 {
				return chk.Err("face %d has two cells (%d and %d) on the same side", f, o.FaceCells[f][k], c)
			}
			o.FaceCells[f][k] = c
		}
	}
	return
}

// ComputeGeometry fills cell centers, cell volumes, face centers, face
// areas and unit face normals from the coordinates and the connectivity.
// It can be called again after the topology changed (e.g. by fracture
// splitting). General 3D cell geometry is not implemented; 3D Cartesian
// constructors fill their geometry analytically.
func (o *Grid) ComputeGeometry() (err error) {

	// check
	if o.NumNodes() < 1 {
		return chk.Err("grid %q has no nodes", o.Name)
	}
	o.Ndim = len(o.X[0])
	err = o.buildFaceCells()
	if err != nil {
		return
	}

	// limits
	o.limits()

	// dispatch on dimension
	switch o.Dim {
	case 0:
		o.CellCenters = [][]float64{o.X[0]}
		o.CellVolumes = []float64{1}
		o.FaceCenters = nil
		o.FaceNormals = nil
		o.FaceAreas = nil
		return
	case 1:
		err = o.geom1d()
	case 2:
		err = o.geom2d()
	case 3:
		if len(o.CellVolumes) == o.NumCells() && o.NumCells() > 0 {
			return // analytic geometry from the Cartesian constructor
		}
		return chk.Err("grid %q: general 3D cell geometry is not available", o.Name)
	default:
		return chk.Err("grid %q has invalid dimension %d", o.Name, o.Dim)
	}
	if err != nil {
		return
	}

	// orient normals using the cell signs
	return o.orientNormals()
}

// limits computes the coordinate ranges
func (o *Grid) limits() {
	o.Xmin, o.Xmax = o.X[0][0], o.X[0][0]
	if o.Ndim > 1 {
		o.Ymin, o.Ymax = o.X[0][1], o.X[0][1]
	}
	if o.Ndim > 2 {
		o.Zmin, o.Zmax = o.X[0][2], o.X[0][2]
	}
	for _, x := range o.X {
		o.Xmin = utl.Min(o.Xmin, x[0])
		o.Xmax = utl.Max(o.Xmax, x[0])
		if o.Ndim > 1 {
			o.Ymin = utl.Min(o.Ymin, x[1])
			o.Ymax = utl.Max(o.Ymax, x[1])
		}
		if o.Ndim > 2 {
			o.Zmin = utl.Min(o.Zmin, x[2])
			o.Zmax = utl.Max(o.Zmax, x[2])
		}
	}
}

// geom1d computes the geometry of a grid of line cells. Faces are points;
// their "normal" is the line tangent oriented by the cell signs.
func (o *Grid) geom1d() (err error) {

	// face centers first; cells need them
	nf := o.NumFaces()
	o.FaceCenters = make([][]float64, nf)
	o.FaceAreas = make([]float64, nf)
	o.FaceNormals = make([][]float64, nf)
	for f, nodes := range o.FaceNodes {
		if len(nodes) != 1 {
			return chk.Err("grid %q: 1D face %d must have one node", o.Name, f)
		}
		o.FaceCenters[f] = append([]float64{}, o.X[nodes[0]]...)
		o.FaceAreas[f] = 1
	}

	// cells
	nc := o.NumCells()
	o.CellCenters = make([][]float64, nc)
	o.CellVolumes = make([]float64, nc)
	for c, faces := range o.CellFaces {
		if len(faces) != 2 {
			return chk.Err("grid %q: 1D cell %d must have two faces", o.Name, c)
		}
		a, b := o.FaceCenters[faces[0]], o.FaceCenters[faces[1]]
		o.CellCenters[c] = make([]float64, o.Ndim)
		d := 0.0
		for k := 0; k < o.Ndim; k++ {
			o.CellCenters[c][k] = (a[k] + b[k]) / 2.0
			d += (b[k] - a[k]) * (b[k] - a[k])
		}
		o.CellVolumes[c] = math.Sqrt(d)
		if o.CellVolumes[c] < Gtol {
			return chk.Err("grid %q: 1D cell %d has zero length", o.Name, c)
		}
	}

	// raw normals: from cell center towards the face
	for f := range o.FaceNodes {
		c := o.FaceCells[f][0]
		if c < 0 {
			c = o.FaceCells[f][1]
		}
		if c < 0 {
			return chk.Err("grid %q: face %d has no cells", o.Name, f)
		}
		o.FaceNormals[f] = unitDiff(o.FaceCenters[f], o.CellCenters[c])
	}
	return
}

// geom2d computes the geometry of a grid of polygonal cells in the plane
func (o *Grid) geom2d() (err error) {

	// check
	if o.Ndim != 2 {
		return chk.Err("grid %q: 2D cells need a 2D ambient space", o.Name)
	}

	// faces: segments
	nf := o.NumFaces()
	o.FaceCenters = make([][]float64, nf)
	o.FaceAreas = make([]float64, nf)
	o.FaceNormals = make([][]float64, nf)
	for f, nodes := range o.FaceNodes {
		if len(nodes) != 2 {
			return chk.Err("grid %q: 2D face %d must have two nodes", o.Name, f)
		}
		a, b := o.X[nodes[0]], o.X[nodes[1]]
		o.FaceCenters[f] = []float64{(a[0] + b[0]) / 2.0, (a[1] + b[1]) / 2.0}
		dx, dy := b[0]-a[0], b[1]-a[1]
		o.FaceAreas[f] = math.Sqrt(dx*dx + dy*dy)
		if o.FaceAreas[f] < Gtol {
			return chk.Err("grid %q: face %d has zero length", o.Name, f)
		}
		o.FaceNormals[f] = []float64{dy / o.FaceAreas[f], -dx / o.FaceAreas[f]}
	}

	// cells: polygon centroid and area by the shoelace formula
	nc := o.NumCells()
	o.CellCenters = make([][]float64, nc)
	o.CellVolumes = make([]float64, nc)
	for c := range o.CellFaces {
		loop, e := o.cellLoop(c)
		if e != nil {
			return e
		}
		var a2, cx, cy float64
		n := len(loop)
		for i := 0; i < n; i++ {
			p, q := o.X[loop[i]], o.X[loop[(i+1)%n]]
			cross := p[0]*q[1] - q[0]*p[1]
			a2 += cross
			cx += (p[0] + q[0]) * cross
			cy += (p[1] + q[1]) * cross
		}
		if math.Abs(a2) < Gtol {
			return chk.Err("grid %q: cell %d has zero area", o.Name, c)
		}
		o.CellVolumes[c] = math.Abs(a2) / 2.0
		o.CellCenters[c] = []float64{cx / (3.0 * a2), cy / (3.0 * a2)}
	}
	return
}

// cellLoop chains the edges of 2D cell c into an ordered closed node loop
func (o *Grid) cellLoop(c int) (loop []int, err error) {
	faces := o.CellFaces[c]
	n := len(faces)
	if n < 3 {
		return nil, chk.Err("grid %q: 2D cell %d has less than 3 faces", o.Name, c)
	}
	used := make([]bool, n)
	first := o.FaceNodes[faces[0]]
	loop = append(loop, first[0], first[1])
	used[0] = true
	for count := 1; count < n-1; count++ {
		last := loop[len(loop)-1]
		found := false
		for i := 1; i < n; i++ {
			if used[i] {
				continue
			}
			fn := o.FaceNodes[faces[i]]
			if fn[0] == last {
				loop = append(loop, fn[1])
				used[i] = true
				found = true
				break
			}
			if fn[1] == last {
				loop = append(loop, fn[0])
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return nil, chk.Err("grid %q: cell %d boundary does not close", o.Name, c)
		}
	}
	return
}

// orientNormals flips normals so that a sign of +1 means "out of the cell"
// and checks that the two cells of interior faces sit on opposite sides
func (o *Grid) orientNormals() (err error) {
	for f := range o.FaceNodes {
		cp, cm := o.FaceCells[f][0], o.FaceCells[f][1]
		if cp < 0 && cm < 0 {
			return chk.Err("grid %q: face %d has no cells", o.Name, f)
		}
		c, s := cp, 1.0
		if c < 0 {
			c, s = cm, -1.0
		}
		if s*dot(o.FaceNormals[f], diff(o.FaceCenters[f], o.CellCenters[c])) < 0 {
			for k := range o.FaceNormals[f] {
				o.FaceNormals[f][k] = -o.FaceNormals[f][k]
			}
		}
		if cp >= 0 && cm >= 0 {
			if dot(o.FaceNormals[f], diff(o.CellCenters[cm], o.CellCenters[cp])) <= 0 {
				return chk.Err("grid %q: cells %d and %d of face %d are not on opposite sides", o.Name, cp, cm, f)
			}
		}
	}
	return
}

// FaceSet returns the faces matching a named set:
//  "boundary"            -- all faces on the boundary of this grid
//  "domain"              -- faces on the physical domain boundary
//  "fracture"            -- faces created by fracture splitting
//  "xmin","xmax",...     -- domain-boundary faces on a bounding plane
func (o *Grid) FaceSet(name string) (faces []int, err error) {
	switch name {
	case "boundary":
		return o.FacesWithTag(TagBoundary), nil
	case "domain":
		return o.FacesWithTag(TagDomainBoundary), nil
	case "fracture":
		return o.FacesWithTag(TagFracture), nil
	}
	if len(o.FaceCenters) != o.NumFaces() {
		return nil, chk.Err("grid %q: FaceSet(%q) needs ComputeGeometry first", o.Name, name)
	}
	var axis int
	var val float64
	switch name {
	case "xmin":
		axis, val = 0, o.Xmin
	case "xmax":
		axis, val = 0, o.Xmax
	case "ymin":
		axis, val = 1, o.Ymin
	case "ymax":
		axis, val = 1, o.Ymax
	case "zmin":
		axis, val = 2, o.Zmin
	case "zmax":
		axis, val = 2, o.Zmax
	default:
		return nil, chk.Err("grid %q: unknown face set %q", o.Name, name)
	}
	if axis >= o.Ndim {
		return nil, chk.Err("grid %q: face set %q needs ndim > %d", o.Name, name, axis)
	}
	for _, f := range o.FacesWithTag(TagDomainBoundary) {
		if math.Abs(o.FaceCenters[f][axis]-val) < Gtol {
			faces = append(faces, f)
		}
	}
	return
}

// String returns a JSON representation of *Grid
func (o *Grid) String() string {
	l := io.Sf("{\"name\":%q, \"dim\":%d, \"nnodes\":%d, \"nfaces\":%d, \"ncells\":%d", o.Name, o.Dim, o.NumNodes(), o.NumFaces(), o.NumCells())
	l += ", \"cellfaces\":["
	for i, faces := range o.CellFaces {
		if i > 0 {
			l += ", "
		}
		l += "["
		for j, f := range faces {
			if j > 0 {
				l += ", "
			}
			l += io.Sf("%d", f)
		}
		l += "]"
	}
	l += "] }"
	return l
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// dot computes the dot product of two small vectors
func dot(u, v []float64) (res float64) {
	for k := range u {
		res += u[k] * v[k]
	}
	return
}

// diff computes u - v
func diff(u, v []float64) (res []float64) {
	res = make([]float64, len(u))
	for k := range u {
		res[k] = u[k] - v[k]
	}
	return
}

// unitDiff computes (u - v) normalised
func unitDiff(u, v []float64) (res []float64) {
	res = diff(u, v)
	d := math.Sqrt(dot(res, res))
	if d > 0 {
		for k := range res {
			res[k] /= d
		}
	}
	return
}
