// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/DavideBaroliUniLu/porepy/grid"
)

func Test_bc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc01. boundary conditions")

	g, err := grid.NewCartGrid([]int{2, 2}, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = g.ComputeGeometry()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// Dirichlet on the whole boundary
	bfaces := g.BoundaryFaces()
	kinds := make([]string, len(bfaces))
	for i := range kinds {
		kinds[i] = "dir"
	}
	bc, err := NewBoundaryCondition(g, bfaces, kinds)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Ints(tst, "dir faces", bc.DirFaces(), bfaces)
	err = bc.SetVal([]int{bfaces[0]}, []float64{3.5})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "value", 1e-17, bc.Val[bfaces[0]], 3.5)

	// interior faces reject conditions
	interior := -1
	for f := 0; f < g.NumFaces(); f++ {
		if !g.Tags[f].Has(grid.TagBoundary) {
			interior = f
			break
		}
	}
	_, err = NewBoundaryCondition(g, []int{interior}, []string{"dir"})
	if err == nil {
		tst.Errorf("conditions on interior faces must fail\n")
		return
	}
	_, err = NewBoundaryCondition(g, []int{bfaces[0]}, []string{"rob"})
	if err == nil {
		tst.Errorf("unknown condition kinds must fail\n")
		return
	}
}

func Test_tensor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensor01. cell-wise permeability")

	k, err := NewIsoTensor(2, []float64{1, 2, 3})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(k.NumCells(), 3)
	K := k.Mat(1)
	chk.Vector(tst, "row 0", 1e-17, K[0], []float64{2, 0})
	chk.Vector(tst, "row 1", 1e-17, K[1], []float64{0, 2})
	chk.Scalar(tst, "n.K.d", 1e-15, k.Dot(2, []float64{1, 0}, []float64{0.5, 1}), 1.5)

	// anisotropic with off-diagonal terms
	ka, err := NewTensor(2, []float64{2}, []float64{2}, nil, []float64{1}, nil, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	Ka := ka.Mat(0)
	chk.Vector(tst, "row 0", 1e-17, Ka[0], []float64{2, 1})
	chk.Vector(tst, "row 1", 1e-17, Ka[1], []float64{1, 2})
	chk.Scalar(tst, "x.K.y", 1e-15, ka.Dot(0, []float64{1, 0}, []float64{0, 1}), 1)

	// scaling
	ks, err := k.Scaled([]float64{2, 2, 2})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Vector(tst, "scaled kxx", 1e-17, ks.Kxx, []float64{2, 4, 6})

	// invalid input
	if _, err := NewIsoTensor(2, []float64{1, -1}); err == nil {
		tst.Errorf("negative permeability must fail\n")
		return
	}
	if _, err := NewTensor(2, []float64{1, 1}, []float64{1}, nil, nil, nil, nil); err == nil {
		tst.Errorf("inconsistent lengths must fail\n")
		return
	}
	if _, err := k.Scaled([]float64{1}); err == nil {
		tst.Errorf("inconsistent scaling factors must fail\n")
		return
	}
}

func Test_par01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("par01. parameter container with defaults")

	g, err := grid.NewCartGrid([]int{3, 3}, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = g.ComputeGeometry()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	prm := NewParameters(g)

	// first access materialises the defaults
	d := prm.Get("flow")
	chk.IntAssert(len(d.Source), 9)
	chk.IntAssert(len(d.Aperture), 9)
	chk.IntAssert(len(d.BC.IsDir), g.NumFaces())
	chk.Scalar(tst, "default aperture", 1e-17, d.Aperture[4], 1)
	chk.Scalar(tst, "default source", 1e-17, d.Source[4], 0)
	chk.Scalar(tst, "default kxx", 1e-17, d.Perm.Kxx[4], 1)
	if len(d.BC.DirFaces()) != 0 {
		tst.Errorf("default conditions must be Neumann\n")
		return
	}

	// the same set comes back on the next access
	if prm.Get("flow") != d {
		tst.Errorf("Get must return the stored set\n")
		return
	}

	// setters replace fields and check lengths
	src := make([]float64, 9)
	src[4] = 1
	err = prm.SetSource("flow", src)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "source", 1e-17, prm.Get("flow").Source[4], 1)
	if prm.SetSource("flow", []float64{1}) == nil {
		tst.Errorf("SetSource must fail with the wrong length\n")
		return
	}
	if prm.SetAperture("flow", make([]float64, 9)) == nil {
		tst.Errorf("SetAperture must fail with zero openings\n")
		return
	}
	kk, err := NewIsoTensor(2, []float64{1, 2})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if prm.SetTensor("flow", kk) == nil {
		tst.Errorf("SetTensor must fail with the wrong cell count\n")
		return
	}
}
