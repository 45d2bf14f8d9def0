// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01")

	funcs := FuncsData{
		&FuncData{Name: "influx", Type: "cte", Prms: fun.Prms{
			&fun.Prm{N: "c", V: 2.5},
		}},
		&FuncData{Name: "broken", Type: "nosuchtype"},
	}
	io.Pforan("%v\n", funcs)

	zero, err := funcs.Get("zero")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "zero(123)", 1e-17, zero.F(123, nil), 0)

	fcn, err := funcs.Get("influx")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "influx(0)", 1e-17, fcn.F(0, nil), 2.5)
	chk.Scalar(tst, "influx(17,x)", 1e-17, fcn.F(17, []float64{1, 2}), 2.5)

	_, err = funcs.Get("missing")
	if err == nil {
		tst.Errorf("Get must fail with unknown function names\n")
		return
	}
	io.Pf("ok: %v\n", err)

	_, err = funcs.Get("broken")
	if err == nil {
		tst.Errorf("Get must fail with unknown function types\n")
		return
	}
	io.Pf("ok: %v\n", err)
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01")

	mdb1, err := ReadMat("data", "materials.mat", 2)
	if err != nil {
		tst.Errorf("cannot read materials.mat:\n%v", err)
		return
	}
	io.Pforan("materials.mat just read:\n%v\n", mdb1)

	rock := mdb1.Get("rock")
	if rock == nil || rock.Mdl == nil {
		tst.Errorf("cannot get \"rock\" material\n")
		return
	}
	kten, err := rock.Mdl.Tensor(2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Vector(tst, "rock: kxx", 1e-17, kten.Kxx, []float64{1, 1})

	gouge := mdb1.Get("gouge")
	if gouge == nil || gouge.Mdl == nil {
		tst.Errorf("cannot get \"gouge\" material\n")
		return
	}
	kten, err = gouge.Mdl.Tensor(1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	K := kten.Mat(0)
	chk.Vector(tst, "gouge: row 0", 1e-17, K[0], []float64{10, 0})
	chk.Vector(tst, "gouge: row 1", 1e-17, K[1], []float64{0, 0.1})

	fissure := mdb1.Get("fissure")
	if fissure == nil || fissure.Mdl == nil {
		tst.Errorf("cannot get \"fissure\" material\n")
		return
	}
	chk.Vector(tst, "fissure: aperture", 1e-17, fissure.Mdl.Aperture(3), []float64{0.01, 0.01, 0.01})

	if mdb1.Get("unknown") != nil {
		tst.Errorf("Get must return nil with unknown materials\n")
		return
	}

	// write and read back
	fn := "test_materials.mat"
	io.WriteFileSD("/tmp/porepy/inp", fn, mdb1.String())
	mdb2, err := ReadMat("/tmp/porepy/inp", fn, 2)
	if err != nil {
		tst.Errorf("cannot read %s:\n%v", fn, err)
		return
	}
	io.Pfblue2("\n%v\n", mdb2)
	f2 := mdb2.Get("fissure")
	kten, err = f2.Mdl.Tensor(1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "fissure: kxx", 1e-17, kten.Kxx[0], 100)
	chk.IntAssert(f2.Prms.Find("k").Adj, 1)

	// missing file
	_, err = ReadMat("data", "nonexistent.mat", 2)
	if err == nil {
		tst.Errorf("ReadMat must fail with missing files\n")
		return
	}
	io.Pf("ok: %v\n", err)
}

func Test_build01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build01")

	// 1D line
	gd := GridData{Ndiv: []int{5}, Lengths: []float64{2}}
	bkt, err := gd.Build()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(bkt.Grids), 1)
	chk.IntAssert(bkt.Grids[0].Dim, 1)
	chk.IntAssert(bkt.Grids[0].NumCells(), 5)

	// 3D box
	gd = GridData{Ndiv: []int{2, 2, 2}}
	bkt, err = gd.Build()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(bkt.Grids[0].Dim, 3)
	chk.IntAssert(bkt.Grids[0].NumCells(), 8)

	// unknown type
	gd = GridData{Type: "gmsh", Ndiv: []int{3, 3}}
	_, err = gd.Build()
	if err == nil {
		tst.Errorf("Build must fail with unknown grid types\n")
		return
	}
	io.Pf("ok: %v\n", err)

	// fractures need 2D
	gd = GridData{Ndiv: []int{4}, Fractures: []*FracData{{A: []float64{0}, B: []float64{1}}}}
	_, err = gd.Build()
	if err == nil {
		tst.Errorf("Build must fail with fractures in 1D\n")
		return
	}
	io.Pf("ok: %v\n", err)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim := ReadSim("data/darcy-sq.sim", "", true)
	if sim == nil {
		tst.Errorf("test failed:\n")
		return
	}
	if chk.Verbose {
		sim.GetInfo(os.Stdout)
		io.Pf("\n")
	}

	io.Pfyel("Ndim        = %v\n", sim.Ndim)
	io.Pfcyan("LinSol.Name = %v\n", sim.LinSol.Name)

	chk.IntAssert(sim.Ndim, 2)
	chk.String(tst, sim.Key, "darcy-sq")
	chk.String(tst, sim.LinSol.Name, "umfpack")
	chk.String(tst, sim.Data.Physics, "flow")
	chk.String(tst, sim.Data.Flux, "tpfa")
	chk.IntAssert(len(sim.Bkt.Grids), 1)

	g := sim.Bkt.Grids[0]
	chk.IntAssert(g.NumCells(), 121)
	dat := sim.Pars[g].Get("flow")
	chk.IntAssert(len(dat.BC.DirFaces()), 44)
	chk.Scalar(tst, "kxx", 1e-17, dat.Perm.Kxx[0], 1.0)
	chk.Scalar(tst, "aperture", 1e-17, dat.Aperture[0], 1.0)
	chk.Scalar(tst, "src[60]", 1e-17, dat.Source[60], 1.0)
	sum := 0.0
	for _, q := range dat.Source {
		sum += q
	}
	chk.Scalar(tst, "total injection", 1e-17, sum, 1.0)

	// adjustable parameter of the fissure material
	chk.IntAssert(len(sim.Adjustable), 1)
	chk.Scalar(tst, "adj 1", 1e-17, sim.PrmGetAdj(1), 100)
	sim.PrmAdjust(1, 60)
	chk.Scalar(tst, "adj 1 changed", 1e-17, sim.PrmGetAdj(1), 60)

	// alias changes the key only
	sim2 := ReadSim("data/darcy-sq.sim", "check", false)
	if sim2 == nil {
		tst.Errorf("test failed:\n")
		return
	}
	chk.String(tst, sim2.Key, "darcy-sq-check")
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02")

	sim := ReadSim("data/darcy-frac.sim", "", true)
	if sim == nil {
		tst.Errorf("test failed:\n")
		return
	}
	if chk.Verbose {
		sim.GetInfo(os.Stdout)
		io.Pf("\n")
	}

	chk.IntAssert(sim.Ndim, 2)
	chk.IntAssert(len(sim.Bkt.Grids), 2)
	chk.IntAssert(sim.Bkt.NumCellsTotal(), 110)
	chk.IntAssert(len(sim.Bkt.Ifaces), 1)
	chk.IntAssert(len(sim.Bkt.Ifaces[0].HiFaces), 10)

	gm := sim.Bkt.GridsOfDim(2)[0]
	gl := sim.Bkt.GridsOfDim(1)[0]
	chk.IntAssert(gl.NumCells(), 10)

	datm := sim.Pars[gm].Get("flow")
	chk.Scalar(tst, "matrix kxx", 1e-17, datm.Perm.Kxx[0], 1.0)
	chk.IntAssert(len(datm.BC.DirFaces()), 40)

	datl := sim.Pars[gl].Get("flow")
	chk.Scalar(tst, "fracture kxx", 1e-17, datl.Perm.Kxx[0], 100.0)
	chk.Scalar(tst, "fracture aperture", 1e-17, datl.Aperture[0], 0.01)
	chk.IntAssert(len(datl.BC.DirFaces()), 2)
	ones := make([]float64, gl.NumCells())
	for i := range ones {
		ones[i] = 1
	}
	chk.Vector(tst, "fracture source", 1e-17, datl.Source, ones)
}
