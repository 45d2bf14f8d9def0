// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"encoding/json"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/DavideBaroliUniLu/porepy/inp"
	"github.com/DavideBaroliUniLu/porepy/mdl/flow"
)

type Input struct {
	Dir     string  // directory with the .mat file
	MatFn   string  // materials filename
	MatName string  // material to drive
	Amin    float64 // smallest aperture of the sweep
	Amax    float64 // largest aperture of the sweep
	Na      int     // number of points of the sweep
	FigProp float64 // proportion of figure
	FigWid  float64 // width of figure

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if o.Na < 2 {
		o.Na = 101
	}
	if o.Amin <= 0 {
		o.Amin = 1e-4
	}
	if o.Amax <= o.Amin {
		o.Amax = 1e-1
	}
	if o.FigProp < 0.1 {
		o.FigProp = 1.0
	}
	if o.FigWid < 10 {
		o.FigWid = 400
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable(
		"input filename", "inpfn", o.inpfn,
		"directory with the .mat file", "Dir", o.Dir,
		"materials filename", "MatFn", o.MatFn,
		"material name", "MatName", o.MatName,
		"smallest aperture", "Amin", o.Amin,
		"largest aperture", "Amax", o.Amax,
		"number of points", "Na", o.Na,
		"fig: proportion of figure", "FigProp", o.FigProp,
		"fig: width of figure", "FigWid", o.FigWid,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/matdrv", ".inp", true)

	// read and parse input data
	b, err := io.ReadFile(in.inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", in.inpfn)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// load materials database
	mdb, err := inp.ReadMat(in.Dir, in.MatFn, 2)
	if err != nil {
		io.PfRed("cannot load materials database: %v\n", err)
		return
	}

	// get material data
	mat := mdb.Get(in.MatName)
	if mat == nil {
		io.PfRed("cannot get material\n")
		return
	}
	io.Pf("%v\n", mat)

	// tabulate permeability and opening of one cell
	ten, err := mat.Mdl.Tensor(1)
	if err != nil {
		io.PfRed("cannot build permeability tensor: %v\n", err)
		return
	}
	a := mat.Mdl.Aperture(1)[0]
	io.Pf("\nkxx = %g  kyy = %g  kxy = %g\n", ten.Kxx[0], ten.Kyy[0], ten.Kxy[0])
	io.Pf("a   = %g\n", a)

	// aperture sweep for the cubic law
	cub, ok := mat.Mdl.(*flow.Cubic)
	if !ok {
		io.Pf("\nmodel %q has a fixed permeability; nothing to sweep\n", mat.Model)
		return
	}
	A := utl.LinSpace(in.Amin, in.Amax, in.Na)
	K := make([]float64, in.Na)
	T := make([]float64, in.Na)
	for i, ai := range A {
		K[i] = cub.Kval(ai)
		T[i] = K[i] * ai
	}

	// plot
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(A, K, &plt.A{C: "b", L: "keq"})
	plt.Gll("$a$", "$k_{eq}$", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(A, T, &plt.A{C: "r", L: "trans"})
	plt.Gll("$a$", "$k_{eq}\\,a$", nil)
	plt.Save("/tmp/porepy", "cmd_"+in.MatName)
}
