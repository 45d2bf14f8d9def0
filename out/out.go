// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output handling for analyses and plotting
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/utl"

	"github.com/DavideBaroliUniLu/porepy/fvm"
	"github.com/DavideBaroliUniLu/porepy/grid"
	"github.com/DavideBaroliUniLu/porepy/inp"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y-z coordinates
	Ndiv = 20   // bins n-division
)

// ResultsMap maps aliases to points
type ResultsMap map[string]Points

// Global variables
var (

	// data set by Start
	Sim      *inp.Simulation // simulation input data
	Ell      *fvm.Elliptic   // pressure equation solver
	Dom      *fvm.Domain     // [from Ell] dof layout and linear system
	EqGrid   []*grid.Grid    // [ny] grid of each equation
	EqCell   []int           // [ny] cell of each equation
	CellBins gm.Bins         // bins for cell centres
	CcMin    []float64       // [ndim] {x,y,z}_min among all cell centres
	CcMax    []float64       // [ndim] {x,y,z}_max among all cell centres

	// defined entities and results loaded by LoadResults
	Results ResultsMap // maps aliases to points

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Start starts handling of results given a simulation input file
func Start(simfnpath string, alias string, erasePrev bool) {

	// input data and solver
	Sim = inp.ReadSim(simfnpath, alias, erasePrev)
	var err error
	Ell, err = fvm.NewElliptic(Sim.Bkt, Sim.Pars)
	if err != nil {
		chk.Panic("cannot allocate pressure solver:\n%v", err)
	}
	Dom = Ell.Dom
	err = Ell.SetFlux(Sim.Data.Flux)
	if err != nil {
		chk.Panic("cannot set flux discretization:\n%v", err)
	}
	Dom.Physics = Sim.Data.Physics
	Dom.SetSolver(Sim.LinSol.Name)
	Dom.SolSymm = Sim.LinSol.Symmetric
	Dom.SolVerb = Sim.LinSol.Verbose
	Dom.SolTiming = Sim.LinSol.Timing

	// clear previous data
	Results = make(map[string]Points)
	Splots = make([]*SplotDat, 0)
	Csplot = nil

	// equation maps
	EqGrid = make([]*grid.Grid, Dom.Ny)
	EqCell = make([]int, Dom.Ny)
	for _, g := range Dom.Grids {
		off := Dom.Offset[g]
		for c := 0; c < g.NumCells(); c++ {
			EqGrid[off+c] = g
			EqCell[off+c] = c
		}
	}

	// limits among all cell centres
	ndim := Sim.Ndim
	CcMin = make([]float64, ndim)
	CcMax = make([]float64, ndim)
	first := true
	for _, g := range Dom.Grids {
		for _, x := range g.CellCenters {
			if first {
				for j := 0; j < ndim; j++ {
					CcMin[j], CcMax[j] = x[j], x[j]
				}
				first = false
				continue
			}
			for j := 0; j < ndim; j++ {
				CcMin[j] = utl.Min(CcMin[j], x[j])
				CcMax[j] = utl.Max(CcMax[j], x[j])
			}
		}
	}

	// bins. 1D points are padded to 2D before any search
	δ := TolC * 2
	xi := []float64{CcMin[0] - δ, -δ}
	xf := []float64{CcMax[0] + δ, +δ}
	if ndim > 1 {
		xi[1] = CcMin[1] - δ
		xf[1] = CcMax[1] + δ
	}
	if ndim == 3 {
		xi = append(xi, CcMin[2]-δ)
		xf = append(xf, CcMax[2]+δ)
	}
	err = CellBins.Init(xi, xf, Ndiv)
	if err != nil {
		chk.Panic("cannot initialise bins for cell centres: %v", err)
	}
	for eq := 0; eq < Dom.Ny; eq++ {
		err = CellBins.Append(binpoint(EqGrid[eq].CellCenters[EqCell[eq]]), eq)
		if err != nil {
			chk.Panic("cannot append to bins of cell centres: %v", err)
		}
	}
}

// Solve runs the pressure solver and saves the solution under Sim.DirOut
func Solve(verbose bool) {
	Ell.ShowMsg = verbose
	err := Ell.Solve()
	if err != nil {
		chk.Panic("solve failed:\n%v", err)
	}
	err = Ell.SaveSol(Sim.DirOut, Sim.Key, Sim.EncType, verbose)
	if err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}
}

// End frees the linear solver memory
func End() {
	if Ell != nil {
		Ell.Free()
	}
}

// binpoint pads 1D coordinates so that they fit the bins
func binpoint(x []float64) []float64 {
	if len(x) == 1 {
		return []float64{x[0], 0}
	}
	return x
}
