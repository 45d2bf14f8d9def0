// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"

	"github.com/DavideBaroliUniLu/porepy/grid"
	"github.com/DavideBaroliUniLu/porepy/par"
)

// Data holds global data for simulations
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/porepy
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"

	// problem definition and options
	Physics string `json:"physics"` // physics key; e.g. "flow"
	Flux    string `json:"flux"`    // flux discretization; "tpfa" or "mpfa"
	ListBcs bool   `json:"listbcs"` // list boundary conditions
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name      string `json:"name"`      // "mumps" or "umfpack"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Timing    bool   `json:"timing"`    // show timing statistics
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// GridData holds grid generation data
type GridData struct {
	Type      string      `json:"type"`      // grid type; "cart" is the only option
	Ndiv      []int       `json:"ndiv"`      // number of cells along each direction
	Lengths   []float64   `json:"lengths"`   // domain lengths; empty means unit cells
	Fractures []*FracData `json:"fractures"` // fractures to be meshed into the grid
}

// FracData holds the endpoints of one straight fracture
type FracData struct {
	A []float64 `json:"a"` // first endpoint
	B []float64 `json:"b"` // second endpoint
}

// Build generates the grids described by this data
func (o *GridData) Build() (bkt *grid.Bucket, err error) {
	switch o.Type {
	case "", "cart":
	default:
		return nil, chk.Err("grid type %q is not available", o.Type)
	}
	if len(o.Ndiv) == 2 {
		var fracs []*grid.Frac
		for _, f := range o.Fractures {
			fracs = append(fracs, &grid.Frac{A: f.A, B: f.B})
		}
		return grid.NewCartBucket(fracs, o.Ndiv, o.Lengths)
	}
	if len(o.Fractures) > 0 {
		return nil, chk.Err("fracture meshing needs a two-dimensional grid; got ndiv=%v", o.Ndiv)
	}
	var g *grid.Grid
	g, err = grid.NewCartGrid(o.Ndiv, o.Lengths)
	if err != nil {
		return
	}
	err = g.ComputeGeometry()
	if err != nil {
		return
	}
	bkt = grid.NewBucket()
	err = bkt.Add(g)
	return
}

// DomData binds one material to all grids of the given dimensions
type DomData struct {
	Dims []int  `json:"dims"` // grid dimensions; empty means all
	Mat  string `json:"mat"`  // material name
}

// BcData holds boundary condition input data
type BcData struct {
	Dims []int  `json:"dims"` // grid dimensions; empty means all
	Set  string `json:"set"`  // face set label; e.g. "xmin", "boundary", "domain"
	Kind string `json:"kind"` // "dir" or "neu"
	Fcn  string `json:"fcn"`  // function of (t,x) evaluated at face centres; "zero" for homogeneous
}

// SrcData holds source term input data. Values are integrated rates per
// cell, positive for injection
type SrcData struct {
	Dims  []int  `json:"dims"`  // grid dimensions; empty means all
	Cells []int  `json:"cells"` // cell ids; empty means all cells
	Fcn   string `json:"fcn"`   // function of (t,x) evaluated at cell centres
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data       `json:"data"`      // stores global simulation data
	Functions FuncsData  `json:"functions"` // stores all boundary condition functions
	PlotF     *PlotFdata `json:"plotf"`     // plot functions
	Grid      GridData   `json:"grid"`      // grid generation data
	Domains   []*DomData `json:"domains"`   // binds materials to grid dimensions
	Bcs       []*BcData  `json:"bcs"`       // boundary conditions
	Sources   []*SrcData `json:"sources"`   // source terms
	LinSol    LinSolData `json:"linsol"`    // linear solver data

	// derived
	DirOut    string                         `json:"-"` // directory to save results
	Key       string                         `json:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType   string                         `json:"-"` // encoder type
	Ndim      int                            `json:"-"` // space dimension
	Bkt       *grid.Bucket                   `json:"-"` // mixed-dimensional grid set
	MatModels *MatDb                         `json:"-"` // materials and models
	Pars      map[*grid.Grid]*par.Parameters `json:"-"` // physical data per grid

	// adjustable parameters
	Adjustable   fun.Prms         // adjustable parameters (not dependent)
	AdjRandom    rnd.Variables    // adjustable parameters that are random variables (not dependent)
	AdjDependent fun.Prms         // adjustable parameters that depend on other adjustable parameters
	adjmap       map[int]*fun.Prm // auxiliary map with adjustable (not dependent)
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.LinSol.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// options
	if o.Data.Physics == "" {
		o.Data.Physics = "flow"
	}
	if o.Data.Flux == "" {
		o.Data.Flux = "tpfa"
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/porepy/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// build grids
	o.Bkt, err = o.Grid.Build()
	if err != nil {
		chk.Panic("ReadSim: cannot build grids:\n%v", err)
	}
	o.Ndim = o.Bkt.Grids[0].Ndim
	o.Bkt.AssignNodeOrdering()

	// read materials database and initialise models
	if o.Data.Matfile != "" {
		o.MatModels, err = ReadMat(dir, o.Data.Matfile, o.Ndim)
		if err != nil {
			chk.Panic("loading materials and initialising models failed:\n%v", err)
		}
	} else {
		o.MatModels = new(MatDb)
	}

	// physical data per grid
	o.Pars = make(map[*grid.Grid]*par.Parameters)
	for _, g := range o.Bkt.Grids {
		o.Pars[g], err = o.buildPars(g)
		if err != nil {
			chk.Panic("ReadSim: cannot set physical data of grid %q:\n%v", g.Name, err)
		}
	}

	// list boundary conditions
	if o.Data.ListBcs {
		for _, g := range o.Bkt.OrderedGrids() {
			dat := o.Pars[g].Get(o.Data.Physics)
			io.Pf("%q: %d Dirichlet faces out of %d\n", g.Name, len(dat.BC.DirFaces()), g.NumFaces())
		}
	}

	// adjustable and random parameters
	o.adjmap = make(map[int]*fun.Prm)
	for _, mat := range o.MatModels.Materials {
		for _, prm := range mat.Prms {
			o.append_adjustable_parameter(prm)
		}
	}
	for _, fcn := range o.Functions {
		for _, prm := range fcn.Prms {
			o.append_adjustable_parameter(prm)
		}
	}
	err = o.AdjRandom.Init()
	if err != nil {
		chk.Panic("cannot initialise random variables:\n%v", err)
	}

	// connect dependent adjustable parameters
	var ok bool
	for _, prm := range o.AdjDependent {
		prm.Other, ok = o.adjmap[prm.Dep]
		if !ok {
			chk.Panic("cannot find dependency dep=%d of adjustable parameter", prm.Dep)
		}
	}
	return &o
}

// buildPars creates the physical data of one grid from the domain, boundary
// condition and source entries matching its dimension. Grids matched by no
// entry keep default data. Later entries take precedence on faces listed
// twice; sources accumulate.
func (o *Simulation) buildPars(g *grid.Grid) (prm *par.Parameters, err error) {
	prm = par.NewParameters(g)
	phys := o.Data.Physics

	// material
	for _, dd := range o.Domains {
		if !dimsMatch(dd.Dims, g.Dim) {
			continue
		}
		mat := o.MatModels.Get(dd.Mat)
		if mat == nil {
			return nil, chk.Err("cannot find material %q in database", dd.Mat)
		}
		var kten *par.SecondOrder
		kten, err = mat.Mdl.Tensor(g.NumCells())
		if err != nil {
			return
		}
		if err = prm.SetTensor(phys, kten); err != nil {
			return
		}
		if err = prm.SetAperture(phys, mat.Mdl.Aperture(g.NumCells())); err != nil {
			return
		}
	}

	// boundary conditions
	var faces []int
	var kinds []string
	var vals []float64
	for _, bc := range o.Bcs {
		if !dimsMatch(bc.Dims, g.Dim) {
			continue
		}
		var set []int
		set, err = g.FaceSet(bc.Set)
		if err != nil {
			return
		}
		var fcn fun.Func
		fcn, err = o.Functions.Get(bc.Fcn)
		if err != nil {
			return
		}
		for _, f := range set {
			faces = append(faces, f)
			kinds = append(kinds, bc.Kind)
			vals = append(vals, fcn.F(0, g.FaceCenters[f]))
		}
	}
	if len(faces) > 0 {
		var bcs *par.BoundaryCondition
		bcs, err = par.NewBoundaryCondition(g, faces, kinds)
		if err != nil {
			return
		}
		if err = bcs.SetVal(faces, vals); err != nil {
			return
		}
		if err = prm.SetBC(phys, bcs); err != nil {
			return
		}
	}

	// sources
	src := make([]float64, g.NumCells())
	withsrc := false
	for _, sd := range o.Sources {
		if !dimsMatch(sd.Dims, g.Dim) {
			continue
		}
		var fcn fun.Func
		fcn, err = o.Functions.Get(sd.Fcn)
		if err != nil {
			return
		}
		cells := sd.Cells
		if len(cells) == 0 {
			cells = utl.IntRange(g.NumCells())
		}
		for _, c := range cells {
			if c < 0 || c >= g.NumCells() {
				return nil, chk.Err("source cell %d is out of range of grid %q", c, g.Name)
			}
			src[c] += fcn.F(0, g.CellCenters[c])
			withsrc = true
		}
	}
	if withsrc {
		if err = prm.SetSource(phys, src); err != nil {
			return
		}
	}
	return
}

// dimsMatch tells if dims is empty or contains d
func dimsMatch(dims []int, d int) bool {
	if len(dims) == 0 {
		return true
	}
	for _, dd := range dims {
		if dd == d {
			return true
		}
	}
	return false
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return
	}
	_, err = w.Write(b)
	return
}

// adjustable parameters ///////////////////////////////////////////////////////////////////////////

// PrmAdjust adjusts parameter (random variable or not)
func (o *Simulation) PrmAdjust(adj int, val float64) {
	if prm, ok := o.adjmap[adj]; ok {
		prm.Set(val)
		return
	}
	chk.Panic("cannot adjust parameter %d", adj)
}

// PrmGetAdj gets adjustable parameter (random variable or not)
func (o *Simulation) PrmGetAdj(adj int) (val float64) {
	if prm, ok := o.adjmap[adj]; ok {
		return prm.V
	}
	chk.Panic("cannot get adjustable parameter %d", adj)
	return
}

// append_adjustable_parameter add prm to lists
func (o *Simulation) append_adjustable_parameter(prm *fun.Prm) {

	// adjustable parameter
	if prm.Adj > 0 {
		o.Adjustable = append(o.Adjustable, prm)
		o.adjmap[prm.Adj] = prm
		if prm.D != "" { // with probability distribution => random variable
			distr := rnd.GetDistribution(prm.D)
			o.AdjRandom = append(o.AdjRandom, &rnd.VarData{
				D: distr, M: prm.V, S: prm.S, Min: prm.Min, Max: prm.Max, Prm: prm,
				Key: io.Sf("adj%d", prm.Adj),
			})
		}
	}

	// adjustable parameter that depend on other adjustable parameters
	if prm.Dep > 0 {
		o.AdjDependent = append(o.AdjDependent, prm)
	}
}
