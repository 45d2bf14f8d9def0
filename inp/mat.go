// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/DavideBaroliUniLu/porepy/mdl/flow"
)

// Material holds material data
type Material struct {

	// input
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of model; e.g. "iso", "aniso", "cubic"
	Extra string   `json:"extra"` // extra information about this material
	Prms  fun.Prms `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Mdl flow.Model // pointer to actual permeability model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Functions FuncsData `json:"functions"` // all functions
	Materials MatsData  `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file and initialises
// the corresponding permeability models
func ReadMat(dir, fn string, ndim int) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// alloc/init models
	for _, m := range mdb.Materials {
		m.Mdl, err = flow.New(m.Model)
		if err != nil {
			return
		}
		err = m.Mdl.Init(ndim, m.Prms)
		if err != nil {
			err = chk.Err("cannot initialise model of material %q:\n%v", m.Name, err)
			return
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("    {\n      \"name\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n%v\n      ]\n    }", o.Name, o.Model, o.Extra, prmsString("        ", o.Prms))
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v,\n%v\n}", o.Functions, o.Materials)
}
