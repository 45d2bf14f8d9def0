// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements permeability models for pressure equations
package flow

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/DavideBaroliUniLu/porepy/par"
)

// Model defines permeability models
type Model interface {
	Init(ndim int, prms fun.Prms) error      // Init initialises this structure
	Tensor(nc int) (*par.SecondOrder, error) // Tensor builds cell-wise permeabilities
	Aperture(nc int) []float64               // Aperture builds cell-wise openings
}

// New flow model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'flow' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// uniform builds a slice with nc copies of v
func uniform(nc int, v float64) (res []float64) {
	res = make([]float64, nc)
	for i := range res {
		res[i] = v
	}
	return
}
