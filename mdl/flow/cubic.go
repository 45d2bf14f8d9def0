// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/DavideBaroliUniLu/porepy/par"
)

// Cubic implements the parallel-plate (cubic law) permeability of an open
// fracture with aperture a
//
//    k = kmul a² / 12
//
type Cubic struct {
	ndim int
	a    float64
	kmul float64
}

// add model to factory
func init() {
	allocators["cubic"] = func() Model { return new(Cubic) }
}

// Init initialises this structure
func (o *Cubic) Init(ndim int, prms fun.Prms) (err error) {
	o.ndim = ndim
	o.kmul = 1
	if prms.Find("a") == nil {
		return chk.Err("cubic model: parameter 'a' must be given in database of material parameters")
	}
	prms.Connect(&o.a, "a", "a cubic model")
	prms.Connect(&o.kmul, "kmul", "kmul cubic model")
	if o.a <= 0 {
		return chk.Err("cubic model: aperture a = %g is invalid", o.a)
	}
	if o.kmul <= 0 {
		return chk.Err("cubic model: kmul = %g is invalid", o.kmul)
	}
	return
}

// Kval computes k(a)
func (o *Cubic) Kval(a float64) float64 {
	return o.kmul * a * a / 12.0
}

// DkDa computes dk/da
func (o *Cubic) DkDa(a float64) float64 {
	return o.kmul * a / 6.0
}

// Tensor builds cell-wise permeabilities
func (o *Cubic) Tensor(nc int) (*par.SecondOrder, error) {
	return par.NewIsoTensor(o.ndim, uniform(nc, o.Kval(o.a)))
}

// Aperture builds cell-wise openings
func (o *Cubic) Aperture(nc int) []float64 {
	return uniform(nc, o.a)
}
