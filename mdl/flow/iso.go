// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/DavideBaroliUniLu/porepy/par"
)

// Iso implements a homogeneous isotropic permeability
//
//    K = k I
//
type Iso struct {
	ndim int
	k    float64
	a    float64
}

// add model to factory
func init() {
	allocators["iso"] = func() Model { return new(Iso) }
}

// Init initialises this structure
func (o *Iso) Init(ndim int, prms fun.Prms) (err error) {
	o.ndim = ndim
	if prms.Find("k") == nil {
		return chk.Err("iso model: parameter 'k' must be given in database of material parameters")
	}
	prms.Connect(&o.k, "k", "k iso model")
	o.a = 1
	prms.Connect(&o.a, "a", "a iso model")
	if o.k <= 0 {
		return chk.Err("iso model: k = %g is invalid", o.k)
	}
	if o.a <= 0 {
		return chk.Err("iso model: aperture a = %g is invalid", o.a)
	}
	return
}

// Tensor builds cell-wise permeabilities
func (o *Iso) Tensor(nc int) (*par.SecondOrder, error) {
	return par.NewIsoTensor(o.ndim, uniform(nc, o.k))
}

// Aperture builds cell-wise openings
func (o *Iso) Aperture(nc int) []float64 {
	return uniform(nc, o.a)
}
