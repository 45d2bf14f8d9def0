// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/DavideBaroliUniLu/porepy/par"
)

// Aniso implements a homogeneous anisotropic permeability
//
//        | kx   kxy  0  |
//    K = | kxy  ky   0  |
//        | 0    0    kz |
//
type Aniso struct {
	ndim       int
	kx, ky, kz float64
	kxy        float64
	a          float64
}

// add model to factory
func init() {
	allocators["aniso"] = func() Model { return new(Aniso) }
}

// Init initialises this structure
func (o *Aniso) Init(ndim int, prms fun.Prms) (err error) {
	o.ndim = ndim
	p := prms.Find("kx")
	if p == nil {
		return chk.Err("aniso model: parameter 'kx' must be given in database of material parameters")
	}
	o.kx, o.ky, o.kz = p.V, p.V, p.V
	prms.Connect(&o.ky, "ky", "ky aniso model")
	prms.Connect(&o.kz, "kz", "kz aniso model")
	prms.Connect(&o.kxy, "kxy", "kxy aniso model")
	o.a = 1
	prms.Connect(&o.a, "a", "a aniso model")
	if o.a <= 0 {
		return chk.Err("aniso model: aperture a = %g is invalid", o.a)
	}
	if o.kx <= 0 || o.ky <= 0 || o.kz <= 0 {
		return chk.Err("aniso model: diagonal permeabilities must be positive; got kx=%g ky=%g kz=%g", o.kx, o.ky, o.kz)
	}
	if math.Abs(o.kxy) >= math.Sqrt(o.kx*o.ky) {
		return chk.Err("aniso model: kxy = %g makes the tensor indefinite", o.kxy)
	}
	return
}

// Tensor builds cell-wise permeabilities
func (o *Aniso) Tensor(nc int) (*par.SecondOrder, error) {
	return par.NewTensor(o.ndim,
		uniform(nc, o.kx), uniform(nc, o.ky), uniform(nc, o.kz),
		uniform(nc, o.kxy), nil, nil)
}

// Aperture builds cell-wise openings
func (o *Aniso) Aperture(nc int) []float64 {
	return uniform(nc, o.a)
}
