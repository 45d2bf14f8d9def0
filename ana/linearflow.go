// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/la"
)

// LinearFlow computes the exact solution of steady Darcy flow under a
// uniform pressure gradient and no sources:
//
//    p(x) = p0 + G・(x - X0)
//    v    = -K・G          (Darcy velocity; constant)
//
type LinearFlow struct {

	// input
	P0 float64     // pressure at the reference point
	X0 []float64   // reference point
	G  []float64   // pressure gradient
	K  [][]float64 // permeability tensor

	// derived
	v []float64 // Darcy velocity
}

// Init initialises this structure. K may be nil for unit isotropic
// permeability
func (o *LinearFlow) Init(p0 float64, x0, g []float64, K [][]float64) {

	// input data
	o.P0 = p0
	o.X0 = x0
	o.G = g
	o.K = K

	// default permeability
	ndim := len(g)
	if o.K == nil {
		o.K = la.MatAlloc(ndim, ndim)
		for i := 0; i < ndim; i++ {
			o.K[i][i] = 1.0
		}
	}

	// velocity
	o.v = make([]float64, ndim)
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			o.v[i] -= o.K[i][j] * o.G[j]
		}
	}
}

// Pressure computes the exact pressure at x
func (o LinearFlow) Pressure(x []float64) (p float64) {
	p = o.P0
	for i := 0; i < len(o.G); i++ {
		p += o.G[i] * (x[i] - o.X0[i])
	}
	return
}

// Velocity returns the constant Darcy velocity
func (o LinearFlow) Velocity() []float64 {
	return o.v
}

// FaceFlux computes the volumetric flux through a face with unit normal n
// and area A
func (o LinearFlow) FaceFlux(n []float64, A float64) (res float64) {
	for i := 0; i < len(n) && i < len(o.v); i++ {
		res += o.v[i] * n[i]
	}
	return res * A
}
