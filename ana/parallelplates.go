// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/fun"

// ParallelPlates computes the equivalent permeability and transmissivity of an
// open fracture idealised as two smooth parallel plates (cubic law)
type ParallelPlates struct {
	A  float64 // aperture
	Dp float64 // pressure drop along the plates
	L  float64 // length of the plates
}

// Init initialises this structure with given parameters
func (o *ParallelPlates) Init(prms fun.Prms) {

	// default values
	o.A = 1e-3
	o.Dp = 1.0
	o.L = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "dp":
			o.Dp = p.V
		case "L":
			o.L = p.V
		}
	}
}

// Keq returns the equivalent permeability from the cubic law
func (o ParallelPlates) Keq() float64 {
	return o.A * o.A / 12.0
}

// Trans returns the transmissivity of the fracture
func (o ParallelPlates) Trans() float64 {
	return o.Keq() * o.A
}

// MeanVelocity returns the mean velocity along the plates
func (o ParallelPlates) MeanVelocity() float64 {
	return o.Keq() * o.Dp / o.L
}

// Rate returns the volumetric rate per unit width
func (o ParallelPlates) Rate() float64 {
	return o.Trans() * o.Dp / o.L
}
