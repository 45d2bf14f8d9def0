// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// ChannelFlow computes pressure (p) and flux (f) of steady flow along a
// thin channel with uniform injection (q) and fixed end pressures. The
// numerical solution uses ξ := {p, f}:
//
//    T    = k・a                    (transmissivity)
//    f    = -T・dp/dx
//    df/dx = q
//    X(x) = x・X    with 0 ≤ X ≤ 1    X is a pseudo variable
//
//            / dp/dX \    / -ξ[1]・Δx/T \
//    dY/dX = |        | = |             |
//            \ df/dX /    \   q・Δx     /
//
//    p(x) = pa + (pb - pa)・x/L + q・x・(L - x)/(2・T)
//    f(x) = T・(pa - pb)/L + q・(x - L/2)
//
type ChannelFlow struct {
	Pa  float64    // pressure at x=0
	Pb  float64    // pressure at x=L
	Q   float64    // injection rate per unit length (positive in)
	K   float64    // channel permeability
	A   float64    // aperture
	L   float64    // channel length
	sol ode.Solver // ODE solver
}

// Init initialises this structure
func (o *ChannelFlow) Init(pa, pb, q, k, a, l float64, withNum bool) {

	// input data
	o.Pa = pa
	o.Pb = pb
	o.Q = q
	o.K = k
	o.A = a
	o.L = l

	// numerical solver with ξ := {p, f}
	if withNum {
		silent := true
		o.sol.Init("Radau5", 2, func(f []float64, dX, X float64, ξ []float64, args ...interface{}) error {
			Δx := args[0].(float64)
			f[0] = -ξ[1] / (o.K * o.A) * Δx // dp/dX
			f[1] = o.Q * Δx                 // df/dX
			return nil
		}, nil, nil, nil, silent)
		o.sol.Distr = false // must be sure to disable this; otherwise it causes problems in parallel runs
	}
}

// Calc computes pressure and flux
func (o ChannelFlow) Calc(x float64) (p, f float64) {
	T := o.K * o.A
	p = o.Pa + (o.Pb-o.Pa)*x/o.L + o.Q*x*(o.L-x)/(2.0*T)
	f = T*(o.Pa-o.Pb)/o.L + o.Q*(x-o.L/2.0)
	return
}

// CalcNum computes pressure and flux using numerical method
func (o ChannelFlow) CalcNum(x float64) (p, f float64) {
	T := o.K * o.A
	ξ := []float64{o.Pa, T*(o.Pa-o.Pb)/o.L - o.Q*o.L/2.0}
	err := o.sol.Solve(ξ, 0, 1, 1, false, x)
	if err != nil {
		chk.Panic("ChannelFlow failed when calculating pressure using ODE solver: %v", err)
	}
	return ξ[0], ξ[1]
}

// Plot plots pressure and flux along the channel
func (o ChannelFlow) Plot(dirout, fnkey string, np int) {

	X := utl.LinSpace(0, o.L, np)
	P := make([]float64, np)
	F := make([]float64, np)
	for i, x := range X {
		P[i], F[i] = o.Calc(x)
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(X, P, &plt.A{C: "k", Ls: "-"})
	plt.Plot([]float64{0, o.L}, []float64{o.Pa, o.Pb}, &plt.A{C: "grey", Ls: "--"})
	plt.Gll("$x$", "$p$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(X, F, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$x$", "$f$", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey)
}
