// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import (
	"github.com/cpmech/gosl/chk"
)

// SecondOrder holds one symmetric second order permeability tensor per cell
//
//        | Kxx  Kxy  Kxz |
//    K = | Kxy  Kyy  Kyz |
//        | Kxz  Kyz  Kzz |
//
type SecondOrder struct {
	Ndim          int // space dimension of the tensors
	Kxx, Kyy, Kzz []float64
	Kxy, Kxz, Kyz []float64
}

// NewIsoTensor creates cell-wise isotropic tensors; kxx holds one value per
// cell and fills the whole diagonal
func NewIsoTensor(ndim int, kxx []float64) (o *SecondOrder, err error) {
	return NewTensor(ndim, kxx, nil, nil, nil, nil, nil)
}

// NewTensor creates cell-wise tensors from components. kxx is mandatory;
// nil diagonal components default to kxx and nil off-diagonal components
// default to zero. Components beyond ndim are ignored.
func NewTensor(ndim int, kxx, kyy, kzz, kxy, kxz, kyz []float64) (o *SecondOrder, err error) {
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("ndim must be 1, 2 or 3; got %d", ndim)
	}
	nc := len(kxx)
	if nc < 1 {
		return nil, chk.Err("kxx must have at least one cell value")
	}
	for c, v := range kxx {
		if v <= 0 {
			return nil, chk.Err("kxx[%d]=%g is not positive", c, v)
		}
	}
	o = &SecondOrder{Ndim: ndim, Kxx: kxx}
	fill := func(dst *[]float64, src []float64, def []float64, label string) error {
		if src == nil {
			*dst = append([]float64{}, def...)
			return nil
		}
		if len(src) != nc {
			return chk.Err("%s must have %d cell values; got %d", label, nc, len(src))
		}
		*dst = src
		return nil
	}
	zeros := make([]float64, nc)
	if err = fill(&o.Kyy, kyy, kxx, "kyy"); err != nil {
		return nil, err
	}
	if err = fill(&o.Kzz, kzz, kxx, "kzz"); err != nil {
		return nil, err
	}
	if err = fill(&o.Kxy, kxy, zeros, "kxy"); err != nil {
		return nil, err
	}
	if err = fill(&o.Kxz, kxz, zeros, "kxz"); err != nil {
		return nil, err
	}
	if err = fill(&o.Kyz, kyz, zeros, "kyz"); err != nil {
		return nil, err
	}
	return
}

// NumCells returns the number of cells covered by this set of tensors
func (o *SecondOrder) NumCells() int { return len(o.Kxx) }

// Mat returns the tensor of cell c as an ndim by ndim matrix
func (o *SecondOrder) Mat(c int) (K [][]float64) {
	full := [][]float64{
		{o.Kxx[c], o.Kxy[c], o.Kxz[c]},
		{o.Kxy[c], o.Kyy[c], o.Kyz[c]},
		{o.Kxz[c], o.Kyz[c], o.Kzz[c]},
	}
	K = make([][]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		K[i] = full[i][:o.Ndim]
	}
	return
}

// Dot computes the bilinear form u・K・v with the tensor of cell c.
// Vectors may be longer than Ndim; extra components are ignored.
func (o *SecondOrder) Dot(c int, u, v []float64) (res float64) {
	K := o.Mat(c)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			res += u[i] * K[i][j] * v[j]
		}
	}
	return
}

// Scaled returns a copy with the tensor of each cell multiplied by the
// corresponding factor
func (o *SecondOrder) Scaled(factors []float64) (res *SecondOrder, err error) {
	nc := o.NumCells()
	if len(factors) != nc {
		return nil, chk.Err("need %d factors; got %d", nc, len(factors))
	}
	mul := func(vals []float64) []float64 {
		out := make([]float64, nc)
		for c := range vals {
			out[c] = vals[c] * factors[c]
		}
		return out
	}
	return &SecondOrder{
		Ndim: o.Ndim,
		Kxx:  mul(o.Kxx), Kyy: mul(o.Kyy), Kzz: mul(o.Kzz),
		Kxy: mul(o.Kxy), Kxz: mul(o.Kxz), Kyz: mul(o.Kyz),
	}, nil
}
