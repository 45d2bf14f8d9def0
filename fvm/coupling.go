// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/DavideBaroliUniLu/porepy/fv"
)

// couple adds two-point exchange terms between each lower-dimensional cell
// and the higher-dimensional cells behind its split faces. The hi side
// contributes its half-transmissibility toward the face; the lo side lies
// at half an aperture behind the face, across the lo normal permeability.
// Split faces carry zero-flux conditions in the per-grid stencils, so the
// exchange terms below are the only flow through them.
func (o *Domain) couple() (err error) {
	D := o.Bkt.MaxDim()
	for _, ifc := range o.Bkt.Ifaces {
		gh, gl := ifc.Hi, ifc.Lo
		offH, offL := o.Offset[gh], o.Offset[gl]
		datH := o.effdat[gh]
		datL := o.Pars[gl].Get(o.Physics)
		for j, pair := range ifc.HiFaces {
			for _, f := range pair {
				if f < 0 {
					continue
				}

				// hi cell behind this side of the split face
				c := gh.FaceCells[f][0]
				if c < 0 {
					c = gh.FaceCells[f][1]
				} else if gh.FaceCells[f][1] >= 0 {
					return chk.Err("interface face %d of grid %q is not a boundary face", f, gh.Name)
				}
				if c < 0 {
					return chk.Err("interface face %d of grid %q has no cells", f, gh.Name)
				}

				// hi side half-transmissibility
				th, e := fv.HalfTrans(gh, datH.Perm, c, f)
				if e != nil {
					return chk.Err("coupling between %q and %q failed:\n%v", gh.Name, gl.Name, e)
				}

				// lo side: intrinsic normal permeability over half an aperture,
				// through the cross-section the hi grid exposes at this face
				n := gh.FaceNormals[f]
				klo := datL.Perm.Dot(j, n, n)
				sec := gh.FaceAreas[f] * math.Pow(datH.Aperture[c], float64(D-gh.Dim))
				tl := sec * klo * 2.0 / datL.Aperture[j]

				T := 0.0
				if den := th + tl; math.Abs(den) > 1e-30 {
					T = th * tl / den
				}
				rowH, rowL := offH+c, offL+j
				o.Kb.Put(rowH, rowH, T)
				o.Kb.Put(rowH, rowL, -T)
				o.Kb.Put(rowL, rowH, -T)
				o.Kb.Put(rowL, rowL, T)
			}
		}
	}
	return
}
