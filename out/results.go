// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// Define defines aliases
//  alias -- an alias to a group of points, an individual point, or to a set of points.
//           Example: "A", "left-column" or "a b c". If the number of points found is different
//           than the number of aliases, a group is created.
//  Note:
//    To use spaces in aliases, prefix the alias with an exclamation mark; e.g "!right column"
func Define(alias string, loc Locator) {

	// check
	if len(alias) < 1 {
		chk.Panic("alias must have at least one character. %q is invalid", alias)
	}

	// locate points
	pts := loc.Locate()
	if len(pts) < 1 {
		chk.Panic("cannot define entities with alias=%q and locator=%v", alias, loc)
	}

	// set results map
	if alias[0] == '!' {
		Results[alias[1:]] = pts
		return
	}
	lbls := strings.Fields(alias)
	if len(lbls) == len(pts) {
		for i, l := range lbls {
			Results[l] = []*Point{pts[i]}
		}
		return
	}
	Results[alias] = pts
}

// LoadResults loads the solution after all points are defined. The solution
// of a previous run is read from Sim.DirOut unless Solve was called first
func LoadResults() {

	// read from file if there is no solution yet
	if !Ell.Solved() {
		err := Ell.ReadSol(Sim.DirOut, Sim.Key, Sim.EncType)
		if err != nil {
			chk.Panic("cannot load results:\n%v", err)
		}
	}
	if Dom.Ny != len(Dom.P) {
		chk.Panic("inconsistency of results detected: saved file and simulation input might be different")
	}

	// for each point
	for _, pts := range Results {
		for _, p := range pts {
			p.Vals["p"] = Dom.P[p.Eq]
		}
	}
}

// GetRes gets results as a space series corresponding to a given alias
// for a single point or a set of points along a line
func GetRes(key, alias string) []float64 {
	if pts, ok := Results[alias]; ok {
		var res []float64
		for _, p := range pts {
			if v, ok := p.Vals[key]; ok {
				res = append(res, v)
			}
		}
		if len(res) == len(pts) {
			return res
		}
	}
	chk.Panic("cannot get %q at %q", key, alias)
	return nil
}

// GetEqs returns the equation numbers corresponding to alias
func GetEqs(alias string) (eqs []int) {
	if pts, ok := Results[alias]; ok {
		for _, p := range pts {
			eqs = append(eqs, p.Eq)
		}
	}
	return
}

// GetCoords returns the coordinates of a single point
func GetCoords(alias string) []float64 {
	if pts, ok := Results[alias]; ok {
		if len(pts) == 1 {
			return pts[0].X
		}
	}
	chk.Panic("cannot get coordinates of point with alias %q (make sure this alias corresponds to a single point)", alias)
	return nil
}

// GetDist returns the distance from a reference point on the given line with selected points
// if they contain a given key
//  key -- use any to get distances of points with any key such as "p"
func GetDist(key, alias string) (dist []float64) {
	any := key == "any"
	if pts, ok := Results[alias]; ok {
		for _, p := range pts {
			for k := range p.Vals {
				if k == key || any {
					dist = append(dist, p.Dist)
					break
				}
			}
		}
		return
	}
	chk.Panic("cannot get distance with key %q and alias %q", key, alias)
	return
}

// GetXYZ returns the x-y-z coordinates of selected points that have a specified key
//  key -- use any to get coordinates of points with any key such as "p"
func GetXYZ(key, alias string) (x, y, z []float64) {
	any := key == "any"
	if pts, ok := Results[alias]; ok {
		for _, p := range pts {
			for k := range p.Vals {
				if k == key || any {
					x = append(x, p.X[0])
					if len(p.X) > 1 {
						y = append(y, p.X[1])
					}
					if len(p.X) == 3 {
						z = append(z, p.X[2])
					}
					break
				}
			}
		}
		return
	}
	chk.Panic("cannot get x-y-z coordinates with key %q and alias %q", key, alias)
	return
}

// Integrate integrates key along direction "x", "y", or "z"
func Integrate(key, alias, along string) float64 {
	y := GetRes(key, alias)
	var x []float64
	switch along {
	case "x":
		x, _, _ = GetXYZ(key, alias)
	case "y":
		_, x, _ = GetXYZ(key, alias)
	case "z":
		_, _, x = GetXYZ(key, alias)
	}
	var err error
	_, x, y, _, err = utl.SortQuadruples(nil, x, y, nil, "x")
	if err != nil {
		chk.Panic("%q: cannot integrate %q along %q:\n%v\n", alias, key, along, err)
	}
	return num.Trapz(x, y)
}
