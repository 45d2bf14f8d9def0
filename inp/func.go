// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotFdata holds information to plot functions
type PlotFdata struct {
	Ti      float64  `json:"ti"`      // initial time
	Tf      float64  `json:"tf"`      // final time
	Np      int      `json:"np"`      // number of points
	Skip    []string `json:"skip"`    // skip functions
	WithTxt bool     `json:"withtxt"` // show text corresponding to initial and final points
}

// FuncData holds function definition
type FuncData struct {
	Name string   `json:"name"` // name of function. ex: zero, inflow, myfunction1, etc.
	Type string   `json:"type"` // type of function. ex: cte, lin, rmp
	Prms fun.Prms `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" correspond to a constant zero function
func (o FuncsData) Get(name string) (fcn fun.Func, err error) {
	if name == "zero" || name == "none" {
		fcn = &fun.Cte{}
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = fun.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// PlotAll plots all functions
func (o FuncsData) PlotAll(pd *PlotFdata, dirout, fnkey string) {
	np := pd.Np
	if np < 2 {
		np = 41
	}
	for _, f := range o {
		if utl.StrIndexSmall(pd.Skip, f.Name) >= 0 {
			continue
		}
		ff, err := o.Get(f.Name)
		if err != nil {
			chk.Panic("%v", err)
		}
		if ff != nil {
			T := utl.LinSpace(pd.Ti, pd.Tf, np)
			Y := make([]float64, np)
			for i, t := range T {
				Y[i] = ff.F(t, nil)
			}
			plt.Reset(false, nil)
			plt.Plot(T, Y, &plt.A{C: "#003fff", Ls: "-", L: f.Name})
			if pd.WithTxt {
				plt.Text(T[0], Y[0], io.Sf("%g", Y[0]), nil)
				plt.Text(T[np-1], Y[np-1], io.Sf("%g", Y[np-1]), nil)
			}
			plt.Gll("$t$", "$f(t)$", nil)
			plt.Save(dirout, io.Sf("functions-%s-%s", fnkey, f.Name))
		}
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// String prints one function
func (o FuncData) String() string {
	return io.Sf("    {\n      \"name\":%q, \"type\":%q, \"prms\" : [\n%v\n      ]\n    }", o.Name, o.Type, prmsString("        ", o.Prms))
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}

// prmsString prints a list of parameters with extra indentation
func prmsString(indent string, prms fun.Prms) string {
	l := ""
	for i, p := range prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%s{\"n\":%q, \"v\":%g", indent, p.N, p.V)
		if p.Adj > 0 {
			l += io.Sf(", \"adj\":%d", p.Adj)
		}
		if p.Dep > 0 {
			l += io.Sf(", \"dep\":%d", p.Dep)
		}
		l += "}"
	}
	return l
}
