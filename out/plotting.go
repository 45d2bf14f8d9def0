// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "dist")
	Ylbl  string    // vertical axis label (raw; e.g. "p")
	Args  *plt.A    // plot arguments
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Xrange []float64    // x range
	Yrange []float64    // y range
	Xlbl   string       // x-axis label (formatted; e.g. "$x$")
	Ylbl   string       // y-axis label (formatted; e.g. "$p$")
	Data   []*PltEntity // data and styles to be plotted
}

// Splot activates a new subplot window
func Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures units and scales of axes
func SplotConfig(xunit, yunit string, xscale, yscale float64) {
	if Csplot != nil {
		var xlabel, ylabel string
		if len(Csplot.Data) > 0 {
			xlabel = Csplot.Data[0].Xlbl
			ylabel = Csplot.Data[0].Ylbl
		}
		Csplot.Xlbl = GetTexLabel(xlabel, xunit)
		Csplot.Ylbl = GetTexLabel(ylabel, yunit)
		Csplot.Xscale = xscale
		Csplot.Yscale = yscale
	}
}

// Plot plots data
//  xHandle -- can be a string, e.g. "x" or a slice, e.g. pvals = []float64{0, 1, 2}
//  yHandle -- can be a string, e.g. "p" or a slice, e.g. pvals = []float64{0, 1, 2}
//  alias   -- alias such as "centre"
//  args    -- plot arguments; e.g. &plt.A{C: "b", M: "o"}
func Plot(xHandle, yHandle interface{}, alias string, args *plt.A) {
	var e PltEntity
	e.Alias = alias
	e.Args = args
	e.X, e.Xlbl = get_vals_and_labels(xHandle, yHandle, alias)
	e.Y, e.Ylbl = get_vals_and_labels(yHandle, xHandle, alias)
	if len(e.X) != len(e.Y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d, x=%v, y=%v", len(e.X), len(e.Y), xHandle, yHandle)
	}
	if Csplot == nil {
		Splot(io.Sf("%d", len(Splots)), "")
	}
	Csplot.Data = append(Csplot.Data, &e)
	SplotConfig("", "", 1, 1)
}

// Draw draws or saves the figure with all subplots
//  dirout -- directory to save figure
//  fname  -- file name; e.g. myplot.eps or myplot.png. Use "" to show figure instead
//  nr     -- number of rows. Use -1 to compute best value
//  nc     -- number of columns. Use -1 to compute best value
//  extra  -- is called just after Subplot command and before any plotting
func Draw(dirout, fname string, nr, nc int, extra func(id string)) {
	nplots := len(Splots)
	if nr < 0 || nc < 0 {
		nr, nc = utl.BestSquare(nplots)
	}
	for k := 0; k < nplots; k++ {
		spl := Splots[k]
		plt.Subplot(nr, nc, k+1)
		if extra != nil {
			extra(spl.Id)
		}
		if spl.Title != "" {
			plt.Title(spl.Title, nil)
		}
		for _, d := range spl.Data {
			if d.Args == nil {
				d.Args = &plt.A{}
			}
			if d.Args.L == "" {
				d.Args.L = d.Alias
			}
			x, y := d.X, d.Y
			if math.Abs(spl.Xscale) > 0 {
				x = make([]float64, len(d.X))
				la.VecCopy(x, spl.Xscale, d.X)
			}
			if math.Abs(spl.Yscale) > 0 {
				y = make([]float64, len(d.Y))
				la.VecCopy(y, spl.Yscale, d.Y)
			}
			plt.Plot(x, y, d.Args)
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, nil)
		if len(spl.Xrange) == 2 {
			plt.AxisXrange(spl.Xrange[0], spl.Xrange[1])
		}
		if len(spl.Yrange) == 2 {
			plt.AxisYrange(spl.Yrange[0], spl.Yrange[1])
		}
	}
	if fname != "" {
		plt.Save(dirout, fname)
	} else {
		plt.Show()
	}
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func get_vals_and_labels(handle, otherHandle interface{}, alias string) ([]float64, string) {
	otherKey := "any"
	if key, ok := otherHandle.(string); ok {
		otherKey = key
	}
	switch hnd := handle.(type) {
	case []float64:
		return hnd, io.Sf("%s-type", alias)
	case string:
		switch hnd {
		case "x":
			xcoords, _, _ := GetXYZ(otherKey, alias)
			return xcoords, "x"
		case "y":
			_, ycoords, _ := GetXYZ(otherKey, alias)
			return ycoords, "y"
		case "z":
			_, _, zcoords := GetXYZ(otherKey, alias)
			return zcoords, "z"
		case "dist":
			return GetDist(otherKey, alias), "dist"
		}
		return GetRes(hnd, alias), hnd
	}
	chk.Panic("cannot get values slice with handle = %v", handle)
	return nil, ""
}
