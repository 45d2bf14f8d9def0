// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Styles
type Styles []plt.A

func GetDefaultStyles(pts Points) Styles {
	sty := make([]plt.A, len(pts))
	for i, q := range pts {
		sty[i].L = io.Sf("x=%v", q.X)
	}
	return sty
}

func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "time":
		l += "t"
	case "dist":
		l += "d"
	case "p":
		l += "p"
	case "k":
		l += "\\kappa"
	case "a":
		l += "a"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
