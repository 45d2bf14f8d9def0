// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DavideBaroliUniLu/porepy/fvm"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func GetNamesOffsets(dom *fvm.Domain) (names []string, offsets []int) {
	for _, g := range dom.Grids {
		names = append(names, g.Name)
		offsets = append(offsets, dom.Offset[g])
	}
	return
}
