// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/DavideBaroliUniLu/porepy/fv/mpfa"
	"github.com/DavideBaroliUniLu/porepy/fv/tpfa"
)

// enforce loading of all flux discretizations
func init() {
	_ = tpfa.Tpfa{}
	_ = mpfa.Mpfa{}
}
