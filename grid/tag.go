// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/io"

// FaceTag is a bitmask classifying grid faces
type FaceTag int

const (
	TagNone           FaceTag = 0 // untagged interior face
	TagBoundary       FaceTag = 1 // face on the boundary of its own grid
	TagDomainBoundary FaceTag = 2 // face on the physical domain boundary
	TagFracture       FaceTag = 4 // face created or duplicated by fracture splitting
	TagTip            FaceTag = 8 // end face of an immersed fracture
)

// Has tells whether all bits of t are set
func (o FaceTag) Has(t FaceTag) bool {
	return o&t == t
}

// Add returns the tag with the bits of t set
func (o FaceTag) Add(t FaceTag) FaceTag {
	return o | t
}

// Del returns the tag with the bits of t cleared
func (o FaceTag) Del(t FaceTag) FaceTag {
	return o &^ t
}

// String returns the names of all set bits
func (o FaceTag) String() string {
	if o == TagNone {
		return "none"
	}
	l := ""
	add := func(name string) {
		if len(l) > 0 {
			l += "|"
		}
		l += name
	}
	if o.Has(TagBoundary) {
		add("boundary")
	}
	if o.Has(TagDomainBoundary) {
		add("domain")
	}
	if o.Has(TagFracture) {
		add("fracture")
	}
	if o.Has(TagTip) {
		add("tip")
	}
	if rest := o &^ (TagBoundary | TagDomainBoundary | TagFracture | TagTip); rest != 0 {
		add(io.Sf("unknown(%d)", int(rest)))
	}
	return l
}
