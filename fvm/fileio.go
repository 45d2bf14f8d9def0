// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveSol saves the solved pressures to a file under dir named after fnkey
func (o *Elliptic) SaveSol(dir, fnkey, enctype string, verbose bool) (err error) {

	// check
	if !o.solved {
		return chk.Err("there is no solution to save")
	}

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode solution
	err = enc.Encode(o.Dom.Ny)
	if err != nil {
		return chk.Err("cannot encode Domain.Ny\n%v", err)
	}
	err = enc.Encode(o.Dom.P)
	if err != nil {
		return chk.Err("cannot encode Domain.P\n%v", err)
	}

	// save file
	fn := out_res_path(dir, fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// ReadSol reads pressures written by SaveSol. The flux stencils are rebuilt
// so that fluxes can be reconstructed from the loaded solution.
func (o *Elliptic) ReadSol(dir, fnkey, enctype string) (err error) {

	// open file
	fn := out_res_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer fil.Close()

	// get decoder
	dec := GetDecoder(fil, enctype)

	// decode solution
	var ny int
	err = dec.Decode(&ny)
	if err != nil {
		return chk.Err("cannot decode Domain.Ny\n%v", err)
	}
	if ny != o.Dom.Ny {
		return chk.Err("inconsistency of results detected: saved file and simulation input might be different")
	}
	err = dec.Decode(&o.Dom.P)
	if err != nil {
		return chk.Err("cannot decode Domain.P\n%v", err)
	}

	// restore stencils
	err = o.Dom.discretize()
	if err != nil {
		return
	}
	o.solved = true
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_res_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_res.%s", fnkey, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer fil.Close()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
