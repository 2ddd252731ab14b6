// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conductance

import (
	"strings"

	"github.com/akin-aroge/OpenPNM/pnm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Bulk implements the classic throat-only conductance g = kt*At/Lt, ignoring
// the pore-end corrections. It overestimates the series-resistors value and
// is kept for comparison with older network models.
type Bulk struct {

	// parameters
	kt float64 // fixed throat conductivity; 0 means harmonic mean of the ends
}

// add model to factory
func init() {
	allocators["bulk"] = func() Model { return new(Bulk) }
}

// Init initialises model
func (o *Bulk) Init(prms utl.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "kt":
			o.kt = p.V
		default:
			return chk.Err("bulk: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.kt < 0 {
		return chk.Err("bulk: parameter kt must be non-negative; got %g\n", o.kt)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Bulk) GetPrms(example bool) utl.Params {
	return []*utl.P{
		&utl.P{N: "kt", V: 0},
	}
}

// Conduit computes the throat-only conductance
func (o Bulk) Conduit(k1, k2 float64, L, A [3]float64) (float64, error) {
	if !(k1 > 0) {
		return 0, &pnm.InvalidGeometryError{Prop: "conductivity.pore1", Throat: -1, Value: k1}
	}
	if !(k2 > 0) {
		return 0, &pnm.InvalidGeometryError{Prop: "conductivity.pore2", Throat: -1, Value: k2}
	}
	if !(L[1] > 0) {
		return 0, &pnm.InvalidGeometryError{Prop: "length.throat", Throat: -1, Value: L[1]}
	}
	if !(A[1] > 0) {
		return 0, &pnm.InvalidGeometryError{Prop: "area.throat", Throat: -1, Value: A[1]}
	}
	kt := o.kt
	if kt == 0 {
		kt = 2.0 * k1 * k2 / (k1 + k2)
	}
	return kt * A[1] / L[1], nil
}
