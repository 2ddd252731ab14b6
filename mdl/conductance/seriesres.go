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

// SeriesResistors implements the series-resistor analogy: each conduit
// segment is a resistor with R = L/(k*A) and the conduit conductance is the
// reciprocal of the summed resistances:
//  g = 1 / ( L1/(k1*A1) + Lt/(kt*At) + L2/(k2*A2) )
// The throat conductivity kt defaults to the harmonic mean of the two
// pore-end conductivities, which collapses to the shared value in the
// symmetric case and keeps g independent of traversal direction.
type SeriesResistors struct {

	// parameters
	kt float64 // fixed throat conductivity; 0 means harmonic mean of the ends
}

// add model to factory
func init() {
	allocators["series-resistors"] = func() Model { return new(SeriesResistors) }
}

// Init initialises model
func (o *SeriesResistors) Init(prms utl.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "kt":
			o.kt = p.V
		default:
			return chk.Err("series-resistors: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.kt < 0 {
		return chk.Err("series-resistors: parameter kt must be non-negative; got %g\n", o.kt)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SeriesResistors) GetPrms(example bool) utl.Params {
	return []*utl.P{
		&utl.P{N: "kt", V: 0},
	}
}

// Conduit computes the conduit conductance. The result is strictly positive
// and finite for valid inputs; any non-positive length, area, or conductivity
// fails with InvalidGeometryError.
func (o SeriesResistors) Conduit(k1, k2 float64, L, A [3]float64) (float64, error) {
	if err := checkConduit(k1, k2, L, A); err != nil {
		return 0, err
	}
	kt := o.kt
	if kt == 0 {
		kt = 2.0 * k1 * k2 / (k1 + k2)
	}
	R := L[0]/(k1*A[0]) + L[1]/(kt*A[1]) + L[2]/(k2*A[2])
	return 1.0 / R, nil
}

// checkConduit verifies the series-resistor preconditions. NaN fails the
// positivity comparisons, so it is rejected like any other invalid value.
func checkConduit(k1, k2 float64, L, A [3]float64) error {
	if !(k1 > 0) {
		return &pnm.InvalidGeometryError{Prop: "conductivity.pore1", Throat: -1, Value: k1}
	}
	if !(k2 > 0) {
		return &pnm.InvalidGeometryError{Prop: "conductivity.pore2", Throat: -1, Value: k2}
	}
	segments := [3]string{"pore1", "throat", "pore2"}
	for i, name := range segments {
		if !(L[i] > 0) {
			return &pnm.InvalidGeometryError{Prop: "length." + name, Throat: -1, Value: L[i]}
		}
		if !(A[i] > 0) {
			return &pnm.InvalidGeometryError{Prop: "area." + name, Throat: -1, Value: A[i]}
		}
	}
	return nil
}
