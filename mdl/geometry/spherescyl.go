// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"
	"strings"

	"github.com/akin-aroge/OpenPNM/pnm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// SpheresCylinders models pores as spheres and throats as cylinders. The
// pore-half segments run from the pore centre to the sphere boundary, the
// throat segment covers the remainder of the centre-to-centre distance:
//  L1 = d1/2,  L2 = d2/2,  Lt = ctc - L1 - L2
// Equivalent areas are the circle areas of the respective diameters. The pore
// spheres must not overlap the throat away: Lt has to come out positive,
// otherwise the conduit is rejected.
type SpheresCylinders struct {

	// parameters
	afac float64 // multiplier on the pore equivalent areas
}

// add model to factory
func init() {
	allocators["spheres-cylinders"] = func() Model { return new(SpheresCylinders) }
}

// Init initialises model
func (o *SpheresCylinders) Init(prms utl.Params) (err error) {
	o.afac = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "afac":
			o.afac = p.V
		default:
			return chk.Err("spheres-cylinders: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.afac <= 0 {
		return chk.Err("spheres-cylinders: parameter afac must be positive; got %g\n", o.afac)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SpheresCylinders) GetPrms(example bool) utl.Params {
	return []*utl.P{
		&utl.P{N: "afac", V: 1.0},
	}
}

// Conduit computes the conduit geometry
func (o SpheresCylinders) Conduit(d1, d2, dt, ctc float64) (L, A [3]float64, err error) {
	if !(d1 > 0) {
		return L, A, &pnm.InvalidGeometryError{Prop: "diameter.pore1", Throat: -1, Value: d1}
	}
	if !(d2 > 0) {
		return L, A, &pnm.InvalidGeometryError{Prop: "diameter.pore2", Throat: -1, Value: d2}
	}
	if !(dt > 0) {
		return L, A, &pnm.InvalidGeometryError{Prop: "diameter.throat", Throat: -1, Value: dt}
	}
	L[0] = d1 / 2.0
	L[2] = d2 / 2.0
	L[1] = ctc - L[0] - L[2]
	if !(L[1] > 0) {
		return L, A, &pnm.InvalidGeometryError{Prop: "length.throat", Throat: -1, Value: L[1]}
	}
	A[0] = o.afac * math.Pi * d1 * d1 / 4.0
	A[1] = math.Pi * dt * dt / 4.0
	A[2] = o.afac * math.Pi * d2 * d2 / 4.0
	return
}
