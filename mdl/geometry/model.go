// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geometry implements models that derive conduit geometry (segment
// lengths and equivalent cross-sectional areas) from pore and throat sizes
package geometry

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model defines conduit geometry models. Conduit returns the segment lengths
// L and equivalent areas A ordered (pore1, throat, pore2), from the two pore
// diameters, the throat diameter, and the centre-to-centre distance.
type Model interface {
	Init(prms utl.Params) error                                   // Init initialises this structure
	GetPrms(example bool) utl.Params                              // gets (an example) of parameters
	Conduit(d1, d2, dt, ctc float64) (L, A [3]float64, err error) // computes the conduit geometry
}

// New geometry model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'geometry' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
