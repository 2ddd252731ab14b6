// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conductance implements models for the lumped transport conductance
// of conduits (half-pore + throat + half-pore) in pore networks
package conductance

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model defines conduit conductance models
type Model interface {
	Init(prms utl.Params) error                               // Init initialises this structure
	GetPrms(example bool) utl.Params                          // gets (an example) of parameters
	Conduit(k1, k2 float64, L, A [3]float64) (float64, error) // computes the conduit conductance
}

// New conductance model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conductance' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
