// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// canonical conduit property names; filled by geometry models and read by
// conduit computations
var (
	ConduitLengthNames = [3]string{"conduit_lengths.pore1", "conduit_lengths.throat", "conduit_lengths.pore2"}
	ConduitAreaNames   = [3]string{"equivalent_area.pore1", "equivalent_area.throat", "equivalent_area.pore2"}
)

// ConduitModel computes the lumped property of one conduit (half-pore, throat,
// half-pore in series) from the two pore-end conductivities and the segment
// lengths and equivalent areas, ordered (pore1, throat, pore2). Calls must be
// pure: implementations are invoked concurrently across throats.
type ConduitModel interface {
	Conduit(k1, k2 float64, L, A [3]float64) (float64, error)
}

// binding is a registered computation with all named inputs resolved to direct
// array references; no string lookup happens during regeneration
type binding struct {
	propname string       // output throat array name
	model    ConduitModel // the computation
	kp       la.Vector    // pore conductivities
	lengths  [3]la.Vector // conduit segment lengths per throat
	areas    [3]la.Vector // conduit segment equivalent areas per throat
	out      la.Vector    // output array
}

// Physics holds the computations registered on a network and re-runs them
// over all throats on demand
type Physics struct {

	// input
	Net *Network // the network holding all property arrays

	// derived
	bindings []*binding // registered computations, in registration order
	nworkers int        // goroutines used by Regenerate
}

// NewPhysics creates a physics engine operating on net
func NewPhysics(net *Network) *Physics {
	return &Physics{Net: net, nworkers: runtime.NumCPU()}
}

// AddModel registers a conduit computation.
//  propname         -- output per-throat array name; e.g. "electrical_conductance"
//  model            -- the conduit computation
//  poreConductivity -- name of the per-pore conductivity array; e.g. "conductivity"
// All input arrays must be registered on the network beforehand; a missing
// name fails here, with MissingPropertyError, not during regeneration.
func (o *Physics) AddModel(propname string, model ConduitModel, poreConductivity string) (err error) {
	if propname == "" {
		return chk.Err("physics: propname must not be empty")
	}
	if model == nil {
		return chk.Err("physics: model must not be nil")
	}
	b := &binding{propname: propname, model: model}
	b.kp, err = o.Net.Pore(poreConductivity)
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		b.lengths[i], err = o.Net.Throat(ConduitLengthNames[i])
		if err != nil {
			return
		}
		b.areas[i], err = o.Net.Throat(ConduitAreaNames[i])
		if err != nil {
			return
		}
	}
	b.out = o.Net.RegisterThroat(propname)
	o.bindings = append(o.bindings, b)
	return
}

// Regenerate re-runs all registered computations over all throats, in
// registration order. Throats are independent, so each computation fans out
// across workers; the first error encountered is returned and the output
// array of the failed computation must be considered stale.
func (o *Physics) Regenerate() (err error) {
	for _, b := range o.bindings {
		err = o.regenerate(b)
		if err != nil {
			return
		}
	}
	return
}

// regenerate runs one computation over all throats
func (o *Physics) regenerate(b *binding) error {
	nthroats := o.Net.Nthroats()
	nw := o.nworkers
	if nw > nthroats {
		nw = nthroats
	}
	if nw < 2 {
		return o.regenerateChunk(b, 0, nthroats)
	}
	errs := make([]error, nw)
	csize := nthroats / nw
	var wg sync.WaitGroup
	wg.Add(nw)
	for iw := 0; iw < nw; iw++ {
		lo, hi := iw*csize, (iw+1)*csize
		if iw == nw-1 {
			hi = nthroats
		}
		go func(iw, lo, hi int) {
			errs[iw] = o.regenerateChunk(b, lo, hi)
			wg.Done()
		}(iw, lo, hi)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// regenerateChunk runs one computation over throats [lo,hi)
func (o *Physics) regenerateChunk(b *binding, lo, hi int) error {
	for t := lo; t < hi; t++ {
		c := o.Net.Conns[t]
		L := [3]float64{b.lengths[0][t], b.lengths[1][t], b.lengths[2][t]}
		A := [3]float64{b.areas[0][t], b.areas[1][t], b.areas[2][t]}
		g, err := b.model.Conduit(b.kp[c[0]], b.kp[c[1]], L, A)
		if err != nil {
			if ige, ok := err.(*InvalidGeometryError); ok && ige.Throat < 0 {
				ige.Throat = t
			}
			return err
		}
		b.out[t] = g
	}
	return nil
}
