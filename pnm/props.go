// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"sort"

	"github.com/cpmech/gosl/la"
)

// Props holds the named property arrays of a network. Arrays are fixed-size
// (one value per pore or per throat) and must be registered before they can be
// looked up; a lookup of an unregistered name fails with MissingPropertyError
// instead of silently allocating. Registration returns the backing slice, so
// callers resolve a name once and then index directly.
type Props struct {

	// input
	npores   int // number of pores (fixes length of "pore." arrays)
	nthroats int // number of throats (fixes length of "throat." arrays)

	// derived
	pore   map[string]la.Vector // arrays over pores
	throat map[string]la.Vector // arrays over throats
}

// NewProps allocates an empty container for npores pores and nthroats throats
func NewProps(npores, nthroats int) *Props {
	return &Props{
		npores:   npores,
		nthroats: nthroats,
		pore:     make(map[string]la.Vector),
		throat:   make(map[string]la.Vector),
	}
}

// RegisterPore allocates (or returns the existing) per-pore array with given
// name. New arrays are zero-filled.
func (o *Props) RegisterPore(name string) la.Vector {
	if v, ok := o.pore[name]; ok {
		return v
	}
	v := la.NewVector(o.npores)
	o.pore[name] = v
	return v
}

// RegisterThroat allocates (or returns the existing) per-throat array
func (o *Props) RegisterThroat(name string) la.Vector {
	if v, ok := o.throat[name]; ok {
		return v
	}
	v := la.NewVector(o.nthroats)
	o.throat[name] = v
	return v
}

// Pore returns a registered per-pore array
func (o *Props) Pore(name string) (la.Vector, error) {
	v, ok := o.pore[name]
	if !ok {
		return nil, &MissingPropertyError{Name: "pore." + name}
	}
	return v, nil
}

// Throat returns a registered per-throat array
func (o *Props) Throat(name string) (la.Vector, error) {
	v, ok := o.throat[name]
	if !ok {
		return nil, &MissingPropertyError{Name: "throat." + name}
	}
	return v, nil
}

// SetPore registers a per-pore array and fills it with a constant value
func (o *Props) SetPore(name string, value float64) la.Vector {
	v := o.RegisterPore(name)
	for i := range v {
		v[i] = value
	}
	return v
}

// SetThroat registers a per-throat array and fills it with a constant value
func (o *Props) SetThroat(name string, value float64) la.Vector {
	v := o.RegisterThroat(name)
	for i := range v {
		v[i] = value
	}
	return v
}

// PoreNames returns the names of all registered per-pore arrays, sorted
func (o *Props) PoreNames() (names []string) {
	for name := range o.pore {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// ThroatNames returns the names of all registered per-throat arrays, sorted
func (o *Props) ThroatNames() (names []string) {
	for name := range o.throat {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
