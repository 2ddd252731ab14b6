// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pnm implements the pore-network core: network topology, the named
// property-array container, and the physics model registration/regeneration
// engine. Pores are nodes of the network; throats are edges connecting pairs
// of pores.
package pnm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Network holds the topology of a pore network and its property arrays
type Network struct {

	// input
	Coords [][]float64 // [npores][3] pore centre coordinates
	Conns  [][]int     // [nthroats][2] pore indices of each throat; lower index first

	// labels
	PoreLabels   map[string][]int // named subsets of pores; e.g. "xmin", "surface"
	ThroatLabels map[string][]int // named subsets of throats

	// derived
	Xmin, Xmax float64 // limits of pore coordinates
	Ymin, Ymax float64
	Zmin, Zmax float64

	// property arrays
	*Props
}

// NewNetwork creates a network from raw coordinates and connections.
// Connections are normalised to lower-pore-index-first order.
func NewNetwork(coords [][]float64, conns [][]int) (net *Network, err error) {

	// check input
	npores := len(coords)
	if npores < 1 {
		return nil, chk.Err("network needs at least one pore")
	}
	for i, x := range coords {
		if len(x) != 3 {
			return nil, chk.Err("pore %d: coordinates must have 3 components; got %d", i, len(x))
		}
	}
	for t, c := range conns {
		if len(c) != 2 {
			return nil, chk.Err("throat %d: connection must have 2 pores; got %d", t, len(c))
		}
		if c[0] < 0 || c[0] >= npores || c[1] < 0 || c[1] >= npores {
			return nil, chk.Err("throat %d: connection [%d,%d] is out of range [0,%d)", t, c[0], c[1], npores)
		}
		if c[0] == c[1] {
			return nil, chk.Err("throat %d: connection [%d,%d] is a self-loop", t, c[0], c[1])
		}
		if c[0] > c[1] {
			c[0], c[1] = c[1], c[0]
		}
	}

	// allocate
	net = &Network{
		Coords:       coords,
		Conns:        conns,
		PoreLabels:   make(map[string][]int),
		ThroatLabels: make(map[string][]int),
		Props:        NewProps(npores, len(conns)),
	}

	// limits
	net.Xmin, net.Xmax = coords[0][0], coords[0][0]
	net.Ymin, net.Ymax = coords[0][1], coords[0][1]
	net.Zmin, net.Zmax = coords[0][2], coords[0][2]
	for _, x := range coords {
		net.Xmin, net.Xmax = utl.Min(net.Xmin, x[0]), utl.Max(net.Xmax, x[0])
		net.Ymin, net.Ymax = utl.Min(net.Ymin, x[1]), utl.Max(net.Ymax, x[1])
		net.Zmin, net.Zmax = utl.Min(net.Zmin, x[2]), utl.Max(net.Zmax, x[2])
	}
	return
}

// Npores returns the number of pores
func (o *Network) Npores() int {
	return len(o.Coords)
}

// Nthroats returns the number of throats
func (o *Network) Nthroats() int {
	return len(o.Conns)
}

// Pores returns the pores carrying a label
//  Note: returns nil if the label is absent
func (o *Network) Pores(label string) []int {
	return o.PoreLabels[label]
}

// Throats returns the throats carrying a label
//  Note: returns nil if the label is absent
func (o *Network) Throats(label string) []int {
	return o.ThroatLabels[label]
}

// Ctc returns the centre-to-centre distance between the two pores of a throat
func (o *Network) Ctc(throat int) float64 {
	a, b := o.Coords[o.Conns[throat][0]], o.Coords[o.Conns[throat][1]]
	dx, dy, dz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// String returns a short description of the network
func (o *Network) String() string {
	return io.Sf("network with %d pores and %d throats; lims=[%g,%g]x[%g,%g]x[%g,%g]",
		o.Npores(), o.Nthroats(), o.Xmin, o.Xmax, o.Ymin, o.Ymax, o.Zmin, o.Zmax)
}
