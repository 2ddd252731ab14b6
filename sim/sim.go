// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim drives one simulation: it reads the input files, builds the
// network with its geometry and phase properties, registers the physics
// computations, and regenerates them
package sim

import (
	"path/filepath"

	"github.com/akin-aroge/OpenPNM/inp"
	"github.com/akin-aroge/OpenPNM/mdl/geometry"
	"github.com/akin-aroge/OpenPNM/pnm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Simulation holds a fully assembled simulation
type Simulation struct {

	// input
	Inp *inp.Sim // input data

	// derived
	Net  *pnm.Network // the network with all property arrays
	Phys *pnm.Physics // registered computations
}

// New assembles a simulation from a sim file path. All property arrays are
// registered and filled here; computing the registered models is left to Run.
func New(fnamepath string, verbose bool) (o *Simulation, err error) {

	// read input
	dir, fn := filepath.Split(fnamepath)
	if dir == "" {
		dir = "."
	}
	o = new(Simulation)
	o.Inp, err = inp.ReadSim(filepath.Clean(dir), fn, verbose)
	if err != nil {
		return nil, err
	}

	// build network
	lat := o.Inp.Lattice
	o.Net, err = pnm.Cubic(lat.Shape, lat.Spacing, lat.Jitter, lat.Seed)
	if err != nil {
		return nil, err
	}

	// pore and throat sizes
	geo := o.Inp.Geom
	dp := o.Net.RegisterPore("diameter")
	if geo.Dpore > 0 {
		o.Net.SetPore("diameter", geo.Dpore)
	} else {
		err = geometry.RandomDiameters(dp, geo.Dmin, geo.Dmax, geo.Seed)
		if err != nil {
			return nil, err
		}
	}
	dt := o.Net.SetThroat("diameter", geo.Dthroat)

	// conduit geometry
	gmodel := o.Inp.MatDb.Geometries[geo.Mat].Geometry
	var lengths, areas [3]la.Vector
	for i := 0; i < 3; i++ {
		lengths[i] = o.Net.RegisterThroat(pnm.ConduitLengthNames[i])
		areas[i] = o.Net.RegisterThroat(pnm.ConduitAreaNames[i])
	}
	for t := 0; t < o.Net.Nthroats(); t++ {
		c := o.Net.Conns[t]
		L, A, err := gmodel.Conduit(dp[c[0]], dp[c[1]], dt[t], o.Net.Ctc(t))
		if err != nil {
			if ige, ok := err.(*pnm.InvalidGeometryError); ok && ige.Throat < 0 {
				ige.Throat = t
			}
			return nil, err
		}
		for i := 0; i < 3; i++ {
			lengths[i][t] = L[i]
			areas[i][t] = A[i]
		}
	}

	// phase conductivities
	for _, ph := range o.Inp.Phases {
		k, err := o.Inp.MatDb.Phases[ph.Mat].Conductivity()
		if err != nil {
			return nil, err
		}
		o.Net.SetPore(ph.Name+".conductivity", k)
	}

	// register physics models
	o.Phys = pnm.NewPhysics(o.Net)
	for _, md := range o.Inp.Models {
		cmodel := o.Inp.MatDb.Conductances[md.Mat].Conductance
		err = o.Phys.AddModel(md.Propname, cmodel, md.Phase+".conductivity")
		if err != nil {
			return nil, err
		}
	}
	return
}

// Run regenerates all registered computations
func (o *Simulation) Run() error {
	return o.Phys.Regenerate()
}

// ThroatStats returns min, mean, and max of a per-throat array
func (o *Simulation) ThroatStats(name string) (vmin, vmean, vmax float64, err error) {
	v, err := o.Net.Throat(name)
	if err != nil {
		return
	}
	if len(v) == 0 {
		err = chk.Err("throat array %q is empty; the network has no throats", name)
		return
	}
	vmin, vmax = v[0], v[0]
	for _, x := range v {
		if x < vmin {
			vmin = x
		}
		if x > vmax {
			vmax = x
		}
		vmean += x
	}
	vmean /= float64(len(v))
	return
}

// Summary prints min/mean/max of every registered model output
func (o *Simulation) Summary() {
	io.Pf("%v\n", o.Net)
	for _, md := range o.Inp.Models {
		vmin, vmean, vmax, err := o.ThroatStats(md.Propname)
		if err != nil {
			io.PfRed("  throat.%s: %v\n", md.Propname, err)
			continue
		}
		io.Pf("  throat.%-28s min=%13.6e mean=%13.6e max=%13.6e\n", md.Propname, vmin, vmean, vmax)
	}
}
