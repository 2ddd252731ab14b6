// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
// and the (.mat) materials database it references
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	Matfile string `json:"matfile" yaml:"matfile"` // materials file path, relative to the sim file
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/openpnm
}

// LatticeData holds data for building the cubic network
type LatticeData struct {
	Shape   []int   `json:"shape" yaml:"shape"`     // number of pores along x, y, z
	Spacing float64 `json:"spacing" yaml:"spacing"` // lattice constant
	Jitter  float64 `json:"jitter" yaml:"jitter"`   // fraction of spacing to perturb interior pores; 0 = regular
	Seed    int     `json:"seed" yaml:"seed"`       // seed for jitter
}

// GeomData holds data for assigning pore/throat sizes and conduit geometry
type GeomData struct {
	Mat     string  `json:"mat" yaml:"mat"`         // name of geometry material (model + prms)
	Dpore   float64 `json:"dpore" yaml:"dpore"`     // uniform pore diameter; 0 means random within [dmin,dmax]
	Dthroat float64 `json:"dthroat" yaml:"dthroat"` // uniform throat diameter
	Dmin    float64 `json:"dmin" yaml:"dmin"`       // smallest random pore diameter
	Dmax    float64 `json:"dmax" yaml:"dmax"`       // largest random pore diameter
	Seed    int     `json:"seed" yaml:"seed"`       // seed for random pore diameters
}

// PhaseData holds one phase occupying the network
type PhaseData struct {
	Name string `json:"name" yaml:"name"` // name of phase; e.g. "electrolyte"
	Mat  string `json:"mat" yaml:"mat"`   // name of phase material
}

// ModelData holds one registered physics computation
type ModelData struct {
	Propname string `json:"propname" yaml:"propname"` // output throat array; e.g. "electrical_conductance"
	Mat      string `json:"mat" yaml:"mat"`           // name of conductance material
	Phase    string `json:"phase" yaml:"phase"`       // name of phase providing the conductivity
}

// Sim holds all simulation data
type Sim struct {

	// input
	Data    Data         `json:"data" yaml:"data"`
	Lattice LatticeData  `json:"lattice" yaml:"lattice"`
	Geom    GeomData     `json:"geometry" yaml:"geometry"`
	Phases  []*PhaseData `json:"phases" yaml:"phases"`
	Models  []*ModelData `json:"models" yaml:"models"`

	// derived
	Dir   string // directory of the sim file
	FnKey string // filename key of the sim file; i.e. without path or extension
	MatDb *MatDb // materials database
}

// ReadSim reads a simulation file (.sim JSON, or .yaml/.yml) and its
// materials database, and validates all cross-references
func ReadSim(dir, fn string, verbose bool) (o *Sim, err error) {

	// read file
	o = new(Sim)
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	if strings.HasSuffix(fn, ".yaml") || strings.HasSuffix(fn, ".yml") {
		err = yaml.Unmarshal(b, o)
	} else {
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, err
	}
	o.Dir = dir
	o.FnKey = io.FnKey(fn)

	// read materials
	if o.Data.Matfile == "" {
		return nil, chk.Err("sim file %q must reference a materials file (data.matfile)", fn)
	}
	o.MatDb, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, err
	}

	// check lattice
	if len(o.Lattice.Shape) != 3 {
		return nil, chk.Err("lattice shape must have 3 components; got %v", o.Lattice.Shape)
	}
	if o.Lattice.Spacing <= 0 {
		return nil, chk.Err("lattice spacing must be positive; got %g", o.Lattice.Spacing)
	}
	if o.Lattice.Jitter > 0 && o.Lattice.Seed <= 0 {
		return nil, chk.Err("lattice jitter needs a positive seed for reproducible runs; got seed=%d", o.Lattice.Seed)
	}

	// check geometry
	if o.Geom.Mat == "" {
		return nil, chk.Err("sim file %q must reference a geometry material (geometry.mat)", fn)
	}
	if _, ok := o.MatDb.Geometries[o.Geom.Mat]; !ok {
		return nil, chk.Err("geometry material %q is not in the materials database", o.Geom.Mat)
	}
	if o.Geom.Dthroat <= 0 {
		return nil, chk.Err("throat diameter must be positive; got %g", o.Geom.Dthroat)
	}
	if o.Geom.Dpore <= 0 {
		if !(o.Geom.Dmin > 0) || o.Geom.Dmax < o.Geom.Dmin {
			return nil, chk.Err("random pore diameters need 0 < dmin <= dmax; got dmin=%g dmax=%g", o.Geom.Dmin, o.Geom.Dmax)
		}
		if o.Geom.Seed <= 0 {
			return nil, chk.Err("random pore diameters need a positive seed for reproducible runs; got seed=%d", o.Geom.Seed)
		}
	}

	// check phases
	if len(o.Phases) < 1 {
		return nil, chk.Err("sim file %q must define at least one phase", fn)
	}
	phases := make(map[string]bool)
	for _, ph := range o.Phases {
		if _, ok := o.MatDb.Phases[ph.Mat]; !ok {
			return nil, chk.Err("phase %q: material %q is not a phase material in the database", ph.Name, ph.Mat)
		}
		if phases[ph.Name] {
			return nil, chk.Err("phase %q is defined twice", ph.Name)
		}
		phases[ph.Name] = true
	}

	// check models
	if len(o.Models) < 1 {
		return nil, chk.Err("sim file %q must define at least one model", fn)
	}
	for _, md := range o.Models {
		if md.Propname == "" {
			return nil, chk.Err("model propname must not be empty")
		}
		if _, ok := o.MatDb.Conductances[md.Mat]; !ok {
			return nil, chk.Err("model %q: material %q is not a conductance material in the database", md.Propname, md.Mat)
		}
		if !phases[md.Phase] {
			return nil, chk.Err("model %q: phase %q is not defined", md.Propname, md.Phase)
		}
	}

	// message
	if verbose {
		io.Pforan("%v\n", o)
	}
	return
}

// String returns a short description of the simulation data
func (o *Sim) String() string {
	return io.Sf("sim %q: lattice %v (spacing %g), %d phase(s), %d model(s)",
		o.Data.Desc, o.Lattice.Shape, o.Lattice.Spacing, len(o.Phases), len(o.Models))
}
