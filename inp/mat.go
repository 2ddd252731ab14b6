// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/akin-aroge/OpenPNM/mdl/conductance"
	"github.com/akin-aroge/OpenPNM/mdl/geometry"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; e.g. "phase", "conductance", "geometry"
	Model string     `json:"model"` // name of model; e.g. "series-resistors", "spheres-cylinders"
	Prms  utl.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Conductance conductance.Model // pointer to actual conductance model
	Geometry    geometry.Model    // pointer to actual geometry model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Phases       map[string]*Material // subset with materials/models: phases
	Conductances map[string]*Material // subset with materials/models: conductances
	Geometries   map[string]*Material // subset with materials/models: geometries
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Phases = make(map[string]*Material)
	mdb.Conductances = make(map[string]*Material)
	mdb.Geometries = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "phase":
			mdb.Phases[m.Name] = m
			continue
		case "conductance":
			mdb.Conductances[m.Name] = m
			continue
		case "geometry":
			mdb.Geometries[m.Name] = m
			continue
		default:
			err = chk.Err("material type %q is incorrect; options are \"phase\", \"conductance\", and \"geometry\"", m.Type)
			return
		}
	}

	// alloc/init: conductances
	for _, m := range mdb.Conductances {
		m.Conductance, err = conductance.New(m.Model)
		if err != nil {
			return
		}
		err = m.Conductance.Init(m.Prms)
		if err != nil {
			return
		}
	}

	// alloc/init: geometries
	for _, m := range mdb.Geometries {
		m.Geometry, err = geometry.New(m.Model)
		if err != nil {
			return
		}
		err = m.Geometry.Init(m.Prms)
		if err != nil {
			return
		}
	}

	// check: phases must carry a valid conductivity
	for _, m := range mdb.Phases {
		_, err = m.Conductivity()
		if err != nil {
			return
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Conductivity returns the bulk conductivity of a phase material (parameter "k")
func (o *Material) Conductivity() (float64, error) {
	for _, p := range o.Prms {
		if strings.ToLower(p.N) == "k" {
			if !(p.V > 0) {
				return 0, chk.Err("phase material %q: conductivity k must be positive; got %g", o.Name, p.V)
			}
			return p.V, nil
		}
	}
	return 0, chk.Err("phase material %q must have parameter \"k\" (conductivity)", o.Name)
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("{name:%q type:%q model:%q nprms:%d}", o.Name, o.Type, o.Model, len(o.Prms))
}
