// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read JSON sim file")

	sim, err := ReadSim("data", "elec.sim", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", sim)

	chk.String(tst, sim.FnKey, "elec")
	chk.Ints(tst, "shape", sim.Lattice.Shape, []int{4, 4, 4})
	chk.Float64(tst, "spacing", 1e-17, sim.Lattice.Spacing, 1.0)
	chk.Float64(tst, "dpore", 1e-17, sim.Geom.Dpore, 0.5)
	chk.Float64(tst, "dthroat", 1e-17, sim.Geom.Dthroat, 0.25)
	chk.IntAssert(len(sim.Phases), 1)
	chk.IntAssert(len(sim.Models), 1)
	chk.String(tst, sim.Models[0].Propname, "electrical_conductance")

	// materials are allocated and initialised at read time
	mat := sim.MatDb.Conductances["sercond"]
	if mat == nil || mat.Conductance == nil {
		tst.Errorf("conductance material was not allocated\n")
		return
	}
	geo := sim.MatDb.Geometries["geo1"]
	if geo == nil || geo.Geometry == nil {
		tst.Errorf("geometry material was not allocated\n")
		return
	}
	k, err := sim.MatDb.Phases["electrolyte"].Conductivity()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "k", 1e-17, k, 1.0)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. YAML sim file loads to the same data")

	a, err := ReadSim("data", "elec.sim", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	b, err := ReadSim("data", "elec.yaml", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	chk.String(tst, b.Data.Desc, a.Data.Desc)
	chk.String(tst, b.Data.Matfile, a.Data.Matfile)
	chk.Ints(tst, "shape", b.Lattice.Shape, a.Lattice.Shape)
	chk.Float64(tst, "spacing", 1e-17, b.Lattice.Spacing, a.Lattice.Spacing)
	chk.Float64(tst, "dpore", 1e-17, b.Geom.Dpore, a.Geom.Dpore)
	chk.Float64(tst, "dthroat", 1e-17, b.Geom.Dthroat, a.Geom.Dthroat)
	chk.IntAssert(len(b.Phases), len(a.Phases))
	chk.String(tst, b.Phases[0].Name, a.Phases[0].Name)
	chk.IntAssert(len(b.Models), len(a.Models))
	chk.String(tst, b.Models[0].Propname, a.Models[0].Propname)
	chk.String(tst, b.Models[0].Mat, a.Models[0].Mat)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. bad references are rejected at read time")

	if _, err := ReadSim("data", "nosuchfile.sim", false); err == nil {
		tst.Errorf("missing sim file must fail\n")
	}
	if _, err := ReadSim("data", "badtype.sim", false); err == nil {
		tst.Errorf("bad material type must fail\n")
	}
	if _, err := ReadSim("data", "badmodel.sim", false); err == nil {
		tst.Errorf("unknown conductance model must fail\n")
	}
	if _, err := ReadSim("data", "badref.sim", false); err == nil {
		tst.Errorf("dangling material reference must fail\n")
	}
	if _, err := ReadSim("data", "badseed.sim", false); err == nil {
		tst.Errorf("jitter without a seed must fail\n")
	}
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ReadMat("data", "elec.mat")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(mdb.Materials), 3)
	chk.IntAssert(len(mdb.Phases), 1)
	chk.IntAssert(len(mdb.Conductances), 1)
	chk.IntAssert(len(mdb.Geometries), 1)

	m := mdb.Get("sercond")
	if m == nil {
		tst.Errorf("Get must find material \"sercond\"\n")
		return
	}
	chk.String(tst, m.Type, "conductance")
	if mdb.Get("nosuchmat") != nil {
		tst.Errorf("Get must return nil for unknown materials\n")
	}

	if _, err := ReadMat("data", "nosuchfile.mat"); err == nil {
		tst.Errorf("missing mat file must fail\n")
	}
}
