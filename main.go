// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/akin-aroge/OpenPNM/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nOpenPNM -- Go Pore-Network Modeling\n")
		io.Pf("Copyright 2021 The OpenPNM Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// assemble simulation
	simulation, err := sim.New(fnamepath, verbose)
	if err != nil {
		chk.Panic("assembly failed:\n%v", err)
	}

	// run simulation
	err = simulation.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	if verbose {
		simulation.Summary()
	}
}
