// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conductance

import (
	"errors"
	"math"
	"testing"

	"github.com/akin-aroge/OpenPNM/pnm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_ser01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ser01. worked check: resistors (1,3,1) give g = 0.2")

	mdl, err := New("series-resistors")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	L := [3]float64{0.2, 0.6, 0.2}
	A := [3]float64{0.2, 0.2, 0.2}
	g, err := mdl.Conduit(1.0, 1.0, L, A)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("g = %v\n", g)
	chk.Float64(tst, "g", 1e-15, g, 0.2)

	// unknown names are rejected
	if _, err := New("parallel-plates"); err == nil {
		tst.Errorf("unknown model name must fail\n")
	}
	if err := mdl.Init([]*utl.P{{N: "wrong", V: 1}}); err == nil {
		tst.Errorf("unknown parameter name must fail\n")
	}
}

func Test_ser02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ser02. symmetry and scaling laws")

	var mdl SeriesResistors
	if err := mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	k1, k2 := 1.5, 0.75
	L := [3]float64{0.3, 0.8, 0.1}
	A := [3]float64{0.4, 0.05, 0.2}
	g, err := mdl.Conduit(k1, k2, L, A)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !(g > 0) || math.IsInf(g, 0) {
		tst.Errorf("conductance must be positive and finite; got %v\n", g)
		return
	}

	// swapping the pore ends (conductivities, lengths, areas) changes nothing
	Lsw := [3]float64{L[2], L[1], L[0]}
	Asw := [3]float64{A[2], A[1], A[0]}
	gsw, err := mdl.Conduit(k2, k1, Lsw, Asw)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "g swapped", 1e-15, gsw, g)

	// areas x s => g x s; lengths x s => g / s
	s := 3.0
	gsa, err := mdl.Conduit(k1, k2, L, [3]float64{s * A[0], s * A[1], s * A[2]})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "g scaled areas", 1e-14, gsa, s*g)
	gsl, err := mdl.Conduit(k1, k2, [3]float64{s * L[0], s * L[1], s * L[2]}, A)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "g scaled lengths", 1e-14, gsl, g/s)
}

func Test_ser03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ser03. vanishing throat length limit")

	var mdl SeriesResistors
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	k := 2.0
	A := [3]float64{0.2, 0.1, 0.3}
	L1, L2 := 0.25, 0.4
	bound := 1.0 / (L1/(k*A[0]) + L2/(k*A[2])) // series value of the two pore halves alone

	// g is strictly below the bound for any positive throat length and
	// approaches it as the throat vanishes
	prev := 0.0
	for _, lt := range []float64{1e-1, 1e-3, 1e-6, 1e-9, 1e-12} {
		g, err := mdl.Conduit(k, k, [3]float64{L1, lt, L2}, A)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if !(g < bound) {
			tst.Errorf("g=%v must stay below the two-segment bound %v (lt=%v)\n", g, bound, lt)
			return
		}
		if !(g > prev) {
			tst.Errorf("g must increase as the throat shrinks\n")
			return
		}
		prev = g
	}
	chk.Float64(tst, "limit", 1e-9, prev, bound)
}

func Test_ser04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ser04. invalid geometry is rejected, not coerced")

	var mdl SeriesResistors
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	good := [3]float64{0.2, 0.6, 0.2}
	for _, bad := range []float64{0, -0.2, math.NaN()} {
		for i := 0; i < 3; i++ {
			L := good
			L[i] = bad
			if _, err := mdl.Conduit(1, 1, L, good); err == nil {
				tst.Errorf("length[%d]=%v must fail\n", i, bad)
				return
			}
			A := good
			A[i] = bad
			_, err := mdl.Conduit(1, 1, good, A)
			if err == nil {
				tst.Errorf("area[%d]=%v must fail\n", i, bad)
				return
			}
			var ige *pnm.InvalidGeometryError
			if !errors.As(err, &ige) {
				tst.Errorf("error must be InvalidGeometryError; got %v\n", err)
				return
			}
		}
		if _, err := mdl.Conduit(bad, 1, good, good); err == nil {
			tst.Errorf("k1=%v must fail\n", bad)
			return
		}
		if _, err := mdl.Conduit(1, bad, good, good); err == nil {
			tst.Errorf("k2=%v must fail\n", bad)
			return
		}
	}
}

func Test_ser05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ser05. asymmetric ends and fixed throat conductivity")

	var mdl SeriesResistors
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// harmonic-mean throat conductivity by default
	k1, k2 := 4.0, 1.0
	L := [3]float64{0.2, 0.6, 0.2}
	A := [3]float64{0.2, 0.2, 0.2}
	kh := 2.0 * k1 * k2 / (k1 + k2)
	g, err := mdl.Conduit(k1, k2, L, A)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	correct := 1.0 / (L[0]/(k1*A[0]) + L[1]/(kh*A[1]) + L[2]/(k2*A[2]))
	chk.Float64(tst, "g harmonic", 1e-15, g, correct)

	// fixed kt overrides the harmonic mean
	if err := mdl.Init([]*utl.P{{N: "kt", V: 2.0}}); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	g, err = mdl.Conduit(k1, k2, L, A)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	correct = 1.0 / (L[0]/(k1*A[0]) + L[1]/(2.0*A[1]) + L[2]/(k2*A[2]))
	chk.Float64(tst, "g fixed kt", 1e-15, g, correct)

	if err := mdl.Init([]*utl.P{{N: "kt", V: -1.0}}); err == nil {
		tst.Errorf("negative kt must fail\n")
	}
}

func Test_bulk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bulk01. throat-only conductance")

	mdl, err := New("bulk")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	L := [3]float64{0.2, 0.6, 0.2}
	A := [3]float64{0.2, 0.2, 0.2}
	g, err := mdl.Conduit(1, 1, L, A)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "g", 1e-15, g, 1.0/3.0)

	// bulk ignores the pore halves, so it always overestimates series-resistors
	var ser SeriesResistors
	if err := ser.Init(nil); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	gs, err := ser.Conduit(1, 1, L, A)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !(g > gs) {
		tst.Errorf("bulk (%v) must exceed series-resistors (%v)\n", g, gs)
	}

	if _, err := mdl.Conduit(1, 1, [3]float64{0.2, 0, 0.2}, A); err == nil {
		tst.Errorf("zero throat length must fail\n")
	}
}
