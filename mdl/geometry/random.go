// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

// RandomDiameters fills v with reproducible uniform diameters in [dmin, dmax].
// The seed must be positive; a non-positive seed would fall back to
// time-based seeding and break reproducibility.
func RandomDiameters(v []float64, dmin, dmax float64, seed int) (err error) {
	if !(dmin > 0) {
		return chk.Err("random diameters: dmin must be positive; got %g", dmin)
	}
	if dmax < dmin {
		return chk.Err("random diameters: dmax must be at least dmin=%g; got %g", dmin, dmax)
	}
	if seed <= 0 {
		return chk.Err("random diameters: seed must be positive; got %d", seed)
	}
	rnd.Init(seed)
	rnd.Float64s(v, dmin, dmax)
	return
}
