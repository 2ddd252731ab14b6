// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"
)

// Cubic generates a regular cubic lattice network.
//  shape   -- number of pores along x, y, z; e.g. []int{4, 4, 4}
//  spacing -- lattice constant (centre-to-centre distance between neighbours)
//  jitter  -- fraction of spacing to randomly perturb interior pore
//             coordinates; 0 gives a perfectly regular lattice
//  seed    -- seed for the jitter; must be positive when jitter is
//             nonzero, so repeated runs reproduce the same lattice
// Throats connect nearest neighbours along the three axis directions and are
// labelled "x", "y", or "z" after the axis they run along. Face pores are
// labelled "xmin", "xmax", "ymin", "ymax", "zmin", "zmax" plus "surface"; the
// remaining pores are labelled "internal".
func Cubic(shape []int, spacing, jitter float64, seed int) (net *Network, err error) {

	// check input
	if len(shape) != 3 {
		return nil, chk.Err("cubic: shape must have 3 components; got %v", shape)
	}
	nx, ny, nz := shape[0], shape[1], shape[2]
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("cubic: shape components must be at least 1; got %v", shape)
	}
	if spacing <= 0 {
		return nil, chk.Err("cubic: spacing must be positive; got %g", spacing)
	}
	if jitter < 0 || jitter >= 0.5 {
		return nil, chk.Err("cubic: jitter must be within [0, 0.5); got %g", jitter)
	}
	if jitter > 0 && seed <= 0 {
		return nil, chk.Err("cubic: jitter needs a positive seed; got %d", seed)
	}

	// pores: x varies fastest
	npores := nx * ny * nz
	coords := utl.Alloc(npores, 3)
	pid := func(ix, iy, iz int) int { return ix + iy*nx + iz*nx*ny }
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				x := coords[pid(ix, iy, iz)]
				x[0] = (float64(ix) + 0.5) * spacing
				x[1] = (float64(iy) + 0.5) * spacing
				x[2] = (float64(iz) + 0.5) * spacing
			}
		}
	}

	// throats: +x, +y, +z neighbours
	var conns [][]int
	var axes []string
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				p := pid(ix, iy, iz)
				if ix < nx-1 {
					conns = append(conns, []int{p, pid(ix+1, iy, iz)})
					axes = append(axes, "x")
				}
				if iy < ny-1 {
					conns = append(conns, []int{p, pid(ix, iy+1, iz)})
					axes = append(axes, "y")
				}
				if iz < nz-1 {
					conns = append(conns, []int{p, pid(ix, iy, iz+1)})
					axes = append(axes, "z")
				}
			}
		}
	}

	// jitter interior pores only, so face labels and limits stay exact
	if jitter > 0 {
		rnd.Init(seed)
		for iz := 1; iz < nz-1; iz++ {
			for iy := 1; iy < ny-1; iy++ {
				for ix := 1; ix < nx-1; ix++ {
					x := coords[pid(ix, iy, iz)]
					for j := 0; j < 3; j++ {
						x[j] += rnd.Float64(-jitter, jitter) * spacing
					}
				}
			}
		}
	}

	// allocate
	net, err = NewNetwork(coords, conns)
	if err != nil {
		return
	}

	// labels
	for t, axis := range axes {
		net.ThroatLabels[axis] = append(net.ThroatLabels[axis], t)
	}
	onface := make([]bool, npores)
	addlabel := func(label string, p int) {
		net.PoreLabels[label] = append(net.PoreLabels[label], p)
		onface[p] = true
	}
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				p := pid(ix, iy, iz)
				if ix == 0 {
					addlabel("xmin", p)
				}
				if ix == nx-1 {
					addlabel("xmax", p)
				}
				if iy == 0 {
					addlabel("ymin", p)
				}
				if iy == ny-1 {
					addlabel("ymax", p)
				}
				if iz == 0 {
					addlabel("zmin", p)
				}
				if iz == nz-1 {
					addlabel("zmax", p)
				}
			}
		}
	}
	for p := 0; p < npores; p++ {
		if onface[p] {
			net.PoreLabels["surface"] = append(net.PoreLabels["surface"], p)
		} else {
			net.PoreLabels["internal"] = append(net.PoreLabels["internal"], p)
		}
	}
	return
}
