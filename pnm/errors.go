// Copyright 2021 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import "github.com/cpmech/gosl/io"

// InvalidGeometryError indicates a non-positive length, area, or conductivity
// in a conduit. Conduit formulas divide by these quantities, so the value is
// rejected instead of being clamped or propagated as Inf/NaN.
type InvalidGeometryError struct {
	Prop   string  // which quantity; e.g. "length.throat"
	Throat int     // throat index; -1 if not known at the point of failure
	Value  float64 // the offending value
}

// Error returns the error message
func (o *InvalidGeometryError) Error() string {
	if o.Throat < 0 {
		return io.Sf("invalid conduit geometry: %q must be positive; got %g", o.Prop, o.Value)
	}
	return io.Sf("invalid conduit geometry on throat %d: %q must be positive; got %g", o.Throat, o.Prop, o.Value)
}

// MissingPropertyError indicates that a named property array was never
// registered on the network
type MissingPropertyError struct {
	Name string // full property name; e.g. "pore.conductivity"
}

// Error returns the error message
func (o *MissingPropertyError) Error() string {
	return io.Sf("property %q is not registered on the network", o.Name)
}
