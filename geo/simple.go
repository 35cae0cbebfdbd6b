// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/chk"
	"go-hep.org/x/hep/fmom"
	"github.com/kvernet/goupil/mat"
)

// SimpleGeometry is a homogeneous slab bounded by the two planes z = 0 and
// z = Thickness, infinite laterally
type SimpleGeometry struct {
	Thickness float64 // [cm]
	Density   float64 // [g/cm^3]

	sectors []Sector
}

// NewSimple builds a slab of the given material and thickness, with a
// default density of 1 g/cm^3
func NewSimple(m *mat.Definition, thickness float64) (*SimpleGeometry, error) {
	if thickness <= 0 {
		return nil, chk.Err("bad thickness (expected a positive value, found %v)", thickness)
	}
	if len(m.MoleComposition()) == 0 {
		return nil, chk.Err("material %q has an empty composition", m.Name())
	}
	return &SimpleGeometry{
		Thickness: thickness,
		Density:   1.0,
		sectors:   []Sector{{m, 1.0, "slab"}},
	}, nil
}

// SetDensity overrides the slab density
func (o *SimpleGeometry) SetDensity(density float64) error {
	if density <= 0 {
		return chk.Err("bad density (expected a positive value, found %v)", density)
	}
	o.Density = density
	o.sectors[0].Density = density
	return nil
}

// Sectors returns the single slab sector
func (o *SimpleGeometry) Sectors() []Sector { return o.sectors }

// Locate returns 0 inside the slab, -1 outside
func (o *SimpleGeometry) Locate(pos fmom.Vec3) int {
	if pos[2] < 0 || pos[2] > o.Thickness {
		return -1
	}
	return 0
}

// Trace returns the distance to the slab boundary ahead of pos along dir
func (o *SimpleGeometry) Trace(pos, dir fmom.Vec3) float64 {
	switch {
	case dir[2] > 0:
		return (o.Thickness - pos[2]) / dir[2]
	case dir[2] < 0:
		return pos[2] / -dir[2]
	}
	return Far
}
