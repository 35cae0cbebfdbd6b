// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the spatial media a photon traverses: a flat slab
// or a topography surface separating ground from air. Positions are in cm
package geo

import (
	"go-hep.org/x/hep/fmom"
	"github.com/kvernet/goupil/mat"
)

// Sector is one homogeneous region of a geometry
type Sector struct {
	Material    *mat.Definition
	Density     float64 // [g/cm^3]
	Description string
}

// Geometry describes the media a particle propagates through. Locate maps a
// position to a sector index (negative when outside); Trace returns the
// distance from a position to the next sector boundary along a direction,
// or Far when no boundary is ahead
type Geometry interface {
	Sectors() []Sector
	Locate(pos fmom.Vec3) int
	Trace(pos, dir fmom.Vec3) float64
}

// Far is returned by Trace when no boundary lies ahead
const Far = 1e30
