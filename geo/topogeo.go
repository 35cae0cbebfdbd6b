// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"go-hep.org/x/hep/fmom"
	"github.com/kvernet/goupil/mat"
)

// TopographyGeometry treats an elevation surface as the physical boundary
// between a ground medium (sector 0, below the surface) and an atmosphere
// (sector 1, above it). The geometry is bounded laterally by the map grid
// and vertically by a ceiling above the highest elevation
type TopographyGeometry struct {
	Map     *TopographyMap
	Ceiling float64 // [cm]

	sectors []Sector
	step    float64 // ray-marching step
	limit   float64 // give-up distance for the march
}

// NewTopography builds a two-media geometry over an elevation map
func NewTopography(m *TopographyMap, ground, air *mat.Definition, groundDensity, airDensity float64) (*TopographyGeometry, error) {
	if groundDensity <= 0 || airDensity <= 0 {
		return nil, chk.Err("bad density (expected positive values, found %v and %v)", groundDensity, airDensity)
	}
	x, y := m.X(), m.Y()
	dx := (x[len(x)-1] - x[0]) / float64(len(x)-1)
	dy := (y[len(y)-1] - y[0]) / float64(len(y)-1)
	span := math.Max(x[len(x)-1]-x[0], y[len(y)-1]-y[0])
	return &TopographyGeometry{
		Map:     m,
		Ceiling: m.MaxElevation() + span,
		sectors: []Sector{
			{ground, groundDensity, "ground"},
			{air, airDensity, "atmosphere"},
		},
		step:  0.5 * math.Min(math.Abs(dx), math.Abs(dy)),
		limit: 4 * (span + m.MaxElevation() + 1),
	}, nil
}

// Sectors returns the ground and atmosphere sectors
func (o *TopographyGeometry) Sectors() []Sector { return o.sectors }

// Locate returns 0 below the surface, 1 above it, -1 outside of the grid
// or above the ceiling
func (o *TopographyGeometry) Locate(pos fmom.Vec3) int {
	z, ok := o.Map.At(pos[0], pos[1])
	if !ok || pos[2] > o.Ceiling {
		return -1
	}
	if pos[2] <= z {
		return 0
	}
	return 1
}

// Trace ray-marches from pos along dir until the sector changes, then
// refines the crossing distance by bisection. The march stops at the grid
// boundary when no crossing occurs before it
func (o *TopographyGeometry) Trace(pos, dir fmom.Vec3) float64 {
	start := o.Locate(pos)
	if start < 0 {
		return 0
	}
	at := func(s float64) int {
		return o.Locate(fmom.Vec3{
			pos[0] + s*dir[0],
			pos[1] + s*dir[1],
			pos[2] + s*dir[2],
		})
	}
	lo := 0.0
	for {
		hi := lo + o.step
		if at(hi) != start {
			return bisect(at, start, lo, hi)
		}
		lo = hi
		if lo > o.limit {
			return Far
		}
	}
}

// bisect refines the first distance at which the sector differs from start
func bisect(at func(float64) int, start int, lo, hi float64) float64 {
	for i := 0; i < 50 && hi-lo > 1e-9*(1+hi); i++ {
		mid := 0.5 * (lo + hi)
		if at(mid) == start {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
