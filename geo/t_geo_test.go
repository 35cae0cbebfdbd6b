// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"go-hep.org/x/hep/fmom"
	"github.com/kvernet/goupil/mat"
)

func Test_topo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topo01. topography map")

	m, err := NewTopographyMap([2]float64{-1, 1}, [2]float64{-10, 10}, nil, [2]int{201, 21})
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	ny, nx := m.Shape()
	chk.IntAssert(ny, 201)
	chk.IntAssert(nx, 21)

	// axes follow the bounds and the shape
	x, y := m.X(), m.Y()
	chk.IntAssert(len(x), 21)
	chk.IntAssert(len(y), 201)
	chk.Float64(tst, "x[0]", 1e-15, x[0], -1)
	chk.Float64(tst, "x[end]", 1e-15, x[len(x)-1], 1)
	chk.Float64(tst, "y[0]", 1e-15, y[0], -10)
	chk.Float64(tst, "y[end]", 1e-15, y[len(y)-1], 10)

	// axes are copies: writes do not reach the map
	x[0] = 666
	chk.Float64(tst, "x[0] unchanged", 1e-15, m.X()[0], -1)

	// default elevations are all zero
	z := m.Z()
	chk.IntAssert(len(z), 201)
	chk.IntAssert(len(z[0]), 21)
	for _, row := range z {
		for _, v := range row {
			if v != 0 {
				tst.Errorf("default elevation must be zero, found %v\n", v)
				return
			}
		}
	}

	// rows alias the grid: writes are reflected
	z[100][10] = 3.0
	chk.Float64(tst, "z write", 1e-15, m.Z()[100][10], 3.0)
	v, ok := m.At(0, 0)
	if !ok {
		tst.Errorf("(0, 0) must be inside the grid\n")
		return
	}
	chk.Float64(tst, "At(0,0)", 1e-15, v, 3.0)
	chk.Float64(tst, "max elevation", 1e-15, m.MaxElevation(), 3.0)

	// outside of the grid
	if _, ok := m.At(2, 0); ok {
		tst.Errorf("(2, 0) must be outside of the grid\n")
		return
	}
	if _, ok := m.At(0, -11); ok {
		tst.Errorf("(0, -11) must be outside of the grid\n")
		return
	}

	// offset view
	d := m.Offset(1.5)
	v, ok = d.At(0, 0)
	if !ok {
		tst.Errorf("(0, 0) must be inside the grid\n")
		return
	}
	chk.Float64(tst, "offset At(0,0)", 1e-15, v, 4.5)
}

func Test_topo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topo02. shape inference and interpolation")

	// shape inferred from the z-array
	zin := [][]float64{
		{0, 1},
		{2, 3},
		{4, 5},
	}
	m, err := NewTopographyMap([2]float64{0, 1}, [2]float64{0, 2}, zin, [2]int{})
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	ny, nx := m.Shape()
	chk.IntAssert(ny, 3)
	chk.IntAssert(nx, 2)

	// bilinear interpolation at nodes and mid-cell
	v, _ := m.At(0, 0)
	chk.Float64(tst, "node", 1e-15, v, 0)
	v, _ = m.At(1, 2)
	chk.Float64(tst, "node", 1e-15, v, 5)
	v, _ = m.At(0.5, 0.5)
	chk.Float64(tst, "mid-cell", 1e-15, v, 1.5)

	// no shape and no z-array
	if _, err := NewTopographyMap([2]float64{0, 1}, [2]float64{0, 1}, nil, [2]int{}); err == nil {
		tst.Errorf("missing shape must fail\n")
		return
	}

	// z-array inconsistent with the shape
	if _, err := NewTopographyMap([2]float64{0, 1}, [2]float64{0, 1}, zin, [2]int{2, 2}); err == nil {
		tst.Errorf("inconsistent z-array must fail\n")
		return
	}
}

func Test_geo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geo01. homogeneous slab")

	water, err := mat.FromFormula("H2O")
	if err != nil {
		tst.Errorf("material failed: %v\n", err)
		return
	}
	g, err := NewSimple(water, 10.0)
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	chk.IntAssert(len(g.Sectors()), 1)
	chk.Float64(tst, "default density", 1e-15, g.Sectors()[0].Density, 1.0)
	if err := g.SetDensity(2.5); err != nil {
		tst.Errorf("SetDensity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "density", 1e-15, g.Sectors()[0].Density, 2.5)

	// locate
	chk.IntAssert(g.Locate(fmom.Vec3{0, 0, 5}), 0)
	chk.IntAssert(g.Locate(fmom.Vec3{0, 0, -1}), -1)
	chk.IntAssert(g.Locate(fmom.Vec3{0, 0, 11}), -1)

	// trace
	chk.Float64(tst, "upward", 1e-15, g.Trace(fmom.Vec3{0, 0, 4}, fmom.Vec3{0, 0, 1}), 6)
	chk.Float64(tst, "downward", 1e-15, g.Trace(fmom.Vec3{0, 0, 4}, fmom.Vec3{0, 0, -1}), 4)
	chk.Float64(tst, "lateral", 1e-15, g.Trace(fmom.Vec3{0, 0, 4}, fmom.Vec3{1, 0, 0}), Far)

	// failures
	if _, err := NewSimple(water, 0); err == nil {
		tst.Errorf("zero thickness must fail\n")
		return
	}
	if _, err := NewSimple(&mat.Definition{}, 1); err == nil {
		tst.Errorf("empty material must fail\n")
		return
	}
	if err := g.SetDensity(-1); err == nil {
		tst.Errorf("negative density must fail\n")
		return
	}
}

func Test_geo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geo02. topography geometry")

	rock, err := mat.FromFormula("SiO2")
	if err != nil {
		tst.Errorf("material failed: %v\n", err)
		return
	}
	air, err := mat.FromFormula("N2O")
	if err != nil {
		tst.Errorf("material failed: %v\n", err)
		return
	}

	// flat surface at z = 0 over a 200 x 200 cm grid
	m, err := NewTopographyMap([2]float64{-100, 100}, [2]float64{-100, 100}, nil, [2]int{11, 11})
	if err != nil {
		tst.Errorf("map failed: %v\n", err)
		return
	}
	g, err := NewTopography(m, rock, air, 2.9, 1.2e-3)
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	chk.IntAssert(len(g.Sectors()), 2)
	chk.String(tst, g.Sectors()[0].Description, "ground")
	chk.String(tst, g.Sectors()[1].Description, "atmosphere")
	chk.Float64(tst, "ceiling", 1e-15, g.Ceiling, 200)

	// locate
	chk.IntAssert(g.Locate(fmom.Vec3{0, 0, -5}), 0)
	chk.IntAssert(g.Locate(fmom.Vec3{0, 0, 5}), 1)
	chk.IntAssert(g.Locate(fmom.Vec3{0, 0, 300}), -1)
	chk.IntAssert(g.Locate(fmom.Vec3{150, 0, 5}), -1)

	// trace across the surface
	chk.Float64(tst, "down to ground", 1e-6, g.Trace(fmom.Vec3{0, 0, 5}, fmom.Vec3{0, 0, -1}), 5)
	chk.Float64(tst, "up to surface", 1e-6, g.Trace(fmom.Vec3{0, 0, -5}, fmom.Vec3{0, 0, 1}), 5)

	// trace to the outer boundary
	chk.Float64(tst, "up to ceiling", 1e-4, g.Trace(fmom.Vec3{0, 0, 5}, fmom.Vec3{0, 0, 1}), 195)
	chk.Float64(tst, "out of grid", 1e-4, g.Trace(fmom.Vec3{0, 0, 5}, fmom.Vec3{1, 0, 0}), 100)

	// bad densities
	if _, err := NewTopography(m, rock, air, 0, 1); err == nil {
		tst.Errorf("zero density must fail\n")
		return
	}
}
