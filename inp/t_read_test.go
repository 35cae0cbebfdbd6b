// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/kvernet/goupil/geo"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. water slab simulation")

	sim, err := ReadSim("data/slab.sim")
	if err != nil {
		tst.Errorf("read failed: %v\n", err)
		return
	}
	chk.String(tst, sim.Desc, "1 MeV photons through a 10 cm water slab")
	chk.IntAssert(len(sim.MaterialNames()), 1)
	chk.String(tst, sim.MaterialNames()[0], "H2O")

	water, err := sim.Material("H2O")
	if err != nil {
		tst.Errorf("lookup failed: %v\n", err)
		return
	}
	chk.IntAssert(len(water.MoleComposition()), 2)

	g, err := sim.MakeGeometry()
	if err != nil {
		tst.Errorf("geometry failed: %v\n", err)
		return
	}
	slab, ok := g.(*geo.SimpleGeometry)
	if !ok {
		tst.Errorf("expected a slab geometry\n")
		return
	}
	chk.Float64(tst, "thickness", 1e-15, slab.Thickness, 10)
	chk.Float64(tst, "density", 1e-15, slab.Density, 1)

	engine, err := sim.MakeEngine()
	if err != nil {
		tst.Errorf("engine failed: %v\n", err)
		return
	}
	chk.String(tst, engine.Settings().Mode.String(), "Forward")
	chk.IntAssert(int(engine.Settings().Seed), 42)

	states := sim.MakeStates()
	chk.IntAssert(len(states), 100)
	chk.Float64(tst, "energy", 1e-15, states[0].Energy, 1)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. topography simulation")

	sim, err := ReadSim("data/topo.sim")
	if err != nil {
		tst.Errorf("read failed: %v\n", err)
		return
	}
	chk.IntAssert(len(sim.MaterialNames()), 3)

	// the 50/50 mixture of a material with itself keeps its composition
	quartz, err := sim.Material("SiO2")
	if err != nil {
		tst.Errorf("lookup failed: %v\n", err)
		return
	}
	soil, err := sim.Material("Soil")
	if err != nil {
		tst.Errorf("lookup failed: %v\n", err)
		return
	}
	if !soil.Equal(quartz) {
		tst.Errorf("mixture must reproduce the composition\n")
		return
	}

	g, err := sim.MakeGeometry()
	if err != nil {
		tst.Errorf("geometry failed: %v\n", err)
		return
	}
	topo, ok := g.(*geo.TopographyGeometry)
	if !ok {
		tst.Errorf("expected a topography geometry\n")
		return
	}
	chk.IntAssert(len(topo.Sectors()), 2)

	// backward transport promotes the Compton kinematics to adjoint
	engine, err := sim.MakeEngine()
	if err != nil {
		tst.Errorf("engine failed: %v\n", err)
		return
	}
	chk.String(tst, engine.Settings().Mode.String(), "Backward")
	chk.String(tst, engine.Settings().Compton.Mode.String(), "Adjoint")
	chk.String(tst, engine.Settings().Compton.Model.String(), "Klein-Nishina")
	chk.IntAssert(engine.Settings().StepLimit, 100)
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. malformed inputs")

	// unknown keys are rejected
	if _, err := ReadSim("data/bad.sim"); err == nil {
		tst.Errorf("unknown key must fail\n")
		return
	}

	// missing file
	if _, err := ReadSim("data/nosuchfile.sim"); err == nil {
		tst.Errorf("missing file must fail\n")
		return
	}
}
