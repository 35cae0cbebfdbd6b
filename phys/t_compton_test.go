// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/kvernet/goupil/mat"
)

func Test_compton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compton01. configuration")

	// defaults
	p, err := NewCompton(nil)
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	chk.String(tst, p.Method.String(), "Rejection Sampling")
	chk.String(tst, p.Mode.String(), "Direct")
	chk.String(tst, p.Model.String(), "Scattering Function")
	chk.Float64(tst, "precision", 1e-15, p.Precision, 1.0)

	p, err = NewCompton(map[string]interface{}{"precision": 10.0})
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	chk.Float64(tst, "precision", 1e-15, p.Precision, 10.0)

	// non-positive precision
	_, err = NewCompton(map[string]interface{}{"precision": 0})
	if err == nil {
		tst.Errorf("zero precision must fail\n")
		return
	}

	// unknown option
	_, err = NewCompton(map[string]interface{}{"toto": 0})
	if err == nil {
		tst.Errorf("unknown option must fail\n")
		return
	}
	chk.String(tst, err.Error(), `option "toto" is not recognized`)

	// unknown axis values
	for _, options := range []map[string]interface{}{
		{"method": "Bogus"},
		{"mode": "Bogus"},
		{"model": "Bogus"},
	} {
		if _, err := NewCompton(options); err == nil {
			tst.Errorf("unknown value must fail\n")
			return
		}
	}
}

func Test_compton02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compton02. supported configurations")

	nok, nbad := 0, 0
	for _, method := range []string{"Inverse Transform", "Rejection Sampling"} {
		for _, mode := range []string{"Adjoint", "Direct", "Inverse"} {
			for _, model := range []string{"Klein-Nishina", "Penelope", "Scattering Function"} {
				p, err := NewCompton(map[string]interface{}{
					"method": method,
					"mode":   mode,
					"model":  model,
				})
				if err != nil {
					chk.String(tst, err.Error()[:26], "bad sampling configuration")
					nbad++
					continue
				}
				chk.String(tst, p.Method.String(), method)
				chk.String(tst, p.Mode.String(), mode)
				chk.String(tst, p.Model.String(), model)
				chk.Float64(tst, "precision", 1e-15, p.Precision, 1.0)
				nok++
			}
		}
	}
	if nok == 0 || nbad == 0 {
		tst.Errorf("expected both supported and unsupported triples (ok=%d, bad=%d)\n", nok, nbad)
		return
	}

	// the default triple must be supported
	if err := DefaultCompton().Validate(); err != nil {
		tst.Errorf("default configuration must be valid: %v\n", err)
	}
}

func Test_compton03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compton03. cross sections")

	h, err := mat.FromMole("Material", []mat.Mole{{Coef: 1, Symbol: "H"}})
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}

	p := DefaultCompton()
	cs, err := p.CrossSection(1.0, h)
	if err != nil {
		tst.Errorf("cross section failed: %v\n", err)
		return
	}
	if cs <= 0 {
		tst.Errorf("cross section must be positive (found %g)\n", cs)
		return
	}

	// Klein-Nishina is strictly positive and decreasing over two decades
	kn, err := NewCompton(map[string]interface{}{"model": "Klein-Nishina"})
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	energies := EnergyGrid(1e-2, 1e1, 31)
	values, err := kn.CrossSections(energies, h)
	if err != nil {
		tst.Errorf("cross sections failed: %v\n", err)
		return
	}
	chk.IntAssert(len(values), len(energies))
	for i, v := range values {
		if v <= 0 {
			tst.Errorf("cross section must be positive (found %g)\n", v)
			return
		}
		if i > 0 && v >= values[i-1] {
			tst.Errorf("Klein-Nishina cross section must decrease with energy\n")
			return
		}
	}

	// the scalar and element-wise versions must agree
	v0, err := kn.CrossSection(energies[0], h)
	if err != nil {
		tst.Errorf("cross section failed: %v\n", err)
		return
	}
	chk.Float64(tst, "scalar vs vector", 1e-15, v0, values[0])

	// empty composition fails
	if _, err := p.CrossSection(1.0, new(mat.Definition)); err == nil {
		tst.Errorf("empty material must fail\n")
	}
}

func Test_compton04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compton04. rejection sampling")

	h2o, err := mat.FromFormula("H2O")
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	es := h2o.Electrons()

	p := DefaultCompton()
	rng := rand.New(rand.NewSource(1234))
	energy := 1.0
	xmin := RatioMin(energy)
	for i := 0; i < 1000; i++ {
		x, err := p.SampleRatio(rng, energy, es)
		if err != nil {
			tst.Errorf("sampling failed: %v\n", err)
			return
		}
		if x < xmin || x > 1 {
			tst.Errorf("sampled ratio %g is out of [%g, 1]\n", x, xmin)
			return
		}
		c := CosTheta(energy, x)
		if c < -1 || c > 1 {
			tst.Errorf("bad angle cosine %g\n", c)
			return
		}
	}
}

func Test_rayleigh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rayleigh01. coherent scattering")

	h2o, err := mat.FromFormula("H2O")
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}

	// the form factor decreases from the total charge to zero
	chk.Float64(tst, "F(0)", 1e-12, FormFactorValue(0, h2o), 10.0)
	f := FormFactorValue(1e-3, h2o)
	if f <= 0 || f >= 10 {
		tst.Errorf("bad form factor value %g\n", f)
		return
	}

	cs, err := RayleighCrossSection(1e-2, h2o)
	if err != nil {
		tst.Errorf("cross section failed: %v\n", err)
		return
	}
	if cs <= 0 {
		tst.Errorf("cross section must be positive (found %g)\n", cs)
		return
	}

	// empty composition fails
	if _, err := RayleighCrossSection(1e-2, new(mat.Definition)); err == nil {
		tst.Errorf("empty material must fail\n")
	}
}

func Test_absorption01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("absorption01. photoelectric effect")

	h2o, err := mat.FromFormula("H2O")
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	energies := EnergyGrid(1e-2, 1e1, 11)
	values, err := AbsorptionCrossSections(energies, h2o)
	if err != nil {
		tst.Errorf("cross sections failed: %v\n", err)
		return
	}
	for i, v := range values {
		if v <= 0 {
			tst.Errorf("cross section must be positive (found %g)\n", v)
			return
		}
		if i > 0 && v >= values[i-1] {
			tst.Errorf("photoelectric cross section must decrease with energy\n")
			return
		}
	}
}
