// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
	"github.com/kvernet/goupil/mat"
)

// RayleighProcess is the table tag of coherent (Rayleigh) scattering
const RayleighProcess = "Rayleigh"

// FormFactorValue evaluates the atomic form factor of a material at
// momentum transfer q (electron-mass units), summed over constituents with
// a Thomas-Fermi momentum profile per element
func FormFactorValue(q float64, m *mat.Definition) float64 {
	var sum float64
	for _, c := range m.MoleComposition() {
		z := float64(c.Elem.Z)
		qz := FineStructure * math.Cbrt(z)
		r := 1 + (q/qz)*(q/qz)
		sum += c.Coef * z / (r * r)
	}
	return sum
}

// RayleighCrossSection computes the coherent scattering cross section at the
// given energy [cm^2 per formula unit] by integrating the Thomson
// differential cross section modulated by the squared form factor
func RayleighCrossSection(energy float64, m *mat.Definition) (float64, error) {
	if len(m.MoleComposition()) == 0 {
		return 0, chk.Err("material %q has an empty composition", m.Name())
	}
	x := utl.LinSpace(-1, 1, 201)
	y := make([]float64, len(x))
	for i, c := range x {
		f := FormFactorValue(momentumTransfer(energy, c), m)
		y[i] = (1 + c*c) * f * f
	}
	return math.Pi * ElectronR * ElectronR * num.QuadDiscreteTrapzXY(x, y), nil
}

// RayleighCrossSections is the element-wise version of RayleighCrossSection
func RayleighCrossSections(energies []float64, m *mat.Definition) ([]float64, error) {
	res := make([]float64, len(energies))
	for i, e := range energies {
		v, err := RayleighCrossSection(e, m)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}
