// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/kvernet/goupil/mat"
)

// AbsorptionProcess is the table tag of photoelectric absorption
const AbsorptionProcess = "Absorption"

// AbsorptionCrossSection computes the photoelectric cross section at the
// given energy [cm^2 per formula unit], using the Born approximation above
// the K edge: sigma ~ Z^5 alpha^4 (me/E)^(7/2)
func AbsorptionCrossSection(energy float64, m *mat.Definition) (float64, error) {
	if len(m.MoleComposition()) == 0 {
		return 0, chk.Err("material %q has an empty composition", m.Name())
	}
	var sum float64
	for _, c := range m.MoleComposition() {
		sum += c.Coef * photoelectric(energy, float64(c.Elem.Z))
	}
	return sum, nil
}

// AbsorptionCrossSections is the element-wise version of
// AbsorptionCrossSection
func AbsorptionCrossSections(energies []float64, m *mat.Definition) ([]float64, error) {
	res := make([]float64, len(energies))
	for i, e := range energies {
		v, err := AbsorptionCrossSection(e, m)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func photoelectric(energy, z float64) float64 {
	a4 := FineStructure * FineStructure * FineStructure * FineStructure
	r := ElectronMass / energy
	return 4 * math.Sqrt2 * math.Pi * ElectronR * ElectronR * a4 *
		z * z * z * z * z * r * r * r * math.Sqrt(r)
}
