// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys implements photon interaction processes: Compton scattering,
// photoelectric absorption and Rayleigh scattering. Energies are in MeV and
// cross sections in cm^2 per formula unit of the target material
package phys

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Physical constants
const (
	ElectronMass  = 0.510998910      // electron rest energy [MeV]
	ElectronR     = 2.8179403262e-13 // classical electron radius [cm]
	FineStructure = 7.2973525693e-3
	Avogadro      = 6.02214076e23 // [1/mol]
)

// EnergyGrid returns n log-spaced energies covering [emin, emax]
func EnergyGrid(emin, emax float64, n int) []float64 {
	res := utl.LinSpace(math.Log(emin), math.Log(emax), n)
	for i, l := range res {
		res[i] = math.Exp(l)
	}
	res[0] = emin
	res[n-1] = emax
	return res
}

// momentumTransfer computes the magnitude of the momentum transferred to the
// target for a photon of the given energy deflected by cosTheta, in
// electron-mass units and in the elastic approximation
func momentumTransfer(energy, cosTheta float64) float64 {
	return energy / ElectronMass * math.Sqrt(2*math.Abs(1-cosTheta))
}
