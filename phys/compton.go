// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
	"github.com/kvernet/goupil/atom"
	"github.com/kvernet/goupil/mat"
)

// ComptonMethod selects the sampling method of Compton collisions
type ComptonMethod int

// ComptonMode selects the transport kinematics of Compton collisions
type ComptonMode int

// ComptonModel selects the physical model of Compton collisions
type ComptonModel int

const (
	RejectionSampling ComptonMethod = iota
	InverseTransform
)

const (
	Direct ComptonMode = iota
	Adjoint
	Inverse
)

const (
	ScatteringFunction ComptonModel = iota
	KleinNishina
	Penelope
)

func (o ComptonMethod) String() string {
	if o == InverseTransform {
		return "Inverse Transform"
	}
	return "Rejection Sampling"
}

func (o ComptonMode) String() string {
	switch o {
	case Adjoint:
		return "Adjoint"
	case Inverse:
		return "Inverse"
	}
	return "Direct"
}

func (o ComptonModel) String() string {
	switch o {
	case KleinNishina:
		return "Klein-Nishina"
	case Penelope:
		return "Penelope"
	}
	return "Scattering Function"
}

// ParseComptonMethod resolves a sampling method from its name
func ParseComptonMethod(s string) (ComptonMethod, error) {
	switch s {
	case "Inverse Transform":
		return InverseTransform, nil
	case "Rejection Sampling":
		return RejectionSampling, nil
	}
	return 0, chk.Err("bad method (expected 'Inverse Transform' or 'Rejection Sampling', found %q)", s)
}

// ParseComptonMode resolves a transport mode from its name
func ParseComptonMode(s string) (ComptonMode, error) {
	switch s {
	case "Adjoint":
		return Adjoint, nil
	case "Direct":
		return Direct, nil
	case "Inverse":
		return Inverse, nil
	}
	return 0, chk.Err("bad mode (expected 'Adjoint', 'Direct' or 'Inverse', found %q)", s)
}

// ParseComptonModel resolves a physical model from its name
func ParseComptonModel(s string) (ComptonModel, error) {
	switch s {
	case "Klein-Nishina":
		return KleinNishina, nil
	case "Penelope":
		return Penelope, nil
	case "Scattering Function":
		return ScatteringFunction, nil
	}
	return 0, chk.Err("bad model (expected 'Klein-Nishina', 'Penelope' or 'Scattering Function', found %q)", s)
}

// Compton is a configured Compton collision process. Use NewCompton or
// DefaultCompton to obtain a validated configuration
type Compton struct {
	Method    ComptonMethod
	Mode      ComptonMode
	Model     ComptonModel
	Precision float64 // table resolution scaling; 1 is nominal
}

// DefaultCompton returns the default configuration: Rejection Sampling of
// the Scattering Function model in Direct mode, with nominal precision
func DefaultCompton() *Compton {
	return &Compton{
		Method:    RejectionSampling,
		Mode:      Direct,
		Model:     ScatteringFunction,
		Precision: 1,
	}
}

// NewCompton builds a Compton process from named options. Recognized options
// are "method", "mode", "model" (strings) and "precision" (positive number);
// omitted options take their default value. Unknown option names and
// unsupported (method, mode, model) combinations are construction errors
func NewCompton(options map[string]interface{}) (*Compton, error) {
	o := DefaultCompton()
	for key, value := range options {
		switch key {
		case "method":
			s, ok := value.(string)
			if !ok {
				return nil, chk.Err("bad method (expected a string, found %v)", value)
			}
			m, err := ParseComptonMethod(s)
			if err != nil {
				return nil, err
			}
			o.Method = m
		case "mode":
			s, ok := value.(string)
			if !ok {
				return nil, chk.Err("bad mode (expected a string, found %v)", value)
			}
			m, err := ParseComptonMode(s)
			if err != nil {
				return nil, err
			}
			o.Mode = m
		case "model":
			s, ok := value.(string)
			if !ok {
				return nil, chk.Err("bad model (expected a string, found %v)", value)
			}
			m, err := ParseComptonModel(s)
			if err != nil {
				return nil, err
			}
			o.Model = m
		case "precision":
			switch v := value.(type) {
			case float64:
				o.Precision = v
			case int:
				o.Precision = float64(v)
			default:
				return nil, chk.Err("bad precision (expected a number, found %v)", value)
			}
		default:
			return nil, chk.Err("option %q is not recognized", key)
		}
	}
	if o.Precision <= 0 {
		return nil, chk.Err("bad precision (expected a positive value, found %v)", o.Precision)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate rejects unsupported (method, mode, model) combinations.
// The Inverse mode is defined only through an inverse CDF, and shell-profile
// (Penelope) sampling has no reversed kinematics
func (o *Compton) Validate() error {
	bad := false
	switch {
	case o.Mode == Inverse && o.Method == RejectionSampling:
		bad = true
	case o.Model == Penelope && o.Mode != Direct:
		bad = true
	}
	if bad {
		return chk.Err("bad sampling configuration (%v, %v, %v is not implemented)", o.Method, o.Mode, o.Model)
	}
	return nil
}

// Process returns the table tag of this configuration;
// e.g. "Compton::Rejection Sampling/Direct/Scattering Function"
func (o *Compton) Process() string {
	return "Compton::" + o.Method.String() + "/" + o.Mode.String() + "/" + o.Model.String()
}

// CrossSection computes the total Compton cross section at the given energy
// for a resolved material [cm^2 per formula unit]
func (o *Compton) CrossSection(energy float64, m *mat.Definition) (float64, error) {
	if len(m.MoleComposition()) == 0 {
		return 0, chk.Err("material %q has an empty composition", m.Name())
	}
	return o.crossSection(energy, m.Electrons()), nil
}

// CrossSections computes the total Compton cross section for each energy of
// a sequence, returning a matching-length result
func (o *Compton) CrossSections(energies []float64, m *mat.Definition) ([]float64, error) {
	if len(m.MoleComposition()) == 0 {
		return nil, chk.Err("material %q has an empty composition", m.Name())
	}
	es := m.Electrons()
	res := make([]float64, len(energies))
	for i, e := range energies {
		res[i] = o.crossSection(e, es)
	}
	return res, nil
}

func (o *Compton) crossSection(energy float64, es *atom.ElectronicStructure) float64 {
	if o.Model == KleinNishina {
		return es.Charge * kleinNishinaTotal(energy/ElectronMass)
	}
	// integrate the differential cross section, modulated by the
	// incoherent scattering function
	k := energy / ElectronMass
	x := utl.LinSpace(1/(1+2*k), 1, 201)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = o.dcsRatio(energy, xi, es)
	}
	return num.QuadDiscreteTrapzXY(x, y)
}

// kleinNishinaTotal is the total Klein-Nishina cross section per electron
// for the reduced energy k = E/me [cm^2]
func kleinNishinaTotal(k float64) float64 {
	if k < 1e-6 {
		// Thomson limit with the first order correction
		return 8 * math.Pi / 3 * ElectronR * ElectronR * (1 - 2*k)
	}
	a := (1 + k) / (k * k) * (2*(1+k)/(1+2*k) - math.Log(1+2*k)/k)
	b := math.Log(1+2*k) / (2 * k)
	c := (1 + 3*k) / ((1 + 2*k) * (1 + 2*k))
	return 2 * math.Pi * ElectronR * ElectronR * (a + b - c)
}

// DCSRatio is the differential cross section dsigma/dx at the outgoing to
// incoming energy ratio x = E'/E, per formula unit [cm^2]. The kinematically
// allowed range is x in [1/(1+2k), 1] with k = E/me
func (o *Compton) DCSRatio(energy, x float64, m *mat.Definition) float64 {
	return o.dcsRatio(energy, x, m.Electrons())
}

func (o *Compton) dcsRatio(energy, x float64, es *atom.ElectronicStructure) float64 {
	k := energy / ElectronMass
	xmin := 1 / (1 + 2*k)
	if x < xmin || x > 1 {
		return 0
	}
	c := 1 - (1/x-1)/k
	s2 := 1 - c*c
	if s2 < 0 {
		s2 = 0
	}
	dcs := math.Pi * ElectronR * ElectronR / k * (x + 1/x - s2)
	switch o.Model {
	case KleinNishina:
		return es.Charge * dcs
	case Penelope:
		return dcs * scatteringFunction(es, momentumTransfer(energy, c), energy)
	}
	return dcs * scatteringFunction(es, momentumTransfer(energy, c), -1)
}

// RatioMin is the lowest kinematically allowed outgoing to incoming energy
// ratio at the given energy
func RatioMin(energy float64) float64 {
	return 1 / (1 + 2*energy/ElectronMass)
}

// scatteringFunction evaluates the incoherent scattering function at
// momentum transfer q (electron-mass units), built from the shell structure
// of the target. When emax is positive, shells with binding energies above
// emax are excluded (no energy to ionize them)
func scatteringFunction(es *atom.ElectronicStructure, q float64, emax float64) float64 {
	var sum float64
	q2 := q * q
	for _, s := range es.Shells {
		if emax > 0 && s.Energy >= emax {
			continue
		}
		b2 := 2 * s.Energy / ElectronMass
		sum += s.Occupancy * q2 / (q2 + b2)
	}
	return sum
}

// SampleRatio draws an outgoing to incoming energy ratio by rejection
// sampling of the configured model. The Klein-Nishina envelope is exact for
// all models since the scattering function is bounded by the total charge
func (o *Compton) SampleRatio(rng *rand.Rand, energy float64, es *atom.ElectronicStructure) (float64, error) {
	k := energy / ElectronMass
	xmin := 1 / (1 + 2*k)
	bound := xmin + 1/xmin // upper bound of x + 1/x - sin^2
	for trial := 0; trial < 10000; trial++ {
		x := xmin + (1-xmin)*rng.Float64()
		c := 1 - (1/x-1)/k
		s2 := 1 - c*c
		if s2 < 0 {
			s2 = 0
		}
		f := (x + 1/x - s2) / bound
		if o.Model != KleinNishina {
			emax := -1.0
			if o.Model == Penelope {
				emax = energy
			}
			f *= scatteringFunction(es, momentumTransfer(energy, c), emax) / es.Charge
		}
		if rng.Float64() < f {
			return x, nil
		}
	}
	return 0, chk.Err("rejection sampling of a Compton collision did not converge (E=%g)", energy)
}

// CosTheta returns the scattering angle cosine matching the outgoing to
// incoming energy ratio x at the given energy
func CosTheta(energy, x float64) float64 {
	k := energy / ElectronMass
	c := 1 - (1/x-1)/k
	if c < -1 {
		c = -1
	}
	if c > 1 {
		c = 1
	}
	return c
}
