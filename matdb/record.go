// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matdb

import (
	"github.com/kvernet/goupil/atom"
	"github.com/kvernet/goupil/mat"
	"github.com/kvernet/goupil/phys"
)

// Record holds one resolved material together with its memoized tables.
// Records are owned by a Registry and cannot be constructed otherwise; the
// zero value is unusable. All table getters return nil while the
// corresponding table has not been computed
type Record struct {
	def       *mat.Definition
	electrons *atom.ElectronicStructure

	absorption *CrossSection
	rayleighCS *CrossSection
	rayleighFF *FormFactor
	compton    map[phys.ComptonMode]*comptonTables
}

// comptonTables groups the per-mode Compton tables
type comptonTables struct {
	process *phys.Compton
	cs      *CrossSection
	cdf     *DistFunc
	icdf    *InverseDistFunc
}

// newRecord is the only constructor; the registry owns the result
func newRecord(def *mat.Definition) *Record {
	return &Record{
		def:       def,
		electrons: def.Electrons(),
		compton:   make(map[phys.ComptonMode]*comptonTables),
	}
}

// Definition returns the material definition
func (o *Record) Definition() *mat.Definition { return o.def }

// Electrons returns the aggregated electronic structure of the material
func (o *Record) Electrons() *atom.ElectronicStructure { return o.electrons }

// AbsorptionCrossSection returns the photoelectric cross-section table, or
// nil when not computed yet
func (o *Record) AbsorptionCrossSection() *CrossSection { return o.absorption }

// RayleighCrossSection returns the coherent scattering cross-section table,
// or nil when not computed yet
func (o *Record) RayleighCrossSection() *CrossSection { return o.rayleighCS }

// RayleighFormFactor returns the coherent scattering form-factor table, or
// nil when not computed yet
func (o *Record) RayleighFormFactor() *FormFactor { return o.rayleighFF }

// ComptonCrossSection returns the Compton cross-section table of the given
// mode, or nil when never computed for that mode
func (o *Record) ComptonCrossSection(mode phys.ComptonMode) *CrossSection {
	if t, ok := o.compton[mode]; ok {
		return t.cs
	}
	return nil
}

// ComptonCdf returns the Compton CDF table of the given mode, or nil when
// never requested for that mode
func (o *Record) ComptonCdf(mode phys.ComptonMode) *DistFunc {
	if t, ok := o.compton[mode]; ok {
		return t.cdf
	}
	return nil
}

// ComptonInverseCdf returns the Compton inverse-CDF table of the given
// mode, or nil when never requested for that mode
func (o *Record) ComptonInverseCdf(mode phys.ComptonMode) *InverseDistFunc {
	if t, ok := o.compton[mode]; ok {
		return t.icdf
	}
	return nil
}

// ComptonProcess returns the process configuration whose tables are cached
// for the given mode, or nil
func (o *Record) ComptonProcess(mode phys.ComptonMode) *phys.Compton {
	if t, ok := o.compton[mode]; ok {
		return t.process
	}
	return nil
}
