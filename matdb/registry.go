// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matdb

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/kvernet/goupil/mat"
	"github.com/kvernet/goupil/phys"
)

// Tabulation range and nominal resolutions. The number of grid points
// scales with the precision of the Compton process being tabulated
const (
	EnergyMin = 1e-3 // [MeV]
	EnergyMax = 1e2  // [MeV]

	nEnergies = 100 // nominal energy grid size (plus one)
	nRatios   = 150 // nominal ratio grid size (plus one)
)

// Registry owns material records and computes their tables. Table
// computation is an explicit, separable step (Compute); afterwards the
// registry and its records are read-only and may be shared by concurrent
// readers. Compute must not run concurrently with reads
type Registry struct {
	names   []string
	records map[string]*Record
}

// NewRegistry builds a registry over the given material definitions
func NewRegistry(defs ...*mat.Definition) (*Registry, error) {
	o := &Registry{records: make(map[string]*Record)}
	for _, def := range defs {
		if err := o.Add(def); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Add registers one more material. Registering the same name twice is
// allowed if the compositions are equal
func (o *Registry) Add(def *mat.Definition) error {
	if r, ok := o.records[def.Name()]; ok {
		if !r.def.Equal(def) {
			return chk.Err("material %q is already registered with a different composition", def.Name())
		}
		return nil
	}
	o.names = append(o.names, def.Name())
	o.records[def.Name()] = newRecord(def)
	return nil
}

// Materials returns the registered material names, in registration order
func (o *Registry) Materials() []string { return o.names }

// Get returns the record of the named material
func (o *Registry) Get(name string) (*Record, error) {
	r, ok := o.records[name]
	if !ok {
		return nil, chk.Err("material %q is not in the registry", name)
	}
	return r, nil
}

// Compute builds all tables for the registered materials and the given
// Compton processes. With no arguments the Direct and Adjoint cross sections
// are tabulated with the default configuration. Absorption and Rayleigh
// tables are always built; Compton CDF and inverse-CDF tables are built only
// for explicitly given processes that sample through them (Inverse Transform
// method, or Adjoint/Inverse modes). Already computed tables are kept as-is
func (o *Registry) Compute(processes ...*phys.Compton) error {
	withDist := len(processes) > 0
	if !withDist {
		adjoint := phys.DefaultCompton()
		adjoint.Mode = phys.Adjoint
		processes = []*phys.Compton{phys.DefaultCompton(), adjoint}
	}
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, name := range o.names {
		rec := o.records[name]
		if err := o.computeCommon(rec); err != nil {
			return err
		}
		for _, p := range processes {
			if err := o.computeCompton(rec, p, withDist); err != nil {
				return err
			}
		}
	}
	return nil
}

// computeCommon builds the absorption and Rayleigh tables of one record
func (o *Registry) computeCommon(rec *Record) error {
	energies := phys.EnergyGrid(EnergyMin, EnergyMax, nEnergies+1)
	if rec.absorption == nil {
		values, err := phys.AbsorptionCrossSections(energies, rec.def)
		if err != nil {
			return err
		}
		rec.absorption = &CrossSection{phys.AbsorptionProcess, rec, energies, values}
	}
	if rec.rayleighCS == nil {
		values, err := phys.RayleighCrossSections(energies, rec.def)
		if err != nil {
			return err
		}
		rec.rayleighCS = &CrossSection{phys.RayleighProcess, rec, energies, values}
	}
	if rec.rayleighFF == nil {
		qmax := 2 * EnergyMax / phys.ElectronMass
		q := phys.EnergyGrid(1e-6, qmax, nEnergies+1)
		q[0] = 0
		values := make([]float64, len(q))
		for i, qi := range q {
			values[i] = phys.FormFactorValue(qi, rec.def)
		}
		rec.rayleighFF = &FormFactor{phys.RayleighProcess, rec, q, values}
	}
	return nil
}

// computeCompton builds the per-mode Compton tables of one record
func (o *Registry) computeCompton(rec *Record, p *phys.Compton, withDist bool) error {
	t, ok := rec.compton[p.Mode]
	if !ok {
		t = &comptonTables{process: p}
		rec.compton[p.Mode] = t
	}

	ne := gridSize(nEnergies, p.Precision)
	energies := phys.EnergyGrid(EnergyMin, EnergyMax, ne)

	if t.cs == nil {
		values, err := p.CrossSections(energies, rec.def)
		if err != nil {
			return err
		}
		t.cs = &CrossSection{p.Process(), rec, energies, values}
	}

	needDist := withDist && (p.Method == phys.InverseTransform || p.Mode != phys.Direct)
	if !needDist || t.cdf != nil {
		return nil
	}

	nx := gridSize(nRatios, p.Precision)
	x := make([][]float64, len(energies))
	f := make([][]float64, len(energies))
	for i, e := range energies {
		x[i], f[i] = distRow(p, rec.def, e, nx)
	}
	t.cdf = &DistFunc{p.Process(), rec, energies, x, f}
	t.icdf = invert(t.cdf, nx)
	return nil
}

// gridSize scales a nominal grid size by the process precision
func gridSize(nominal int, precision float64) int {
	n := int(float64(nominal) * precision)
	if n < 10 {
		n = 10
	}
	return n + 1
}

// distRow tabulates the normalized CDF of the energy-ratio distribution at
// one energy. In Direct mode the ratio is outgoing over incoming energy; in
// Adjoint and Inverse modes the grid point is the outgoing energy and the
// ratio maps to the incoming one, with the phase-space Jacobian included
func distRow(p *phys.Compton, def *mat.Definition, energy float64, nx int) (x, f []float64) {
	var xlo float64
	if p.Mode == phys.Direct {
		xlo = phys.RatioMin(energy)
	} else {
		xlo = energy / EnergyMax
		if xlo >= 1 {
			xlo = 0.99
		}
	}
	x = utl.LinSpace(xlo, 1, nx)
	pdf := make([]float64, nx)
	for j, xj := range x {
		if p.Mode == phys.Direct {
			pdf[j] = p.DCSRatio(energy, xj, def)
		} else {
			ein := energy / xj
			pdf[j] = p.DCSRatio(ein, xj, def) / (xj * xj)
		}
	}
	f = make([]float64, nx)
	for j := 1; j < nx; j++ {
		f[j] = f[j-1] + 0.5*(pdf[j]+pdf[j-1])*(x[j]-x[j-1])
	}
	norm := f[nx-1]
	if norm <= 0 {
		for j := range f {
			f[j] = float64(j) / float64(nx-1)
		}
		return
	}
	for j := range f {
		f[j] /= norm
	}
	f[nx-1] = 1
	return
}

// invert builds the inverse-CDF table of a DistFunc on a uniform grid
func invert(cdf *DistFunc, nu int) *InverseDistFunc {
	u := utl.LinSpace(0, 1, nu)
	x := make([][]float64, len(cdf.e))
	for i := range cdf.e {
		xi, fi := cdf.x[i], cdf.f[i]
		row := make([]float64, nu)
		k := 0
		for j, uj := range u {
			for k < len(fi)-2 && fi[k+1] < uj {
				k++
			}
			df := fi[k+1] - fi[k]
			if df <= 0 {
				row[j] = xi[k]
				continue
			}
			row[j] = xi[k] + (xi[k+1]-xi[k])*(uj-fi[k])/df
		}
		row[0] = xi[0]
		row[nu-1] = xi[len(xi)-1]
		x[i] = row
	}
	return &InverseDistFunc{cdf.process, cdf.rec, cdf.e, u, x}
}
