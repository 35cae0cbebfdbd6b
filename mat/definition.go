// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements material definitions and composition mixing rules
package mat

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/kvernet/goupil/atom"
)

// Component is one entry of a resolved mole composition
type Component struct {
	Coef float64       // relative mole count
	Elem *atom.Element // constituent element
}

// Mole is one entry of a declarative mole composition
type Mole struct {
	Coef   float64 // relative mole count
	Symbol string  // chemical symbol; e.g. "O"
}

// Mass is one entry of a declarative mass composition
type Mass struct {
	Frac float64     // mass fraction (weights are renormalized)
	Mat  *Definition // sub-material
}

// Definition holds a material composition, resolved to a canonical ordered
// sequence of (coefficient, element) pairs. A Definition is immutable after
// construction; the zero value is the empty material (no composition,
// zero molar mass)
type Definition struct {
	name string
	comp []Component
	mass float64
}

// Name returns the material name
func (o *Definition) Name() string { return o.name }

// Mass returns the total molar mass [g/mol]
func (o *Definition) Mass() float64 { return o.mass }

// MoleComposition returns the resolved mole composition. The returned slice
// is owned by the definition and must not be modified
func (o *Definition) MoleComposition() []Component { return o.comp }

// Equal reports whether two definitions resolve to the same composition
func (o *Definition) Equal(other *Definition) bool {
	if len(o.comp) != len(other.comp) {
		return false
	}
	for i := range o.comp {
		if o.comp[i].Elem != other.comp[i].Elem || o.comp[i].Coef != other.comp[i].Coef {
			return false
		}
	}
	return true
}

// FromFormula builds a material from a chemical formula; e.g. "H2O". The
// material name is the formula itself
func FromFormula(formula string) (*Definition, error) {
	comp, err := parseFormula(formula)
	if err != nil {
		return nil, err
	}
	o := &Definition{name: formula}
	o.resolve(comp)
	return o, nil
}

// FromMole builds a material from an explicit mole composition. Entries with
// the same element are merged by summing their coefficients
func FromMole(name string, comp []Mole) (*Definition, error) {
	var res []Component
	for _, m := range comp {
		e, err := atom.BySymbol(m.Symbol)
		if err != nil {
			return nil, err
		}
		res = append(res, Component{m.Coef, e})
	}
	o := &Definition{name: name}
	o.resolve(res)
	return o, nil
}

// FromMass builds a material as a mass-weighted mixture of other materials.
// Each sub-material contributes mole counts proportional to its mass
// fraction divided by its molar mass; the merged composition is then
// normalized by its smallest coefficient, so that a mixture of materials
// with identical compositions reproduces that composition exactly
func FromMass(name string, comp []Mass) (*Definition, error) {
	var res []Component
	for _, m := range comp {
		if m.Mat == nil {
			return nil, chk.Err("material %q: nil sub-material in mass composition", name)
		}
		if m.Mat.mass <= 0 {
			return nil, chk.Err("material %q: sub-material %q has no mass", name, m.Mat.name)
		}
		q := m.Frac / m.Mat.mass
		for _, c := range m.Mat.comp {
			res = append(res, Component{q * c.Coef, c.Elem})
		}
	}
	o := &Definition{name: name}
	o.resolve(res)
	if len(o.comp) > 0 {
		cmin := o.comp[0].Coef
		for _, c := range o.comp {
			if c.Coef < cmin {
				cmin = c.Coef
			}
		}
		for i := range o.comp {
			o.comp[i].Coef /= cmin
		}
		o.computeMass()
	}
	return o, nil
}

// resolve merges duplicated elements and computes the molar mass. The
// canonical order is by first appearance
func (o *Definition) resolve(comp []Component) {
	idx := make(map[*atom.Element]int)
	for _, c := range comp {
		if c.Coef == 0 {
			continue
		}
		if i, ok := idx[c.Elem]; ok {
			o.comp[i].Coef += c.Coef
			continue
		}
		idx[c.Elem] = len(o.comp)
		o.comp = append(o.comp, c)
	}
	o.computeMass()
}

func (o *Definition) computeMass() {
	o.mass = 0
	for _, c := range o.comp {
		o.mass += c.Coef * c.Elem.A
	}
}

// Electrons aggregates the electronic structures of all constituents,
// weighted by their mole coefficients. Shells with exactly equal binding
// energies are merged; the result is sorted by decreasing binding energy
func (o *Definition) Electrons() *atom.ElectronicStructure {
	res := new(atom.ElectronicStructure)
	byEnergy := make(map[float64]int)
	for _, c := range o.comp {
		es := c.Elem.Electrons()
		res.Charge += c.Coef * es.Charge
		for _, s := range es.Shells {
			if i, ok := byEnergy[s.Energy]; ok {
				res.Shells[i].Occupancy += c.Coef * s.Occupancy
				continue
			}
			byEnergy[s.Energy] = len(res.Shells)
			res.Shells = append(res.Shells, atom.Shell{
				Occupancy: c.Coef * s.Occupancy,
				Energy:    s.Energy,
			})
		}
	}
	sort.SliceStable(res.Shells, func(a, b int) bool {
		return res.Shells[a].Energy > res.Shells[b].Energy
	})
	return res
}
