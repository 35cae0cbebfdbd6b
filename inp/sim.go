// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/kvernet/goupil/geo"
	"github.com/kvernet/goupil/mat"
	"github.com/kvernet/goupil/mc"
	"github.com/kvernet/goupil/phys"
)

// MatData declares one material. Exactly one of Formula, Mole or Mass must
// be given; Name is required for Mole and Mass compositions and defaults to
// the formula otherwise
type MatData struct {
	Name    string     `json:"name"`    // material name; e.g. "Water"
	Formula string     `json:"formula"` // chemical formula; e.g. "H2O"
	Mole    []MoleData `json:"mole"`    // explicit mole composition
	Mass    []MassData `json:"mass"`    // mass-weighted mixture of previously declared materials
}

// MoleData is one entry of a declarative mole composition
type MoleData struct {
	Coef   float64 `json:"coef"`   // relative mole count
	Symbol string  `json:"symbol"` // chemical symbol; e.g. "O"
}

// MassData is one entry of a declarative mass composition
type MassData struct {
	Frac     float64 `json:"frac"`     // mass fraction
	Material string  `json:"material"` // name of a previously declared material
}

// GeoData declares the geometry
type GeoData struct {
	Kind string `json:"kind"` // "slab" or "topography"

	// slab
	Material  string  `json:"material"`  // slab material name
	Thickness float64 `json:"thickness"` // slab thickness [cm]
	Density   float64 `json:"density"`   // slab density [g/cm^3]; 0 => 1

	// topography
	XRange        [2]float64  `json:"xrange"`        // x bounds [cm]
	YRange        [2]float64  `json:"yrange"`        // y bounds [cm]
	Shape         [2]int      `json:"shape"`         // (ny, nx) grid shape
	Elevation     [][]float64 `json:"elevation"`     // elevation grid; nil => flat
	Ground        string      `json:"ground"`        // ground material name
	Atmosphere    string      `json:"atmosphere"`    // atmosphere material name
	GroundDensity float64     `json:"grounddensity"` // [g/cm^3]
	AirDensity    float64     `json:"airdensity"`    // [g/cm^3]
}

// ComptonData declares the Compton sampling configuration; zero values keep
// the defaults
type ComptonData struct {
	Method    string  `json:"method"`    // "Rejection Sampling" or "Inverse Transform"
	Mode      string  `json:"mode"`      // "Direct", "Adjoint" or "Inverse"
	Model     string  `json:"model"`     // "Scattering Function", "Klein-Nishina" or "Penelope"
	Precision float64 `json:"precision"` // table resolution scaling; 0 => 1
}

// TransportData declares the transport settings; zero values keep the
// defaults
type TransportData struct {
	Mode      string       `json:"mode"`      // "Forward" or "Backward"
	EnergyMin float64      `json:"energymin"` // [MeV]
	EnergyMax float64      `json:"energymax"` // [MeV]
	LengthMax float64      `json:"lengthmax"` // [cm]
	StepLimit int          `json:"steplimit"` // max interactions per state
	Rayleigh  *bool        `json:"rayleigh"`  // enable coherent scattering
	Seed      int64        `json:"seed"`      // random stream base
	Compton   *ComptonData `json:"compton"`   // collision sampling
}

// Simulation holds one transport run read from a .sim JSON file
type Simulation struct {

	// input data
	Desc      string        `json:"desc"`      // description of simulation
	Materials []MatData     `json:"materials"` // declared materials
	Geometry  GeoData       `json:"geometry"`  // geometry declaration
	Transport TransportData `json:"transport"` // transport settings
	Particles int           `json:"particles"` // batch size; 0 => 1000
	Energy    float64       `json:"energy"`    // initial energy [MeV]; 0 => 1

	// derived
	defs  map[string]*mat.Definition
	order []string
}

// ReadSim reads a simulation from a .sim JSON file. Unknown keys are
// rejected, realizing the configuration boundary contract at the file level
func ReadSim(simfilepath string) (*Simulation, error) {
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q: %v", simfilepath, err)
	}
	var o Simulation
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&o); err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q: %v", simfilepath, err)
	}
	if err := o.resolveMaterials(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Material returns a declared material by name
func (o *Simulation) Material(name string) (*mat.Definition, error) {
	def, ok := o.defs[name]
	if !ok {
		return nil, chk.Err("material %q is not declared", name)
	}
	return def, nil
}

// MaterialNames returns the declared material names, in declaration order
func (o *Simulation) MaterialNames() []string { return o.order }

// resolveMaterials builds the declared material definitions. Mass mixtures
// may only reference materials declared before them
func (o *Simulation) resolveMaterials() error {
	o.defs = make(map[string]*mat.Definition)
	for _, m := range o.Materials {
		var def *mat.Definition
		var err error
		switch {
		case m.Formula != "" && m.Mole == nil && m.Mass == nil:
			def, err = mat.FromFormula(m.Formula)
		case m.Mole != nil && m.Formula == "" && m.Mass == nil:
			if m.Name == "" {
				return chk.Err("mole composition without a name")
			}
			comp := make([]mat.Mole, len(m.Mole))
			for i, e := range m.Mole {
				comp[i] = mat.Mole{Coef: e.Coef, Symbol: e.Symbol}
			}
			def, err = mat.FromMole(m.Name, comp)
		case m.Mass != nil && m.Formula == "" && m.Mole == nil:
			if m.Name == "" {
				return chk.Err("mass composition without a name")
			}
			comp := make([]mat.Mass, len(m.Mass))
			for i, e := range m.Mass {
				sub, ok := o.defs[e.Material]
				if !ok {
					return chk.Err("material %q: sub-material %q is not declared", m.Name, e.Material)
				}
				comp[i] = mat.Mass{Frac: e.Frac, Mat: sub}
			}
			def, err = mat.FromMass(m.Name, comp)
		default:
			return chk.Err("material %q: expected exactly one of formula, mole or mass", m.Name)
		}
		if err != nil {
			return err
		}
		if _, ok := o.defs[def.Name()]; ok {
			return chk.Err("material %q is declared twice", def.Name())
		}
		o.defs[def.Name()] = def
		o.order = append(o.order, def.Name())
	}
	return nil
}

// MakeGeometry builds the declared geometry
func (o *Simulation) MakeGeometry() (geo.Geometry, error) {
	switch o.Geometry.Kind {
	case "slab":
		m, err := o.Material(o.Geometry.Material)
		if err != nil {
			return nil, err
		}
		g, err := geo.NewSimple(m, o.Geometry.Thickness)
		if err != nil {
			return nil, err
		}
		if o.Geometry.Density > 0 {
			if err := g.SetDensity(o.Geometry.Density); err != nil {
				return nil, err
			}
		}
		return g, nil
	case "topography":
		ground, err := o.Material(o.Geometry.Ground)
		if err != nil {
			return nil, err
		}
		air, err := o.Material(o.Geometry.Atmosphere)
		if err != nil {
			return nil, err
		}
		m, err := geo.NewTopographyMap(o.Geometry.XRange, o.Geometry.YRange, o.Geometry.Elevation, o.Geometry.Shape)
		if err != nil {
			return nil, err
		}
		return geo.NewTopography(m, ground, air, o.Geometry.GroundDensity, o.Geometry.AirDensity)
	}
	return nil, chk.Err("bad geometry kind (expected 'slab' or 'topography', found %q)", o.Geometry.Kind)
}

// MakeEngine builds a transport engine over the declared geometry, with the
// declared settings applied
func (o *Simulation) MakeEngine() (*mc.Engine, error) {
	g, err := o.MakeGeometry()
	if err != nil {
		return nil, err
	}
	engine, err := mc.NewEngine(g)
	if err != nil {
		return nil, err
	}
	set := engine.Settings()
	t := o.Transport
	if t.Compton != nil {
		options := make(map[string]interface{})
		if t.Compton.Method != "" {
			options["method"] = t.Compton.Method
		}
		if t.Compton.Mode != "" {
			options["mode"] = t.Compton.Mode
		}
		if t.Compton.Model != "" {
			options["model"] = t.Compton.Model
		}
		if t.Compton.Precision != 0 {
			options["precision"] = t.Compton.Precision
		}
		p, err := phys.NewCompton(options)
		if err != nil {
			return nil, err
		}
		set.Compton = p
	}
	if t.Mode != "" {
		m, err := mc.ParseMode(t.Mode)
		if err != nil {
			return nil, err
		}
		set.SetMode(m)
	}
	if t.EnergyMin > 0 {
		set.EnergyMin = t.EnergyMin
	}
	if t.EnergyMax > 0 {
		set.EnergyMax = t.EnergyMax
	}
	if t.LengthMax > 0 {
		set.LengthMax = t.LengthMax
	}
	if t.StepLimit > 0 {
		set.StepLimit = t.StepLimit
	}
	if t.Rayleigh != nil {
		set.Rayleigh = *t.Rayleigh
	}
	set.Seed = t.Seed
	return engine, nil
}

// MakeStates allocates the initial batch of the simulation
func (o *Simulation) MakeStates() []mc.State {
	n := o.Particles
	if n == 0 {
		n = 1000
	}
	states := mc.States(n)
	if o.Energy > 0 {
		for i := range states {
			states[i].Energy = o.Energy
		}
	}
	return states
}
