// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"go-hep.org/x/hep/fmom"
	"github.com/kvernet/goupil/geo"
	"github.com/kvernet/goupil/matdb"
	"github.com/kvernet/goupil/phys"
)

// Engine transports photon states through a geometry. It owns a material
// registry covering every sector of the geometry; tables are built by
// Compile, or on demand by the first Transport call
type Engine struct {
	geometry geo.Geometry
	registry *matdb.Registry
	settings *Settings
	compiled map[phys.ComptonMode]bool
}

// NewEngine builds an engine over the given geometry, registering the
// materials of all its sectors. No table is computed yet: call Compile, or
// let the first Transport call compile both transport directions
func NewEngine(g geo.Geometry) (*Engine, error) {
	sectors := g.Sectors()
	if len(sectors) == 0 {
		return nil, chk.Err("geometry without sectors")
	}
	registry, err := matdb.NewRegistry()
	if err != nil {
		return nil, err
	}
	for _, sector := range sectors {
		if err := registry.Add(sector.Material); err != nil {
			return nil, err
		}
	}
	return &Engine{
		geometry: g,
		registry: registry,
		settings: DefaultSettings(),
		compiled: make(map[phys.ComptonMode]bool),
	}, nil
}

// Geometry returns the transported geometry
func (o *Engine) Geometry() geo.Geometry { return o.geometry }

// Registry returns the engine's material registry, for introspection. The
// registry must not be recomputed concurrently with Transport calls
func (o *Engine) Registry() *matdb.Registry { return o.registry }

// Settings returns the transport settings. Mutations take effect on the
// next Transport call; changing the Compton configuration after Compile
// requires compiling again
func (o *Engine) Settings() *Settings { return o.settings }

// Compile computes the material tables for the requested transport
// direction: "Forward" (Direct Compton kinematics), "Backward" (Adjoint),
// "Both", or "All" (additionally the Inverse kinematics)
func (o *Engine) Compile(mode string) error {
	var modes []phys.ComptonMode
	switch mode {
	case "Forward":
		modes = []phys.ComptonMode{phys.Direct}
	case "Backward":
		modes = []phys.ComptonMode{phys.Adjoint}
	case "Both":
		modes = []phys.ComptonMode{phys.Direct, phys.Adjoint}
	case "All":
		modes = []phys.ComptonMode{phys.Direct, phys.Adjoint, phys.Inverse}
	default:
		return chk.Err("bad mode (expected 'All', 'Backward', 'Both' or 'Forward', found %q)", mode)
	}
	processes := make([]*phys.Compton, len(modes))
	for i, m := range modes {
		p := *o.settings.Compton
		p.Mode = m
		if m == phys.Inverse {
			p.Method = phys.InverseTransform
		}
		processes[i] = &p
	}
	if err := o.registry.Compute(processes...); err != nil {
		return err
	}
	for _, m := range modes {
		o.compiled[m] = true
	}
	return nil
}

// Transport steps every state of the batch through the geometry until a
// terminal condition, mutating the states in place, and returns one status
// per state. States are independent: the outcome of a state does not depend
// on the other states of the batch nor on their order
func (o *Engine) Transport(states []State) ([]Status, error) {
	mode := o.settings.Compton.Mode
	if !o.compiled[mode] {
		if err := o.Compile("Both"); err != nil {
			return nil, err
		}
	}
	if !o.compiled[mode] {
		return nil, chk.Err("tables for the %v kinematics are not compiled", mode)
	}
	statuses := make([]Status, len(states))
	nw := runtime.NumCPU()
	if nw > len(states) {
		nw = len(states)
	}
	if nw < 1 {
		nw = 1
	}
	var wg sync.WaitGroup
	chunk := (len(states) + nw - 1) / nw
	for w := 0; w < nw; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(states) {
			hi = len(states)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				rng := rand.New(rand.NewSource(o.settings.Seed ^ streamKey(i)))
				statuses[i] = o.track(rng, &states[i])
			}
		}(lo, hi)
	}
	wg.Wait()
	return statuses, nil
}

// streamKey spreads state indices over the seed space so that neighbouring
// states get decorrelated random streams
func streamKey(i int) int64 {
	z := uint64(i+1) * 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	return int64(z ^ (z >> 27))
}

// track advances one state to its terminal condition
func (o *Engine) track(rng *rand.Rand, s *State) Status {
	set := o.settings
	mode := set.Compton.Mode
	for step := 0; step < set.StepLimit; step++ {
		sector := o.geometry.Locate(s.Position)
		if sector < 0 {
			return StatusExited
		}
		if set.EnergyMin > 0 && s.Energy <= set.EnergyMin {
			return StatusEnergyMin
		}
		if set.EnergyMax > 0 && s.Energy >= set.EnergyMax {
			return StatusEnergyMax
		}
		medium := o.geometry.Sectors()[sector]
		record, err := o.registry.Get(medium.Material.Name())
		if err != nil {
			return StatusError
		}

		// macroscopic cross sections [1/cm]
		density := medium.Density * phys.Avogadro / medium.Material.Mass()
		sa := record.AbsorptionCrossSection().At(s.Energy)
		sc := record.ComptonCrossSection(mode).At(s.Energy)
		sr := 0.0
		if set.Rayleigh {
			sr = record.RayleighCrossSection().At(s.Energy)
		}
		mu := density * (sa + sc + sr)

		// free flight against the nearest boundary
		flight := geo.Far
		if mu > 0 {
			flight = -math.Log(1-rng.Float64()) / mu
		}
		boundary := o.geometry.Trace(s.Position, s.Direction)
		if boundary <= flight {
			// nudge across so that Locate lands in the next sector
			if status, done := o.advance(s, boundary+1e-7*(1+boundary)); done {
				return status
			}
			continue
		}
		if status, done := o.advance(s, flight); done {
			return status
		}

		// competing processes share the collision by cross section
		u := rng.Float64() * (sa + sc + sr)
		switch {
		case u < sa:
			return StatusAbsorbed
		case u < sa+sc:
			if !o.compton(rng, s, record, mode) {
				return StatusError
			}
		default:
			ff := record.RayleighFormFactor()
			if ff == nil {
				return StatusError
			}
			cosTheta, err := ff.SampleCosTheta(rng, s.Energy)
			if err != nil {
				return StatusError
			}
			s.Direction = deflect(s.Direction, cosTheta, 2*math.Pi*rng.Float64())
		}
	}
	return StatusStepLimit
}

// advance moves the state by the given distance, clipping at the path
// length cutoff
func (o *Engine) advance(s *State, dist float64) (Status, bool) {
	if max := o.settings.LengthMax; max > 0 && s.Length+dist >= max {
		dist = max - s.Length
		o.move(s, dist)
		return StatusLengthMax, true
	}
	o.move(s, dist)
	return 0, false
}

func (o *Engine) move(s *State, dist float64) {
	for i := 0; i < 3; i++ {
		s.Position[i] += dist * s.Direction[i]
	}
	s.Length += dist
}

// compton applies one Compton collision to the state. In Direct kinematics
// the energy transfer is sampled either by rejection or from the inverse
// CDF table; in Adjoint and Inverse kinematics the collision runs the
// kinematics backward from the table, weighting the state by the
// reciprocity factor (E_in/E_out)^2
func (o *Engine) compton(rng *rand.Rand, s *State, record *matdb.Record, mode phys.ComptonMode) bool {
	var ratio, cosTheta float64
	switch mode {
	case phys.Direct:
		if o.settings.Compton.Method == phys.RejectionSampling {
			x, err := o.settings.Compton.SampleRatio(rng, s.Energy, record.Electrons())
			if err != nil {
				return false
			}
			ratio = x
		} else {
			icdf := record.ComptonInverseCdf(mode)
			if icdf == nil {
				return false
			}
			ratio = icdf.At(s.Energy, rng.Float64())
		}
		cosTheta = phys.CosTheta(s.Energy, ratio)
		s.Energy *= ratio
	default:
		// the state carries the outgoing energy; sample the incoming one
		icdf := record.ComptonInverseCdf(mode)
		if icdf == nil {
			return false
		}
		y := icdf.At(s.Energy, rng.Float64())
		if y <= 0 || y > 1 {
			return false
		}
		in := s.Energy / y
		cosTheta = phys.CosTheta(in, y)
		s.Weight /= y * y
		s.Energy = in
	}
	s.Direction = deflect(s.Direction, cosTheta, 2*math.Pi*rng.Float64())
	return true
}

// deflect rotates a unit direction by the polar angle acos(cosTheta) around
// a uniformly distributed azimuth phi
func deflect(dir fmom.Vec3, cosTheta, phi float64) fmom.Vec3 {
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	// orthonormal frame (u, v, dir)
	u := fmom.Vec3{1, 0, 0}
	if math.Abs(dir[0]) > 0.5 {
		u = fmom.Vec3{0, 1, 0}
	}
	dot := u[0]*dir[0] + u[1]*dir[1] + u[2]*dir[2]
	for i := 0; i < 3; i++ {
		u[i] -= dot * dir[i]
	}
	norm := math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
	for i := 0; i < 3; i++ {
		u[i] /= norm
	}
	v := fmom.Vec3{
		dir[1]*u[2] - dir[2]*u[1],
		dir[2]*u[0] - dir[0]*u[2],
		dir[0]*u[1] - dir[1]*u[0],
	}

	cp, sp := math.Cos(phi), math.Sin(phi)
	var res fmom.Vec3
	for i := 0; i < 3; i++ {
		res[i] = cosTheta*dir[i] + sinTheta*(cp*u[i]+sp*v[i])
	}
	norm = math.Sqrt(res[0]*res[0] + res[1]*res[1] + res[2]*res[2])
	for i := 0; i < 3; i++ {
		res[i] /= norm
	}
	return res
}
