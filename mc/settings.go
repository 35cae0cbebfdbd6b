// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/kvernet/goupil/matdb"
	"github.com/kvernet/goupil/phys"
)

// Mode is the direction the transport runs in: Forward follows physical
// time; Backward runs the adjoint problem from the observation point
type Mode int

const (
	Forward Mode = iota
	Backward
)

func (o Mode) String() string {
	if o == Backward {
		return "Backward"
	}
	return "Forward"
}

// ParseMode resolves a transport mode from its name
func ParseMode(s string) (Mode, error) {
	switch s {
	case "Forward":
		return Forward, nil
	case "Backward":
		return Backward, nil
	}
	return 0, chk.Err("bad mode (expected 'Backward' or 'Forward', found %q)", s)
}

// Settings collects the transport parameters of an engine. The Compton
// configuration and the transport mode are coupled: use SetMode and
// SetComptonMode to keep them consistent
type Settings struct {
	Mode    Mode
	Compton *phys.Compton

	EnergyMin float64 // [MeV] cutoff, 0 disables
	EnergyMax float64 // [MeV] cutoff, 0 disables
	LengthMax float64 // [cm] cutoff, 0 disables
	StepLimit int     // maximum number of interactions per state
	Rayleigh  bool    // enable coherent scattering
	Seed      int64   // base of the per-state random streams
}

// DefaultSettings returns forward transport with the default Compton
// configuration and cutoffs at the table bounds
func DefaultSettings() *Settings {
	return &Settings{
		Mode:      Forward,
		Compton:   phys.DefaultCompton(),
		EnergyMin: matdb.EnergyMin,
		EnergyMax: matdb.EnergyMax,
		StepLimit: 1000,
		Rayleigh:  true,
	}
}

// SetMode switches the transport direction and realigns the Compton mode:
// Backward promotes a Direct Compton mode to Adjoint; Forward demotes
// Adjoint or Inverse to Direct
func (o *Settings) SetMode(m Mode) {
	o.Mode = m
	switch m {
	case Backward:
		if o.Compton.Mode == phys.Direct {
			o.Compton.Mode = phys.Adjoint
		}
	case Forward:
		if o.Compton.Mode != phys.Direct {
			o.Compton.Mode = phys.Direct
		}
	}
}

// SetComptonMode switches the Compton kinematics and realigns the rest of
// the configuration: the Inverse mode forces the Inverse Transform sampling
// method, and the transport direction follows the kinematics
func (o *Settings) SetComptonMode(mode phys.ComptonMode) {
	o.Compton.Mode = mode
	switch mode {
	case phys.Inverse:
		o.Compton.Method = phys.InverseTransform
	case phys.Adjoint:
		o.Mode = Backward
	case phys.Direct:
		o.Mode = Forward
	}
}
