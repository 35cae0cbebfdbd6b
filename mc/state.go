// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mc implements the Monte Carlo engine that propagates photon
// states through a geometry using the material tables of matdb
package mc

import (
	"go-hep.org/x/hep/fmom"
)

// State is one photon sample of the transported phase space. It is mutated
// in place by the engine; Length accumulates the travelled path [cm]
type State struct {
	Energy    float64 // [MeV]
	Position  fmom.Vec3
	Direction fmom.Vec3 // unit vector
	Length    float64   // [cm]
	Weight    float64
}

// States allocates a batch of n states with default values: unit energy and
// weight, vertical direction, origin position
func States(n int) []State {
	states := make([]State, n)
	for i := range states {
		states[i] = State{
			Energy:    1,
			Direction: fmom.Vec3{0, 0, 1},
			Weight:    1,
		}
	}
	return states
}
