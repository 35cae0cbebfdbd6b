// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package atom provides atomic elements data and derived electronic structures
package atom

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// MaxZ is the largest tabulated atomic number
const MaxZ = 118

// Element holds the data of one atomic element. Elements are interned by
// atomic number; ByAtomicNumber and BySymbol always return pointers into the
// internal table, thus repeated lookups are cheap and comparable
type Element struct {
	Z      int     // atomic number
	A      float64 // mean atomic mass [g/mol]
	Name   string  // element name; e.g. "Hydrogen"
	Symbol string  // chemical symbol; e.g. "H"
}

// String returns the chemical symbol
func (o *Element) String() string {
	return o.Symbol
}

// ByAtomicNumber returns the element with atomic number z
func ByAtomicNumber(z int) (*Element, error) {
	if z < 1 || z > MaxZ {
		return nil, chk.Err("bad atomic number (expected a value in [1, %d], found %d)", MaxZ, z)
	}
	return &elements[z-1], nil
}

// BySymbol returns the element with the given (case-sensitive) chemical symbol
func BySymbol(symbol string) (*Element, error) {
	e, ok := bySymbol[symbol]
	if !ok {
		return nil, chk.Err("no such atomic element '%s'", symbol)
	}
	return e, nil
}

// Elements resolves a comma-separated list of chemical symbols; e.g. "H, O"
func Elements(symbols string) ([]*Element, error) {
	var res []*Element
	for _, tok := range strings.Split(symbols, ",") {
		e, err := BySymbol(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

// bySymbol maps chemical symbols to interned elements
var bySymbol map[string]*Element

func init() {
	bySymbol = make(map[string]*Element, MaxZ)
	for i := range elements {
		bySymbol[elements[i].Symbol] = &elements[i]
	}
}
