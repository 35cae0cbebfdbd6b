// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_atom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("atom01. lookup by atomic number")

	for z := 1; z <= MaxZ; z++ {
		e, err := ByAtomicNumber(z)
		if err != nil {
			tst.Errorf("lookup failed: %v\n", err)
			return
		}
		chk.IntAssert(e.Z, z)
		if e.A <= 0 {
			tst.Errorf("Z=%d: A=%g is not positive\n", z, e.A)
			return
		}
		if e.A == float64(e.Z) {
			tst.Errorf("Z=%d: A must differ from Z\n", z)
			return
		}
	}

	for _, z := range []int{0, 119, -1} {
		_, err := ByAtomicNumber(z)
		if err == nil {
			tst.Errorf("Z=%d must fail\n", z)
			return
		}
		chk.String(tst, err.Error()[:17], "bad atomic number")
	}
}

func Test_atom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("atom02. lookup by symbol")

	for _, symbol := range []string{"H", "C", "Fe", "U"} {
		e, err := BySymbol(symbol)
		if err != nil {
			tst.Errorf("lookup failed: %v\n", err)
			return
		}
		chk.String(tst, e.Symbol, symbol)
		if e.Name == "" {
			tst.Errorf("%s: empty name\n", symbol)
			return
		}

		// round trip through the atomic number
		r, err := ByAtomicNumber(e.Z)
		if err != nil {
			tst.Errorf("round trip failed: %v\n", err)
			return
		}
		chk.String(tst, r.Symbol, symbol)
		if r != e {
			tst.Errorf("%s: elements are not interned\n", symbol)
			return
		}
	}

	_, err := BySymbol("Zx")
	if err == nil {
		tst.Errorf("unknown symbol must fail\n")
		return
	}
	chk.String(tst, err.Error(), "no such atomic element 'Zx'")

	// equality is structural
	h0, _ := BySymbol("H")
	h1, _ := BySymbol("H")
	if h0 != h1 || *h0 != *h1 {
		tst.Errorf("H must compare equal to H\n")
		return
	}
}

func Test_atom03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("atom03. comma-separated lookup")

	elems, err := Elements("H, O")
	if err != nil {
		tst.Errorf("lookup failed: %v\n", err)
		return
	}
	chk.IntAssert(len(elems), 2)
	chk.String(tst, elems[0].Symbol, "H")
	chk.String(tst, elems[1].Symbol, "O")

	_, err = Elements("H, Zx")
	if err == nil {
		tst.Errorf("unknown symbol must fail\n")
		return
	}
}

func Test_shell01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell01. hydrogen")

	h, err := BySymbol("H")
	if err != nil {
		tst.Errorf("lookup failed: %v\n", err)
		return
	}
	e := h.Electrons()
	chk.Float64(tst, "charge", 1e-15, e.Charge, 1.0)
	chk.IntAssert(len(e.Shells), 1)
	chk.Float64(tst, "occupancy", 1e-15, e.Shells[0].Occupancy, 1.0)
	chk.Float64(tst, "energy", 1e-10, e.Shells[0].Energy, 13.6e-6)
}

func Test_shell02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell02. oxygen")

	o, err := BySymbol("O")
	if err != nil {
		tst.Errorf("lookup failed: %v\n", err)
		return
	}
	e := o.Electrons()
	chk.Float64(tst, "charge", 1e-15, e.Charge, 8.0)

	// 1s, 2s and the two relativistic components of 2p
	chk.IntAssert(len(e.Shells), 4)

	var occ float64
	for i, s := range e.Shells {
		occ += s.Occupancy
		if s.Energy <= 0 {
			tst.Errorf("shell %d: energy must be positive\n", i)
			return
		}
		if i > 0 && s.Energy > e.Shells[i-1].Energy {
			tst.Errorf("shells must be sorted by decreasing binding energy\n")
			return
		}
	}
	chk.Float64(tst, "total occupancy", 1e-15, occ, 8.0)

	// K shell first
	chk.Float64(tst, "K occupancy", 1e-15, e.Shells[0].Occupancy, 2.0)
	zeffK := 8.0 - 0.30
	chk.Float64(tst, "K energy", 1e-18, e.Shells[0].Energy, Rydberg*zeffK*zeffK)
}
