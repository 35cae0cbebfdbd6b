// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

import "sort"

// Rydberg is the hydrogen ground-state binding energy [MeV]
const Rydberg = 13.6e-6

// alpha2 is the squared fine-structure constant
const alpha2 = 7.2973525693e-3 * 7.2973525693e-3

// Shell holds one electronic (sub)shell of an element or of a compound
type Shell struct {
	Occupancy float64 // number of electrons in the shell
	Energy    float64 // binding energy [MeV]
}

// ElectronicStructure holds the shell model of an isolated atom or of a
// compound material. Shells are sorted by decreasing binding energy; thus
// shell 0 is the innermost (K) shell
type ElectronicStructure struct {
	Charge float64 // total number of bound electrons
	Shells []Shell
}

// fillOrder lists the (n, l) subshells in Madelung filling order
var fillOrder = [19][2]int{
	{1, 0}, {2, 0}, {2, 1}, {3, 0}, {3, 1}, {4, 0}, {3, 2}, {4, 1}, {5, 0},
	{4, 2}, {5, 1}, {6, 0}, {4, 3}, {5, 2}, {6, 1}, {7, 0}, {5, 3}, {6, 2},
	{7, 1},
}

// subshell is one relativistic (n, l, j) subshell during structure assembly
type subshell struct {
	n, l int
	j2   int // twice the total angular momentum
	occ  float64
}

// Electrons computes the electronic structure of the isolated atom from
// standard shell-filling rules. Subshells are filled in Madelung order, with
// l > 0 subshells split into their two relativistic components (j = l -+ 1/2,
// the lower j being more bound). Binding energies follow a Slater-screened
// hydrogenic model
func (o *Element) Electrons() *ElectronicStructure {
	subs := fill(o.Z)
	res := &ElectronicStructure{Charge: float64(o.Z)}
	for i := range subs {
		res.Shells = append(res.Shells, Shell{
			Occupancy: subs[i].occ,
			Energy:    bindingEnergy(subs, i),
		})
	}
	sort.SliceStable(res.Shells, func(a, b int) bool {
		return res.Shells[a].Energy > res.Shells[b].Energy
	})
	return res
}

// fill distributes z electrons over (n, l, j) subshells
func fill(z int) (subs []subshell) {
	left := z
	for _, nl := range fillOrder {
		if left == 0 {
			return
		}
		n, l := nl[0], nl[1]
		if l == 0 {
			m := min(left, 2)
			subs = append(subs, subshell{n, l, 1, float64(m)})
			left -= m
			continue
		}
		// j = l - 1/2 first: it holds 2l electrons
		m := min(left, 2*l)
		subs = append(subs, subshell{n, l, 2*l - 1, float64(m)})
		left -= m
		if left == 0 {
			return
		}
		m = min(left, 2*l+2)
		subs = append(subs, subshell{n, l, 2*l + 1, float64(m)})
		left -= m
	}
	return
}

// slaterKey orders subshells as in Slater's grouping: by principal number,
// with d and f states after the (s, p) group of the same n
func slaterKey(s subshell) int {
	switch {
	case s.l <= 1:
		return 10 * s.n
	case s.l == 2:
		return 10*s.n + 1
	}
	return 10*s.n + 2
}

// zeff computes the effective charge seen by an electron of subshell i,
// using Slater's screening constants. The (2s, 2p)-style groups see 0.35 per
// companion electron (0.30 within 1s), 0.85 per electron one shell below and
// 1.0 per deeper electron; d and f states see 1.0 from every lower group
func zeff(z int, subs []subshell, i int) float64 {
	me := subs[i]
	key := slaterKey(me)
	var shield float64
	for k := range subs {
		occ := subs[k].occ
		switch {
		case slaterKey(subs[k]) == key:
			f := 0.35
			if me.n == 1 {
				f = 0.30
			}
			if k == i {
				occ -= 1.0
			}
			shield += f * occ
		case slaterKey(subs[k]) > key:
			// outer electrons do not screen
		case me.l <= 1 && subs[k].n == me.n-1:
			shield += 0.85 * occ
		default:
			shield += occ
		}
	}
	return float64(z) - shield
}

// bindingEnergy evaluates the screened hydrogenic binding energy of subshell
// i, with a fine-structure split of the two relativistic components of l > 0
// subshells. The j = l - 1/2 component is the more bound one
func bindingEnergy(subs []subshell, i int) float64 {
	var z int
	for k := range subs {
		z += int(subs[k].occ + 0.5)
	}
	s := subs[i]
	zf := zeff(z, subs, i)
	r := zf / float64(s.n)
	e := Rydberg * r * r
	if s.l > 0 {
		split := alpha2 * zf * zf / (2 * float64(s.n*s.n))
		if s.j2 == 2*s.l-1 {
			e *= 1 + split
		} else {
			e *= 1 - split
		}
	}
	return e
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
