// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/kvernet/goupil/atom"
)

// parseFormula expands a chemical formula such as "H2O" or "SiO2" into
// elemental mole counts. A symbol is an upper-case letter followed by any
// lower-case letters; an optional integer count follows each symbol
func parseFormula(formula string) ([]Component, error) {
	var res []Component
	i, n := 0, len(formula)
	for i < n {
		c := formula[i]
		if c < 'A' || c > 'Z' {
			return nil, chk.Err("bad chemical formula %q (unexpected character %q)", formula, string(c))
		}
		j := i + 1
		for j < n && formula[j] >= 'a' && formula[j] <= 'z' {
			j++
		}
		symbol := formula[i:j]
		i = j
		for j < n && formula[j] >= '0' && formula[j] <= '9' {
			j++
		}
		coef := 1.0
		if j > i {
			coef = float64(io.Atoi(formula[i:j]))
			if coef == 0 {
				return nil, chk.Err("bad chemical formula %q (zero count for '%s')", formula, symbol)
			}
			i = j
		}
		elem, err := atom.BySymbol(symbol)
		if err != nil {
			return nil, err
		}
		res = append(res, Component{coef, elem})
	}
	return res, nil
}
