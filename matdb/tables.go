// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package matdb implements the material registry: per-material records with
// lazily computed, memoized cross-section and sampling tables
package matdb

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/kvernet/goupil/phys"
)

// CrossSection is an immutable tabulated cross section over energy, tagged
// with the producing process and owned by a MaterialRecord
type CrossSection struct {
	process string
	rec     *Record
	e, v    []float64
}

// Process returns the producing process tag; e.g. "Absorption"
func (o *CrossSection) Process() string { return o.process }

// Material returns the owning record
func (o *CrossSection) Material() *Record { return o.rec }

// Energies returns the energy grid. The slice is owned by the table
func (o *CrossSection) Energies() []float64 { return o.e }

// Values returns the tabulated values. The slice is owned by the table
func (o *CrossSection) Values() []float64 { return o.v }

// At interpolates the cross section at the given energy, log-log linearly,
// clamping outside of the tabulated range
func (o *CrossSection) At(energy float64) float64 {
	return loglogInterp(o.e, o.v, energy)
}

// crossSectionBlob is the serialized layout of a CrossSection
type crossSectionBlob struct {
	Process string
	E, V    []float64
}

// Encode writes the table, except its record binding, to enc
func (o *CrossSection) Encode(enc io.Encoder) error {
	return enc.Encode(&crossSectionBlob{o.process, o.e, o.v})
}

// Decode reads the table from dec. The record binding is left to the owner
func (o *CrossSection) Decode(dec io.Decoder) error {
	var blob crossSectionBlob
	if err := dec.Decode(&blob); err != nil {
		return err
	}
	o.process, o.e, o.v = blob.Process, blob.E, blob.V
	return nil
}

// FormFactor is an immutable tabulated form factor over momentum transfer
type FormFactor struct {
	process string
	rec     *Record
	q, v    []float64
}

// Process returns the producing process tag
func (o *FormFactor) Process() string { return o.process }

// Material returns the owning record
func (o *FormFactor) Material() *Record { return o.rec }

// Momenta returns the momentum-transfer grid [electron-mass units]
func (o *FormFactor) Momenta() []float64 { return o.q }

// Values returns the tabulated values
func (o *FormFactor) Values() []float64 { return o.v }

// At interpolates the form factor at momentum transfer q, linearly,
// clamping outside of the tabulated range
func (o *FormFactor) At(q float64) float64 {
	return linInterp(o.q, o.v, q)
}

// SampleCosTheta draws a coherent-scattering deflection cosine at the given
// energy. The squared momentum transfer is sampled by inverting the
// cumulative integral of the squared form factor over the kinematically
// allowed range; the Thomson angular factor is then applied by rejection.
// The acceptance is bounded below by one half, so the trial cap is nominal
func (o *FormFactor) SampleCosTheta(rng *rand.Rand, energy float64) (float64, error) {
	if len(o.q) < 2 {
		return 0, chk.Err("form factor table of %q is empty", o.rec.def.Name())
	}
	k := energy / phys.ElectronMass
	if k <= 0 {
		return 0, chk.Err("bad energy %g for a coherent collision", energy)
	}
	for trial := 0; trial < 100; trial++ {
		c := 1 - o.sampleQ2(rng, 2*k)/(2*k*k)
		if c < -1 {
			c = -1
		}
		if rng.Float64() < 0.5*(1+c*c) {
			return c, nil
		}
	}
	return 0, chk.Err("sampling of a coherent collision did not converge (E=%g)", energy)
}

// sampleQ2 inverts the cumulative integral of the squared form factor in
// squared momentum transfer over [0, qmax^2], walking the table cells twice
func (o *FormFactor) sampleQ2(rng *rand.Rand, qmax float64) float64 {
	n := len(o.q)
	if qmax > o.q[n-1] {
		qmax = o.q[n-1]
	}
	cell := func(i int) (a, b, ga, gb float64) {
		a, b = o.q[i]*o.q[i], o.q[i+1]*o.q[i+1]
		ga, gb = o.v[i]*o.v[i], o.v[i+1]*o.v[i+1]
		if o.q[i+1] > qmax {
			g := o.At(qmax)
			b, gb = qmax*qmax, g*g
		}
		return
	}
	var total float64
	for i := 0; i+1 < n && o.q[i] < qmax; i++ {
		a, b, ga, gb := cell(i)
		total += 0.5 * (ga + gb) * (b - a)
	}
	if total <= 0 {
		return qmax * qmax * rng.Float64()
	}
	s := rng.Float64() * total
	for i := 0; i+1 < n && o.q[i] < qmax; i++ {
		a, b, ga, gb := cell(i)
		w := 0.5 * (ga + gb) * (b - a)
		if w <= 0 {
			continue
		}
		if s > w {
			s -= w
			continue
		}
		// linear density within the cell
		if d := (gb - ga) / (b - a); math.Abs(d)*(b-a) > 1e-12*(ga+gb) {
			return a + (math.Sqrt(ga*ga+2*d*s)-ga)/d
		}
		return a + s/(0.5*(ga+gb))
	}
	return qmax * qmax
}

type formFactorBlob struct {
	Process string
	Q, V    []float64
}

// Encode writes the table, except its record binding, to enc
func (o *FormFactor) Encode(enc io.Encoder) error {
	return enc.Encode(&formFactorBlob{o.process, o.q, o.v})
}

// Decode reads the table from dec
func (o *FormFactor) Decode(dec io.Decoder) error {
	var blob formFactorBlob
	if err := dec.Decode(&blob); err != nil {
		return err
	}
	o.process, o.q, o.v = blob.Process, blob.Q, blob.V
	return nil
}

// DistFunc is a tabulated cumulative distribution of the outgoing to
// incoming energy ratio of Compton collisions. Row i spans the
// kinematically allowed ratio range at energy i of the grid
type DistFunc struct {
	process string
	rec     *Record
	e       []float64
	x       [][]float64 // per-energy ratio grids
	f       [][]float64 // per-energy CDF values, nondecreasing from 0 to 1
}

// Process returns the producing process tag
func (o *DistFunc) Process() string { return o.process }

// Material returns the owning record
func (o *DistFunc) Material() *Record { return o.rec }

// Energies returns the energy grid
func (o *DistFunc) Energies() []float64 { return o.e }

// Row returns the (ratios, CDF) row nearest to the given energy
func (o *DistFunc) Row(energy float64) (x, f []float64) {
	i := nearestLog(o.e, energy)
	return o.x[i], o.f[i]
}

// At evaluates the CDF at the given energy and ratio
func (o *DistFunc) At(energy, ratio float64) float64 {
	x, f := o.Row(energy)
	return linInterp(x, f, ratio)
}

type distFuncBlob struct {
	Process string
	E       []float64
	X, F    [][]float64
}

// Encode writes the table, except its record binding, to enc
func (o *DistFunc) Encode(enc io.Encoder) error {
	return enc.Encode(&distFuncBlob{o.process, o.e, o.x, o.f})
}

// Decode reads the table from dec
func (o *DistFunc) Decode(dec io.Decoder) error {
	var blob distFuncBlob
	if err := dec.Decode(&blob); err != nil {
		return err
	}
	o.process, o.e, o.x, o.f = blob.Process, blob.E, blob.X, blob.F
	return nil
}

// InverseDistFunc is the functional inverse of a DistFunc: row i maps a
// uniform deviate to an energy ratio at energy i of the grid
type InverseDistFunc struct {
	process string
	rec     *Record
	e       []float64
	u       []float64   // shared uniform grid over [0, 1]
	x       [][]float64 // per-energy ratios at the uniform grid
}

// Process returns the producing process tag
func (o *InverseDistFunc) Process() string { return o.process }

// Material returns the owning record
func (o *InverseDistFunc) Material() *Record { return o.rec }

// Energies returns the energy grid
func (o *InverseDistFunc) Energies() []float64 { return o.e }

// At maps the uniform deviate u to an energy ratio at the given energy
func (o *InverseDistFunc) At(energy, u float64) float64 {
	i := nearestLog(o.e, energy)
	return linInterp(o.u, o.x[i], u)
}

type inverseDistFuncBlob struct {
	Process string
	E, U    []float64
	X       [][]float64
}

// Encode writes the table, except its record binding, to enc
func (o *InverseDistFunc) Encode(enc io.Encoder) error {
	return enc.Encode(&inverseDistFuncBlob{o.process, o.e, o.u, o.x})
}

// Decode reads the table from dec
func (o *InverseDistFunc) Decode(dec io.Decoder) error {
	var blob inverseDistFuncBlob
	if err := dec.Decode(&blob); err != nil {
		return err
	}
	o.process, o.e, o.u, o.x = blob.Process, blob.E, blob.U, blob.X
	return nil
}

// loglogInterp interpolates y(x) linearly in log-log space, clamping
// outside of the grid. Zero or negative values fall back to linear
// interpolation
func loglogInterp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := bracket(xs, x)
	x0, x1, y0, y1 := xs[i], xs[i+1], ys[i], ys[i+1]
	if y0 <= 0 || y1 <= 0 {
		return y0 + (y1-y0)*(x-x0)/(x1-x0)
	}
	t := math.Log(x/x0) / math.Log(x1/x0)
	return y0 * math.Exp(t*math.Log(y1/y0))
}

// linInterp interpolates y(x) linearly, clamping outside of the grid
func linInterp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := bracket(xs, x)
	x0, x1, y0, y1 := xs[i], xs[i+1], ys[i], ys[i+1]
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// bracket finds i such that xs[i] <= x < xs[i+1], for x inside the grid
func bracket(xs []float64, x float64) int {
	lo, hi := 0, len(xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// nearestLog returns the index of the grid point nearest to x in log space
func nearestLog(xs []float64, x float64) int {
	n := len(xs)
	if x <= xs[0] {
		return 0
	}
	if x >= xs[n-1] {
		return n - 1
	}
	i := bracket(xs, x)
	if math.Log(x/xs[i]) < math.Log(xs[i+1]/x) {
		return i
	}
	return i + 1
}
