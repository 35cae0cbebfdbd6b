// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// TopographyMap is a regular grid of terrain elevations. The x and y
// coordinate axes are derived from the bounds and shape and are exposed as
// freshly computed copies: nothing written into them reaches the map. The
// elevation grid z is a single owned buffer; the rows returned by Z alias
// it, thus in-place writes are reflected by subsequent reads
type TopographyMap struct {
	xmin, xmax float64
	ymin, ymax float64
	nx, ny     int
	z          []float64 // row-major, ny rows of nx values
}

// NewTopographyMap builds a map over the given x and y bounds. The shape is
// (ny, nx): ny rows along y, nx columns along x. Pass a nil z for a flat,
// all-zero elevation; otherwise z must match the shape. With a non-nil z
// the shape may be omitted (zero) and is inferred from z
func NewTopographyMap(xrange, yrange [2]float64, z [][]float64, shape [2]int) (*TopographyMap, error) {
	if shape[0] == 0 && shape[1] == 0 {
		if z == nil {
			return nil, chk.Err("cannot infer map's shape (expected a length-2 sequence, found none)")
		}
		shape[0] = len(z)
		if shape[0] == 0 {
			return nil, chk.Err("bad shape for z-array (expected a 2D array, found an empty one)")
		}
		shape[1] = len(z[0])
	}
	if shape[0] < 2 || shape[1] < 2 {
		return nil, chk.Err("bad shape (expected at least 2 points per axis, found %dx%d)", shape[0], shape[1])
	}
	o := &TopographyMap{
		xmin: xrange[0], xmax: xrange[1],
		ymin: yrange[0], ymax: yrange[1],
		nx: shape[1], ny: shape[0],
		z: make([]float64, shape[0]*shape[1]),
	}
	if z != nil {
		if len(z) != o.ny {
			return nil, chk.Err("bad size for z-array (expected %d rows, found %d)", o.ny, len(z))
		}
		for i, row := range z {
			if len(row) != o.nx {
				return nil, chk.Err("bad size for z-array (expected %d columns, found %d)", o.nx, len(row))
			}
			copy(o.z[i*o.nx:(i+1)*o.nx], row)
		}
	}
	return o, nil
}

// Shape returns (ny, nx)
func (o *TopographyMap) Shape() (ny, nx int) { return o.ny, o.nx }

// X returns the x coordinate axis, linearly spaced over the x bounds. The
// result is a read-only copy: writing into it does not alter the map
func (o *TopographyMap) X() []float64 {
	return utl.LinSpace(o.xmin, o.xmax, o.nx)
}

// Y returns the y coordinate axis, linearly spaced over the y bounds. The
// result is a read-only copy: writing into it does not alter the map
func (o *TopographyMap) Y() []float64 {
	return utl.LinSpace(o.ymin, o.ymax, o.ny)
}

// Z returns the elevation grid as ny rows aliasing the owned buffer.
// In-place writes through the rows are reflected by later reads and by At
func (o *TopographyMap) Z() [][]float64 {
	rows := make([][]float64, o.ny)
	for i := range rows {
		rows[i] = o.z[i*o.nx : (i+1)*o.nx]
	}
	return rows
}

// At returns the elevation at (x, y) by bilinear interpolation, and false
// when the point lies outside of the grid
func (o *TopographyMap) At(x, y float64) (float64, bool) {
	tx := (x - o.xmin) / (o.xmax - o.xmin) * float64(o.nx-1)
	ty := (y - o.ymin) / (o.ymax - o.ymin) * float64(o.ny-1)
	if tx < 0 || tx > float64(o.nx-1) || ty < 0 || ty > float64(o.ny-1) {
		return 0, false
	}
	i, j := int(ty), int(tx)
	if i > o.ny-2 {
		i = o.ny - 2
	}
	if j > o.nx-2 {
		j = o.nx - 2
	}
	fx, fy := tx-float64(j), ty-float64(i)
	z00 := o.z[i*o.nx+j]
	z01 := o.z[i*o.nx+j+1]
	z10 := o.z[(i+1)*o.nx+j]
	z11 := o.z[(i+1)*o.nx+j+1]
	return (1-fy)*((1-fx)*z00+fx*z01) + fy*((1-fx)*z10+fx*z11), true
}

// MaxElevation returns the largest grid elevation
func (o *TopographyMap) MaxElevation() float64 {
	zmax := o.z[0]
	for _, z := range o.z {
		if z > zmax {
			zmax = z
		}
	}
	return zmax
}

// Offset returns a view of the map shifted vertically by d
func (o *TopographyMap) Offset(d float64) *TopographyOffset {
	return &TopographyOffset{Map: o, Value: d}
}

// TopographyOffset is a vertically shifted view of a TopographyMap
type TopographyOffset struct {
	Map   *TopographyMap
	Value float64
}

// At returns the shifted elevation at (x, y)
func (o *TopographyOffset) At(x, y float64) (float64, bool) {
	z, ok := o.Map.At(x, y)
	return z + o.Value, ok
}
