/*
Copyright © 2026 the Drift authors.
This file is part of Drift.

Drift is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Drift is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Drift.  If not, see <http://www.gnu.org/licenses/>.
*/

package drift

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// GridKind distinguishes the four supported structured mesh types.
type GridKind int

const (
	// RectilinearZ is an axis-aligned mesh with a fixed 1-D depth vector.
	RectilinearZ GridKind = iota
	// RectilinearS is an axis-aligned mesh with a terrain-following depth table.
	RectilinearS
	// CurvilinearZ is a general quadrilateral mesh with a fixed 1-D depth vector.
	CurvilinearZ
	// CurvilinearS is a general quadrilateral mesh with a terrain-following
	// depth table.
	CurvilinearS
)

func (k GridKind) String() string {
	switch k {
	case RectilinearZ:
		return "rectilinear Z"
	case RectilinearS:
		return "rectilinear S"
	case CurvilinearZ:
		return "curvilinear Z"
	case CurvilinearS:
		return "curvilinear S"
	default:
		return fmt.Sprintf("unknown grid kind %d", int(k))
	}
}

// Grid is a structured mesh over which scalar fields are defined. Grids are
// immutable after construction and may be shared among any number of fields
// and concurrent queries.
//
// Horizontal coordinates are stored as packed float32 arrays: 1-D vectors for
// rectilinear grids, row-major (y, x) tables for curvilinear grids. The depth
// table is a 1-D vector for Z grids and a row-major (z, y, x) or, when time
// varying, (t, z, y, x) table for S grids.
type Grid struct {
	kind                   GridKind
	xdim, ydim, zdim, tdim int
	lon, lat               []float32
	depth                  []float32
	time                   []float64
	z4d                    bool
	sphereMesh             bool
	zonalPeriodic          bool
}

// Kind returns the mesh type.
func (g *Grid) Kind() GridKind { return g.kind }

// Extents returns the grid dimensions in (x, y, z, t) order.
func (g *Grid) Extents() (xdim, ydim, zdim, tdim int) {
	return g.xdim, g.ydim, g.zdim, g.tdim
}

// Time returns the grid time vector. The caller must not modify it.
func (g *Grid) Time() []float64 { return g.time }

// SphereMesh reports whether the horizontal coordinates are longitudes and
// latitudes in degrees on a sphere.
func (g *Grid) SphereMesh() bool { return g.sphereMesh }

// ZonalPeriodic reports whether the x axis wraps around the sphere.
func (g *Grid) ZonalPeriodic() bool { return g.zonalPeriodic }

// Bounds returns the horizontal extent of the grid. For spherical zonally
// periodic grids the longitude range covers whatever window the coordinate
// arrays are stored in; it is not normalized.
func (g *Grid) Bounds() *geom.Bounds {
	b := &geom.Bounds{
		Min: geom.Point{X: float64(g.lon[0]), Y: float64(g.lat[0])},
		Max: geom.Point{X: float64(g.lon[0]), Y: float64(g.lat[0])},
	}
	for _, v := range g.lon {
		if float64(v) < b.Min.X {
			b.Min.X = float64(v)
		}
		if float64(v) > b.Max.X {
			b.Max.X = float64(v)
		}
	}
	for _, v := range g.lat {
		if float64(v) < b.Min.Y {
			b.Min.Y = float64(v)
		}
		if float64(v) > b.Max.Y {
			b.Max.Y = float64(v)
		}
	}
	return b
}

// UniformAxis returns n evenly spaced coordinates from x0 to x1 inclusive,
// for building synthetic grids.
func UniformAxis(x0, x1 float64, n int) *sparse.DenseArray {
	a := sparse.ZerosDense(n)
	floats.Span(a.Elements, x0, x1)
	return a
}

// NewRectilinearZGrid creates an axis-aligned grid with a fixed depth vector.
// lon and lat must be 1-D; depth must be 1-D and strictly increasing, or nil
// for a surface-only grid. time must be strictly increasing.
func NewRectilinearZGrid(lon, lat, depth *sparse.DenseArray, time []float64, sphereMesh, zonalPeriodic bool) (*Grid, error) {
	g, err := newRectilinearBase(lon, lat, time, sphereMesh, zonalPeriodic)
	if err != nil {
		return nil, err
	}
	g.kind = RectilinearZ
	if err := g.setDepthZ(depth); err != nil {
		return nil, err
	}
	return g, nil
}

// NewRectilinearSGrid creates an axis-aligned grid with a terrain-following
// depth table shaped (z, y, x), or (t, z, y, x) for a time-varying table.
func NewRectilinearSGrid(lon, lat, depth *sparse.DenseArray, time []float64, sphereMesh, zonalPeriodic bool) (*Grid, error) {
	g, err := newRectilinearBase(lon, lat, time, sphereMesh, zonalPeriodic)
	if err != nil {
		return nil, err
	}
	g.kind = RectilinearS
	if err := g.setDepthS(depth); err != nil {
		return nil, err
	}
	return g, nil
}

// NewCurvilinearZGrid creates a general quadrilateral grid with a fixed depth
// vector. lon and lat must be 2-D arrays shaped (ydim, xdim).
func NewCurvilinearZGrid(lon, lat, depth *sparse.DenseArray, time []float64, sphereMesh, zonalPeriodic bool) (*Grid, error) {
	g, err := newCurvilinearBase(lon, lat, time, sphereMesh, zonalPeriodic)
	if err != nil {
		return nil, err
	}
	g.kind = CurvilinearZ
	if err := g.setDepthZ(depth); err != nil {
		return nil, err
	}
	return g, nil
}

// NewCurvilinearSGrid creates a general quadrilateral grid with a
// terrain-following depth table shaped (z, y, x) or (t, z, y, x).
func NewCurvilinearSGrid(lon, lat, depth *sparse.DenseArray, time []float64, sphereMesh, zonalPeriodic bool) (*Grid, error) {
	g, err := newCurvilinearBase(lon, lat, time, sphereMesh, zonalPeriodic)
	if err != nil {
		return nil, err
	}
	g.kind = CurvilinearS
	if err := g.setDepthS(depth); err != nil {
		return nil, err
	}
	return g, nil
}

func newRectilinearBase(lon, lat *sparse.DenseArray, time []float64, sphereMesh, zonalPeriodic bool) (*Grid, error) {
	if len(lon.Shape) != 1 || len(lat.Shape) != 1 {
		return nil, fmt.Errorf("drift: rectilinear grid needs 1-D lon and lat; got shapes %v and %v", lon.Shape, lat.Shape)
	}
	g := &Grid{
		xdim:          lon.Shape[0],
		ydim:          lat.Shape[0],
		sphereMesh:    sphereMesh,
		zonalPeriodic: zonalPeriodic,
	}
	if g.xdim < 2 || g.ydim < 2 {
		return nil, fmt.Errorf("drift: grid needs xdim, ydim ≥ 2; got %d, %d", g.xdim, g.ydim)
	}
	g.lon = packFloat32(lon)
	g.lat = packFloat32(lat)
	if err := g.setTime(time); err != nil {
		return nil, err
	}
	return g, nil
}

func newCurvilinearBase(lon, lat *sparse.DenseArray, time []float64, sphereMesh, zonalPeriodic bool) (*Grid, error) {
	if len(lon.Shape) != 2 || len(lat.Shape) != 2 {
		return nil, fmt.Errorf("drift: curvilinear grid needs 2-D lon and lat; got shapes %v and %v", lon.Shape, lat.Shape)
	}
	if lon.Shape[0] != lat.Shape[0] || lon.Shape[1] != lat.Shape[1] {
		return nil, fmt.Errorf("drift: curvilinear lon shape %v does not match lat shape %v", lon.Shape, lat.Shape)
	}
	g := &Grid{
		xdim:          lon.Shape[1],
		ydim:          lon.Shape[0],
		sphereMesh:    sphereMesh,
		zonalPeriodic: zonalPeriodic,
	}
	if g.xdim < 2 || g.ydim < 2 {
		return nil, fmt.Errorf("drift: grid needs xdim, ydim ≥ 2; got %d, %d", g.xdim, g.ydim)
	}
	g.lon = packFloat32(lon)
	g.lat = packFloat32(lat)
	if err := g.setTime(time); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) setTime(time []float64) error {
	if len(time) == 0 {
		time = []float64{0}
	}
	for i := 1; i < len(time); i++ {
		if time[i] <= time[i-1] {
			return fmt.Errorf("drift: grid time vector must be strictly increasing at index %d", i)
		}
	}
	g.tdim = len(time)
	g.time = append([]float64(nil), time...)
	return nil
}

func (g *Grid) setDepthZ(depth *sparse.DenseArray) error {
	if depth == nil {
		g.zdim = 1
		return nil
	}
	if len(depth.Shape) != 1 {
		return fmt.Errorf("drift: Z grid needs a 1-D depth vector; got shape %v", depth.Shape)
	}
	g.zdim = depth.Shape[0]
	g.depth = packFloat32(depth)
	for i := 1; i < g.zdim; i++ {
		if g.depth[i] <= g.depth[i-1] {
			return fmt.Errorf("drift: Z grid depth vector must be strictly increasing at index %d", i)
		}
	}
	return nil
}

func (g *Grid) setDepthS(depth *sparse.DenseArray) error {
	if depth == nil {
		return fmt.Errorf("drift: S grid needs a depth table")
	}
	switch len(depth.Shape) {
	case 3:
		if depth.Shape[1] != g.ydim || depth.Shape[2] != g.xdim {
			return fmt.Errorf("drift: S grid depth shape %v does not match horizontal extents (%d, %d)", depth.Shape, g.ydim, g.xdim)
		}
		g.zdim = depth.Shape[0]
	case 4:
		if depth.Shape[0] != g.tdim || depth.Shape[2] != g.ydim || depth.Shape[3] != g.xdim {
			return fmt.Errorf("drift: 4-D S grid depth shape %v does not match extents (t=%d, y=%d, x=%d)", depth.Shape, g.tdim, g.ydim, g.xdim)
		}
		g.zdim = depth.Shape[1]
		g.z4d = true
	default:
		return fmt.Errorf("drift: S grid depth table must be 3-D or 4-D; got shape %v", depth.Shape)
	}
	g.depth = packFloat32(depth)
	return nil
}

// lonAt returns the longitude of node (yi, xi) on a curvilinear grid.
func (g *Grid) lonAt(yi, xi int) float32 { return g.lon[yi*g.xdim+xi] }

// latAt returns the latitude of node (yi, xi) on a curvilinear grid.
func (g *Grid) latAt(yi, xi int) float32 { return g.lat[yi*g.xdim+xi] }

// sDepthAt indexes the (z, y, x) slab of the S depth table for time index ti
// (ignored for 3-D tables).
func (g *Grid) sDepthAt(ti, zi, yi, xi int) float32 {
	if g.z4d {
		return g.depth[((ti*g.zdim+zi)*g.ydim+yi)*g.xdim+xi]
	}
	return g.depth[(zi*g.ydim+yi)*g.xdim+xi]
}

func packFloat32(a *sparse.DenseArray) []float32 {
	out := make([]float32, len(a.Elements))
	for i, v := range a.Elements {
		out[i] = float32(v)
	}
	return out
}
