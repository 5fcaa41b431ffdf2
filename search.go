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

import "math"

// Iteration limits bounding worst-case latency on pathological inputs.
// These are part of the sampling contract and must not change.
const (
	maxZonalWalkIters  = 10000
	maxCellSearchIters = 1000000
)

// cell is the result of a successful spatial search: the left-edge indices
// of the enclosing cell and the local coordinates of the query point within
// it, each in [0, 1].
type cell struct {
	xi, yi, zi     int
	xsi, eta, zeta float64
}

// fix1DIndex brings a stepped x index back into the valid left-edge range
// [0, xdim-2], wrapping on spherical meshes and clamping otherwise.
func fix1DIndex(xi, xdim int, sphere bool) int {
	if xi < 0 {
		if sphere {
			return xdim - 2
		}
		return 0
	}
	if xi > xdim-2 {
		if sphere {
			return 0
		}
		return xdim - 2
	}
	return xi
}

// fix2DIndices brings stepped cell indices back into range. The y index
// clamps at both boundaries; when it saturates at the top of a spherical
// mesh the x index is reflected across the pole (xi ← xdim-xi) and then
// re-wrapped, since the reflection can leave the seam cell out of range.
func fix2DIndices(xi, yi, xdim, ydim int, sphere bool) (int, int) {
	xi = fix1DIndex(xi, xdim, sphere)
	if yi < 0 {
		yi = 0
	}
	if yi > ydim-2 {
		yi = ydim - 2
		if sphere {
			xi = fix1DIndex(xdim-xi, xdim, true)
		}
	}
	return xi, yi
}

// searchVerticalZ brackets z in a fixed depth vector by walking from the
// hinted level. On success zvals[zi] ≤ z ≤ zvals[zi+1] and zeta is the
// linear position of z in that bracket.
func searchVerticalZ(z float32, zvals []float32, zi int) (int, float64, error) {
	zdim := len(zvals)
	if z < zvals[0] || z > zvals[zdim-1] {
		return zi, 0, errOutOfBounds
	}
	for zi < zdim-1 && z > zvals[zi+1] {
		zi++
	}
	for zi > 0 && z < zvals[zi] {
		zi--
	}
	if zi == zdim-1 {
		zi--
	}
	zeta := float64(z-zvals[zi]) / float64(zvals[zi+1]-zvals[zi])
	return zi, zeta, nil
}

// searchVerticalS builds the vertical column under the located horizontal
// cell by restricting the terrain-following depth table bilinearly to
// (xsi, eta), then brackets z in it like searchVerticalZ. For time-varying
// (4-D) tables the two frames bracketing the query time are blended with
// weight (time-t0)/(t1-t0). zcol is caller-provided scratch of length zdim.
func (g *Grid) searchVerticalS(z float32, xi, yi, zi int, xsi, eta float64, ti int, time, t0, t1 float64, zcol []float32) (int, float64, error) {
	w00 := (1 - xsi) * (1 - eta)
	w10 := xsi * (1 - eta)
	w11 := xsi * eta
	w01 := (1 - xsi) * eta
	if g.z4d {
		ti1 := ti
		if ti < g.tdim-1 {
			ti1 = ti + 1
		}
		tfrac := (time - t0) / (t1 - t0)
		for zii := 0; zii < g.zdim; zii++ {
			zt0 := w00*float64(g.sDepthAt(ti, zii, yi, xi)) +
				w10*float64(g.sDepthAt(ti, zii, yi, xi+1)) +
				w11*float64(g.sDepthAt(ti, zii, yi+1, xi+1)) +
				w01*float64(g.sDepthAt(ti, zii, yi+1, xi))
			zt1 := w00*float64(g.sDepthAt(ti1, zii, yi, xi)) +
				w10*float64(g.sDepthAt(ti1, zii, yi, xi+1)) +
				w11*float64(g.sDepthAt(ti1, zii, yi+1, xi+1)) +
				w01*float64(g.sDepthAt(ti1, zii, yi+1, xi))
			zcol[zii] = float32(zt0 + (zt1-zt0)*tfrac)
		}
	} else {
		for zii := 0; zii < g.zdim; zii++ {
			zcol[zii] = float32(w00*float64(g.sDepthAt(0, zii, yi, xi)) +
				w10*float64(g.sDepthAt(0, zii, yi, xi+1)) +
				w11*float64(g.sDepthAt(0, zii, yi+1, xi+1)) +
				w01*float64(g.sDepthAt(0, zii, yi+1, xi)))
		}
	}
	return searchVerticalZ(z, zcol, zi)
}

// searchRectilinear locates the cell containing (x, y, z) on an axis-aligned
// grid, starting from the hinted indices. On spherical meshes the x walk
// works in a moving 360°-normalized window so that it converges across the
// dateline; it gives up after maxZonalWalkIters steps.
func (g *Grid) searchRectilinear(x, y, z float32, c cell, ti int, time, t0, t1 float64, zcol []float32) (cell, error) {
	xvals, yvals := g.lon, g.lat
	if !g.sphereMesh {
		if x < xvals[0] || x > xvals[g.xdim-1] {
			return c, errOutOfBounds
		}
		for c.xi < g.xdim-1 && x > xvals[c.xi+1] {
			c.xi++
		}
		for c.xi > 0 && x < xvals[c.xi] {
			c.xi--
		}
		c.xsi = float64(x-xvals[c.xi]) / float64(xvals[c.xi+1]-xvals[c.xi])
	} else {
		if !g.zonalPeriodic {
			// The stored longitude window may itself straddle the
			// dateline, in which case the extent runs "descending".
			if xvals[0] < xvals[g.xdim-1] && (x < xvals[0] || x > xvals[g.xdim-1]) {
				return c, errOutOfBounds
			} else if xvals[0] >= xvals[g.xdim-1] && x < xvals[0] && x > xvals[g.xdim-1] {
				return c, errOutOfBounds
			}
		}
		xvalsi := normalizeLon(xvals[c.xi], x)
		xvalsi1 := normalizeLonPair(xvals[c.xi+1], xvalsi)
		it := 0
		for xvalsi > x || xvalsi1 < x {
			if xvalsi1 < x {
				c.xi++
			} else if xvalsi > x {
				c.xi--
			}
			c.xi = fix1DIndex(c.xi, g.xdim, true)
			xvalsi = normalizeLon(xvals[c.xi], x)
			xvalsi1 = normalizeLonPair(xvals[c.xi+1], xvalsi)
			it++
			if it > maxZonalWalkIters {
				return c, errSearchIterations
			}
		}
		c.xsi = float64(x-xvalsi) / float64(xvalsi1-xvalsi)
	}

	if y < yvals[0] || y > yvals[g.ydim-1] {
		return c, errOutOfBounds
	}
	for c.yi < g.ydim-1 && y > yvals[c.yi+1] {
		c.yi++
	}
	for c.yi > 0 && y < yvals[c.yi] {
		c.yi--
	}
	c.eta = float64(y-yvals[c.yi]) / float64(yvals[c.yi+1]-yvals[c.yi])

	return g.searchVertical(z, c, ti, time, t0, t1, zcol)
}

// normalizeLon shifts a longitude into the window (x-225°, x+225°].
func normalizeLon(v, x float32) float32 {
	if v < x-225 {
		v += 360
	}
	if v > x+225 {
		v -= 360
	}
	return v
}

// normalizeLonPair shifts the right cell edge into (left-180°, left+180°].
func normalizeLonPair(v, left float32) float32 {
	if v < left-180 {
		v += 360
	}
	if v > left+180 {
		v -= 360
	}
	return v
}

// searchCurvilinear locates the quadrilateral cell containing (x, y) by
// iteratively inverting the bilinear map of the cell under the current
// indices and stepping toward the neighbor indicated by the out-of-range
// local coordinate. The walk gives up after maxCellSearchIters steps.
func (g *Grid) searchCurvilinear(x, y, z float32, c cell, ti int, time, t0, t1 float64, zcol []float32) (cell, error) {
	if !g.zonalPeriodic || !g.sphereMesh {
		x00, x0n := g.lonAt(0, 0), g.lonAt(0, g.xdim-1)
		if x00 < x0n && (x < x00 || x > x0n) {
			return c, errOutOfBounds
		} else if x00 >= x0n && x < x00 && x > x0n {
			return c, errOutOfBounds
		}
	}

	c.xsi, c.eta = -1, -1
	var xq, yq [4]float64
	it := 0
	for c.xsi < 0 || c.xsi > 1 || c.eta < 0 || c.eta > 1 {
		xq[0] = float64(g.lonAt(c.yi, c.xi))
		xq[1] = float64(g.lonAt(c.yi, c.xi+1))
		xq[2] = float64(g.lonAt(c.yi+1, c.xi+1))
		xq[3] = float64(g.lonAt(c.yi+1, c.xi))
		if g.sphereMesh {
			// Remove 360° discontinuities within the cell.
			if xq[0] < float64(x)-225 {
				xq[0] += 360
			}
			if xq[0] > float64(x)+225 {
				xq[0] -= 360
			}
			for i4 := 1; i4 < 4; i4++ {
				if xq[i4] < xq[0]-180 {
					xq[i4] += 360
				}
				if xq[i4] > xq[0]+180 {
					xq[i4] -= 360
				}
			}
		}
		yq[0] = float64(g.latAt(c.yi, c.xi))
		yq[1] = float64(g.latAt(c.yi, c.xi+1))
		yq[2] = float64(g.latAt(c.yi+1, c.xi+1))
		yq[3] = float64(g.latAt(c.yi+1, c.xi))

		a0 := xq[0]
		a1 := -xq[0] + xq[1]
		a2 := -xq[0] + xq[3]
		a3 := xq[0] - xq[1] + xq[2] - xq[3]
		b0 := yq[0]
		b1 := -yq[0] + yq[1]
		b2 := -yq[0] + yq[3]
		b3 := yq[0] - yq[1] + yq[2] - yq[3]

		aa := a3*b2 - a2*b3
		bb := a3*b0 - a0*b3 + a1*b2 - a2*b1 + float64(x)*b3 - float64(y)*a3
		cc := a1*b0 - a0*b1 + float64(x)*b1 - float64(y)*a1
		if math.Abs(aa) < 1e-12 {
			// Parallelogram cell: the quadratic degenerates.
			c.eta = -cc / bb
		} else {
			det := math.Sqrt(bb*bb - 4*aa*cc)
			if !math.IsNaN(det) {
				// A NaN discriminant keeps the previous (xsi, eta).
				c.eta = (-bb + det) / (2 * aa)
			}
		}
		c.xsi = (float64(x) - a0 - a2*c.eta) / (a1 + a3*c.eta)
		if c.xsi < 0 && c.eta < 0 && c.xi == 0 && c.yi == 0 {
			return c, errOutOfBounds
		}
		if c.xsi > 1 && c.eta > 1 && c.xi == g.xdim-1 && c.yi == g.ydim-1 {
			return c, errOutOfBounds
		}
		if c.xsi < 0 {
			c.xi--
		}
		if c.xsi > 1 {
			c.xi++
		}
		if c.eta < 0 {
			c.yi--
		}
		if c.eta > 1 {
			c.yi++
		}
		c.xi, c.yi = fix2DIndices(c.xi, c.yi, g.xdim, g.ydim, g.sphereMesh)
		it++
		if it > maxCellSearchIters {
			return c, errSearchIterations
		}
	}
	if math.IsNaN(c.xsi) || math.IsNaN(c.eta) {
		return c, errNaNCoords
	}

	return g.searchVertical(z, c, ti, time, t0, t1, zcol)
}

// searchVertical dispatches the vertical bracket on the grid kind and then
// enforces the local-coordinate invariant.
func (g *Grid) searchVertical(z float32, c cell, ti int, time, t0, t1 float64, zcol []float32) (cell, error) {
	if g.zdim > 1 {
		var err error
		switch g.kind {
		case RectilinearZ, CurvilinearZ:
			c.zi, c.zeta, err = searchVerticalZ(z, g.depth, c.zi)
		case RectilinearS, CurvilinearS:
			c.zi, c.zeta, err = g.searchVerticalS(z, c.xi, c.yi, c.zi, c.xsi, c.eta, ti, time, t0, t1, zcol)
		default:
			err = errGridKind
		}
		if err != nil {
			return c, err
		}
	} else {
		c.zeta = 0
	}

	if c.xsi < 0 || c.xsi > 1 {
		return c, errOutOfBounds
	}
	if c.eta < 0 || c.eta > 1 {
		return c, errOutOfBounds
	}
	if c.zeta < 0 || c.zeta > 1 {
		return c, errOutOfBounds
	}
	return c, nil
}

// searchIndices performs the hint-seeded local search for the cell
// containing (x, y, z), dispatching on the grid kind. ti, time, t0 and t1
// feed the time blend of 4-D terrain-following depth tables. zcol is
// scratch for the vertical column.
func (g *Grid) searchIndices(x, y, z float32, c cell, ti int, time, t0, t1 float64, zcol []float32) (cell, error) {
	switch g.kind {
	case RectilinearZ, RectilinearS:
		return g.searchRectilinear(x, y, z, c, ti, time, t0, t1, zcol)
	case CurvilinearZ, CurvilinearS:
		return g.searchCurvilinear(x, y, z, c, ti, time, t0, t1, zcol)
	default:
		return c, errGridKind
	}
}

// searchTimeIndex brackets t in the grid time vector by walking from the
// hinted index. When periodic, an out-of-range t is first folded into the
// closed interval [time[0], time[tdim-1]] (one subtraction of a whole number
// of periods always suffices) and the walk restarts from the opposite end.
// It returns the bracketing index and the possibly folded time.
func searchTimeIndex(t float64, tvals []float64, ti int, periodic bool) (int, float64) {
	size := len(tvals)
	if ti < 0 {
		ti = 0
	}
	if periodic {
		for t < tvals[0] || t > tvals[size-1] {
			if t < tvals[0] {
				ti = size - 1
			} else {
				ti = 0
			}
			periods := math.Floor((t - tvals[0]) / (tvals[size-1] - tvals[0]))
			t -= periods * (tvals[size-1] - tvals[0])
		}
	}
	for ti < size-1 && t >= tvals[ti+1] {
		ti++
	}
	for ti > 0 && t < tvals[ti] {
		ti--
	}
	return ti, t
}
