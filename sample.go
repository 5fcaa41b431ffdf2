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

// InterpMethod selects the spatial interpolation kernel.
type InterpMethod int

const (
	// Linear is bilinear (surface grids) or trilinear interpolation.
	Linear InterpMethod = iota
	// Nearest picks the value at the nearest grid node.
	Nearest
)

// Sample returns the field value at the continuous point (x, y, z) and time
// t, interpolating linearly between the two bracketing time frames. h is the
// querying particle's hint block: the search starts from the indices left by
// the particle's previous query and writes back the indices it found, so a
// Hints value must not be used by two goroutines at once.
//
// On failure the returned error is a *SampleError whose kind is OutOfBounds
// for points outside the domain (or searches hitting their iteration limit),
// TimeExtrapolation for a time outside the grid range with both extrapolation
// and periodicity disabled, or Error for invalid dispatch and NaN local
// coordinates.
func (f *Field) Sample(x, y, z float32, t float64, h *Hints, method InterpMethod) (float32, error) {
	g := f.grid
	switch g.kind {
	case RectilinearZ, RectilinearS, CurvilinearZ, CurvilinearS:
	default:
		return 0, errGridKind
	}
	id := f.gridID
	if id >= len(h.ti) {
		return 0, errHintRange
	}

	if !f.timePeriodic && !f.allowTimeExtrapolation && (t < g.time[0] || t > g.time[g.tdim-1]) {
		return 0, errTimeExtrapolation
	}
	ti, time := searchTimeIndex(t, g.time, h.ti[id], f.timePeriodic)
	h.ti[id] = ti

	c := cell{xi: h.xi[id], yi: h.yi[id], zi: h.zi[id]}
	zcol := h.column(g.zdim)

	if ti < g.tdim-1 && time > g.time[ti] {
		t0, t1 := g.time[ti], g.time[ti+1]
		c, err := g.searchIndices(x, y, z, c, ti, time, t0, t1, zcol)
		if err != nil {
			return 0, err
		}
		h.xi[id], h.yi[id], h.zi[id] = c.xi, c.yi, c.zi
		var f0, f1 float32
		switch method {
		case Linear:
			if g.zdim == 1 {
				f0 = f.bilinear(ti, c)
				f1 = f.bilinear(ti+1, c)
			} else {
				f0 = f.trilinear(ti, c)
				f1 = f.trilinear(ti+1, c)
			}
		case Nearest:
			if g.zdim == 1 {
				f0 = f.nearest2D(ti, c)
				f1 = f.nearest2D(ti+1, c)
			} else {
				f0 = f.nearest3D(ti, c)
				f1 = f.nearest3D(ti+1, c)
			}
		default:
			return 0, errInterpMethod
		}
		return f0 + (f1-f0)*float32((time-t0)/(t1-t0)), nil
	}

	// Boundary frame or extrapolation: sample the single frame ti with a
	// degenerate time bracket (only 4-D depth tables look at it).
	t0 := g.time[ti]
	c, err := g.searchIndices(x, y, z, c, ti, t0, t0, t0+1, zcol)
	if err != nil {
		return 0, err
	}
	h.xi[id], h.yi[id], h.zi[id] = c.xi, c.yi, c.zi
	switch method {
	case Linear:
		if g.zdim == 1 {
			return f.bilinear(ti, c), nil
		}
		return f.trilinear(ti, c), nil
	case Nearest:
		if g.zdim == 1 {
			return f.nearest2D(ti, c), nil
		}
		return f.nearest3D(ti, c), nil
	default:
		return 0, errInterpMethod
	}
}

// Sample returns both velocity components at the given point and time. The
// two samples share the hint block; if the components live on the same grid
// the second sample reuses the first one's cell immediately.
func (vf *VectorField) Sample(x, y, z float32, t float64, h *Hints, method InterpMethod) (u, v float32, err error) {
	u, err = vf.U.Sample(x, y, z, t, h, method)
	if err != nil {
		return 0, 0, err
	}
	v, err = vf.V.Sample(x, y, z, t, h, method)
	if err != nil {
		return 0, 0, err
	}
	return u, v, nil
}

// Sample returns the velocity at the given point and time, rotated from the
// local grid axes to zonal and meridional components using the four angle
// fields sampled at the same point:
//
//	U' = u·cosU - v·sinV
//	V' = u·sinU + v·cosV
//
// The pairing of U angles and V angles across the two outputs reproduces
// the upstream NEMO tooling and is deliberately not a plain 2×2 rotation.
func (rf *RotatedVectorField) Sample(x, y, z float32, t float64, h *Hints, method InterpMethod) (u, v float32, err error) {
	uval, err := rf.U.Sample(x, y, z, t, h, method)
	if err != nil {
		return 0, 0, err
	}
	vval, err := rf.V.Sample(x, y, z, t, h, method)
	if err != nil {
		return 0, 0, err
	}
	cosU, err := rf.CosU.Sample(x, y, z, t, h, method)
	if err != nil {
		return 0, 0, err
	}
	sinU, err := rf.SinU.Sample(x, y, z, t, h, method)
	if err != nil {
		return 0, 0, err
	}
	cosV, err := rf.CosV.Sample(x, y, z, t, h, method)
	if err != nil {
		return 0, 0, err
	}
	sinV, err := rf.SinV.Sample(x, y, z, t, h, method)
	if err != nil {
		return 0, 0, err
	}
	return uval*cosU - vval*sinV, uval*sinU + vval*cosV, nil
}
