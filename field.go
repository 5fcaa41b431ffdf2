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

	"github.com/ctessum/sparse"
)

// A Field is a scalar quantity defined over a Grid. The data is stored as a
// packed float32 array in (t, z, y, x) order so that a sample touches at
// most eight contiguous-row elements. Fields are immutable after
// construction.
type Field struct {
	Name string

	grid   *Grid
	gridID int

	data                      []float32
	ystride, zstride, tstride int
	allowTimeExtrapolation    bool
	timePeriodic              bool
}

// NewField creates a field named name over grid from data shaped
// (tdim, zdim, ydim, xdim). A 3-D (tdim, ydim, xdim) array is accepted for
// surface-only grids, and a 2-D or 3-D array with the time axis omitted is
// accepted when tdim == 1.
//
// allowTimeExtrapolation permits sampling outside the grid time range using
// the nearest frame; timePeriodic folds out-of-range times back into the
// range instead. The two are mutually exclusive.
func NewField(name string, grid *Grid, data *sparse.DenseArray, allowTimeExtrapolation, timePeriodic bool) (*Field, error) {
	if allowTimeExtrapolation && timePeriodic {
		return nil, fmt.Errorf("drift: field %s: time extrapolation and time periodicity are mutually exclusive", name)
	}
	shape, err := normalizeShape(data.Shape, grid)
	if err != nil {
		return nil, fmt.Errorf("drift: field %s: %v", name, err)
	}
	if shape[0] != grid.tdim || shape[1] != grid.zdim || shape[2] != grid.ydim || shape[3] != grid.xdim {
		return nil, fmt.Errorf("drift: field %s: data shape %v does not match grid extents (t=%d, z=%d, y=%d, x=%d)",
			name, data.Shape, grid.tdim, grid.zdim, grid.ydim, grid.xdim)
	}
	f := &Field{
		Name:                   name,
		grid:                   grid,
		data:                   packFloat32(data),
		ystride:                grid.xdim,
		zstride:                grid.xdim * grid.ydim,
		tstride:                grid.xdim * grid.ydim * grid.zdim,
		allowTimeExtrapolation: allowTimeExtrapolation,
		timePeriodic:           timePeriodic,
	}
	return f, nil
}

// normalizeShape expands a degenerate data shape to the full
// (t, z, y, x) form.
func normalizeShape(shape []int, grid *Grid) ([]int, error) {
	switch len(shape) {
	case 4:
		return shape, nil
	case 3:
		if grid.zdim == 1 {
			return []int{shape[0], 1, shape[1], shape[2]}, nil
		}
		if grid.tdim == 1 {
			return []int{1, shape[0], shape[1], shape[2]}, nil
		}
		return nil, fmt.Errorf("3-D data shape %v is ambiguous for a grid with zdim=%d, tdim=%d", shape, grid.zdim, grid.tdim)
	case 2:
		if grid.zdim == 1 && grid.tdim == 1 {
			return []int{1, 1, shape[0], shape[1]}, nil
		}
		return nil, fmt.Errorf("2-D data shape %v requires zdim=1 and tdim=1", shape)
	default:
		return nil, fmt.Errorf("data must be 2-D, 3-D or 4-D; got shape %v", shape)
	}
}

// Grid returns the grid the field is defined over.
func (f *Field) Grid() *Grid { return f.grid }

// GridID returns the field's hint slot, assigned by GridSet.AddField
// (zero if the field was never registered).
func (f *Field) GridID() int { return f.gridID }

// at indexes the packed data array. The single multiply-add chain here is
// the innermost operation of every sample.
func (f *Field) at(ti, zi, yi, xi int) float32 {
	return f.data[ti*f.tstride+zi*f.zstride+yi*f.ystride+xi]
}

// A VectorField pairs zonal (U) and meridional (V) velocity components for
// joint sampling. The two components may live on different grids; their hint
// slots must come from the same GridSet.
type VectorField struct {
	U, V *Field
}

// NewVectorField pairs two velocity component fields.
func NewVectorField(u, v *Field) *VectorField {
	return &VectorField{U: u, V: v}
}

// A RotatedVectorField is a vector field on a curvilinear mesh whose
// components are stored along the local grid axes, together with the four
// angle fields that rotate them to zonal and meridional directions.
type RotatedVectorField struct {
	U, V                   *Field
	CosU, SinU, CosV, SinV *Field
}

// NewRotatedVectorField pairs two velocity components with their grid
// rotation angle fields.
func NewRotatedVectorField(u, v, cosU, sinU, cosV, sinV *Field) *RotatedVectorField {
	return &RotatedVectorField{U: u, V: v, CosU: cosU, SinU: sinU, CosV: cosV, SinV: sinV}
}
