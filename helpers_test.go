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

import "github.com/ctessum/sparse"

func denseFrom1D(vals []float64) *sparse.DenseArray {
	a := sparse.ZerosDense(len(vals))
	copy(a.Elements, vals)
	return a
}

func denseFrom2D(vals [][]float64) *sparse.DenseArray {
	a := sparse.ZerosDense(len(vals), len(vals[0]))
	n := 0
	for _, row := range vals {
		for _, v := range row {
			a.Elements[n] = v
			n++
		}
	}
	return a
}

// denseFill4D builds a (tdim, zdim, ydim, xdim) array with values given by
// fn(ti, zi, yi, xi).
func denseFill4D(tdim, zdim, ydim, xdim int, fn func(ti, zi, yi, xi int) float64) *sparse.DenseArray {
	a := sparse.ZerosDense(tdim, zdim, ydim, xdim)
	n := 0
	for ti := 0; ti < tdim; ti++ {
		for zi := 0; zi < zdim; zi++ {
			for yi := 0; yi < ydim; yi++ {
				for xi := 0; xi < xdim; xi++ {
					a.Elements[n] = fn(ti, zi, yi, xi)
					n++
				}
			}
		}
	}
	return a
}

// denseFill3D builds a (zdim, ydim, xdim) array.
func denseFill3D(zdim, ydim, xdim int, fn func(zi, yi, xi int) float64) *sparse.DenseArray {
	a := sparse.ZerosDense(zdim, ydim, xdim)
	n := 0
	for zi := 0; zi < zdim; zi++ {
		for yi := 0; yi < ydim; yi++ {
			for xi := 0; xi < xdim; xi++ {
				a.Elements[n] = fn(zi, yi, xi)
				n++
			}
		}
	}
	return a
}

// unitCubeField is the canonical test field: a 2×2×2×2 grid over the unit
// cube and unit time interval with data[t,k,j,i] = i + 2j + 4k + 8t, so
// that every interpolation weight is visible in the result.
func unitCubeField() *Field {
	grid, err := NewRectilinearZGrid(
		UniformAxis(0, 1, 2), UniformAxis(0, 1, 2), UniformAxis(0, 1, 2),
		[]float64{0, 1}, false, false)
	if err != nil {
		panic(err)
	}
	data := denseFill4D(2, 2, 2, 2, func(ti, zi, yi, xi int) float64 {
		return float64(xi + 2*yi + 4*zi + 8*ti)
	})
	f, err := NewField("cube", grid, data, false, false)
	if err != nil {
		panic(err)
	}
	return f
}
