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

import "gonum.org/v1/gonum/floats"

// gridEqualTol is the coordinate tolerance below which two grids are
// considered the same mesh and shared between fields.
const gridEqualTol = 1e-6

// A GridSet deduplicates the grids of a group of fields and assigns each
// distinct grid the dense integer ID used to address per-particle hint
// state. Fields sampled together must be registered in the same set so that
// their hint slots do not collide.
type GridSet struct {
	grids []*Grid
}

// AddField registers f's grid in the set. If an equivalent grid (same kind,
// extents, flags and near-identical coordinates) is already registered, f is
// switched to the shared grid. The field's hint slot is set to the grid's
// index in the set.
func (s *GridSet) AddField(f *Field) {
	for id, g := range s.grids {
		if sameGrid(g, f.grid) {
			f.grid = g
			f.gridID = id
			return
		}
	}
	s.grids = append(s.grids, f.grid)
	f.gridID = len(s.grids) - 1
}

// NumGrids returns the number of distinct grids registered.
func (s *GridSet) NumGrids() int { return len(s.grids) }

// Hints allocates a hint block sized for one particle sampling any field
// registered in this set.
func (s *GridSet) Hints() *Hints {
	zmax := 1
	for _, g := range s.grids {
		if g.zdim > zmax {
			zmax = g.zdim
		}
	}
	n := len(s.grids)
	if n == 0 {
		n = 1
	}
	return NewHints(n, zmax)
}

func sameGrid(a, b *Grid) bool {
	if a == b {
		return true
	}
	if a.kind != b.kind || a.xdim != b.xdim || a.ydim != b.ydim ||
		a.zdim != b.zdim || a.tdim != b.tdim || a.z4d != b.z4d ||
		a.sphereMesh != b.sphereMesh || a.zonalPeriodic != b.zonalPeriodic {
		return false
	}
	if !floats.EqualApprox(a.time, b.time, gridEqualTol) {
		return false
	}
	return equalApprox32(a.lon, b.lon) && equalApprox32(a.lat, b.lat) &&
		equalApprox32(a.depth, b.depth)
}

// equalApprox32 is floats.EqualApprox for the packed float32 coordinate
// arrays, absolute tolerance only.
func equalApprox32(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		if d < -gridEqualTol || d > gridEqualTol {
			return false
		}
	}
	return true
}
