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
	"testing"

	"github.com/ctessum/sparse"
)

func TestUniformAxis(t *testing.T) {
	a := UniformAxis(0, 2, 5)
	want := []float64{0, 0.5, 1, 1.5, 2}
	if len(a.Elements) != len(want) {
		t.Fatalf("got %d elements; want %d", len(a.Elements), len(want))
	}
	for i, v := range want {
		if a.Elements[i] != v {
			t.Errorf("element %d: got %g; want %g", i, a.Elements[i], v)
		}
	}
}

func TestNewGridValidation(t *testing.T) {
	axis2 := UniformAxis(0, 1, 2)
	time1 := []float64{0}

	// One-node axes are rejected.
	if _, err := NewRectilinearZGrid(denseFrom1D([]float64{0}), axis2, nil, time1, false, false); err == nil {
		t.Error("expected error for xdim < 2")
	}
	// A 2-D lon array is not rectilinear.
	if _, err := NewRectilinearZGrid(sparse.ZerosDense(2, 2), axis2, nil, time1, false, false); err == nil {
		t.Error("expected error for 2-D rectilinear lon")
	}
	// Depth must increase strictly.
	if _, err := NewRectilinearZGrid(axis2, axis2, denseFrom1D([]float64{0, 1, 1}), time1, false, false); err == nil {
		t.Error("expected error for non-monotone depth")
	}
	// Time must increase strictly.
	if _, err := NewRectilinearZGrid(axis2, axis2, nil, []float64{0, 0}, false, false); err == nil {
		t.Error("expected error for non-monotone time")
	}
	// Curvilinear coordinates must be 2-D and congruent.
	if _, err := NewCurvilinearZGrid(axis2, axis2, nil, time1, false, false); err == nil {
		t.Error("expected error for 1-D curvilinear lon")
	}
	if _, err := NewCurvilinearZGrid(sparse.ZerosDense(2, 3), sparse.ZerosDense(3, 2), nil, time1, false, false); err == nil {
		t.Error("expected error for mismatched curvilinear shapes")
	}
	// An S grid needs a depth table of matching horizontal extent.
	if _, err := NewRectilinearSGrid(axis2, axis2, denseFill3D(3, 4, 4, func(zi, yi, xi int) float64 { return float64(zi) }), time1, false, false); err == nil {
		t.Error("expected error for mismatched S depth extents")
	}
	if _, err := NewRectilinearSGrid(axis2, axis2, nil, time1, false, false); err == nil {
		t.Error("expected error for S grid without depth table")
	}

	g, err := NewRectilinearZGrid(axis2, axis2, nil, nil, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, zdim, tdim := g.Extents(); zdim != 1 || tdim != 1 {
		t.Errorf("surface grid extents: got zdim=%d, tdim=%d; want 1, 1", zdim, tdim)
	}
}

func TestNewFieldValidation(t *testing.T) {
	grid, err := NewRectilinearZGrid(UniformAxis(0, 1, 2), UniformAxis(0, 1, 3), nil, []float64{0, 1}, false, false)
	if err != nil {
		t.Fatal(err)
	}
	// Shape mismatch.
	if _, err := NewField("bad", grid, sparse.ZerosDense(2, 1, 2, 2), false, false); err == nil {
		t.Error("expected error for data/grid shape mismatch")
	}
	// Extrapolation and periodicity are mutually exclusive.
	if _, err := NewField("bad", grid, sparse.ZerosDense(2, 1, 3, 2), true, true); err == nil {
		t.Error("expected error for extrapolation+periodic")
	}
	// Degenerate z axis may be omitted.
	if _, err := NewField("ok", grid, sparse.ZerosDense(2, 3, 2), false, false); err != nil {
		t.Errorf("3-D data on a surface grid: %v", err)
	}
}

func TestGridBounds(t *testing.T) {
	g, err := NewRectilinearZGrid(UniformAxis(-10, 20, 4), UniformAxis(35, 45, 3), nil, []float64{0}, false, false)
	if err != nil {
		t.Fatal(err)
	}
	b := g.Bounds()
	if b.Min.X != -10 || b.Max.X != 20 || b.Min.Y != 35 || b.Max.Y != 45 {
		t.Errorf("bounds: got (%v, %v); want ((-10, 35), (20, 45))", b.Min, b.Max)
	}
}

func TestGridSet(t *testing.T) {
	mkField := func(name string, lat1 float64) *Field {
		grid, err := NewRectilinearZGrid(UniformAxis(0, 1, 2), UniformAxis(0, lat1, 2), nil, []float64{0}, false, false)
		if err != nil {
			t.Fatal(err)
		}
		f, err := NewField(name, grid, sparse.ZerosDense(1, 1, 2, 2), false, false)
		if err != nil {
			t.Fatal(err)
		}
		return f
	}

	set := &GridSet{}
	u := mkField("U", 1)
	v := mkField("V", 1)
	w := mkField("W", 2)
	set.AddField(u)
	set.AddField(v)
	set.AddField(w)

	if set.NumGrids() != 2 {
		t.Fatalf("got %d grids; want 2", set.NumGrids())
	}
	if u.GridID() != 0 || v.GridID() != 0 || w.GridID() != 1 {
		t.Errorf("grid IDs: got (%d, %d, %d); want (0, 0, 1)", u.GridID(), v.GridID(), w.GridID())
	}
	if u.Grid() != v.Grid() {
		t.Error("equivalent grids were not shared")
	}
	if u.Grid() == w.Grid() {
		t.Error("distinct grids were wrongly shared")
	}

	h := set.Hints()
	if len(h.xi) != 2 {
		t.Errorf("hint block covers %d grids; want 2", len(h.xi))
	}
}
