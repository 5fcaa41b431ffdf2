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
	"math"
	"testing"
)

func TestFix1DIndex(t *testing.T) {
	tests := []struct {
		xi, xdim int
		sphere   bool
		want     int
	}{
		{-1, 10, false, 0},
		{-1, 10, true, 8},
		{9, 10, false, 8},
		{9, 10, true, 0},
		{4, 10, false, 4},
		{4, 10, true, 4},
		{0, 10, true, 0},
		{8, 10, true, 8},
	}
	for _, test := range tests {
		if got := fix1DIndex(test.xi, test.xdim, test.sphere); got != test.want {
			t.Errorf("fix1DIndex(%d, %d, %v) = %d; want %d",
				test.xi, test.xdim, test.sphere, got, test.want)
		}
	}
}

func TestFix2DIndices(t *testing.T) {
	tests := []struct {
		xi, yi, xdim, ydim int
		sphere             bool
		wantXi, wantYi     int
	}{
		{3, -1, 8, 5, false, 3, 0},
		{3, 4, 8, 5, false, 3, 3},
		{-1, 2, 8, 5, false, 0, 2},
		// Polar fold: yi saturates at the top of a spherical mesh and
		// xi reflects to xdim-xi.
		{3, 5, 8, 5, true, 5, 3},
		// The reflection of the seam cell leaves xi out of range and
		// it wraps back to 0.
		{0, 7, 8, 5, true, 0, 3},
		{3, 5, 8, 5, false, 3, 3},
	}
	for _, test := range tests {
		gotXi, gotYi := fix2DIndices(test.xi, test.yi, test.xdim, test.ydim, test.sphere)
		if gotXi != test.wantXi || gotYi != test.wantYi {
			t.Errorf("fix2DIndices(%d, %d, %d, %d, %v) = (%d, %d); want (%d, %d)",
				test.xi, test.yi, test.xdim, test.ydim, test.sphere,
				gotXi, gotYi, test.wantXi, test.wantYi)
		}
	}
}

func TestSearchVerticalZ(t *testing.T) {
	zvals := []float32{0, 1, 2, 3}

	zi, zeta, err := searchVerticalZ(1.5, zvals, 0)
	if err != nil {
		t.Fatal(err)
	}
	if zi != 1 || zeta != 0.5 {
		t.Errorf("z=1.5: got (zi=%d, zeta=%g); want (1, 0.5)", zi, zeta)
	}

	// Walk down from a stale hint.
	zi, zeta, err = searchVerticalZ(0.25, zvals, 2)
	if err != nil {
		t.Fatal(err)
	}
	if zi != 0 || zeta != 0.25 {
		t.Errorf("z=0.25 from zi=2: got (zi=%d, zeta=%g); want (0, 0.25)", zi, zeta)
	}

	// The top boundary is in bounds and brackets in the last cell.
	zi, zeta, err = searchVerticalZ(3, zvals, 3)
	if err != nil {
		t.Fatal(err)
	}
	if zi != 2 || zeta != 1 {
		t.Errorf("z=3: got (zi=%d, zeta=%g); want (2, 1)", zi, zeta)
	}

	if _, _, err = searchVerticalZ(3.001, zvals, 0); KindOf(err) != OutOfBounds {
		t.Errorf("z=3.001: got %v; want out of bounds", err)
	}
	if _, _, err = searchVerticalZ(-0.001, zvals, 0); KindOf(err) != OutOfBounds {
		t.Errorf("z=-0.001: got %v; want out of bounds", err)
	}
}

func TestSearchTimeIndex(t *testing.T) {
	tvals := []float64{0, 10}

	ti, tt := searchTimeIndex(25, tvals, 0, true)
	if ti != 0 || tt != 5 {
		t.Errorf("t=25 periodic: got (ti=%d, t=%g); want (0, 5)", ti, tt)
	}

	ti, tt = searchTimeIndex(-3, tvals, 0, true)
	if ti != 0 || tt != 7 {
		t.Errorf("t=-3 periodic: got (ti=%d, t=%g); want (0, 7)", ti, tt)
	}

	ti, tt = searchTimeIndex(25, tvals, 0, false)
	if ti != 1 || tt != 25 {
		t.Errorf("t=25 non-periodic: got (ti=%d, t=%g); want (1, 25)", ti, tt)
	}

	// Negative hints mean "no previous query" and clamp to zero.
	ti, tt = searchTimeIndex(3, tvals, -1, false)
	if ti != 0 || tt != 3 {
		t.Errorf("t=3 from ti=-1: got (ti=%d, t=%g); want (0, 3)", ti, tt)
	}

	tvals = []float64{0, 1, 2, 5, 9}
	ti, _ = searchTimeIndex(4.5, tvals, 4, false)
	if ti != 2 {
		t.Errorf("t=4.5 from ti=4: got ti=%d; want 2", ti)
	}
	ti, _ = searchTimeIndex(9, tvals, 0, false)
	if ti != 4 {
		t.Errorf("t=9: got ti=%d; want 4", ti)
	}
}

func TestNormalizeLon(t *testing.T) {
	if got := normalizeLon(-180, 270); got != 180 {
		t.Errorf("normalizeLon(-180, 270) = %g; want 180", got)
	}
	if got := normalizeLon(170, -120); got != -190 {
		t.Errorf("normalizeLon(170, -120) = %g; want -190", got)
	}
	if got := normalizeLonPair(-90, 180); got != 270 {
		t.Errorf("normalizeLonPair(-90, 180) = %g; want 270", got)
	}
}

func TestQuadrilateralInversion(t *testing.T) {
	// A single swept-quadrilateral cell with corners (0,0), (2,0), (4,2),
	// (0.5,1). The bilinear map sends (xsi, eta) = (0.5, 0.5) to
	// (1.625, 0.75), so inverting there must recover (0.5, 0.5) through
	// the quadratic branch.
	lon := denseFrom2D([][]float64{{0, 2}, {0.5, 4}})
	lat := denseFrom2D([][]float64{{0, 0}, {1, 2}})
	g, err := NewCurvilinearZGrid(lon, lat, nil, []float64{0}, false, false)
	if err != nil {
		t.Fatal(err)
	}
	c, err := g.searchCurvilinear(1.625, 0.75, 0, cell{}, 0, 0, 0, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.xi != 0 || c.yi != 0 {
		t.Errorf("got cell (%d, %d); want (0, 0)", c.xi, c.yi)
	}
	if math.Abs(c.xsi-0.5) > 1e-12 || math.Abs(c.eta-0.5) > 1e-12 {
		t.Errorf("got (xsi, eta) = (%g, %g); want (0.5, 0.5)", c.xsi, c.eta)
	}

	// Both local coordinates below the cell at the domain corner.
	if _, err := g.searchCurvilinear(-1, -1, 0, cell{}, 0, 0, 0, 1, nil); KindOf(err) != OutOfBounds {
		t.Errorf("corner query: got %v; want out of bounds", err)
	}
}
