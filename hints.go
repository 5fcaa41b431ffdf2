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

// Hints holds the last-found cell and time indices of one particle, one slot
// per grid. They seed the local searches of the next query so that repeated
// nearby samples run in near-constant time.
//
// Hints are advisory: any in-range value is a legal starting point, and a
// query that fails leaves them in an unspecified but in-range state. A Hints
// block must not be shared between particles sampled concurrently; the
// sampling operations mutate it in place.
type Hints struct {
	xi, yi, zi, ti []int

	// zcol is scratch space for the synthetic S-grid vertical column,
	// sized to the deepest grid so that sampling does not allocate.
	zcol []float32
}

// NewHints creates a hint block covering n grids, with vertical scratch
// space for grids up to zdimMax levels deep. Time hints start at -1,
// meaning "no previous query".
func NewHints(n, zdimMax int) *Hints {
	h := &Hints{
		xi:   make([]int, n),
		yi:   make([]int, n),
		zi:   make([]int, n),
		ti:   make([]int, n),
		zcol: make([]float32, zdimMax),
	}
	for i := range h.ti {
		h.ti[i] = -1
	}
	return h
}

// At returns the hint indices stored for grid ID id.
func (h *Hints) At(id int) (xi, yi, zi, ti int) {
	return h.xi[id], h.yi[id], h.zi[id], h.ti[id]
}

// column returns scratch space for a vertical column of zdim+ levels,
// growing the buffer when a deeper grid than anticipated is sampled.
func (h *Hints) column(zdim int) []float32 {
	if len(h.zcol) < zdim {
		h.zcol = make([]float32, zdim)
	}
	return h.zcol[:zdim]
}
