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

// Package drift samples gridded geophysical fields at continuous points in
// space and time for Lagrangian particle tracking.
//
// Fields are scalar quantities over structured meshes — rectilinear or
// curvilinear in the horizontal, with fixed (Z) or terrain-following (S)
// vertical coordinates — stored in (time, depth, lat, lon) order following
// the NEMO convention. A sample locates the grid cell containing the query
// point by a local search seeded with per-particle hint indices, inverts the
// cell geometry to local coordinates, and interpolates bilinearly,
// trilinearly or by nearest neighbor between the two bracketing time frames.
//
// The sampling operations are pure: grids and fields are immutable after
// construction and may be shared between goroutines, while each particle's
// Hints block is mutated in place and must not be shared.
package drift
