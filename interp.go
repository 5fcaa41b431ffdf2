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

// Spatial interpolation kernels. Each operates on the single time frame ti
// of the field's packed data, with the cell and local coordinates produced
// by searchIndices. Weights are accumulated in float64 and narrowed on
// output.

// bilinear interpolates the (y, x) plane of frame ti within cell c.
func (f *Field) bilinear(ti int, c cell) float32 {
	v := (1-c.xsi)*(1-c.eta)*float64(f.at(ti, 0, c.yi, c.xi)) +
		c.xsi*(1-c.eta)*float64(f.at(ti, 0, c.yi, c.xi+1)) +
		c.xsi*c.eta*float64(f.at(ti, 0, c.yi+1, c.xi+1)) +
		(1-c.xsi)*c.eta*float64(f.at(ti, 0, c.yi+1, c.xi))
	return float32(v)
}

// trilinear interpolates frame ti within cell c: bilinear on the slabs zi
// and zi+1, then linear in zeta between them.
func (f *Field) trilinear(ti int, c cell) float32 {
	f0 := (1-c.xsi)*(1-c.eta)*float64(f.at(ti, c.zi, c.yi, c.xi)) +
		c.xsi*(1-c.eta)*float64(f.at(ti, c.zi, c.yi, c.xi+1)) +
		c.xsi*c.eta*float64(f.at(ti, c.zi, c.yi+1, c.xi+1)) +
		(1-c.xsi)*c.eta*float64(f.at(ti, c.zi, c.yi+1, c.xi))
	f1 := (1-c.xsi)*(1-c.eta)*float64(f.at(ti, c.zi+1, c.yi, c.xi)) +
		c.xsi*(1-c.eta)*float64(f.at(ti, c.zi+1, c.yi, c.xi+1)) +
		c.xsi*c.eta*float64(f.at(ti, c.zi+1, c.yi+1, c.xi+1)) +
		(1-c.xsi)*c.eta*float64(f.at(ti, c.zi+1, c.yi+1, c.xi))
	return float32((1-c.zeta)*f0 + c.zeta*f1)
}

// nearest2D picks the nearest node of the (y, x) plane of frame ti.
func (f *Field) nearest2D(ti int, c cell) float32 {
	ii, jj := c.xi, c.yi
	if c.xsi >= 0.5 {
		ii++
	}
	if c.eta >= 0.5 {
		jj++
	}
	return f.at(ti, 0, jj, ii)
}

// nearest3D picks the nearest node of frame ti.
func (f *Field) nearest3D(ti int, c cell) float32 {
	ii, jj, kk := c.xi, c.yi, c.zi
	if c.xsi >= 0.5 {
		ii++
	}
	if c.eta >= 0.5 {
		jj++
	}
	if c.zeta >= 0.5 {
		kk++
	}
	return f.at(ti, kk, jj, ii)
}
