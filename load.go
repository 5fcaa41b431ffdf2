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
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// NCFieldSpec names the NetCDF variables holding a field and its coordinate
// axes, and carries the mesh and time policy flags of the resulting field.
// Depth is optional; an empty name gives a surface-only grid.
type NCFieldSpec struct {
	Data  string
	Lon   string
	Lat   string
	Depth string
	Time  string

	SphereMesh             bool
	ZonalPeriodic          bool
	AllowTimeExtrapolation bool
	TimePeriodic           bool
}

// ReadNCF reads an entire NetCDF variable into a DenseArray carrying the
// file's dimension lengths for that variable.
func ReadNCF(varName string, ff *cdf.File) (*sparse.DenseArray, error) {
	dims := ff.Header.Lengths(varName)
	if len(dims) == 0 {
		return nil, fmt.Errorf("drift: read netcdf: variable %v not in file", varName)
	}
	r := ff.Reader(varName, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("drift: read netcdf variable %s: %v", varName, err)
	}
	data := sparse.ZerosDense(dims...)
	switch vals := buf.(type) {
	case []float32:
		for i, v := range vals {
			data.Elements[i] = float64(v)
		}
	case []float64:
		copy(data.Elements, vals)
	case []int32:
		for i, v := range vals {
			data.Elements[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("drift: read netcdf variable %s: unsupported data type %T", varName, buf)
	}
	return data, nil
}

// LoadRectilinearZField opens the NetCDF file at path and assembles the
// field described by spec on a fresh rectilinear Z grid read from the same
// file.
func LoadRectilinearZField(path string, spec NCFieldSpec) (*Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("drift: open netcdf file: %v", err)
	}
	defer f.Close()
	ff, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("drift: open netcdf file %s: %v", path, err)
	}
	return ncRectilinearZField(ff, spec)
}

func ncRectilinearZField(ff *cdf.File, spec NCFieldSpec) (*Field, error) {
	lon, err := ReadNCF(spec.Lon, ff)
	if err != nil {
		return nil, err
	}
	lat, err := ReadNCF(spec.Lat, ff)
	if err != nil {
		return nil, err
	}
	var depth *sparse.DenseArray
	if spec.Depth != "" {
		if depth, err = ReadNCF(spec.Depth, ff); err != nil {
			return nil, err
		}
	}
	timeArr, err := ReadNCF(spec.Time, ff)
	if err != nil {
		return nil, err
	}
	if len(timeArr.Shape) != 1 {
		return nil, fmt.Errorf("drift: netcdf variable %s: time must be 1-D; got shape %v", spec.Time, timeArr.Shape)
	}
	grid, err := NewRectilinearZGrid(lon, lat, depth, timeArr.Elements, spec.SphereMesh, spec.ZonalPeriodic)
	if err != nil {
		return nil, err
	}
	data, err := ReadNCF(spec.Data, ff)
	if err != nil {
		return nil, err
	}
	return NewField(spec.Data, grid, data, spec.AllowTimeExtrapolation, spec.TimePeriodic)
}
