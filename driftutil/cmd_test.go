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

package driftutil

import "testing"

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		want interface{}
	}{
		{"UVar", "U"},
		{"VVar", "V"},
		{"LonVar", "lon"},
		{"LatVar", "lat"},
		{"TimeVar", "time"},
		{"Kernel", "rk4"},
		{"SphereMesh", true},
		{"ZonalPeriodic", false},
		{"Steps", 100},
		{"NumParticles", 10},
	}
	for _, test := range tests {
		if got := Cfg.Get(test.name); got != test.want {
			t.Errorf("%s: got %v (%T); want %v (%T)", test.name, got, got, test.want, test.want)
		}
	}
	if got := Cfg.GetFloat64("Dt"); got != 300 {
		t.Errorf("Dt: got %v; want 300", got)
	}
}

func TestParseLonLat(t *testing.T) {
	lon, lat, err := parseLonLat(" -12.5, 40 ")
	if err != nil {
		t.Fatal(err)
	}
	if lon != -12.5 || lat != 40 {
		t.Errorf("got (%g, %g); want (-12.5, 40)", lon, lat)
	}
	if _, _, err := parseLonLat("1;2"); err == nil {
		t.Error("expected error for malformed pair")
	}
	if _, _, err := parseLonLat("a,2"); err == nil {
		t.Error("expected error for non-numeric longitude")
	}
}

func TestRunMissingVelocityFile(t *testing.T) {
	if err := Run(Cfg); err == nil {
		t.Error("expected error when no UFile is configured")
	}
	Cfg.Set("UFile", "nonexistent.nc")
	defer Cfg.Set("UFile", "")
	if err := Run(Cfg); err == nil {
		t.Error("expected error for a missing velocity file")
	}
}
