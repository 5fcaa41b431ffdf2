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

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/drift"
	"github.com/spatialmodel/drift/advect"
	"github.com/spf13/cast"
)

// Run loads the velocity fields named in cfg, seeds particles along the
// configured release section, and advects them.
func Run(cfg *viper.Viper) error {
	log := logrus.New()
	log.Out = os.Stdout

	uv, set, err := loadVelocity(cfg)
	if err != nil {
		return err
	}

	var kernel advect.Kernel
	switch k := cfg.GetString("Kernel"); k {
	case "rk4":
		kernel = advect.RK4
	case "euler":
		kernel = advect.Euler
	default:
		return fmt.Errorf("drift: unknown advection kernel %q (want rk4 or euler)", k)
	}

	lon0, lat0, err := parseLonLat(cfg.GetString("ReleaseStart"))
	if err != nil {
		return err
	}
	lon1, lat1, err := parseLonLat(cfg.GetString("ReleaseEnd"))
	if err != nil {
		return err
	}
	n := cfg.GetInt("NumParticles")
	if n < 1 {
		return fmt.Errorf("drift: NumParticles must be ≥ 1; got %d", n)
	}
	t0 := uv.U.Grid().Time()[0]
	particles := make([]*advect.Particle, n)
	for i := range particles {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		particles[i] = advect.NewParticle(
			float32(lon0+(lon1-lon0)*frac),
			float32(lat0+(lat1-lat0)*frac),
			0, t0, set.Hints())
	}

	s := advect.NewSet(kernel, particles...)
	s.Log = log

	dt := cast.ToFloat64(cfg.Get("Dt"))
	steps := cfg.GetInt("Steps")
	log.WithFields(logrus.Fields{
		"particles": n,
		"dt":        dt,
		"steps":     steps,
	}).Info("starting advection")
	if err := s.Run(context.Background(), uv, dt, steps); err != nil {
		return err
	}

	if out := cfg.GetString("OutputFile"); out != "" {
		if err := writePositions(out, particles); err != nil {
			return err
		}
		log.WithField("file", out).Info("wrote final particle positions")
	}
	for i, p := range particles {
		log.WithFields(logrus.Fields{
			"particle": i,
			"lon":      p.X,
			"lat":      p.Y,
			"time":     p.Time,
			"state":    p.State.String(),
		}).Info("final state")
	}
	return nil
}

// loadVelocity assembles the velocity vector field from the NetCDF files
// named in cfg.
func loadVelocity(cfg *viper.Viper) (*drift.VectorField, *drift.GridSet, error) {
	uFile := os.ExpandEnv(cfg.GetString("UFile"))
	if uFile == "" {
		return nil, nil, fmt.Errorf("drift: no UFile specified")
	}
	vFile := os.ExpandEnv(cfg.GetString("VFile"))
	if vFile == "" {
		vFile = uFile
	}
	spec := drift.NCFieldSpec{
		Lon:           cfg.GetString("LonVar"),
		Lat:           cfg.GetString("LatVar"),
		Depth:         cfg.GetString("DepthVar"),
		Time:          cfg.GetString("TimeVar"),
		SphereMesh:    cfg.GetBool("SphereMesh"),
		ZonalPeriodic: cfg.GetBool("ZonalPeriodic"),
	}
	uSpec := spec
	uSpec.Data = cfg.GetString("UVar")
	u, err := drift.LoadRectilinearZField(uFile, uSpec)
	if err != nil {
		return nil, nil, err
	}
	vSpec := spec
	vSpec.Data = cfg.GetString("VVar")
	v, err := drift.LoadRectilinearZField(vFile, vSpec)
	if err != nil {
		return nil, nil, err
	}
	set := &drift.GridSet{}
	set.AddField(u)
	set.AddField(v)
	return drift.NewVectorField(u, v), set, nil
}

// parseLonLat parses a "lon,lat" pair.
func parseLonLat(s string) (lon, lat float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("drift: expected \"lon,lat\"; got %q", s)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("drift: parsing longitude in %q: %v", s, err)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("drift: parsing latitude in %q: %v", s, err)
	}
	return lon, lat, nil
}

// writePositions writes final particle positions and states to a CSV file.
func writePositions(path string, particles []*advect.Particle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("drift: creating output file: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"particle", "lon", "lat", "depth", "time", "state"}); err != nil {
		return err
	}
	for i, p := range particles {
		rec := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(float64(p.X), 'g', -1, 32),
			strconv.FormatFloat(float64(p.Y), 'g', -1, 32),
			strconv.FormatFloat(float64(p.Z), 'g', -1, 32),
			strconv.FormatFloat(p.Time, 'g', -1, 64),
			strconv.Itoa(int(p.State)),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
