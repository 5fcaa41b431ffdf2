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

// Package advect integrates particle pathlines through the velocity fields
// sampled by package drift.
package advect

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/drift"
)

// metersPerDegree converts velocities in m/s to degrees of latitude per
// second on spherical meshes (1852 m per arc minute).
const metersPerDegree = 1852 * 60

// A Particle is one Lagrangian tracer. Its hint block carries the grid
// indices found by its previous sample, so a particle must belong to
// exactly one concurrent advection loop.
type Particle struct {
	X, Y, Z float32
	Time    float64
	State   drift.ErrorKind

	hints *drift.Hints
}

// NewParticle creates a particle at the given position and time, with h
// sized for the grids the particle will sample (see GridSet.Hints).
func NewParticle(x, y, z float32, t float64, h *drift.Hints) *Particle {
	return &Particle{X: x, Y: y, Z: z, Time: t, State: drift.Success, hints: h}
}

// velocity samples the flow at an arbitrary trial position, converting to
// degrees per second on spherical meshes.
func velocity(uv *drift.VectorField, p *Particle, x, y, z float32, t float64) (float32, float32, error) {
	u, v, err := uv.Sample(x, y, z, t, p.hints, drift.Linear)
	if err != nil {
		return 0, 0, err
	}
	if uv.U.Grid().SphereMesh() {
		u /= metersPerDegree * float32(math.Cos(float64(y)*math.Pi/180))
		v /= metersPerDegree
	}
	return u, v, nil
}

// A Kernel advances one particle by one time step of length dt seconds.
type Kernel func(uv *drift.VectorField, p *Particle, dt float64) error

// Euler advances the particle with a single forward-Euler stage.
func Euler(uv *drift.VectorField, p *Particle, dt float64) error {
	u, v, err := velocity(uv, p, p.X, p.Y, p.Z, p.Time)
	if err != nil {
		return err
	}
	p.X += u * float32(dt)
	p.Y += v * float32(dt)
	p.Time += dt
	return nil
}

// RK4 advances the particle with the classic fourth-order Runge-Kutta
// scheme, sampling the flow at four trial positions.
func RK4(uv *drift.VectorField, p *Particle, dt float64) error {
	u1, v1, err := velocity(uv, p, p.X, p.Y, p.Z, p.Time)
	if err != nil {
		return err
	}
	x1, y1 := p.X+u1*float32(dt/2), p.Y+v1*float32(dt/2)
	u2, v2, err := velocity(uv, p, x1, y1, p.Z, p.Time+dt/2)
	if err != nil {
		return err
	}
	x2, y2 := p.X+u2*float32(dt/2), p.Y+v2*float32(dt/2)
	u3, v3, err := velocity(uv, p, x2, y2, p.Z, p.Time+dt/2)
	if err != nil {
		return err
	}
	x3, y3 := p.X+u3*float32(dt), p.Y+v3*float32(dt)
	u4, v4, err := velocity(uv, p, x3, y3, p.Z, p.Time+dt)
	if err != nil {
		return err
	}
	p.X += (u1 + 2*u2 + 2*u3 + u4) / 6 * float32(dt)
	p.Y += (v1 + 2*v2 + 2*v3 + v4) / 6 * float32(dt)
	p.Time += dt
	return nil
}

// A Set is a group of particles advanced together through the same flow.
type Set struct {
	Particles []*Particle
	Kernel    Kernel

	// Log, if non-nil, receives progress messages.
	Log logrus.FieldLogger
}

// NewSet creates a particle set advanced by kernel.
func NewSet(kernel Kernel, particles ...*Particle) *Set {
	return &Set{Particles: particles, Kernel: kernel}
}

// Run advances every live particle nsteps times with time step dt seconds.
//
// A particle whose step leaves the domain is marked Delete and frozen in
// place; a kernel asking for a Repeat gets one retry at dt/2 before the
// particle is deleted. Sampling errors of kind Error abort the run.
func (s *Set) Run(ctx context.Context, uv *drift.VectorField, dt float64, nsteps int) error {
	for n := 0; n < nsteps; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		alive := 0
		for _, p := range s.Particles {
			if p.State != drift.Success {
				continue
			}
			if err := s.step(uv, p, dt); err != nil {
				return err
			}
			if p.State == drift.Success {
				alive++
			}
		}
		if s.Log != nil {
			s.Log.WithFields(logrus.Fields{
				"step":  n + 1,
				"alive": alive,
			}).Info("advected particles")
		}
		if alive == 0 {
			break
		}
	}
	return nil
}

func (s *Set) step(uv *drift.VectorField, p *Particle, dt float64) error {
	err := s.Kernel(uv, p, dt)
	if drift.KindOf(err) == drift.Repeat {
		err = s.Kernel(uv, p, dt/2)
	}
	switch kind := drift.KindOf(err); kind {
	case drift.Success:
		return nil
	case drift.OutOfBounds, drift.TimeExtrapolation, drift.Delete, drift.Repeat:
		p.State = drift.Delete
		return nil
	default:
		return fmt.Errorf("advect: particle at (%g, %g, %g), t=%g: %w", p.X, p.Y, p.Z, p.Time, err)
	}
}
