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

import "fmt"

// ErrorKind classifies the outcome of a sampling operation. The numeric
// values are part of the interface: advection loops store them directly in
// particle state, and they match the codes used by upstream tooling.
type ErrorKind int

// Sampling outcome codes. Success, Repeat and Delete are never returned by
// the sampling core itself; they are particle-lifecycle codes reserved for
// the caller.
const (
	Success ErrorKind = iota
	Repeat
	Delete
	Error
	OutOfBounds
	TimeExtrapolation
)

func (k ErrorKind) String() string {
	switch k {
	case Success:
		return "success"
	case Repeat:
		return "repeat"
	case Delete:
		return "delete"
	case Error:
		return "error"
	case OutOfBounds:
		return "out of bounds"
	case TimeExtrapolation:
		return "time extrapolation"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// A SampleError is the typed error returned by the sampling operations.
type SampleError struct {
	Kind ErrorKind
	Msg  string
}

func (e *SampleError) Error() string {
	if e.Msg == "" {
		return "drift: " + e.Kind.String()
	}
	return "drift: " + e.Msg
}

// KindOf extracts the ErrorKind from an error returned by a sampling
// operation. A nil error is Success; a non-SampleError is Error.
func KindOf(err error) ErrorKind {
	if err == nil {
		return Success
	}
	if se, ok := err.(*SampleError); ok {
		return se.Kind
	}
	return Error
}

// Shared instances keep the sampling hot path allocation-free.
var (
	errOutOfBounds       = &SampleError{Kind: OutOfBounds, Msg: "point outside grid domain"}
	errSearchIterations  = &SampleError{Kind: OutOfBounds, Msg: "cell not found within iteration limit"}
	errTimeExtrapolation = &SampleError{Kind: TimeExtrapolation, Msg: "time outside grid time range"}
	errNaNCoords         = &SampleError{Kind: Error, Msg: "local cell coordinates are NaN"}
	errGridKind          = &SampleError{Kind: Error, Msg: "unsupported grid kind"}
	errInterpMethod      = &SampleError{Kind: Error, Msg: "unsupported interpolation method"}
	errHintRange         = &SampleError{Kind: Error, Msg: "hint block does not cover this field's grid"}
)
