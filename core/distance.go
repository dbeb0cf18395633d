// SPDX-License-Identifier: MIT

package core

import "strconv"

// Distance is a shortest-path length that is either finite or unreachable.
// The zero value is Unreachable.
type Distance struct {
	value     float64
	reachable bool
}

// Finite returns a reachable distance of v.
func Finite(v float64) Distance {
	return Distance{value: v, reachable: true}
}

// Unreachable returns the distance of a vertex with no path.
func Unreachable() Distance {
	return Distance{}
}

// Reachable reports whether d is finite.
func (d Distance) Reachable() bool { return d.reachable }

// Value returns the finite value and true, or 0 and false when unreachable.
func (d Distance) Value() (float64, bool) {
	if !d.reachable {
		return 0, false
	}

	return d.value, true
}

// Add returns d extended by w. Unreachable stays Unreachable.
func (d Distance) Add(w float64) Distance {
	if !d.reachable {
		return d
	}

	return Finite(d.value + w)
}

// Less reports whether d is strictly shorter than o.
// Any finite distance is shorter than Unreachable; two unreachable
// distances are equal.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.reachable:
		return false
	case !o.reachable:
		return true
	default:
		return d.value < o.value
	}
}

// String formats a finite distance with %g and Unreachable as "unreachable".
func (d Distance) String() string {
	if !d.reachable {
		return "unreachable"
	}

	return strconv.FormatFloat(d.value, 'g', -1, 64)
}
