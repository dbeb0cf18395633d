// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Validate.
var (
	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: vertex count is negative")

	// ErrVertexRange indicates an edge endpoint outside [0, n).
	ErrVertexRange = errors.New("core: edge endpoint out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight is NaN or infinite")
)

// Edge is a weighted connection From→To between two vertex indices.
//
// Edges are directed by convention; callers wanting an undirected graph
// supply both directions (see Undirected).
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the target vertex index.
	To int

	// Weight is the edge cost; it may be negative.
	Weight float64
}

// String renders the edge as "from - to : weight".
func (e Edge) String() string {
	return fmt.Sprintf("%d - %d : %g", e.From, e.To, e.Weight)
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}
