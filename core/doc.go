// SPDX-License-Identifier: MIT
//
// Package core defines the shared vocabulary of spanpath: index-addressed
// weighted edges, the explicit Distance sum type and the dense
// DistanceMatrix produced by all-pairs shortest-path algorithms.
//
// Vertices
//
//	A vertex is an int in [0, n). There is no vertex record; a graph is the
//	pair (edges []Edge, n int). Directedness is expressed by the edge list
//	itself: an undirected graph is supplied as both directions of every
//	edge (see Undirected).
//
// Distances
//
//	Distance is either Finite(v) or Unreachable(). Algorithms never add a
//	weight to an unreachable distance; Add on Unreachable stays Unreachable.
//	This replaces the "largest float means infinity" convention, which
//	silently corrupts results once a potential is added to the sentinel.
//
// Validation
//
//	Algorithm packages assume valid input. Collaborators that read edges
//	from the outside world call Validate first:
//
//	    if err := core.Validate(edges, n); err != nil {
//	        return err // wraps ErrVertexRange / ErrBadWeight / ErrNegativeOrder
//	    }
//
// Immutability
//
//	No function in this module mutates a caller's edge slice. Helpers that
//	reorder or transform edges (SortedByWeight, Reversed, Undirected) return
//	fresh slices.
package core
