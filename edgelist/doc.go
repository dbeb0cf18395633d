// SPDX-License-Identifier: MIT
//
// Package edgelist is the text collaborator around the algorithm packages:
// it reads a graph in the plain whitespace-separated edge-list format and
// renders spanning forests and distance matrices as human-readable text.
//
// Input format
//
//	numVertices numEdges
//	origin destination weight
//	...                        (exactly numEdges triples)
//
// Tokens may be separated by any whitespace, including newlines. Vertices
// are 0-based. Every edge is checked with core.Validate before the graph is
// returned, so the algorithm packages never see out-of-range indices or
// non-finite weights.
//
// Output format
//
//	Minimum spanning forest edges:
//	0 - 1 : 1
//	...
//	Total weight: 4
//
//	Shortest paths:
//	Path from 0 to 1: 1
//	Path from 1 to 0: no path exists
package edgelist
