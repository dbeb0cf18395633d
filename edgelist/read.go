// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/spanpath/core"
)

// Sentinel errors returned by Read.
var (
	// ErrBadHeader indicates a missing or malformed "numVertices numEdges" header.
	ErrBadHeader = errors.New("edgelist: malformed header")

	// ErrBadEdge indicates a malformed "origin destination weight" triple.
	ErrBadEdge = errors.New("edgelist: malformed edge")

	// ErrEdgeCount indicates fewer or more triples than the header announced.
	ErrEdgeCount = errors.New("edgelist: edge count does not match header")
)

// Graph is a validated graph read from text.
type Graph struct {
	// N is the number of vertices.
	N int

	// Edges holds the edges in input order.
	Edges []core.Edge
}

// Read parses a graph from r. Validation failures wrap one of ErrBadHeader,
// ErrBadEdge, ErrEdgeCount, core.ErrVertexRange or core.ErrBadWeight.
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}

		return sc.Text(), true
	}

	// fail prefers an underlying I/O error over the parse error it caused.
	fail := func(err error) (*Graph, error) {
		if serr := sc.Err(); serr != nil {
			return nil, fmt.Errorf("edgelist: read: %w", serr)
		}

		return nil, err
	}

	// 1) Header.
	n, err := readCount(next, "numVertices")
	if err != nil {
		return fail(err)
	}
	m, err := readCount(next, "numEdges")
	if err != nil {
		return fail(err)
	}

	// 2) Exactly m triples.
	edges := make([]core.Edge, 0, min(m, 1<<16)) // header is untrusted
	for i := 0; i < m; i++ {
		e, err := readEdge(next, i)
		if err != nil {
			return fail(err)
		}
		edges = append(edges, e)
	}
	if tok, ok := next(); ok {
		return nil, fmt.Errorf("%w: unexpected token %q after %d edges", ErrEdgeCount, tok, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	// 3) Range and weight checks.
	if err := core.Validate(edges, n); err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}

	return &Graph{N: n, Edges: edges}, nil
}

func readCount(next func() (string, bool), name string) (int, error) {
	tok, ok := next()
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrBadHeader, name)
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s=%q is not a non-negative integer", ErrBadHeader, name, tok)
	}

	return v, nil
}

func readEdge(next func() (string, bool), i int) (core.Edge, error) {
	var fields [3]string
	for k := range fields {
		tok, ok := next()
		if !ok {
			if k == 0 {
				return core.Edge{}, fmt.Errorf("%w: expected edge #%d, got end of input", ErrEdgeCount, i)
			}

			return core.Edge{}, fmt.Errorf("%w: edge #%d is truncated", ErrBadEdge, i)
		}
		fields[k] = tok
	}

	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: edge #%d origin %q", ErrBadEdge, i, fields[0])
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: edge #%d destination %q", ErrBadEdge, i, fields[1])
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: edge #%d weight %q", ErrBadEdge, i, fields[2])
	}

	return core.Edge{From: from, To: to, Weight: w}, nil
}
