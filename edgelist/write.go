// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/spanpath/core"
)

// NoPath is printed for unreachable pairs.
const NoPath = "no path exists"

// NegativeCycleMessage is printed instead of a matrix when shortest paths
// are undefined.
const NegativeCycleMessage = "Shortest paths cannot be computed: the graph contains a negative-weight cycle."

// WriteForest renders forest edges one per line followed by the total weight.
func WriteForest(w io.Writer, forest []core.Edge) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Minimum spanning forest edges:")
	for _, e := range forest {
		fmt.Fprintln(bw, e)
	}
	fmt.Fprintf(bw, "Total weight: %g\n", core.TotalWeight(forest))

	return bw.Flush()
}

// WriteMatrix renders every (source, target) pair on its own line, using
// NoPath for unreachable pairs. When m tracks predecessors, the vertex
// sequence is appended in brackets.
func WriteMatrix(w io.Writer, m *core.DistanceMatrix) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Shortest paths:")
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := m.At(i, j)
			if !d.Reachable() {
				fmt.Fprintf(bw, "Path from %d to %d: %s\n", i, j, NoPath)
				continue
			}
			if p, ok := m.Path(i, j); ok {
				fmt.Fprintf(bw, "Path from %d to %d: %v %v\n", i, j, d, p)
				continue
			}
			fmt.Fprintf(bw, "Path from %d to %d: %v\n", i, j, d)
		}
	}

	return bw.Flush()
}

// WriteNegativeCycle renders the negative-cycle outcome.
func WriteNegativeCycle(w io.Writer) error {
	_, err := fmt.Fprintln(w, NegativeCycleMessage)

	return err
}
