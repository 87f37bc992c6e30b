// File: format.go
// Role: Textual rendering of shortest-path results, shared by both
//       representations' PermuteShortestPaths output.
package core

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// noPathFound is written when a path has no usable route to render.
const noPathFound = "No Path Found"

// WritePath renders path as |{v1, v2, ..., vn}| = dist on a single line.
// Paths with fewer than two vertices render as "No Path Found": a nil path
// means unreachable, and a single-vertex path carries no route worth
// printing.
// Complexity: O(len(path)).
func WritePath[T cmp.Ordered](w io.Writer, path []*Vertex[T], dist float64) {
	if len(path) < 2 {
		fmt.Fprintln(w, noPathFound)

		return
	}

	var b strings.Builder
	b.WriteString("|{")
	for i, v := range path {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v.Value)
	}
	fmt.Fprintf(&b, "}| = %g", dist)
	fmt.Fprintln(w, b.String())
}
