// Package export renders a corehsm machine's registered structure as
// Graphviz DOT or Mermaid text, for debugging and documentation. It is
// read-only: nothing here can mutate a machine or influence dispatch.
//
// Grounded on two pack repos that generate diagrams from their own
// state-machine model: anggasct-fluo/visualization/dot.go and
// atlekbai-stateless/graph/uml_dot.go. Neither is imported directly since
// both draw on their own machine's internal types; export instead consumes
// corehsm.Snapshot, the generic read-only view any Machine[S, E] exposes.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corehsm/corehsm"
)

// DOT renders snap as a Graphviz digraph. Each entry point is drawn as a
// dashed edge labelled "entry" from the parent to its designated child; no
// separate initial-state node is drawn.
func DOT[S comparable, E comparable](snap corehsm.Snapshot[S, E]) string {
	var sb strings.Builder
	sb.WriteString("digraph corehsm {\n")
	sb.WriteString("\trankdir=\"LR\";\n")
	sb.WriteString("\tnode [shape=box];\n")

	states := labelStrings(snap.States)
	for _, s := range states {
		if s == label(snap.Current) {
			fmt.Fprintf(&sb, "\t%q [peripheries=2];\n", s)
		} else {
			fmt.Fprintf(&sb, "\t%q;\n", s)
		}
	}

	for parent, entry := range snap.EntryPoints {
		fmt.Fprintf(&sb, "\t%q -> %q [style=dashed, label=\"entry\"];\n", label(parent), label(entry))
	}

	rows := append([]corehsm.TransitionRow[S, E]{}, snap.Transitions...)
	sort.Slice(rows, func(i, j int) bool {
		if label(rows[i].From) != label(rows[j].From) {
			return label(rows[i].From) < label(rows[j].From)
		}
		return rows[i].Index < rows[j].Index
	})
	for _, row := range rows {
		lbl := label(row.Event)
		if row.Guarded {
			lbl += " [guard]"
		}
		fmt.Fprintf(&sb, "\t%q -> %q [label=%q];\n", label(row.From), label(row.To), lbl)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Mermaid renders snap as a Mermaid stateDiagram-v2 block.
func Mermaid[S comparable, E comparable](snap corehsm.Snapshot[S, E]) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	for parent, entry := range snap.EntryPoints {
		fmt.Fprintf(&sb, "\t%s --> %s\n", label(parent), label(entry))
	}

	rows := append([]corehsm.TransitionRow[S, E]{}, snap.Transitions...)
	sort.Slice(rows, func(i, j int) bool {
		if label(rows[i].From) != label(rows[j].From) {
			return label(rows[i].From) < label(rows[j].From)
		}
		return rows[i].Index < rows[j].Index
	})
	for _, row := range rows {
		lbl := label(row.Event)
		if row.Guarded {
			lbl += " [guard]"
		}
		fmt.Fprintf(&sb, "\t%s --> %s: %s\n", label(row.From), label(row.To), lbl)
	}

	fmt.Fprintf(&sb, "\tnote right of %s : current\n", label(snap.Current))
	return sb.String()
}

func label[T any](v T) string {
	return fmt.Sprintf("%v", v)
}

func labelStrings[T any](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = label(v)
	}
	sort.Strings(out)
	return out
}
