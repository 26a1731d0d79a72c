package visual

import (
	"fmt"
	"io"
	"strings"
)

// Dot outputs the block structure of a tree in Graphviz DOT format.
// Every block becomes a record node with one field per entry; edges leave
// the gaps between entries, so a child sits below the keys it is bounded by.
func Dot[E any](t Blocker[E], w io.Writer, label Label[E]) error {
	var nodelist, edgelist strings.Builder
	blocks := collect(t)
	for _, b := range blocks {
		fields := make([]string, 0, 2*len(b.Entries)+1)
		fields = append(fields, "<g0>")
		for i, e := range b.Entries {
			fields = append(fields, dotEscape(label.apply(e)), fmt.Sprintf("<g%d>", i+1))
		}
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", b.ID,
			strings.Join(fields, "|"), blockDotStyles(b.Leaf, b.Parent < 0))
		if b.Parent >= 0 {
			fmt.Fprintf(&edgelist, "\t\"%d\":g%d -> \"%d\";\n", b.Parent, b.Index, b.ID)
		}
	}
	T().Debugf("visual: DOT for %d blocks", len(blocks))
	var out strings.Builder
	out.WriteString("strict digraph {\n")
	out.WriteString("\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	out.WriteString(nodelist.String())
	out.WriteString(edgelist.String())
	out.WriteString("}\n")
	_, err := io.WriteString(w, out.String())
	return err
}

func blockDotStyles(isleaf bool, isroot bool) string {
	s := ",style=filled"
	switch {
	case isroot:
		s += ",fillcolor=\"#ffcc88\""
	case isleaf:
		s += ",fillcolor=\"#a3d7e4\""
	default:
		s += ",fillcolor=\"#cceeff\""
	}
	return s
}

var dotReplacer = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`,
)

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}
