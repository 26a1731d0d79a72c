package visual

import (
	"io"

	"github.com/npillmayer/ordtree/btree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders a tree as nested unordered lists: every block is a list
// item holding a span with the block's entries, followed by a list of its
// children. The fragment is wrapped into <div class="btree">.
func HTML[E any](t Blocker[E], w io.Writer, label Label[E]) error {
	root := HTMLNode(t, label)
	return html.Render(w, root)
}

// HTMLNode builds the element tree rendered by HTML.
func HTMLNode[E any](t Blocker[E], label Label[E]) *html.Node {
	div := element(atom.Div, "btree")
	lists := map[int]*html.Node{-1: element(atom.Ul, "")}
	div.AppendChild(lists[-1])
	t.Blocks(func(b btree.BlockInfo[E]) bool {
		class := "block inner"
		switch {
		case b.Parent < 0:
			class = "block root"
		case b.Leaf:
			class = "block leaf"
		}
		li := element(atom.Li, "")
		span := element(atom.Span, class)
		for i, e := range b.Entries {
			key := element(atom.Span, "key")
			key.AppendChild(&html.Node{Type: html.TextNode, Data: label.apply(e)})
			if i > 0 {
				span.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
			}
			span.AppendChild(key)
		}
		li.AppendChild(span)
		if !b.Leaf {
			ul := element(atom.Ul, "")
			li.AppendChild(ul)
			lists[b.ID] = ul
		}
		lists[b.Parent].AppendChild(li)
		return true
	})
	return div
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
