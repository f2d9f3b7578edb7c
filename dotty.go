package comptree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
)

// Dot outputs the structure reachable from a visitor in Graphviz DOT format
// (for debugging purposes). The visitor is consumed.
func Dot[T any](v Visitor[T], w io.Writer) error {
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	ids := &idalloc{}
	if _, err := dotSubtree(v, ids, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

type idalloc struct {
	max int
}

func (ids *idalloc) alloc() int {
	ids.max++
	return ids.max
}

// dotSubtree emits the subtree under v and returns the DOT id of its root.
func dotSubtree[T any](v Visitor[T], ids *idalloc, w io.Writer) (int, error) {
	item, children := v.Next()
	id := ids.alloc()
	styles := "style=filled,fillcolor=lightgray"
	if children == nil {
		styles = "shape=box,style=filled,fillcolor=lightblue"
	}
	label := fmt.Sprintf("%v", item)
	if _, err := fmt.Fprintf(w, "\"%d\" [label=\"%s\" %s];\n", id, label, styles); err != nil {
		return id, err
	}
	if children == nil {
		return id, nil
	}
	left, err := dotSubtree(children[0], ids, w)
	if err != nil {
		return id, err
	}
	if _, err := fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", id, left); err != nil {
		return id, err
	}
	right, err := dotSubtree(children[1], ids, w)
	if err != nil {
		return id, err
	}
	_, err = fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", id, right)
	return id, err
}
