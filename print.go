package comptree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Print writes an indented listing of the subtree under v, one node per
// line, left subtree before right subtree. Each depth is rendered in its own
// color (colors cycle if the tree is deeper than the palette). Lines are
// clipped to the terminal width if stdout is interactive. The visitor is
// consumed.
//
// Print is a debugging aid; the output format is not stable.
func Print[T any](v Visitor[T], w io.Writer) {
	width := lineWidth()
	palette := makeDefaultPalette()
	printSubtree(v, w, 0, width, palette)
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
	}
}

// lineWidth probes the terminal for a sensible clipping width.
func lineWidth() int {
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

func printSubtree[T any](v Visitor[T], w io.Writer, depth int, width int, palette []*color.Color) {
	item, children := v.Next()
	line := fmt.Sprintf("%*s%v", 2*depth, "", item)
	if len(line) > width {
		line = line[:width]
	}
	c := palette[depth%len(palette)]
	c.Fprintln(w, line)
	if children != nil {
		printSubtree(children[0], w, depth+1, width, palette)
		printSubtree(children[1], w, depth+1, width, palette)
	}
}
