package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/chromasort/colour"
	"github.com/katalvlaran/chromasort/puzzle"
)

// square is the glyph used for one item.
const square = "■"

// palette maps each colour to its terminal rendering. Values approximate
// the game's own tones.
var palette = map[colour.Colour]*color.Color{
	colour.Red:        color.RGB(222, 56, 43),
	colour.Pink:       color.RGB(255, 153, 204),
	colour.Brown:      color.RGB(110, 79, 43),
	colour.Green:      color.RGB(102, 153, 0),
	colour.LightGreen: color.RGB(153, 255, 153),
	colour.DarkGreen:  color.RGB(0, 102, 0),
	colour.Yellow:     color.RGB(255, 199, 6),
	colour.Blue:       color.RGB(0, 111, 184),
	colour.LightBlue:  color.RGB(102, 255, 255),
	colour.DarkBlue:   color.RGB(0, 0, 128),
	colour.Grey:       color.RGB(128, 128, 128),
	colour.Purple:     color.RGB(128, 0, 128),
	colour.Orange:     color.RGB(255, 150, 50),
	colour.Magenta:    color.RGB(255, 0, 255),
	colour.Cyan:       color.RGB(0, 255, 255),
}

// renderItem draws one item as a coloured square; hidden items render as
// a bare "?" so they stay visible on any background.
func renderItem(it puzzle.Item) string {
	c := it.Colour()
	if c.IsUnknown() {
		return "?"
	}
	p, ok := palette[c]
	if !ok {
		return square
	}

	return p.Sprint(square)
}

// renderContainer draws a container bottom-to-top.
func renderContainer(c puzzle.Container) string {
	if c.IsEmpty() {
		return "[empty]"
	}
	out := "["
	for i := 0; i < c.Len(); i++ {
		if i > 0 {
			out += " "
		}
		it, _ := c.Item(i)
		out += renderItem(it)
	}

	return out + "]"
}

// render writes the collection one container per line.
func render(w io.Writer, s *puzzle.Collection) {
	for i := 0; i < s.Len(); i++ {
		c, _ := s.Container(i)
		fmt.Fprintf(w, "%d: %s\n", i, renderContainer(c))
	}
}

// renderGridRow renders one raw container line, preserving hidden markers.
func renderGridRow(i int, row []string) string {
	if len(row) == 0 {
		return fmt.Sprintf("%d: [empty]", i)
	}
	out := ""
	for j, name := range row {
		if j > 0 {
			out += " "
		}
		if name == "?" || name == "UNKNOWN" {
			out += "?"
			continue
		}
		if c, err := colour.Parse(name); err == nil {
			out += renderItem(puzzle.NewItem(c))
		} else {
			out += name
		}
	}

	return fmt.Sprintf("%d: [%s]", i, out)
}

// renderGrid renders a raw grid without building a collection.
func renderGrid(w io.Writer, grid [][]string) {
	for i, row := range grid {
		fmt.Fprintln(w, renderGridRow(i, row))
	}
}

// printMoves writes moves in the standardised numbered format, starting
// the numbering at offset+1.
func printMoves(w io.Writer, moves []puzzle.Move, offset int) {
	for i, m := range moves {
		fmt.Fprintf(w, "%d. Container %d -> %d\n", offset+i+1, m.Src, m.Dest)
	}
}
