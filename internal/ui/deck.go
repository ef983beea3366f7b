package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/davepk/tabdeck/internal/cyclic"
)

// PageRenderer builds the content lines for a mod index. Lines longer than
// width are truncated; missing lines are blank-filled to height.
type PageRenderer func(modIndex int, selected bool, width, height int) []string

// renderDeck composes the visible deck rows. Mid-transition the window
// shows the trailing columns of the floored raw page and the leading
// columns of the next one, sliced by the deck fraction.
func renderDeck(render PageRenderer, n, floored int, frac float64, selected, width, height int) []string {
	if width <= 0 || height <= 0 || n <= 0 {
		return nil
	}
	shift := int(math.Round(frac * float64(width)))
	if shift > width {
		shift = width
	}

	leftMod := cyclic.Normalize(floored, n)
	left := pageGrid(render(leftMod, leftMod == selected, width, height), width, height)

	out := make([]string, height)
	if shift <= 0 {
		for i := range out {
			out[i] = string(left[i])
		}
		return out
	}

	rightMod := cyclic.Normalize(floored+1, n)
	right := pageGrid(render(rightMod, rightMod == selected, width, height), width, height)
	for i := 0; i < height; i++ {
		out[i] = string(left[i][shift:]) + string(right[i][:shift])
	}
	return out
}

// pageGrid pads page lines into a width x height rune grid.
func pageGrid(lines []string, width, height int) [][]rune {
	grid := make([][]rune, height)
	for i := range grid {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		line = runewidth.Truncate(line, width, "")
		if pad := width - runewidth.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		grid[i] = []rune(line)
	}
	return grid
}

// defaultPageRenderer builds the demo page content for each tab.
func defaultPageRenderer(labels func() []string) PageRenderer {
	return func(mod int, selected bool, width, height int) []string {
		ls := labels()
		label := ls[mod]
		marker := " "
		if selected {
			marker = "•"
		}
		return []string{
			"",
			"  " + label,
			"  " + strings.Repeat("═", runewidth.StringWidth(label)),
			"",
			fmt.Sprintf("  %s Page %d of %d", marker, mod+1, len(ls)),
			"",
			"  Tap tabs with 1-9, glide with h/l, drag the deck",
			"  with , and . — strip and deck wrap endlessly and",
			"  always agree on the selected item.",
		}
	}
}
