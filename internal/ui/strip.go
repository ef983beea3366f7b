package ui

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/davepk/tabdeck/internal/cyclic"
	"github.com/davepk/tabdeck/internal/metrics"
)

// TabRenderer supplies the visible label for a mod index. The strip calls
// it once per visible raw slot after folding the slot into content range.
type TabRenderer func(modIndex int, selected bool) string

// Cell kinds in a laid-out strip row, used to assign styles to runs.
const (
	cellGap byte = iota
	cellTab
	cellTabActive
	cellSep
)

const (
	separatorRune = '│'
	indicatorRune = '▔'
)

// layoutStrip tiles the infinite strip into a width-cell window starting at
// offset. Raw items are walked in order, each folded to its mod index, with
// a separator in the spacing gap between adjacent raw items, including the
// pair that straddles the wrap seam.
func layoutStrip(m *metrics.Model, render TabRenderer, selected int, offset float64, width int) (row []rune, kinds []byte) {
	row = make([]rune, width)
	kinds = make([]byte, width)
	for i := range row {
		row[i] = ' '
	}
	if m == nil || m.Total <= 0 || width <= 0 {
		return row, kinds
	}

	n := m.Length
	end := offset + float64(width)
	lap := int(math.Floor(offset / m.Total))

	// Start one lap early so an item that straddles the window's left
	// edge is not skipped.
	for raw := (lap - 1) * n; ; raw++ {
		mod := cyclic.Normalize(raw, n)
		start := float64(cyclic.Section(raw, n))*m.Total + m.Offsets[mod]
		if start >= end {
			break
		}
		extent := m.Extents[mod]
		if start+extent+m.Spacing <= offset {
			continue
		}

		col := int(math.Round(start - offset))
		w := int(math.Round(extent))
		writeTab(row, kinds, col, w, render(mod, mod == selected), mod == selected)

		if m.Spacing >= 1 {
			if sep := col + w; sep >= 0 && sep < width {
				row[sep] = separatorRune
				kinds[sep] = cellSep
			}
		}
	}
	return row, kinds
}

// writeTab paints one tab slot: w cells of slot background with the label
// centered inside, clipped to the window.
func writeTab(row []rune, kinds []byte, col, w int, label string, active bool) {
	if w <= 0 {
		return
	}
	kind := cellTab
	if active {
		kind = cellTabActive
	}
	for i := 0; i < w; i++ {
		c := col + i
		if c < 0 || c >= len(row) {
			continue
		}
		row[c] = ' '
		kinds[c] = kind
	}

	label = runewidth.Truncate(label, w, "")
	pad := (w - runewidth.StringWidth(label)) / 2
	c := col + pad
	for _, r := range label {
		if c >= 0 && c < len(row) {
			row[c] = r
		}
		c += runewidth.RuneWidth(r)
	}
}

// layoutIndicator paints the indicator segment: extent cells wide, left
// edge interpolated between the floored item's offset and the next one's,
// following the deck fraction.
func layoutIndicator(m *metrics.Model, floored int, frac, extent, offset float64, width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	if m == nil || m.Total <= 0 || width <= 0 {
		return row
	}

	n := m.Length
	mod := cyclic.Normalize(floored, n)
	lap := cyclic.Section(floored, n)
	base := float64(lap)*m.Total + m.Offsets[mod]
	var next float64
	if mod+1 < n {
		next = float64(lap)*m.Total + m.Offsets[mod+1]
	} else {
		next = float64(lap+1)*m.Total + m.Offsets[0]
	}
	left := base + (next-base)*frac

	col := int(math.Round(left - offset))
	w := int(math.Round(extent))
	for i := 0; i < w; i++ {
		if c := col + i; c >= 0 && c < width {
			row[c] = indicatorRune
		}
	}
	return row
}

// stylize renders a laid-out row, styling each run of equal cell kinds as
// one unit.
func stylize(row []rune, kinds []byte, s Styles) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && kinds[j] == kinds[i] {
			j++
		}
		seg := string(row[i:j])
		switch kinds[i] {
		case cellTabActive:
			b.WriteString(s.TabActive.Render(seg))
		case cellTab:
			b.WriteString(s.TabInactive.Render(seg))
		case cellSep:
			b.WriteString(s.Separator.Render(seg))
		default:
			b.WriteString(seg)
		}
		i = j
	}
	return b.String()
}
