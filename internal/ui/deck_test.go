package ui

import (
	"strings"
	"testing"
)

// solidPage fills every page with a single letter per mod index so slices
// are easy to assert on.
func solidPage(mod int, selected bool, width, height int) []string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(string(rune('A'+mod)), width)
	}
	return lines
}

func TestRenderDeckIdle(t *testing.T) {
	rows := renderDeck(solidPage, 3, 1, 0, 1, 6, 2)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for i, row := range rows {
		if row != "BBBBBB" {
			t.Errorf("row %d = %q, want page 1 only", i, row)
		}
	}
}

func TestRenderDeckMidTransition(t *testing.T) {
	// 30% into the slide from page 0 to page 1 over 10 columns.
	rows := renderDeck(solidPage, 3, 0, 0.3, 0, 10, 1)
	if rows[0] != "AAAAAAABBB" {
		t.Errorf("row = %q, want AAAAAAABBB", rows[0])
	}
}

func TestRenderDeckWrapsPastEnd(t *testing.T) {
	// Sliding off raw page 2 lands on page 0 of the next lap.
	rows := renderDeck(solidPage, 3, 2, 0.5, 0, 4, 1)
	if rows[0] != "CCAA" {
		t.Errorf("row = %q, want CCAA", rows[0])
	}
}

func TestRenderDeckNegativeRawPage(t *testing.T) {
	// Raw page -1 folds to the last item.
	rows := renderDeck(solidPage, 3, -1, 0.25, 0, 4, 1)
	if rows[0] != "CCCA" {
		t.Errorf("row = %q, want CCCA", rows[0])
	}
}

func TestRenderDeckShortLines(t *testing.T) {
	render := func(mod int, selected bool, width, height int) []string {
		return []string{"hi"}
	}
	rows := renderDeck(render, 2, 0, 0, 0, 5, 3)
	if rows[0] != "hi   " {
		t.Errorf("row 0 = %q, want padded to width", rows[0])
	}
	if rows[1] != "     " || rows[2] != "     " {
		t.Errorf("missing lines = %q, %q, want blank fill", rows[1], rows[2])
	}
}

func TestRenderDeckLongLinesTruncated(t *testing.T) {
	render := func(mod int, selected bool, width, height int) []string {
		return []string{"0123456789"}
	}
	rows := renderDeck(render, 2, 0, 0, 0, 4, 1)
	if rows[0] != "0123" {
		t.Errorf("row = %q, want truncated to width", rows[0])
	}
}

func TestRenderDeckSelectionFlag(t *testing.T) {
	var sawSelected []bool
	render := func(mod int, selected bool, width, height int) []string {
		sawSelected = append(sawSelected, selected)
		return nil
	}
	renderDeck(render, 3, 1, 0.5, 2, 4, 1)
	// Left page is mod 1, right page is mod 2 (the selected one).
	if len(sawSelected) != 2 || sawSelected[0] || !sawSelected[1] {
		t.Fatalf("selected flags = %v, want [false true]", sawSelected)
	}
}

func TestRenderDeckDegenerate(t *testing.T) {
	if rows := renderDeck(solidPage, 0, 0, 0, 0, 4, 1); rows != nil {
		t.Errorf("zero length deck = %v, want nil", rows)
	}
	if rows := renderDeck(solidPage, 3, 0, 0, 0, 0, 1); rows != nil {
		t.Errorf("zero width deck = %v, want nil", rows)
	}
}
