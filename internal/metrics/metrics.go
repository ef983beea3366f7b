// Package metrics derives the strip-side geometry tables for a cyclic tab
// strip: per-item extents, cumulative offsets, the lap length, and the
// interpolation curves that map deck scroll progress onto strip offset and
// indicator size.
//
// A Model is immutable once built. Recomputation always produces a fresh
// Model that the controller swaps in whole, so consumers never observe a
// partially rebuilt table.
package metrics

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Alignment selects where the active tab lands inside the strip viewport.
type Alignment int

const (
	// AlignLeft pins the active tab to the strip's left edge.
	AlignLeft Alignment = iota
	// AlignCenter pins the active tab to the strip's visual center.
	AlignCenter
)

func (a Alignment) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

// MeasureFunc is the measurement collaborator: it returns the measured
// extent of item i under the current style and scale, excluding padding.
type MeasureFunc func(i int) float64

// DefaultMeasure measures labels by terminal cell width scaled by scale.
func DefaultMeasure(labels []string, scale float64) MeasureFunc {
	if scale <= 0 {
		scale = 1
	}
	return func(i int) float64 {
		return float64(runewidth.StringWidth(labels[i])) * scale
	}
}

// Curve is a (begin, end) interpolation pair for one deck page transition.
type Curve struct {
	Begin, End float64
}

// Interpolate returns the linear blend at fraction t, clamped to [0, 1].
func (c Curve) Interpolate(t float64) float64 {
	if t <= 0 {
		return c.Begin
	}
	if t >= 1 {
		return c.End
	}
	return c.Begin + (c.End-c.Begin)*t
}

// Options configure a metrics computation.
type Options struct {
	Padding       float64 // per-side padding added to each measured extent
	Spacing       float64 // uniform gap after each item, including across the wrap
	Viewport      float64 // strip viewport extent
	Align         Alignment
	FixedWidth    bool    // equal-width tabs at Viewport*FixedFraction
	FixedFraction float64 // used only when FixedWidth; defaults to 1/length
}

// Model holds one immutable metrics snapshot for a given content length.
type Model struct {
	Length       int
	Extents      []float64
	Offsets      []float64 // cumulative offset of each item within a lap
	Total        float64   // lap length in strip coordinates
	OffsetCurves []Curve
	SizeCurves   []Curve
	Align        Alignment
	Viewport     float64
	FixedWidth   bool
	FixedExtent  float64 // per-item extent when FixedWidth is set
	Spacing      float64
}

// Compute builds a metrics snapshot for n items. The measurement
// collaborator is invoked once per item. Returns an error for invalid
// geometry rather than clamping silently.
func Compute(n int, measure MeasureFunc, opts Options) (*Model, error) {
	if n <= 0 {
		return nil, fmt.Errorf("metrics: content length %d, want > 0", n)
	}
	if measure == nil {
		return nil, fmt.Errorf("metrics: nil measure func")
	}
	if opts.Padding < 0 {
		return nil, fmt.Errorf("metrics: negative padding %v", opts.Padding)
	}
	if opts.Spacing < 0 {
		return nil, fmt.Errorf("metrics: negative spacing %v", opts.Spacing)
	}

	m := &Model{
		Length:     n,
		Extents:    make([]float64, n),
		Offsets:    make([]float64, n),
		Total:      0,
		Align:      opts.Align,
		Viewport:   opts.Viewport,
		FixedWidth: opts.FixedWidth,
		Spacing:    opts.Spacing,
	}

	if opts.FixedWidth {
		frac := opts.FixedFraction
		if frac <= 0 || frac > 1 {
			frac = 1 / float64(n)
		}
		m.FixedExtent = opts.Viewport * frac
	}

	// Extents and cumulative offsets. A long label is capped at the strip
	// viewport (or the fixed-width slot) so one item can never swallow the
	// whole lap.
	sum := 0.0
	for i := 0; i < n; i++ {
		ext := measure(i)
		if ext < 0 {
			ext = 0
		}
		ext += 2 * opts.Padding
		if opts.FixedWidth {
			ext = m.FixedExtent
		} else if opts.Viewport > 0 && ext > opts.Viewport {
			ext = opts.Viewport
		}
		m.Extents[i] = ext
		m.Offsets[i] = sum
		sum += ext + opts.Spacing
	}
	m.Total = sum

	m.OffsetCurves = make([]Curve, n)
	m.SizeCurves = make([]Curve, n)

	if n == 1 {
		// Single item: both curves collapse to constant self-loops.
		only := m.Offsets[0] + m.align(0)
		m.OffsetCurves[0] = Curve{Begin: only, End: only}
		m.SizeCurves[0] = Curve{Begin: m.Extents[0], End: m.Extents[0]}
		return m, nil
	}

	for i := 0; i < n; i++ {
		next := i + 1
		nextOffset := m.Total
		if next < n {
			nextOffset = m.Offsets[next]
		}
		m.OffsetCurves[i] = Curve{
			Begin: m.Offsets[i] + m.align(i),
			End:   nextOffset + m.align(next%n),
		}
		m.SizeCurves[i] = Curve{
			Begin: m.Extents[i],
			End:   m.Extents[next%n],
		}
	}
	return m, nil
}

// align returns the alignment shift for item i: zero for left alignment,
// the negative half-slack for center alignment.
func (m *Model) align(i int) float64 {
	if m.Align != AlignCenter {
		return 0
	}
	return -(m.Viewport - m.Extents[i]) / 2
}

// AlignFor exposes the alignment shift for item i to the controller.
func (m *Model) AlignFor(i int) float64 { return m.align(i) }

// Extent returns the extent of mod index i.
func (m *Model) Extent(i int) float64 { return m.Extents[i] }
