package metrics

import (
	"math"
	"reflect"
	"testing"
)

// Base measured widths for labels A, BB, CCC, DDDD at scale 1.0.
var baseWidths = []float64{16, 32, 48, 64}

func measureAt(scale float64) MeasureFunc {
	return func(i int) float64 { return baseWidths[i] * scale }
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestComputeRoundTrip(t *testing.T) {
	m, err := Compute(4, measureAt(1.0), Options{Padding: 4, Viewport: 400})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	wantExtents := []float64{24, 40, 56, 72}
	wantOffsets := []float64{0, 24, 64, 120}
	if !reflect.DeepEqual(m.Extents, wantExtents) {
		t.Fatalf("Extents = %v, want %v", m.Extents, wantExtents)
	}
	if !reflect.DeepEqual(m.Offsets, wantOffsets) {
		t.Fatalf("Offsets = %v, want %v", m.Offsets, wantOffsets)
	}
	if m.Total != 192 {
		t.Fatalf("Total = %v, want 192", m.Total)
	}
	if m.SizeCurves[0] != (Curve{Begin: 24, End: 40}) {
		t.Fatalf("SizeCurves[0] = %+v, want {24 40}", m.SizeCurves[0])
	}
	// The last size curve wraps to the first item.
	if m.SizeCurves[3] != (Curve{Begin: 72, End: 24}) {
		t.Fatalf("SizeCurves[3] = %+v, want {72 24}", m.SizeCurves[3])
	}
	// Left alignment leaves offsets unshifted; the last offset curve wraps
	// to one full lap.
	if m.OffsetCurves[0] != (Curve{Begin: 0, End: 24}) {
		t.Fatalf("OffsetCurves[0] = %+v, want {0 24}", m.OffsetCurves[0])
	}
	if m.OffsetCurves[3] != (Curve{Begin: 120, End: 192}) {
		t.Fatalf("OffsetCurves[3] = %+v, want {120 192}", m.OffsetCurves[3])
	}
}

func TestComputeScaleKeepsPaddingAdditive(t *testing.T) {
	m, err := Compute(4, measureAt(1.5), Options{Padding: 4, Viewport: 400})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i, base := range baseWidths {
		want := base*1.5 + 8
		if !almostEqual(m.Extents[i], want) {
			t.Fatalf("Extents[%d] = %v, want %v (measured scales, padding does not)",
				i, m.Extents[i], want)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	opts := Options{Padding: 4, Spacing: 2, Viewport: 400, Align: AlignCenter}
	a, err := Compute(4, measureAt(1.0), opts)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	b, err := Compute(4, measureAt(1.0), opts)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different models:\n%+v\n%+v", a, b)
	}
}

func TestComputeSpacing(t *testing.T) {
	m, err := Compute(4, measureAt(1.0), Options{Padding: 4, Spacing: 3, Viewport: 400})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	wantOffsets := []float64{0, 27, 70, 129}
	if !reflect.DeepEqual(m.Offsets, wantOffsets) {
		t.Fatalf("Offsets = %v, want %v", m.Offsets, wantOffsets)
	}
	// The lap includes the gap between the last and first item.
	if m.Total != 204 {
		t.Fatalf("Total = %v, want 204", m.Total)
	}
}

func TestComputeCenterAlignment(t *testing.T) {
	m, err := Compute(4, measureAt(1.0), Options{Padding: 4, Viewport: 100, Align: AlignCenter})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// Centering item 0 (extent 24) in a 100-cell strip shifts by -38.
	if !almostEqual(m.OffsetCurves[0].Begin, -38) {
		t.Fatalf("OffsetCurves[0].Begin = %v, want -38", m.OffsetCurves[0].Begin)
	}
	// Transition toward item 1 (extent 40): 24 - (100-40)/2 = -6.
	if !almostEqual(m.OffsetCurves[0].End, -6) {
		t.Fatalf("OffsetCurves[0].End = %v, want -6", m.OffsetCurves[0].End)
	}
}

func TestComputeFixedWidth(t *testing.T) {
	m, err := Compute(4, measureAt(1.0), Options{
		Padding: 4, Viewport: 120, FixedWidth: true, FixedFraction: 0.25,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if m.FixedExtent != 30 {
		t.Fatalf("FixedExtent = %v, want 30", m.FixedExtent)
	}
	for i := range m.Extents {
		if m.Extents[i] != 30 {
			t.Fatalf("Extents[%d] = %v, want 30", i, m.Extents[i])
		}
	}
	if m.SizeCurves[2] != (Curve{Begin: 30, End: 30}) {
		t.Fatalf("SizeCurves[2] = %+v, want {30 30}", m.SizeCurves[2])
	}
}

func TestComputeClampsPathologicalLabel(t *testing.T) {
	wide := func(i int) float64 { return 5000 }
	m, err := Compute(3, wide, Options{Viewport: 80})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i := range m.Extents {
		if m.Extents[i] != 80 {
			t.Fatalf("Extents[%d] = %v, want clamp to viewport 80", i, m.Extents[i])
		}
	}
}

func TestComputeSingleItemSelfLoops(t *testing.T) {
	m, err := Compute(1, func(int) float64 { return 20 }, Options{Padding: 2, Viewport: 100})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if m.OffsetCurves[0].Begin != m.OffsetCurves[0].End {
		t.Fatalf("single-item offset curve not constant: %+v", m.OffsetCurves[0])
	}
	if m.SizeCurves[0] != (Curve{Begin: 24, End: 24}) {
		t.Fatalf("SizeCurves[0] = %+v, want {24 24}", m.SizeCurves[0])
	}
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	measure := measureAt(1.0)
	if _, err := Compute(0, measure, Options{}); err == nil {
		t.Fatalf("Compute with length 0 succeeded")
	}
	if _, err := Compute(4, nil, Options{}); err == nil {
		t.Fatalf("Compute with nil measure succeeded")
	}
	if _, err := Compute(4, measure, Options{Padding: -1}); err == nil {
		t.Fatalf("Compute with negative padding succeeded")
	}
	if _, err := Compute(4, measure, Options{Spacing: -1}); err == nil {
		t.Fatalf("Compute with negative spacing succeeded")
	}
}

func TestCurveInterpolate(t *testing.T) {
	c := Curve{Begin: 10, End: 30}
	cases := []struct {
		t    float64
		want float64
	}{
		{-0.5, 10}, {0, 10}, {0.25, 15}, {0.5, 20}, {1, 30}, {1.5, 30},
	}
	for _, tc := range cases {
		if got := c.Interpolate(tc.t); !almostEqual(got, tc.want) {
			t.Fatalf("Interpolate(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestDefaultMeasure(t *testing.T) {
	labels := []string{"A", "BB", "CCC", "DDDD"}
	measure := DefaultMeasure(labels, 2)
	if got := measure(1); got != 4 {
		t.Fatalf("DefaultMeasure BB at scale 2 = %v, want 4", got)
	}
	if got := measure(3); got != 8 {
		t.Fatalf("DefaultMeasure DDDD at scale 2 = %v, want 8", got)
	}
}
