// Package control owns the synchronization state machine that keeps a
// cyclic tab strip and page deck pointed at the same logical item.
//
// The Controller is the single owner of the selected index, both virtual
// scroll positions, and the metrics snapshot. Rendering collaborators only
// read values and invoke operations; they never mutate shared state
// directly. Everything runs on one logical frame-driven thread, so the
// package uses no locks.
//
// The two positions are deliberately not wired to observe each other.
// Deck movement drives the strip through one guarded listener, and the
// re-entrancy flags (tab transition in flight, programmatic strip scroll,
// manual strip scroll) break every feedback path between them.
package control

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/davepk/tabdeck/internal/cyclic"
	"github.com/davepk/tabdeck/internal/metrics"
	"github.com/davepk/tabdeck/internal/scrollpos"
)

// ErrTransitionInFlight reports a navigation request that arrived while a
// tab-driven transition was still animating. The request is dropped, not
// queued.
var ErrTransitionInFlight = errors.New("tab transition already in flight")

// navRetryLimit bounds how many safe points a pre-metrics navigation
// request waits for the viewport before settling for an index-only update.
const navRetryLimit = 3

// defaultDuration is the tab glide duration when the config leaves it zero.
const defaultDuration = 300 * time.Millisecond

// Config supplies the construction-time parameters of a Controller.
type Config struct {
	Length        int           // number of logical items, > 0
	InitialIndex  int           // starting selected index, in [0, Length)
	Duration      time.Duration // tab glide duration; zero means default
	Align         metrics.Alignment
	FixedWidth    bool
	FixedFraction float64
	Spacing       float64
	Padding       float64
	Viewport      float64 // strip viewport and deck page extent, in cells

	// Logf receives warnings about degraded operations. Nil discards them.
	Logf func(format string, args ...any)
}

type pendingNav struct {
	raw     int
	animate bool
	retries int
}

// Controller coordinates the strip and deck positions around one selected
// index.
type Controller struct {
	cfg      Config
	length   int
	selected int

	strip     *scrollpos.Position
	deck      *scrollpos.Position
	indicator *scrollpos.Position // animated scalar: indicator extent

	m       *metrics.Model
	measure metrics.MeasureFunc

	// Re-entrancy guards. tabTransition marks a tap-driven glide in
	// flight; programmaticStrip marks strip movement the controller
	// itself commands; userStrip marks a manual strip drag, during which
	// the strip is not authoritative for anything.
	tabTransition     bool
	programmaticStrip bool
	userStrip         bool
	stripLap          int

	pending  *pendingNav
	sched    scheduler
	everInit bool

	indexListeners    []func(index int)
	deckListeners     []func(offset float64)
	feedbackListeners []func()

	disposed bool
}

// New validates cfg and builds a controller with uninitialized metrics.
// Invalid geometry is a developer error and fails construction outright.
func New(cfg Config) (*Controller, error) {
	if cfg.Length <= 0 {
		return nil, fmt.Errorf("control: content length %d, want > 0", cfg.Length)
	}
	if cfg.InitialIndex < 0 || cfg.InitialIndex >= cfg.Length {
		return nil, fmt.Errorf("control: initial index %d out of range [0, %d)", cfg.InitialIndex, cfg.Length)
	}
	if cfg.Spacing < 0 {
		return nil, fmt.Errorf("control: negative spacing %v", cfg.Spacing)
	}
	if cfg.Padding < 0 {
		return nil, fmt.Errorf("control: negative padding %v", cfg.Padding)
	}
	if cfg.Duration <= 0 {
		cfg.Duration = defaultDuration
	}

	c := &Controller{
		cfg:       cfg,
		length:    cfg.Length,
		selected:  cfg.InitialIndex,
		strip:     scrollpos.New(),
		deck:      scrollpos.New(),
		indicator: scrollpos.New(),
	}
	if cfg.Viewport > 0 {
		c.strip.Attach(cfg.Viewport)
		c.deck.Attach(cfg.Viewport)
	}
	c.deck.AddListener(c.onDeckOffset)
	return c, nil
}

// Length returns the current content length.
func (c *Controller) Length() int { return c.length }

// SelectedIndex returns the current logical item.
func (c *Controller) SelectedIndex() int { return c.selected }

// Initialized reports whether a metrics snapshot exists yet.
func (c *Controller) Initialized() bool { return c.m != nil }

// Metrics returns the current snapshot, nil before the first measurement.
func (c *Controller) Metrics() *metrics.Model { return c.m }

// StripOffset returns the strip's virtual scroll offset.
func (c *Controller) StripOffset() float64 { return c.strip.Offset() }

// DeckOffset returns the deck's virtual scroll offset.
func (c *Controller) DeckOffset() float64 { return c.deck.Offset() }

// IndicatorExtent returns the current interpolated indicator size.
func (c *Controller) IndicatorExtent() float64 { return c.indicator.Offset() }

// Viewport returns the current viewport extent.
func (c *Controller) Viewport() float64 { return c.cfg.Viewport }

// Align returns the configured alignment mode.
func (c *Controller) Align() metrics.Alignment { return c.cfg.Align }

// FixedWidth reports whether equal-width tab slots are active.
func (c *Controller) FixedWidth() bool { return c.cfg.FixedWidth }

// Transitioning reports whether a tab-driven glide is in flight.
func (c *Controller) Transitioning() bool { return c.tabTransition }

// Progress returns the deck's continuous position as a floored page index
// and the fraction toward the next page, both in raw (unbounded) space.
func (c *Controller) Progress() (floored int, fraction float64) {
	vp := c.cfg.Viewport
	if vp <= 0 {
		return 0, 0
	}
	idx := c.deck.Offset() / vp
	f := math.Floor(idx)
	return int(f), idx - f
}

// OnIndexChanged registers fn for selected-index notifications.
func (c *Controller) OnIndexChanged(fn func(index int)) {
	if fn != nil && !c.disposed {
		c.indexListeners = append(c.indexListeners, fn)
	}
}

// OnStripScroll registers fn for strip offset notifications, whatever the
// movement source.
func (c *Controller) OnStripScroll(fn func(offset float64)) {
	if fn != nil && !c.disposed {
		c.strip.AddListener(fn)
	}
}

// OnDeckScroll registers fn for deck offset notifications.
func (c *Controller) OnDeckScroll(fn func(offset float64)) {
	if fn != nil && !c.disposed {
		c.deckListeners = append(c.deckListeners, fn)
	}
}

// OnFeedback registers fn for the discrete feedback signal raised when the
// selection crosses an item boundary.
func (c *Controller) OnFeedback(fn func()) {
	if fn != nil && !c.disposed {
		c.feedbackListeners = append(c.feedbackListeners, fn)
	}
}

// SetMeasure installs the measurement collaborator used by metric
// recomputations.
func (c *Controller) SetMeasure(fn metrics.MeasureFunc) {
	c.measure = fn
}

// RecomputeMetrics rebuilds the metrics snapshot from the measurement
// collaborator and swaps it in atomically. A navigation recorded before
// metrics existed is scheduled for the next safe point.
func (c *Controller) RecomputeMetrics() error {
	if c.disposed {
		return nil
	}
	if c.measure == nil {
		return fmt.Errorf("control: no measurement collaborator installed")
	}
	m, err := metrics.Compute(c.length, c.measure, metrics.Options{
		Padding:       c.cfg.Padding,
		Spacing:       c.cfg.Spacing,
		Viewport:      c.cfg.Viewport,
		Align:         c.cfg.Align,
		FixedWidth:    c.cfg.FixedWidth,
		FixedFraction: c.cfg.FixedFraction,
	})
	if err != nil {
		return err
	}
	c.m = m

	if c.pending != nil {
		c.everInit = true
		c.sched.schedule(actionPendingNav, c.applyPendingNav)
		return nil
	}
	if !c.everInit {
		// First measurement pass: land the deck exactly on the initial
		// index before anything observes the fresh tables.
		c.everInit = true
		if c.ready() {
			c.deck.JumpTo(float64(c.selected) * c.cfg.Viewport)
		}
		return nil
	}
	if c.consistent() {
		// Style-only recompute: re-derive strip and indicator from
		// wherever the deck currently rests under the fresh tables.
		c.followDeck()
	} else {
		// The deck no longer agrees with the selected index (length or
		// viewport changed underneath it); correct at the next safe point.
		c.sched.schedule(actionRealign, c.realignDeck)
	}
	return nil
}

// consistent reports whether the deck's rounded page maps to the selected
// index.
func (c *Controller) consistent() bool {
	if !c.ready() {
		return false
	}
	page := int(math.Round(c.deck.Offset() / c.cfg.Viewport))
	return cyclic.Normalize(page, c.length) == c.selected
}

// SetAlignment switches the alignment mode and rebuilds metrics when a
// measurement collaborator is available.
func (c *Controller) SetAlignment(a metrics.Alignment) error {
	c.cfg.Align = a
	if c.measure == nil {
		return nil
	}
	return c.RecomputeMetrics()
}

// SetFixedWidth toggles equal-width tab slots and rebuilds metrics when a
// measurement collaborator is available.
func (c *Controller) SetFixedWidth(fixed bool, fraction float64) error {
	c.cfg.FixedWidth = fixed
	c.cfg.FixedFraction = fraction
	if c.measure == nil {
		return nil
	}
	return c.RecomputeMetrics()
}

// ScrollDeckBy moves the deck by delta, as a user drag would. The strip,
// indicator, and selected index follow through the deck listener.
func (c *Controller) ScrollDeckBy(delta float64) {
	if c.disposed {
		return
	}
	c.deck.JumpTo(c.deck.Offset() + delta)
}

// TapTab navigates to the tapped raw index: the strip glides to the tapped
// lap, the deck glides along the shorter arc, and the selected index
// commits immediately. A second tap while one is in flight is rejected.
// Before metrics exist the request is recorded and applied once they do.
func (c *Controller) TapTab(raw int) error {
	return c.navigate(raw, true)
}

// JumpToIndex is TapTab without the glide: every position lands instantly.
func (c *Controller) JumpToIndex(raw int) error {
	return c.navigate(raw, false)
}

func (c *Controller) navigate(raw int, animate bool) error {
	if c.disposed {
		return nil
	}
	if c.tabTransition {
		c.logf("navigation to %d rejected: %v", raw, ErrTransitionInFlight)
		return ErrTransitionInFlight
	}
	if !c.ready() {
		// Single pending slot, latest request wins.
		c.pending = &pendingNav{raw: raw, animate: animate}
		return nil
	}
	c.startNavigation(raw, animate)
	return nil
}

func (c *Controller) ready() bool {
	return c.m != nil && c.deck.Attached() && c.cfg.Viewport > 0
}

func (c *Controller) startNavigation(raw int, animate bool) {
	m := c.m
	n := c.length
	vp := c.cfg.Viewport

	mod := cyclic.Normalize(raw, n)
	section := cyclic.Section(raw, n)

	base := m.Offsets[mod]
	if m.FixedWidth {
		base = m.FixedExtent * float64(mod)
	}
	stripTarget := m.Total*float64(section) + base + m.AlignFor(mod)

	dist := cyclic.ShortestWrapDistance(c.selected, mod, n)
	currentPage := math.Round(c.deck.Offset() / vp)
	deckTarget := (currentPage + float64(dist)) * vp

	dur := c.cfg.Duration
	if !animate {
		dur = 0
	}

	// Cancel any in-flight glides first: their completion callbacks clear
	// the guard flags, and that must happen before the flags are set for
	// this navigation.
	c.strip.Stop()
	c.deck.Stop()
	c.indicator.Stop()

	// The logical index commits before any glide finishes; observers see
	// the change now, only the visuals lag.
	c.tabTransition = true
	c.setSelected(mod)

	c.programmaticStrip = true
	c.strip.AnimateTo(stripTarget, dur, scrollpos.EaseOutCubic, func(bool) {
		c.programmaticStrip = false
	})
	c.indicator.AnimateTo(m.Extent(mod), dur, scrollpos.EaseOutCubic, nil)
	c.deck.AnimateTo(deckTarget, dur, scrollpos.EaseOutCubic, func(finished bool) {
		c.tabTransition = false
		if !finished {
			c.logf("deck glide to index %d interrupted", mod)
		}
	})
}

// applyPendingNav runs at a safe point once metrics exist. If the viewport
// still reports no extent it retries a bounded number of times, then
// settles for an index-only update.
func (c *Controller) applyPendingNav() {
	p := c.pending
	if p == nil || c.disposed {
		return
	}
	if c.ready() && !c.tabTransition {
		c.pending = nil
		c.startNavigation(p.raw, p.animate)
		return
	}
	p.retries++
	if p.retries >= navRetryLimit {
		c.pending = nil
		c.logf("viewport never became ready; settling for index-only update to %d", p.raw)
		c.setSelected(cyclic.Normalize(p.raw, c.length))
		return
	}
	c.sched.schedule(actionPendingNav, c.applyPendingNav)
}

// BeginStripScroll marks the start of a manual strip drag. While dragging,
// the strip follows the user, not the deck, and lap crossings raise the
// feedback signal without touching the selection.
func (c *Controller) BeginStripScroll() {
	if c.disposed || c.programmaticStrip {
		return
	}
	c.userStrip = true
	c.stripLap = c.stripLapIndex()
}

// ScrollStripBy moves the strip by delta during a manual drag.
func (c *Controller) ScrollStripBy(delta float64) {
	if c.disposed || !c.userStrip {
		return
	}
	c.strip.JumpTo(c.strip.Offset() + delta)
	if lap := c.stripLapIndex(); lap != c.stripLap {
		c.stripLap = lap
		c.fireFeedback()
	}
}

// EndStripScroll ends a manual strip drag. The strip stays where the user
// left it until the next deck movement re-synchronizes it.
func (c *Controller) EndStripScroll() {
	c.userStrip = false
}

func (c *Controller) stripLapIndex() int {
	if c.m == nil || c.m.Total <= 0 {
		return 0
	}
	return int(math.Floor(c.strip.Offset() / c.m.Total))
}

// Resize records a new viewport extent and schedules a silent deck realign
// for the next safe point. The selected index never changes; the deck
// lands on whichever of the nearby lap candidates is closest.
func (c *Controller) Resize(viewport float64) {
	if c.disposed || viewport <= 0 {
		return
	}
	c.cfg.Viewport = viewport
	c.strip.Attach(viewport)
	c.deck.Attach(viewport)
	if c.measure != nil {
		if err := c.RecomputeMetrics(); err != nil {
			c.logf("metrics recompute on resize: %v", err)
			return
		}
	}
	c.sched.schedule(actionRealign, c.realignDeck)
}

// realignDeck jumps the deck to the raw position nearest its current
// offset that still maps to the selected index, searching the current lap
// and one lap to either side.
func (c *Controller) realignDeck() {
	if c.disposed || !c.ready() {
		return
	}
	vp := c.cfg.Viewport
	off := c.deck.Offset()
	lap := cyclic.Section(int(math.Floor(off/vp)), c.length)

	best := math.Inf(1)
	target := off
	for _, l := range []int{lap - 1, lap, lap + 1} {
		raw := l*c.length + c.selected
		cand := float64(raw) * vp
		if d := math.Abs(cand - off); d < best {
			best = d
			target = cand
		}
	}
	c.deck.JumpTo(target)
}

// SetLength changes the content length. newIndex supplies the resulting
// selected index, or -1 to re-derive it from the old selection; the index
// change is notified at the next safe point. Metrics are fully rebuilt
// before any scroll movement, which then jumps or animates per animate.
func (c *Controller) SetLength(n, newIndex int, animate bool) error {
	if c.disposed {
		return nil
	}
	if n <= 0 {
		return fmt.Errorf("control: content length %d, want > 0", n)
	}
	if newIndex >= n {
		return fmt.Errorf("control: new index %d out of range [0, %d)", newIndex, n)
	}

	target := newIndex
	if target < 0 {
		target = cyclic.Normalize(c.selected, n)
	}

	c.length = n
	c.m = nil // all derived metrics are invalid from here

	if c.selected != target {
		c.selected = target
		c.sched.schedule(actionNotify, func() {
			c.notifyIndex(c.selected)
		})
	}

	if c.measure == nil {
		return nil
	}
	if err := c.RecomputeMetrics(); err != nil {
		return err
	}
	if animate && c.ready() {
		c.startNavigation(target, true)
		return nil
	}
	c.sched.schedule(actionRealign, c.realignDeck)
	return nil
}

// SafePoint drains deferred actions and corrects any drift between the
// deck position and the selected index. The rendering collaborator calls
// it once per frame, outside the render pass.
func (c *Controller) SafePoint() {
	if c.disposed {
		return
	}
	if c.pending != nil && !c.sched.pending(actionPendingNav) {
		c.sched.schedule(actionPendingNav, c.applyPendingNav)
	}
	c.sched.drain()
	c.checkConsistency()
}

// checkConsistency schedules a corrective realign when the deck has
// drifted more than half a page from the selected index outside of any
// legitimate in-between state.
func (c *Controller) checkConsistency() {
	if !c.ready() || c.tabTransition || c.deck.Animating() {
		return
	}
	vp := c.cfg.Viewport
	page := int(math.Round(c.deck.Offset() / vp))
	if cyclic.Normalize(page, c.length) != c.selected {
		c.sched.schedule(actionRealign, c.realignDeck)
	}
}

// Advance steps every in-flight glide to the given frame time and reports
// whether more frames are needed.
func (c *Controller) Advance(now time.Time) bool {
	if c.disposed {
		return false
	}
	stripBusy := c.strip.Advance(now)
	deckBusy := c.deck.Advance(now)
	indicatorBusy := c.indicator.Advance(now)
	return stripBusy || deckBusy || indicatorBusy
}

// Animating reports whether any glide is in flight.
func (c *Controller) Animating() bool {
	return c.strip.Animating() || c.deck.Animating() || c.indicator.Animating()
}

// Dispose releases both positions and drops every scheduled action. The
// controller is unusable afterwards.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.sched.clear()
	c.strip.Release()
	c.deck.Release()
	c.indicator.Release()
	c.indexListeners = nil
	c.deckListeners = nil
	c.feedbackListeners = nil
	c.pending = nil
}

// onDeckOffset is the one path by which deck movement drives the strip.
// It is inert during tab transitions (the strip runs its own glide) and
// never writes back to the deck, so no notification loop can form.
func (c *Controller) onDeckOffset(off float64) {
	if c.disposed {
		return
	}
	for _, fn := range c.deckListeners {
		fn(off)
	}
	if c.tabTransition || c.m == nil {
		return
	}
	vp := c.cfg.Viewport
	if vp <= 0 {
		return
	}

	idx := off / vp
	floored := int(math.Floor(idx))
	fraction := idx - math.Floor(idx)
	mod := cyclic.Normalize(floored, c.length)
	lap := cyclic.Section(floored, c.length)

	if !c.userStrip {
		stripOff := c.m.Total*float64(lap) + c.m.OffsetCurves[mod].Interpolate(fraction)
		c.programmaticStrip = true
		c.strip.JumpTo(stripOff)
		c.programmaticStrip = false
		c.indicator.JumpTo(c.m.SizeCurves[mod].Interpolate(fraction))
	}

	if sel := cyclic.Normalize(int(math.Round(idx)), c.length); sel != c.selected {
		c.setSelected(sel)
	}
}

// followDeck re-derives strip and indicator state from the current deck
// offset, used after a metrics swap.
func (c *Controller) followDeck() {
	c.onDeckOffset(c.deck.Offset())
}

func (c *Controller) setSelected(index int) {
	c.selected = index
	c.notifyIndex(index)
	c.fireFeedback()
}

func (c *Controller) notifyIndex(index int) {
	for _, fn := range c.indexListeners {
		fn(index)
	}
}

func (c *Controller) fireFeedback() {
	for _, fn := range c.feedbackListeners {
		fn()
	}
}

func (c *Controller) logf(format string, args ...any) {
	if c.cfg.Logf != nil {
		c.cfg.Logf(format, args...)
	}
}
