// Package scrollpos models an unbounded virtual scroll coordinate.
//
// A Position has no minimum or maximum: offsets run over the whole real
// line, and the rendering layer decides what content appears at a given
// offset by folding raw slots into the content range. Two positions exist
// per synchronized pair of regions, one for the tab strip and one for the
// page deck; both are owned and driven by the controller.
//
// Animations are fire-and-observe. AnimateTo records the glide and returns
// immediately; the owner pumps Advance from its frame clock until the glide
// reports completion through the supplied callback.
package scrollpos

import "time"

// Listener observes offset changes, both jumps and animation ticks.
type Listener func(offset float64)

// DoneFunc reports animation completion. finished is false when the glide
// was superseded by a newer jump or animation, or stopped outright.
type DoneFunc func(finished bool)

type animation struct {
	from, to float64
	start    time.Time
	started  bool
	duration time.Duration
	ease     EasingFunc
	onDone   DoneFunc
}

// Position is an unbounded scroll coordinate with listener notification
// and a single in-flight animation slot. Not safe for concurrent use; the
// owner drives it from one frame loop.
type Position struct {
	offset    float64
	viewport  float64
	attached  bool
	released  bool
	listeners []Listener
	anim      *animation
}

// New returns a detached position resting at offset zero.
func New() *Position {
	return &Position{}
}

// Offset reports the current scroll offset.
func (p *Position) Offset() float64 { return p.offset }

// Attach records that a live viewport of the given extent now backs this
// position. Extent zero leaves the position unattached.
func (p *Position) Attach(viewport float64) {
	if viewport <= 0 {
		p.attached = false
		p.viewport = 0
		return
	}
	p.viewport = viewport
	p.attached = true
}

// Attached reports whether a live viewport currently backs this position.
func (p *Position) Attached() bool { return p.attached && !p.released }

// Viewport returns the extent reported by the last Attach, zero if none.
func (p *Position) Viewport() float64 { return p.viewport }

// AddListener registers fn for offset-change notification.
func (p *Position) AddListener(fn Listener) {
	if p.released || fn == nil {
		return
	}
	p.listeners = append(p.listeners, fn)
}

// JumpTo moves to offset without animating. An in-flight glide is
// superseded: its done callback fires with finished=false before the jump
// lands.
func (p *Position) JumpTo(offset float64) {
	if p.released {
		return
	}
	p.cancel()
	p.offset = offset
	p.notify()
}

// AnimateTo starts a glide toward offset. A non-positive duration collapses
// to an immediate jump whose done callback still fires with finished=true.
// Any in-flight glide is superseded first.
func (p *Position) AnimateTo(offset float64, duration time.Duration, ease EasingFunc, onDone DoneFunc) {
	if p.released {
		return
	}
	p.cancel()
	if duration <= 0 {
		p.offset = offset
		p.notify()
		if onDone != nil {
			onDone(true)
		}
		return
	}
	if ease == nil {
		ease = EaseOutCubic
	}
	p.anim = &animation{
		from:     p.offset,
		to:       offset,
		duration: duration,
		ease:     ease,
		onDone:   onDone,
	}
}

// Animating reports whether a glide is in flight.
func (p *Position) Animating() bool { return p.anim != nil }

// Advance steps the in-flight animation to the given frame time and returns
// true while more frames are needed. The first Advance after AnimateTo pins
// the start time, so glides never lose duration to scheduling gaps between
// request and first frame.
func (p *Position) Advance(now time.Time) bool {
	a := p.anim
	if a == nil || p.released {
		return false
	}
	if !a.started {
		a.start = now
		a.started = true
	}
	t := float64(now.Sub(a.start)) / float64(a.duration)
	if t >= 1 {
		p.anim = nil
		p.offset = a.to
		p.notify()
		if a.onDone != nil {
			a.onDone(true)
		}
		return false
	}
	if t > 0 {
		p.offset = a.from + (a.to-a.from)*a.ease(t)
		p.notify()
	}
	return true
}

// Stop cancels any in-flight glide, leaving the offset wherever the last
// frame put it.
func (p *Position) Stop() {
	p.cancel()
}

// Release permanently detaches the position. Pending glides are dropped
// without firing their callbacks and all listeners are discarded; every
// later operation is a no-op.
func (p *Position) Release() {
	p.anim = nil
	p.listeners = nil
	p.attached = false
	p.released = true
}

func (p *Position) cancel() {
	if a := p.anim; a != nil {
		p.anim = nil
		if a.onDone != nil {
			a.onDone(false)
		}
	}
}

func (p *Position) notify() {
	for _, fn := range p.listeners {
		fn(p.offset)
	}
}
