// SPDX-License-Identifier: Unlicense OR MIT

/*
Package arbiter decides who consumes a drag that starts on scrollable
content inside a pull-up panel: the panel, which moves between its
sticky points, or the content, which scrolls.

The decision is recomputed for every sample of the gesture. The panel
takes over when the content is scrolled to its top edge and the finger
moves down, or when the finger moves up and the panel is not fully
open yet. Otherwise the content scrolls.
*/
package arbiter

// Content is scrollable content attached to a panel.
type Content interface {
	// ScrollOffset returns the vertical content offset. Zero is the top
	// edge; negative values are overscroll.
	ScrollOffset() float32
	// SetScrollOffset moves the content.
	SetScrollOffset(y float32)
	// SetBounce enables or disables elastic overscroll.
	SetBounce(enabled bool)
}

// Arbiter tracks the ownership of one gesture stream of one Content.
// Every attached Content needs its own Arbiter.
type Arbiter struct {
	Content Content
	// Drive makes deferred samples scroll the content. Set it for content
	// that does not see the touch stream itself.
	Drive bool

	state State
	// initial is the content offset at the beginning of the gesture.
	initial float32
	// moved tracks whether the panel owned any sample of the gesture.
	moved bool
}

// State is the gesture state of an Arbiter.
type State uint8

const (
	// StateIdle is the state before the first gesture.
	StateIdle State = iota
	// StateTracking is reported between Begin and the first sample.
	StateTracking
	// StateDragging is reported when the panel owns the last sample.
	StateDragging
	// StateDeferred is reported when the content owns the last sample.
	StateDeferred
	// StateEnded is reported after End.
	StateEnded
)

// ShouldOwn reports whether the panel consumes a sample.
func ShouldOwn(scrollingDown bool, contentOffset float32, fullyOpen bool) bool {
	dragDown := scrollingDown && contentOffset <= 0
	dragUp := !scrollingDown && !fullyOpen
	return dragDown || dragUp
}

// Begin starts a gesture.
func (a *Arbiter) Begin() {
	a.state = StateTracking
	a.moved = false
	a.initial = 0
	if a.Content != nil {
		a.initial = a.Content.ScrollOffset()
	}
}

// Update resolves the ownership of a sample with translation delta and
// velocity, both positive when the finger moves down. It returns the
// delta to apply to the panel and whether the panel owns the sample.
// A zero velocity carries no scrolling intent and the direction is read
// from delta instead.
func (a *Arbiter) Update(delta, velocity float32, fullyOpen bool) (float32, bool) {
	if a.state == StateIdle || a.state == StateEnded {
		a.Begin()
	}
	if delta == 0 {
		return 0, false
	}
	down := velocity > 0
	if velocity == 0 {
		down = delta > 0
	}
	var offset float32
	if a.Content != nil {
		offset = a.Content.ScrollOffset()
	}
	if !ShouldOwn(down, offset, fullyOpen) {
		a.state = StateDeferred
		if a.Drive && a.Content != nil {
			a.Content.SetScrollOffset(a.scrolled(offset - delta))
		}
		return 0, false
	}
	a.state = StateDragging
	a.moved = true
	if a.Content == nil {
		return delta, true
	}
	a.Content.SetBounce(false)
	if down {
		// Overscroll past the top edge moves the panel instead.
		if offset < 0 {
			delta -= offset
		}
		a.Content.SetScrollOffset(0)
	} else {
		a.Content.SetScrollOffset(a.initial)
	}
	return delta, true
}

// scrolled keeps driven content at or below its top edge.
func (a *Arbiter) scrolled(y float32) float32 {
	if y < 0 {
		return 0
	}
	return y
}

// End finishes the gesture. It reports whether the panel moved during
// the gesture and the state of the last sample.
func (a *Arbiter) End() (moved bool, last State) {
	last = a.state
	moved = a.moved
	a.state = StateEnded
	a.moved = false
	if a.Content != nil && moved {
		a.Content.SetBounce(true)
	}
	return moved, last
}

// State reports the gesture state.
func (a *Arbiter) State() State {
	return a.state
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateTracking:
		return "StateTracking"
	case StateDragging:
		return "StateDragging"
	case StateDeferred:
		return "StateDeferred"
	case StateEnded:
		return "StateEnded"
	default:
		panic("invalid State")
	}
}
