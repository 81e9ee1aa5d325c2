// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pullup implements the state of a pull-up panel: a panel
anchored to the bottom of a host that rests at sticky points and
follows drag gestures in between.

A Controller owns the panel offset. Input arrives as Gesture samples,
either from the panel itself (Drag) or from scrollable content inside
it (ScrollDrag), and from host size changes (Transition). Lifecycle
notifications go to a Delegate and transitions are presented by an
Animator. Package gioui.org/pullup/sheet binds a Controller to Gio.

All values are in Dp with the y axis pointing down. A sticky point is a
visible height measured from the bottom of the host, and the top
offset is the distance from the top of the host to the top of the
panel, so that top = hostHeight - point.

A Controller must only be used from a single goroutine.
*/
package pullup

import (
	"time"

	"gioui.org/f32"

	"gioui.org/pullup/arbiter"
	"gioui.org/pullup/orientation"
	"gioui.org/pullup/sticky"
)

// Host is the container of a panel.
type Host interface {
	// Attached is called when the panel is added to the host.
	Attached(c *Controller)
	// Detached is called when the panel is removed from the host.
	Detached(c *Controller)
}

// Gesture is a sample of a single pointer drag.
type Gesture struct {
	Phase Phase
	// Delta is the vertical translation since the previous sample,
	// positive downwards.
	Delta float32
	// Velocity is the vertical velocity in Dp per second, positive
	// downwards.
	Velocity float32
}

// Phase is the lifecycle phase of a Gesture sample.
type Phase uint8

const (
	Begin Phase = iota
	Change
	End
	// Cancel ends a gesture without fling.
	Cancel
)

// Controller positions a pull-up panel.
type Controller struct {
	// Animator presents moves. A nil Animator moves immediately.
	Animator Animator
	// Delegate receives lifecycle notifications. It may be nil.
	Delegate Delegate

	host   Host
	size   f32.Point
	cfg    Config
	points sticky.Points
	top    float32

	orient   orientation.Orientation
	planner  orientation.Planner
	noBounce bool

	// gen invalidates the completion of superseded moves.
	gen       uint64
	// pending is the completion of the current move.
	pending   func()
	dragging  bool
	detaching bool
}

// fullyOpenSlop absorbs rounding when comparing offsets.
const fullyOpenSlop = 1e-3

// Attach adds the panel to h, a host of the given size, and shows the
// initial sticky point of cfg. Attach panics if h is scrollable content
// or if the controller is already attached.
func (c *Controller) Attach(h Host, size f32.Point, cfg Config) {
	if h == nil {
		panic("pullup: nil Host")
	}
	if _, ok := h.(arbiter.Content); ok {
		panic("pullup: a pull-up panel cannot be attached to scrollable content")
	}
	if c.host != nil {
		panic("pullup: Controller already attached")
	}
	cfg.MiddlePoints = append([]float32(nil), cfg.MiddlePoints...)
	if cfg.FastSwipeVelocity <= 0 {
		cfg.FastSwipeVelocity = DefaultFastSwipeVelocity
	}
	c.host = h
	c.size = size
	c.cfg = cfg
	c.points = cfg.Points()
	c.top = size.Y - cfg.InitialOffset
	c.orient = orientation.Of(size)
	c.planner.Reset()
	c.noBounce = false
	c.dragging = false
	c.detaching = false
	c.supersede()
	if c.orient == orientation.Landscape {
		c.planner.Leave(c.points, cfg.InitialOffset)
		c.noBounce = true
	}
	h.Attached(c)
}

// Detach moves the panel out of sight and removes it from its host.
// Input is ignored from then on.
func (c *Controller) Detach() {
	if c.host == nil || c.detaching {
		return
	}
	c.detaching = true
	c.dragging = false
	remove := func() {
		h := c.host
		c.host = nil
		c.detaching = false
		h.Detached(c)
	}
	if c.orient == orientation.Landscape {
		c.supersede()
		remove()
		return
	}
	c.moveTo(0, true, DefaultDuration, remove)
}

// MoveTo moves the panel to show point, usually one of Points. done, if
// not nil, is called once: when the panel arrives, or without DidMove
// when a gesture or another move takes over first. MoveTo does nothing
// in landscape or when the panel is not attached.
func (c *Controller) MoveTo(point float32, animated bool, done func()) {
	if !c.interactive() {
		return
	}
	c.dragging = false
	c.moveTo(point, animated, DefaultDuration, done)
}

func (c *Controller) moveTo(point float32, animated bool, d time.Duration, done func()) {
	from := c.top
	c.top = c.size.Y - point
	c.supersede()
	gen := c.gen
	c.pending = done
	c.delegate().WillMove(point)
	finish := func() {
		// A newer move or gesture owns the offset.
		if gen != c.gen {
			return
		}
		c.pending = nil
		c.delegate().DidMove(point)
		if done != nil {
			done()
		}
	}
	if !animated {
		c.animator().Stop()
		finish()
		return
	}
	c.animator().Animate(from, c.top, d, finish)
}

// SetPreferredSize changes the portrait size of the panel. The sticky
// points are derived again and the panel moves to the point nearest to
// its current position.
func (c *Controller) SetPreferredSize(size f32.Point, animated bool) {
	if c.host == nil || c.detaching {
		return
	}
	c.cfg.PortraitSize = size
	c.points = c.cfg.Points()
	if c.orient == orientation.Landscape {
		return
	}
	c.dragging = false
	i := c.points.Nearest(c.Visible())
	c.moveTo(c.points[i], animated, DefaultDuration, nil)
}

// Transition updates the host size. Turning to landscape records the
// current sticky point and switches to the landscape frame; turning
// back to portrait restores it.
func (c *Controller) Transition(size f32.Point, animated bool) {
	if c.host == nil || c.detaching {
		return
	}
	visible := c.Visible()
	prev, next := c.orient, orientation.Of(size)
	c.size = size
	c.orient = next
	c.top = size.Y - visible
	switch {
	case prev == orientation.Portrait && next == orientation.Landscape:
		c.planner.Leave(c.points, visible)
		c.noBounce = true
		c.dragging = false
		c.supersede()
		c.animator().Stop()
	case prev == orientation.Landscape && next == orientation.Portrait:
		c.noBounce = false
		i := c.planner.Restore(c.points, visible)
		c.moveTo(c.points[i], animated, DefaultDuration, nil)
	}
}

// Drag processes a drag sample of the panel.
func (c *Controller) Drag(g Gesture) {
	if !c.interactive() {
		return
	}
	switch g.Phase {
	case Begin, Change:
		c.translate(g.Delta)
	case End:
		c.translate(g.Delta)
		c.settle(g.Velocity)
	case Cancel:
		if c.dragging {
			c.settle(0)
		}
	}
}

// ScrollDrag processes a drag sample of scrollable content inside the
// panel. a decides whether the panel or the content consumes the
// sample. Each attached content must use its own Arbiter.
func (c *Controller) ScrollDrag(a *arbiter.Arbiter, g Gesture) {
	if !c.interactive() {
		return
	}
	switch g.Phase {
	case Begin:
		a.Begin()
		c.scroll(a, g)
	case Change:
		c.scroll(a, g)
	case End:
		c.scroll(a, g)
		if moved, last := a.End(); moved {
			v := g.Velocity
			if last != arbiter.StateDragging {
				v = 0
			}
			c.settle(v)
		}
	case Cancel:
		if moved, _ := a.End(); moved {
			c.settle(0)
		}
	}
}

func (c *Controller) scroll(a *arbiter.Arbiter, g Gesture) {
	if d, own := a.Update(g.Delta, g.Velocity, c.FullyOpen()); own {
		c.translate(d)
	}
}

// translate moves the panel by delta during a drag.
func (c *Controller) translate(delta float32) {
	if !c.dragging {
		c.dragging = true
		c.supersede()
		if top, ok := c.animator().Stop(); ok {
			c.top = top
		}
	}
	bounce := c.cfg.Bounce && !c.noBounce
	c.top = sticky.Clamp(c.top+delta, c.size.Y, c.points, bounce, c.cfg.BounceAllowance)
	c.delegate().Drag(c.top)
}

// settle ends a drag at the sticky point selected by the release
// velocity.
func (c *Controller) settle(velocity float32) {
	c.dragging = false
	p := c.points
	i := p.Directional(p.Nearest(c.Visible()), velocity, c.cfg.FastSwipeVelocity)
	target := p[i]
	d := snapDuration(c.top-(c.size.Y-target), velocity)
	c.moveTo(target, true, d, nil)
}

// supersede invalidates the running move and runs its completion.
func (c *Controller) supersede() {
	c.gen++
	if done := c.pending; done != nil {
		c.pending = nil
		done()
	}
}

func (c *Controller) interactive() bool {
	return c.host != nil && !c.detaching && c.orient == orientation.Portrait
}

func (c *Controller) animator() Animator {
	if c.Animator == nil {
		return Immediate{}
	}
	return c.Animator
}

func (c *Controller) delegate() Delegate {
	if c.Delegate == nil {
		return Funcs{}
	}
	return c.Delegate
}

// Attached reports whether the panel is attached to a host.
func (c *Controller) Attached() bool {
	return c.host != nil
}

// Top returns the distance from the top of the host to the top of the
// panel. During an animation it is the destination of the animation.
func (c *Controller) Top() float32 {
	return c.top
}

// Visible returns the visible height of the panel in portrait.
func (c *Controller) Visible() float32 {
	return c.size.Y - c.top
}

// Points returns the sticky points.
func (c *Controller) Points() sticky.Points {
	return c.points
}

// Config returns the current configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// HostSize returns the last known host size.
func (c *Controller) HostSize() f32.Point {
	return c.size
}

// Orientation returns the host orientation.
func (c *Controller) Orientation() orientation.Orientation {
	return c.orient
}

// Dragging reports whether a drag moves the panel.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// FullyOpen reports whether the panel shows its highest sticky point.
func (c *Controller) FullyOpen() bool {
	min, _ := sticky.Bounds(c.size.Y, c.points)
	return c.top <= min+fullyOpenSlop
}

// Frame returns the panel frame in host coordinates. In portrait the
// panel is centered horizontally at the current top offset; in landscape
// it occupies the configured landscape frame.
func (c *Controller) Frame() Rect {
	if c.orient == orientation.Landscape {
		return c.cfg.LandscapeFrame
	}
	sz := c.cfg.PortraitSize
	if sz.X > c.size.X {
		sz.X = c.size.X
	}
	x := (c.size.X - sz.X) / 2
	return Rect{
		Min: f32.Pt(x, c.top),
		Max: f32.Pt(x+sz.X, c.top+sz.Y),
	}
}
