// SPDX-License-Identifier: Unlicense OR MIT

/*
Package sheet implements a pull-up sheet widget for Gio.

A Sheet occupies the space given by its constraints, the host, and
draws its content in a panel anchored to the bottom edge. The user
drags the panel between its sticky points; package pullup decides
where it rests. Scrollable content is attached by setting Content, in
which case the sheet shares the drag between panel and list.

	var s sheet.Sheet
	list := &sheet.List{List: &layout.List{Axis: layout.Vertical}}
	s.Config = pullup.DefaultConfig(f32.Pt(400, 800))
	s.Config.MiddlePoints = []float32{300}
	s.Content = list
	...
	s.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return list.Layout(gtx, n, item)
	})
*/
package sheet

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"gioui.org/pullup"
	"gioui.org/pullup/arbiter"
	"gioui.org/pullup/internal/fling"
	"gioui.org/pullup/orientation"
	"gioui.org/pullup/sticky"
)

// Sheet is a pull-up panel widget.
type Sheet struct {
	// Config applies when the sheet is laid out for the first time. A
	// Config without portrait size is replaced by pullup.DefaultConfig
	// for the host size.
	Config pullup.Config
	// Delegate receives the lifecycle notifications of the panel.
	Delegate pullup.Delegate
	// Content is the scrollable content of the panel, if any. The
	// panel widget lays it out with List.Layout.
	Content *List

	ctrl    pullup.Controller
	host    host
	anim    animator
	drag    gesture.Drag
	arb     arbiter.Arbiter
	vel     fling.Extrapolation
	started bool
	// tracking is set while a pointer drags the sheet.
	tracking bool
	// last is the last pointer position in Dp.
	last float32
}

// host tracks the attachment of the panel to the sheet area.
type host struct {
	attached bool
}

func (h *host) Attached(c *pullup.Controller) { h.attached = true }
func (h *host) Detached(c *pullup.Controller) { h.attached = false }

// Layout lays out the panel with its content w and processes input.
func (s *Sheet) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	size := gtx.Constraints.Max
	scale := pxPerDp(gtx)
	hostSize := f32.Pt(float32(size.X)/scale, float32(size.Y)/scale)
	s.anim.now = gtx.Now
	s.ctrl.Delegate = s.Delegate
	if !s.started {
		s.started = true
		cfg := s.Config
		if cfg.PortraitSize == (f32.Point{}) {
			cfg = pullup.DefaultConfig(hostSize)
		}
		s.ctrl.Animator = &s.anim
		s.ctrl.Attach(&s.host, hostSize, cfg)
	}
	dims := layout.Dimensions{Size: size}
	if !s.host.attached {
		return dims
	}
	if hostSize != s.ctrl.HostSize() {
		s.ctrl.Transition(hostSize, true)
	}
	if s.Content != nil {
		s.Content.pxPerDp = scale
	}
	s.update(gtx, scale)

	top, animating := s.anim.update(gtx.Now)
	if animating {
		gtx.Execute(op.InvalidateCmd{})
	}
	if !s.host.attached {
		return dims
	}
	frame := s.ctrl.Frame()
	if animating && s.ctrl.Orientation() == orientation.Portrait {
		frame = frame.Add(f32.Pt(0, top-s.ctrl.Top()))
	}
	r := toPx(frame, scale)

	defer clip.Rect(r).Push(gtx.Ops).Pop()
	// The drag handler is not offset so pointer positions stay in host
	// coordinates while the panel moves.
	s.drag.Add(gtx.Ops)
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	w(gtx)
	return dims
}

func (s *Sheet) update(gtx layout.Context, scale float32) {
	for {
		e, ok := s.drag.Update(gtx.Metric, gtx.Source, gesture.Vertical)
		if !ok {
			break
		}
		y := e.Position.Y / scale
		switch e.Kind {
		case pointer.Press:
			s.tracking = true
			s.last = y
			s.vel.Reset()
			s.vel.Sample(e.Time, y)
			s.feed(pullup.Gesture{Phase: pullup.Begin})
		case pointer.Drag:
			if !s.tracking {
				break
			}
			s.vel.Sample(e.Time, y)
			s.feed(pullup.Gesture{
				Phase:    pullup.Change,
				Delta:    s.delta(y),
				Velocity: s.vel.Estimate().Velocity,
			})
		case pointer.Release:
			if !s.tracking {
				break
			}
			s.tracking = false
			s.vel.Sample(e.Time, y)
			s.feed(pullup.Gesture{
				Phase:    pullup.End,
				Delta:    s.delta(y),
				Velocity: s.vel.Estimate().Velocity,
			})
		case pointer.Cancel:
			if !s.tracking {
				break
			}
			s.tracking = false
			s.feed(pullup.Gesture{Phase: pullup.Cancel})
		}
	}
}

func (s *Sheet) delta(y float32) float32 {
	d := y - s.last
	s.last = y
	return d
}

func (s *Sheet) feed(g pullup.Gesture) {
	if s.Content == nil {
		s.ctrl.Drag(g)
		return
	}
	s.arb.Content = s.Content
	s.arb.Drive = true
	s.ctrl.ScrollDrag(&s.arb, g)
}

// MoveTo moves the panel to show point. See pullup.Controller.MoveTo.
func (s *Sheet) MoveTo(point float32, animated bool, done func()) {
	s.ctrl.MoveTo(point, animated, done)
}

// SetPreferredSize changes the portrait size of the panel.
func (s *Sheet) SetPreferredSize(size f32.Point, animated bool) {
	s.ctrl.SetPreferredSize(size, animated)
}

// Detach slides the panel out and removes it. The sheet draws nothing
// afterwards.
func (s *Sheet) Detach() {
	s.ctrl.Detach()
}

// Attached reports whether the panel is shown.
func (s *Sheet) Attached() bool {
	return s.host.attached
}

// Dragging reports whether the user is dragging the panel.
func (s *Sheet) Dragging() bool {
	return s.ctrl.Dragging()
}

// Top returns the distance in Dp from the top of the sheet area to the
// top of the panel.
func (s *Sheet) Top() float32 {
	return s.ctrl.Top()
}

// Visible returns the visible height of the panel in Dp, at the end of
// any running animation.
func (s *Sheet) Visible() float32 {
	return s.ctrl.Visible()
}

// Points returns the sticky points of the panel.
func (s *Sheet) Points() sticky.Points {
	return s.ctrl.Points()
}

// Controller returns the controller that positions the panel.
func (s *Sheet) Controller() *pullup.Controller {
	return &s.ctrl
}

func pxPerDp(gtx layout.Context) float32 {
	if gtx.Metric.PxPerDp == 0 {
		return 1
	}
	return gtx.Metric.PxPerDp
}

func toPx(r pullup.Rect, scale float32) image.Rectangle {
	px := func(v float32) int {
		return int(math.Round(float64(v * scale)))
	}
	return image.Rect(px(r.Min.X), px(r.Min.Y), px(r.Max.X), px(r.Max.Y))
}
