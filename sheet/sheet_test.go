// SPDX-License-Identifier: Unlicense OR MIT

package sheet

import (
	"image"
	"math"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/widget"

	"gioui.org/pullup"
)

type harness struct {
	r     input.Router
	gtx   layout.Context
	sheet *Sheet
	// content is the size the content was laid out with.
	content image.Point
	moves   []float32
	// w replaces the default content when set.
	w layout.Widget
}

func newHarness(size image.Point) *harness {
	h := &harness{sheet: new(Sheet)}
	cfg := pullup.DefaultConfig(f32.Pt(float32(size.X), float32(size.Y)))
	cfg.InitialOffset = 80
	cfg.PortraitSize = f32.Pt(400, 500)
	cfg.MiddlePoints = []float32{300}
	h.sheet.Config = cfg
	h.sheet.Delegate = pullup.Funcs{
		DidMoveFunc: func(p float32) { h.moves = append(h.moves, p) },
	}
	h.gtx = layout.Context{
		Ops:         new(op.Ops),
		Source:      h.r.Source(),
		Constraints: layout.Exact(size),
		Now:         time.Unix(1000, 0),
	}
	return h
}

func (h *harness) frame() {
	h.gtx.Ops.Reset()
	h.sheet.Layout(h.gtx, func(gtx layout.Context) layout.Dimensions {
		h.content = gtx.Constraints.Max
		if h.w != nil {
			return h.w(gtx)
		}
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
	h.r.Frame(h.gtx.Ops)
}

// settle lays out frames until running animations complete.
func (h *harness) settle() {
	h.gtx.Now = h.gtx.Now.Add(time.Second)
	h.frame()
}

// drag queues a touch drag through ys, one sample every step.
func (h *harness) drag(ys []float32, step, pause time.Duration) {
	var t time.Duration
	evts := []event.Event{pointer.Event{
		Kind:     pointer.Press,
		Source:   pointer.Touch,
		Position: f32.Pt(200, ys[0]),
		Time:     t,
	}}
	for _, y := range ys[1:] {
		t += step
		evts = append(evts, pointer.Event{
			Kind:     pointer.Move,
			Source:   pointer.Touch,
			Position: f32.Pt(200, y),
			Time:     t,
		})
	}
	evts = append(evts, pointer.Event{
		Kind:     pointer.Release,
		Source:   pointer.Touch,
		Position: f32.Pt(200, ys[len(ys)-1]),
		Time:     t + pause,
	})
	h.r.Queue(evts...)
	h.frame()
}

// list attaches a list of n rows, itemHeight Dp each, as the content
// of the sheet. item, if not nil, lays out each row.
func (h *harness) list(n int, item layout.ListElement) *List {
	l := &List{List: &layout.List{Axis: layout.Vertical}}
	if item == nil {
		item = func(gtx layout.Context, i int) layout.Dimensions {
			return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, itemHeight)}
		}
	}
	h.sheet.Content = l
	h.w = func(gtx layout.Context) layout.Dimensions {
		return l.Layout(gtx, n, item)
	}
	return l
}

const itemHeight = 50

// scrolled returns the list scroll position in pixels.
func scrolled(l *List) int {
	p := l.List.Position
	return p.First*itemHeight + p.Offset
}

func steps(from, to, by float32) []float32 {
	var ys []float32
	if from > to {
		by = -by
	}
	for y := from; (by < 0 && y >= to) || (by > 0 && y <= to); y += by {
		ys = append(ys, y)
	}
	return ys
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestSheetAttach(t *testing.T) {
	h := newHarness(image.Pt(400, 800))
	h.frame()
	if !h.sheet.Attached() {
		t.Fatal("sheet not attached after the first frame")
	}
	if !approx(h.sheet.Visible(), 80) {
		t.Errorf("visible %v, want 80", h.sheet.Visible())
	}
	if !approx(h.sheet.Top(), 720) {
		t.Errorf("top %v, want 720", h.sheet.Top())
	}
	if got, want := h.content, image.Pt(400, 500); got != want {
		t.Errorf("content size %v, want %v", got, want)
	}
}

func TestSheetDefaultConfig(t *testing.T) {
	s := new(Sheet)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(360, 640)),
	}
	s.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
	if got, want := s.Controller().Config().PortraitSize, f32.Pt(360, 400); got != want {
		t.Errorf("portrait size %v, want %v", got, want)
	}
	if !approx(s.Visible(), 0) {
		t.Errorf("visible %v, want 0", s.Visible())
	}
}

func TestSheetDrag(t *testing.T) {
	h := newHarness(image.Pt(400, 800))
	h.frame()
	// From top 720 up to 470, resting before the release.
	h.drag(steps(750, 500, 10), 10*time.Millisecond, 200*time.Millisecond)
	h.settle()
	if !approx(h.sheet.Visible(), 300) {
		t.Errorf("visible %v, want 300", h.sheet.Visible())
	}
	if len(h.moves) != 1 || h.moves[0] != 300 {
		t.Errorf("moves %v, want [300]", h.moves)
	}
	if h.sheet.Dragging() {
		t.Error("dragging after release")
	}
}

func TestSheetFling(t *testing.T) {
	h := newHarness(image.Pt(400, 800))
	h.frame()
	// 1000 Dp/s upwards, released at visible 250.
	h.drag(steps(750, 580, 10), 10*time.Millisecond, 0)
	h.settle()
	if !approx(h.sheet.Visible(), 500) {
		t.Errorf("visible %v, want 500", h.sheet.Visible())
	}
}

func TestSheetLandscape(t *testing.T) {
	h := newHarness(image.Pt(400, 800))
	h.frame()
	h.sheet.MoveTo(300, false, nil)
	h.gtx.Constraints = layout.Exact(image.Pt(800, 400))
	h.frame()
	if got, want := h.content, h.sheet.Config.LandscapeFrame.Size(); float32(got.X) != want.X || float32(got.Y) != want.Y {
		t.Errorf("landscape content %v, want %v", got, want)
	}
	h.gtx.Constraints = layout.Exact(image.Pt(400, 800))
	h.frame()
	h.settle()
	if !approx(h.sheet.Visible(), 300) {
		t.Errorf("visible %v after rotating back, want 300", h.sheet.Visible())
	}
}

func TestSheetDetach(t *testing.T) {
	h := newHarness(image.Pt(400, 800))
	h.frame()
	h.sheet.Detach()
	h.frame()
	if !h.sheet.Attached() {
		t.Fatal("removed before the animation ended")
	}
	h.settle()
	if h.sheet.Attached() {
		t.Error("still attached after the animation")
	}
}

func TestAnimator(t *testing.T) {
	start := time.Unix(0, 0)
	a := animator{now: start}
	done := false
	a.Animate(100, 200, 100*time.Millisecond, func() { done = true })
	v, running := a.update(start.Add(50 * time.Millisecond))
	if !running || v <= 150 || v >= 200 {
		t.Errorf("halfway: %v, %v", v, running)
	}
	a.now = start.Add(50 * time.Millisecond)
	if top, ok := a.Stop(); !ok || top != v {
		t.Errorf("Stop = (%v, %v), want (%v, true)", top, ok, v)
	}
	if _, running := a.update(start.Add(time.Second)); running || done {
		t.Error("stopped animation completed")
	}
	a.Animate(0, 10, 0, func() { done = true })
	if v, running := a.update(a.now); running || v != 10 || !done {
		t.Errorf("zero duration: %v, %v, %v", v, running, done)
	}
}

func TestList(t *testing.T) {
	l := &List{List: new(layout.List), pxPerDp: 2}
	if got := l.ScrollOffset(); got != 0 {
		t.Errorf("offset %v, want 0", got)
	}
	l.SetScrollOffset(30)
	if got := l.List.Position.Offset; got != 60 {
		t.Errorf("list offset %d px, want 60", got)
	}
	if got := l.ScrollOffset(); got != 30 {
		t.Errorf("offset %v, want 30", got)
	}
	l.SetScrollOffset(-10)
	if got := l.ScrollOffset(); got != 0 {
		t.Errorf("offset %v without bounce, want 0", got)
	}
	l.List.Position.First = 3
	l.List.Position.Offset = 5
	if got := l.ScrollOffset(); got <= 0 {
		t.Errorf("offset %v for a scrolled list, want positive", got)
	}
}

func TestSheetListDragUp(t *testing.T) {
	h := newHarness(image.Pt(400, 800))
	l := h.list(40, nil)
	h.frame()
	h.drag(steps(750, 500, 10), 10*time.Millisecond, 200*time.Millisecond)
	h.settle()
	if !approx(h.sheet.Visible(), 300) {
		t.Errorf("visible %v, want 300", h.sheet.Visible())
	}
	if got := scrolled(l); got != 0 {
		t.Errorf("list scrolled %d px while the panel moved", got)
	}
}

func TestSheetListScrollFullyOpen(t *testing.T) {
	h := newHarness(image.Pt(400, 800))
	l := h.list(40, nil)
	h.frame()
	h.sheet.MoveTo(500, false, nil)
	h.frame()
	// Panel top at 300; the finger moves up by 200.
	h.drag(steps(700, 500, 10), 10*time.Millisecond, 200*time.Millisecond)
	h.settle()
	if !approx(h.sheet.Visible(), 500) {
		t.Errorf("visible %v, want 500", h.sheet.Visible())
	}
	if got := scrolled(l); got != 200 {
		t.Errorf("list scrolled %d px, want 200", got)
	}
	if len(h.moves) != 1 {
		t.Errorf("moves %v, want only the initial move", h.moves)
	}
}

func TestSheetListDragDownAtTop(t *testing.T) {
	h := newHarness(image.Pt(400, 800))
	l := h.list(40, nil)
	h.frame()
	h.sheet.MoveTo(500, false, nil)
	h.frame()
	// Panel top at 300; the finger moves down by 150 with the list at
	// its top edge.
	h.drag(steps(320, 470, 10), 10*time.Millisecond, 200*time.Millisecond)
	h.settle()
	if !approx(h.sheet.Visible(), 300) {
		t.Errorf("visible %v, want 300", h.sheet.Visible())
	}
	if got := scrolled(l); got != 0 {
		t.Errorf("list scrolled %d px, want 0", got)
	}
}

func TestSheetListTap(t *testing.T) {
	h := newHarness(image.Pt(400, 800))
	var btns [3]widget.Clickable
	clicked := -1
	h.list(len(btns), func(gtx layout.Context, i int) layout.Dimensions {
		if btns[i].Clicked(gtx) {
			clicked = i
		}
		return btns[i].Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, itemHeight)}
		})
	})
	h.frame()
	// The first row spans 720 to 770.
	h.drag([]float32{745}, 0, 0)
	h.frame()
	if clicked != 0 {
		t.Errorf("clicked row %d, want 0", clicked)
	}
	if !approx(h.sheet.Visible(), 80) {
		t.Errorf("tap moved the panel to %v", h.sheet.Visible())
	}
}
