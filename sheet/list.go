// SPDX-License-Identifier: Unlicense OR MIT

package sheet

import (
	"math"

	"gioui.org/layout"
)

// List is scrollable content of a Sheet backed by a layout.List. The
// sheet drives the list from its own drag gesture, so the list scrolls
// only when the sheet hands the gesture over. Lay the list out with
// List.Layout; a layout.List laid out directly scrolls by itself and
// takes the pointer from the sheet.
type List struct {
	List *layout.List

	// y is the scroll offset in Dp.
	y      float32
	frac   float32
	bounce bool
	// pxPerDp is the scale of the last frame.
	pxPerDp float32
}

// Layout lays out n elements of the list. The list does not see pointer
// input; the elements do.
func (l *List) Layout(gtx layout.Context, n int, w layout.ListElement) layout.Dimensions {
	if gtx.Metric.PxPerDp != 0 {
		l.pxPerDp = gtx.Metric.PxPerDp
	}
	src := gtx.Source
	return l.List.Layout(gtx.Disabled(), n, func(gtx layout.Context, i int) layout.Dimensions {
		gtx.Source = src
		return w(gtx, i)
	})
}

// ScrollOffset implements arbiter.Content.
func (l *List) ScrollOffset() float32 {
	p := l.List.Position
	switch {
	case p.First == 0:
		l.y = float32(p.Offset) / l.scale()
	case l.y <= 0:
		// Scrolled by other means. The exact distance is unknown but
		// the list is away from its top edge.
		l.y = float32(p.Offset)/l.scale() + float32(p.First)
	}
	return l.y
}

// SetScrollOffset implements arbiter.Content.
func (l *List) SetScrollOffset(y float32) {
	if !l.bounce && y < 0 {
		y = 0
	}
	d := (y-l.ScrollOffset())*l.scale() + l.frac
	px := float32(math.Round(float64(d)))
	l.frac = d - px
	l.List.Position.Offset += int(px)
	l.y = y
}

// SetBounce implements arbiter.Content. A layout.List never scrolls
// beyond its top edge; bounce only lets the offset go negative until
// the next layout.
func (l *List) SetBounce(enabled bool) {
	l.bounce = enabled
}

func (l *List) scale() float32 {
	if l.pxPerDp == 0 {
		return 1
	}
	return l.pxPerDp
}
