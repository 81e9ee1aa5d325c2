// SPDX-License-Identifier: Unlicense OR MIT

// Package orientation carries the sticky point of a pull-up panel across
// portrait and landscape layouts.
package orientation

import (
	"gioui.org/f32"

	"gioui.org/pullup/sticky"
)

// Orientation is the layout of a host, derived from its size.
type Orientation uint8

const (
	// Portrait hosts are at least as tall as they are wide. The panel
	// slides between its sticky points.
	Portrait Orientation = iota
	// Landscape hosts are wider than they are tall. The panel sits in a
	// fixed frame.
	Landscape
)

// Of returns the orientation of a host of the given size. Square hosts
// are portrait.
func Of(size f32.Point) Orientation {
	if size.X > size.Y {
		return Landscape
	}
	return Portrait
}

// Planner remembers the sticky point that was active before the host
// turned to landscape.
type Planner struct {
	saved    int
	hasSaved bool
}

// Leave records the sticky point nearest to visible.
func (p *Planner) Leave(points sticky.Points, visible float32) {
	p.saved = points.Nearest(visible)
	p.hasSaved = true
}

// Restore returns the index of the sticky point to show when the host
// turns back to portrait. The recorded index is used and forgotten if it
// is still valid for points; otherwise the point nearest to visible is
// returned.
func (p *Planner) Restore(points sticky.Points, visible float32) int {
	saved, ok := p.saved, p.hasSaved
	p.Reset()
	if ok && saved >= 0 && saved < len(points) {
		return saved
	}
	return points.Nearest(visible)
}

// Saved returns the recorded index, if any.
func (p *Planner) Saved() (int, bool) {
	return p.saved, p.hasSaved
}

// Reset forgets the recorded index.
func (p *Planner) Reset() {
	*p = Planner{}
}

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "Portrait"
	case Landscape:
		return "Landscape"
	default:
		panic("invalid Orientation")
	}
}
