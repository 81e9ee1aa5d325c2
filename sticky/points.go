// SPDX-License-Identifier: Unlicense OR MIT

/*
Package sticky implements the resting positions of a pull-up panel.

A sticky point is a visible height measured from the bottom edge of the
host upwards to the top edge of the panel. A Points value holds every
valid resting height in ascending order and resolves the point a
released gesture should settle on.
*/
package sticky

import (
	"math"

	"golang.org/x/exp/slices"
)

// Points is an ascending set of sticky points without duplicates.
// A Points value built by New is never empty.
type Points []float32

// New returns the union of the initial point, the panel height and the
// middle points. NaN values are ignored. If no value remains the set
// contains the single point 0.
func New(initial, height float32, middle []float32) Points {
	p := make(Points, 0, len(middle)+2)
	for _, v := range append([]float32{initial, height}, middle...) {
		if math.IsNaN(float64(v)) {
			continue
		}
		p = append(p, v)
	}
	if len(p) == 0 {
		return Points{0}
	}
	slices.Sort(p)
	return slices.Compact(p)
}

// First returns the lowest point.
func (p Points) First() float32 {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// Last returns the highest point, which is the fully open panel.
func (p Points) Last() float32 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Nearest returns the index of the point closest to visible. Ties
// resolve to the lower index.
func (p Points) Nearest(visible float32) int {
	best, dist := 0, float32(math.Inf(1))
	for i, v := range p {
		if d := abs(v - visible); d < dist {
			best, dist = i, d
		}
	}
	return best
}

// Directional adjusts nearest for a fast swipe. A velocity above
// threshold moves one point down, a velocity below -threshold one
// point up. Velocities are positive when the finger moves downwards.
// The result is always a valid index.
func (p Points) Directional(nearest int, velocity, threshold float32) int {
	i := nearest
	switch {
	case abs(velocity) <= threshold:
	case velocity > 0:
		i--
	default:
		i++
	}
	if i > len(p)-1 {
		i = len(p) - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
