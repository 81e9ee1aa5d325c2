// SPDX-License-Identifier: Unlicense OR MIT

package sheet

import "time"

// animator presents controller moves across frames. It implements
// pullup.Animator.
type animator struct {
	// now is the time of the frame being laid out.
	now time.Time

	active   bool
	from, to float32
	start    time.Time
	d        time.Duration
	done     func()
}

func (a *animator) Animate(from, to float32, d time.Duration, done func()) {
	a.active = true
	a.from, a.to = from, to
	a.start = a.now
	a.d = d
	a.done = done
}

func (a *animator) Stop() (float32, bool) {
	if !a.active {
		return 0, false
	}
	v := a.value(a.now)
	a.active = false
	a.done = nil
	return v, true
}

// update advances the animation to t and returns the presented offset
// and whether the animation needs more frames. The completion runs
// when the animation reaches its end.
func (a *animator) update(t time.Time) (float32, bool) {
	a.now = t
	if !a.active {
		return 0, false
	}
	if t.Sub(a.start) < a.d {
		return a.value(t), true
	}
	a.active = false
	done := a.done
	a.done = nil
	if done != nil {
		done()
	}
	return a.to, false
}

func (a *animator) value(t time.Time) float32 {
	if a.d <= 0 {
		return a.to
	}
	p := float32(t.Sub(a.start)) / float32(a.d)
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	// Cubic ease out.
	q := 1 - p
	p = 1 - q*q*q
	return a.from + (a.to-a.from)*p
}
