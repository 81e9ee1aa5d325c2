// SPDX-License-Identifier: Unlicense OR MIT

package pullup

import "time"

// Animator presents transitions of the panel top offset.
type Animator interface {
	// Animate moves the presented top offset from one value to another
	// over d and calls done when the presentation reaches to. done may
	// run after Animate returns.
	Animate(from, to float32, d time.Duration, done func())
	// Stop halts the running animation, if any, and returns the offset
	// it was presenting.
	Stop() (top float32, ok bool)
}

// Immediate is an Animator without transitions.
type Immediate struct{}

func (Immediate) Animate(from, to float32, d time.Duration, done func()) {
	done()
}

func (Immediate) Stop() (float32, bool) {
	return 0, false
}

// snapDuration returns the time to cover distance at velocity, bounded
// by MinSnapDuration and DefaultDuration.
func snapDuration(distance, velocity float32) time.Duration {
	if velocity == 0 {
		return DefaultDuration
	}
	s := distance / velocity
	if s < 0 {
		s = -s
	}
	d := time.Duration(float64(s) * float64(time.Second))
	switch {
	case d < MinSnapDuration:
		return MinSnapDuration
	case d > DefaultDuration:
		return DefaultDuration
	}
	return d
}
