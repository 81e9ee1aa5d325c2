// SPDX-License-Identifier: Unlicense OR MIT

// Package fling estimates the release velocity of drag gestures.
package fling

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Extrapolation estimates the velocity of a one-dimensional drag from
// its most recent samples.
type Extrapolation struct {
	// Index of the next sample.
	idx     int
	count   int
	samples [historySize]sample
}

// Estimate is the result of an Extrapolation.
type Estimate struct {
	// Velocity in units per second.
	Velocity float32
	// Distance covered by the samples used for the estimate.
	Distance float32
}

type sample struct {
	t time.Duration
	v float32
}

const (
	historySize = 20
	// maxAge is the age of the oldest sample used for an estimate.
	maxAge = 100 * time.Millisecond
	// maxPause discards the history when the pointer rested before
	// the release.
	maxPause = 40 * time.Millisecond
)

// Sample adds a position sample at time t.
func (e *Extrapolation) Sample(t time.Duration, v float32) {
	e.samples[e.idx] = sample{t: t, v: v}
	e.idx = (e.idx + 1) % historySize
	if e.count < historySize {
		e.count++
	}
}

// Reset forgets all samples.
func (e *Extrapolation) Reset() {
	*e = Extrapolation{}
}

// Estimate fits a line through the recent samples, weighting newer
// samples higher, and returns its slope.
func (e *Extrapolation) Estimate() Estimate {
	if e.count < 2 {
		return Estimate{}
	}
	last := e.at(0)
	var xs, ys, ws []float64
	prev := last
	for i := 0; i < e.count; i++ {
		s := e.at(i)
		age := last.t - s.t
		if age > maxAge || prev.t-s.t > maxPause || s.t > prev.t {
			break
		}
		prev = s
		xs = append(xs, -age.Seconds())
		ys = append(ys, float64(s.v-last.v))
		ws = append(ws, 1-0.5*age.Seconds()/maxAge.Seconds())
	}
	if len(xs) < 2 || xs[len(xs)-1] == 0 {
		return Estimate{}
	}
	_, slope := stat.LinearRegression(xs, ys, ws, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return Estimate{}
	}
	return Estimate{
		Velocity: float32(slope),
		Distance: last.v - prev.v,
	}
}

// at returns the i'th newest sample.
func (e *Extrapolation) at(i int) sample {
	return e.samples[(e.idx-1-i+2*historySize)%historySize]
}
