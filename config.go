// SPDX-License-Identifier: Unlicense OR MIT

package pullup

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gioui.org/f32"

	"gioui.org/pullup/sticky"
)

const (
	// DefaultDuration is the length of programmatic moves and of snaps
	// after a release without velocity.
	DefaultDuration = 300 * time.Millisecond
	// MinSnapDuration is the shortest snap after a fast release.
	MinSnapDuration = 80 * time.Millisecond
	// DefaultFastSwipeVelocity is the release speed, in Dp per second,
	// above which a snap skips to the next sticky point.
	DefaultFastSwipeVelocity = 700
	// DefaultBounceAllowance is the overshoot past the outermost sticky
	// points while dragging with bouncing enabled.
	DefaultBounceAllowance = 64
)

// Rect is a rectangle in Dp.
type Rect struct {
	Min f32.Point `yaml:"min"`
	Max f32.Point `yaml:"max"`
}

// Config describes a panel. A Config is not modified after it is passed
// to a Controller; changing the portrait size goes through
// Controller.SetPreferredSize.
type Config struct {
	// InitialOffset is the sticky point shown after attaching, usually
	// a preview of the panel.
	InitialOffset float32 `yaml:"initial_offset"`
	// PortraitSize is the panel size in portrait. Its height is the
	// highest sticky point.
	PortraitSize f32.Point `yaml:"portrait_size"`
	// LandscapeFrame is the fixed panel frame in landscape.
	LandscapeFrame Rect `yaml:"landscape_frame"`
	// MiddlePoints are the sticky points between InitialOffset and the
	// portrait height.
	MiddlePoints []float32 `yaml:"middle_points"`
	// Bounce lets a drag overshoot the outermost sticky points by
	// BounceAllowance.
	Bounce          bool    `yaml:"bounce"`
	BounceAllowance float32 `yaml:"bounce_allowance"`
	// FastSwipeVelocity is the release speed in Dp per second above
	// which the panel moves to the neighbouring sticky point in the
	// direction of the swipe.
	FastSwipeVelocity float32 `yaml:"fast_swipe_velocity"`
}

// DefaultConfig returns the configuration for a host of the given size.
func DefaultConfig(host f32.Point) Config {
	return Config{
		PortraitSize: f32.Pt(host.X, 400),
		LandscapeFrame: Rect{
			Min: f32.Pt(10, 10),
			Max: f32.Pt(10+300, 10+host.Y-20),
		},
		BounceAllowance:   DefaultBounceAllowance,
		FastSwipeVelocity: DefaultFastSwipeVelocity,
	}
}

// Validate reports configuration values the panel cannot work with.
func (c Config) Validate() error {
	type field struct {
		name string
		v    float32
	}
	vals := []field{
		{"initial offset", c.InitialOffset},
		{"portrait width", c.PortraitSize.X},
		{"portrait height", c.PortraitSize.Y},
		{"bounce allowance", c.BounceAllowance},
		{"fast swipe velocity", c.FastSwipeVelocity},
	}
	for _, p := range c.MiddlePoints {
		vals = append(vals, field{"middle point", p})
	}
	for _, f := range vals {
		if math.IsNaN(float64(f.v)) || math.IsInf(float64(f.v), 0) {
			return fmt.Errorf("pullup: invalid %s: %v", f.name, f.v)
		}
	}
	switch {
	case c.PortraitSize.X < 0 || c.PortraitSize.Y < 0:
		return fmt.Errorf("pullup: negative portrait size %v", c.PortraitSize)
	case c.BounceAllowance < 0:
		return fmt.Errorf("pullup: negative bounce allowance %v", c.BounceAllowance)
	case c.FastSwipeVelocity <= 0:
		return errors.New("pullup: fast swipe velocity must be positive")
	case c.LandscapeFrame.Max.X < c.LandscapeFrame.Min.X || c.LandscapeFrame.Max.Y < c.LandscapeFrame.Min.Y:
		return fmt.Errorf("pullup: inverted landscape frame %v", c.LandscapeFrame)
	}
	return nil
}

// Points returns the sticky points of c.
func (c Config) Points() sticky.Points {
	return sticky.New(c.InitialOffset, c.PortraitSize.Y, c.MiddlePoints)
}

// Size returns the size of r.
func (r Rect) Size() f32.Point {
	return r.Max.Sub(r.Min)
}

// Add translates r by p.
func (r Rect) Add(p f32.Point) Rect {
	return Rect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}
