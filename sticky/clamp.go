// SPDX-License-Identifier: Unlicense OR MIT

package sticky

// Bounds returns the range of top offsets for a host of the given
// height. The minimum shows the highest point, the maximum the lowest.
func Bounds(host float32, p Points) (min, max float32) {
	return host - p.Last(), host - p.First()
}

// Clamp limits a top offset to the bounds of p. When bounce is allowed
// the range is extended by allowance on both ends.
func Clamp(top, host float32, p Points, bounce bool, allowance float32) float32 {
	min, max := Bounds(host, p)
	if bounce && allowance > 0 {
		min -= allowance
		max += allowance
	}
	if top < min {
		return min
	}
	if top > max {
		return max
	}
	return top
}
