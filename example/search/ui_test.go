// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"testing"

	"gioui.org/widget"
)

func TestFilter(t *testing.T) {
	u := &UI{clicks: make([]widget.Clickable, len(cities))}
	u.filter("")
	if len(u.matches) != len(cities) {
		t.Errorf("%d matches for an empty pattern", len(u.matches))
	}
	u.filter("rom")
	if len(u.matches) == 0 || cities[u.matches[0]] != "Rome" {
		t.Errorf("matches for rom: %v", u.matches)
	}
	u.filter("zzz")
	if len(u.matches) != 0 {
		t.Errorf("matches for zzz: %v", u.matches)
	}
}
