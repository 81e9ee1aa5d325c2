// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"gioui.org/f32"
	"gioui.org/pullup"
)

// windowSize is the initial window size in Dp.
var windowSize = f32.Pt(390, 780)

// defaultConfig returns the sheet configuration of the demo for a
// window of the given size.
func defaultConfig(host f32.Point) pullup.Config {
	cfg := pullup.DefaultConfig(host)
	cfg.InitialOffset = 88
	cfg.PortraitSize = f32.Pt(host.X, host.Y-64)
	cfg.MiddlePoints = []float32{320}
	cfg.Bounce = true
	return cfg
}

// loadConfig reads a sheet configuration from path. An empty path
// returns nil and the sheet configures itself from the window size.
func loadConfig(path string) (*pullup.Config, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfig(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(b []byte) (*pullup.Config, error) {
	cfg := defaultConfig(windowSize)
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
