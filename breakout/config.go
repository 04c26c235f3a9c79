// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakout

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the game configuration, loaded from a TOML file over
// compiled-in defaults.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Camera   CameraConfig   `toml:"camera"`
	Ball     BallConfig     `toml:"ball"`
	Platform PlatformConfig `toml:"platform"`
	Border   BorderConfig   `toml:"border"`

	// LevelFile is the path of a YAML level definition.
	// Empty means the embedded default level.
	LevelFile string `toml:"levelFile"`
}

// WindowConfig is the initial window geometry and title.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// CameraConfig is the fixed orthographic camera: positioned at
// (0, 0, Z) looking down -Z over a 2*Extent world box.
type CameraConfig struct {
	Z      float32 `toml:"z"`
	Extent float32 `toml:"extent"`
	Near   float32 `toml:"near"`
	Far    float32 `toml:"far"`
}

// BallConfig is the ball geometry and motion parameters.
type BallConfig struct {
	Radius   float32    `toml:"radius"`
	Segments int        `toml:"segments"`
	Speed    float32    `toml:"speed"`
	Start    [2]float32 `toml:"start"`
	Velocity [2]float32 `toml:"velocity"`
	Color    [4]float32 `toml:"color"`
}

// PlatformConfig is the player paddle geometry and speed. Y is the
// fixed height the paddle moves along.
type PlatformConfig struct {
	Width  float32    `toml:"width"`
	Height float32    `toml:"height"`
	Y      float32    `toml:"y"`
	Speed  float32    `toml:"speed"`
	Color  [4]float32 `toml:"color"`
}

// BorderConfig is the playing field frame: an outer colored box
// with a darker inner box on top of it, leaving a visible frame of
// half the thickness on each side. The outer box is the collision
// boundary keeping everything inside.
type BorderConfig struct {
	Width      float32    `toml:"width"`
	Height     float32    `toml:"height"`
	Thickness  float32    `toml:"thickness"`
	Color      [4]float32 `toml:"color"`
	InnerColor [4]float32 `toml:"innerColor"`
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Breakout",
		},
		Camera: CameraConfig{
			Z:      5,
			Extent: 10,
			Near:   0.1,
			Far:    100,
		},
		Ball: BallConfig{
			Radius:   0.5,
			Segments: 50,
			Speed:    8,
			Start:    [2]float32{0, -5},
			Velocity: [2]float32{1, 1},
			Color:    [4]float32{0.4, 0.9, 0.4, 1},
		},
		Platform: PlatformConfig{
			Width:  2,
			Height: 0.5,
			Y:      -8,
			Speed:  10,
			Color:  [4]float32{0.6, 0.6, 0.6, 1},
		},
		Border: BorderConfig{
			Width:      19,
			Height:     19,
			Thickness:  0.5,
			Color:      [4]float32{0.7, 0.7, 0.7, 1},
			InnerColor: [4]float32{0.1, 0.1, 0.12, 1},
		},
	}
}

// LoadConfig returns the configuration from the given TOML file,
// applied over the defaults. An empty path or a missing file yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}
