// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakout

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed level.yaml
var defaultLevelData []byte

// Level defines the crate grid: a rows x cols pack of crates
// centered on a point, with per-row colors cycling through Colors.
type Level struct {
	Rows        int          `yaml:"rows"`
	Cols        int          `yaml:"cols"`
	CrateWidth  float32      `yaml:"crate_width"`
	CrateHeight float32      `yaml:"crate_height"`
	GapX        float32      `yaml:"gap_x"`
	GapY        float32      `yaml:"gap_y"`
	Center      [2]float32   `yaml:"center"`
	Colors      [][4]float32 `yaml:"colors"`
}

// Crates returns the total number of crates in the level.
func (lv *Level) Crates() int {
	return lv.Rows * lv.Cols
}

// RowColor returns the crate color for the given row, cycling
// through the level's color list.
func (lv *Level) RowColor(row int) [4]float32 {
	if len(lv.Colors) == 0 {
		return [4]float32{0.8, 0.8, 0.8, 1}
	}
	return lv.Colors[row%len(lv.Colors)]
}

// LoadLevel returns the level from the given YAML file.
// An empty path yields the embedded default level.
func LoadLevel(path string) (*Level, error) {
	data := defaultLevelData
	if path != "" {
		d, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading level file: %w", err)
		}
		data = d
	}
	lv := &Level{}
	if err := yaml.Unmarshal(data, lv); err != nil {
		return nil, fmt.Errorf("parsing level file: %w", err)
	}
	if lv.Rows < 1 || lv.Cols < 1 {
		return nil, fmt.Errorf("level must have at least one row and column, got %dx%d", lv.Rows, lv.Cols)
	}
	return lv, nil
}
