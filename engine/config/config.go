// Package config loads startup settings for the window layer from a TOML
// file. A missing file yields defaults; a malformed file is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/hubastard/vide/engine/core"
)

type Settings struct {
	Window WindowSettings `toml:"window"`
	Font   FontSettings   `toml:"font"`
}

type WindowSettings struct {
	Title   string `toml:"title"`
	Columns uint32 `toml:"columns"`
	Rows    uint32 `toml:"rows"`
	FPS     int    `toml:"fps"`
	VSync   bool   `toml:"vsync"`
}

type FontSettings struct {
	Path   string  `toml:"path"`
	SizePx float64 `toml:"size_px"`
}

func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Title:   "vide",
			Columns: 64,
			Rows:    64,
			FPS:     144,
		},
		Font: FontSettings{SizePx: 14},
	}
}

// Load reads settings from path, filling unset fields with defaults.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	if s.Window.Columns == 0 {
		s.Window.Columns = Default().Window.Columns
	}
	if s.Window.Rows == 0 {
		s.Window.Rows = Default().Window.Rows
	}
	if s.Window.FPS <= 0 {
		s.Window.FPS = Default().Window.FPS
	}
	return s, nil
}

// EngineConfig converts settings to the window layer's config. cellSize <= 0
// leaves the placeholder scale in effect; FPS <= 0 falls back to the default.
func (s Settings) EngineConfig(cellSize float64) core.Config {
	fps := s.Window.FPS
	if fps <= 0 {
		fps = Default().Window.FPS
	}
	return core.Config{
		Title:         s.Window.Title,
		Columns:       s.Window.Columns,
		Rows:          s.Window.Rows,
		CellSize:      cellSize,
		FrameDuration: time.Second / time.Duration(fps),
		VSync:         s.Window.VSync,
	}
}
