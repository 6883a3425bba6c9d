/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package config holds the user-editable configuration persisted to a
// YAML file in the user scope. Environment variables act as read-only
// overrides at runtime. The snap section feeds guide.Settings for newly
// constructed layers; it is read once at layer construction.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"guidekit/internal/guide"
)

type SnapConfig struct {
	// Tolerance is the snap distance in drawing units.
	Tolerance float64 `yaml:"tolerance"`
	// Colour is a named SVG colour or "#rrggbb" hex value applied to new guides.
	Colour       string `yaml:"colour"`
	SnapToGrid   bool   `yaml:"snap_to_grid"`
	ShowDragInfo bool   `yaml:"show_drag_info"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Snap          SnapConfig    `yaml:"snap"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Snap:          SnapConfig{Tolerance: guide.DefaultSnapTolerance, Colour: "cornflowerblue", SnapToGrid: false, ShowDragInfo: true},
		Logging:       LoggingConfig{Level: "info", Format: "console", File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvSnapTolerance = "GK_SNAP_TOLERANCE"
	EnvSnapColour    = "GK_SNAP_COLOUR"
	EnvSnapToGrid    = "GK_SNAP_TO_GRID"
	EnvShowDragInfo  = "GK_SHOW_DRAG_INFO"
	EnvLogLevel      = "GK_LOG_LEVEL"
	EnvLogFormat     = "GK_LOG_FORMAT"
	EnvLogFile       = "GK_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "Guidekit")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "Guidekit")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "guidekit")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and
// merges environment overrides. A missing or unparsable file yields the
// defaults rather than an error.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LayerSettings converts the snap section into settings for a new guide
// layer. Unparsable colours fall back to the engine default.
func (c AppConfig) LayerSettings() guide.Settings {
	s := guide.Settings{
		SnapTolerance: c.Snap.Tolerance,
		SnapToGrid:    c.Snap.SnapToGrid,
		ShowDragInfo:  c.Snap.ShowDragInfo,
	}
	if col, err := guide.ParseColour(c.Snap.Colour); err == nil {
		s.GuideColour = col
	} else {
		s.GuideColour = guide.DefaultColour
	}
	return s
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Snap.Tolerance > 0 {
		dst.Snap.Tolerance = src.Snap.Tolerance
	}
	if strings.TrimSpace(src.Snap.Colour) != "" {
		dst.Snap.Colour = strings.TrimSpace(src.Snap.Colour)
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.Snap.SnapToGrid = src.Snap.SnapToGrid
	dst.Snap.ShowDragInfo = src.Snap.ShowDragInfo
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvSnapTolerance)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Snap.Tolerance = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvSnapColour)); v != "" {
		cfg.Snap.Colour = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSnapToGrid)); v != "" {
		cfg.Snap.SnapToGrid = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvShowDragInfo)); v != "" {
		cfg.Snap.ShowDragInfo = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func truthy(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}
