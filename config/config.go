// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of the orbit demo: defaults,
// overridden by a toml or yaml file, overridden by ORBIT_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"embla3d.dev/engine/math32"
	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the orbit demo.
type Config struct {

	// Items is the number of items placed on the ring.
	Items int `toml:"items" yaml:"items" env:"ORBIT_ITEMS"`

	// Radius is the starting distance of each item from the ring center.
	Radius float32 `toml:"radius" yaml:"radius" env:"ORBIT_RADIUS"`

	// Center is where the ring starts.
	Center []float32 `toml:"center" yaml:"center" env:"ORBIT_CENTER" envSeparator:","`

	// Revolve is the number of degrees the ring revolves about
	// its center (around Z) every tick.
	Revolve float32 `toml:"revolve" yaml:"revolve" env:"ORBIT_REVOLVE"`

	// Spin is the number of degrees every item turns about its own
	// Y axis every tick.
	Spin float32 `toml:"spin" yaml:"spin" env:"ORBIT_SPIN"`

	// Repel is the distance the ring expands by every tick.
	Repel float32 `toml:"repel" yaml:"repel" env:"ORBIT_REPEL"`

	// Drift is the offset the whole ring moves by every tick.
	Drift []float32 `toml:"drift" yaml:"drift" env:"ORBIT_DRIFT" envSeparator:","`

	// Ticks is the number of ticks to run.
	Ticks int `toml:"ticks" yaml:"ticks" env:"ORBIT_TICKS"`

	// Color is the RGB color of the ring, each component in [0, 1].
	Color []float32 `toml:"color" yaml:"color" env:"ORBIT_COLOR" envSeparator:","`

	// Reflectance is the reflectance of the ring material.
	Reflectance float32 `toml:"reflectance" yaml:"reflectance" env:"ORBIT_REFLECTANCE"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Items:       8,
		Radius:      2,
		Revolve:     15,
		Spin:        30,
		Repel:       0.1,
		Ticks:       24,
		Color:       []float32{0.2, 0.6, 1},
		Reflectance: 0.5,
	}
}

// Open reads the given file into cfg, choosing the format from
// the file extension: .toml, .yaml or .yml. Fields absent from the
// file keep their current value.
func Open(cfg *Config, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("config.Open: %s: unsupported extension %q", file, ext)
	}
	if err != nil {
		return fmt.Errorf("config.Open: %s: %w", file, err)
	}
	return nil
}

// ApplyEnv overrides cfg from any ORBIT_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config.ApplyEnv: %w", err)
	}
	return nil
}

// Load returns the defaults, overridden by file (if non-empty)
// and then by the environment, and validated.
func Load(file string) (Config, error) {
	cfg := Defaults()
	if file != "" {
		if err := Open(&cfg, file); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Items < 0 {
		errs = append(errs, fmt.Errorf("items must be >= 0, got %d", cfg.Items))
	}
	if cfg.Radius < 0 {
		errs = append(errs, fmt.Errorf("radius must be >= 0, got %v", cfg.Radius))
	}
	if cfg.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks must be >= 0, got %d", cfg.Ticks))
	}
	if len(cfg.Center) != 0 && len(cfg.Center) != 3 {
		errs = append(errs, fmt.Errorf("center must have 3 components, got %d", len(cfg.Center)))
	}
	if len(cfg.Drift) != 0 && len(cfg.Drift) != 3 {
		errs = append(errs, fmt.Errorf("drift must have 3 components, got %d", len(cfg.Drift)))
	}
	if len(cfg.Color) != 3 {
		errs = append(errs, fmt.Errorf("color must have 3 components, got %d", len(cfg.Color)))
	}
	for i, c := range cfg.Color {
		if c < 0 || c > 1 {
			errs = append(errs, fmt.Errorf("color[%d] must be in [0, 1], got %v", i, c))
		}
	}
	return errors.Join(errs...)
}

// CenterVector returns Center as a vector; empty is the origin.
func (cfg *Config) CenterVector() math32.Vector3 {
	return vector(cfg.Center)
}

// DriftVector returns Drift as a vector; empty is no drift.
func (cfg *Config) DriftVector() math32.Vector3 {
	return vector(cfg.Drift)
}

// ColorVector returns Color as a vector.
func (cfg *Config) ColorVector() math32.Vector3 {
	return vector(cfg.Color)
}

func vector(v []float32) math32.Vector3 {
	if len(v) < 3 {
		return math32.Vector3{}
	}
	return math32.Vec3(v[0], v[1], v[2])
}
