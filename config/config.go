// Package config loads knitter settings from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dustin/go-humanize"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tmpim/knitter"
)

// Defaults applied before any file is loaded. The padding counts match the
// upload form of the web front end.
const (
	DefaultListen    = ":8080"
	DefaultMaxUpload = "5MiB"
	DefaultIncrease  = 1
	DefaultDecrease  = 4
)

// Config holds the settings shared by the command line and the web front
// end. CLI flags override the loaded values.
type Config struct {
	Listen     string `koanf:"listen"`
	MaxUpload  string `koanf:"max_upload"` // e.g. "5MiB", "512KiB"
	MaxPixels  int    `koanf:"max_pixels"` // largest accepted image, width*height
	DualBed    bool   `koanf:"dual_bed"`
	AddPadding bool   `koanf:"add_padding"`
	Width      int    `koanf:"width"` // stitches per row, 0 keeps the image width

	Padding PaddingConfig `koanf:"padding"`

	// Entries in declaration order; empty means the default palette.
	Palette []PaletteEntryConfig `koanf:"palette"`
}

// PaddingConfig holds spacer row settings.
type PaddingConfig struct {
	Increase int    `koanf:"increase"`
	Decrease int    `koanf:"decrease"`
	Blank    string `koanf:"blank"`  // single character, default " "
	Spacer   string `koanf:"spacer"` // single character, default "$"
}

// PaletteEntryConfig is one [[palette]] table.
type PaletteEntryConfig struct {
	Color string `koanf:"color"` // "#rrggbb"
	Front string `koanf:"front"`
	Rear  string `koanf:"rear"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Listen:    DefaultListen,
		MaxUpload: DefaultMaxUpload,
		MaxPixels: knitter.DefaultMaxPixels,
		Padding: PaddingConfig{
			Increase: DefaultIncrease,
			Decrease: DefaultDecrease,
		},
	}
}

// Load reads the given TOML files in order, later files overriding earlier
// ones. Missing files are skipped. With no paths, DefaultPaths is used.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}

	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultPaths returns the config file locations in increasing priority:
// $XDG_CONFIG_HOME/knitter/config.toml, then ./config.toml.
func DefaultPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "knitter", "config.toml"),
		"config.toml",
	}
}

func (c *Config) validate() error {
	if _, err := c.MaxUploadBytes(); err != nil {
		return err
	}
	if c.Width < 0 {
		return fmt.Errorf("config: width must not be negative, got %d", c.Width)
	}
	if c.MaxPixels <= 0 {
		return fmt.Errorf("config: max_pixels must be positive, got %d", c.MaxPixels)
	}
	if _, err := c.PaddingPolicy(); err != nil {
		return err
	}
	if _, err := c.BuildPalette(); err != nil {
		return err
	}

	return nil
}

// MaxUploadBytes parses MaxUpload.
func (c *Config) MaxUploadBytes() (uint64, error) {
	if c.MaxUpload == "" {
		c.MaxUpload = DefaultMaxUpload
	}

	n, err := humanize.ParseBytes(c.MaxUpload)
	if err != nil {
		return 0, fmt.Errorf("config: max_upload: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("config: max_upload must be positive")
	}

	return n, nil
}

// PaddingPolicy converts the padding table.
func (c *Config) PaddingPolicy() (knitter.PaddingPolicy, error) {
	blank, err := symbol("padding.blank", c.Padding.Blank, knitter.DefaultBlank)
	if err != nil {
		return knitter.PaddingPolicy{}, err
	}

	spacer, err := symbol("padding.spacer", c.Padding.Spacer, knitter.DefaultSpacer)
	if err != nil {
		return knitter.PaddingPolicy{}, err
	}

	inc, dec := c.Padding.Increase, c.Padding.Decrease
	if inc < 0 || dec < 0 {
		return knitter.PaddingPolicy{}, fmt.Errorf(
			"config: padding counts must not be negative, got %d/%d", inc, dec)
	}
	if inc > knitter.MaxSpacers || dec > knitter.MaxSpacers {
		return knitter.PaddingPolicy{}, fmt.Errorf(
			"config: padding counts must not exceed %d, got %d/%d", knitter.MaxSpacers, inc, dec)
	}

	return knitter.PaddingPolicy{
		IncreaseCount: uint(inc),
		DecreaseCount: uint(dec),
		Blank:         blank,
		Spacer:        spacer,
	}, nil
}

// BuildPalette converts the [[palette]] tables into a validated palette.
func (c *Config) BuildPalette() (*knitter.Palette, error) {
	if len(c.Palette) == 0 {
		return knitter.DefaultPalette(), nil
	}

	entries := make([]knitter.PaletteEntry, 0, len(c.Palette))
	for i, e := range c.Palette {
		col, err := colorful.Hex(e.Color)
		if err != nil {
			return nil, fmt.Errorf("config: palette[%d].color: %w", i, err)
		}

		front, err := symbol(fmt.Sprintf("palette[%d].front", i), e.Front, 0)
		if err != nil {
			return nil, err
		}

		rear, err := symbol(fmt.Sprintf("palette[%d].rear", i), e.Rear, 0)
		if err != nil {
			return nil, err
		}

		r, g, b := col.RGB255()
		entries = append(entries, knitter.PaletteEntry{
			Color: knitter.Pixel{R: r, G: g, B: b},
			Front: front,
			Rear:  rear,
		})
	}

	return knitter.NewPalette(entries...)
}

// Options returns the conversion options described by the configuration.
func (c *Config) Options() (knitter.Options, error) {
	palette, err := c.BuildPalette()
	if err != nil {
		return knitter.Options{}, err
	}

	policy, err := c.PaddingPolicy()
	if err != nil {
		return knitter.Options{}, err
	}

	return knitter.Options{
		Palette:    palette,
		DualBed:    c.DualBed,
		AddPadding: c.AddPadding,
		Padding:    policy,
		Width:      c.Width,
	}, nil
}

// symbol parses a single character setting. An empty value yields def, or
// an error when def is zero.
func symbol(key, value string, def byte) (byte, error) {
	switch {
	case value == "" && def != 0:
		return def, nil
	case len(value) != 1:
		return 0, fmt.Errorf("config: %s must be a single character, got %q", key, value)
	}

	return value[0], nil
}
