package bar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Arstman/penrose/draw"
)

// Config is the on-disk status bar configuration.
type Config struct {
	Height      int    `toml:"height"`
	Position    string `toml:"position"`
	Font        string `toml:"font"`
	PointSize   int    `toml:"point_size"`
	Background  string `toml:"background"`
	Foreground  string `toml:"foreground"`
	Label       string `toml:"label"`
	ClockFormat string `toml:"clock_format"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Height:      18,
		Position:    "top",
		Font:        "monospace",
		PointSize:   11,
		Background:  "#282828",
		Foreground:  "#ebdbb2",
		Label:       "penrose",
		ClockFormat: DefaultClockFormat,
	}
}

// DefaultPath returns the default config file path using XDG
// conventions.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "penrose", "pbar.toml")
}

// LoadConfig reads and parses the config file at path. A missing file
// is not an error: the defaults are returned. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	if c.PointSize <= 0 {
		return fmt.Errorf("point_size must be positive, got %d", c.PointSize)
	}
	if _, err := c.ParsePosition(); err != nil {
		return err
	}
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// ParsePosition maps the position string onto a Position.
func (c Config) ParsePosition() (Position, error) {
	switch strings.ToLower(c.Position) {
	case "", "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	default:
		return Top, fmt.Errorf("unknown bar position %q", c.Position)
	}
}

// Colors returns the parsed background and foreground colors.
func (c Config) Colors() (bg, fg draw.Color, err error) {
	bg, err = draw.ParseColor(c.Background)
	if err != nil {
		return draw.Color{}, draw.Color{}, fmt.Errorf("background: %w", err)
	}
	fg, err = draw.ParseColor(c.Foreground)
	if err != nil {
		return draw.Color{}, draw.Color{}, fmt.Errorf("foreground: %w", err)
	}
	return bg, fg, nil
}
