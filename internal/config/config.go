package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"StockPlot/internal/display"
)

// Config holds all application configuration.
type Config struct {
	Terminal struct {
		Width       int `yaml:"width"`
		Height      int `yaml:"height"`
		ReserveRows int `yaml:"reserve_rows"`
	} `yaml:"terminal"`
	Chart struct {
		FillGlyph   string `yaml:"fill_glyph"`
		MarkerGlyph string `yaml:"marker_glyph"`
		Separator   string `yaml:"separator"`
		LabelWidth  int    `yaml:"label_width"`
	} `yaml:"chart"`
	Output struct {
		Color string `yaml:"color"`
	} `yaml:"output"`
	CSV struct {
		Comma string `yaml:"comma"`
	} `yaml:"csv"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides. A missing file or .env is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Terminal.ReserveRows = -1

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKPLOT_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("STOCKPLOT_WIDTH: %w", err)
		}
		cfg.Terminal.Width = n
	}
	if v := os.Getenv("STOCKPLOT_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("STOCKPLOT_HEIGHT: %w", err)
		}
		cfg.Terminal.Height = n
	}
	if v := os.Getenv("STOCKPLOT_COLOR"); v != "" {
		cfg.Output.Color = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok && cfg.Output.Color == "" {
		cfg.Output.Color = string(display.ColorNever)
	}

	// Defaults
	if cfg.Terminal.ReserveRows < 0 {
		cfg.Terminal.ReserveRows = 1
	}
	if cfg.Chart.FillGlyph == "" {
		cfg.Chart.FillGlyph = "#"
	}
	if cfg.Chart.MarkerGlyph == "" {
		cfg.Chart.MarkerGlyph = "*"
	}
	if cfg.Chart.Separator == "" {
		cfg.Chart.Separator = "|"
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = string(display.ColorAuto)
	}
	if cfg.CSV.Comma == "" {
		cfg.CSV.Comma = ","
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Terminal.Width < 0 || c.Terminal.Height < 0 {
		return fmt.Errorf("terminal.width and terminal.height must not be negative")
	}
	if c.Terminal.ReserveRows < 0 {
		return fmt.Errorf("terminal.reserve_rows must not be negative")
	}
	if utf8.RuneCountInString(c.Chart.FillGlyph) != 1 {
		return fmt.Errorf("chart.fill_glyph must be a single character")
	}
	if utf8.RuneCountInString(c.Chart.MarkerGlyph) != 1 {
		return fmt.Errorf("chart.marker_glyph must be a single character")
	}
	if c.Chart.LabelWidth < 0 {
		return fmt.Errorf("chart.label_width must not be negative")
	}
	if _, err := display.ParseColorMode(c.Output.Color); err != nil {
		return fmt.Errorf("output.color: %w", err)
	}
	if utf8.RuneCountInString(c.CSV.Comma) != 1 {
		return fmt.Errorf("csv.comma must be a single character")
	}
	return nil
}

// CommaRune returns the CSV field delimiter.
func (c *Config) CommaRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Comma)
	return r
}
