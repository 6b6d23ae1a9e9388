package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of the recognition pipeline. Zero
// values in a loaded file fall back to the defaults where noted.
type Config struct {
	// Edge configures the Canny edge detector.
	Edge struct {
		// Low is the hysteresis low threshold (default 30).
		Low int `yaml:"low"`
		// High is the hysteresis high threshold (default 200).
		High int `yaml:"high"`
	} `yaml:"edge"`

	// Denoise configures the pre-filter applied before edge detection.
	Denoise struct {
		// Radius is the median filter radius in pixels; zero disables
		// denoising.
		Radius float64 `yaml:"radius"`
	} `yaml:"denoise"`

	// Locate configures candidate ranking and polygon approximation.
	Locate struct {
		// Epsilon is the approximation tolerance in pixels; 0 keeps every
		// non-collinear vertex (default 10).
		Epsilon float64 `yaml:"epsilon"`
		// TopK is the number of largest contours examined (default 10).
		TopK int `yaml:"top_k"`
	} `yaml:"locate"`

	// OCR configures text recognition.
	OCR struct {
		// Language is the Tesseract language code (default "eng").
		Language string `yaml:"language"`
		// Disabled skips the OCR stage entirely.
		Disabled bool `yaml:"disabled"`
	} `yaml:"ocr"`

	// Render configures the annotated output image.
	Render struct {
		// Color is the overlay color as "#RRGGBB" (default "#00FF00").
		Color string `yaml:"color"`
	} `yaml:"render"`

	// Workers is the number of images processed concurrently in batch mode
	// (default 4).
	Workers int `yaml:"workers"`
}

// Default returns the configuration matching the pipeline's built-in
// behavior.
func Default() Config {
	var c Config
	c.Edge.Low = 30
	c.Edge.High = 200
	c.Denoise.Radius = 2
	c.Locate.Epsilon = 10
	c.Locate.TopK = 10
	c.OCR.Language = "eng"
	c.Render.Color = "#00FF00"
	c.Workers = 4
	return c
}

// Load reads a YAML configuration file and overlays it on the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse config: %w", err)
	}

	return c.normalized(), nil
}

// normalized replaces out-of-range values with their defaults so a sparse or
// careless file cannot produce a degenerate pipeline.
func (c Config) normalized() Config {
	d := Default()
	if c.Edge.Low <= 0 {
		c.Edge.Low = d.Edge.Low
	}
	if c.Edge.High <= 0 {
		c.Edge.High = d.Edge.High
	}
	// Epsilon 0 is a valid setting (exact approximation); only negative
	// values are out of range.
	if c.Locate.Epsilon < 0 {
		c.Locate.Epsilon = d.Locate.Epsilon
	}
	if c.Locate.TopK <= 0 {
		c.Locate.TopK = d.Locate.TopK
	}
	if c.OCR.Language == "" {
		c.OCR.Language = d.OCR.Language
	}
	if c.Render.Color == "" {
		c.Render.Color = d.Render.Color
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	return c
}
