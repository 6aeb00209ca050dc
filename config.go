package img2sketch

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/wbrown/img2sketch/imageutil"
)

// Config is the on-disk configuration read by the sketchify command.
type Config struct {
	Sketch SketchConfig `toml:"sketch"`
	Resize ResizeConfig `toml:"resize"`
	Batch  BatchConfig  `toml:"batch"`
}

// SketchConfig configures single-image conversion. A non-empty Style
// overrides Sigma and Sharpen.
type SketchConfig struct {
	Sigma      float64 `toml:"sigma"`
	Sharpen    int     `toml:"sharpen"`
	Sharpening bool    `toml:"sharpening"`
	Style      string  `toml:"style"`
}

// ResizeConfig bounds inputs when resizing is requested.
type ResizeConfig struct {
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
}

// BatchConfig configures directory processing. Workers <= 0 means
// GOMAXPROCS.
type BatchConfig struct {
	Output  string   `toml:"output"`
	Style   string   `toml:"style"`
	Formats []string `toml:"formats"`
	Workers int      `toml:"workers"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Sketch: SketchConfig{
			Sigma:      DefaultSigma,
			Sharpen:    DefaultSharpenStrength,
			Sharpening: true,
		},
		Resize: ResizeConfig{
			MaxWidth:  imageutil.DefaultMaxWidth,
			MaxHeight: imageutil.DefaultMaxHeight,
		},
		Batch: BatchConfig{
			Output:  "results",
			Style:   "medium",
			Formats: append([]string(nil), DefaultFormats...),
		},
	}
}

// LoadConfig decodes a TOML file over DefaultConfig, so missing keys keep
// their defaults. Unknown keys are rejected. The result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: config %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown config key %q in %s",
			ErrInvalidParameter, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field. Errors wrap ErrInvalidParameter.
func (c *Config) Validate() error {
	if c.Sketch.Style != "" {
		if _, err := ParseStyle(c.Sketch.Style); err != nil {
			return fmt.Errorf("sketch.style: %w", err)
		}
	}
	if !(c.Sketch.Sigma > 0) {
		return fmt.Errorf("%w: sketch.sigma must be positive, got %v", ErrInvalidParameter, c.Sketch.Sigma)
	}
	if c.Sketch.Sharpen < imageutil.MinSharpenStrength {
		return fmt.Errorf("%w: sketch.sharpen must be at least %d, got %d",
			ErrInvalidParameter, imageutil.MinSharpenStrength, c.Sketch.Sharpen)
	}
	if c.Resize.MaxWidth <= 0 || c.Resize.MaxHeight <= 0 {
		return fmt.Errorf("%w: resize bounds must be positive, got %dx%d",
			ErrInvalidParameter, c.Resize.MaxWidth, c.Resize.MaxHeight)
	}
	if c.Batch.Style != "" {
		if _, err := ParseStyle(c.Batch.Style); err != nil {
			return fmt.Errorf("batch.style: %w", err)
		}
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must not be negative, got %d", ErrInvalidParameter, c.Batch.Workers)
	}
	return nil
}

// Sketcher builds the Sketcher described by the [sketch] table.
func (c *Config) Sketcher() (*Sketcher, error) {
	if c.Sketch.Style != "" {
		style, err := ParseStyle(c.Sketch.Style)
		if err != nil {
			return nil, err
		}
		return NewSketcher(
			WithSigma(style.Sigma()),
			WithSharpenStrength(style.SharpenStrength()),
			WithSharpening(c.Sketch.Sharpening),
		)
	}
	return NewSketcher(
		WithSigma(c.Sketch.Sigma),
		WithSharpenStrength(c.Sketch.Sharpen),
		WithSharpening(c.Sketch.Sharpening),
	)
}

// BatchSketcher builds the sharpening Sketcher for the [batch] style,
// falling back to Sketcher when no batch style is set.
func (c *Config) BatchSketcher() (*Sketcher, error) {
	if c.Batch.Style == "" {
		return c.Sketcher()
	}
	style, err := ParseStyle(c.Batch.Style)
	if err != nil {
		return nil, err
	}
	return FromStyle(style)
}
