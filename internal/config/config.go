/*
PURPOSE:
  Defines the configuration structure and loading logic for benchplot.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Running with no arguments plots bench_result.yml into bench_result.png.
  - Several reports (e.g. one per compiler) can be plotted in one run,
    each with its own title.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Chart geometry and pinned colours belong here so every chart of a run
    looks the same.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default config files are not an error (defaults apply).

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults must reproduce the stock chart (1024x600 @ 96 dpi).

USAGE:
  cfg, err := config.Load("benchplot.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go
  - internal/engine/runner.go
*/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Job is one report to chart.
type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"` // defaults to Input with a .png extension
	Title  string `yaml:"title"`
}

// OutputPath returns where the chart for j is written, relative to dir
// unless Output is absolute.
func (j Job) OutputPath(dir string) string {
	out := j.Output
	if out == "" {
		out = strings.TrimSuffix(j.Input, filepath.Ext(j.Input)) + ".png"
	}
	if filepath.IsAbs(out) || dir == "" {
		return out
	}
	return filepath.Join(dir, out)
}

// Config represents the full configuration for benchplot.
type Config struct {
	Jobs        []Job   `yaml:"jobs"`
	OutputDir   string  `yaml:"output_dir"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	DPI         int     `yaml:"dpi"`
	GroupHeight float64 `yaml:"group_height"`
	Palette     string  `yaml:"palette"`
	ValueLabel  string  `yaml:"value_label"`
	// PinnedColors reserves a palette slot for a library in every chart.
	PinnedColors map[string]int `yaml:"pinned_colors"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Jobs: []Job{
			{Input: "bench_result.yml", Output: "bench_result.png"},
		},
		OutputDir:   ".",
		Width:       1024,
		Height:      600,
		DPI:         96,
		GroupHeight: 0.75,
		Palette:     "tableau-colorblind10",
		ValueLabel:  "elapsed time (ms)",
	}
}

// DefaultFiles are searched in order when no config path is given.
var DefaultFiles = []string{"benchplot.yaml", "benchplot.yml", ".benchplot.yaml"}

// Load reads the config at path, or the first of DefaultFiles present in
// the working directory when path is empty. With neither, the defaults are
// returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, path, err := read(path)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// read returns the contents of the config file and the path it came from.
// Only a missing default file is skipped; any other read error is reported.
func read(path string) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		return data, path, err
	}
	for _, name := range DefaultFiles {
		data, err := os.ReadFile(name)
		switch {
		case err == nil:
			return data, name, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, name, err
		}
	}
	return nil, "", nil
}

// Validate checks the values a chart cannot be drawn without.
func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs", ErrInvalid)
	}
	for i, j := range c.Jobs {
		if j.Input == "" {
			return fmt.Errorf("%w: job %d has no input", ErrInvalid, i)
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("%w: dpi %d", ErrInvalid, c.DPI)
	}
	if c.GroupHeight <= 0 || c.GroupHeight > 1 {
		return fmt.Errorf("%w: group_height %g must be in (0, 1]", ErrInvalid, c.GroupHeight)
	}
	return nil
}
