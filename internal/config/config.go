// Package config loads the optional YAML options file controlling plot
// layout and report output.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Options controls the rendered figure and the PDF report. Zero values are
// replaced by the defaults from Defaults.
type Options struct {
	PlotWidthInches  float64 `yaml:"plot_width_inches"`
	PlotHeightInches float64 `yaml:"plot_height_inches"`
	MajorTickHours   int     `yaml:"major_tick_hours"`
	MinorTickHours   int     `yaml:"minor_tick_hours"`
}

// Defaults returns the built-in options: a letter-sized portrait figure with
// a labeled tick every 6 hours and a minor tick every hour.
func Defaults() *Options {
	return &Options{
		PlotWidthInches:  8.5,
		PlotHeightInches: 11,
		MajorTickHours:   6,
		MinorTickHours:   1,
	}
}

// Load reads Options from a YAML file. An empty path returns the defaults.
// Fields omitted from the file keep their default values.
func Load(path string) (*Options, error) {
	opts := Defaults()
	if path == "" {
		return opts, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading options file: %w", err)
	}
	if err := yaml.Unmarshal(raw, opts); err != nil {
		return nil, fmt.Errorf("error parsing options file %s: %w", path, err)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid options in %s: %w", path, err)
	}
	return opts, nil
}

func (o *Options) validate() error {
	if o.PlotWidthInches <= 0 || o.PlotHeightInches <= 0 {
		return fmt.Errorf("plot dimensions must be positive, got %gx%g",
			o.PlotWidthInches, o.PlotHeightInches)
	}
	if o.MajorTickHours <= 0 || o.MinorTickHours <= 0 {
		return fmt.Errorf("tick intervals must be positive, got major %d minor %d",
			o.MajorTickHours, o.MinorTickHours)
	}
	return nil
}
