package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Defaults()
	if *opts != *want {
		t.Errorf("Load(\"\") = %+v, want %+v", opts, want)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	content := "plot_width_inches: 10\nmajor_tick_hours: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing options file: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.PlotWidthInches != 10 {
		t.Errorf("PlotWidthInches = %v, want 10", opts.PlotWidthInches)
	}
	if opts.MajorTickHours != 3 {
		t.Errorf("MajorTickHours = %v, want 3", opts.MajorTickHours)
	}
	// Omitted fields keep their defaults.
	if opts.PlotHeightInches != Defaults().PlotHeightInches {
		t.Errorf("PlotHeightInches = %v, want default %v",
			opts.PlotHeightInches, Defaults().PlotHeightInches)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	if err := os.WriteFile(path, []byte("major_tick_hours: -2\n"), 0o644); err != nil {
		t.Fatalf("writing options file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a negative tick interval")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
