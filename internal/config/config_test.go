package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Author != "srt2eaf" || cfg.Encoding != "utf-8" || cfg.PreserveFormatting || cfg.Strict {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"explicit output", func(c *Config) { c.Output = "out/doc.eaf" }, false},
		{"upper case extension", func(c *Config) { c.Output = "DOC.EAF" }, false},
		{"latin1", func(c *Config) { c.Encoding = "latin1" }, false},
		{"media with probe", func(c *Config) { c.MediaPath = "a.mp4"; c.ProbeMedia = true }, false},
		{"empty source", func(c *Config) { c.Source = " " }, true},
		{"blank author", func(c *Config) { c.Author = "" }, true},
		{"unknown encoding", func(c *Config) { c.Encoding = "nope" }, true},
		{"wrong extension", func(c *Config) { c.Output = "doc.xml" }, true},
		{"no output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"probe without media", func(c *Config) { c.ProbeMedia = true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	cfg := Default()
	want := filepath.Join("output", "subtitles_20240506_070809.eaf")
	if got := cfg.OutputPath(now); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}

	cfg.Output = "custom.eaf"
	if got := cfg.OutputPath(now); got != "custom.eaf" {
		t.Errorf("OutputPath = %q, want custom.eaf", got)
	}
}
