package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mgpai22/srt2eaf/internal/eaf"
	"github.com/mgpai22/srt2eaf/internal/subtitle"
)

const (
	DefaultSource    = "input"
	DefaultOutputDir = "output"
	DefaultAuthor    = "srt2eaf"
)

// Config holds every recognized conversion option.
type Config struct {
	Source             string // directory of .srt files or a single file
	Output             string // output .eaf path, empty for an auto-named file
	OutputDir          string // where auto-named files go
	MediaPath          string
	Author             string
	Encoding           string
	PreserveFormatting bool
	Strict             bool // any malformed block fails its file
	ProbeMedia         bool // read media duration with ffprobe
}

// Default returns the configuration used when no option is given.
func Default() Config {
	return Config{
		Source:    DefaultSource,
		OutputDir: DefaultOutputDir,
		Author:    DefaultAuthor,
		Encoding:  subtitle.DefaultEncoding,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return errors.New("source location is required")
	}
	if strings.TrimSpace(c.Author) == "" {
		return errors.New("author must not be blank")
	}
	if _, err := subtitle.LookupEncoding(c.Encoding); err != nil {
		return err
	}
	if c.Output != "" && !strings.EqualFold(filepath.Ext(c.Output), eaf.Extension) {
		return fmt.Errorf("output file %q must have a %s extension", c.Output, eaf.Extension)
	}
	if c.Output == "" && strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output directory is required when no output file is given")
	}
	if c.ProbeMedia && c.MediaPath == "" {
		return errors.New("probe-media requires a media file")
	}
	return nil
}

// OutputPath is the explicit output, or an auto-named file under OutputDir.
func (c Config) OutputPath(now time.Time) string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join(c.OutputDir, eaf.DefaultFileName(now))
}
