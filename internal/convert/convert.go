// Package convert runs the SRT to EAF pipeline: each input file is parsed,
// its time points are folded into a shared time slot table, and the
// resulting tiers are assembled into one document.
//
// A Converter can be reused, but every Convert call starts from an empty
// run state. Convert must not be called concurrently on the same Converter.
package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mgpai22/srt2eaf/internal/eaf"
	"github.com/mgpai22/srt2eaf/internal/logging"
	"github.com/mgpai22/srt2eaf/internal/media"
	"github.com/mgpai22/srt2eaf/internal/subtitle"
)

var (
	ErrNoInputs  = errors.New("no subtitle files found")
	ErrAllFailed = errors.New("no subtitle file could be converted")
	ErrNoCues    = errors.New("file contains no valid subtitle cues")
	ErrStrict    = errors.New("malformed blocks rejected in strict mode")
)

// FileError records an input file that was skipped.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// conversion options
type Options struct {
	Encoding           string
	PreserveFormatting bool
	Strict             bool
	ProbeMedia         bool
	Metadata           eaf.Metadata
	Prober             media.Prober // defaults to ffprobe when ProbeMedia is set
}

// outcome of a successful run
type Result struct {
	Document    *eaf.Document
	Data        []byte
	Tiers       []*eaf.Tier
	Annotations int
	TimeSlots   int
	BlockErrors int
	Failed      []FileError
}

type Converter struct {
	opts   Options
	logger *logging.Logger
}

func New(opts Options, logger *logging.Logger) *Converter {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.ProbeMedia && opts.Prober == nil {
		opts.Prober = media.NewProber()
	}
	return &Converter{opts: opts, logger: logger}
}

// per-invocation state
type run struct {
	table       *eaf.TimeSlotTable
	namer       *eaf.TierNamer
	tiers       []*eaf.Tier
	failed      []FileError
	blockErrors int
}

func newRun() *run {
	return &run{
		table: eaf.NewTimeSlotTable(),
		namer: eaf.NewTierNamer(),
	}
}

// Convert processes paths strictly in order and assembles the document.
// Files that fail are logged and skipped; an error is returned only when
// nothing could be converted or ctx is cancelled between files.
func (c *Converter) Convert(ctx context.Context, paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}

	r := newRun()
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.logger.Debugw("Processing subtitle file",
			"file", path,
			"position", fmt.Sprintf("%d/%d", i+1, len(paths)),
		)

		tier, err := c.processFile(r, path)
		if err != nil {
			c.logger.Errorw("Skipping subtitle file",
				"file", path,
				"error", err,
			)
			r.failed = append(r.failed, FileError{Path: path, Err: err})
			continue
		}
		r.tiers = append(r.tiers, tier)
	}

	if len(r.tiers) == 0 {
		return nil, fmt.Errorf("%w: %d of %d files failed", ErrAllFailed, len(r.failed), len(paths))
	}

	meta := c.opts.Metadata
	if c.opts.ProbeMedia && meta.MediaPath != "" {
		meta.MediaDuration = c.probeMedia(meta.MediaPath, r.tiers)
	}

	doc, err := eaf.Assemble(r.table, r.tiers, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble document: %w", err)
	}
	data, err := doc.Marshal()
	if err != nil {
		return nil, err
	}

	return &Result{
		Document:    doc,
		Data:        data,
		Tiers:       r.tiers,
		Annotations: doc.AnnotationCount(),
		TimeSlots:   r.table.Len(),
		BlockErrors: r.blockErrors,
		Failed:      r.failed,
	}, nil
}

func (c *Converter) processFile(r *run, path string) (*eaf.Tier, error) {
	parsed, err := subtitle.Open(path, c.opts.Encoding, subtitle.ParseOptions{
		PreserveFormatting: c.opts.PreserveFormatting,
	})
	if err != nil {
		return nil, err
	}

	for _, be := range parsed.Errors {
		c.logger.Warnw("Skipping malformed block",
			"file", be.Label,
			"block", be.Block,
			"reason", be.Reason,
		)
	}
	r.blockErrors += len(parsed.Errors)

	if c.opts.Strict && len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("%w: %d malformed blocks", ErrStrict, len(parsed.Errors))
	}
	if len(parsed.Cues) == 0 {
		return nil, ErrNoCues
	}

	added := r.table.Register(parsed.Cues)
	tier := eaf.NewTier(path, parsed.Cues, r.namer)

	c.logger.Infow("Parsed subtitle file",
		"file", filepath.Base(path),
		"tier", tier.Name,
		"cues", len(tier.Cues),
		"skipped_blocks", len(parsed.Errors),
		"new_time_slots", added,
		"duration", subtitle.FormatTimestamp(tier.TotalDuration()),
	)
	return tier, nil
}

// returns the media duration in ms, or zero when it cannot be probed
func (c *Converter) probeMedia(path string, tiers []*eaf.Tier) int64 {
	info, err := c.opts.Prober.Probe(path)
	if err != nil {
		c.logger.Warnw("Could not probe media file",
			"media", path,
			"error", err,
		)
		return 0
	}

	duration := info.Duration.Milliseconds()
	c.logger.Debugw("Probed media file",
		"media", path,
		"duration", subtitle.FormatTimestamp(duration),
		"format", info.FormatName,
	)

	if duration > 0 {
		for _, tier := range tiers {
			if tier.End() > duration {
				c.logger.Warnw("Tier extends beyond media",
					"tier", tier.Name,
					"tier_end", subtitle.FormatTimestamp(tier.End()),
					"media_duration", subtitle.FormatTimestamp(duration),
				)
			}
		}
	}
	return duration
}
