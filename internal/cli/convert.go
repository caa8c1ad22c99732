package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mgpai22/srt2eaf/internal/config"
	"github.com/mgpai22/srt2eaf/internal/convert"
	"github.com/mgpai22/srt2eaf/internal/eaf"
	"github.com/mgpai22/srt2eaf/internal/media"
	"github.com/mgpai22/srt2eaf/internal/subtitle"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [source]",
	Short: "Convert SRT files into one ELAN annotation document",
	Long: `Convert every .srt file in a directory (or a single .srt file) into one
ELAN annotation document with one tier per input file.

Files are processed in name order. Malformed subtitle blocks are skipped
and reported; files without any valid cue are skipped as well. The command
fails only when no file could be converted, and then writes nothing.

Examples:
  srt2eaf convert
  srt2eaf convert subs/ -o interview.eaf
  srt2eaf convert subs/ --media interview.mp4 --author "Jane Doe"
  srt2eaf convert episode.srt --encoding windows-1252 --preserve-formatting`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	defaults := config.Default()
	convertCmd.Flags().
		StringP("output", "o", "", "Output .eaf file (default: <output-dir>/subtitles_<timestamp>.eaf)")
	convertCmd.Flags().
		String("output-dir", defaults.OutputDir, "Directory for auto-named output files")
	convertCmd.Flags().
		StringP("media", "m", "", "Media file the subtitles belong to")
	convertCmd.Flags().
		StringP("author", "a", defaults.Author, "Author recorded in the document")
	convertCmd.Flags().
		Bool("probe-media", false, "Read the media duration with ffprobe and check tiers against it")
	addInputFlags(convertCmd.Flags(), defaults)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := configFromFlags(cmd, args)
	if err := cfg.Validate(); err != nil {
		return err
	}

	paths, err := subtitle.Discover(cfg.Source)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w in %s", convert.ErrNoInputs, cfg.Source)
	}

	if cfg.ProbeMedia && !media.Available() {
		logger.Warnw("ffprobe not found, media duration will not be recorded")
		cfg.ProbeMedia = false
	}

	now := time.Now()
	outputPath := cfg.OutputPath(now)

	logger.Infow("Starting conversion",
		"source", cfg.Source,
		"files", len(paths),
		"output", outputPath,
		"encoding", cfg.Encoding,
		"preserve_formatting", cfg.PreserveFormatting,
		"strict", cfg.Strict,
	)

	converter := convert.New(convert.Options{
		Encoding:           cfg.Encoding,
		PreserveFormatting: cfg.PreserveFormatting,
		Strict:             cfg.Strict,
		ProbeMedia:         cfg.ProbeMedia,
		Metadata: eaf.Metadata{
			Author:    cfg.Author,
			Date:      now,
			MediaPath: cfg.MediaPath,
		},
	}, logger)

	result, err := converter.Convert(cmd.Context(), paths)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := eaf.WriteFile(outputPath, result.Data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Annotation document written: %s\n", absOutput)
	fmt.Fprintf(out, "  Tiers: %d\n", len(result.Tiers))
	fmt.Fprintf(out, "  Annotations: %d\n", result.Annotations)
	fmt.Fprintf(out, "  Time slots: %d\n", result.TimeSlots)
	fmt.Fprintf(out, "  Skipped blocks: %d\n", result.BlockErrors)
	fmt.Fprintf(out, "  Failed files: %d\n", len(result.Failed))

	return nil
}
