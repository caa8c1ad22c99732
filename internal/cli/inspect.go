package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/srt2eaf/internal/config"
	"github.com/mgpai22/srt2eaf/internal/convert"
	"github.com/mgpai22/srt2eaf/internal/eaf"
	"github.com/mgpai22/srt2eaf/internal/subtitle"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [source]",
	Short: "Check SRT files without writing a document",
	Long: `Parse every .srt file in a directory (or a single .srt file) and report
cue counts, time spans and malformed blocks. Nothing is written.

With --strict the command fails when any block is malformed.

Examples:
  srt2eaf inspect subs/
  srt2eaf inspect episode.srt --strict -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addInputFlags(inspectCmd.Flags(), config.Default())
}

func runInspect(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	opts := subtitle.ParseOptions{PreserveFormatting: cfg.PreserveFormatting}
	namer := eaf.NewTierNamer()
	var totalCues, totalErrors, unreadable int

	for _, path := range paths {
		name := filepath.Base(path)
		parsed, err := subtitle.Open(path, cfg.Encoding, opts)
		if err != nil {
			unreadable++
			fmt.Fprintf(out, "%s: error: %v\n", name, err)
			continue
		}

		tier := eaf.NewTier(path, parsed.Cues, namer)
		fmt.Fprintf(out, "%s: tier=%s cues=%d skipped=%d span=%s\n",
			name,
			tier.Name,
			len(parsed.Cues),
			len(parsed.Errors),
			subtitle.FormatTimestamp(tier.TotalDuration()),
		)
		for _, be := range parsed.Errors {
			logger.Warnw("Malformed block",
				"file", be.Label,
				"block", be.Block,
				"reason", be.Reason,
			)
			if verbose {
				fmt.Fprintf(out, "  %v\n", be)
			}
		}

		totalCues += len(parsed.Cues)
		totalErrors += len(parsed.Errors)
		if len(parsed.Cues) == 0 {
			unreadable++
		}
	}

	fmt.Fprintf(out, "Files: %d, cues: %d, skipped blocks: %d, unusable files: %d\n",
		len(paths), totalCues, totalErrors, unreadable)

	if unreadable == len(paths) {
		return fmt.Errorf("%w: %d files checked", convert.ErrAllFailed, len(paths))
	}
	if cfg.Strict && totalErrors > 0 {
		return fmt.Errorf("%w: %d malformed blocks", convert.ErrStrict, totalErrors)
	}
	return nil
}
