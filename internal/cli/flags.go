package cli

import (
	"github.com/mgpai22/srt2eaf/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flags shared by every command that reads subtitle files
func addInputFlags(flags *pflag.FlagSet, defaults config.Config) {
	flags.
		StringP("encoding", "e", defaults.Encoding, "Text encoding of the input files (e.g., utf-8, latin1, windows-1252)")
	flags.
		Bool("preserve-formatting", false, "Keep <...> and {...} formatting markup in subtitle text")
	flags.
		Bool("strict", false, "Treat any malformed subtitle block as a failure of its file")
}

// builds the configuration from defaults, flags and the optional source argument
func configFromFlags(cmd *cobra.Command, args []string) config.Config {
	cfg := config.Default()
	if len(args) > 0 {
		cfg.Source = args[0]
	}

	flags := cmd.Flags()
	cfg.Encoding, _ = flags.GetString("encoding")
	cfg.PreserveFormatting, _ = flags.GetBool("preserve-formatting")
	cfg.Strict, _ = flags.GetBool("strict")

	if flags.Lookup("output") != nil {
		cfg.Output, _ = flags.GetString("output")
		cfg.OutputDir, _ = flags.GetString("output-dir")
		cfg.MediaPath, _ = flags.GetString("media")
		cfg.Author, _ = flags.GetString("author")
		cfg.ProbeMedia, _ = flags.GetBool("probe-media")
	}
	return cfg
}
