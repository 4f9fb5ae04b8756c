package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/internal/config"
)

// RootOptions holds global flags for all commands and the state resolved
// from them before a subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string
	ConfigPath string

	Config config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the seqalign CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "seqalign",
		Short: "Pairwise sequence alignment explorer",
		Long: `Compute and explore optimal pairwise alignments of two short sequences.

Sequences may be given as plain text or FASTA (a first line starting with '>'
is ignored) and may hold at most 30 symbols by default.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(NewAlignCommand(opts))
	cmd.AddCommand(NewDotCommand(opts))
	cmd.AddCommand(NewRedirectCommand(opts))

	return cmd
}

// resolve loads the config file, applies flag overrides and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return usageError("load config", err)
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = o.Format
	}
	if !config.ValidFormat(cfg.Format) {
		return usageError(fmt.Sprintf("invalid format %q: must be one of %v", cfg.Format, config.Formats), nil)
	}
	o.Config = cfg

	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Config.Format, Writer: cmd.OutOrStdout()}
}
