package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/markup/internal/version"
	"github.com/arthur-debert/markup/pkg/config"
	"github.com/arthur-debert/markup/pkg/grid"
	"github.com/arthur-debert/markup/pkg/logging"
	"github.com/arthur-debert/markup/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ErrReported is returned by commands that already printed their failure
var ErrReported = stderrors.New("errors reported")

// globals holds the persistent flags shared by every command
type globals struct {
	verbosity      int
	configFile     string
	format         string
	columns        int
	stripPositions bool
	theme          string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "markup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(g.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return stderrors.New(MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&g.configFile, "config", "", MsgFlagConfig)
	flags.StringVarP(&g.format, "format", "f", config.FormatAuto, MsgFlagFormat)
	flags.IntVarP(&g.columns, "columns", "c", 0, MsgFlagColumns)
	flags.BoolVar(&g.stripPositions, "strip-positions", false, MsgFlagStripPositions)
	flags.StringVar(&g.theme, "theme", "", MsgFlagTheme)

	rootCmd.AddCommand(newRenderCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newFmtCmd(g))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command, reporting any unreported error to stderr
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !stderrors.Is(err, ErrReported) {
			ui.NewReporter(os.Stderr, os.Getenv("NO_COLOR") != "").Error("", err)
		}
		return 1
	}
	return 0
}

// loadConfig builds the configuration, letting explicitly set flags win
func (g *globals) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		overrides["format"] = g.format
	}
	if flags.Changed("columns") {
		overrides["columns"] = g.columns
	}
	if flags.Changed("strip-positions") {
		overrides["strip_positions"] = g.stripPositions
	}
	if flags.Changed("theme") {
		overrides["theme"] = g.theme
	}
	return config.Load(config.LoadOptions{File: g.configFile, Overrides: overrides})
}

// renderOptions resolves the render options for output w
func (g *globals) renderOptions(cmd *cobra.Command, w io.Writer) (grid.Options, error) {
	cfg, err := g.loadConfig(cmd)
	if err != nil {
		return grid.Options{}, err
	}

	file, _ := w.(*os.File)
	format, err := ui.ResolveFormat(cfg.Format, file)
	if err != nil {
		return grid.Options{}, err
	}
	opts, err := cfg.RenderOptions(format, ui.Columns(cfg.Columns, file))
	if err != nil {
		return grid.Options{}, err
	}
	opts.NormalizeFilename = normalizeFilename
	opts.HumanizeFilename = humanizeFilename

	log.Debug().
		Str("format", opts.Format.String()).
		Int("columns", opts.Columns).
		Msg("Resolved render options")
	return opts, nil
}

func newReporter(cmd *cobra.Command) *ui.Reporter {
	return ui.NewReporter(cmd.ErrOrStderr(), os.Getenv("NO_COLOR") != "")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
