package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/markup/pkg/grid"
	"github.com/arthur-debert/markup/pkg/logging"
	"github.com/arthur-debert/markup/pkg/markup"
	"github.com/spf13/cobra"
)

// source is one named markup input
type source struct {
	name    string
	content string
}

// readSources reads every named file, or stdin when there are none. "-"
// names stdin.
func readSources(cmd *cobra.Command, args []string) ([]source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	sources := make([]source, 0, len(args))
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf(MsgErrReadInput, name, err)
		}
		sources = append(sources, source{name: name, content: string(data)})
	}
	return sources, nil
}

func newRenderCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file...]",
		Short: MsgRenderShort,
		Example: `  markup render notes.txt
  echo '<error>failed</error>' | markup render --format=html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cli"), "render")
			defer done()

			sources, err := readSources(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			opts, err := g.renderOptions(cmd, out)
			if err != nil {
				return err
			}

			reporter := newReporter(cmd)
			failed := false
			for _, src := range sources {
				result, err := grid.RenderString(src.content, opts)
				if err != nil {
					reporter.Error(src.name, err)
					failed = true
					continue
				}
				for _, issue := range result.Issues {
					reporter.Issue(src.name, issue)
				}
				if len(result.Lines) > 0 {
					fmt.Fprintln(out, result.String())
				}
			}
			if failed {
				return ErrReported
			}
			return nil
		},
	}
}

func newCheckCmd(g *globals) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: MsgCheckShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cli"), "check")
			defer done()

			sources, err := readSources(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			opts, err := g.renderOptions(cmd, out)
			if err != nil {
				return err
			}

			reporter := newReporter(cmd)
			failures := 0
			for _, src := range sources {
				result, err := grid.RenderString(src.content, opts)
				if err != nil {
					reporter.Error(src.name, err)
					failures++
					continue
				}
				for _, issue := range result.Issues {
					reporter.Issue(src.name, issue)
				}
				if strict && len(result.Issues) > 0 {
					failures++
				}
			}

			total := len(sources)
			summary := fmt.Sprintf(MsgCheckSummary, total, total)
			if failures > 0 {
				summary = fmt.Sprintf(MsgCheckFailed, failures, total, total)
			}
			result, err := grid.RenderString(summary, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result.String())

			if failures > 0 {
				return ErrReported
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: MsgTokensShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := readSources(cmd, args)
			if err != nil {
				return err
			}
			src := sources[0]
			tokens, err := markup.Tokenize(src.content)
			if err != nil {
				newReporter(cmd).Error(src.name, err)
				return ErrReported
			}
			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintln(out, tok.String())
			}
			return nil
		},
	}
}

func newFmtCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: MsgFmtShort,
		Long:  MsgFmtLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			sources, err := readSources(cmd, args)
			if err != nil {
				return err
			}
			src := sources[0]
			nodes, err := markup.ParseWithOptions(src.content, markup.ParseOptions{MaxDepth: cfg.MaxDepth})
			if err != nil {
				newReporter(cmd).Error(src.name, err)
				return ErrReported
			}
			nodes = markup.Normalize(nodes, fmtOptions(cfg.StripPositions))
			fmt.Fprintln(cmd.OutOrStdout(), markup.Serialize(nodes))
			return nil
		},
	}
}
