package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovanwin/readtoml"
	"github.com/vovanwin/readtoml/internal/action"
	"github.com/vovanwin/readtoml/internal/ghaction"
	"github.com/vovanwin/readtoml/internal/logger"
)

func newActionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "action",
		Short: "Run as a GitHub Actions step",
		Long: `Reads the "file" and "field" inputs from INPUT_* variables, writes the
"value" output to $GITHUB_OUTPUT and reports failures as ::error:: commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			// workflow commands are only picked up from stdout
			logger.SetOutput(out)
			logger.SetFormat(logger.FormatActions)
			if os.Getenv("RUNNER_DEBUG") == "1" {
				logger.SetVerbose(true)
			}

			meta, err := loadMetadata(opts)
			if err != nil {
				return annotate(out, err)
			}

			runner, err := ghaction.NewRunner(ghaction.Options{
				Metadata:   meta,
				OutputPath: os.Getenv("GITHUB_OUTPUT"),
				Stdout:     out,
			})
			if err != nil {
				return annotate(out, err)
			}

			err = action.Run(runner, readtoml.ReadString)
			if code := runner.ExitCode(); code != 0 {
				return reportedError{err: err, code: code}
			}
			return nil
		},
	}
}

// annotate reports a setup failure as an ::error:: command so the workflow
// run shows it, then marks it as already printed.
func annotate(out io.Writer, err error) error {
	fmt.Fprintf(out, "::error::%s\n", logger.EscapeData(err.Error()))
	return reportedError{err: err}
}

func loadMetadata(opts *rootOptions) (*ghaction.Metadata, error) {
	var (
		meta *ghaction.Metadata
		err  error
	)
	if opts.cfg != nil && opts.cfg.Action.Metadata != "" {
		meta, err = ghaction.LoadMetadata(opts.cfg.Action.Metadata)
	} else {
		meta, err = ghaction.ParseMetadata(readtoml.ActionMetadata)
	}
	if err != nil {
		return nil, err
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("action %q: %d inputs declared", meta.Name, len(meta.Inputs))
	return meta, nil
}
