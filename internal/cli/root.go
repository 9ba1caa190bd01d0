package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovanwin/readtoml/internal/config"
	"github.com/vovanwin/readtoml/internal/logger"
)

// version is set at build time via -ldflags "-X github.com/vovanwin/readtoml/internal/cli.version=..."
var version = "dev"

// reportedError marks a failure that the host already printed.
// code is the process exit code; zero means 1.
type reportedError struct {
	err  error
	code int
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

type rootOptions struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "readtoml",
		Short: "Read a string field from a TOML file",
		Long: `readtoml reads a single string value from a TOML file by its dotted path,
for example package.version in Cargo.toml.

It runs locally (readtoml get) or as a GitHub Actions step (readtoml action).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{Path: opts.cfgFile, EnableEnv: true})
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetFormat(logger.ParseFormat(cfg.Log.Format))
			logger.SetVerbose(opts.verbose || cfg.Log.Verbose)
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newActionCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if reported.code != 0 {
			return reported.code
		}
		return 1
	}
	return 0
}
