package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovanwin/readtoml"
	"github.com/vovanwin/readtoml/internal/action"
)

// localHost takes inputs from flags, prints the value to stdout and failures to stderr.
type localHost struct {
	inputs map[string]string
	out    io.Writer
	errOut io.Writer
}

var _ action.Host = (*localHost)(nil)

func (h *localHost) GetInput(name string) string { return h.inputs[name] }

func (h *localHost) SetOutput(_, value string) error {
	_, err := fmt.Fprintln(h.out, value)
	return err
}

func (h *localHost) SetFailed(message string) {
	fmt.Fprintln(h.errOut, message)
}

func newGetCmd() *cobra.Command {
	var file, field string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the string value of a field",
		Example: `  readtoml get --file Cargo.toml --field package.version
  readtoml get -f pyproject.toml -k project.name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host := &localHost{
				inputs: map[string]string{action.InputFile: file, action.InputField: field},
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
			}
			if err := action.Run(host, readtoml.ReadString); err != nil {
				return reportedError{err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the TOML file")
	cmd.Flags().StringVarP(&field, "field", "k", "", "dotted path of the field, e.g. package.version")

	return cmd
}
