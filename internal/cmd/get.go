package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/0xalexb/hjarta-yaml/config/node"
)

// ErrPathNotFound is returned when get is asked for a path the document does not hold.
var ErrPathNotFound = errors.New("path not found")

// GetOptions holds the get flags.
type GetOptions struct {
	Comment          bool
	GuessIndentation bool
}

// NewGetOptions creates GetOptions with defaults.
func NewGetOptions() *GetOptions {
	return &GetOptions{}
}

// NewGetCmd creates the get command.
func NewGetCmd(env *Env, o *GetOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get FILE [PATH]",
		Short: "Print the value or comment at a colon separated path",
		Example: `  hjarta-yaml get app.yml server:port
  hjarta-yaml get app.yml servers:0 --comment`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 1 {
				path = args[1]
			}

			return o.Run(env, cmd.InOrStdin(), cmd.OutOrStdout(), args[0], path)
		},
	}

	cmd.Flags().BoolVarP(&o.Comment, "comment", "c", false, "Print the comment instead of the value")
	cmd.Flags().BoolVarP(&o.GuessIndentation, "guess-indentation", "g", false,
		"Re-indent lines placed deeper than the structure allows")

	return cmd
}

// Run prints the node at path. Scalars print as-is, maps and lists as YAML.
func (o *GetOptions) Run(env *Env, stdin io.Reader, out io.Writer, file, path string) error {
	loader := env.loader(o.GuessIndentation)

	data, err := env.read(stdin, file)
	if err != nil {
		return err
	}

	root, err := loader.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", file, err)
	}

	target := lookup(root, path)
	if target.Virtual() {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	if o.Comment {
		if target.Comment() != "" {
			_, err = fmt.Fprintln(out, target.Comment())
		}

		return err //nolint:wrapcheck // output error
	}

	switch target.Kind() {
	case node.KindScalar:
		_, err = fmt.Fprintln(out, target.GetString(""))
	case node.KindNothing:
		_, err = fmt.Fprintln(out, "~")
	default:
		var rendered []byte

		rendered, err = loader.Render(target)
		if err == nil {
			_, err = out.Write(rendered)
		}
	}

	return err //nolint:wrapcheck // output or render error
}
