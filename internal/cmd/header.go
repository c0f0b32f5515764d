package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// HeaderOptions holds the header flags.
type HeaderOptions struct {
	Set   string
	Clear bool
}

// NewHeaderOptions creates HeaderOptions with defaults.
func NewHeaderOptions() *HeaderOptions {
	return &HeaderOptions{}
}

// NewHeaderCmd creates the header command.
func NewHeaderCmd(env *Env, o *HeaderOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header FILE",
		Short: "Print or replace the document header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("set") || o.Clear {
				return o.Update(env, args[0])
			}

			return o.Print(env, cmd.InOrStdin(), cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().StringVar(&o.Set, "set", "", "Replace the header")
	cmd.Flags().BoolVar(&o.Clear, "clear", false, "Remove the header")
	cmd.MarkFlagsMutuallyExclusive("set", "clear")

	return cmd
}

// Print prints the header of file, if any.
func (o *HeaderOptions) Print(env *Env, stdin io.Reader, out io.Writer, file string) error {
	data, err := env.read(stdin, file)
	if err != nil {
		return err
	}

	root, err := env.loader(false).Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", file, err)
	}

	header := root.Options().Header
	if header == "" {
		return nil
	}

	_, err = fmt.Fprintln(out, header)

	return err //nolint:wrapcheck // output error
}

// Update replaces the header of file and writes it back.
func (o *HeaderOptions) Update(env *Env, file string) error {
	if file == stdinPath {
		return ErrStdinWrite
	}

	loader := env.loader(false)

	data, err := env.read(nil, file)
	if err != nil {
		return err
	}

	root, err := loader.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", file, err)
	}

	header := o.Set
	if o.Clear {
		header = ""
	}

	root.SetOptions(root.Options().WithHeader(header))

	err = env.save(loader, root, file)
	if err != nil {
		return err
	}

	env.logger().Info("header updated", slog.String("path", file), slog.Bool("cleared", header == ""))

	return nil
}
