package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/k14s/difflib"
	"github.com/spf13/cobra"

	"github.com/0xalexb/hjarta-yaml/config/loader/yaml"
)

// ErrNotFormatted is returned by fmt --check when a document would change.
var ErrNotFormatted = errors.New("documents are not formatted")

// FmtOptions holds the fmt flags.
type FmtOptions struct {
	Write            bool
	Diff             bool
	Check            bool
	GuessIndentation bool
}

// NewFmtOptions creates FmtOptions with defaults.
func NewFmtOptions() *FmtOptions {
	return &FmtOptions{}
}

// NewFmtCmd creates the fmt command.
func NewFmtCmd(env *Env, o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Format YAML documents keeping comments and headers",
		Long: `Format YAML documents keeping comments and headers.

Formatted documents are printed unless --write, --diff or --check is given.
Use - to read a document from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(env, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().BoolVarP(&o.Write, "write", "w", false, "Write formatted documents back to their files")
	cmd.Flags().BoolVarP(&o.Diff, "diff", "d", false, "Print a diff of the changes")
	cmd.Flags().BoolVar(&o.Check, "check", false, "Fail when a document is not formatted")
	cmd.Flags().BoolVarP(&o.GuessIndentation, "guess-indentation", "g", false,
		"Re-indent lines placed deeper than the structure allows")

	return cmd
}

// Run formats every path.
func (o *FmtOptions) Run(env *Env, stdin io.Reader, out io.Writer, paths []string) error {
	loader := env.loader(o.GuessIndentation)

	var unformatted []string

	for _, path := range paths {
		original, err := env.read(stdin, path)
		if err != nil {
			return err
		}

		root, err := loader.Parse(original)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", path, err)
		}

		var formatted bytes.Buffer

		err = loader.Save(root, &formatted)
		if err != nil {
			return fmt.Errorf("formatting %q: %w", path, err)
		}

		changed := !bytes.Equal(original, formatted.Bytes())
		if changed {
			unformatted = append(unformatted, path)
		}

		if !o.Write && !o.Diff && !o.Check {
			_, err = out.Write(formatted.Bytes())
			if err != nil {
				return fmt.Errorf("printing %q: %w", path, err)
			}

			continue
		}

		if o.Diff && changed {
			env.printDiff(out, path, original, formatted.Bytes())
		}

		if o.Write && changed {
			err = env.save(loader, root, path)
			if err != nil {
				return err
			}

			env.logger().Info("document formatted", slog.String("path", path))
			_, _ = fmt.Fprintf(out, "%s %s\n", env.paint(color.FgGreen, "formatted"), path)
		}
	}

	if o.Check && len(unformatted) > 0 {
		return fmt.Errorf("%w: %s", ErrNotFormatted, strings.Join(unformatted, ", "))
	}

	return nil
}

func (e *Env) printDiff(out io.Writer, path string, before, after []byte) {
	_, _ = fmt.Fprintln(out, e.paint(color.Bold, "diff "+path))

	diff := difflib.PPDiff(splitLines(before), splitLines(after))

	for line := range strings.SplitSeq(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			line = e.paint(color.FgGreen, line)
		case strings.HasPrefix(line, "-"):
			line = e.paint(color.FgRed, line)
		}

		_, _ = fmt.Fprintln(out, line)
	}
}

func splitLines(data []byte) []string {
	return strings.Split(strings.TrimSuffix(string(data), yaml.SystemLineSeparator), yaml.SystemLineSeparator)
}
