// Package cmd implements the hjarta-yaml command line tool.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	yamlconf "github.com/0xalexb/hjarta-yaml"
	filefetcher "github.com/0xalexb/hjarta-yaml/config/fetcher/file"
	"github.com/0xalexb/hjarta-yaml/config/loader/yaml"
	"github.com/0xalexb/hjarta-yaml/config/node"
	"github.com/0xalexb/hjarta-yaml/logging"
)

// stdinPath reads the document from standard input.
const stdinPath = "-"

// ErrStdinWrite is returned when a command would write back to standard input.
var ErrStdinWrite = errors.New("cannot write to standard input")

// Env holds what every command shares.
type Env struct {
	Fs      afero.Fs
	Logger  *slog.Logger
	NoColor bool
}

// RootOptions holds the persistent flags.
type RootOptions struct {
	LogLevel  string
	LogFormat string
	NoColor   bool
}

// NewDefaultCmd creates the root command working on the OS filesystem.
func NewDefaultCmd() *cobra.Command {
	return NewCmd(&Env{Fs: afero.NewOsFs()})
}

// NewCmd creates the root command and its subcommands.
func NewCmd(env *Env) *cobra.Command {
	o := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "hjarta-yaml",
		Version: yamlconf.Version,
		Short:   "hjarta-yaml reads and writes commented YAML documents",
		Long: `hjarta-yaml reads and writes YAML documents as configuration trees.

Comments above keys and list items, and the document header, survive a round trip.`,
		// Affects children as well
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			env.Logger = logging.NewLogger(logging.LoggerConfig{
				Level:  o.LogLevel,
				Format: o.LogFormat,
			}, cmd.ErrOrStderr())
			env.NoColor = env.NoColor || o.NoColor
		},
	}

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", logging.FormatText, "Log format (text, json)")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(NewFmtCmd(env, NewFmtOptions()))
	cmd.AddCommand(NewGetCmd(env, NewGetOptions()))
	cmd.AddCommand(NewHeaderCmd(env, NewHeaderOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	return cmd
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}

	return e.Logger
}

func (e *Env) loader(guessIndentation bool) *yaml.Loader {
	return yaml.NewLoader(
		yaml.WithGuessIndentation(guessIndentation),
		yaml.WithLogger(e.logger()),
	)
}

func (e *Env) read(stdin io.Reader, path string) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}

		return data, nil
	}

	fetcher, err := filefetcher.NewFetcher(e.Fs, path)()
	if err != nil {
		return nil, err //nolint:wrapcheck // already names the path
	}

	return fetcher.Fetch() //nolint:wrapcheck // never fails
}

// save writes root to path through an atomic sink.
func (e *Env) save(loader *yaml.Loader, root *node.Node, path string) error {
	if path == stdinPath {
		return ErrStdinWrite
	}

	err := filefetcher.NewSink(e.Fs, path).Write(func(w io.Writer) error {
		return loader.Save(root, w)
	})
	if err != nil {
		return fmt.Errorf("saving %q: %w", path, err)
	}

	return nil
}

func (e *Env) paint(attr color.Attribute, text string) string {
	c := color.New(attr)
	if e.NoColor {
		c.DisableColor()
	}

	return c.Sprint(text)
}

// lookup walks a colon separated path such as "servers:0:host".
// A numeric segment selects a list item when the current node is a list and a map key otherwise.
func lookup(root *node.Node, path string) *node.Node {
	if path == "" {
		return root
	}

	current := root

	for segment := range strings.SplitSeq(path, ":") {
		index, err := strconv.Atoi(segment)
		if err == nil && current.IsList() {
			current = current.Node(index)

			continue
		}

		current = current.Node(segment)
	}

	return current
}
