package yaml

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-yaml/config/node"
)

// Options configure a Loader.
type Options struct {
	// GuessIndentation re-indents misplaced lines instead of rejecting the document.
	GuessIndentation bool
	// CommentHandlers extract and emit the document header. The first one writes headers.
	CommentHandlers []CommentHandler
	Engine          Engine
	Logger          *slog.Logger
	// Defaults are the options of every loaded tree.
	Defaults node.Options
}

// Option is a functional option for a Loader.
type Option func(*Options)

// WithGuessIndentation enables indentation guessing while parsing.
func WithGuessIndentation(guess bool) Option {
	return func(o *Options) {
		o.GuessIndentation = guess
	}
}

// WithCommentHandlers replaces the header handlers. They are tried in order on load.
func WithCommentHandlers(handlers ...CommentHandler) Option {
	return func(o *Options) {
		o.CommentHandlers = handlers
	}
}

// WithEngine replaces the YAML engine.
func WithEngine(engine Engine) Option {
	return func(o *Options) {
		o.Engine = engine
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithDefaultOptions sets the options of loaded trees.
func WithDefaultOptions(opts node.Options) Option {
	return func(o *Options) {
		o.Defaults = opts
	}
}

// Loader reads and writes YAML documents as node trees.
// A Loader holds no state between calls and can be shared.
type Loader struct {
	guessIndentation bool
	handlers         []CommentHandler
	engine           Engine
	logger           *slog.Logger
	defaults         node.Options
}

// NewLoader creates a Loader. By default it handles "#" headers, prints with
// the yaml.v3 engine and logs to slog.Default().
func NewLoader(opts ...Option) *Loader {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	if len(options.CommentHandlers) == 0 {
		options.CommentHandlers = []CommentHandler{HashCommentHandler{}}
	}

	if options.Engine == nil {
		options.Engine = NewV3Engine(DefaultIndent)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Loader{
		guessIndentation: options.GuessIndentation,
		handlers:         options.CommentHandlers,
		engine:           options.Engine,
		logger:           options.Logger,
		defaults:         options.Defaults,
	}
}

// CreateNode creates an empty root node. Only strings are native scalars of the tree.
func (l *Loader) CreateNode(opts node.Options) *node.Node {
	return node.Root(opts.WithNativeTypes(NativeTypes...))
}

// Parse loads a document held in memory.
func (l *Loader) Parse(data []byte) (*node.Node, error) {
	return l.Load(bytes.NewReader(data))
}

// Load reads a whole document. A header found by one of the comment handlers is
// stored in the root options; the remaining text becomes the tree.
func (l *Loader) Load(r io.Reader) (*node.Node, error) {
	root := l.CreateNode(l.defaults)

	text, err := readLines(r)
	if err != nil {
		return nil, newNodeError(root, ErrParse, err)
	}

	body, header, found, err := l.extractHeader(text)
	if err != nil {
		return nil, newNodeError(root, ErrParse, err)
	}

	if found {
		root.SetOptions(root.Options().WithHeader(header))
	}

	tree, err := l.engine.Parse(body, l.guessIndentation)
	if err != nil {
		return nil, newNodeError(root, ErrParse, err)
	}

	err = ReadNode(tree, root)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("document loaded",
		slog.Int("size", len(text)),
		slog.Bool("header", found),
		slog.Int("entries", len(root.ChildrenMap())),
	)

	return root, nil
}

func (l *Loader) extractHeader(text string) (string, string, bool, error) {
	for _, handler := range l.handlers {
		reader := bufio.NewReader(strings.NewReader(text))

		header, found, err := handler.ExtractHeader(reader)
		if err != nil {
			return "", "", false, fmt.Errorf("extracting header: %w", err)
		}

		if !found {
			continue
		}

		rest, err := io.ReadAll(reader)
		if err != nil {
			return "", "", false, fmt.Errorf("reading document: %w", err)
		}

		return string(rest), header, true, nil
	}

	return text, "", false, nil
}

// CanWrite checks that n can be the root of a document: it must be a map, or hold nothing.
func (l *Loader) CanWrite(n *node.Node) error {
	if !n.IsMap() && !n.Virtual() && n.Raw() != nil {
		return newNodeError(n, ErrWrite, ErrNotMap)
	}

	return nil
}

// Save writes the header from the options of n followed by the document body.
// A root holding nothing is written as a single empty line.
// Save does not close w.
func (l *Loader) Save(n *node.Node, w io.Writer) error {
	err := l.CanWrite(n)
	if err != nil {
		return err
	}

	buffered := bufio.NewWriter(w)

	err = l.writeHeader(n.Options().Header, buffered)
	if err != nil {
		return newNodeError(n, ErrWrite, err)
	}

	if !n.IsMap() && (n.Virtual() || n.Raw() == nil) {
		_, err = buffered.WriteString(SystemLineSeparator)
	} else {
		err = l.engine.Print(WriteNode(l.engine, n), buffered)
	}

	if err != nil {
		return newNodeError(n, ErrWrite, err)
	}

	err = buffered.Flush()
	if err != nil {
		return newNodeError(n, ErrWrite, fmt.Errorf("flushing document: %w", err))
	}

	l.logger.Debug("document saved",
		slog.String("path", formatPath(n)),
		slog.Bool("header", n.Options().Header != ""),
	)

	return nil
}

// Render prints n and its descendants without a header.
// Unlike Save it accepts any node: lists and scalars print as YAML values.
func (l *Loader) Render(n *node.Node) ([]byte, error) {
	var buf bytes.Buffer

	err := l.engine.Print(WriteNode(l.engine, n), &buf)
	if err != nil {
		return nil, newNodeError(n, ErrWrite, err)
	}

	return buf.Bytes(), nil
}

func (l *Loader) writeHeader(header string, w *bufio.Writer) error {
	if header == "" {
		return nil
	}

	lines := strings.SplitSeq(strings.ReplaceAll(header, "\r\n", node.LineSeparator), node.LineSeparator)

	for line := range l.handlers[0].ToComment(lines) {
		_, err := w.WriteString(line + SystemLineSeparator)
		if err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	return nil
}

// readLines reads r to the end and joins its lines with node.LineSeparator.
func readLines(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)

	var lines []string

	for {
		line, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			if line != "" {
				lines = append(lines, line)
			}

			break
		}

		if err != nil {
			return "", fmt.Errorf("reading document: %w", err)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, node.LineSeparator), nil
}
