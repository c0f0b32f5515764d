package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/spf13/afero"

	"github.com/0xalexb/hjarta-yaml/config/fetcher/file"
	"github.com/0xalexb/hjarta-yaml/config/loader/yaml"
	"github.com/0xalexb/hjarta-yaml/config/node"
)

// Store holds the node tree of one YAML document.
//
// The store guards the reference to the root node only. Callers mutating the tree
// must not do so while Save runs.
type Store struct {
	name   string
	config Config
	fs     afero.Fs
	loader *yaml.Loader
	logger *slog.Logger

	mu   sync.RWMutex
	root *node.Node
}

// NewStore creates a Store named name reading and writing cfg.Path on fsys.
// It sets config defaults and validates the config. A nil fsys uses the OS filesystem,
// a nil logger uses slog.Default().
func NewStore(name string, cfg Config, fsys afero.Fs, logger *slog.Logger) (*Store, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("store", name))

	return &Store{
		name:   name,
		config: cfg,
		fs:     fsys,
		loader: yaml.NewLoader(
			yaml.WithGuessIndentation(cfg.GuessIndentation),
			yaml.WithDefaultOptions(node.Options{Header: cfg.Header}),
			yaml.WithLogger(logger),
		),
		logger: logger,
	}, nil
}

// Name returns the store name.
func (s *Store) Name() string {
	return s.name
}

// Path returns the path of the backing document.
func (s *Store) Path() string {
	return s.config.Path
}

// Root returns the current root node, or nil before the first successful Load.
func (s *Store) Root() *node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.root
}

// Load reads the backing document and replaces the root node.
// The previous root is kept when loading fails.
func (s *Store) Load() error {
	root, err := s.read()
	if err != nil {
		s.logger.Error("load failed", slog.String("path", s.config.Path), slog.Any("error", err))

		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	s.mu.Lock()
	s.root = root
	s.mu.Unlock()

	s.logger.Info("document loaded", slog.String("path", s.config.Path))

	return nil
}

func (s *Store) read() (*node.Node, error) {
	fetcher, err := file.NewFetcher(s.fs, s.config.Path)()
	if errors.Is(err, fs.ErrNotExist) && s.config.CreateIfMissing {
		s.logger.Info("document missing, starting empty", slog.String("path", s.config.Path))

		return s.loader.CreateNode(node.Options{Header: s.config.Header}), nil
	}

	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by Load
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by Load
	}

	return s.loader.Parse(data) //nolint:wrapcheck // wrapped by Load
}

// Save writes the root node to the backing document.
func (s *Store) Save() error {
	root := s.Root()
	if root == nil {
		root = s.loader.CreateNode(node.Options{Header: s.config.Header})
	}

	err := file.NewSink(s.fs, s.config.Path).Write(func(w io.Writer) error {
		return s.loader.Save(root, w)
	})
	if err != nil {
		s.logger.Error("save failed", slog.String("path", s.config.Path), slog.Any("error", err))

		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.logger.Info("document saved", slog.String("path", s.config.Path))

	return nil
}

// Start loads the backing document.
func (s *Store) Start(_ context.Context) error {
	return s.Load()
}

// Stop saves the tree when the store is configured to save on stop.
func (s *Store) Stop(_ context.Context) error {
	if !s.config.SaveOnStop {
		return nil
	}

	return s.Save()
}
