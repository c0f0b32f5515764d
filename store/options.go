package store

// Option defines a function type for configuring a store.
type Option func(*Config)

// WithPath sets the path of the backing document.
func WithPath(path string) Option {
	return func(cfg *Config) {
		cfg.Path = path
	}
}

// WithHeader sets the header used when the document has none.
func WithHeader(header string) Option {
	return func(cfg *Config) {
		cfg.Header = header
	}
}

// WithGuessIndentation re-indents misplaced lines while loading.
func WithGuessIndentation() Option {
	return func(cfg *Config) {
		cfg.GuessIndentation = true
	}
}

// WithCreateIfMissing starts with an empty tree when the document does not exist.
func WithCreateIfMissing() Option {
	return func(cfg *Config) {
		cfg.CreateIfMissing = true
	}
}

// WithSaveOnStop writes the tree back when the application stops.
func WithSaveOnStop() Option {
	return func(cfg *Config) {
		cfg.SaveOnStop = true
	}
}
