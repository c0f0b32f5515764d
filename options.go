package yamlconf

import (
	"io"

	"github.com/spf13/afero"
	"go.uber.org/fx"

	"github.com/0xalexb/hjarta-yaml/store"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithStore adds a named document store module to the application.
// The name is used as both the Fx module name and the DI named tag for *store.Store and store.Config.
// When options are provided (e.g., store.WithPath), Config is supplied to DI automatically.
// Call multiple times with different names to keep several documents.
func WithStore(name string, opts ...store.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, store.NewModule(name, opts...))
	}
}

// WithFs supplies the filesystem used by stores. Without it stores use the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Supply(fx.Annotate(fs, fx.As(new(afero.Fs)))))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets where logs are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
