package store

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// NewModule creates an Fx module for a named document store.
// The name is used as both the module name and the DI named tag for *Store and Config.
// If any options are passed, the module supplies Config to DI from those options.
// Otherwise, Config must be provided externally (e.g., via config.Provider).
//
// An afero.Fs and a *slog.Logger are used when present in the container.
// The store loads its document on start and, with WithSaveOnStop, saves it on stop.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	nameTag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(nameTag)),
		))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(
			fx.Annotate(
				func(lifecycle fx.Lifecycle, storeCfg Config, fsys afero.Fs, logger *slog.Logger) (*Store, error) {
					st, err := NewStore(name, storeCfg, fsys, logger)
					if err != nil {
						return nil, err
					}

					lifecycle.Append(fx.Hook{
						OnStart: st.Start,
						OnStop:  st.Stop,
					})

					return st, nil
				},
				fx.ParamTags("", nameTag, `optional:"true"`, `optional:"true"`),
				fx.ResultTags(nameTag),
			),
		),
		// Build the store even when nothing depends on it so its hooks run.
		fx.Invoke(fx.Annotate(func(*Store) {}, fx.ParamTags(nameTag))),
	)

	return fx.Module(name, moduleOpts...)
}
