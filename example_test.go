package yamlconf_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/fx"

	yamlconf "github.com/0xalexb/hjarta-yaml"
	"github.com/0xalexb/hjarta-yaml/config"
	filefetcher "github.com/0xalexb/hjarta-yaml/config/fetcher/file"
	yamlloader "github.com/0xalexb/hjarta-yaml/config/loader/yaml"
	yamlparser "github.com/0xalexb/hjarta-yaml/config/parser/yaml"
	"github.com/0xalexb/hjarta-yaml/store"
)

// ServerConfig represents application server configuration.
// It implements both Defaulter and Validator interfaces from the config package.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Timeout int    `yaml:"timeout"`
}

// SetDefaults sets default values for the configuration.
func (c *ServerConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Timeout == 0 {
		c.Timeout = 30
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// Example_appWithConfigIntegration decodes a commented document into a typed config
// through the DI container.
func Example_appWithConfigIntegration() {
	configModule := fx.Module("config",
		fx.Provide(
			func() *yamlloader.Loader { return yamlloader.NewLoader() },
			func(loader *yamlloader.Loader) config.NodeLoader { return loader },
			func(loader *yamlloader.Loader) config.NodeDecoder { return yamlparser.NewDecoder(loader) },
			fx.Annotate(
				filefetcher.NewFetcher(afero.NewOsFs(), "testdata/server.yml"),
				fx.As(new(config.DataFetcher)),
			),
			config.Provider(new(ServerConfig), ""),
		),
	)

	var cfg *ServerConfig

	app := yamlconf.NewApp(
		yamlconf.WithLogLevel("error"),
		yamlconf.WithLogOutput(io.Discard),
		yamlconf.WithModules(configModule, fx.Invoke(func(c *ServerConfig) { cfg = c })),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	fmt.Printf("Server address: %s:%d\n", cfg.Host, cfg.Port)
	fmt.Printf("Timeout: %d\n", cfg.Timeout)
	// Output:
	// Server address: api.example.com:9000
	// Timeout: 30
}

// Example_store keeps a document in a named store and saves the edited tree on stop.
func Example_store() {
	fsys := afero.NewMemMapFs()

	var settings *store.Store

	app := yamlconf.NewApp(
		yamlconf.WithLogOutput(io.Discard),
		yamlconf.WithFs(fsys),
		yamlconf.WithStore("settings",
			store.WithPath("/etc/app/settings.yml"),
			store.WithHeader("managed by the settings service"),
			store.WithCreateIfMissing(),
			store.WithSaveOnStop(),
		),
		yamlconf.WithModules(fx.Invoke(fx.Annotate(
			func(s *store.Store) { settings = s },
			fx.ParamTags(`name:"settings"`),
		))),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	settings.Root().Node("listen", "port").SetRaw("8080").SetComment("public port")

	err = app.Stop()
	if err != nil {
		fmt.Printf("Error stopping app: %v\n", err)

		return
	}

	data, _ := afero.ReadFile(fsys, "/etc/app/settings.yml")
	fmt.Print(string(data))
	// Output:
	// # managed by the settings service
	// ---
	// listen:
	//   # public port
	//   port: 8080
}
