package yamlconf

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// YAMLVersion is the version of the YAML engine the tree is printed with, set via ldflags.
	YAMLVersion = "v3"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)
