package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	yamlconf "github.com/0xalexb/hjarta-yaml"
)

// VersionOptions holds the version flags.
type VersionOptions struct{}

// NewVersionOptions creates VersionOptions.
func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

// NewVersionCmd creates the version command.
func NewVersionCmd(o *VersionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.OutOrStdout()) },
	}
}

// Run prints the version.
func (o *VersionOptions) Run(out io.Writer) error {
	_, err := fmt.Fprintf(out, "hjarta-yaml version %s (yaml %s, compiled %s)\n",
		yamlconf.Version, yamlconf.YAMLVersion, yamlconf.CompiledAt)

	return err //nolint:wrapcheck // output error
}
