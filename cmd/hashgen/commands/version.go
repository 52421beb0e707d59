package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hashgen/internal/version"
)

// versionCmd needs no configuration, so its own PersistentPreRunE replaces
// the root's wiring step.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print hashgen version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Detailed())
			return err
		},
	}
}
