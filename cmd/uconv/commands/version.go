package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/migliorelli/uconv/pkg/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "uconv version %s\n", version.Version)
			return err
		},
	}
}
