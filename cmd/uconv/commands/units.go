package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/migliorelli/uconv/pkg/report"
)

func unitsCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the supported units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(formatName)
			if err != nil {
				return fmt.Errorf("--format: %w", err)
			}
			return report.WriteUnits(cmd.OutOrStdout(), format, report.UnitTable())
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "o", string(report.FormatText), "output format: text, json, yaml")
	return cmd
}
