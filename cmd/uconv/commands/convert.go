package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/migliorelli/uconv/pkg/converter"
	"github.com/migliorelli/uconv/pkg/report"
	"github.com/migliorelli/uconv/pkg/units"
)

func convertCmd(a *app) *cobra.Command {
	var fromName, toName, formatName string

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert one value and print the result",
		Long: "Convert one value and print the result.\n\n" +
			"A VALUE that is not a number is treated as 10.0. Put '--' before\n" +
			"negative values so they are not read as flags.",
		Example: "  uconv convert 100 --from cm --to m\n" +
			"  uconv convert 1 --from m --to ft --format json\n" +
			"  uconv convert -- -3 --from m --to cm",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(formatName)
			if err != nil {
				return fmt.Errorf("--format: %w", err)
			}

			from, to := a.cfg.DefaultUnits()
			if fromName != "" {
				if from, err = units.Parse(fromName); err != nil {
					return fmt.Errorf("--from: %w", err)
				}
			}
			if toName != "" {
				if to, err = units.Parse(toName); err != nil {
					return fmt.Errorf("--to: %w", err)
				}
			}

			s := converter.New(from, to)
			s.SetInput(args[0])
			if s.UsedFallback() {
				a.logger.Debug("input is not a number, using fallback",
					"input", args[0], "fallback", converter.FallbackValue)
			}
			a.logger.Debug("converted",
				"from", from.Key(), "to", to.Key(), "output", s.Output())

			return report.WriteResult(cmd.OutOrStdout(), format, report.FromSnapshot(s.Snapshot()))
		},
	}

	cmd.Flags().StringVarP(&fromName, "from", "f", "", "source unit (default from config)")
	cmd.Flags().StringVarP(&toName, "to", "t", "", "target unit (default from config)")
	cmd.Flags().StringVarP(&formatName, "format", "o", string(report.FormatText), "output format: text, json, yaml")
	return cmd
}
