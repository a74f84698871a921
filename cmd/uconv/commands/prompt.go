package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/migliorelli/uconv/pkg/prompt"
)

func promptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a value and units with a form, then print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.isTerminal() {
				return errNotTerminal
			}

			from, to := a.cfg.DefaultUnits()
			s, err := prompt.Run(from, to)
			if errors.Is(err, prompt.ErrAborted) {
				a.logger.Debug("prompt aborted")
				return nil
			}
			if err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.ResultLabel())
			return err
		},
	}
}
