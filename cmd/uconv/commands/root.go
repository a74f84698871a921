package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/migliorelli/uconv/pkg/config"
	"github.com/migliorelli/uconv/pkg/ui"
)

var errNotTerminal = errors.New("interactive mode needs a terminal; use 'uconv convert VALUE' instead")

// app is shared by every command once the root pre-run has loaded config.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger

	isTerminal func() bool
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func (a *app) load(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg
	a.logger = cfg.NewLogger(stderr)
	if a.configPath != "" {
		a.logger.Debug("loaded config", "path", a.configPath)
	}
	return nil
}

func newRootCmd(isTerminal func() bool) *cobra.Command {
	a := &app{isTerminal: isTerminal}

	root := &cobra.Command{
		Use:          "uconv",
		Short:        "Convert lengths between centimeters, meters, feet and millimeters",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./uconv.yaml or ~/.config/uconv/uconv.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(convertCmd(a), unitsCmd(), promptCmd(a), versionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd(stdioIsTerminal).Execute()
}

func (a *app) runInteractive() error {
	if !a.isTerminal() {
		return errNotTerminal
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if path := a.cfg.Log.File; path != "" {
		f, err := tea.LogToFile(path, "uconv")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = a.cfg.NewLogger(f)
	}

	from, to := a.cfg.DefaultUnits()
	m := ui.NewModel(ui.Options{
		From:   from,
		To:     to,
		Theme:  ui.DefaultTheme(nil),
		Logger: logger,
	})

	var opts []tea.ProgramOption
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("starting interactive session", "from", from.Key(), "to", to.Key())
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("error running converter: %w", err)
	}
	return nil
}
