package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/typepanel/internal/tui"
)

var errNotTerminal = errors.New("typepanel needs an interactive terminal; use 'typepanel preview' to render a single frame")

// stdoutIsTerminal is replaced in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the interactive settings panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	if !stdoutIsTerminal() {
		return errNotTerminal
	}

	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	hostCfg, err := app.HostConfig()
	if err != nil {
		return err
	}

	log := app.Logger.With("command", "run")
	log.With("ownership", hostCfg.Ownership.String()).Info("launching panel")

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if app.Config.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(tui.NewModel(hostCfg), opts...).Run()
	if err != nil {
		log.Error(err, "panel execution failed")
		return fmt.Errorf("failed to run panel: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		committed := m.Committed()
		log.WithFields(map[string]any{
			"font_family": committed.FontFamily.ID,
			"font_size":   committed.FontSize.ID,
			"font_color":  committed.FontColor.ID,
			"background":  committed.BackgroundColor.ID,
			"width":       committed.ContentWidth.ID,
		}).Info("panel closed")
	}

	return nil
}
