package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	"github.com/alexisbeaulieu97/typepanel/internal/tui"
)

const (
	fallbackColumns = 100
	fallbackRows    = 30
)

type previewOptions struct {
	ids  map[catalog.Category]*string
	open bool
	cols int
	rows int
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := previewOptions{ids: make(map[catalog.Category]*string)}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render one frame with a committed selection",
		Long:  "Render the article, and optionally the open panel, with the given option IDs committed. Omitted options keep their defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags, opts)
		},
	}

	for category, name := range previewFlagNames() {
		id := new(string)
		opts.ids[category] = id
		cmd.Flags().StringVar(id, name, "", fmt.Sprintf("%s option ID", category.Title()))
	}
	cmd.Flags().BoolVar(&opts.open, "open", false, "Render the settings panel open")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "Frame width in columns (defaults to the terminal width)")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "Frame height in rows (defaults to the terminal height)")

	return cmd
}

func previewFlagNames() map[catalog.Category]string {
	return map[catalog.Category]string{
		catalog.FontFamily:      "font",
		catalog.FontSize:        "size",
		catalog.FontColor:       "color",
		catalog.BackgroundColor: "bg",
		catalog.ContentWidth:    "width",
	}
}

func runPreview(cmd *cobra.Command, flags *rootFlags, opts previewOptions) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	hostCfg, err := app.HostConfig()
	if err != nil {
		return err
	}

	sel, err := selectionFromFlags(hostCfg.Catalogs, hostCfg.Defaults, opts.ids)
	if err != nil {
		return err
	}

	cols, rows := frameSize(opts.cols, opts.rows)
	app.Logger.WithFields(map[string]any{"command": "preview", "cols": cols, "open": opts.open}).Debug("rendering preview")

	fmt.Fprintln(cmd.OutOrStdout(), tui.Preview(hostCfg, sel, opts.open, cols, rows))
	return nil
}

func selectionFromFlags(set catalog.Set, defaults catalog.Selection, ids map[catalog.Category]*string) (catalog.Selection, error) {
	sel := defaults
	for _, category := range catalog.Categories() {
		id, ok := ids[category]
		if !ok || id == nil || *id == "" {
			continue
		}
		opt, err := set.Lookup(category, *id)
		if err != nil {
			return catalog.Selection{}, fmt.Errorf("--%s: %w", previewFlagNames()[category], err)
		}
		sel = sel.With(category, opt)
	}
	return sel, nil
}

func frameSize(cols, rows int) (int, int) {
	if cols > 0 && rows > 0 {
		return cols, rows
	}

	w, h := fallbackColumns, fallbackRows
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if tw, th, err := term.GetSize(fd); err == nil {
			w, h = tw, th
		}
	}
	if cols > 0 {
		w = cols
	}
	if rows > 0 {
		h = rows
	}
	return w, h
}
