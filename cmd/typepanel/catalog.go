package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
)

var (
	catalogHeaderStyle  = lipgloss.NewStyle().Bold(true)
	catalogIDStyle      = lipgloss.NewStyle().Width(22)
	catalogLabelStyle   = lipgloss.NewStyle().Width(22)
	catalogDefaultStyle = lipgloss.NewStyle().Bold(true)
)

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [category]",
		Short: "List the available options",
		Long:  "List option IDs, labels and values per category. Categories: " + categoryList() + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := catalog.Categories()
			if len(args) == 1 {
				category, err := catalog.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []catalog.Category{category}
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

			return writeCatalog(cmd.OutOrStdout(), hostCfg.Catalogs, hostCfg.Defaults, categories)
		},
	}
}

func writeCatalog(w io.Writer, set catalog.Set, defaults catalog.Selection, categories []catalog.Category) error {
	blocks := make([]string, 0, len(categories))
	for _, category := range categories {
		lines := []string{catalogHeaderStyle.Render(fmt.Sprintf("%s (%s)", category.Title(), category))}
		for _, opt := range set.Options(category) {
			marker := "  "
			if opt == defaults.Get(category) {
				marker = catalogDefaultStyle.Render("* ")
			}
			lines = append(lines, marker+catalogIDStyle.Render(opt.ID)+catalogLabelStyle.Render(opt.Label)+opt.Value)
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	_, err := fmt.Fprintln(w, strings.Join(blocks, "\n\n"))
	return err
}

func categoryList() string {
	names := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
