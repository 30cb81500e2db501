package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trhacknon/custom-devices/internal/catalogsource"
	"github.com/trhacknon/custom-devices/internal/document"
	"github.com/trhacknon/custom-devices/internal/models"
)

func newCatalogCmd(root *rootOptions) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "catalog [category]",
		Short: "List catalog entries and prices",
		Long: `List the catalog in display order, optionally a single category
(boards, modules, firmwares, options). With --yaml the whole catalog is
printed in the format CATALOG_FILE accepts.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"boards", "modules", "firmwares", "options"},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd.Context(), root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if asYAML {
				return catalogsource.Encode(cmd.OutOrStdout(), env.catalog.Catalog())
			}

			categories := models.Categories
			if len(args) == 1 {
				category := models.Category(args[0])
				if !category.Valid() {
					return fmt.Errorf("unknown category %q", args[0])
				}
				categories = []models.Category{category}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, category := range categories {
				entries, err := env.catalog.List(cmd.Context(), category)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s\n", category)
				for _, e := range entries {
					fmt.Fprintf(w, "  %s\t%s\n", e.Name, document.FormatEUR(e.Price))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the catalog as YAML")

	return cmd
}
