package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldline/catalog/models"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "search [text]",
		Aliases: []string{"s"},
		Short:   "Search products by name and category",
		Long: `Search products whose name contains the given text (case-insensitive),
optionally restricted to one category. Without arguments every product is
listed in dataset order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.openCatalog()
			if err != nil {
				return err
			}

			state := models.DefaultFilterState()
			if len(args) == 1 {
				state.SearchText = args[0]
			}
			if category != "" {
				state.CategoryFilter = category
			}
			view := svc.Browse(state)

			out := cmd.OutOrStdout()
			if opts.format == formatJSON {
				return writeJSON(out, view)
			}

			rows := make([][]string, 0, len(view.Products))
			for _, p := range view.Featured {
				rows = append(rows, productRow(p))
			}
			for _, p := range view.Regular {
				rows = append(rows, productRow(p))
			}
			if err := writeTable(out, []string{"NAME", "CATEGORY", "LINK"}, rows); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\n%d product(s)\n", view.Total)
			return err
		},
	}

	cmd.Flags().StringVarP(&category, "cat", "c", models.AllCategories, "category label")
	return cmd
}

func productRow(p models.StorefrontProduct) []string {
	name := p.Name
	if p.Featured {
		name = "★ " + name
	}
	link := "-"
	if p.HasLink() {
		link = *p.URL
	}
	return []string{name, p.Category, link}
}
