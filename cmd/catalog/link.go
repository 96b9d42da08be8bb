package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/coldline/catalog/filterstate"
	"github.com/coldline/catalog/models"
)

func newLinkCmd(opts *rootOptions) *cobra.Command {
	var (
		searchText string
		category   string
		base       string
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the shareable query for a filter state",
		Long: `Print the shareable query for a filter state. Default values are left out
of the query. With --base the filter keys are written into that URL and its
other query parameters are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := models.FilterState{SearchText: searchText, CategoryFilter: category}
			if state.CategoryFilter == "" {
				state.CategoryFilter = models.AllCategories
			}

			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), models.FilterQuery{
					State:      state,
					Query:      filterstate.ToQuery(state),
					ShareQuery: filterstate.Encode(state),
				})
			}

			if base == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), filterstate.Encode(state))
				return err
			}

			u, err := url.Parse(base)
			if err != nil {
				return fmt.Errorf("invalid base URL: %w", err)
			}
			u.RawQuery = filterstate.Apply(u.Query(), state).Encode()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u.String())
			return err
		},
	}

	cmd.Flags().StringVar(&searchText, "q", "", "search text")
	cmd.Flags().StringVar(&category, "cat", models.AllCategories, "category label")
	cmd.Flags().StringVar(&base, "base", "", "URL to rewrite, keeping its other query parameters")
	return cmd
}
