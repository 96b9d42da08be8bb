package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"c"},
		Short:   "List the categories present in the dataset",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.openCatalog()
			if err != nil {
				return err
			}

			labels := svc.Categories()
			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), labels)
			}

			rows := make([][]string, len(labels))
			for i, label := range labels {
				rows[i] = []string{label}
			}
			return writeTable(cmd.OutOrStdout(), []string{"CATEGORY"}, rows)
		},
	}
}

func newDistributionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "distribution",
		Aliases: []string{"d"},
		Short:   "Count products per category, largest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.openCatalog()
			if err != nil {
				return err
			}

			dist := svc.Distribution()
			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), dist)
			}

			rows := make([][]string, len(dist))
			for i, d := range dist {
				rows[i] = []string{d.Name, strconv.Itoa(d.Count)}
			}
			return writeTable(cmd.OutOrStdout(), []string{"CATEGORY", "PRODUCTS"}, rows)
		},
	}
}
