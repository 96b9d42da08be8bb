package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	category_cache "github.com/coldline/catalog/cache"
	"github.com/coldline/catalog/catalog"
	"github.com/coldline/catalog/classifier"
	"github.com/coldline/catalog/config"
	"github.com/coldline/catalog/engine"
	"github.com/coldline/catalog/services"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	dataPath string
	format   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Query the refrigeration equipment catalog",
		Long: `Query the refrigeration equipment catalog.

Products are categorised by ordered keyword rules; the first matching rule
wins and unmatched products fall into "Other".

Examples:
  catalog search cooler              # Products whose name contains "cooler"
  catalog search --cat Upright       # Products in one category
  catalog categories                 # Categories present in the dataset
  catalog distribution -f json       # Product count per category as JSON
  catalog stats                      # Price statistics
  catalog link --q cooler --cat Bar  # Shareable query string`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains([]string{formatTable, formatJSON}, opts.format) {
				return fmt.Errorf("invalid format %q (valid: %s, %s)", opts.format, formatTable, formatJSON)
			}
			return nil
		},
	}

	config.LoadDotEnv()
	cfg := config.Load()

	cmd.PersistentFlags().StringVar(&opts.dataPath, "data", cfg.DataPath, "dataset JSON file (default is the embedded dataset, or DATA_PATH)")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", formatTable, "output format (table, json)")
	cmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newSearchCmd(opts),
		newCategoriesCmd(opts),
		newDistributionCmd(opts),
		newStatsCmd(opts),
		newLinkCmd(opts),
	)
	return cmd
}

// openCatalog loads the dataset and wires the same service the server uses.
func (o *rootOptions) openCatalog() (*services.CatalogService, error) {
	// stdout carries command output
	logger, err := config.NewLogger(o.logLevel, "stderr")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := catalog.Open(o.dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	cls := classifier.New(classifier.DefaultRules(), classifier.WithCache(category_cache.New()))
	return services.NewCatalogService(store, engine.New(cls), logger), nil
}
