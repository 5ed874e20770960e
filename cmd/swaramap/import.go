package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swaramap/swaramap/pkg/dataset"
	"github.com/swaramap/swaramap/pkg/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the dataset into a datastore",
	Long: `Load the configured dataset and upsert every region, artist, news item and
map state into the datastore given by --datastore. Importing twice leaves the
datastore unchanged.`,
	Example: `  swaramap import --datastore swaramap.db
  swaramap import --dataset ./regions --datastore postgres://localhost/swaramap`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(v)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Datastore == "" {
		return fmt.Errorf("--datastore is required")
	}

	ds, err := cfg.Source().Load(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	if err := ds.Apply(cfg.Filter()); err != nil {
		return fmt.Errorf("filtering dataset: %w", err)
	}
	if err := dataset.Validate(ds); err != nil {
		return fmt.Errorf("validating dataset: %w", err)
	}

	s, err := cfg.OpenStore()
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := store.Import(s, ds)
	if err != nil {
		return err
	}

	logger.Info("import complete",
		zap.String("datastore", cfg.Datastore),
		zap.Int("regions", stats.Regions),
		zap.Int("artists", stats.Artists),
		zap.Int("news", stats.News),
		zap.Int("states", stats.States))

	fmt.Fprintf(cmd.OutOrStdout(), "Imported into %s: %d regions, %d artists, %d news, %d states\n",
		cfg.Datastore, stats.Regions, stats.Artists, stats.News, stats.States)
	return nil
}
