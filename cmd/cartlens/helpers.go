package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cartlens/cartlens/internal/common"
	"github.com/cartlens/cartlens/internal/config"
	"github.com/cartlens/cartlens/internal/engine"
	"github.com/cartlens/cartlens/internal/loader"
	"github.com/cartlens/cartlens/internal/model"
	"github.com/cartlens/cartlens/internal/service"
	"github.com/cartlens/cartlens/internal/storage"
)

// initStorage initializes the dataset cache with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// dataDir resolves the configured CSV data directory.
func dataDir() string {
	dir := viper.GetString("data.dir")
	if dir == "" {
		dir = config.DefaultDataDir()
	}
	return config.ExpandPath(dir)
}

// loadDataset returns the full order-line dataset: from the SQLite
// cache when its signature matches the current CSV files, otherwise
// from the CSV files themselves (refreshing the cache on the way).
// Missing directory or missing CSV files abort the whole session.
func loadDataset(ctx context.Context) ([]model.OrderLine, error) {
	dir := dataDir()

	files, err := loader.Discover(dir)
	if err != nil {
		if common.IsConfigError(err) {
			return nil, common.NewUserError(
				fmt.Sprintf("cannot load data from %q (use --data or set data.dir)", dir), err)
		}
		return nil, err
	}

	sig, err := loader.Signature(files)
	if err != nil {
		return nil, err
	}

	if viper.GetBool("cache.disabled") {
		return loader.LoadFiles(ctx, files, nil)
	}

	store, err := initStorage(ctx)
	if err != nil {
		// A broken cache never blocks a read-only session.
		slog.Warn("dataset cache unavailable, reading CSV files directly", "error", err)
		return loader.LoadFiles(ctx, files, nil)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("failed to close dataset cache", "error", closeErr)
		}
	}()

	cachedSig, err := store.Signature(ctx)
	if err == nil && cachedSig == sig {
		lines, datasetErr := store.Dataset(ctx)
		if datasetErr == nil {
			slog.Debug("loaded dataset from cache", "lines", len(lines))
			return lines, nil
		}
		slog.Warn("failed to read cached dataset, falling back to CSV files", "error", datasetErr)
	} else if err != nil && !errors.Is(err, common.ErrNotFound) {
		slog.Warn("failed to read cache signature", "error", err)
	}

	lines, err := loader.LoadFiles(ctx, files, nil)
	if err != nil {
		return nil, err
	}

	if cacheErr := store.ReplaceDataset(ctx, sig, lines); cacheErr != nil {
		slog.Warn("failed to refresh dataset cache", "error", cacheErr)
	}

	return lines, nil
}

// addFilterFlags registers the shared categorical filter flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("department", "d", nil, "keep only these departments (repeatable)")
	cmd.Flags().StringSliceP("aisle", "a", nil, "keep only these aisles (repeatable)")
	cmd.Flags().StringSliceP("product", "p", nil, "keep only these products (repeatable)")
}

// filtersFromFlags builds the engine filter set from the shared flags.
func filtersFromFlags(cmd *cobra.Command) engine.Filters {
	departments, _ := cmd.Flags().GetStringSlice("department")
	aisles, _ := cmd.Flags().GetStringSlice("aisle")
	products, _ := cmd.Flags().GetStringSlice("product")
	return engine.Filters{
		Departments: departments,
		Aisles:      aisles,
		Products:    products,
	}
}

// loadFiltered loads the dataset and applies the command's filters.
func loadFiltered(cmd *cobra.Command) ([]model.OrderLine, error) {
	lines, err := loadDataset(cmd.Context())
	if err != nil {
		return nil, err
	}
	return filtersFromFlags(cmd).Apply(lines), nil
}
