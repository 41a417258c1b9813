package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/cartlens/cartlens/internal/cli"
	"github.com/cartlens/cartlens/internal/common"
	"github.com/cartlens/cartlens/internal/loader"
	"github.com/cartlens/cartlens/internal/model"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Load the CSV files and refresh the dataset cache",
		Long: `Read every CSV file in the data directory, concatenate them into one
dataset, and store the result in the local SQLite cache. Subsequent
commands serve the dataset from the cache until the files change.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dir := dataDir()

			files, err := loader.Discover(dir)
			if err != nil {
				if common.IsConfigError(err) {
					return common.NewUserError(
						fmt.Sprintf("cannot import from %q (use --data or set data.dir)", dir), err)
				}
				return err
			}

			slog.Info("Importing CSV files", "dir", dir, "file_count", len(files))

			bar := progressbar.NewOptions(len(files),
				progressbar.OptionSetDescription("Loading data..."),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			var lines []model.OrderLine
			fileRows := make([]int, len(files))
			for i, path := range files {
				fileLines, fileErr := loader.LoadFiles(ctx, []string{path}, nil)
				if fileErr != nil {
					return fileErr
				}
				lines = append(lines, fileLines...)
				fileRows[i] = len(fileLines)
				_ = bar.Add(1)
			}

			sig, err := loader.Signature(files)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.ReplaceDataset(ctx, sig, lines); err != nil {
				return fmt.Errorf("failed to cache dataset: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Imported %s order lines from %d files", cli.FormatInt(len(lines)), len(files))))
			for i, path := range files {
				fmt.Printf("  - %s: %s rows\n", filepath.Base(path), cli.FormatInt(fileRows[i]))
			}
			return nil
		},
	}
}
