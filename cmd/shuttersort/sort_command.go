package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"shuttersort/internal/batch"
	"shuttersort/internal/config"
	"shuttersort/internal/logging"
	"shuttersort/internal/metadata"
	"shuttersort/internal/preflight"
)

const lockFileName = ".shuttersort.lock"

func newSortCommand(configFlag *string) *cobra.Command {
	var jsonPath string
	var move bool

	cmd := &cobra.Command{
		Use:   "sort <source-dir>",
		Short: "Sort a directory of media files into the output tree",
		Long: `Sort reads metadata for every file in the source directory (via exiftool,
or from a pre-produced JSON file given with --json), derives a destination
path for each file from the configured filename format, and copies it into
the photo or video output root. With --move the source files are removed
after placement.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceDir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve source directory: %w", err)
			}

			cfg, _, _, err := config.Load(*configFlag, sourceDir)
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			if err := preflight.FirstFailure(preflight.Run(cfg, sourceDir, jsonPath == "")); err != nil {
				return err
			}

			// One run per output tree. Branch numbers are derived from live
			// filesystem state, so a second concurrent writer could assign
			// the same number and overwrite a file.
			lock := flock.New(filepath.Join(cfg.Paths.PhotoDir, lockFileName))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another shuttersort run is already using this output tree")
			}
			defer func() {
				_ = lock.Unlock()
			}()

			var records []metadata.Record
			if jsonPath != "" {
				records, err = metadata.LoadFile(jsonPath)
				if err != nil {
					return err
				}
			} else {
				extractor, err := metadata.NewExtractor(cfg.Exiftool.Binary, logger)
				if err != nil {
					return err
				}
				defer extractor.Close()

				records, err = extractor.ExtractDir(sourceDir)
				if err != nil {
					return err
				}
			}

			summary, err := batch.NewDriver(cfg, logger).Run(records, move)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", "", "Pre-produced exiftool JSON file to use instead of running exiftool")
	cmd.Flags().BoolVar(&move, "move", false, "Move files instead of copying them")
	return cmd
}
