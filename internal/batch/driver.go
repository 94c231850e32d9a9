package batch

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"shuttersort/internal/config"
	"shuttersort/internal/logging"
	"shuttersort/internal/metadata"
	"shuttersort/internal/placer"
)

// FilePlacer relocates one record's file. Satisfied by *placer.Placer.
type FilePlacer interface {
	Place(rec metadata.Record, move bool) (placer.Placement, error)
}

// Summary reports what a completed run did.
type Summary struct {
	Placed     int
	Photos     int
	Videos     int
	Skipped    int
	Placements []placer.Placement
}

// Driver processes a batch of attribute records strictly sequentially.
// Branch-number resolution depends on the filesystem state left by prior
// placements, so records sharing a destination prefix must be placed one at
// a time and in sorted order; there is deliberately no parallelism here.
type Driver struct {
	placer   FilePlacer
	logger   *slog.Logger
	collator *collate.Collator
}

// NewDriver constructs the driver with default dependencies.
func NewDriver(cfg *config.Config, logger *slog.Logger) *Driver {
	return NewDriverWithPlacer(placer.New(cfg, logger), logger)
}

// NewDriverWithPlacer allows injecting the placer (used in tests).
func NewDriverWithPlacer(p FilePlacer, logger *slog.Logger) *Driver {
	return &Driver{
		placer:   p,
		logger:   logging.WithComponent(logger, "batch"),
		collator: collate.New(language.Und),
	}
}

// Run sorts records by their FileName attribute, skips records whose
// extraction failed, and dispatches the rest to the placer in order. The
// first placement failure aborts the run; already-placed files stay placed.
func (d *Driver) Run(records []metadata.Record, move bool) (Summary, error) {
	logger := d.logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	sorted := make([]metadata.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return d.collator.CompareString(sorted[i].FileName(), sorted[j].FileName()) < 0
	})

	logger.Info("starting batch",
		logging.Int("records", len(sorted)),
		logging.Bool("move", move),
	)

	var summary Summary
	for _, rec := range sorted {
		if rec.Failed() {
			logger.Debug("skipping record with extraction error",
				logging.String("file", rec.FileName()),
			)
			summary.Skipped++
			continue
		}

		placement, err := d.placer.Place(rec, move)
		if err != nil {
			return summary, err
		}
		summary.Placed++
		if placement.Video {
			summary.Videos++
		} else {
			summary.Photos++
		}
		summary.Placements = append(summary.Placements, placement)
	}

	logger.Info("batch completed",
		logging.Int("placed", summary.Placed),
		logging.Int("photos", summary.Photos),
		logging.Int("videos", summary.Videos),
		logging.Int("skipped", summary.Skipped),
	)
	return summary, nil
}
