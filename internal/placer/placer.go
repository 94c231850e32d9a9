package placer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"shuttersort/internal/config"
	"shuttersort/internal/fileutil"
	"shuttersort/internal/logging"
	"shuttersort/internal/metadata"
	"shuttersort/internal/naming"
)

// Placement records one completed file relocation.
type Placement struct {
	Source      string
	Destination string
	Video       bool
	Moved       bool
}

// Placer routes one attribute record to its destination and performs the
// copy or move.
type Placer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs a placer for the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Placer {
	return &Placer{
		cfg:    cfg,
		logger: logging.WithComponent(logger, "placer"),
	}
}

// Place classifies the record as photo or video, derives its destination
// path under the matching output root, creates missing parent directories,
// and copies (or, when move is set, moves) the source file into place.
//
// Branch resolution reads the destination tree, so Place must not run
// concurrently with other placements into the same roots.
func (p *Placer) Place(rec metadata.Record, move bool) (Placement, error) {
	source, ok := rec.SourceFile()
	if !ok {
		return Placement{}, fmt.Errorf("record %q missing SourceFile", rec.FileName())
	}

	video := rec.IsVideo()
	base := p.cfg.Paths.PhotoDir
	if video {
		base = p.cfg.Paths.VideoDir
	}

	format := p.cfg.Organize.FilenameFormat
	info := naming.BuildInfo(rec)

	branch, err := naming.ResolveBranch(base, format, info)
	if err != nil {
		return Placement{}, fmt.Errorf("resolve branch number for %s: %w", source, err)
	}

	rendered, err := naming.Render(format, info, naming.Branch(branch))
	if err != nil {
		return Placement{}, fmt.Errorf("render destination for %s: %w", source, err)
	}
	destination := filepath.Join(base, filepath.FromSlash(rendered))

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return Placement{}, fmt.Errorf("create destination directory: %w", err)
	}

	action := "copying file"
	if move {
		action = "moving file"
	}
	p.logger.Info(action,
		logging.String("source", source),
		logging.String("destination", destination),
		logging.Int("branch", branch),
		logging.Bool("video", video),
	)

	if move {
		err = fileutil.MoveFile(source, destination)
	} else {
		err = fileutil.CopyVerified(source, destination)
	}
	if err != nil {
		return Placement{}, fmt.Errorf("place %s: %w", source, err)
	}

	return Placement{
		Source:      source,
		Destination: destination,
		Video:       video,
		Moved:       move,
	}, nil
}
