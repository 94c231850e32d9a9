package metadata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/barasher/go-exiftool"

	"shuttersort/internal/logging"
)

// LoadFile reads a pre-produced JSON array of attribute records, one object
// per file, as written by `exiftool -json`.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse metadata file %s: %w", path, err)
	}
	return records, nil
}

// Extractor produces attribute records by running exiftool in stay-open mode.
type Extractor struct {
	tool   *exiftool.Exiftool
	logger *slog.Logger
}

// NewExtractor starts an exiftool process using the given binary name or
// path. Construction fails when the binary cannot be launched; nothing has
// been touched at that point, so callers abort the whole run.
func NewExtractor(binary string, logger *slog.Logger) (*Extractor, error) {
	var opts []func(*exiftool.Exiftool) error
	if binary != "" && binary != "exiftool" {
		opts = append(opts, exiftool.SetExiftoolBinaryPath(binary))
	}
	tool, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, fmt.Errorf("start exiftool: %w", err)
	}
	return &Extractor{
		tool:   tool,
		logger: logging.WithComponent(logger, "exiftool"),
	}, nil
}

// Close shuts the exiftool process down.
func (e *Extractor) Close() error {
	return e.tool.Close()
}

// ExtractDir returns one record per regular file directly inside dir.
// Per-file extraction failures do not abort the batch: they are logged and
// surfaced as records tagged with an Error attribute, which the batch driver
// skips. This mirrors exiftool's own leniency, where a partial result set is
// still emitted alongside a non-zero exit.
func (e *Extractor) ExtractDir(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, nil
	}

	metas := e.tool.ExtractMetadata(paths...)
	records := make([]Record, 0, len(metas))
	for _, meta := range metas {
		if meta.Err != nil {
			e.logger.Warn("metadata extraction failed",
				logging.String("file", meta.File),
				logging.Error(meta.Err),
			)
			records = append(records, Record{
				KeySourceFile: meta.File,
				KeyError:      meta.Err.Error(),
			})
			continue
		}
		rec := Record(meta.Fields)
		if rec == nil {
			rec = Record{}
		}
		if _, ok := rec.SourceFile(); !ok {
			rec[KeySourceFile] = meta.File
		}
		records = append(records, rec)
	}
	return records, nil
}
