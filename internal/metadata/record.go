package metadata

import (
	"path/filepath"
	"strings"
)

// Well-known attribute names emitted by exiftool.
const (
	KeySourceFile = "SourceFile"
	KeyFileName   = "FileName"
	KeyError      = "Error"
)

// Record is one file's raw attribute mapping from the extraction tool's JSON
// output. Values are whatever the JSON decoder produced: strings, numbers,
// or booleans.
type Record map[string]any

// StringValue returns the value for key when it is present and textual.
func (r Record) StringValue(key string) (string, bool) {
	value, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// SourceFile returns the path of the file this record describes.
func (r Record) SourceFile() (string, bool) {
	s, ok := r.StringValue(KeySourceFile)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// FileName returns the FileName attribute, falling back to the base name of
// SourceFile when the attribute is absent. The batch driver sorts on this.
func (r Record) FileName() string {
	if name, ok := r.StringValue(KeyFileName); ok && name != "" {
		return name
	}
	if src, ok := r.SourceFile(); ok {
		return filepath.Base(src)
	}
	return ""
}

// Failed reports whether extraction failed for this record. Failed records
// carry no other guarantees and must be skipped.
func (r Record) Failed() bool {
	_, ok := r[KeyError]
	return ok
}

// IsVideo reports whether the record describes a video. Presence of any
// frame-rate attribute (VideoFrameRate, AvgFrameRate, ...) signals video.
func (r Record) IsVideo() bool {
	for key := range r {
		if strings.Contains(key, "FrameRate") {
			return true
		}
	}
	return false
}
