package metadata

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"shuttersort/internal/logging"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.json")
	payload := `[
		{"SourceFile": "/in/a.jpg", "Model": "Canon EOS R6", "ImageWidth": 4032},
		{"SourceFile": "/in/notes.txt", "Error": "Unknown file type"}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if model, _ := records[0].StringValue("Model"); model != "Canon EOS R6" {
		t.Fatalf("unexpected model: %q", model)
	}
	if !records[1].Failed() {
		t.Fatal("expected second record to be failed")
	}
}

func TestLoadFileRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.json")
	if err := os.WriteFile(path, []byte(`{"SourceFile": "/a.jpg"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for non-array payload")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractDir(t *testing.T) {
	if _, err := exec.LookPath("exiftool"); err != nil {
		t.Skip("exiftool not installed")
	}

	dir := t.TempDir()
	// Minimal JPEG header; exiftool reports File-group tags even without EXIF.
	jpegStub := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x04, 0x00, 0x00, 0xFF, 0xD9}
	if err := os.WriteFile(filepath.Join(dir, "a.jpg"), jpegStub, 0o644); err != nil {
		t.Fatal(err)
	}

	extractor, err := NewExtractor("exiftool", logging.NewNop())
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	defer extractor.Close()

	records, err := extractor.ExtractDir(dir)
	if err != nil {
		t.Fatalf("ExtractDir: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	src, ok := records[0].SourceFile()
	if !ok || filepath.Base(src) != "a.jpg" {
		t.Fatalf("unexpected source file: %q ok=%v", src, ok)
	}
}

func TestExtractDirEmpty(t *testing.T) {
	if _, err := exec.LookPath("exiftool"); err != nil {
		t.Skip("exiftool not installed")
	}

	extractor, err := NewExtractor("exiftool", logging.NewNop())
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	defer extractor.Close()

	records, err := extractor.ExtractDir(t.TempDir())
	if err != nil {
		t.Fatalf("ExtractDir: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
