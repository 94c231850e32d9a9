package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeFixtures builds a source directory, a metadata JSON file describing
// it, and a config file pointing output at temp dirs. Returns source dir,
// metadata path, config path, photo root, and video root.
func writeFixtures(t *testing.T) (string, string, string, string, string) {
	t.Helper()
	base := t.TempDir()
	sourceDir := filepath.Join(base, "in")
	photoDir := filepath.Join(base, "photos")
	videoDir := filepath.Join(base, "videos")

	writeTestFile(t, filepath.Join(sourceDir, "a.jpg"), "jpeg bytes")
	writeTestFile(t, filepath.Join(sourceDir, "b.mp4"), "mp4 bytes")
	writeTestFile(t, filepath.Join(sourceDir, "broken.bin"), "junk")

	records := []map[string]any{
		{
			"SourceFile":        filepath.Join(sourceDir, "a.jpg"),
			"FileName":          "a.jpg",
			"Model":             "Canon EOS R6",
			"FileTypeExtension": "jpg",
			"CreateDate":        "2023:05:06 07:08:09",
		},
		{
			"SourceFile":        filepath.Join(sourceDir, "b.mp4"),
			"FileName":          "b.mp4",
			"FileTypeExtension": "mp4",
			"VideoFrameRate":    29.97,
			"CreateDate":        "2023:05:06 07:08:09",
		},
		{
			"SourceFile": filepath.Join(sourceDir, "broken.bin"),
			"Error":      "Unknown file type",
		},
	}
	payload, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	metaPath := filepath.Join(base, "meta.json")
	writeTestFile(t, metaPath, string(payload))

	cfgPath := filepath.Join(base, "config.toml")
	cfgContent := strings.Join([]string{
		"[paths]",
		`photo_dir = "` + photoDir + `"`,
		`video_dir = "` + videoDir + `"`,
	}, "\n")
	writeTestFile(t, cfgPath, cfgContent)

	return sourceDir, metaPath, cfgPath, photoDir, videoDir
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSortCommandCopiesFromMetadataFile(t *testing.T) {
	sourceDir, metaPath, cfgPath, photoDir, videoDir := writeFixtures(t)

	out, err := runCommand(t, "sort", sourceDir, "--json", metaPath, "--config", cfgPath)
	if err != nil {
		t.Fatalf("sort failed: %v\n%s", err, out)
	}

	photo := filepath.Join(photoDir, "20230506", "Canon_EOS_R6", "20230506070809-0.jpg")
	if _, err := os.Stat(photo); err != nil {
		t.Fatalf("expected photo at %s: %v", photo, err)
	}
	video := filepath.Join(videoDir, "20230506", "Unknown", "20230506070809-0.mp4")
	if _, err := os.Stat(video); err != nil {
		t.Fatalf("expected video at %s: %v", video, err)
	}

	// Copy mode preserves sources.
	if _, err := os.Stat(filepath.Join(sourceDir, "a.jpg")); err != nil {
		t.Fatalf("expected source preserved: %v", err)
	}
	if !strings.Contains(out, "Placed 2 file(s): 1 photo(s), 1 video(s); skipped 1") {
		t.Fatalf("unexpected summary output: %q", out)
	}
}

func TestSortCommandMoveRemovesSources(t *testing.T) {
	sourceDir, metaPath, cfgPath, photoDir, _ := writeFixtures(t)

	out, err := runCommand(t, "sort", sourceDir, "--json", metaPath, "--config", cfgPath, "--move")
	if err != nil {
		t.Fatalf("sort failed: %v\n%s", err, out)
	}

	if _, err := os.Stat(filepath.Join(sourceDir, "a.jpg")); !os.IsNotExist(err) {
		t.Fatalf("expected a.jpg moved away, stat err: %v", err)
	}
	photo := filepath.Join(photoDir, "20230506", "Canon_EOS_R6", "20230506070809-0.jpg")
	if _, err := os.Stat(photo); err != nil {
		t.Fatalf("expected photo at %s: %v", photo, err)
	}
}

func TestSortCommandSecondRunIncrementsBranch(t *testing.T) {
	sourceDir, metaPath, cfgPath, photoDir, _ := writeFixtures(t)

	for _, wantSuffix := range []string{"-0.jpg", "-1.jpg"} {
		out, err := runCommand(t, "sort", sourceDir, "--json", metaPath, "--config", cfgPath)
		if err != nil {
			t.Fatalf("sort failed: %v\n%s", err, out)
		}
		photo := filepath.Join(photoDir, "20230506", "Canon_EOS_R6", "20230506070809"+wantSuffix)
		if _, err := os.Stat(photo); err != nil {
			t.Fatalf("expected photo with suffix %s: %v", wantSuffix, err)
		}
	}
}

func TestSortCommandRefusesConcurrentRun(t *testing.T) {
	sourceDir, metaPath, cfgPath, photoDir, _ := writeFixtures(t)

	if err := os.MkdirAll(photoDir, 0o755); err != nil {
		t.Fatal(err)
	}
	held := flock.New(filepath.Join(photoDir, lockFileName))
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("could not take test lock: locked=%v err=%v", locked, err)
	}
	defer held.Unlock()

	if _, err := runCommand(t, "sort", sourceDir, "--json", metaPath, "--config", cfgPath); err == nil {
		t.Fatal("expected sort to refuse while lock is held")
	}
}

func TestSortCommandMissingSourceDir(t *testing.T) {
	_, metaPath, cfgPath, _, _ := writeFixtures(t)

	missing := filepath.Join(t.TempDir(), "absent")
	if _, err := runCommand(t, "sort", missing, "--json", metaPath, "--config", cfgPath); err == nil {
		t.Fatal("expected preflight failure for missing source dir")
	}
}
