package testsupport

import (
	"path/filepath"
	"testing"

	"shuttersort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.PhotoDir = filepath.Join(base, "photos")
	cfg.Paths.VideoDir = filepath.Join(base, "videos")
	cfg.Paths.LogDir = ""

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithFilenameFormat sets the destination template on the test config.
func WithFilenameFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.FilenameFormat = format
	}
}

// WithSharedOutputDir points photos and videos at the same root.
func WithSharedOutputDir() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.VideoDir = cfg.Paths.PhotoDir
	}
}
