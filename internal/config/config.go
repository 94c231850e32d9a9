package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains output directory configuration.
type Paths struct {
	PhotoDir string `toml:"photo_dir"`
	VideoDir string `toml:"video_dir"`
	LogDir   string `toml:"log_dir"`
}

// Organize contains configuration for destination path rendering.
type Organize struct {
	FilenameFormat string `toml:"filename_format"`
}

// Exiftool contains configuration for the metadata extraction tool.
type Exiftool struct {
	Binary string `toml:"binary"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for Shuttersort.
//
// Configuration sections:
//   - Paths: photo and video output roots plus an optional log directory
//   - Organize: the filename format template destination paths are rendered from
//   - Exiftool: the external metadata extraction binary
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Organize Organize `toml:"organize"`
	Exiftool Exiftool `toml:"exiftool"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/shuttersort/config.toml")
}

// Load locates, parses, and validates a configuration file. Candidates are
// tried in order: the explicit path, shuttersort.toml inside sourceDir, then
// the default user config path. An absent file means all defaults. The
// returned config has all path fields expanded and normalized.
func Load(path, sourceDir string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path, sourceDir)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path, sourceDir string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	if strings.TrimSpace(sourceDir) != "" {
		sourcePath, err := expandPath(filepath.Join(sourceDir, "shuttersort.toml"))
		if err != nil {
			return "", false, err
		}
		if info, err := os.Stat(sourcePath); err == nil && !info.IsDir() {
			return sourcePath, true, nil
		}
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the photo and video output roots.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.PhotoDir, c.Paths.VideoDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Paths.PhotoDir) == "" {
		c.Paths.PhotoDir = defaultOutputBase
	}
	if c.Paths.PhotoDir, err = expandPath(c.Paths.PhotoDir); err != nil {
		return fmt.Errorf("paths.photo_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.VideoDir) == "" {
		c.Paths.VideoDir = defaultOutputBase
	}
	if c.Paths.VideoDir, err = expandPath(c.Paths.VideoDir); err != nil {
		return fmt.Errorf("paths.video_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	} else {
		c.Paths.LogDir = ""
	}

	c.Organize.FilenameFormat = strings.TrimSpace(c.Organize.FilenameFormat)
	if c.Organize.FilenameFormat == "" {
		c.Organize.FilenameFormat = DefaultFilenameFormat
	}

	c.Exiftool.Binary = strings.TrimSpace(c.Exiftool.Binary)
	if c.Exiftool.Binary == "" {
		c.Exiftool.Binary = defaultExiftoolBinary
	}

	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
