package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.PhotoDir) == "" {
		return errors.New("paths.photo_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.VideoDir) == "" {
		return errors.New("paths.video_dir must not be empty")
	}
	if err := validateFormat(c.Organize.FilenameFormat); err != nil {
		return fmt.Errorf("organize.filename_format: %w", err)
	}
	if strings.TrimSpace(c.Exiftool.Binary) == "" {
		return errors.New("exiftool.binary must not be empty")
	}
	return nil
}

// validateFormat checks placeholder syntax structurally. Without {bn} two
// files rendering to the same path would overwrite each other, so its
// presence is mandatory.
func validateFormat(format string) error {
	hasBranch := false
	for i := 0; i < len(format); i++ {
		switch format[i] {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				i++
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return fmt.Errorf("unclosed placeholder at offset %d", i)
			}
			name := format[i+1 : i+1+end]
			if name == "" {
				return fmt.Errorf("empty placeholder at offset %d", i)
			}
			if name == "bn" {
				hasBranch = true
			}
			i += end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				i++
				continue
			}
			return fmt.Errorf("unmatched '}' at offset %d", i)
		}
	}
	if !hasBranch {
		return errors.New("must contain the {bn} placeholder")
	}
	return nil
}
