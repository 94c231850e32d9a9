package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// ErrBranchPattern marks a collision-scan anomaly: a file matched the glob
// rendering of the template but its branch number cannot be extracted. That
// means the template is inconsistent with on-disk naming, and guessing a
// branch number there risks overwriting a file.
var ErrBranchPattern = errors.New("branch pattern mismatch")

// ResolveBranch returns the next free branch number for the path the
// template renders under baseDir: 0 when no file matches the rendered
// prefix, otherwise one past the highest branch number already on disk.
//
// Matching relies on a filesystem glob of the rendered pattern. Glob and
// regexp metacharacters inside attribute values are not escaped; a Model of
// "*" would over-match. Known limitation of the naming scheme.
func ResolveBranch(baseDir, format string, info Info) (int, error) {
	globPattern, err := Render(format, info, BranchGlob)
	if err != nil {
		return 0, err
	}
	matches, err := filepath.Glob(filepath.Join(baseDir, globPattern))
	if err != nil {
		return 0, fmt.Errorf("glob %q: %w", globPattern, err)
	}
	if len(matches) == 0 {
		return 0, nil
	}

	capturePattern, err := Render(format, info, BranchCapture)
	if err != nil {
		return 0, err
	}
	re, err := regexp.Compile(capturePattern)
	if err != nil {
		return 0, fmt.Errorf("compile branch pattern %q: %w", capturePattern, err)
	}
	if re.NumSubexp() < 1 {
		return 0, fmt.Errorf("%w: pattern %q has no branch capture", ErrBranchPattern, capturePattern)
	}

	highest := 0
	for _, match := range matches {
		sub := re.FindStringSubmatch(match)
		if sub == nil {
			return 0, fmt.Errorf("%w: existing file %q does not match %q", ErrBranchPattern, match, capturePattern)
		}
		n, convErr := strconv.Atoi(sub[1])
		if convErr != nil {
			return 0, fmt.Errorf("%w: no numeric branch in %q (matched %q)", ErrBranchPattern, match, sub[1])
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}
