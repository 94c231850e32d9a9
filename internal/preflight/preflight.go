package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"

	"shuttersort/internal/config"
)

// Result reports one setup check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Run evaluates every setup requirement for a sort run. Checks are read-only
// apart from creating the output roots, which a run would create anyway;
// nothing is placed until all checks pass. needExiftool is false when the
// caller already has a pre-produced metadata file.
func Run(cfg *config.Config, sourceDir string, needExiftool bool) []Result {
	results := []Result{
		CheckSourceDir(sourceDir),
		CheckOutputDir("photo output", cfg.Paths.PhotoDir),
		CheckOutputDir("video output", cfg.Paths.VideoDir),
	}
	if needExiftool {
		results = append(results, CheckExiftool(cfg.Exiftool.Binary))
	}
	return results
}

// FirstFailure returns an error describing the first failed check, or nil
// when everything passed.
func FirstFailure(results []Result) error {
	for _, result := range results {
		if !result.Passed {
			return fmt.Errorf("preflight: %s: %s", result.Name, result.Detail)
		}
	}
	return nil
}

// CheckExiftool verifies the metadata extraction binary is on PATH (or at
// the configured absolute path).
func CheckExiftool(binary string) Result {
	const name = "exiftool"
	cmd := strings.TrimSpace(binary)
	if cmd == "" {
		return Result{Name: name, Detail: "binary not configured"}
	}
	resolved, err := exec.LookPath(cmd)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q not found", cmd)}
	}
	return Result{Name: name, Passed: true, Detail: resolved}
}

// CheckSourceDir verifies the source directory exists and is readable.
func CheckSourceDir(path string) Result {
	const name = "source directory"
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s does not exist", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not a directory", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckOutputDir creates the output root when missing and verifies it is
// writable.
func CheckOutputDir(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "directory not configured"}
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (create: %v)", path, err)}
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (write ok)", path)}
}
