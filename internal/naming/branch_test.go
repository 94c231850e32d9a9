package naming

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveBranchEmptyTree(t *testing.T) {
	base := t.TempDir()
	bn, err := ResolveBranch(base, testFormat, testInfo())
	if err != nil {
		t.Fatalf("ResolveBranch: %v", err)
	}
	if bn != 0 {
		t.Fatalf("branch = %d, want 0 for empty tree", bn)
	}
}

func TestResolveBranchIncrements(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "20230506/Canon_EOS_R6/20230506070809-0.jpg"))
	writeFile(t, filepath.Join(base, "20230506/Canon_EOS_R6/20230506070809-1.jpg"))

	bn, err := ResolveBranch(base, testFormat, testInfo())
	if err != nil {
		t.Fatalf("ResolveBranch: %v", err)
	}
	if bn != 2 {
		t.Fatalf("branch = %d, want 2", bn)
	}
}

func TestResolveBranchSkipsToMaxPlusOne(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "20230506/Canon_EOS_R6/20230506070809-0.jpg"))
	writeFile(t, filepath.Join(base, "20230506/Canon_EOS_R6/20230506070809-7.jpg"))

	bn, err := ResolveBranch(base, testFormat, testInfo())
	if err != nil {
		t.Fatalf("ResolveBranch: %v", err)
	}
	if bn != 8 {
		t.Fatalf("branch = %d, want 8 (max+1, holes are not reused)", bn)
	}
}

func TestResolveBranchIgnoresOtherPrefixes(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "20230506/Canon_EOS_R6/20230506111111-0.jpg"))
	writeFile(t, filepath.Join(base, "20230506/Other_Camera/20230506070809-0.jpg"))

	bn, err := ResolveBranch(base, testFormat, testInfo())
	if err != nil {
		t.Fatalf("ResolveBranch: %v", err)
	}
	if bn != 0 {
		t.Fatalf("branch = %d, want 0 when only unrelated files exist", bn)
	}
}

func TestResolveBranchAnomalyIsFatal(t *testing.T) {
	base := t.TempDir()
	// Matches the glob ("[0-9]*" is one digit plus anything) but not the
	// capture pattern, so the template disagrees with on-disk naming.
	writeFile(t, filepath.Join(base, "20230506/Canon_EOS_R6/20230506070809-0abc.jpg"))

	_, err := ResolveBranch(base, testFormat, testInfo())
	if err == nil {
		t.Fatal("expected branch pattern anomaly")
	}
	if !errors.Is(err, ErrBranchPattern) {
		t.Fatalf("expected ErrBranchPattern, got %v", err)
	}
}
