package dictlint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/konelav/reglan/dictlint"
)

func TestLintCleanFile(t *testing.T) {
	path := writeFile(t, "alice\nbob\ncarol\n")
	violations, err := dictlint.Lint(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestLintFindsDisallowedBytes(t *testing.T) {
	path := writeFile(t, "alice\nbob\tsmith\ncarol\x00x\n")
	violations, err := dictlint.Lint(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(violations), violations)
	}
	if violations[0].Line != 2 || violations[0].Atom != "\t" {
		t.Fatalf("unexpected first violation: %+v", violations[0])
	}
	if violations[1].Line != 3 || violations[1].Atom != "\x00" {
		t.Fatalf("unexpected second violation: %+v", violations[1])
	}
}

func TestLintCustomBlocklist(t *testing.T) {
	path := writeFile(t, "admin\nroot\nguest\n")
	violations, err := dictlint.Lint(path, []string{"admin", "root"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(violations), violations)
	}
}

func TestLintMissingFile(t *testing.T) {
	if _, err := dictlint.Lint("/nonexistent/path.txt", nil); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
