package rewrite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestFile_PreviewLeavesFileUntouched(t *testing.T) {
	p := writeFile(t, t.TempDir(), "setup.py", "2.1.0\n")

	diff, err := File(p, "2.1.0", "2.1.1", true)
	if err != nil {
		t.Fatalf("File error: %v", err)
	}

	want := strings.Join([]string{
		"--- a/" + p,
		"+++ b/" + p,
		"@@ -1 +1 @@",
		"-2.1.0",
		"+2.1.1",
		"",
	}, "\n")
	if diff != want {
		t.Fatalf("unexpected diff:\n%q\nwant:\n%q", diff, want)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "2.1.0\n" {
		t.Fatalf("preview must not modify the file, got %q", b)
	}
}

func TestFile_ReplacesContent(t *testing.T) {
	p := writeFile(t, t.TempDir(), "conf.py", "version = '2.0.1'\nother\n")

	diff, err := File(p, "2.0.1", "2.0.2", false)
	if err != nil {
		t.Fatalf("File error: %v", err)
	}
	if !strings.Contains(diff, "-version = '2.0.1'") || !strings.Contains(diff, "+version = '2.0.2'") {
		t.Fatalf("unexpected diff:\n%s", diff)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "version = '2.0.2'\nother\n" {
		t.Fatalf("unexpected content: %q", b)
	}
}

func TestFile_ReplacesEveryOccurrence(t *testing.T) {
	p := writeFile(t, t.TempDir(), "doc.rst", "1.0.0\nstable is 1.0.0\n")

	if _, err := File(p, "1.0.0", "1.1.0", false); err != nil {
		t.Fatalf("File error: %v", err)
	}

	b, _ := os.ReadFile(p)
	if strings.Contains(string(b), "1.0.0") {
		t.Fatalf("expected all occurrences replaced, got %q", b)
	}
}

func TestFile_NoOccurrenceIsNoOp(t *testing.T) {
	p := writeFile(t, t.TempDir(), "README", "nothing to see\n")

	diff, err := File(p, "2.1.0", "2.1.1", false)
	if err != nil {
		t.Fatalf("File error: %v", err)
	}
	if diff != "" {
		t.Fatalf("expected empty diff, got %q", diff)
	}

	b, _ := os.ReadFile(p)
	if string(b) != "nothing to see\n" {
		t.Fatalf("file must be unchanged, got %q", b)
	}
}

func TestFile_PreservesMode(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "script.sh")
	if err := os.WriteFile(p, []byte("echo 1.0.0\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := File(p, "1.0.0", "1.0.1", false); err != nil {
		t.Fatalf("File error: %v", err)
	}

	info, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected mode 0755, got %v", info.Mode().Perm())
	}
}

func TestFile_MissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope"), "a", "b", false)
	if err == nil {
		t.Fatal("expected error")
	}
}
