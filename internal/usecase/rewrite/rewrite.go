package rewrite

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/Jackevansevo/taggy/internal/domain"
)

// File replaces every occurrence of oldVersion with newVersion in the file
// at path and returns the unified diff of the change. With preview the file
// is left untouched. Writes go through a temp file in the same directory so
// a half-written target is never observed.
func File(path, oldVersion, newVersion string, preview bool) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "rewrite.file",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	before := string(b)
	after := strings.ReplaceAll(before, oldVersion, newVersion)

	diff, err := unifiedDiff(path, before, after)
	if err != nil {
		return "", &domain.OpError{
			Op:   "rewrite.file",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if preview || before == after {
		return diff, nil
	}

	if err := writeAtomic(path, []byte(after)); err != nil {
		return "", &domain.OpError{
			Op:   "rewrite.file",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return diff, nil
}

func unifiedDiff(path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  0,
	})
}

func writeAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".taggy-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(info.Mode()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
