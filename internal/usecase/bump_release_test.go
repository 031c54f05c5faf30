package usecase

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jackevansevo/taggy/internal/domain"
)

func bumpOpts(dir string) BumpOptions {
	return BumpOptions{
		Dir:     dir,
		Message: "version {}",
		Initial: "0.1.0",
	}
}

func TestBump_GitNotInstalled(t *testing.T) {
	tags := &fakeTags{installed: false}
	uc := NewBumpRelease(tags, &fakePrompter{}, nil)

	err := uc.Execute(context.Background(), bumpOpts("/repo"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindToolMissing) {
		t.Fatalf("expected tool_missing kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "git executable not found on current $PATH") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestBump_NotARepo_Declined(t *testing.T) {
	tags := &fakeTags{installed: true, isRepo: false}
	p := &fakePrompter{confirms: []bool{false}}
	uc := NewBumpRelease(tags, p, nil)

	err := uc.Execute(context.Background(), bumpOpts("/repo"))
	if !domain.IsKind(err, domain.KindAborted) {
		t.Fatalf("expected aborted kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "not a git repository") {
		t.Fatalf("unexpected message: %v", err)
	}
	if tags.initCalled {
		t.Fatal("Init must not run after decline")
	}
}

func TestBump_NotARepo_ConfirmedInitializes(t *testing.T) {
	tags := &fakeTags{installed: true, isRepo: false}
	// First confirm creates the repo, second creates the initial tag.
	p := &fakePrompter{confirms: []bool{true, true}}
	uc := NewBumpRelease(tags, p, nil)

	var out bytes.Buffer
	opts := bumpOpts("/repo")
	opts.Out = &out

	if err := uc.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !tags.initCalled {
		t.Fatal("expected Init to run")
	}
	if len(tags.created) != 1 || tags.created[0] != "0.1.0|version 0.1.0" {
		t.Fatalf("unexpected tags: %v", tags.created)
	}
	if !strings.Contains(out.String(), "Created new tag: 0.1.0") {
		t.Fatalf("missing success message: %q", out.String())
	}
}

func TestBump_NoTags_Declined(t *testing.T) {
	tags := &fakeTags{installed: true, isRepo: true}
	p := &fakePrompter{confirms: []bool{false}}
	uc := NewBumpRelease(tags, p, nil)

	err := uc.Execute(context.Background(), bumpOpts("/repo"))
	if !domain.IsKind(err, domain.KindAborted) {
		t.Fatalf("expected aborted kind, got %v", err)
	}
	if len(tags.created) != 0 {
		t.Fatalf("no tag must be created, got %v", tags.created)
	}
}

func TestBump_PatchCreatesTag(t *testing.T) {
	tags := &fakeTags{installed: true, isRepo: true, latest: "2.1.0"}
	uc := NewBumpRelease(tags, &fakePrompter{}, nil)

	var out bytes.Buffer
	opts := bumpOpts("/repo")
	opts.Part = domain.PartPatch
	opts.Out = &out

	if err := uc.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(tags.created) != 1 || tags.created[0] != "2.1.1|version 2.1.1" {
		t.Fatalf("unexpected tags: %v", tags.created)
	}

	// A plain bump prints nothing but the success line; the version diff
	// only appears in preview.
	if out.String() != "Created new tag: 2.1.1\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestBump_PreservesTagPrefix(t *testing.T) {
	tags := &fakeTags{installed: true, isRepo: true, latest: "v2.1.0"}
	uc := NewBumpRelease(tags, &fakePrompter{}, nil)

	opts := bumpOpts("/repo")
	opts.Part = domain.PartPatch

	if err := uc.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(tags.created) != 1 || !strings.HasPrefix(tags.created[0], "v2.1.1|") {
		t.Fatalf("unexpected tags: %v", tags.created)
	}
}

func TestBump_PromptsForPartWhenMissing(t *testing.T) {
	tags := &fakeTags{installed: true, isRepo: true, latest: "2.1.0"}
	p := &fakePrompter{choice: "patch"}
	uc := NewBumpRelease(tags, p, nil)

	if err := uc.Execute(context.Background(), bumpOpts("/repo")); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(tags.created) != 1 || !strings.HasPrefix(tags.created[0], "2.1.1|") {
		t.Fatalf("unexpected tags: %v", tags.created)
	}
}

func TestBump_ChoosePartOverrideWins(t *testing.T) {
	tags := &fakeTags{installed: true, isRepo: true, latest: "2.1.0"}
	uc := NewBumpRelease(tags, &fakePrompter{}, nil)

	opts := bumpOpts("/repo")
	opts.ChoosePart = func() (domain.Part, error) { return domain.PartMajor, nil }

	if err := uc.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(tags.created) != 1 || !strings.HasPrefix(tags.created[0], "3.0.0|") {
		t.Fatalf("unexpected tags: %v", tags.created)
	}
}

func TestBump_PreviewTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "setup.py")
	if err := os.WriteFile(file, []byte("2.1.0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tags := &fakeTags{installed: true, isRepo: true, latest: "2.1.0"}
	uc := NewBumpRelease(tags, &fakePrompter{}, nil)

	var out bytes.Buffer
	opts := bumpOpts(dir)
	opts.Part = domain.PartPatch
	opts.Files = []string{file}
	opts.Preview = true
	opts.Out = &out

	if err := uc.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	b, _ := os.ReadFile(file)
	if string(b) != "2.1.0\n" {
		t.Fatalf("preview must not modify files, got %q", b)
	}
	if len(tags.created) != 0 {
		t.Fatalf("preview must not create tags, got %v", tags.created)
	}

	wantDiff := strings.Join([]string{
		"Version Diff:",
		"- 2.1.0",
		"?     ^",
		"+ 2.1.1",
		"?     ^",
	}, "\n")
	if !strings.Contains(out.String(), wantDiff) {
		t.Fatalf("missing version diff:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "-2.1.0") || !strings.Contains(out.String(), "+2.1.1") {
		t.Fatalf("missing file diff:\n%s", out.String())
	}
}

func TestBump_FilesCommittedOnConfirm(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "setup.py")
	if err := os.WriteFile(file, []byte("version = '2.1.0'\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tags := &fakeTags{installed: true, isRepo: true, latest: "2.1.0"}
	p := &fakePrompter{confirms: []bool{true}}
	uc := NewBumpRelease(tags, p, nil)

	opts := bumpOpts(dir)
	opts.Part = domain.PartPatch
	opts.Files = []string{file}
	opts.NoTag = true

	if err := uc.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	b, _ := os.ReadFile(file)
	if string(b) != "version = '2.1.1'\n" {
		t.Fatalf("expected rewritten file, got %q", b)
	}
	if len(tags.added) != 1 || tags.added[0][0] != file {
		t.Fatalf("expected git add of %s, got %v", file, tags.added)
	}
	if len(tags.commits) != 1 || tags.commits[0] != "bump version number" {
		t.Fatalf("unexpected commits: %v", tags.commits)
	}
	if len(tags.created) != 0 {
		t.Fatalf("--no-tag must skip tag creation, got %v", tags.created)
	}
}

func TestBump_CommitSkippedOnDecline(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "setup.py")
	if err := os.WriteFile(file, []byte("2.1.0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tags := &fakeTags{installed: true, isRepo: true, latest: "2.1.0"}
	p := &fakePrompter{confirms: []bool{false}}
	uc := NewBumpRelease(tags, p, nil)

	opts := bumpOpts(dir)
	opts.Part = domain.PartPatch
	opts.Files = []string{file}
	opts.NoTag = true

	if err := uc.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(tags.added) != 0 || len(tags.commits) != 0 {
		t.Fatalf("decline must skip add/commit, got %v %v", tags.added, tags.commits)
	}
}

func TestBump_UnparseableTag(t *testing.T) {
	tags := &fakeTags{installed: true, isRepo: true, latest: "banana"}
	uc := NewBumpRelease(tags, &fakePrompter{}, nil)

	opts := bumpOpts("/repo")
	opts.Part = domain.PartPatch

	err := uc.Execute(context.Background(), opts)
	if err == nil {
		t.Fatal("expected error for unparseable tag")
	}
	if !strings.Contains(err.Error(), "invalid semantic version") {
		t.Fatalf("unexpected error: %v", err)
	}
}
