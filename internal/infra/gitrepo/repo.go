package gitrepo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Jackevansevo/taggy/internal/domain"
)

// Repo talks to git through the CLI. All commands run with the repository
// directory as working directory.
type Repo struct {
	git string // executable name, overridable for tests
}

func New() *Repo {
	return &Repo{git: "git"}
}

func (r *Repo) Installed() bool {
	_, err := exec.LookPath(r.git)
	return err == nil
}

func (r *Repo) IsRepo(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, r.git, "rev-parse", "--git-dir")
	cmd.Dir = dir
	return cmd.Run() == nil
}

func (r *Repo) Init(ctx context.Context, dir string) error {
	return r.run(ctx, dir, "init")
}

// LatestTag returns the most recent tag reachable from HEAD. Repositories
// without tags (or without commits) yield ErrNotFound.
func (r *Repo) LatestTag(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, r.git, "describe", "--tags", "--abbrev=0")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", &domain.OpError{
			Op:   "gitrepo.latesttag",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  domain.ErrNotFound,
		}
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *Repo) CreateTag(ctx context.Context, dir, tag, messageTemplate string) error {
	message := strings.ReplaceAll(messageTemplate, "{}", tag)
	return r.run(ctx, dir, "tag", "-a", tag, "-m", message)
}

func (r *Repo) Add(ctx context.Context, dir string, files []string) error {
	return r.run(ctx, dir, append([]string{"add"}, files...)...)
}

func (r *Repo) Commit(ctx context.Context, dir, message string) error {
	return r.run(ctx, dir, "commit", "-m", message)
}

func (r *Repo) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, r.git, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &domain.OpError{
			Op:   "gitrepo." + args[0],
			Kind: domain.KindExecution,
			Path: dir,
			Err:  fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out))),
		}
	}
	return nil
}
