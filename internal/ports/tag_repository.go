package ports

import "context"

// TagRepository abstracts the git operations the bump workflow needs.
type TagRepository interface {
	// Installed reports whether the git executable is on the search path.
	Installed() bool
	IsRepo(ctx context.Context, dir string) bool
	Init(ctx context.Context, dir string) error
	// LatestTag returns the most recent tag reachable from HEAD. A repository
	// with no tags returns ErrNotFound (wrapped).
	LatestTag(ctx context.Context, dir string) (string, error)
	// CreateTag creates an annotated tag. "{}" in the message template is
	// replaced with the tag name.
	CreateTag(ctx context.Context, dir, tag, messageTemplate string) error
	Add(ctx context.Context, dir string, files []string) error
	Commit(ctx context.Context, dir, message string) error
}
