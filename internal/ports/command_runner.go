package ports

import "context"

// CommandRunner executes external tools, resolving them through a localized
// prefix (virtualenv bin dir) before falling back to the ambient search path.
type CommandRunner interface {
	// Look resolves a tool name to an executable path.
	Look(name string) (string, error)
	// Run executes argv in dir, streaming output to the runner's writers.
	Run(ctx context.Context, argv []string, dir string) error
	// Output executes argv in dir and returns its trimmed stdout.
	Output(ctx context.Context, argv []string, dir string) (string, error)
}
