package toolrunner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Jackevansevo/taggy/internal/domain"
)

// Runner executes external tools. Tools are resolved through an optional
// prefix directory (a virtualenv's bin dir) before the ambient search path,
// so a project-local toolchain wins over globally installed copies.
type Runner struct {
	prefix string
	echo   bool
	stdout io.Writer
	stderr io.Writer
}

type Option func(*Runner)

// WithPrefix sets the localized bin directory checked before $PATH.
func WithPrefix(dir string) Option {
	return func(r *Runner) { r.prefix = dir }
}

// WithEcho prints each command line before running it.
func WithEcho(enabled bool) Option {
	return func(r *Runner) { r.echo = enabled }
}

func WithStdout(w io.Writer) Option {
	return func(r *Runner) { r.stdout = w }
}

func WithStderr(w io.Writer) Option {
	return func(r *Runner) { r.stderr = w }
}

func New(opts ...Option) *Runner {
	r := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolvePrefix returns root/<venvDir>/bin if it exists, else "".
func ResolvePrefix(root, venvDir string) string {
	if strings.TrimSpace(venvDir) == "" {
		return ""
	}
	bin := filepath.Join(root, venvDir, "bin")
	if info, err := os.Stat(bin); err == nil && info.IsDir() {
		return bin
	}
	return ""
}

func (r *Runner) Look(name string) (string, error) {
	if r.prefix != "" {
		p := filepath.Join(r.prefix, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &domain.OpError{
			Op:   "toolrunner.look",
			Kind: domain.KindToolMissing,
			Err:  fmt.Errorf("%s: %w", name, domain.ErrToolMissing),
		}
	}
	return path, nil
}

func (r *Runner) Run(ctx context.Context, argv []string, dir string) error {
	cmd, err := r.command(ctx, argv, dir)
	if err != nil {
		return err
	}
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if r.echo {
		fmt.Fprintf(r.stdout, "+ %s\n", strings.Join(argv, " "))
	}

	if err := cmd.Run(); err != nil {
		return &domain.OpError{
			Op:   "toolrunner.run",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%s: %w", argv[0], err),
		}
	}
	return nil
}

func (r *Runner) Output(ctx context.Context, argv []string, dir string) (string, error) {
	cmd, err := r.command(ctx, argv, dir)
	if err != nil {
		return "", err
	}
	cmd.Stderr = r.stderr

	out, err := cmd.Output()
	if err != nil {
		return "", &domain.OpError{
			Op:   "toolrunner.output",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%s: %w", argv[0], err),
		}
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *Runner) command(ctx context.Context, argv []string, dir string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, &domain.OpError{
			Op:   "toolrunner.run",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty command"),
		}
	}
	path, err := r.Look(argv[0])
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Dir = dir
	return cmd, nil
}
