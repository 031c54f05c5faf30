package usecase

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/Jackevansevo/taggy/internal/domain"
	"github.com/Jackevansevo/taggy/internal/ports"
)

// Lint runs the configured check commands over the configured paths, in
// order. The first failing check aborts the sequence and its error is the
// run's result.
type Lint struct {
	runner ports.CommandRunner
	log    *slog.Logger
}

func NewLint(runner ports.CommandRunner, log *slog.Logger) *Lint {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Lint{runner: runner, log: log}
}

func (uc *Lint) Execute(ctx context.Context, root string, cfg domain.LintConfig) error {
	for _, check := range cfg.Checks {
		argv := append(slices.Clone(check), cfg.Paths...)
		uc.log.Debug("lint.check", "command", strings.Join(argv, " "))

		if err := uc.runner.Run(ctx, argv, root); err != nil {
			uc.log.Info("lint.failed", "tool", argv[0])
			return err
		}
	}
	return nil
}
