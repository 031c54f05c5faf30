package toolrunner

import (
	"fmt"

	"github.com/Jackevansevo/taggy/internal/domain"
	"mvdan.cc/sh/v3/shell"
)

// SplitCommand breaks a configured command string into argv using shell word
// rules, so quoted arguments survive ("mypy --config 'my file.cfg'").
// Environment references are not expanded.
func SplitCommand(s string) ([]string, error) {
	fields, err := shell.Fields(s, func(string) string { return "" })
	if err != nil {
		return nil, &domain.OpError{
			Op:   "toolrunner.splitcommand",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse %q: %w", s, err),
		}
	}
	if len(fields) == 0 {
		return nil, &domain.OpError{
			Op:   "toolrunner.splitcommand",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty command %q", s),
		}
	}
	return fields, nil
}
