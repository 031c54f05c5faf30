package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jackevansevo/taggy/internal/domain"
)

// fakeRunner records every command and fails or answers according to its
// configuration.
type fakeRunner struct {
	missing map[string]bool   // tool name -> unresolvable
	outputs map[string]string // argv[0] -> stdout for Output
	failOn  string            // argv[0] that fails when run
	calls   [][]string
}

func (f *fakeRunner) Look(name string) (string, error) {
	if f.missing[name] {
		return "", &domain.OpError{
			Op:   "toolrunner.look",
			Kind: domain.KindToolMissing,
			Err:  fmt.Errorf("%s: %w", name, domain.ErrToolMissing),
		}
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(_ context.Context, argv []string, _ string) error {
	if _, err := f.Look(argv[0]); err != nil {
		return err
	}
	f.calls = append(f.calls, argv)
	if f.failOn != "" && argv[0] == f.failOn {
		return &domain.OpError{
			Op:   "toolrunner.run",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%s: exit status 1", argv[0]),
		}
	}
	return nil
}

func (f *fakeRunner) Output(ctx context.Context, argv []string, dir string) (string, error) {
	if err := f.Run(ctx, argv, dir); err != nil {
		return "", err
	}
	return f.outputs[argv[0]], nil
}

func (f *fakeRunner) ran(tool string) bool {
	for _, argv := range f.calls {
		if argv[0] == tool {
			return true
		}
	}
	return false
}

// fakeTags is an in-memory TagRepository.
type fakeTags struct {
	installed bool
	isRepo    bool
	latest    string

	initCalled bool
	created    []string // "tag|expanded message"
	added      [][]string
	commits    []string
}

func (f *fakeTags) Installed() bool                         { return f.installed }
func (f *fakeTags) IsRepo(_ context.Context, _ string) bool { return f.isRepo }

func (f *fakeTags) Init(_ context.Context, _ string) error {
	f.initCalled = true
	f.isRepo = true
	return nil
}

func (f *fakeTags) LatestTag(_ context.Context, _ string) (string, error) {
	if f.latest == "" {
		return "", &domain.OpError{Op: "gitrepo.latesttag", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return f.latest, nil
}

func (f *fakeTags) CreateTag(_ context.Context, _ string, tag, messageTemplate string) error {
	message := strings.ReplaceAll(messageTemplate, "{}", tag)
	f.created = append(f.created, tag+"|"+message)
	return nil
}

func (f *fakeTags) Add(_ context.Context, _ string, files []string) error {
	f.added = append(f.added, files)
	return nil
}

func (f *fakeTags) Commit(_ context.Context, _ string, message string) error {
	f.commits = append(f.commits, message)
	return nil
}

// fakePrompter answers confirms and choices from queues.
type fakePrompter struct {
	confirms []bool
	choice   string

	confirmLabels []string
}

func (f *fakePrompter) Confirm(label string) (bool, error) {
	f.confirmLabels = append(f.confirmLabels, label)
	if len(f.confirms) == 0 {
		return false, nil
	}
	ans := f.confirms[0]
	f.confirms = f.confirms[1:]
	return ans, nil
}

func (f *fakePrompter) Choice(_ string, choices []string, _ bool) (string, error) {
	for _, c := range choices {
		if strings.EqualFold(c, f.choice) {
			return c, nil
		}
	}
	return "", &domain.OpError{Op: "prompt.read", Kind: domain.KindAborted, Err: domain.ErrAborted}
}
