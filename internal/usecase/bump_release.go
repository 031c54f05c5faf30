package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Jackevansevo/taggy/internal/domain"
	"github.com/Jackevansevo/taggy/internal/ports"
	"github.com/Jackevansevo/taggy/internal/ui/render"
	ucrewrite "github.com/Jackevansevo/taggy/internal/usecase/rewrite"
)

// BumpRelease drives the interactive release flow: precondition checks,
// finding the current tag, bumping it, rewriting version strings in files and
// cutting the new annotated tag.
type BumpRelease struct {
	tags     ports.TagRepository
	prompter ports.Prompter
	log      *slog.Logger
}

func NewBumpRelease(tags ports.TagRepository, prompter ports.Prompter, log *slog.Logger) *BumpRelease {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &BumpRelease{tags: tags, prompter: prompter, log: log}
}

type BumpOptions struct {
	Dir     string
	Part    domain.Part // empty: ask interactively
	Files   []string
	Message string // tag message template, "{}" replaced with the tag
	Initial string // first tag when the repository has none
	Preview bool
	NoTag   bool

	// ChoosePart overrides the line prompt (the TTY picker hooks in here).
	ChoosePart func() (domain.Part, error)

	Out    io.Writer
	Styles render.DiffStyles
}

func (uc *BumpRelease) Execute(ctx context.Context, opts BumpOptions) error {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	if err := uc.runChecks(ctx, opts.Dir); err != nil {
		return err
	}

	current, err := uc.tags.LatestTag(ctx, opts.Dir)
	if err != nil || current == "" {
		return uc.createInitialTag(ctx, opts, out)
	}

	prefix, verstr := domain.StripPrefix(current)
	version, err := domain.ParseSemver(verstr)
	if err != nil {
		return err
	}

	part := opts.Part
	if part == "" {
		part, err = uc.choosePart(opts)
		if err != nil {
			return err
		}
	}

	next := version.Bump(part)
	nextTag := prefix + next.String()
	uc.log.Info("bump.computed", "current", current, "next", nextTag, "part", string(part))

	// The diff block belongs to preview; a plain bump prints only the
	// success line.
	if opts.Preview {
		fmt.Fprintf(out, "\nVersion Diff:\n%s\n", render.VersionDiff(current, nextTag))
	}

	if len(opts.Files) > 0 {
		if err := uc.rewriteFiles(opts, verstr, next.String(), out); err != nil {
			return err
		}
	}

	if opts.Preview {
		return nil
	}

	if len(opts.Files) > 0 {
		ok, err := uc.prompter.Confirm("Commit changes?")
		if err != nil {
			return err
		}
		if ok {
			if err := uc.tags.Add(ctx, opts.Dir, opts.Files); err != nil {
				return err
			}
			if err := uc.tags.Commit(ctx, opts.Dir, "bump version number"); err != nil {
				return err
			}
		}
	}

	if opts.NoTag {
		return nil
	}

	if err := uc.tags.CreateTag(ctx, opts.Dir, nextTag, opts.Message); err != nil {
		return err
	}
	uc.log.Info("bump.tag_created", "tag", nextTag)
	fmt.Fprintf(out, "Created new tag: %s\n", nextTag)
	return nil
}

// runChecks verifies git is usable in opts.Dir, offering to initialize a
// repository when there is none.
func (uc *BumpRelease) runChecks(ctx context.Context, dir string) error {
	if !uc.tags.Installed() {
		return &domain.OpError{
			Op:   "bump.checks",
			Kind: domain.KindToolMissing,
			Err:  errors.New("git executable not found on current $PATH, aborting"),
		}
	}

	if uc.tags.IsRepo(ctx, dir) {
		return nil
	}

	ok, err := uc.prompter.Confirm(fmt.Sprintf("%s is not a git repository, create one?", dir))
	if err != nil {
		return err
	}
	if !ok {
		return &domain.OpError{
			Op:   "bump.checks",
			Kind: domain.KindAborted,
			Path: dir,
			Err:  fmt.Errorf("%s not a git repository", dir),
		}
	}
	return uc.tags.Init(ctx, dir)
}

func (uc *BumpRelease) createInitialTag(ctx context.Context, opts BumpOptions, out io.Writer) error {
	ok, err := uc.prompter.Confirm(fmt.Sprintf("No existing tags found, create initial tag %s?", opts.Initial))
	if err != nil {
		return err
	}
	if !ok {
		return &domain.OpError{
			Op:   "bump.initial",
			Kind: domain.KindAborted,
			Err:  domain.ErrAborted,
		}
	}

	if err := uc.tags.CreateTag(ctx, opts.Dir, opts.Initial, opts.Message); err != nil {
		return err
	}
	uc.log.Info("bump.tag_created", "tag", opts.Initial)
	fmt.Fprintf(out, "Created new tag: %s\n", opts.Initial)
	return nil
}

func (uc *BumpRelease) choosePart(opts BumpOptions) (domain.Part, error) {
	if opts.ChoosePart != nil {
		return opts.ChoosePart()
	}

	ans, err := uc.prompter.Choice(
		"Choose: [M]ajor/[m]inor/[p]atch: ",
		[]string{"Major", "minor", "patch"},
		true,
	)
	if err != nil {
		return "", err
	}
	return domain.ParsePart(strings.ToLower(ans))
}

func (uc *BumpRelease) rewriteFiles(opts BumpOptions, oldVersion, newVersion string, out io.Writer) error {
	for _, path := range opts.Files {
		diff, err := ucrewrite.File(path, oldVersion, newVersion, opts.Preview)
		if err != nil {
			return err
		}
		if diff != "" {
			fmt.Fprintf(out, "\n%s", opts.Styles.Colorize(diff))
		}
	}
	return nil
}
