package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/Jackevansevo/taggy/internal/domain"
	"github.com/Jackevansevo/taggy/internal/ports"
)

// Publish builds a source distribution and uploads every artifact to the
// package index, then removes the generated directories. The run is gated on
// the upload tool being resolvable; when it is missing nothing is built.
type Publish struct {
	runner ports.CommandRunner
	log    *slog.Logger
}

func NewPublish(runner ports.CommandRunner, log *slog.Logger) *Publish {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Publish{runner: runner, log: log}
}

type PublishOptions struct {
	Root     string
	Config   domain.PublishConfig
	Out      io.Writer
	Progress bool // draw an upload progress bar on Out
}

func (uc *Publish) Execute(ctx context.Context, opts PublishOptions) error {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	cfg := opts.Config

	version, err := uc.runner.Output(ctx, cfg.VersionCmd, opts.Root)
	if err != nil {
		return err
	}
	uc.log.Info("publish.version", "package", cfg.Package, "version", version)
	fmt.Fprintf(out, "Publishing %s %s\n", cfg.Package, version)

	// Guard before any side effect: a missing upload tool must abort the run
	// with nothing built and nothing cleaned.
	tool := cfg.UploadTool()
	if _, err := uc.runner.Look(tool); err != nil {
		return &domain.OpError{
			Op:   "publish",
			Kind: domain.KindToolMissing,
			Err:  fmt.Errorf("%s executable not found (fix with: %s): %w", tool, cfg.Remedy, domain.ErrToolMissing),
		}
	}

	if err := CleanBytecode(filepath.Join(opts.Root, cfg.Package)); err != nil {
		return err
	}

	if err := uc.runner.Run(ctx, cfg.BuildCmd, opts.Root); err != nil {
		return err
	}

	distDir := filepath.Join(opts.Root, cfg.DistDir)
	files, err := listArtifacts(distDir)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("uploading"),
			progressbar.OptionSetWriter(out),
			progressbar.OptionClearOnFinish(),
		)
	}
	for _, name := range files {
		argv := append(slices.Clone(cfg.UploadCmd), filepath.Join(distDir, name))
		if err := uc.runner.Run(ctx, argv, opts.Root); err != nil {
			return err
		}
		uc.log.Info("publish.uploaded", "file", name)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	for _, dir := range []string{distDir, filepath.Join(opts.Root, cfg.Package+".egg-info")} {
		if err := os.RemoveAll(dir); err != nil {
			return &domain.OpError{
				Op:   "publish.cleanup",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
	}

	fmt.Fprintf(out, "Published %s %s (%d artifact(s))\n", cfg.Package, version, len(files))
	return nil
}

func listArtifacts(distDir string) ([]string, error) {
	entries, err := os.ReadDir(distDir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "publish.upload",
			Kind: domain.KindExecution,
			Path: distDir,
			Err:  err,
		}
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, &domain.OpError{
			Op:   "publish.upload",
			Kind: domain.KindExecution,
			Path: distDir,
			Err:  errors.New("no artifacts to upload"),
		}
	}
	return files, nil
}

// CleanBytecode removes compiled bytecode (*.pyc files and __pycache__
// directories) under root. A missing root is a no-op, so running it twice is
// equivalent to running it once.
func CleanBytecode(root string) error {
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if d.IsDir() && d.Name() == "__pycache__" {
			if err := os.RemoveAll(p); err != nil {
				return err
			}
			return fs.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".pyc") {
			return os.Remove(p)
		}
		return nil
	})
	if err != nil {
		return &domain.OpError{
			Op:   "publish.clean",
			Kind: domain.KindExecution,
			Path: root,
			Err:  err,
		}
	}
	return nil
}
