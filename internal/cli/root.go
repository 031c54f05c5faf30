package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Jackevansevo/taggy/internal/buildinfo"
	"github.com/Jackevansevo/taggy/internal/domain"
	"github.com/Jackevansevo/taggy/internal/infra/configfile"
	"github.com/Jackevansevo/taggy/internal/infra/gitrepo"
	"github.com/Jackevansevo/taggy/internal/infra/logger"
	"github.com/Jackevansevo/taggy/internal/ui/picker"
	"github.com/Jackevansevo/taggy/internal/ui/prompt"
	"github.com/Jackevansevo/taggy/internal/ui/render"
	"github.com/Jackevansevo/taggy/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", userMessage(err))
		os.Exit(1)
	}
}

// userMessage strips the operation/kind prefix so users see the plain
// diagnostic ("git executable not found on current $PATH, aborting"), not the
// wrapped form.
func userMessage(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Err != nil {
		return oe.Err.Error()
	}
	return err.Error()
}

func newRootCmd() *cobra.Command {
	var (
		files   []string
		message string
		noTag   bool
		preview bool
		noColor bool
		debug   bool
	)

	cmd := &cobra.Command{
		Use:           "taggy [major|minor|patch]",
		Short:         "Bump semantic versions and cut git tags",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       buildinfo.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noTag && len(files) == 0 {
				return fmt.Errorf("--files are required when --no-tag is set")
			}
			for _, f := range files {
				if _, err := os.Stat(f); err != nil {
					return fmt.Errorf("can't open %q: %w", f, err)
				}
			}

			var part domain.Part
			if len(args) == 1 {
				p, err := domain.ParsePart(args[0])
				if err != nil {
					return err
				}
				part = p
			}

			wd := workingDir()
			defer setupLogger(wd, debug)()

			cfg, err := configfile.Load(wd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("message") {
				message = cfg.Message
			}

			styles := render.DefaultDiffStyles()
			if noColor {
				styles = render.PlainDiffStyles()
			}

			opts := usecase.BumpOptions{
				Dir:     wd,
				Part:    part,
				Files:   files,
				Message: message,
				Initial: cfg.Initial,
				Preview: preview,
				NoTag:   noTag,
				Out:     cmd.OutOrStdout(),
				Styles:  styles,
			}
			if part == "" && term.IsTerminal(int(os.Stdin.Fd())) {
				opts.ChoosePart = picker.Run
			}

			uc := usecase.NewBumpRelease(
				gitrepo.New(),
				prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
				logger.L(),
			)
			return uc.Execute(cmd.Context(), opts)
		},
	}

	cmd.SetVersionTemplate("Current version: {{.Version}}\n")

	cmd.Flags().StringArrayVar(&files, "files", nil, "Files whose version strings get rewritten")
	cmd.Flags().StringVar(&message, "message", "version {}", "Tag message template ({} is replaced with the tag)")
	cmd.Flags().BoolVar(&noTag, "no-tag", false, "Rewrite files without creating a tag (requires --files)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Show the version and file diffs without changing anything")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored diff output")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .taggy/logs/taggy.log")

	cmd.AddCommand(publishCmd(&debug))
	cmd.AddCommand(lintCmd(&debug))
	return cmd
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)
	return wd
}

func setupLogger(root string, debug bool) func() {
	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: debug})
	logger.L().Info("cli.start", "build", buildinfo.String())
	return func() {
		if cleanup != nil {
			_ = cleanup()
		}
	}
}
