package cli

import (
	"github.com/spf13/cobra"

	"github.com/Jackevansevo/taggy/internal/infra/configfile"
	"github.com/Jackevansevo/taggy/internal/infra/logger"
	"github.com/Jackevansevo/taggy/internal/infra/toolrunner"
	"github.com/Jackevansevo/taggy/internal/usecase"
)

func lintCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Run the style, import-order and type checkers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wd := workingDir()
			defer setupLogger(wd, *debug)()

			cfg, err := configfile.Load(wd)
			if err != nil {
				return err
			}

			prefix := toolrunner.ResolvePrefix(wd, cfg.Publish.VenvDir)
			// Echo each command line so failures point at the tool that
			// produced them.
			runner := toolrunner.New(
				toolrunner.WithPrefix(prefix),
				toolrunner.WithEcho(true),
				toolrunner.WithStdout(cmd.OutOrStdout()),
				toolrunner.WithStderr(cmd.ErrOrStderr()),
			)

			uc := usecase.NewLint(runner, logger.L())
			return uc.Execute(cmd.Context(), wd, cfg.Lint)
		},
	}
}
