package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Jackevansevo/taggy/internal/infra/configfile"
	"github.com/Jackevansevo/taggy/internal/infra/logger"
	"github.com/Jackevansevo/taggy/internal/infra/toolrunner"
	"github.com/Jackevansevo/taggy/internal/usecase"
)

func publishCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Build a source distribution and upload it to the package index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wd := workingDir()
			defer setupLogger(wd, *debug)()

			cfg, err := configfile.Load(wd)
			if err != nil {
				return err
			}

			prefix := toolrunner.ResolvePrefix(wd, cfg.Publish.VenvDir)
			runner := toolrunner.New(toolrunner.WithPrefix(prefix))

			uc := usecase.NewPublish(runner, logger.L())
			return uc.Execute(cmd.Context(), usecase.PublishOptions{
				Root:     wd,
				Config:   cfg.Publish,
				Out:      cmd.OutOrStdout(),
				Progress: term.IsTerminal(int(os.Stdout.Fd())),
			})
		},
	}
}
