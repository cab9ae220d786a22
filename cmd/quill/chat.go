package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/service/command"
	"github.com/quillhq/quill/internal/service/state"
	"github.com/quillhq/quill/internal/transport/cli"
	"github.com/quillhq/quill/pkg/log"
	"github.com/quillhq/quill/pkg/srv"
	"github.com/spf13/cobra"
)

var chatRaw bool

var chatCmd = &cobra.Command{
	Use:          "chat",
	Short:        "Start an interactive chat session",
	Long:         `Opens a readline prompt where every line runs the full interaction flow. Lines starting with / are session commands (/model, /history).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		prompter, err := cli.NewPrompter(config.GetRuntimePath())
		if err != nil {
			return err
		}

		d, err := newDeps(ctx, prompter)
		if err != nil {
			prompter.Close()
			return err
		}

		st := state.NewGlobalState(d.appCfg)
		router := command.New(command.NewCommands(st, d.repo))

		repl := cli.NewREPL(d.appCfg, d.assistant, router, prompter, chatRaw)

		services := []srv.Service{
			srv.NewCleanup(d.Close),
			srv.NewCleanup(prompter.Close),
		}
		srv.StartServices(ctx, services)

		// The REPL owns the foreground, the service list only holds cleanups.
		err = repl.Start(ctx)
		stop()
		srv.ShutdownServices(ctx, services)

		if err != nil && err != context.Canceled {
			return err
		}
		logger.Info().Msg("chat session closed")
		return nil
	},
}

func init() {
	chatCmd.Flags().BoolVar(&chatRaw, "raw", false, "print replies without markdown rendering")
	rootCmd.AddCommand(chatCmd)
}
