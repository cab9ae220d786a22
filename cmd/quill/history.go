package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/service/ui"
	"github.com/quillhq/quill/internal/storage/sqlite"
	"github.com/quillhq/quill/pkg/log"
	"github.com/spf13/cobra"
)

var historyCount int

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "List recent stored interactions",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg := config.NewAppConfig(ctx)
		appCfg.RuntimePath = config.GetRuntimePath()

		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := sqlite.NewHistory(db).GetRecent(ctx, historyCount)
		if err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("failed to read history")
			return err
		}
		if len(records) == 0 {
			fmt.Println("No stored interactions yet.")
			return nil
		}

		for _, rec := range records {
			header := fmt.Sprintf("[%s] importance %d, %d tokens, %s",
				rec.CreatedAt.Format("2006-01-02 15:04"), rec.Importance, rec.Tokens, rec.Model)
			fmt.Fprintln(os.Stdout, ui.UsageStyle.Render(header))
			fmt.Fprintln(os.Stdout, "  "+firstLine(rec.Prompt, 100))
		}
		return nil
	},
}

func firstLine(text string, max int) string {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\n", " ")
	runes := []rune(text)
	if len(runes) > max {
		return string(runes[:max]) + "…"
	}
	return text
}

func init() {
	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 10, "number of interactions to list")
	rootCmd.AddCommand(historyCmd)
}
