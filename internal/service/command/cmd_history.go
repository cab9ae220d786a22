package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/quillhq/quill/internal/core"
)

const defaultHistoryLimit = 5

type HistoryCommand struct {
	repo core.HistoryRepository
}

func NewHistoryCommand(repo core.HistoryRepository) *HistoryCommand {
	return &HistoryCommand{repo: repo}
}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "List recent stored interactions"
}

func (c *HistoryCommand) Execute(ctx context.Context, args []string) (string, error) {
	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return "", fmt.Errorf("usage: /history [count]")
		}
		limit = n
	}

	records, err := c.repo.GetRecent(ctx, limit)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "No stored interactions yet.", nil
	}

	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(fmt.Sprintf("[%s] importance %d, %d tokens, %s\n  %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.Importance, rec.Tokens, rec.Model,
			snippet(rec.Prompt, 80)))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// snippet truncates on runes so a multi-byte character at the boundary is
// dropped whole, not split.
func snippet(text string, max int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}
