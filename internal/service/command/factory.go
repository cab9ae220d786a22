package command

import (
	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/internal/service/state"
)

func NewCommands(
	st *state.GlobalState,
	repo core.HistoryRepository,
) []core.Command {
	return []core.Command{
		NewModelCommand(st),
		NewHistoryCommand(repo),
	}
}
