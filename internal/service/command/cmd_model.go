package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillhq/quill/internal/service/state"
)

type ModelCommand struct {
	state *state.GlobalState
}

func NewModelCommand(st *state.GlobalState) *ModelCommand {
	return &ModelCommand{state: st}
}

func (c *ModelCommand) Name() string {
	return "model"
}

func (c *ModelCommand) Description() string {
	return "Show or change the current model"
}

func (c *ModelCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return fmt.Sprintf("Current model: %s\nAvailable: %s\nUsage: /model <name>",
			c.state.Model(), strings.Join(state.KnownModels, ", ")), nil
	}

	if err := c.state.ChangeModel(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Model changed to %s", c.state.Model()), nil
}
