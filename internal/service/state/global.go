// Package state holds the per-session mutable settings a chat session can
// change without restarting.
package state

import (
	"fmt"

	"github.com/quillhq/quill/internal/config"
)

// KnownModels are the completion variants the tool accepts.
var KnownModels = []string{"text-davinci-003", "text-curie-001", "text-ada-001"}

type GlobalState struct {
	cfg *config.AppConfig
}

func NewGlobalState(cfg *config.AppConfig) *GlobalState {
	return &GlobalState{cfg: cfg}
}

func (s *GlobalState) Model() string {
	return s.cfg.Model
}

func (s *GlobalState) ChangeModel(model string) error {
	for _, known := range KnownModels {
		if model == known {
			s.cfg.Model = model
			return nil
		}
	}
	return fmt.Errorf("unknown model %q, expected one of %v", model, KnownModels)
}
