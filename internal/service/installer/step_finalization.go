package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep fills in derived defaults before saving.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.EnvVars["QUILL_DEBUG"] == "" {
		state.EnvVars["QUILL_DEBUG"] = "0"
	}

	// The classifier always wants the most capable variant.
	if state.EnvVars["QUILL_CLASSIFIER_MODEL"] == "" {
		state.EnvVars["QUILL_CLASSIFIER_MODEL"] = "text-davinci-003"
	}

	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
