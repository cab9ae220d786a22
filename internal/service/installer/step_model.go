package installer

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ModelStep selects the main interaction model.
type ModelStep struct {
	list list.Model
}

func NewModelStep() Step {
	items := []list.Item{
		item{id: "text-davinci-003", title: "text-davinci-003", desc: "Most capable, default choice"},
		item{id: "text-curie-001", title: "text-curie-001", desc: "Faster and cheaper"},
		item{id: "text-ada-001", title: "text-ada-001", desc: "Fastest, simple tasks only"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select main model"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	return &ModelStep{list: l}
}

func (s *ModelStep) Init() tea.Cmd {
	return nil
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	s.list.SetSize(width, height-4)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if i, ok := s.list.SelectedItem().(item); ok {
			state.EnvVars["QUILL_MODEL"] = i.id
			return nil, nil
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	return s.list.View()
}

// SummaryModelStep selects the cheaper variant used for background
// summarization.
type SummaryModelStep struct {
	list list.Model
}

func NewSummaryModelStep() Step {
	items := []list.Item{
		item{id: "text-curie-001", title: "text-curie-001", desc: "Good summaries at low cost (default)"},
		item{id: "text-ada-001", title: "text-ada-001", desc: "Cheapest"},
		item{id: "text-davinci-003", title: "text-davinci-003", desc: "Best summaries, full price"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select summary model"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	return &SummaryModelStep{list: l}
}

func (s *SummaryModelStep) Init() tea.Cmd {
	return nil
}

func (s *SummaryModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	s.list.SetSize(width, height-4)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if i, ok := s.list.SelectedItem().(item); ok {
			state.EnvVars["QUILL_SUMMARY_MODEL"] = i.id
			return nil, nil
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *SummaryModelStep) View(state *InstallState) string {
	return s.list.View()
}
