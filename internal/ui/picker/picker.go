package picker

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jackevansevo/taggy/internal/domain"
)

type item struct {
	part domain.Part
	desc string
}

func (i item) Title() string       { return string(i.part) }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return string(i.part) }

// Model is a minimal bump-part selector shown when no part was given on the
// command line and stdin is a terminal.
type Model struct {
	list   list.Model
	choice domain.Part
	card   lipgloss.Style
}

func New() Model {
	items := []list.Item{
		item{domain.PartMajor, "Incompatible changes"},
		item{domain.PartMinor, "Backwards-compatible functionality"},
		item{domain.PartPatch, "Backwards-compatible fixes"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Bump which part?"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return Model{
		list: l,
		card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

// Choice is the selected part, empty when the picker was dismissed.
func (m Model) Choice() domain.Part { return m.choice }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.part
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.card.Render(m.list.View())
}

// Run shows the picker and returns the chosen part. Dismissing the picker
// without a selection aborts.
func Run() (domain.Part, error) {
	p := tea.NewProgram(New())
	out, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := out.(Model)
	if !ok || m.choice == "" {
		return "", &domain.OpError{
			Op:   "picker.run",
			Kind: domain.KindAborted,
			Err:  domain.ErrAborted,
		}
	}
	return m.choice, nil
}
