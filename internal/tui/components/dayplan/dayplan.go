package dayplan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/planner"
	"github.com/julianstephens/daydial/internal/streak"
)

var (
	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Strikethrough(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// ToggleActivityMsg asks the parent to toggle an activity on a date.
type ToggleActivityMsg struct {
	DateKey    string
	ActivityID string
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

type Model struct {
	viewport viewport.Model
	keys     KeyMap
	Day      *planner.DayView
	cursor   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		keys:     DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.Day != nil {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.Render()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.Day.Activities)-1 {
				m.cursor++
			}
			m.Render()
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if row, ok := m.Selected(); ok {
				dateKey := m.Day.Key
				return m, func() tea.Msg {
					return ToggleActivityMsg{DateKey: dateKey, ActivityID: row.Activity.ID}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Day == nil {
		return "No plan loaded."
	}
	return m.viewport.View()
}

// Selected returns the row under the cursor.
func (m Model) Selected() (planner.ActivityView, bool) {
	if m.Day == nil || m.cursor < 0 || m.cursor >= len(m.Day.Activities) {
		return planner.ActivityView{}, false
	}
	return m.Day.Activities[m.cursor], true
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetDay replaces the plan. The cursor follows the selected activity when
// it is still present, since toggling reorders incomplete rows first.
func (m *Model) SetDay(view planner.DayView) {
	selected := ""
	if row, ok := m.Selected(); ok && m.Day.Key == view.Key {
		selected = row.Activity.ID
	}

	m.Day = &view
	m.cursor = 0
	for i, row := range view.Activities {
		if row.Activity.ID == selected {
			m.cursor = i
			break
		}
	}
	m.Render()
}

func (m *Model) Render() {
	if m.Day == nil {
		m.viewport.SetContent("No plan loaded.")
		return
	}

	var b strings.Builder
	header := m.Day.Date.Format("Monday, Jan 2 2006")
	switch {
	case m.Day.IsToday:
		header += " (today)"
	case m.Day.FromSnapshot:
		header += " (recorded)"
	}
	b.WriteString(nameStyle.Render(header) + "\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d/%d hours completed", m.Day.Completed, m.Day.Planned)) + "\n\n")

	if len(m.Day.Activities) == 0 {
		b.WriteString(statusStyle.Render("Nothing planned."))
		m.viewport.SetContent(b.String())
		return
	}

	for i, row := range m.Day.Activities {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}

		mark := "○"
		name := nameStyle.Render(row.Activity.Name)
		if row.Completed {
			mark = "✓"
			name = doneStyle.Render(row.Activity.Name)
		}
		if row.Activity.Icon != "" {
			name = row.Activity.Icon + " " + name
		}

		status := fmt.Sprintf("%d/%d", row.CompletedHours, len(row.Activity.Slots))
		if row.Tier != streak.TierNone {
			status += " " + cli.FormatStreak(row.Streak.Current)
		}

		fmt.Fprintf(&b, "%s%s %s %s %s\n",
			pointer,
			mark,
			slotStyle.Render(cli.FormatSlots(row.Activity.Slots)),
			name,
			statusStyle.Render(status),
		)
	}
	m.viewport.SetContent(b.String())
}
