package activitylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/models"
)

type ArchiveActivityMsg struct {
	Activity models.Activity
}

type UnarchiveActivityMsg struct {
	ID string
}

type Item struct {
	Activity models.Activity
	Streak   int
}

func (i Item) Title() string {
	title := i.Activity.Name
	if i.Activity.Icon != "" {
		title = i.Activity.Icon + " " + title
	}
	if i.Activity.IsArchived {
		return "[ARCHIVED] " + title
	}
	return title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %s", cli.FormatSlots(i.Activity.Slots), cli.FormatDays(i.Activity))
	if i.Activity.IsArchived {
		return desc + " | restore with 'u'"
	}
	if i.Streak > 0 {
		desc += fmt.Sprintf(" | streak %d", i.Streak)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Activity.Name }

type KeyMap struct {
	Archive   key.Binding
	Unarchive key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Unarchive: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unarchive"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Activities"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Archive, keys.Unarchive}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Archive, keys.Unarchive}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Archive):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.Activity.IsArchived {
				return m, func() tea.Msg { return ArchiveActivityMsg{Activity: i.Activity} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Unarchive):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Activity.IsArchived {
				return m, func() tea.Msg { return UnarchiveActivityMsg{ID: i.Activity.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No activities yet.\n  Add one with 'daydial activity add'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) FilterState() list.FilterState {
	return m.list.FilterState()
}
