package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daydial/internal/logger"
	"github.com/julianstephens/daydial/internal/planner"
	"github.com/julianstephens/daydial/internal/storage"
	"github.com/julianstephens/daydial/internal/tui/components/activitylist"
	"github.com/julianstephens/daydial/internal/tui/components/dayplan"
	"github.com/julianstephens/daydial/internal/utils"
)

type SessionState int

const (
	StateDay SessionState = iota
	StateActivities
	StateConfirmArchive
)

var tabTitles = []string{"Day", "Activities"}

type ConfirmFormModel struct {
	Confirmed bool
}

type Model struct {
	store             storage.Provider
	planner           *planner.Planner
	state             SessionState
	keys              KeyMap
	help              help.Model
	dayPlan           dayplan.Model
	activityList      activitylist.Model
	form              *huh.Form
	confirmForm       *ConfirmFormModel
	archiveID         string
	date              time.Time
	status            string
	validationWarning string
	quitting          bool
	width             int
	height            int
}

func NewModel(store storage.Provider, p *planner.Planner) Model {
	m := Model{
		store:        store,
		planner:      p,
		state:        StateDay,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		dayPlan:      dayplan.New(0, 0),
		activityList: activitylist.New(nil, 0, 0),
		date:         p.Today(),
	}

	m.refreshDay()
	m.refreshActivities()
	m.updateValidationStatus()

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateDay {
		keys = append(keys, m.keys.PrevDay, m.keys.NextDay, m.keys.Toggle)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case StateDay:
		navigation = append(navigation, m.keys.PrevDay, m.keys.NextDay, m.keys.Today)
		actions = []key.Binding{m.keys.Toggle}
	case StateActivities:
		keys := activitylist.DefaultKeyMap()
		actions = []key.Binding{keys.Archive, keys.Unarchive}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshDay reloads the plan of the selected date
func (m *Model) refreshDay() {
	view, err := m.planner.Day(m.date)
	if err != nil {
		logger.Error("failed to load day", "date", utils.DateKey(m.date), "error", err)
		m.status = fmt.Sprintf("Error: %v", err)
		return
	}
	m.dayPlan.SetDay(view)
}

// refreshActivities reloads the catalog including archived entries
func (m *Model) refreshActivities() {
	activities, err := m.store.GetAllActivities(true)
	if err != nil {
		logger.Error("failed to load activities", "error", err)
		m.status = fmt.Sprintf("Error: %v", err)
		return
	}

	current := make(map[string]int)
	if streaks, err := m.planner.Streaks(m.planner.Today()); err == nil {
		for _, s := range streaks {
			current[s.Activity.ID] = s.Streak.Current
		}
	}

	items := make([]activitylist.Item, len(activities))
	for i, a := range activities {
		items[i] = activitylist.Item{Activity: a, Streak: current[a.ID]}
	}
	m.activityList.SetItems(items)
}

// updateValidationStatus runs validation and updates the warning message
func (m *Model) updateValidationStatus() {
	result, err := m.planner.Validate()
	if err != nil {
		m.validationWarning = "⚠ Validation unavailable"
		return
	}

	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

func newConfirmForm(title string, fm *ConfirmFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
