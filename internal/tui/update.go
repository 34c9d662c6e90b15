package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daydial/internal/tui/components/activitylist"
	"github.com/julianstephens/daydial/internal/tui/components/dayplan"
	"github.com/julianstephens/daydial/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width

		h, v := docStyle.GetFrameSize()
		// Tabs, status line and help footer
		height := size.Height - v - 4
		if height < 0 {
			height = 0
		}
		m.dayPlan.SetSize(size.Width-h, height)
		m.activityList.SetSize(size.Width-h, height)
		return m, nil
	}

	if m.state == StateConfirmArchive {
		return m.updateConfirmArchive(msg)
	}

	switch msg := msg.(type) {
	case dayplan.ToggleActivityMsg:
		completed, err := m.planner.ToggleActivity(msg.DateKey, msg.ActivityID)
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.status = "Marked incomplete"
		if completed {
			m.status = "Marked done"
		}
		m.refreshDay()
		m.refreshActivities()
		return m, nil

	case activitylist.ArchiveActivityMsg:
		m.archiveID = msg.Activity.ID
		m.confirmForm = &ConfirmFormModel{}
		m.form = newConfirmForm(fmt.Sprintf("Archive %q?", msg.Activity.Name), m.confirmForm)
		m.state = StateConfirmArchive
		return m, m.form.Init()

	case activitylist.UnarchiveActivityMsg:
		if err := m.store.UnarchiveActivity(msg.ID); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.status = "Activity restored"
		m.reloadAll()
		return m, nil

	case tea.KeyMsg:
		// Typing into the list filter must not trigger global keys
		filtering := m.state == StateActivities && m.activityList.FilterState() == list.Filtering
		if !filtering {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			case key.Matches(msg, m.keys.Tab):
				m.state = (m.state + 1) % SessionState(len(tabTitles))
				return m, nil
			case key.Matches(msg, m.keys.ShiftTab):
				m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
				return m, nil
			}
		}

		if m.state == StateDay {
			switch {
			case key.Matches(msg, m.keys.PrevDay):
				m.date = utils.AddDays(m.date, -1)
				m.status = ""
				m.refreshDay()
				return m, nil
			case key.Matches(msg, m.keys.NextDay):
				m.date = utils.AddDays(m.date, 1)
				m.status = ""
				m.refreshDay()
				return m, nil
			case key.Matches(msg, m.keys.Today):
				m.date = m.planner.Today()
				m.status = ""
				m.refreshDay()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateDay:
		m.dayPlan, cmd = m.dayPlan.Update(msg)
	case StateActivities:
		m.activityList, cmd = m.activityList.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConfirmArchive(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.archiveID = ""
		m.state = StateActivities
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.confirmForm.Confirmed && m.archiveID != "" {
			if err := m.store.ArchiveActivity(m.archiveID); err != nil {
				m.status = fmt.Sprintf("Error: %v", err)
			} else {
				m.status = "Activity archived"
				m.reloadAll()
			}
		}
		m.archiveID = ""
		m.state = StateActivities
	case huh.StateAborted:
		m.archiveID = ""
		m.state = StateActivities
	}
	return m, cmd
}

func (m *Model) reloadAll() {
	m.refreshDay()
	m.refreshActivities()
	m.updateValidationStatus()
}
