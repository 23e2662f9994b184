package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/timeutil"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case constants.StateEditTime:
			return m.updateEditTime(msg)
		case constants.StateConfirmCopy:
			return m.updateConfirmCopy(msg)
		case constants.StateConfirmQuit:
			return m.updateConfirmQuit(msg)
		default:
			return m.updateWeek(msg)
		}
	}
	return m, nil
}

func (m Model) updateWeek(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty {
			m.state = constants.StateConfirmQuit
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		for day := 0; day < 7; day++ {
			if !m.week.IsComplete(day) {
				m.statusMsg = dangerStyle.Render(DayLabel(day) + " has incomplete or inverted times; fix before saving")
				return m, nil
			}
		}
		m.saved = true
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.day = (m.day + 6) % 7
		m.interval = 0

	case key.Matches(msg, m.keys.Down):
		m.day = (m.day + 1) % 7
		m.interval = 0

	case key.Matches(msg, m.keys.Left):
		if m.interval > 0 {
			m.interval--
		}

	case key.Matches(msg, m.keys.Right):
		if m.interval < m.intervalCount()-1 {
			m.interval++
		}

	case key.Matches(msg, m.keys.Toggle):
		m.week.ToggleDay(m.day)
		m.clampInterval()
		m.dirty = true

	case key.Matches(msg, m.keys.Add):
		m.week.AddInterval(m.day, nil)
		m.interval = m.intervalCount() - 1
		m.dirty = true

	case key.Matches(msg, m.keys.Remove):
		if m.intervalCount() > 0 {
			m.week.RemoveInterval(m.day, m.interval)
			m.clampInterval()
			m.dirty = true
		}

	case key.Matches(msg, m.keys.Edit):
		if m.intervalCount() == 0 {
			break
		}
		m.state = constants.StateEditTime
		m.editField = constants.IntervalFieldStart
		m.input.SetValue(m.week.Intervals(m.day)[m.interval].Start)
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		offer := m.week.CopySourceForDay(m.day)
		if offer == nil {
			m.statusMsg = warningStyle.Render("nothing to copy: no day has intervals yet")
			break
		}
		m.copyOffer = offer
		m.state = constants.StateConfirmCopy

	case key.Matches(msg, m.keys.HelpKey):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) updateEditTime(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = constants.StateWeek
		m.input.Blur()
		return m, nil

	case "enter":
		m.week.UpdateInterval(m.day, m.interval, m.editField, m.input.Value())
		m.dirty = true
		if m.editField == constants.IntervalFieldStart {
			m.editField = constants.IntervalFieldEnd
			m.input.SetValue(m.week.Intervals(m.day)[m.interval].End)
			return m, nil
		}
		m.state = constants.StateWeek
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Live mask: keep whatever is typed in HH:MM shape.
	m.input.SetValue(timeutil.FormatPartialTime(m.input.Value()))
	return m, cmd
}

func (m Model) updateConfirmCopy(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.week.ApplyCopy(m.day, m.copyOffer)
		m.copyOffer = nil
		m.state = constants.StateWeek
		m.clampInterval()
		m.dirty = true
	case "n", "N", "esc", "q":
		m.copyOffer = nil
		m.state = constants.StateWeek
	}
	return m, nil
}

func (m Model) updateConfirmQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.quitting = true
		return m, tea.Quit
	case "n", "N", "esc":
		m.state = constants.StateWeek
	}
	return m, nil
}
