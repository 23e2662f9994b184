// Package tui is the interactive weekly-availability editor. It owns only
// the in-memory snapshot; persistence stays with the caller, which reads
// the edited week back after the program exits.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meetly-app/meetly-cli/internal/availability"
	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/models"
)

// KeyMap defines the editor's key bindings
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Remove  key.Binding
	Edit    key.Binding
	Copy    key.Binding
	Save    key.Binding
	Quit    key.Binding
	HelpKey key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous day")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next day")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous interval")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next interval")),
		Toggle:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle day")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add interval")),
		Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove interval")),
		Edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit times")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy from previous day")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		HelpKey: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp returns the bindings shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Edit, k.Copy, k.Save, k.Quit}
}

// FullHelp returns all bindings
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Add, k.Remove, k.Edit},
		{k.Copy, k.Save, k.Quit},
	}
}

type Model struct {
	week      *availability.Week
	locale    models.LocaleContext
	state     constants.SessionState
	keys      KeyMap
	help      help.Model
	input     textinput.Model
	editField constants.IntervalField
	day       int
	interval  int
	copyOffer *availability.CopySource
	statusMsg string
	saved     bool
	dirty     bool
	quitting  bool
}

// New builds an editor over a copy of the given slots.
func New(slots []models.WeeklySlot, locale models.LocaleContext) Model {
	input := textinput.New()
	input.Placeholder = "HH:MM"
	input.CharLimit = 5
	input.Width = 7

	return Model{
		week:   availability.NewWeek(slots),
		locale: locale,
		state:  constants.StateWeek,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  input,
		day:    1, // start on Monday, where most editing happens
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Saved reports whether the user confirmed the edit.
func (m Model) Saved() bool { return m.saved }

// Week returns the edited snapshot.
func (m Model) Week() *availability.Week { return m.week }

// intervalCount returns how many intervals the selected day has.
func (m Model) intervalCount() int {
	return len(m.week.Intervals(m.day))
}

// clampInterval keeps the interval cursor inside the selected day's bucket.
func (m *Model) clampInterval() {
	count := m.intervalCount()
	if count == 0 {
		m.interval = 0
		return
	}
	if m.interval >= count {
		m.interval = count - 1
	}
	if m.interval < 0 {
		m.interval = 0
	}
}
