package terminal

import (
	"fmt"
	"strings"

	"interviewtimer/internal/control"
	"interviewtimer/internal/core/model"
	"interviewtimer/internal/core/settings"
	"interviewtimer/internal/core/timekeeper"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// eventMsg carries a TimeKeeper event into the bubbletea loop.
type eventMsg timekeeper.Event

// closedMsg reports that the event stream ended.
type closedMsg struct{}

// Model is the bubbletea model of the terminal timer.
type Model struct {
	controller *control.Controller
	events     <-chan timekeeper.Event
	keys       keyMap
	snapshot   timekeeper.Snapshot
	settings   settings.Settings
	width      int
	height     int
	quitting   bool
}

// New creates a terminal model bound to controller.
func New(controller *control.Controller) Model {
	return Model{
		controller: controller,
		events:     controller.Subscribe(16),
		keys:       defaultKeyMap(),
		snapshot:   controller.Snapshot(),
		settings:   controller.Settings().Current(),
	}
}

// Init starts listening for timer events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}

// Update handles keys, window sizes and timer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventMsg:
		m.snapshot = m.controller.Snapshot()
		m.settings = m.controller.Settings().Current()
		return m, waitForEvent(m.events)

	case closedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := m.controller.Settings()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.controller.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
	case key.Matches(msg, m.keys.Mode):
		store.Update(func(s *settings.Settings) {
			if s.Mode == model.ModeStopwatch {
				s.Mode = model.ModeCountdown
			} else {
				s.Mode = model.ModeStopwatch
			}
		})
	case key.Matches(msg, m.keys.Longer):
		store.Update(func(s *settings.Settings) { s.DurationMinutes++ })
	case key.Matches(msg, m.keys.Shorter):
		store.Update(func(s *settings.Settings) { s.DurationMinutes-- })
	case key.Matches(msg, m.keys.Beep):
		store.Update(func(s *settings.Settings) { s.BeepInterval = settings.NextBeepInterval(s.BeepInterval) })
	case key.Matches(msg, m.keys.AutoRestart):
		store.Update(func(s *settings.Settings) { s.AutoRestart = !s.AutoRestart })
	case key.Matches(msg, m.keys.Sound):
		sound := nextSound(store.Sounds(), store.Current().SoundURL)
		store.Update(func(s *settings.Settings) { s.SoundURL = sound })
	default:
		return m, nil
	}
	m.settings = store.Current()
	m.snapshot = m.controller.Snapshot()
	return m, nil
}

func nextSound(sounds []settings.Sound, current string) string {
	if len(sounds) == 0 {
		return current
	}
	for i, sound := range sounds {
		if sound.URL == current {
			return sounds[(i+1)%len(sounds)].URL
		}
	}
	return sounds[0].URL
}

// View renders the timer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	clock := lipgloss.NewStyle().
		Bold(true).
		Padding(1, 4).
		Foreground(lipgloss.Color(m.settings.TextColor)).
		Background(lipgloss.Color(m.settings.BackgroundColor)).
		Render(m.snapshot.Display)
	dim := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(clock)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", modeLabel(m.settings.Mode), stateLabel(m.snapshot.State)))
	b.WriteString(dim.Render(m.details()))
	b.WriteString("\n\n")
	b.WriteString(dim.Render(m.helpLine()))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) details() string {
	parts := []string{
		"Beep: " + settings.BeepLabel(m.settings.BeepInterval),
		"Sound: " + m.controller.Settings().SoundName(m.settings.SoundURL),
	}
	if m.settings.Mode == model.ModeCountdown {
		restart := "off"
		if m.settings.AutoRestart {
			restart = "on"
		}
		parts = append([]string{fmt.Sprintf("Duration: %d min", m.settings.DurationMinutes)}, parts...)
		parts = append(parts, "Auto-restart: "+restart)
	}
	return strings.Join(parts, " | ")
}

func (m Model) helpLine() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func modeLabel(mode model.Mode) string {
	if mode == model.ModeStopwatch {
		return "Stopwatch"
	}
	return "Countdown"
}

func stateLabel(state timekeeper.State) string {
	switch state {
	case timekeeper.StateRunning:
		return "running"
	case timekeeper.StatePaused:
		return "paused"
	case timekeeper.StateCompleted:
		return "time's up"
	default:
		return "ready"
	}
}
