// Package states implements the Playing/Paused mode machine.
package states

// Mode is the current UI mode.
type Mode int

const (
	Playing Mode = iota
	Paused
)

func (m Mode) String() string {
	switch m {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Listener is notified after every mode change.
type Listener func(from, to Mode)

// Manager tracks the mode and whether the player confirmed exit.
// It starts in Playing.
type Manager struct {
	mode          Mode
	exitRequested bool
	listeners     []Listener
}

// NewManager creates a new mode manager.
func NewManager() *Manager {
	return &Manager{mode: Playing}
}

// OnChange registers a listener for mode transitions.
func (m *Manager) OnChange(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	return m.mode
}

// Playing reports whether movement input should be processed.
func (m *Manager) Playing() bool {
	return m.mode == Playing
}

// Toggle switches between Playing and Paused.
func (m *Manager) Toggle() {
	if m.mode == Playing {
		m.change(Paused)
	} else {
		m.change(Playing)
	}
}

// Resume returns to Playing. No-op when already playing.
func (m *Manager) Resume() {
	m.change(Playing)
}

// ConfirmExit records that the player chose to quit from the pause dialog.
// It is ignored while playing since the dialog is not shown.
func (m *Manager) ConfirmExit() {
	if m.mode == Paused {
		m.exitRequested = true
	}
}

// ExitRequested reports whether the main loop should stop.
func (m *Manager) ExitRequested() bool {
	return m.exitRequested
}

func (m *Manager) change(to Mode) {
	if m.mode == to {
		return
	}
	from := m.mode
	m.mode = to
	for _, l := range m.listeners {
		l(from, to)
	}
}
