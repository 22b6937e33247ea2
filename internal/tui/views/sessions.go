package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/spent/internal/session"
	"github.com/xolan/spent/internal/timeutil"
	"github.com/xolan/spent/internal/tui/ui"
)

// SessionsModel is the model for the sessions view: one line per inferred
// work session, with the selected session expanded into its member saves.
type SessionsModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width    int
	height   int
	cursor   int
	sessions []session.Session
	total    time.Duration
	loading  bool
	err      error
}

// NewSessionsModel creates a new sessions view model
func NewSessionsModel(styles ui.Styles, keys ui.KeyMap) SessionsModel {
	return SessionsModel{
		styles:  styles,
		keys:    keys,
		loading: true,
	}
}

// Update implements tea.Model
func (m SessionsModel) Update(msg tea.Msg) (SessionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.sessions)-1 {
				m.cursor++
			}
		}

	case ui.ScanLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Result != nil {
			m.sessions = msg.Result.Sessions
			m.total = msg.Result.Total
		} else {
			m.sessions = nil
			m.total = 0
		}
		if m.cursor >= len(m.sessions) {
			m.cursor = len(m.sessions) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m SessionsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Sessions"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Scanning...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if len(m.sessions) == 0 {
		b.WriteString("No project files found")
		return b.String()
	}

	for i, s := range m.sessions {
		b.WriteString(m.renderSessionHeader(i, s))
		b.WriteString("\n")

		// Expand the selected session into its saves
		if i == m.cursor {
			b.WriteString(RenderFileList(s.Files, m.styles, FileRenderOptions{
				Width:  m.width - 2,
				Cursor: -1,
			}))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("%d %s", len(m.sessions), pluralize("session", len(m.sessions)))))
	b.WriteString(m.styles.StatValue.Render("  " + timeutil.FormatDuration(m.total) + " total"))

	return b.String()
}

// renderSessionHeader renders one session summary line
func (m SessionsModel) renderSessionHeader(index int, s session.Session) string {
	label := "(unversioned)"
	if l, ok := s.Label(); ok {
		label = "Version " + l + ".x"
	}

	header := fmt.Sprintf("%-18s %-13s %s, %d %s",
		label,
		timeutil.FormatDuration(s.Subtotal()),
		timeutil.FormatStartTime(s.Start()),
		len(s.Files),
		pluralize("save", len(s.Files)))

	if index == m.cursor {
		return m.styles.FileSelected.Render(m.styles.SessionHeader.Render(header))
	}
	return m.styles.SessionHeader.Render(header)
}

// SetSize sets the view dimensions
func (m *SessionsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
