// Package tui provides the interactive terminal browser for a scanned
// project directory.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/spent/internal/config"
	"github.com/xolan/spent/internal/service"
	"github.com/xolan/spent/internal/tui/ui"
	"github.com/xolan/spent/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabFiles Tab = iota
	TabSessions
	TabStats
)

var tabNames = []string{"Files", "Sessions", "Stats"}

// Model is the root TUI model. It owns the scan: one directory scan feeds
// all three views, and a rescan refreshes them together.
type Model struct {
	svc *service.ProjectService

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	scanning  bool
	scanErr   error

	// View models
	filesView    views.FilesModel
	sessionsView views.SessionsModel
	statsView    views.StatsModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(svc *service.ProjectService, cfg config.Config) Model {
	themeProvider := ui.NewThemeProvider(cfg.Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		svc:           svc,
		activeTab:     TabFiles,
		scanning:      true,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		filesView:     views.NewFilesModel(styles, keys),
		sessionsView:  views.NewSessionsModel(styles, keys),
		statsView:     views.NewStatsModel(styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.scan()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The filter input owns the keyboard while it is focused
		capturing := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Refresh) && !capturing:
			m.scanning = true
			return m, m.scan()

		case key.Matches(msg, m.keys.Theme) && !capturing:
			return m.changeTheme(), nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabFiles
			return m, nil

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabSessions
			return m, nil

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			m.activeTab = TabStats
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Account for tabs and status bar
		contentHeight := m.height - 4
		m.filesView.SetSize(m.width, contentHeight)
		m.sessionsView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ScanLoadedMsg:
		// Every view renders from the same scan
		m.scanning = false
		m.scanErr = msg.Err
		m.filesView, _ = m.filesView.Update(msg)
		m.sessionsView, _ = m.sessionsView.Update(msg)
		m.statsView, _ = m.statsView.Update(msg)
		return m, nil
	}

	// Remaining messages go to the active view only
	var cmd tea.Cmd
	switch m.activeTab {
	case TabFiles:
		m.filesView, cmd = m.filesView.Update(msg)
	case TabSessions:
		m.sessionsView, cmd = m.sessionsView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabFiles:
		b.WriteString(m.filesView.View())
	case TabSessions:
		b.WriteString(m.sessionsView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// isCapturingKeys reports whether the active view is capturing keyboard
// input, suspending the global key bindings
func (m Model) isCapturingKeys() bool {
	return m.activeTab == TabFiles && m.filesView.IsFiltering()
}

// scan runs one directory scan off the update loop
func (m Model) scan() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		result, err := svc.Scan()
		return ui.ScanLoadedMsg{Result: result, Err: err}
	}
}

// changeTheme cycles to the next theme and restyles every view. The theme
// choice lives for this run only; the config file is never written here.
func (m Model) changeTheme() Model {
	themeName := m.themeProvider.NextTheme()
	m.styles = m.themeProvider.Styles()

	themeMsg := ui.ThemeChangedMsg{
		ThemeName: themeName,
		Styles:    m.styles,
	}
	m.filesView, _ = m.filesView.Update(themeMsg)
	m.sessionsView, _ = m.sessionsView.Update(themeMsg)
	m.statsView, _ = m.statsView.Update(themeMsg)
	return m
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() {
		parts = append(parts, m.renderKeyHelp("Enter", "apply filter"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
		content := strings.Join(parts, "  ")
		if padding := m.width - lipgloss.Width(content); padding > 0 {
			content += strings.Repeat(" ", padding)
		}
		return m.styles.StatusBar.Render(content)
	}

	if m.scanning {
		parts = append(parts, m.styles.StatusValue.Render("scanning..."))
	} else if m.scanErr != nil {
		parts = append(parts, m.styles.Error.Render("scan failed"))
	}

	switch m.activeTab {
	case TabFiles:
		parts = append(parts, m.renderKeyHelp("j/k", "navigate"))
		parts = append(parts, m.renderKeyHelp("/", "filter"))
	case TabSessions:
		parts = append(parts, m.renderKeyHelp("j/k", "navigate"))
	}

	parts = append(parts, m.renderKeyHelp("r", "rescan"))
	parts = append(parts, m.renderKeyHelp("t", "theme"))
	parts = append(parts, m.renderKeyHelp("1-3", "views"))
	parts = append(parts, m.renderKeyHelp("?", "help"))
	parts = append(parts, m.renderKeyHelp("q", "quit"))

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// renderHelpOverlay renders the keyboard shortcut help
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  r          Rescan directory\n")
	help.WriteString("  t          Cycle theme\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabFiles:
		help.WriteString(m.styles.StatLabel.Render("Files:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate saves\n")
		help.WriteString("  /          Filter by name\n")
		help.WriteString("  Enter      Apply filter\n")
		help.WriteString("  Esc        Clear filter\n")
	case TabSessions:
		help.WriteString(m.styles.StatLabel.Render("Sessions:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate sessions\n")
	case TabStats:
		help.WriteString(m.styles.StatLabel.Render("Stats:"))
		help.WriteString("\n")
		help.WriteString("  r          Recompute from a fresh scan\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(svc *service.ProjectService, cfg config.Config) error {
	model := New(svc, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
