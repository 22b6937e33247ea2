package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/spent/internal/filter"
	"github.com/xolan/spent/internal/projectfile"
	"github.com/xolan/spent/internal/session"
	"github.com/xolan/spent/internal/timeutil"
	"github.com/xolan/spent/internal/tui/ui"
)

// FilesModel is the model for the files view: every scanned save in creation
// order with its inferred working time, narrowable by a keyword filter.
type FilesModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	files   []projectfile.File
	total   time.Duration
	loading bool
	err     error

	// Filter state
	filtering   bool
	keyword     string
	filterInput textinput.Model
}

// NewFilesModel creates a new files view model
func NewFilesModel(styles ui.Styles, keys ui.KeyMap) FilesModel {
	filterInput := textinput.New()
	filterInput.Placeholder = "Filter by name..."
	filterInput.CharLimit = 100
	filterInput.Width = 40

	return FilesModel{
		styles:      styles,
		keys:        keys,
		loading:     true,
		filterInput: filterInput,
	}
}

// IsFiltering reports whether the filter input is capturing keystrokes.
// While it is, the root model must not act on global key bindings.
func (m FilesModel) IsFiltering() bool {
	return m.filtering
}

// Update implements tea.Model
func (m FilesModel) Update(msg tea.Msg) (FilesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			m.filterInput.SetValue(m.keyword)
			return m, m.filterInput.Focus()

		case key.Matches(msg, m.keys.Back):
			// Clear an applied filter
			m.keyword = ""
			m.filterInput.SetValue("")
			m.cursor = 0

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visibleFiles())-1 {
				m.cursor++
			}
		}

	case ui.ScanLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Result != nil {
			m.files = msg.Result.Files
			m.total = msg.Result.Total
		} else {
			m.files = nil
			m.total = 0
		}
		m.clampCursor()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// handleFilterInput routes keystrokes while the filter input is focused.
// The filter narrows the list as the keyword is typed; enter keeps it,
// escape drops it.
func (m FilesModel) handleFilterInput(msg tea.KeyMsg) (FilesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.filtering = false
		m.keyword = ""
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.filtering = false
		m.keyword = m.filterInput.Value()
		m.filterInput.Blur()
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.keyword = m.filterInput.Value()
	m.clampCursor()
	return m, cmd
}

// visibleFiles applies the keyword filter. Durations were inferred over the
// complete scan, so filtered rows keep the time they earned with their real
// neighbors.
func (m FilesModel) visibleFiles() []projectfile.File {
	return filter.FilterFiles(m.files, &filter.Filter{Keyword: m.keyword})
}

func (m *FilesModel) clampCursor() {
	if visible := len(m.visibleFiles()); m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model
func (m FilesModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Files"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Scanning...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if len(m.files) == 0 {
		b.WriteString("No project files found")
		return b.String()
	}

	if m.filtering {
		b.WriteString(m.styles.InputFocused.Render(m.filterInput.View()))
		b.WriteString("\n")
	}

	visible := m.visibleFiles()
	if len(visible) == 0 {
		b.WriteString(fmt.Sprintf("No files match '%s'", m.keyword))
		return b.String()
	}

	// Reserve lines for the title and the summary
	listHeight := m.height - 5
	if m.filtering {
		listHeight--
	}
	first, last := visibleRange(m.cursor, len(visible), listHeight)

	b.WriteString(RenderFileList(visible[first:last], m.styles, FileRenderOptions{
		Width:  m.width,
		Cursor: m.cursor - first,
	}))

	b.WriteString("\n")
	b.WriteString(m.renderSummary(visible))

	return b.String()
}

// renderSummary renders the footer line under the list
func (m FilesModel) renderSummary(visible []projectfile.File) string {
	if m.keyword != "" {
		return m.styles.StatLabel.Render(fmt.Sprintf("%d of %d %s matching '%s'",
			len(visible), len(m.files), pluralize("save", len(m.files)), m.keyword)) +
			m.styles.StatValue.Render("  "+timeutil.FormatDuration(session.Total(visible))+" shown")
	}

	return m.styles.StatLabel.Render(fmt.Sprintf("%d %s", len(m.files), pluralize("save", len(m.files)))) +
		m.styles.StatValue.Render("  "+timeutil.FormatDuration(m.total)+" total")
}

// SetSize sets the view dimensions
func (m *FilesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
