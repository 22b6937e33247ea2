package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/spent/internal/stats"
	"github.com/xolan/spent/internal/timeutil"
	"github.com/xolan/spent/internal/tui/ui"
)

// StatsModel is the model for the stats view
type StatsModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width      int
	height     int
	statistics stats.Statistics
	breakdown  []stats.VersionBreakdown
	hasData    bool
	loading    bool
	err        error
}

// NewStatsModel creates a new stats view model
func NewStatsModel(styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		styles:  styles,
		keys:    keys,
		loading: true,
	}
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ScanLoadedMsg:
		m.loading = false
		m.err = msg.Err
		m.hasData = false
		if msg.Result != nil {
			m.statistics = stats.Calculate(msg.Result.Files, msg.Result.Sessions)
			m.breakdown = stats.CalculateVersionBreakdown(msg.Result.Sessions)
			m.hasData = len(msg.Result.Files) > 0
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Statistics"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Scanning...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if !m.hasData {
		b.WriteString("No project files found")
		return b.String()
	}

	s := m.statistics
	b.WriteString(m.renderStatLine("Project files:",
		fmt.Sprintf("%d (%d versioned)", s.FileCount, s.VersionedCount)))
	b.WriteString(m.renderStatLine("Sessions:",
		fmt.Sprintf("%d", s.SessionCount)))
	b.WriteString(m.renderStatLine("First save:", timeutil.FormatStartTime(s.FirstSave)))
	b.WriteString(m.renderStatLine("Last save:", timeutil.FormatStartTime(s.LastSave)))
	b.WriteString(m.renderStatLine("Total time:", timeutil.FormatDuration(s.TotalTime)))
	b.WriteString(m.renderStatLine("Average session:", timeutil.FormatDuration(s.AverageSession)))
	b.WriteString(m.renderStatLine("Longest session:",
		fmt.Sprintf("%s (%s)", sessionLabel(s.LongestSessionLabel), timeutil.FormatDuration(s.LongestSessionTime))))
	b.WriteString(m.renderStatLine("Busiest file:",
		fmt.Sprintf("%s (%s)", s.BusiestFile, timeutil.FormatDuration(s.BusiestFileTime))))

	if len(m.breakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.ViewTitle.Render("By Version"))
		b.WriteString("\n")
		for _, vb := range m.breakdown {
			line := fmt.Sprintf("  %-16s %s  (%d %s)",
				vb.Label,
				timeutil.FormatDuration(vb.TotalTime),
				vb.FileCount,
				pluralize("save", vb.FileCount))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m StatsModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(fmt.Sprintf("%-17s", label)) + " " + m.styles.StatValue.Render(value) + "\n"
}

// sessionLabel turns a stats label into display form; versioned labels read
// as "Version x.y.x"
func sessionLabel(label string) string {
	if label == stats.UnversionedLabel || label == "" {
		return label
	}
	return "Version " + label + ".x"
}
