// Package history provides the scan history list view for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/keymap"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/messages"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/styles"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driving"
)

// View is the scan history list view.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	scans  driving.ScanService

	records      []domain.ScanRecord
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	loading      bool
	err          error
}

// NewView creates a new history view.
func NewView(s *styles.Styles, scans driving.ScanService) *View {
	return &View{
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		scans:   scans,
		records: []domain.ScanRecord{},
	}
}

// Init triggers the initial history load.
func (v *View) Init() tea.Cmd {
	return v.loadHistory()
}

// loadHistory returns a command that fetches the scan history.
func (v *View) loadHistory() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		if v.scans == nil {
			return messages.HistoryLoaded{Err: fmt.Errorf("scan service not available")}
		}
		records, err := v.scans.History(context.Background())
		return messages.HistoryLoaded{Records: records, Err: err}
	}
}

// clearHistory returns a command that removes all history records.
func (v *View) clearHistory() tea.Cmd {
	return func() tea.Msg {
		if v.scans == nil {
			return messages.HistoryCleared{Err: fmt.Errorf("scan service not available")}
		}
		return messages.HistoryCleared{Err: v.scans.ClearHistory(context.Background())}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.HistoryLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.records = msg.Records
			v.err = nil
			if v.selected >= len(v.records) {
				v.selected = 0
				v.scrollOffset = 0
			}
		}
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadHistory()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in the list.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.Up):
		if v.selected > 0 {
			v.selected--
			if v.selected < v.scrollOffset {
				v.scrollOffset = v.selected
			}
		}

	case keymap.Matches(keyStr, v.keys.Down):
		if v.selected < len(v.records)-1 {
			v.selected++
			if v.selected >= v.scrollOffset+v.visibleRows() {
				v.scrollOffset = v.selected - v.visibleRows() + 1
			}
		}

	case keymap.Matches(keyStr, v.keys.Select):
		if v.selected < len(v.records) {
			record := v.records[v.selected]
			return v, func() tea.Msg {
				return messages.ScanSelected{Record: record}
			}
		}

	case keymap.Matches(keyStr, v.keys.Refresh):
		return v, v.loadHistory()

	case keymap.Matches(keyStr, v.keys.Clear):
		return v, v.clearHistory()

	case keymap.Matches(keyStr, v.keys.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}

	case keymap.Matches(keyStr, v.keys.Quit):
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}

	return v, nil
}

// visibleRows returns how many records fit in the current terminal.
func (v *View) visibleRows() int {
	// Reserve lines for title, column header, separator, help and padding
	reserved := 7
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the history list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Scan History"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 72)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading history..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if len(v.records) == 0 {
		b.WriteString(v.styles.Muted.Render("No scans yet. Run 'exscan scan <file>' to get started."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%-28s %-22s %-6s %s", "FILE", "CERT NUMBER", "CONF", "SCANNED")))
	b.WriteString("\n")

	visible := v.visibleRows()
	for i := v.scrollOffset; i < len(v.records) && i < v.scrollOffset+visible; i++ {
		record := v.records[i]
		line := fmt.Sprintf("%-28s %-22s %-6s %s",
			truncate(record.FileName, 28),
			truncate(valueOrDash(record.Certificate.CertNumber), 22),
			fmt.Sprintf("%d%%", record.Confidence),
			record.ScannedAt.Format("2006-01-02 15:04"))

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(v.records) > visible {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			minInt(v.scrollOffset+visible, len(v.records)),
			len(v.records))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [enter] open  [r] refresh  [x] clear  [?] help  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Records returns the loaded history records.
func (v *View) Records() []domain.ScanRecord {
	return v.records
}

// Selected returns the index of the highlighted record.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
