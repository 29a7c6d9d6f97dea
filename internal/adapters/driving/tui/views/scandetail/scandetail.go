// Package scandetail provides the scan detail view for the TUI, showing
// every extracted certificate field of a single scan.
package scandetail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/messages"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/styles"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

// View is the scan detail view.
type View struct {
	styles *styles.Styles

	record       *domain.ScanRecord
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new scan detail view.
func NewView(s *styles.Styles) *View {
	return &View{
		styles: s,
	}
}

// SetRecord sets the scan record to display.
func (v *View) SetRecord(record domain.ScanRecord) {
	v.record = &record
	v.scrollOffset = 0
	v.err = nil
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scan detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHistory}
		}
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 6
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.buildContent()) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// buildContent builds the content lines for display. Empty fields are
// omitted rather than rendered as blanks.
func (v *View) buildContent() []string {
	if v.record == nil {
		return nil
	}

	cert := v.record.Certificate
	var lines []string

	lines = append(lines,
		v.formatField("File", v.record.FileName),
		v.formatField("Scanned", v.record.ScannedAt.Format("2006-01-02 15:04:05")))
	if v.record.OCRUsed {
		lines = append(lines, v.formatField("OCR", "yes"))
	}

	lines = append(lines, "", "Certificate:")
	fields := []struct {
		label string
		value string
	}{
		{"Number", cert.CertNumber},
		{"Type", string(cert.CertType)},
		{"Marking", cert.Marking},
		{"Protection", cert.ProtectionCodes()},
		{"Gas group", joinNonEmpty(cert.GasGroup, cert.GasGroupInfo)},
		{"Temp class", joinNonEmpty(cert.TempClass, cert.TempClassMax)},
		{"EPL", cert.EPL},
		{"Zone", cert.Zone},
		{"IP rating", cert.IPRating},
		{"Ambient", cert.AmbientTemp},
		{"Manufacturer", cert.Manufacturer},
		{"Equipment", cert.Equipment},
		{"Notified body", cert.NotifiedBody},
		{"Standard", cert.Standard},
		{"Category", cert.Category},
		{"Group", cert.Group},
		{"Issued", cert.IssueDate},
		{"Expires", cert.ExpiryDate},
	}
	for _, f := range fields {
		if f.value != "" {
			lines = append(lines, "  "+v.formatField(f.label, f.value))
		}
	}

	if len(cert.Markings) > 1 {
		lines = append(lines, "", "All markings:")
		for _, m := range cert.Markings {
			lines = append(lines, "  "+m)
		}
	}

	if cert.SpecialConditions != "" {
		lines = append(lines, "", "Special conditions:")
		for _, line := range strings.Split(cert.SpecialConditions, "\n") {
			lines = append(lines, "  "+line)
		}
	}

	return lines
}

// formatField formats a field for display.
func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%-14s %s", label+":", value)
}

// View renders the scan detail view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Scan Detail"))
	if v.record != nil {
		score := fmt.Sprintf("  %d%% confidence", v.record.Confidence)
		b.WriteString(v.styles.Confidence(v.record.Confidence).Render(score))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.record == nil {
		b.WriteString(v.styles.Muted.Render("No scan selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visible; i++ {
		line := lines[i]

		switch {
		case strings.HasSuffix(line, ":") && !strings.HasPrefix(line, "  "):
			b.WriteString(v.styles.Subtitle.Render(line))
		case strings.Contains(line, ":"):
			parts := strings.SplitN(line, ":", 2)
			b.WriteString(v.styles.Muted.Render(parts[0] + ":"))
			b.WriteString(v.styles.Normal.Render(parts[1]))
		default:
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1,
			minInt(v.scrollOffset+visible, len(lines)),
			len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Record returns the displayed scan record.
func (v *View) Record() *domain.ScanRecord {
	return v.record
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " - " + b
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
