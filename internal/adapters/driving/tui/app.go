package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/keymap"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/messages"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/styles"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/views/history"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/tui/views/scandetail"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// historyView is the scan history list.
	historyView *history.View

	// detailView shows a single scan's extracted fields.
	detailView *scandetail.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		historyView: history.NewView(s, ports.Scans),
		detailView:  scandetail.NewView(s),
		currentView: messages.ViewHistory,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("exscan - Ex Certificate Scanner"),
		a.historyView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.historyView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
			return a, cmd

		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc or ? returns to the history list
			if msg.Type == tea.KeyEsc || msg.String() == "?" {
				a.currentView = messages.ViewHistory
			}
			return a, nil
		}
		return a, nil

	case messages.ScanSelected:
		a.detailView.SetRecord(msg.Record)
		a.currentView = messages.ViewDetail
		return a, a.detailView.Init()

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewHistory {
			return a, a.historyView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
		case messages.ViewHelp:
			// Help view doesn't display errors
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (loads, clears) to the active view
	switch a.currentView {
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.historyView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

History:
  j/k, ↑/↓    Navigate scans
  enter       Open scan detail
  r           Refresh history
  x           Clear history
  q           Quit

Detail:
  j/k, ↑/↓    Scroll fields
  esc         Back to history

[esc] back to history`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.historyView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}
