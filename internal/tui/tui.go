// Package tui provides a Bubble Tea terminal user interface for
// music-organizer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/music-organizer/internal/config"
	"github.com/handiism/music-organizer/internal/model"
	"github.com/handiism/music-organizer/internal/organize"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateOrganizing
	StateComplete
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state       State
	sourceInput textinput.Model
	destInput   textinput.Model
	spinner     spinner.Model
	progress    progress.Model
	settings    *config.Settings
	err         error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Run plumbing
	events chan organize.Event
	runErr chan error

	// Run state
	totalSongs int
	percent    int
	notices    []string
	result     *model.RunResult

	width  int
	height int
}

// NewModel creates a new TUI model seeded from the given settings.
func NewModel(settings *config.Settings) Model {
	source := textinput.New()
	source.Placeholder = "/path/to/unorganized/music"
	source.SetValue(settings.MusicFolderPath)
	source.Focus()
	source.CharLimit = 500
	source.Width = 60

	dest := textinput.New()
	dest.Placeholder = "/path/to/music/library"
	dest.SetValue(settings.DestinationFolderPath)
	dest.CharLimit = 500
	dest.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:       StateInput,
		sourceInput: source,
		destInput:   dest,
		spinner:     sp,
		progress:    prog,
		settings:    settings,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// EventMsg wraps one engine event.
	EventMsg struct {
		Event organize.Event
	}

	// RunClosedMsg is sent when the engine's event stream ends.
	RunClosedMsg struct {
		Err error
	}
)

// waitForEvent returns a command that delivers the next engine event, or
// RunClosedMsg once the stream is exhausted.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return RunClosedMsg{Err: <-m.runErr}
		}
		return EventMsg{Event: ev}
	}
}

// startRun launches the engine in its own goroutine.
func (m *Model) startRun() tea.Cmd {
	m.settings.MusicFolderPath = strings.TrimSpace(m.sourceInput.Value())
	m.settings.DestinationFolderPath = strings.TrimSpace(m.destInput.Value())

	m.events = make(chan organize.Event)
	m.runErr = make(chan error, 1)

	org := organize.New(m.settings, nil)
	ctx := m.ctx
	events := m.events
	runErr := m.runErr
	go func() {
		runErr <- org.Run(ctx, events)
	}()

	return m.waitForEvent()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateOrganizing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "tab", "shift+tab":
			if m.state == StateInput {
				if m.sourceInput.Focused() {
					m.sourceInput.Blur()
					m.destInput.Focus()
				} else {
					m.destInput.Blur()
					m.sourceInput.Focus()
				}
			}

		case "ctrl+s":
			if m.state == StateInput {
				m.settings.RemoveIllegalChars = !m.settings.RemoveIllegalChars
			}

		case "enter":
			if m.state == StateInput &&
				strings.TrimSpace(m.sourceInput.Value()) != "" &&
				strings.TrimSpace(m.destInput.Value()) != "" {
				m.state = StateOrganizing
				return m, tea.Batch(m.startRun(), m.spinner.Tick)
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.err = nil
				m.result = nil
				m.notices = nil
				m.totalSongs = 0
				m.percent = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.sourceInput.Focus()
				m.destInput.Blur()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case EventMsg:
		switch ev := msg.Event.(type) {
		case organize.CountEvent:
			m.totalSongs = ev.Total
		case organize.ProgressEvent:
			m.percent = ev.Percent
			cmds = append(cmds, m.progress.SetPercent(float64(ev.Percent)/100))
		case organize.NoticeEvent:
			m.notices = append(m.notices, ev.Message)
		case organize.DoneEvent:
			m.result = ev.Result
		}
		cmds = append(cmds, m.waitForEvent())

	case RunClosedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
			// Remember the folders for the next session.
			if path, err := config.DefaultPath(); err == nil {
				_ = m.settings.Save(path)
			}
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text inputs
	if m.state == StateInput {
		var cmd tea.Cmd
		m.sourceInput, cmd = m.sourceInput.Update(msg)
		cmds = append(cmds, cmd)
		m.destInput, cmd = m.destInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎵 Music Organizer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Organize music into Artist/Album folders from embedded tags"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateOrganizing:
		b.WriteString(m.viewOrganizing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Music folder:"))
	b.WriteString("\n")
	b.WriteString(m.sourceInput.View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Destination folder:"))
	b.WriteString("\n")
	b.WriteString(m.destInput.View())
	b.WriteString("\n\n")

	sanitizeCheck := "[ ]"
	if m.settings.RemoveIllegalChars {
		sanitizeCheck = "[×]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Remove illegal characters (ctrl+s)\n", sanitizeCheck))

	return b.String()
}

func (m Model) viewOrganizing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.totalSongs > 0 {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Organizing %d songs...", m.totalSongs)))
	} else {
		b.WriteString(subtitleStyle.Render("Scanning for songs..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(float64(m.percent) / 100))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("%d%%", m.percent)))
	b.WriteString("\n")

	for _, notice := range m.notices {
		b.WriteString(warningStyle.Render("! " + notice))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	if m.result == nil {
		// Empty run: only the notice was emitted.
		for _, notice := range m.notices {
			b.WriteString(warningStyle.Render("! " + notice))
			b.WriteString("\n")
		}
		if len(m.notices) == 0 {
			b.WriteString(successStyle.Render("Nothing to do."))
			b.WriteString("\n")
		}
		return b.String()
	}

	moved := m.totalSongs - len(m.result.ErrorFiles) - len(m.result.ReplaceSkipFiles)
	box := boxStyle.Render(fmt.Sprintf(
		"✨ Organization Complete!\n\n"+
			"Songs found: %d\n"+
			"Moved: %d\n"+
			"Skipped (already exist): %d\n"+
			"Errors: %d",
		m.totalSongs,
		moved,
		len(m.result.ReplaceSkipFiles),
		len(m.result.ErrorFiles),
	))
	b.WriteString(box)
	b.WriteString("\n")

	if len(m.result.ErrorFiles) > 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Files with errors:"))
		b.WriteString("\n")
		for _, f := range m.result.ErrorFiles {
			b.WriteString(errorStyle.Render(fmt.Sprintf("  ✗ %s — %s", f.FileName, f.Err)))
			b.WriteString("\n")
		}
	}

	if len(m.result.ReplaceSkipFiles) > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("Files already in the destination:"))
		b.WriteString("\n")
		for _, f := range m.result.ReplaceSkipFiles {
			b.WriteString(warningStyle.Render(fmt.Sprintf("  ! %s → %s", f.FileName, f.NewLocation)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: organize • tab: switch field • ctrl+s: toggle sanitize • esc: quit"
	case StateOrganizing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: run again • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
