package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// PhaseUI shows progress for one long-running phase at a time, such as the
// analysis call before generation.
type PhaseUI interface {
	// Start begins a phase with the given label.
	Start(label string)
	// Succeed ends the phase with a success mark and message.
	Succeed(message string)
	// Fail ends the phase with a failure mark and message.
	Fail(message string)
}

// NewPhaseUI creates the appropriate phase UI based on TTY availability
func NewPhaseUI(splog *Splog) PhaseUI {
	if IsTTY() {
		return &ttyPhase{}
	}
	return &simplePhase{splog: splog}
}

// simplePhase prints phase progress line by line (non-TTY)
type simplePhase struct {
	splog *Splog
}

func (p *simplePhase) Start(label string) {
	p.splog.Info("⋯ %s...", label)
}

func (p *simplePhase) Succeed(message string) {
	p.splog.Info("✓ %s", message)
}

func (p *simplePhase) Fail(message string) {
	p.splog.Info("✗ %s", message)
}

// ttyPhase uses bubbletea for an animated spinner (TTY)
type ttyPhase struct {
	program *tea.Program
}

func (p *ttyPhase) Start(label string) {
	model := newPhaseModel(label)
	p.program = tea.NewProgram(model, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

	// Run program in background; the phase ends via Succeed or Fail.
	go func() {
		_, _ = p.program.Run()
	}()
}

func (p *ttyPhase) Succeed(message string) {
	p.finish(phaseDoneMsg{message: message, failed: false})
}

func (p *ttyPhase) Fail(message string) {
	p.finish(phaseDoneMsg{message: message, failed: true})
}

func (p *ttyPhase) finish(msg phaseDoneMsg) {
	if p.program == nil {
		return
	}
	p.program.Send(msg)
	p.program.Wait()
	p.program = nil
}

type phaseDoneMsg struct {
	message string
	failed  bool
}

var (
	phaseSpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	phaseDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	phaseFailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// phaseModel is the bubbletea model for one spinner phase
type phaseModel struct {
	label    string
	spinner  spinner.Model
	done     bool
	failed   bool
	message  string
	quitting bool
}

func newPhaseModel(label string) *phaseModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = phaseSpinnerStyle

	return &phaseModel{label: label, spinner: s}
}

func (m *phaseModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *phaseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case phaseDoneMsg:
		m.done = true
		m.failed = msg.failed
		m.message = msg.message
		return m, tea.Quit
	}

	return m, nil
}

func (m *phaseModel) View() string {
	if m.quitting {
		return ""
	}

	if m.done {
		if m.failed {
			return fmt.Sprintf("%s %s\n", phaseFailStyle.Render("✗"), m.message)
		}
		return fmt.Sprintf("%s %s\n", phaseDoneStyle.Render("✓"), m.message)
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), phaseSpinnerStyle.Render(m.label+"..."))
}

// IsTTY reports whether a full interactive TUI can run: both std streams
// must be terminals and the controlling terminal must be openable.
func IsTTY() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return false
		}
	}

	// bubbletea reads from /dev/tty, terminal std fds alone are not enough
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	tty.Close()
	return true
}
