package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	promptBoxStyle  = lipgloss.NewStyle().Margin(1, 0)
	promptHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via RIVET_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (RIVET_TEST_NO_INTERACTIVE is set)")

var errPromptCanceled = errors.New("canceled")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("RIVET_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// IsInteractive reports whether stdin is a terminal and interactive prompts
// are allowed.
func IsInteractive() bool {
	if os.Getenv("RIVET_TEST_NO_INTERACTIVE") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// runPrompt drives a bubbletea model to completion on the real terminal and
// returns the final model state.
func runPrompt[M tea.Model](model M) (M, error) {
	program := tea.NewProgram(model, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	final, err := program.Run()
	if err != nil {
		return model, err
	}
	result, ok := final.(M)
	if !ok {
		return model, fmt.Errorf("unexpected model type")
	}
	return result, nil
}

// textPrompt asks for a single line of free text.
type textPrompt struct {
	input textinput.Model
	label string
	done  bool
	err   error
}

func (m textPrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (m textPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.err = errPromptCanceled
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textPrompt) View() string {
	if m.done {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.label,
		m.input.View(),
		"",
		promptHintStyle.Render("enter to submit, ctrl+c to cancel"),
	)
	return promptBoxStyle.Render(body)
}

// confirmPrompt asks a yes/no question. Enter accepts the current choice.
type confirmPrompt struct {
	label  string
	choice bool
	done   bool
	err    error
}

func (m confirmPrompt) Init() tea.Cmd {
	return nil
}

func (m confirmPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.err = errPromptCanceled
		m.done = true
		return m, tea.Quit
	default:
		// Pasted input can arrive as a whole word
		switch strings.ToLower(key.String()) {
		case "y", "yes":
			m.choice = true
			m.done = true
			return m, tea.Quit
		case "n", "no":
			m.choice = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmPrompt) View() string {
	if m.done {
		return ""
	}
	marker := "[y/N]"
	if m.choice {
		marker = "[Y/n]"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s %s", m.label, marker),
		"",
		promptHintStyle.Render("y or n to choose, enter to confirm, ctrl+c to cancel"),
	)
	return promptBoxStyle.Render(body)
}

// PromptTextInput prompts the user for a line of text, pre-filled with
// defaultValue.
func PromptTextInput(prompt, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	input := textinput.New()
	input.SetValue(defaultValue)
	input.Focus()
	input.CharLimit = 500
	input.Width = 80

	final, err := runPrompt(textPrompt{input: input, label: prompt})
	if err != nil {
		return "", err
	}
	if final.err != nil {
		return "", final.err
	}
	return final.input.Value(), nil
}

// PromptConfirm prompts the user for yes/no confirmation.
// Pressing Enter confirms with defaultValue.
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	final, err := runPrompt(confirmPrompt{label: prompt, choice: defaultValue})
	if err != nil {
		return false, err
	}
	if final.err != nil {
		return false, final.err
	}
	return final.choice, nil
}

// InteractivePrompter exposes the terminal prompts behind a small value type
// so callers can depend on an interface and tests can substitute a script.
type InteractivePrompter struct{}

// Confirm asks a yes/no question with the given default.
func (InteractivePrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	return PromptConfirm(prompt, defaultValue)
}

// TextInput asks for a line of free text with the given default.
func (InteractivePrompter) TextInput(prompt, defaultValue string) (string, error) {
	return PromptTextInput(prompt, defaultValue)
}
