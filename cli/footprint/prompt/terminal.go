package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	answerYes = "Yes"
	answerNo  = "No"
)

// Terminal задает вопросы в терминале, по одной программе bubbletea на вопрос
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out}
}

func (t *Terminal) Select(message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("нет вариантов для выбора")
	}

	final, err := t.run(newSelectModel(message, choices))
	if err != nil {
		return "", err
	}

	m := final.(selectModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.choices[m.cursor], nil
}

func (t *Terminal) Confirm(message string) (bool, error) {
	answer, err := t.Select(message, []string{answerYes, answerNo})
	if err != nil {
		return false, err
	}
	return answer == answerYes, nil
}

func (t *Terminal) Input(message string) (string, error) {
	final, err := t.run(inputModel{message: message})
	if err != nil {
		return "", err
	}

	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return string(m.value), nil
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("ошибка терминального ввода: %w", err)
	}
	return final, nil
}

type selectModel struct {
	message string
	choices []string
	cursor  int
	chosen  bool
	aborted bool
}

func newSelectModel(message string, choices []string) selectModel {
	return selectModel{message: message, choices: choices}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.choices)
	case "enter":
		m.chosen = true
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.chosen {
		return fmt.Sprintf("[?] %s: %s\n", m.message, m.choices[m.cursor])
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[?] %s:\n", m.message)
	for i, choice := range m.choices {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		fmt.Fprintf(&b, " %s %s\n", cursor, choice)
	}
	return b.String()
}

type inputModel struct {
	message string
	value   []rune
	entered bool
	aborted bool
}

func (m inputModel) Init() tea.Cmd {
	return nil
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.entered = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeySpace:
		m.value = append(m.value, ' ')
	case tea.KeyRunes:
		m.value = append(m.value, key.Runes...)
	}

	return m, nil
}

func (m inputModel) View() string {
	if m.aborted {
		return ""
	}
	view := fmt.Sprintf("[?] %s: %s", m.message, string(m.value))
	if m.entered {
		return view + "\n"
	}
	return view + "_"
}
