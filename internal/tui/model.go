// Package tui provides a live input line that highlights list references,
// sections, quantities and prices while the user types.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/listwise/internal/cli"
	"github.com/Veraticus/listwise/internal/inference"
	"github.com/Veraticus/listwise/internal/parser"
)

// SubmitFunc receives every non-empty line the user confirms.
type SubmitFunc func(parser.ParsedInput) error

// Config configures the live input.
type Config struct {
	Parser    *parser.SmartInputParser
	Inference *inference.Service
	OnSubmit  SubmitFunc
	Context   parser.InputContext
	Colors    bool
}

// Model holds the live input state.
type Model struct {
	parser    *parser.SmartInputParser
	inference *inference.Service
	onSubmit  SubmitFunc
	lastError error
	input     textinput.Model
	keymap    KeyMap
	context   parser.InputContext
	parsed    parser.ParsedInput
	inferred  inference.Result
	submitted []parser.ParsedInput
	colors    bool
	quitting  bool
}

// NewModel creates a focused live input.
func NewModel(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "2 kg maçã @feira R$ 8,50"
	input.CharLimit = 256
	input.Width = 60
	input.Focus()

	p := cfg.Parser
	if p == nil {
		p = parser.New(parser.Options{})
	}
	inf := cfg.Inference
	if inf == nil {
		inf = inference.NewService()
	}

	m := Model{
		parser:    p,
		inference: inf,
		onSubmit:  cfg.OnSubmit,
		input:     input,
		keymap:    DefaultKeyMap(),
		context:   cfg.Context,
		colors:    cfg.Colors,
	}
	m.reparse()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleShopping):
			m.context.IsShoppingList = !m.context.IsShoppingList
			m.reparse()
			return m, nil
		case key.Matches(msg, m.keymap.Clear):
			m.input.Reset()
			m.reparse()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reparse()
	return m, cmd
}

func (m *Model) reparse() {
	m.parsed = m.parser.Parse(m.input.Value(), m.context)
	m.inferred = m.inference.Infer(m.input.Value())
}

func (m *Model) submit() {
	if strings.TrimSpace(m.input.Value()) == "" {
		return
	}
	m.lastError = nil
	if m.onSubmit != nil {
		if err := m.onSubmit(m.parsed); err != nil {
			m.lastError = err
			return
		}
	}
	m.submitted = append(m.submitted, m.parsed)
	m.input.Reset()
	m.reparse()
}

// Parsed returns the parse of the current input.
func (m Model) Parsed() parser.ParsedInput {
	return m.parsed
}

// Submitted returns the confirmed lines, oldest first.
func (m Model) Submitted() []parser.ParsedInput {
	return m.submitted
}

// Err returns the error of the last submit, if any.
func (m Model) Err() error {
	return m.lastError
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle("listwise"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.input.Value() != "" {
		b.WriteString(cli.RenderHighlights(m.parsed, m.colors))
		b.WriteString("\n")
		b.WriteString(cli.SubtleStyle.Render(cli.DescribeParsed(m.parsed)))
		b.WriteString("\n")
		if m.parsed.ListName == nil {
			b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("looks like: %s (%s)", m.inferred.ListType, m.inferred.Confidence)))
			b.WriteString("\n")
		}
	}

	for _, p := range m.submitted {
		b.WriteString(cli.FormatSuccess(p.Title))
		b.WriteString("\n")
	}
	if m.lastError != nil {
		b.WriteString(cli.FormatError(m.lastError.Error()))
		b.WriteString("\n")
	}

	mode := "notes"
	if m.context.IsShoppingList {
		mode = "shopping"
	}
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("mode: %s • %s", mode, helpLine(m.keymap))))
	return b.String()
}

func helpLine(k KeyMap) string {
	parts := make([]string, 0, len(k.ShortHelp()))
	for _, binding := range k.ShortHelp() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
