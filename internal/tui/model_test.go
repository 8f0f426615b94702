package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/listwise/internal/parser"
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestModel_ReparsesWhileTyping(t *testing.T) {
	m := NewModel(Config{Context: parser.InputContext{IsShoppingList: true}})
	m = typeText(t, m, "2 kg maçã @feira R$ 8")

	parsed := m.Parsed()
	require.NotNil(t, parsed.ListName)
	assert.Equal(t, "feira", *parsed.ListName)
	require.NotNil(t, parsed.Quantity)
	assert.Equal(t, "2 kg", *parsed.Quantity)
	require.NotNil(t, parsed.Price)
	assert.Equal(t, "maçã", parsed.Title)
	assert.Contains(t, m.View(), "[list:@feira]")
}

func TestModel_ToggleShopping(t *testing.T) {
	m := NewModel(Config{})
	m = typeText(t, m, "pizza R$ 40")
	assert.Nil(t, m.Parsed().Price)
	assert.Contains(t, m.View(), "mode: notes")

	m, _ = press(t, m, tea.KeyCtrlS)
	require.NotNil(t, m.Parsed().Price)
	assert.InDelta(t, 40.0, *m.Parsed().Price, 1e-9)
	assert.Contains(t, m.View(), "mode: shopping")
}

func TestModel_Submit(t *testing.T) {
	var got []parser.ParsedInput
	m := NewModel(Config{OnSubmit: func(p parser.ParsedInput) error {
		got = append(got, p)
		return nil
	}})

	// Blank lines are ignored.
	m, _ = press(t, m, tea.KeyEnter)
	assert.Empty(t, got)

	m = typeText(t, m, "leite @mercado")
	m, _ = press(t, m, tea.KeyEnter)

	require.Len(t, got, 1)
	assert.Equal(t, "leite", got[0].Title)
	require.Len(t, m.Submitted(), 1)
	assert.Empty(t, m.Parsed().RawText, "input is cleared after submit")
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "leite")
}

func TestModel_SubmitError(t *testing.T) {
	m := NewModel(Config{OnSubmit: func(parser.ParsedInput) error {
		return errors.New("database is locked")
	}})
	m = typeText(t, m, "arroz")
	m, _ = press(t, m, tea.KeyEnter)

	assert.EqualError(t, m.Err(), "database is locked")
	assert.Empty(t, m.Submitted())
	assert.Equal(t, "arroz", m.Parsed().RawText, "input is kept so the user can retry")
	assert.Contains(t, m.View(), "database is locked")
}

func TestModel_ClearAndQuit(t *testing.T) {
	m := NewModel(Config{})
	m = typeText(t, m, "assistir filme")
	assert.Contains(t, m.View(), "looks like: movies (high)")

	m, _ = press(t, m, tea.KeyCtrlU)
	assert.Empty(t, m.Parsed().RawText)

	m, cmd := press(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 4)
	assert.Contains(t, helpLine(km), "enter add")
	assert.Contains(t, helpLine(km), "esc quit")
}
