// Package cli renders listwise output for the terminal with lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	AccentColor  = lipgloss.Color("#2563EB")
	OKColor      = lipgloss.Color("#16A34A")
	CautionColor = lipgloss.Color("#EAB308")
	FailColor    = lipgloss.Color("#DC2626")
	MutedColor   = lipgloss.Color("#6B7280")

	// One color per highlight type.
	ListColor     = lipgloss.Color("#3B82F6")
	SectionColor  = lipgloss.Color("#A78BFA")
	QuantityColor = lipgloss.Color("#10B981")
	PriceColor    = lipgloss.Color("#F59E0B")
)

// Styles shared by commands and the live input.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(OKColor)
	WarningStyle = lipgloss.NewStyle().Foreground(CautionColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(FailColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	BoxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Padding(0, 1)
)

const (
	successMark = "✓"
	errorMark   = "✗"
	warningMark = "!"
	listMark    = "📝"
)

// FormatSuccess renders message as a success line.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(successMark + " " + message)
}

// FormatError renders message as an error line.
func FormatError(message string) string {
	return ErrorStyle.Render(errorMark + " " + message)
}

// FormatWarning renders message as a warning line.
func FormatWarning(message string) string {
	return WarningStyle.Render(warningMark + " " + message)
}

// FormatTitle renders a list name or screen title.
func FormatTitle(title string) string {
	return TitleStyle.Render(listMark + " " + title)
}

// RenderBox draws content under title inside a rounded border.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(title), content))
}
