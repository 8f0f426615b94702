package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/listwise/internal/parser"
)

// HighlightStyles maps each highlight type to the style used to render it.
var HighlightStyles = map[parser.HighlightType]lipgloss.Style{
	parser.HighlightList:     lipgloss.NewStyle().Bold(true).Foreground(ListColor),
	parser.HighlightSection:  lipgloss.NewStyle().Foreground(SectionColor),
	parser.HighlightQuantity: lipgloss.NewStyle().Underline(true).Foreground(QuantityColor),
	parser.HighlightPrice:    lipgloss.NewStyle().Underline(true).Foreground(PriceColor),
}

// RenderHighlights renders the raw text of p with every highlight styled.
// With colors disabled, highlights are written as "[type:value]".
func RenderHighlights(p parser.ParsedInput, colors bool) string {
	var b strings.Builder
	pos := 0
	for _, h := range p.Highlights {
		if h.Start < pos || h.End > len(p.RawText) {
			continue
		}
		b.WriteString(p.RawText[pos:h.Start])
		if colors {
			b.WriteString(HighlightStyles[h.Type].Render(h.Value))
		} else {
			fmt.Fprintf(&b, "[%s:%s]", h.Type, h.Value)
		}
		pos = h.End
	}
	b.WriteString(p.RawText[pos:])
	return b.String()
}

// DescribeParsed lists the extracted fields of p, one "label: value" per line.
func DescribeParsed(p parser.ParsedInput) string {
	var lines []string
	add := func(label, value string) {
		lines = append(lines, fmt.Sprintf("%-9s %s", label+":", value))
	}

	add("title", p.Title)
	if p.ListName != nil {
		add("list", *p.ListName)
	}
	if p.SectionName != nil {
		add("section", *p.SectionName)
	}
	if p.Quantity != nil {
		add("quantity", *p.Quantity)
	}
	if p.Price != nil {
		add("price", fmt.Sprintf("%.2f %s", *p.Price, p.Currency))
	}
	return strings.Join(lines, "\n")
}
