// Package parser extracts list references, section references, quantities and
// prices from a single line of free text, reporting where in the original
// text each element was found so UIs can highlight it.
package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Veraticus/listwise/internal/dictionary"
	"github.com/Veraticus/listwise/internal/model"
)

// HighlightType identifies the element a highlight marks.
type HighlightType string

// Highlight types, in extraction priority order.
const (
	HighlightList     HighlightType = "list"
	HighlightSection  HighlightType = "section"
	HighlightQuantity HighlightType = "quantity"
	HighlightPrice    HighlightType = "price"
)

// Highlight marks a recognized element of the raw input. Start and End are
// byte offsets into ParsedInput.RawText (end-exclusive) and Value is always
// RawText[Start:End].
type Highlight struct {
	Type  HighlightType `json:"type"`
	Value string        `json:"value"`
	Start int           `json:"start"`
	End   int           `json:"end"`
}

// ParsedInput is the result of a single Parse call.
type ParsedInput struct {
	ListName    *string     `json:"list_name"`
	SectionName *string     `json:"section_name"`
	Quantity    *string     `json:"quantity"`
	Price       *float64    `json:"price"`
	Title       string      `json:"title"`
	Currency    string      `json:"currency,omitempty"`
	RawText     string      `json:"raw_text"`
	Highlights  []Highlight `json:"highlights"`
	// Amount is the typed form of Quantity, nil when Quantity is nil.
	Amount *AmountMatch `json:"-"`
}

// InputContext carries what the caller knows about where the text is typed.
type InputContext struct {
	// CurrentListName enables bare ":Section" references.
	CurrentListName string
	// IsShoppingList enables price extraction.
	IsShoppingList bool
}

// Options configures a SmartInputParser.
type Options struct {
	// Dictionaries overrides the process-wide unit dictionaries.
	Dictionaries dictionary.Map
	// Locale selects unit synonyms; empty means dictionary.DefaultLocale.
	Locale string
}

var (
	// listPattern captures "@List" with an optional ":Section" suffix.
	listPattern = regexp.MustCompile(`(?:^|\s)(@([^\s@:]+)(?::([^\s@:]*))?)`)
	// bareSectionPattern captures a standalone ":Section".
	bareSectionPattern = regexp.MustCompile(`(?:^|\s)(:([^\s@:]+))`)
)

// SmartInputParser turns a line of free text into a ParsedInput. It holds
// only read-only state and is safe for concurrent use.
type SmartInputParser struct {
	amounts *AmountMatcher
	prices  *priceMatcher
}

// New creates a SmartInputParser.
func New(opts Options) *SmartInputParser {
	return &SmartInputParser{
		amounts: NewAmountMatcher(model.UnitOptions{Locale: opts.Locale, Dictionaries: opts.Dictionaries}),
		prices:  newPriceMatcher(),
	}
}

// Parse extracts, in priority order, a list reference, a section reference,
// a quantity and (for shopping lists) a price from text. A range claimed by
// an earlier pass is never reused by a later one. Whatever is left becomes
// the title. Parse never fails: unrecognized text is simply title.
func (p *SmartInputParser) Parse(text string, ic InputContext) ParsedInput {
	result := ParsedInput{RawText: text}
	var c claims

	section := p.extractList(text, &c, &result)
	p.extractSection(text, section, ic, &c, &result)
	p.extractQuantity(text, &c, &result)
	if ic.IsShoppingList {
		p.extractPrice(text, &c, &result)
	}

	result.Title = residual(text, c.sorted())
	sort.Slice(result.Highlights, func(i, j int) bool {
		return result.Highlights[i].Start < result.Highlights[j].Start
	})
	return result
}

// extractList picks the last "@List" token. It returns the ":Section" suffix
// span of that token, if any, for the section pass.
func (p *SmartInputParser) extractList(text string, c *claims, result *ParsedInput) *span {
	matches := listPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	loc := matches[len(matches)-1]

	start, nameEnd := loc[2], loc[5]
	end := nameEnd
	var section *span
	if loc[6] >= 0 {
		if loc[7] > loc[6] {
			// Section starts at the colon.
			section = &span{start: loc[6] - 1, end: loc[7]}
		} else {
			// Dangling colon belongs to the list token.
			end = loc[7]
		}
	}

	if !c.claim(start, end) {
		return nil
	}
	name := text[loc[4]:loc[5]]
	result.ListName = &name
	result.Highlights = append(result.Highlights, highlight(text, HighlightList, start, end))
	return section
}

// extractSection uses the winning list token's suffix when present, otherwise
// the last bare ":Section" if the caller is already inside a list.
func (p *SmartInputParser) extractSection(text string, suffix *span, ic InputContext, c *claims, result *ParsedInput) {
	var candidate *span
	switch {
	case suffix != nil:
		candidate = suffix
	case ic.CurrentListName != "":
		matches := bareSectionPattern.FindAllStringSubmatchIndex(text, -1)
		for i := len(matches) - 1; i >= 0; i-- {
			s := span{start: matches[i][2], end: matches[i][3]}
			if !c.overlaps(s.start, s.end) {
				candidate = &s
				break
			}
		}
	}
	if candidate == nil || !c.claim(candidate.start, candidate.end) {
		return
	}

	name := text[candidate.start+1 : candidate.end]
	result.SectionName = &name
	result.Highlights = append(result.Highlights, highlight(text, HighlightSection, candidate.start, candidate.end))
}

// extractQuantity claims the first free amount+unit token, falling back to a
// multiplier such as "3x".
func (p *SmartInputParser) extractQuantity(text string, c *claims, result *ParsedInput) {
	for _, group := range [][]AmountMatch{p.amounts.FindAll(text), p.amounts.FindCounts(text)} {
		for _, m := range group {
			if !c.claim(m.Start, m.End) {
				continue
			}
			quantity := m.Normalized()
			result.Quantity = &quantity
			result.Amount = &m
			result.Highlights = append(result.Highlights, highlight(text, HighlightQuantity, m.Start, m.End))
			return
		}
	}
}

// extractPrice claims the first free monetary token.
func (p *SmartInputParser) extractPrice(text string, c *claims, result *ParsedInput) {
	for _, m := range p.prices.findAll(text) {
		if !c.claim(m.start, m.end) {
			continue
		}
		price := m.money.ToMajorNumber()
		result.Price = &price
		result.Currency = m.money.Currency()
		result.Highlights = append(result.Highlights, highlight(text, HighlightPrice, m.start, m.end))
		return
	}
}

func highlight(text string, t HighlightType, start, end int) Highlight {
	return Highlight{Type: t, Start: start, End: end, Value: text[start:end]}
}

// residual removes the claimed spans from text and collapses the whitespace
// left behind.
func residual(text string, spans []span) string {
	var b strings.Builder
	pos := 0
	for _, s := range spans {
		b.WriteString(text[pos:s.start])
		b.WriteByte(' ')
		pos = s.end
	}
	b.WriteString(text[pos:])
	return strings.Join(strings.Fields(b.String()), " ")
}
