package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Veraticus/listwise/internal/dictionary"
	"github.com/Veraticus/listwise/internal/model"
)

// numberPattern matches an integer, a dot or comma decimal, or a simple fraction.
const numberPattern = `\d+(?:[.,]\d+)?(?:\s*/\s*\d+(?:[.,]\d+)?)?`

var countPattern = regexp.MustCompile(`(?i)(\d+)\s*x`)

// AmountMatch is an amount+unit token found in free text.
type AmountMatch struct {
	Quantity model.Quantity
	Unit     model.Unit
	// Text is the matched substring, e.g. "2kg" or "1/2 l".
	Text  string
	Start int
	End   int
}

// Normalized renders the match as "<quantity> <unit>", e.g. "0.5 l".
func (a AmountMatch) Normalized() string {
	return a.Quantity.String() + " " + a.Unit.String()
}

// AmountMatcher finds amount+unit tokens ("2 kg", "2kg", "1/2 l", "1,5 litros")
// whose unit is a known dictionary synonym. It is safe for concurrent use.
type AmountMatcher struct {
	pattern *regexp.Regexp
	opts    model.UnitOptions
}

// NewAmountMatcher builds a matcher over every synonym of opts.Dictionaries
// (or the process-wide dictionaries), resolving units with opts.Locale.
func NewAmountMatcher(opts model.UnitOptions) *AmountMatcher {
	synonyms := dictionary.Synonyms(opts.Dictionaries)
	m := &AmountMatcher{opts: opts}
	if len(synonyms) == 0 {
		return m
	}

	quoted := make([]string, len(synonyms))
	for i, s := range synonyms {
		quoted[i] = regexp.QuoteMeta(s)
	}
	m.pattern = regexp.MustCompile(`(?i)(` + numberPattern + `)\s*(` + strings.Join(quoted, "|") + `)`)
	return m
}

// FindAll returns every amount+unit token in text, in order of appearance.
// Tokens glued to surrounding letters or digits ("a2kg", "2kgs") are ignored.
func (m *AmountMatcher) FindAll(text string) []AmountMatch {
	if m.pattern == nil {
		return nil
	}

	var out []AmountMatch
	for pos := 0; pos < len(text); {
		loc := m.pattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if !boundaryBefore(text, start) || !boundaryAfter(text, end) {
			// Matches always begin with an ASCII digit, so start+1 is a rune boundary.
			pos = start + 1
			continue
		}

		quantity, err := model.ParseQuantity(text[pos+loc[2] : pos+loc[3]])
		if err != nil {
			pos = end
			continue
		}
		out = append(out, AmountMatch{
			Quantity: quantity,
			Unit:     m.resolveUnit(text[pos+loc[4] : pos+loc[5]]),
			Text:     text[start:end],
			Start:    start,
			End:      end,
		})
		pos = end
	}
	return out
}

// FindCounts returns multiplier tokens such as "3x" or "3 x", read as a
// count of units.
func (m *AmountMatcher) FindCounts(text string) []AmountMatch {
	var out []AmountMatch
	for _, loc := range countPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		if !boundaryBefore(text, start) || !boundaryAfter(text, end) {
			continue
		}
		quantity, err := model.ParseQuantity(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		out = append(out, AmountMatch{
			Quantity: quantity,
			Unit:     model.UnitFromCode(model.DefaultUnitCode),
			Text:     text[start:end],
			Start:    start,
			End:      end,
		})
	}
	return out
}

// resolveUnit prefers the configured locale and falls back to any locale
// knowing the synonym, since the pattern is built from all of them.
func (m *AmountMatcher) resolveUnit(token string) model.Unit {
	unit := model.ParseUnit(token, m.opts)
	if !unit.IsCustom() {
		return unit
	}
	if code, ok := dictionary.LookupAny(m.opts.Dictionaries, token); ok {
		return model.UnitFromCode(code)
	}
	return unit
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != ',' && r != '/'
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
