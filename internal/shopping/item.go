// Package shopping builds shopping items from one line of free text such as
// "2 kg maçã @hortifruti".
package shopping

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/listwise/internal/dictionary"
	"github.com/Veraticus/listwise/internal/model"
	"github.com/Veraticus/listwise/internal/parser"
)

var (
	tagPattern = regexp.MustCompile(`(?:^|\s)@(\S+)`)
	// leadingNumberPattern matches a leading amount optionally glued to a unit, e.g. "3" or "2cx".
	leadingNumberPattern = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?(?:/\d+(?:[.,]\d+)?)?)(\p{L}+)?(?:\s|$)`)
)

// ItemDraft is a shopping item parsed from free text, ready to be persisted.
type ItemDraft struct {
	Quantity model.Quantity
	Name     string
	Unit     string
	Category string
}

// Factory creates item drafts using a fixed locale and dictionary set.
type Factory struct {
	amounts *parser.AmountMatcher
	opts    model.UnitOptions
}

// Options configures a Factory.
type Options struct {
	Dictionaries dictionary.Map
	Locale       string
}

// NewFactory creates a Factory.
func NewFactory(opts Options) *Factory {
	unitOpts := model.UnitOptions{Locale: opts.Locale, Dictionaries: opts.Dictionaries}
	return &Factory{
		amounts: parser.NewAmountMatcher(unitOpts),
		opts:    unitOpts,
	}
}

var defaultFactory = NewFactory(Options{})

// CreateItemFromFreeText parses text with the default locale and dictionaries.
func CreateItemFromFreeText(text string) (ItemDraft, error) {
	return defaultFactory.FromFreeText(text)
}

// FromFreeText extracts a leading amount+unit token, the last @category tag
// and uses the remaining text as the name. Quantity defaults to 1, unit to
// "un" and category to "outros". Malformed amounts fail with
// model.ErrInvalidQuantity; an empty remainder fails with
// model.ErrEmptyItemName.
func (f *Factory) FromFreeText(text string) (ItemDraft, error) {
	return f.draft(text, true)
}

// draft builds an ItemDraft from text; the leading amount is only parsed
// when withAmount is set.
func (f *Factory) draft(text string, withAmount bool) (ItemDraft, error) {
	draft := ItemDraft{
		Quantity: model.DefaultQuantity,
		Unit:     model.DefaultUnitCode,
		Category: model.DefaultItemCategory,
	}

	rest := text
	if tags := tagPattern.FindAllStringSubmatch(rest, -1); len(tags) > 0 {
		draft.Category = strings.ToLower(tags[len(tags)-1][1])
		rest = tagPattern.ReplaceAllString(rest, " ")
	}

	if withAmount {
		var err error
		if rest, err = f.extractAmount(rest, &draft); err != nil {
			return ItemDraft{}, err
		}
	}

	draft.Name = strings.Join(strings.Fields(rest), " ")
	if draft.Name == "" {
		return ItemDraft{}, fmt.Errorf("%w: %q", model.ErrEmptyItemName, text)
	}
	return draft, nil
}

// extractAmount consumes a leading amount. A known unit may follow with or
// without a space; letters glued to the number that no dictionary knows
// ("2cx") are kept as a custom unit.
func (f *Factory) extractAmount(text string, draft *ItemDraft) (string, error) {
	trimmed := strings.TrimLeft(text, " \t")
	offset := len(text) - len(trimmed)

	if matches := f.amounts.FindAll(text); len(matches) > 0 && matches[0].Start == offset {
		m := matches[0]
		draft.Quantity = m.Quantity
		draft.Unit = m.Unit.String()
		return text[m.End:], nil
	}

	loc := leadingNumberPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, nil
	}
	quantity, err := model.ParseQuantity(text[loc[2]:loc[3]])
	if err != nil {
		return "", err
	}
	draft.Quantity = quantity
	if loc[4] >= 0 {
		draft.Unit = model.ParseUnit(text[loc[4]:loc[5]], f.opts).String()
	}
	return text[loc[1]:], nil
}
