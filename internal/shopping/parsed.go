package shopping

import (
	"fmt"
	"strings"

	"github.com/Veraticus/listwise/internal/model"
	"github.com/Veraticus/listwise/internal/parser"
)

// Defaults fill the fields a parsed line does not name.
type Defaults struct {
	ListName string
	Section  string
	// Price is used when the line carries no price of its own.
	Price *model.Money
}

// ItemFromParsed turns the output of SmartInputParser into a storable item.
// A quantity found by the parser is taken as is; otherwise the title goes
// through FromFreeText so glued units such as "2cx" are still honored.
// "@category" tags left in the title apply either way.
func (f *Factory) ItemFromParsed(p parser.ParsedInput, defaults Defaults) (*model.ShoppingItem, error) {
	draft, err := f.draft(p.Title, p.Amount == nil)
	if err != nil {
		return nil, err
	}
	if p.Amount != nil {
		draft.Quantity = p.Amount.Quantity
		draft.Unit = p.Amount.Unit.String()
	}

	item := &model.ShoppingItem{
		ListName: strings.TrimSpace(defaults.ListName),
		Section:  strings.TrimSpace(defaults.Section),
		Name:     draft.Name,
		Quantity: draft.Quantity,
		Unit:     draft.Unit,
		Category: draft.Category,
		RawText:  p.RawText,
		Price:    defaults.Price,
	}
	if p.ListName != nil {
		item.ListName = *p.ListName
	}
	if p.SectionName != nil {
		item.Section = *p.SectionName
	}
	if p.Price != nil {
		price, err := model.MoneyFromMajorFloat(*p.Price, p.Currency)
		if err != nil {
			return nil, fmt.Errorf("invalid price in %q: %w", p.RawText, err)
		}
		item.Price = &price
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}
