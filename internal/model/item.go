package model

import (
	"fmt"
	"time"
)

// DefaultItemCategory is the catch-all shopping category ("other").
const DefaultItemCategory = "outros"

// ShoppingItem is a persisted entry of a shopping list.
type ShoppingItem struct {
	CreatedAt time.Time `json:"created_at"`
	Price     *Money    `json:"-"`
	Quantity  Quantity  `json:"-"`
	ID        string    `json:"id"`
	ListName  string    `json:"list_name"`
	Section   string    `json:"section,omitempty"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	RawText   string    `json:"raw_text"`
	Checked   bool      `json:"checked"`
}

// Validate ensures the item can be persisted.
func (i *ShoppingItem) Validate() error {
	if i.ListName == "" {
		return fmt.Errorf("list name is required")
	}
	if i.Name == "" {
		return ErrEmptyItemName
	}
	if i.Quantity.Decimal().IsZero() {
		return fmt.Errorf("%w: quantity is required", ErrInvalidQuantity)
	}
	if i.Unit == "" {
		return fmt.Errorf("unit is required")
	}
	return nil
}

// Total returns price multiplied by quantity, rounded to the minor unit.
// It returns nil when the item has no price.
func (i *ShoppingItem) Total() *Money {
	if i.Price == nil {
		return nil
	}
	total := i.Price.majorDecimal().Mul(i.Quantity.Decimal())
	m := fromMajorDecimal(total, i.Price.Currency())
	return &m
}
