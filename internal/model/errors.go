package model

import "errors"

// Value object errors. Callers match them with errors.Is; the returned
// errors wrap these with the offending input.
var (
	// ErrInvalidQuantity indicates a malformed or non-positive amount.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidMoneyAmount indicates a non-numeric major amount or a fractional minor amount.
	ErrInvalidMoneyAmount = errors.New("invalid money amount")
	// ErrCurrencyMismatch indicates arithmetic across differing currency codes.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrEmptyItemName indicates nothing was left for the item name after token extraction.
	ErrEmptyItemName = errors.New("item name is empty")
)
