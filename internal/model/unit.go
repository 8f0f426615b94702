package model

import (
	"strings"

	"github.com/Veraticus/listwise/internal/dictionary"
)

// DefaultUnitCode is the unit assumed when none is given ("unidade").
const DefaultUnitCode = "un"

// UnitOptions controls unit resolution for a single ParseUnit call.
type UnitOptions struct {
	// Dictionaries replaces the process-wide dictionaries for this call when non-nil.
	Dictionaries dictionary.Map
	// Locale selects the synonym table, e.g. "pt-BR" or "en-US".
	Locale string
}

// Unit is a canonical unit code such as "kg", "l" or "un", or a custom token
// preserved verbatim when no dictionary knows it. It is never empty.
type Unit struct {
	code   string
	custom bool
}

// ParseUnit resolves a free-text unit token. It never fails: empty input
// yields DefaultUnitCode and unknown tokens are kept as custom units.
func ParseUnit(input string, opts UnitOptions) Unit {
	token := strings.TrimSpace(input)
	if token == "" {
		return Unit{code: DefaultUnitCode}
	}
	if code, ok := dictionary.Lookup(opts.Dictionaries, opts.Locale, token); ok {
		return Unit{code: code}
	}
	return Unit{code: token, custom: true}
}

// String returns the unit code.
func (u Unit) String() string {
	if u.code == "" {
		return DefaultUnitCode
	}
	return u.code
}

// IsCustom reports whether the unit was preserved from unrecognized input.
func (u Unit) IsCustom() bool {
	return u.custom
}

// UnitFromCode wraps an already canonical unit code.
func UnitFromCode(code string) Unit {
	code = strings.TrimSpace(code)
	if code == "" {
		return Unit{code: DefaultUnitCode}
	}
	return Unit{code: code}
}
