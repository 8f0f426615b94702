// Package dictionary holds the locale-aware unit synonym tables used to
// resolve free-text unit tokens to canonical unit codes.
//
// The process-wide tables are built once at package initialization and never
// mutated afterwards, so lookups need no synchronization.
package dictionary

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is the locale used when neither the requested tag nor its
// base language has a dictionary.
const DefaultLocale = "pt"

// Entries maps a lowercased synonym to its canonical unit code.
type Entries map[string]string

// Map maps a locale tag to its synonym entries.
type Map map[string]Entries

// Every canonical code of a built-in table is also a synonym of itself, so
// normalized output such as "2 bdj" parses back to the same unit.
var portuguese = Entries{
	"un": "un", "und": "un", "unid": "un", "unidade": "un", "unidades": "un",
	"kg": "kg", "quilo": "kg", "quilos": "kg", "kilo": "kg", "kilos": "kg",
	"quilograma": "kg", "quilogramas": "kg",
	"g": "g", "gr": "g", "grama": "g", "gramas": "g",
	"mg": "mg", "miligrama": "mg", "miligramas": "mg",
	"l": "l", "lt": "l", "litro": "l", "litros": "l",
	"ml": "ml", "mililitro": "ml", "mililitros": "ml",
	"dz": "dz", "duzia": "dz", "duzias": "dz", "dúzia": "dz", "dúzias": "dz",
	"pct": "pct", "pacote": "pct", "pacotes": "pct",
}

var brazilianExtras = Entries{
	"saco": "pct", "sacos": "pct", "saquinho": "pct",
	"bdj": "bdj", "bandeja": "bdj", "bandejas": "bdj",
}

var english = Entries{
	"un": "un", "unit": "un", "units": "un", "pc": "un", "pcs": "un", "piece": "un", "pieces": "un",
	"kg": "kg", "kilo": "kg", "kilos": "kg", "kilogram": "kg", "kilograms": "kg",
	"g": "g", "gram": "g", "grams": "g",
	"mg": "mg", "milligram": "mg", "milligrams": "mg",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml", "millilitre": "ml", "millilitres": "ml",
	"dz": "dz", "dozen": "dz", "dozens": "dz",
	"pct": "pct", "pack": "pct", "packs": "pct", "package": "pct", "packages": "pct",
}

var defaults = Map{
	"pt":    portuguese,
	"pt-BR": merge(portuguese, brazilianExtras),
	"en":    english,
}

var defaultSynonyms = collectSynonyms(defaults)

// Default returns the process-wide dictionaries. The returned map is shared
// and must not be modified.
func Default() Map {
	return defaults
}

// Resolve returns the entries for locale from m, falling back to the
// canonical form of the tag, then its base language (pt-PT -> pt), then
// DefaultLocale. A nil m resolves against Default. The result is empty when
// nothing matches.
func Resolve(m Map, locale string) Entries {
	if m == nil {
		m = defaults
	}
	for _, candidate := range candidates(locale) {
		if entries, ok := m[candidate]; ok {
			return entries
		}
	}
	return Entries{}
}

// Lookup resolves token (trimmed, lowercased) to its canonical code.
func Lookup(m Map, locale, token string) (string, bool) {
	code, ok := Resolve(m, locale)[strings.ToLower(strings.TrimSpace(token))]
	return code, ok
}

// Synonyms returns every synonym across all locales of m, longest first, so
// that a regular-expression alternation built from it prefers "kg" over "g".
// A nil m returns the precomputed default list.
func Synonyms(m Map) []string {
	if m == nil {
		return defaultSynonyms
	}
	return collectSynonyms(m)
}

func candidates(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return []string{DefaultLocale}
	}
	out := []string{locale}
	if tag, err := language.Parse(locale); err == nil {
		out = append(out, tag.String())
		if base, conf := tag.Base(); conf != language.No {
			out = append(out, base.String())
		}
	} else if base, _, ok := strings.Cut(locale, "-"); ok {
		out = append(out, strings.ToLower(base))
	}
	return append(out, DefaultLocale)
}

func collectSynonyms(m Map) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, entries := range m {
		for synonym := range entries {
			if _, ok := seen[synonym]; ok {
				continue
			}
			seen[synonym] = struct{}{}
			out = append(out, synonym)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

func merge(base Entries, extra Entries) Entries {
	out := make(Entries, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// LookupAny resolves token against every locale of m, preferring
// DefaultLocale, then locales in lexical order.
func LookupAny(m Map, token string) (string, bool) {
	if m == nil {
		m = defaults
	}
	token = strings.ToLower(strings.TrimSpace(token))
	if code, ok := m[DefaultLocale][token]; ok {
		return code, true
	}
	locales := make([]string, 0, len(m))
	for locale := range m {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	for _, locale := range locales {
		if code, ok := m[locale][token]; ok {
			return code, true
		}
	}
	return "", false
}
