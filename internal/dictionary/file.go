package dictionary

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDictionary indicates a dictionary file that parsed but holds unusable data.
var ErrInvalidDictionary = errors.New("invalid dictionary")

// File is the on-disk layout of a dictionary override:
//
//	units:
//	  pt-BR:
//	    caixa: cx
//	    fardo: fd
type File struct {
	Units map[string]map[string]string `yaml:"units"`
}

// LoadFile reads a YAML dictionary override. Synonyms are lowercased and
// trimmed; empty synonyms or codes are rejected.
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user config
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML dictionary override.
func Parse(data []byte) (Map, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary: %w", err)
	}

	out := make(Map, len(f.Units))
	for locale, units := range f.Units {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale", ErrInvalidDictionary)
		}
		entries := make(Entries, len(units))
		for synonym, code := range units {
			synonym = strings.ToLower(strings.TrimSpace(synonym))
			code = strings.TrimSpace(code)
			if synonym == "" || code == "" {
				return nil, fmt.Errorf("%w: empty synonym or code in locale %s", ErrInvalidDictionary, locale)
			}
			entries[synonym] = code
		}
		out[locale] = entries
	}
	return out, nil
}

// Merge returns a new Map holding base with override layered on top, locale
// by locale. Neither argument is modified.
func Merge(base, override Map) Map {
	out := make(Map, len(base)+len(override))
	for locale, entries := range base {
		out[locale] = entries
	}
	for locale, entries := range override {
		if existing, ok := out[locale]; ok {
			out[locale] = merge(existing, entries)
			continue
		}
		out[locale] = entries
	}
	return out
}
