// Package inference guesses which kind of list a piece of free text belongs to
// by scoring it against per-list-type vocabulary patterns.
package inference

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Veraticus/listwise/internal/model"
)

// Result is the outcome of Infer.
type Result struct {
	Scores     map[model.ListType]int `json:"scores"`
	ListType   model.ListType         `json:"list_type"`
	Confidence model.Confidence       `json:"confidence"`
}

// Service scores text against an ordered rule table. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	rules    []Rule
	priority []model.ListType
}

// Option configures a Service.
type Option func(*Service)

// WithRules appends rules to the default table.
func WithRules(rules ...Rule) Option {
	return func(s *Service) {
		s.rules = append(s.rules, rules...)
	}
}

// WithPriority replaces the tie-break ordering. List types that have rules
// but are missing from priority are ranked after it, in rule order, so they
// can still win.
func WithPriority(priority ...model.ListType) Option {
	return func(s *Service) {
		s.priority = append([]model.ListType(nil), priority...)
	}
}

// NewService creates a Service using the built-in rules.
func NewService(opts ...Option) *Service {
	s := &Service{
		rules:    append([]Rule(nil), defaultRules...),
		priority: model.ListTypePriority,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.priority = completePriority(s.priority, s.rules)
	return s
}

// completePriority appends the list types of rules not already ranked.
func completePriority(priority []model.ListType, rules []Rule) []model.ListType {
	ranked := make(map[model.ListType]bool, len(priority))
	out := append([]model.ListType(nil), priority...)
	for _, listType := range priority {
		ranked[listType] = true
	}
	for _, r := range rules {
		if !ranked[r.ListType] {
			ranked[r.ListType] = true
			out = append(out, r.ListType)
		}
	}
	return out
}

// Infer returns the list type whose patterns match text the most. Each
// pattern counts once regardless of how often it occurs. Ties go to the list
// type listed first in the priority order; no match at all yields
// model.ListTypeNotes with low confidence.
func (s *Service) Infer(text string) Result {
	folded := Fold(text)

	scores := make(map[model.ListType]int)
	for _, r := range s.rules {
		if r.Pattern.MatchString(folded) {
			scores[r.ListType]++
		}
	}

	best := model.ListTypeNotes
	bestScore := 0
	for _, listType := range s.priority {
		if scores[listType] > bestScore {
			best = listType
			bestScore = scores[listType]
		}
	}

	return Result{
		ListType:   best,
		Confidence: calculateConfidence(bestScore),
		Scores:     scores,
	}
}

// Matches returns the names of the rules matching text, as "type/name".
func (s *Service) Matches(text string) []string {
	folded := Fold(text)
	var out []string
	for _, r := range s.rules {
		if r.Pattern.MatchString(folded) {
			out = append(out, string(r.ListType)+"/"+r.Name)
		}
	}
	return out
}

// calculateConfidence maps a winning score to a confidence level.
// A score of 1 and a score of 2 or more both map to high, so
// model.ConfidenceMedium is never produced here.
func calculateConfidence(score int) model.Confidence {
	if score <= 0 {
		return model.ConfidenceLow
	}
	return model.ConfidenceHigh
}

// Fold lowercases text and strips diacritics ("Feijão" -> "feijao").
func Fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}
