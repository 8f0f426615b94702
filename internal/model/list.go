package model

// ListType is the kind of list a piece of text most likely belongs to.
type ListType string

// List type constants.
const (
	ListTypeShopping ListType = "shopping"
	ListTypeMovies   ListType = "movies"
	ListTypeBooks    ListType = "books"
	ListTypeGames    ListType = "games"
	ListTypeTodo     ListType = "todo"
	// ListTypeNotes is the fallback when nothing in the text points elsewhere.
	ListTypeNotes ListType = "notes"
)

// ListTypePriority breaks ties between equally scored list types; earlier wins.
var ListTypePriority = []ListType{
	ListTypeShopping,
	ListTypeMovies,
	ListTypeBooks,
	ListTypeGames,
	ListTypeTodo,
	ListTypeNotes,
}

// Confidence is an ordered confidence level for an inferred list type.
type Confidence int

// Confidence levels, lowest first.
const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

// String returns the lowercase name of the level.
func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	default:
		return "unknown"
	}
}

// List is a named list of items.
type List struct {
	Name      string   `json:"name"`
	Type      ListType `json:"type"`
	ItemCount int      `json:"item_count"`
}
