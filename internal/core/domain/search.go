package domain

import "strings"

// MatchOptions configures how a query is matched against candidate texts.
type MatchOptions struct {
	// SplitOnSpace matches every whitespace-separated word of the query on
	// its own, followed by the whole query as one final term.
	SplitOnSpace bool

	// Loose accepts a result when any term matched. By default every term
	// except the last must match somewhere in the texts.
	Loose bool
}

// MatchResult is the outcome of a successful fuzzy match.
type MatchResult struct {
	// Score ranks the match. Higher is better; the absolute value carries
	// no meaning beyond the noise floor.
	Score int `json:"score"`

	// Indexes are the rune positions of matched characters, ascending within
	// each term/text pair and concatenated across pairs. Positions refer to
	// the individual text they were matched in.
	Indexes []int `json:"indexes"`

	// Target is the candidate texts joined with single spaces, for display.
	Target string `json:"target"`
}

// ItemKind identifies what a searchable item represents.
type ItemKind string

// Available item kinds.
const (
	ItemKindRequest    ItemKind = "request"
	ItemKindCollection ItemKind = "collection"
	ItemKindWorkspace  ItemKind = "workspace"
)

// IsValid returns true if the item kind is recognised.
func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindRequest, ItemKindCollection, ItemKindWorkspace:
		return true
	default:
		return false
	}
}

// ParseItemKind converts a user-supplied kind name, ignoring case.
func ParseItemKind(s string) (ItemKind, error) {
	k := ItemKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrUnsupportedKind
	}
	return k, nil
}

// Item is anything the user can search for.
type Item struct {
	// ID uniquely identifies the item.
	ID string `toml:"id" json:"id"`

	// Kind is the item type.
	Kind ItemKind `toml:"kind" json:"kind"`

	// Name is the display name.
	Name string `toml:"name" json:"name"`

	// Texts are the fields matched against the query, e.g. name, URL, method.
	// When empty, Name is used.
	Texts []string `toml:"texts" json:"texts,omitempty"`
}

// SearchTexts returns the texts to match for this item.
func (i Item) SearchTexts() []string {
	if len(i.Texts) == 0 {
		return []string{i.Name}
	}
	return i.Texts
}

// SearchOptions configures a search over items.
type SearchOptions struct {
	MatchOptions

	// Limit is the maximum number of results. Zero means no limit.
	Limit int

	// Kinds filters to specific item kinds. Empty means all kinds.
	Kinds []ItemKind
}

// RankedItem is an item that matched a search, with its match details.
type RankedItem struct {
	// Item is the matched item.
	Item Item `json:"item"`

	// Match holds score and highlight positions.
	Match MatchResult `json:"match"`
}
