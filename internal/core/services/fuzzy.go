package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/core/ports/driving"
)

// Ensure FuzzyRanker implements the interface.
var _ driving.Ranker = FuzzyRanker{}

// NoiseFloor is the lowest score a term/text pair may have and still count
// as a match. A contiguous match starting at a word scores well above it
// however long the text; stray characters found mid-word land far below.
const NoiseFloor = -50

// Scoring weights for a single term/text match.
const (
	matchBonus          = 10 // per matched rune
	consecutiveBonus    = 15 // per matched rune directly after the previous one
	boundaryBonus       = 10 // per matched rune at a word boundary
	prefixBonus         = 20 // first matched rune is the first rune of text
	gapPenalty          = 2  // per skipped rune between first and last match
	maxLeadingPenalty   = 30 // cap on the one-point-per-rune leading penalty
	strayMultiplier     = 10 // applied to leading and gap penalties of stray matches
	unmatchedDivisor    = 8  // one point per this many unmatched runes
	maxUnmatchedPenalty = 20 // cap on the unmatched-length penalty
)

// MatchTerm scores a single term against a single text.
//
// The term's runes must appear in text in order, ignoring case. The returned
// Indexes hold one rune position per term rune. The boolean is false when
// no such subsequence exists or either input is empty.
func MatchTerm(term, text string) (domain.MatchResult, bool) {
	if term == "" || text == "" {
		return domain.MatchResult{}, false
	}

	// sahilm/fuzzy picks the best placement of each rune, not just the first.
	found := fuzzy.Find(term, []string{text})
	if len(found) == 0 {
		return domain.MatchResult{}, false
	}

	runes := []rune(text)
	indexes := runeIndexes(text, found[0].MatchedIndexes)
	if len(indexes) != utf8.RuneCountInString(term) {
		return domain.MatchResult{}, false
	}

	return domain.MatchResult{
		Score:   scoreMatch(runes, indexes),
		Indexes: indexes,
		Target:  text,
	}, true
}

// runeIndexes converts byte offsets into rune positions.
func runeIndexes(text string, byteOffsets []int) []int {
	positions := make(map[int]int, len(text))
	n := 0
	for offset := range text {
		positions[offset] = n
		n++
	}

	out := make([]int, 0, len(byteOffsets))
	for _, b := range byteOffsets {
		if pos, ok := positions[b]; ok {
			out = append(out, pos)
		}
	}
	return out
}

// scoreMatch rates matched positions inside text. Higher is better.
//
// A match is stray when it starts mid-word and is not one contiguous run of
// two or more runes. Its leading and gap penalties are multiplied so that
// coincidental hits sink under NoiseFloor.
func scoreMatch(runes []rune, matches []int) int {
	if len(matches) == 0 {
		return 0
	}

	score := len(matches) * matchBonus

	for i, idx := range matches {
		if i > 0 && idx == matches[i-1]+1 {
			score += consecutiveBonus
		}
		if isWordBoundary(runes, idx) {
			score += boundaryBonus
		}
	}

	first, last := matches[0], matches[len(matches)-1]
	if first == 0 {
		score += prefixBonus
	}

	penalty := min(first, maxLeadingPenalty)
	if gap := last - first + 1 - len(matches); gap > 0 {
		penalty += gap * gapPenalty
	}
	if isStray(runes, matches) {
		penalty *= strayMultiplier
	}
	score -= penalty

	score -= min((len(runes)-len(matches))/unmatchedDivisor, maxUnmatchedPenalty)

	return score
}

// isStray reports whether a match starts mid-word without forming a
// contiguous run of at least two runes.
func isStray(runes []rune, matches []int) bool {
	if isWordBoundary(runes, matches[0]) {
		return false
	}
	if len(matches) < 2 {
		return true
	}
	return matches[len(matches)-1]-matches[0]+1 != len(matches)
}

// isWordBoundary checks if the rune at idx starts a word.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev, curr := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) || unicode.IsSymbol(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}

// FuzzyRanker matches multi-word queries against groups of texts.
// It holds no state and is safe for concurrent use.
type FuzzyRanker struct{}

// NewFuzzyRanker creates a ranker.
func NewFuzzyRanker() FuzzyRanker {
	return FuzzyRanker{}
}

// Match is MatchAll over a single text.
func (r FuzzyRanker) Match(query, text string, opts domain.MatchOptions) (domain.MatchResult, bool) {
	return r.MatchAll(query, []string{text}, opts)
}

// MatchAll matches query against texts and folds the per-pair results into
// one. The score is the best pair score; indexes from every usable pair are
// concatenated by term, then by text.
//
// Unless opts.Loose is set, every term but the last must match at least one
// text. With SplitOnSpace the last term is the whole query, so a phrase
// that only matches as a whole is not enough on its own.
func (r FuzzyRanker) MatchAll(query string, texts []string, opts domain.MatchOptions) (domain.MatchResult, bool) {
	if strings.TrimSpace(query) == "" {
		return domain.MatchResult{}, false
	}

	terms := queryTerms(query, opts.SplitOnSpace)
	candidates := nonBlank(texts)

	var (
		best    int
		found   bool
		indexes []int
	)
	for i, term := range terms {
		termMatched := false
		for _, text := range candidates {
			m, ok := MatchTerm(term, text)
			if !ok || m.Score < NoiseFloor {
				continue
			}
			if !found || m.Score > best {
				best = m.Score
			}
			found = true
			termMatched = true
			indexes = append(indexes, m.Indexes...)
		}
		if !termMatched && !opts.Loose && i < len(terms)-1 {
			return domain.MatchResult{}, false
		}
	}

	if !found {
		return domain.MatchResult{}, false
	}

	return domain.MatchResult{
		Score:   best,
		Indexes: indexes,
		Target:  strings.Join(texts, " "),
	}, true
}

// queryTerms splits query into the terms to match. The untouched query is
// always the final term.
func queryTerms(query string, split bool) []string {
	if !split {
		return []string{query}
	}
	words := strings.Fields(query)
	return append(words, query)
}

// nonBlank drops texts that are empty or whitespace only.
func nonBlank(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
