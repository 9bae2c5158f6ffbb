package filtering

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajxudir/assetview/pkg/assets"
)

// MinTokenLength is the shortest query token, in characters, that takes part
// in matching. Shorter tokens are dropped.
const MinTokenLength = 2

// newLowerer returns a fresh lower-casing caser. Casers carry state and must
// not be shared between goroutines, so every call site builds its own.
func newLowerer() cases.Caser {
	return cases.Lower(language.Und)
}

// Tokenize splits a search query into match tokens.
//
// The query is split on runs of whitespace, every token is lower-cased, and
// tokens shorter than MinTokenLength characters are discarded.
//
// Parameters:
//   - query: Raw search query
//
// Returns:
//   - []string: Lower-cased tokens in query order; empty when nothing qualifies
//
// Example:
//
//	filtering.Tokenize("  Alpha  b CD ") // ["alpha", "cd"]
func Tokenize(query string) []string {
	return tokenize(query, newLowerer())
}

func tokenize(query string, lower cases.Caser) []string {
	fields := strings.Fields(query)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		token := lower.String(f)
		if utf8.RuneCountInString(token) < MinTokenLength {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// SearchText returns the lower-cased text a query is matched against: every
// field value of the asset in its enumeration order, joined by single spaces.
//
// Parameters:
//   - a: Asset to serialize
//
// Returns:
//   - string: Lower-cased concatenated field text
func SearchText(a assets.Asset) string {
	return newLowerer().String(a.Text())
}

// Filter returns the assets whose search text contains every query token.
//
// Matching is plain substring containment, not word-boundary matching. The
// result keeps the relative order of records. When the query yields no
// tokens (empty, blank, or only single-character words) a copy of records is
// returned unchanged. records is never modified.
//
// Parameters:
//   - records: Assets to filter
//   - query: Search query
//
// Returns:
//   - []assets.Asset: Stable subset of records
//
// Example:
//
//	filtering.Filter(all, "al")   // only assets whose text contains "al"
//	filtering.Filter(all, "a l")  // every asset; both tokens are too short
func Filter(records []assets.Asset, query string) []assets.Asset {
	m := NewTokenMatcher(query)
	if len(m.Tokens) == 0 {
		return slices.Clone(records)
	}

	out := make([]assets.Asset, 0, len(records))
	for _, a := range records {
		if m.MatchAsset(a) {
			out = append(out, a)
		}
	}
	return out
}

func containsAll(text string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(text, token) {
			return false
		}
	}
	return true
}

// TokenMatcher matches text that contains every token of a search query.
//
// It applies the same rule as Filter to a single string so the token search
// can be combined with the other matchers.
//
// Fields:
//   - Query: The original query
//   - Tokens: Lower-cased qualifying tokens of Query
type TokenMatcher struct {
	// Query is the original search query.
	Query string

	// Tokens are the lower-cased tokens derived from Query.
	Tokens []string
}

// NewTokenMatcher creates a matcher for a search query.
//
// Parameters:
//   - query: Search query
//
// Returns:
//   - *TokenMatcher: Matcher with the query's tokens
func NewTokenMatcher(query string) *TokenMatcher {
	return &TokenMatcher{Query: query, Tokens: Tokenize(query)}
}

// Match tests if value contains every token, ignoring case. A matcher with
// no tokens matches everything.
//
// Parameters:
//   - value: Text to test
//
// Returns:
//   - bool: true if every token is a substring of the lower-cased value
func (m *TokenMatcher) Match(value string) bool {
	if len(m.Tokens) == 0 {
		return true
	}
	return containsAll(newLowerer().String(value), m.Tokens)
}

// MatchAsset tests an asset's search text against the tokens.
//
// Parameters:
//   - a: Asset to test
//
// Returns:
//   - bool: true if the asset would be kept by Filter for the same query
func (m *TokenMatcher) MatchAsset(a assets.Asset) bool {
	if len(m.Tokens) == 0 {
		return true
	}
	return containsAll(SearchText(a), m.Tokens)
}

// String returns the tokens joined by spaces.
//
// Returns:
//   - string: Token list (e.g., "alpha cd")
func (m *TokenMatcher) String() string {
	return strings.Join(m.Tokens, " ")
}
