package filtering

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher tests a single string, such as an asset folder, against a pattern.
type Matcher interface {
	Match(value string) bool
	// String returns the pattern in the form ParseMatcher accepts.
	String() string
}

// globChars marks a folder pattern as a glob rather than a literal name.
const globChars = "*?[{"

// ExactMatcher matches a whole value, optionally ignoring case.
//
// Example:
//
//	m := &filtering.ExactMatcher{Pattern: "Vendors", IgnoreCase: true}
//	m.Match("vendors")  // true
//	m.Match("Vendors2") // false
type ExactMatcher struct {
	Pattern    string
	IgnoreCase bool
}

func (m *ExactMatcher) Match(value string) bool {
	if m.IgnoreCase {
		return strings.EqualFold(value, m.Pattern)
	}
	return value == m.Pattern
}

func (m *ExactMatcher) String() string {
	return m.Pattern
}

// GlobMatcher matches folder paths with doublestar syntax: "*" stays within
// one "/" segment, "**" spans segments, "?" is one character and "{a,b}"
// picks an alternative. A malformed pattern matches nothing.
//
// Example:
//
//	m := filtering.NewGlobMatcher("Clients/**")
//	m.Match("Clients/Acme/2024") // true
//	m.Match("Vendors")           // false
type GlobMatcher struct {
	Pattern string
	// IgnoreCase lower-cases pattern and value before matching.
	IgnoreCase bool
}

func (m *GlobMatcher) Match(value string) bool {
	pattern := m.Pattern
	if m.IgnoreCase {
		lower := newLowerer()
		pattern, value = lower.String(pattern), lower.String(value)
	}
	ok, err := doublestar.Match(pattern, value)
	return err == nil && ok
}

func (m *GlobMatcher) String() string {
	return m.Pattern
}

// AnyMatcher matches when at least one of Matchers does. With no matchers
// it matches nothing.
type AnyMatcher struct {
	Matchers []Matcher
}

func (m *AnyMatcher) Match(value string) bool {
	for _, inner := range m.Matchers {
		if inner.Match(value) {
			return true
		}
	}
	return false
}

// String returns e.g. "any(Vendors, Clients/*)".
func (m *AnyMatcher) String() string {
	parts := make([]string, len(m.Matchers))
	for i, inner := range m.Matchers {
		parts[i] = inner.String()
	}
	return "any(" + strings.Join(parts, ", ") + ")"
}

// NotMatcher inverts Matcher.
type NotMatcher struct {
	Matcher Matcher
}

func (m *NotMatcher) Match(value string) bool {
	return !m.Matcher.Match(value)
}

func (m *NotMatcher) String() string {
	return "!" + m.Matcher.String()
}

// NewExactMatcherIgnoreCase returns an ExactMatcher that folds case.
func NewExactMatcherIgnoreCase(pattern string) Matcher {
	return &ExactMatcher{Pattern: pattern, IgnoreCase: true}
}

// NewGlobMatcher returns a case-sensitive GlobMatcher.
func NewGlobMatcher(pattern string) Matcher {
	return &GlobMatcher{Pattern: pattern}
}

// NewAnyMatcher returns a matcher that ORs matchers.
func NewAnyMatcher(matchers ...Matcher) Matcher {
	return &AnyMatcher{Matchers: matchers}
}

// NewNotMatcher returns a matcher that negates matcher.
func NewNotMatcher(matcher Matcher) Matcher {
	return &NotMatcher{Matcher: matcher}
}

// ParseMatcher turns one --folder pattern into a case-insensitive matcher.
//
// A leading "!" negates the rest of the pattern. A pattern containing any of
// "*?[{" is a glob and is checked for syntax; anything else matches a folder
// name exactly.
//
// Parameters:
//   - pattern: One pattern from the comma-separated --folder value
//
// Returns:
//   - Matcher: The matcher for pattern
//   - error: ErrInvalidPattern (wrapped) when the glob is malformed
//
// Example:
//
//	filtering.ParseMatcher("clients/*") // GlobMatcher
//	filtering.ParseMatcher("!archive")  // NotMatcher around an ExactMatcher
func ParseMatcher(pattern string) (Matcher, error) {
	if rest, negated := strings.CutPrefix(pattern, "!"); negated {
		inner, err := ParseMatcher(rest)
		if err != nil {
			return nil, err
		}
		return NewNotMatcher(inner), nil
	}

	if !strings.ContainsAny(pattern, globChars) {
		return NewExactMatcherIgnoreCase(pattern), nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, invalidPattern(pattern)
	}
	return &GlobMatcher{Pattern: pattern, IgnoreCase: true}, nil
}

var (
	_ Matcher = (*ExactMatcher)(nil)
	_ Matcher = (*GlobMatcher)(nil)
	_ Matcher = (*AnyMatcher)(nil)
	_ Matcher = (*NotMatcher)(nil)
	_ Matcher = (*TokenMatcher)(nil)
)
