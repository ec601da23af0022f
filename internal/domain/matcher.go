package domain

import (
	"math/big"
	"strings"
	"unicode"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

const (
	// DefaultWildcardMarker is the submitted line that stands in for a
	// large, unpredictable reference value.
	DefaultWildcardMarker = "xxx"
	// DefaultWildcardThreshold is the magnitude a reference value must
	// exceed before the marker may replace it.
	DefaultWildcardThreshold = 1000
)

// Comparator decides whether a submitted line equals a reference line.
type Comparator interface {
	Equal(submitted, reference string) bool
}

// ExactComparator compares lines byte for byte.
type ExactComparator struct{}

// Equal implements Comparator.
func (ExactComparator) Equal(submitted, reference string) bool {
	return submitted == reference
}

// WhitespaceInsensitiveComparator compares lines after removing all
// whitespace from both sides.
type WhitespaceInsensitiveComparator struct{}

// Equal implements Comparator.
func (WhitespaceInsensitiveComparator) Equal(submitted, reference string) bool {
	return stripSpaces(submitted) == stripSpaces(reference)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

// WildcardPolicy gates the wildcard marker: it may replace a reference line
// only when that line is an integer whose absolute value exceeds Threshold.
type WildcardPolicy struct {
	Marker    string
	Threshold int64
}

// DefaultWildcardPolicy returns the policy with the stock marker and threshold.
func DefaultWildcardPolicy() WildcardPolicy {
	return WildcardPolicy{Marker: DefaultWildcardMarker, Threshold: DefaultWildcardThreshold}
}

// Allows reports whether the marker may stand in for reference. Non-numeric
// reference lines are never eligible.
func (p WildcardPolicy) Allows(reference string) bool {
	if p.Marker == "" {
		return false
	}

	value, ok := new(big.Int).SetString(strings.TrimSpace(reference), 10)
	if !ok {
		return false
	}

	return value.CmpAbs(big.NewInt(p.Threshold)) > 0
}

// Matcher combines a comparator with the wildcard policy.
type Matcher struct {
	Comparator Comparator
	Wildcard   WildcardPolicy
}

// NewMatcher builds a Matcher. ignoreWhitespace selects the
// whitespace-insensitive comparator.
func NewMatcher(ignoreWhitespace bool, policy WildcardPolicy) Matcher {
	var cmp Comparator = ExactComparator{}
	if ignoreWhitespace {
		cmp = WhitespaceInsensitiveComparator{}
	}

	return Matcher{Comparator: cmp, Wildcard: policy}
}

// Match reports whether submitted satisfies reference, either directly or as
// a licensed wildcard.
func (mt Matcher) Match(submitted, reference string) bool {
	if mt.Comparator.Equal(submitted, reference) {
		return true
	}

	return mt.isMarker(submitted) && mt.Wildcard.Allows(reference)
}

// MatchHeader reports whether submitted opens the block with the given header.
// The wildcard is licensed against the header's value, its digit run.
func (mt Matcher) MatchHeader(submitted string, block m.Block) bool {
	if mt.Comparator.Equal(submitted, block.Header) {
		return true
	}

	return mt.isMarker(submitted) && mt.Wildcard.Allows(block.ID)
}

// isMarker compares byte for byte whatever the comparator.
func (mt Matcher) isMarker(submitted string) bool {
	return mt.Wildcard.Marker != "" && submitted == mt.Wildcard.Marker
}
