package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Strategy scores a candidate string against a pattern. Higher is better;
// a returned ok=false means no match.
type Strategy interface {
	Score(candidate, pattern string) (score int64, ok bool)
}

// Skim is the fuzzy-match strategy: an exact match always scores the
// maximum representable value; otherwise the subsequence fuzzy score from
// sahilm/fuzzy (the same algorithm family bubbles/list uses to fuzzy-filter
// its items) is used.
type Skim struct{}

func (Skim) Score(candidate, pattern string) (int64, bool) {
	if candidate == pattern {
		return maxScore, true
	}
	matches := fuzzy.Find(pattern, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	return int64(matches[0].Score), true
}

// maxScore is the score assigned to an exact match, guaranteeing it always
// ranks first regardless of the fuzzy scorer's own scale.
const maxScore = int64(1) << 62

// Contain is the case-insensitive substring strategy: score 1 on any
// match, no match otherwise.
type Contain struct{}

func (Contain) Score(candidate, pattern string) (int64, bool) {
	if strings.Contains(strings.ToLower(candidate), strings.ToLower(pattern)) {
		return 1, true
	}
	return 0, false
}
