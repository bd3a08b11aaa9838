package domain

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Suggestion caps. The fetch ceiling bounds how many raw candidates are
// pulled from the store before scoring and is independent of the response
// caps.
const (
	SuggestFetchLimit    = 10
	SuggestResultLimit   = 5
	SuggestCombinedLimit = 12
)

// MinSuggestQueryLen is the shortest query worth a store round trip.
// Anything shorter returns an empty suggestion list immediately.
const MinSuggestQueryLen = 2

// MatchField is one searchable field of a candidate: its current value and
// the bonus it contributes when it contains the query. ExactBonus is added
// on top of Weight when the field equals the full query case-insensitively.
// An empty Value never matches.
type MatchField struct {
	Value      string
	Weight     int
	ExactBonus int
}

// Matchable is implemented by entities that participate in suggestion
// ranking. The returned fields carry the entity-specific weight profile.
type Matchable interface {
	MatchFields() []MatchField
}

// Scored pairs a candidate with its computed relevance score. Scores exist
// only for ranking and response shaping; they are never persisted.
type Scored[T Matchable] struct {
	Item  T
	Score int
}

// ScoreFields computes the additive relevance score of one candidate.
// Every field is tested independently, so a candidate matching several
// fields accumulates several bonuses. Missing (empty) fields contribute 0.
func ScoreFields(query string, fields []MatchField) int {
	q := strings.ToLower(query)
	score := 0
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		v := strings.ToLower(f.Value)
		if !strings.Contains(v, q) {
			continue
		}
		score += f.Weight
		if v == q {
			score += f.ExactBonus
		}
	}
	return score
}

// NormalizeQuery trims the raw query and reports whether it is long enough
// to search for. Length is counted in runes so a single multibyte
// character does not pass the gate.
func NormalizeQuery(raw string) (string, bool) {
	q := strings.TrimSpace(raw)
	return q, utf8.RuneCountInString(q) >= MinSuggestQueryLen
}

// Rank scores every candidate against query, orders them by score
// descending, and truncates to limit. The sort is stable: candidates with
// equal scores keep their fetch order. Candidates scoring zero are kept:
// the store already filtered on a substring match, so a zero here means a
// projection/field mismatch rather than a non-match, and dropping the row
// would hide data problems from the suggestion UI.
func Rank[T Matchable](query string, candidates []T, limit int) []Scored[T] {
	scored := make([]Scored[T], len(candidates))
	for i, c := range candidates {
		scored[i] = Scored[T]{Item: c, Score: ScoreFields(query, c.MatchFields())}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
