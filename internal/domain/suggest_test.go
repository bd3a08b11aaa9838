package domain

import (
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{name: "empty", raw: "", expected: "", ok: false},
		{name: "whitespace only", raw: "   ", expected: "", ok: false},
		{name: "single char", raw: "a", expected: "a", ok: false},
		{name: "single char padded", raw: "  a  ", expected: "a", ok: false},
		{name: "single multibyte char", raw: "é", expected: "é", ok: false},
		{name: "two multibyte chars", raw: "éé", expected: "éé", ok: true},
		{name: "two chars", raw: "go", expected: "go", ok: true},
		{name: "trimmed", raw: "  goa  ", expected: "goa", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeQuery(tt.raw)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("NormalizeQuery(%q) = (%q, %v), want (%q, %v)",
					tt.raw, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestScoreFields(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		fields   []MatchField
		expected int
	}{
		{
			name:  "single contains match",
			query: "goa",
			fields: []MatchField{
				{Value: "Goa Tour", Weight: 10, ExactBonus: 5},
			},
			expected: 10,
		},
		{
			name:  "exact match earns bonus",
			query: "goa",
			fields: []MatchField{
				{Value: "Goa", Weight: 10, ExactBonus: 5},
			},
			expected: 15,
		},
		{
			name:  "exact match is case-insensitive",
			query: "GOA",
			fields: []MatchField{
				{Value: "goa", Weight: 10, ExactBonus: 5},
			},
			expected: 15,
		},
		{
			name:  "bonuses accumulate across fields",
			query: "goa",
			fields: []MatchField{
				{Value: "Goa Beach Escape", Weight: 10, ExactBonus: 5},
				{Value: "Goa", Weight: 8},
				{Value: "Beaches of Goa and beyond", Weight: 3},
			},
			expected: 21,
		},
		{
			name:  "missing field contributes nothing",
			query: "goa",
			fields: []MatchField{
				{Value: "Goa Tour", Weight: 10, ExactBonus: 5},
				{Value: "", Weight: 8},
			},
			expected: 10,
		},
		{
			name:  "no match at all",
			query: "ladakh",
			fields: []MatchField{
				{Value: "Goa Tour", Weight: 10, ExactBonus: 5},
				{Value: "Goa", Weight: 8},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreFields(tt.query, tt.fields); got != tt.expected {
				t.Errorf("ScoreFields(%q) = %d, want %d", tt.query, got, tt.expected)
			}
		})
	}
}

func TestRank_ExactTitleBeatsSubstring(t *testing.T) {
	exact := &Package{Title: "Go", Destination: "Japan", Description: "..."}
	substring := &Package{Title: "Goa Tour", Destination: "Goa", Description: "Beaches"}

	ranked := Rank("go", []*Package{substring, exact}, SuggestResultLimit)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].Item.Title != "Go" {
		t.Errorf("expected exact-match title first, got %q", ranked[0].Item.Title)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Errorf("exact match must outrank substring: %d vs %d", ranked[0].Score, ranked[1].Score)
	}
}

func TestRank_ExactBonusDominatesSecondaryFields(t *testing.T) {
	// The rival matches every secondary field it has, so the exact title
	// only wins if its bonus exceeds their combined weight. Checked per
	// profile because each carries its own weights.
	t.Run("package", func(t *testing.T) {
		exact := &Package{Title: "Go"}
		rival := &Package{Title: "Goa Tour", Destination: "Goa", Description: "go wild"}
		ranked := Rank("go", []*Package{rival, exact}, SuggestResultLimit)
		if ranked[0].Item.Title != "Go" {
			t.Errorf("expected exact-match title first, got %q (scores %d vs %d)",
				ranked[0].Item.Title, ranked[0].Score, ranked[1].Score)
		}
	})

	t.Run("destination", func(t *testing.T) {
		exact := &Destination{Name: "Goa"}
		rival := &Destination{
			Name:        "Goa Beaches",
			Location:    "Goa, India",
			Country:     "Goa",
			State:       "Goa",
			Description: "All of Goa",
		}
		ranked := Rank("goa", []*Destination{rival, exact}, SuggestResultLimit)
		if ranked[0].Item.Name != "Goa" {
			t.Errorf("expected exact-match name first, got %q (scores %d vs %d)",
				ranked[0].Item.Name, ranked[0].Score, ranked[1].Score)
		}
	})

	t.Run("holiday type", func(t *testing.T) {
		exact := &HolidayType{Title: "Trek"}
		rival := &HolidayType{
			Title:            "Trekking",
			Description:      "High altitude treks",
			ShortDescription: "Trek hard",
		}
		ranked := Rank("trek", []*HolidayType{rival, exact}, SuggestResultLimit)
		if ranked[0].Item.Title != "Trek" {
			t.Errorf("expected exact-match title first, got %q (scores %d vs %d)",
				ranked[0].Item.Title, ranked[0].Score, ranked[1].Score)
		}
	})
}

func TestRank_StableOnTies(t *testing.T) {
	// Identical weight profiles, identical matches: fetch order must hold.
	a := &Package{ID: "a", Title: "Goa One"}
	b := &Package{ID: "b", Title: "Goa Two"}
	c := &Package{ID: "c", Title: "Goa Three"}

	ranked := Rank("goa", []*Package{a, b, c}, SuggestResultLimit)

	order := []string{ranked[0].Item.ID, ranked[1].Item.ID, ranked[2].Item.ID}
	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("tie order changed: got %v, want %v", order, want)
		}
	}
}

func TestRank_TruncatesToLimit(t *testing.T) {
	candidates := make([]*Package, SuggestFetchLimit)
	for i := range candidates {
		candidates[i] = &Package{Title: "Goa Tour"}
	}

	ranked := Rank("goa", candidates, SuggestResultLimit)
	if len(ranked) != SuggestResultLimit {
		t.Errorf("expected cap at %d, got %d", SuggestResultLimit, len(ranked))
	}
}

func TestRank_KeepsZeroScores(t *testing.T) {
	// A candidate the store matched on a non-scored projection field still
	// appears, just at the bottom.
	match := &Package{Title: "Goa Tour"}
	stray := &Package{Title: "Ladakh"}

	ranked := Rank("goa", []*Package{stray, match}, SuggestResultLimit)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].Item.Title != "Goa Tour" || ranked[1].Score != 0 {
		t.Errorf("expected match first, zero-score kept last: %+v", ranked)
	}
}

func TestDestinationMatchFields_LocationAwareWeights(t *testing.T) {
	d := &Destination{
		Name:        "Jaipur",
		Location:    "Rajasthan, India",
		Country:     "India",
		State:       "Rajasthan",
		Description: "The pink city of Rajasthan",
	}

	// "rajasthan" hits location, state and description.
	got := ScoreFields("rajasthan", d.MatchFields())
	want := DestinationLocationWeight + DestinationStateWeight + DestinationDescWeight
	if got != want {
		t.Errorf("location-aware score = %d, want %d", got, want)
	}
}

func TestHolidayTypeMatchFields(t *testing.T) {
	h := &HolidayType{
		Title:            "Honeymoon",
		Description:      "Romantic honeymoon escapes",
		ShortDescription: "Honeymoon specials",
	}

	got := ScoreFields("honeymoon", h.MatchFields())
	want := HolidayTypeTitleWeight + HolidayTypeTitleExactBonus +
		HolidayTypeDescWeight + HolidayTypeShortDescWeight
	if got != want {
		t.Errorf("holiday type score = %d, want %d", got, want)
	}
}
