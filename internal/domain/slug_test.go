package domain

import (
	"context"
	"errors"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "punctuation stripped",
			title:    "Kerala Backwaters!!",
			expected: "kerala-backwaters",
		},
		{
			name:     "runs of spaces collapse",
			title:    "  Multiple   Spaces  ",
			expected: "multiple-spaces",
		},
		{
			name:     "mixed case lowered",
			title:    "Manali Adventure",
			expected: "manali-adventure",
		},
		{
			name:     "existing hyphens collapse",
			title:    "Goa -- Beach---Trip",
			expected: "goa-beach-trip",
		},
		{
			name:     "digits kept",
			title:    "7 Days in Ladakh",
			expected: "7-days-in-ladakh",
		},
		{
			name:     "unicode and emoji dropped",
			title:    "Café ✈️ Münich",
			expected: "caf-mnich",
		},
		{
			name:     "only punctuation yields empty",
			title:    "!!! ???",
			expected: "",
		},
		{
			name:     "empty input",
			title:    "",
			expected: "",
		},
		{
			name:     "leading and trailing hyphens trimmed",
			title:    "-goa trip-",
			expected: "goa-trip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestSlugify_OutputAlphabet(t *testing.T) {
	titles := []string{
		"Kerala Backwaters!!",
		"  Multiple   Spaces  ",
		"--weird -- input--",
		"UPPER lower 123",
		"a&b|c@d#e",
		"\ttabs\nand\nnewlines\t",
	}

	for _, title := range titles {
		slug := Slugify(title)
		for _, r := range slug {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			if !valid {
				t.Errorf("Slugify(%q) produced invalid rune %q", title, r)
			}
		}
		if len(slug) > 0 && (slug[0] == '-' || slug[len(slug)-1] == '-') {
			t.Errorf("Slugify(%q) = %q has leading/trailing hyphen", title, slug)
		}
		if contains := "--"; len(slug) > 1 && indexOf(slug, contains) >= 0 {
			t.Errorf("Slugify(%q) = %q contains %q", title, slug, contains)
		}
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// fakeSlugIndex is an in-memory SlugIndex keyed by slug -> owner id.
type fakeSlugIndex struct {
	taken map[string]string
	calls int
	err   error
}

func (f *fakeSlugIndex) SlugTaken(_ context.Context, slug string, excludeID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	owner, ok := f.taken[slug]
	if !ok {
		return false, nil
	}
	if excludeID != "" && owner == excludeID {
		return false, nil
	}
	return true, nil
}

func TestEnsureUniqueSlug_FreeBase(t *testing.T) {
	idx := &fakeSlugIndex{taken: map[string]string{}}

	slug, err := EnsureUniqueSlug(context.Background(), idx, "goa-trip", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "goa-trip" {
		t.Errorf("expected base slug back, got %q", slug)
	}
	if idx.calls != 1 {
		t.Errorf("expected a single lookup, got %d", idx.calls)
	}
}

func TestEnsureUniqueSlug_Collision(t *testing.T) {
	idx := &fakeSlugIndex{taken: map[string]string{"goa-trip": "a"}}

	slug, err := EnsureUniqueSlug(context.Background(), idx, "goa-trip", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "goa-trip-1" {
		t.Errorf("expected goa-trip-1, got %q", slug)
	}
}

func TestEnsureUniqueSlug_MultipleCollisions(t *testing.T) {
	idx := &fakeSlugIndex{taken: map[string]string{
		"goa-trip":   "a",
		"goa-trip-1": "b",
		"goa-trip-2": "c",
	}}

	slug, err := EnsureUniqueSlug(context.Background(), idx, "goa-trip", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "goa-trip-3" {
		t.Errorf("expected goa-trip-3, got %q", slug)
	}
}

func TestEnsureUniqueSlug_ExcludesSelf(t *testing.T) {
	idx := &fakeSlugIndex{taken: map[string]string{"goa-trip": "pkg-1"}}

	// Re-saving pkg-1 with an unchanged title must not mutate its slug.
	slug, err := EnsureUniqueSlug(context.Background(), idx, "goa-trip", "pkg-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "goa-trip" {
		t.Errorf("expected own slug to be reusable, got %q", slug)
	}
}

func TestEnsureUniqueSlug_EmptyBase(t *testing.T) {
	idx := &fakeSlugIndex{taken: map[string]string{}}

	_, err := EnsureUniqueSlug(context.Background(), idx, "", "")
	if !IsValidation(err) {
		t.Fatalf("expected validation error for empty base, got %v", err)
	}
	if idx.calls != 0 {
		t.Errorf("empty base must not hit the store, got %d calls", idx.calls)
	}
}

func TestEnsureUniqueSlug_StoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	idx := &fakeSlugIndex{err: storeErr}

	_, err := EnsureUniqueSlug(context.Background(), idx, "goa-trip", "")
	if err == nil || !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestResolveSlugOnCreate_Derived(t *testing.T) {
	idx := &fakeSlugIndex{taken: map[string]string{"manali-adventure": "x"}}

	slug, err := ResolveSlugOnCreate(context.Background(), idx, "Manali Adventure", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "manali-adventure-1" {
		t.Errorf("expected disambiguated slug, got %q", slug)
	}
}

func TestResolveSlugOnCreate_ExplicitConflict(t *testing.T) {
	idx := &fakeSlugIndex{taken: map[string]string{"custom-slug": "x"}}

	// An explicit slug must never be silently disambiguated.
	_, err := ResolveSlugOnCreate(context.Background(), idx, "Anything", "custom-slug")
	if !IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestResolveSlugOnCreate_EmptyTitle(t *testing.T) {
	idx := &fakeSlugIndex{taken: map[string]string{}}

	_, err := ResolveSlugOnCreate(context.Background(), idx, "!!!", "")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveSlugOnUpdate(t *testing.T) {
	tests := []struct {
		name      string
		taken     map[string]string
		newTitle  string
		explicit  string
		expected  string
		conflict  bool
	}{
		{
			name:     "unchanged title keeps slug",
			taken:    map[string]string{"goa-trip": "pkg-1"},
			newTitle: "Goa Trip",
			expected: "goa-trip",
		},
		{
			name:     "no title in payload keeps slug",
			taken:    map[string]string{"goa-trip": "pkg-1"},
			expected: "goa-trip",
		},
		{
			name:     "changed title recomputes",
			taken:    map[string]string{"goa-trip": "pkg-1"},
			newTitle: "Goa Beach Escape",
			expected: "goa-beach-escape",
		},
		{
			name:     "changed title recomputes around collision",
			taken:    map[string]string{"goa-trip": "pkg-1", "goa-beach-escape": "pkg-2"},
			newTitle: "Goa Beach Escape",
			expected: "goa-beach-escape-1",
		},
		{
			name:     "explicit free slug accepted",
			taken:    map[string]string{"goa-trip": "pkg-1"},
			explicit: "my-slug",
			expected: "my-slug",
		},
		{
			name:     "explicit own slug accepted",
			taken:    map[string]string{"goa-trip": "pkg-1"},
			explicit: "goa-trip",
			expected: "goa-trip",
		},
		{
			name:     "explicit foreign slug conflicts",
			taken:    map[string]string{"goa-trip": "pkg-1", "other": "pkg-2"},
			explicit: "other",
			conflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := &fakeSlugIndex{taken: tt.taken}
			slug, err := ResolveSlugOnUpdate(context.Background(), idx,
				"pkg-1", "goa-trip", "Goa Trip", tt.newTitle, tt.explicit)

			if tt.conflict {
				if !IsConflict(err) {
					t.Fatalf("expected conflict, got slug=%q err=%v", slug, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if slug != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, slug)
			}
		})
	}
}
