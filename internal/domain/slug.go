package domain

import (
	"context"
	"fmt"
	"strings"
)

// SlugIndex is the lookup port slug allocation needs from a collection.
// Implementations: the per-entity repositories in internal/infra/postgres.
type SlugIndex interface {
	// SlugTaken reports whether slug is used by a live entity in the
	// collection, ignoring the entity identified by excludeID ("" for none).
	SlugTaken(ctx context.Context, slug string, excludeID string) (bool, error)
}

// Slugify derives a URL-safe slug from a human-readable title.
//
// Rules:
//  1. Lowercase
//  2. Drop every rune that is not [a-z0-9], space, or hyphen
//  3. Runs of whitespace become a single hyphen
//  4. Runs of hyphens collapse to one
//  5. Leading/trailing hyphens trimmed
//
// A title with no letters or digits yields "". Callers must treat an empty
// slug as a validation failure, never persist it or feed it to
// EnsureUniqueSlug.
func Slugify(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		}
	}

	fields := strings.FieldsFunc(b.String(), func(r rune) bool {
		return r == ' ' || r == '-'
	})

	return strings.Join(fields, "-")
}

// EnsureUniqueSlug returns base if no live entity in the collection uses it,
// otherwise probes "base-1", "base-2", ... until a free slug is found.
// excludeID exempts the entity being updated so an unchanged title does not
// mutate its own slug. The counter is deliberately uncapped.
//
// Two concurrent allocations can both observe the same free slug; the
// database unique index rejects the second insert and the repository
// surfaces that as a ConflictError. This pre-check is a fast-fail courtesy,
// not the safety mechanism.
func EnsureUniqueSlug(ctx context.Context, index SlugIndex, base string, excludeID string) (string, error) {
	if base == "" {
		return "", NewValidationError("slug", "base slug must not be empty")
	}

	candidate := base
	for counter := 1; ; counter++ {
		taken, err := index.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("checking slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// ResolveSlugOnCreate implements the entity creation flow: with no explicit
// slug the title is normalized and disambiguated; an explicit slug is taken
// verbatim and rejected with a ConflictError when already in use.
func ResolveSlugOnCreate(ctx context.Context, index SlugIndex, title, explicit string) (string, error) {
	if explicit == "" {
		base := Slugify(title)
		if base == "" {
			return "", NewValidationError("title", "must contain at least one letter or digit")
		}
		return EnsureUniqueSlug(ctx, index, base, "")
	}

	taken, err := index.SlugTaken(ctx, explicit, "")
	if err != nil {
		return "", fmt.Errorf("checking slug %q: %w", explicit, err)
	}
	if taken {
		return "", &ConflictError{Slug: explicit}
	}
	return explicit, nil
}

// ResolveSlugOnUpdate implements the entity update flow. currentSlug and
// currentTitle describe the stored entity; newTitle and explicit come from
// the update payload ("" when absent). The slug is recomputed only when the
// title changed and no explicit slug was supplied; an explicit slug is
// validated against every other entity in the collection.
func ResolveSlugOnUpdate(ctx context.Context, index SlugIndex, id, currentSlug, currentTitle, newTitle, explicit string) (string, error) {
	if explicit != "" {
		taken, err := index.SlugTaken(ctx, explicit, id)
		if err != nil {
			return "", fmt.Errorf("checking slug %q: %w", explicit, err)
		}
		if taken {
			return "", &ConflictError{Slug: explicit}
		}
		return explicit, nil
	}

	if newTitle == "" || newTitle == currentTitle {
		return currentSlug, nil
	}

	base := Slugify(newTitle)
	if base == "" {
		return "", NewValidationError("title", "must contain at least one letter or digit")
	}
	return EnsureUniqueSlug(ctx, index, base, id)
}
