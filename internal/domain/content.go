package domain

import "time"

// Blog is an editorial article.
type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags,omitempty"`
	Category    string    `json:"category"`
	ReadTime    int       `json:"readTime"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	IsPublished bool      `json:"isPublished"`
	IsFeatured  bool      `json:"isFeatured"`
	SEO         SEOFields `json:"seo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate checks the fields a create payload must supply.
func (b *Blog) Validate() error {
	required := []struct{ name, value string }{
		{"title", b.Title},
		{"content", b.Content},
		{"excerpt", b.Excerpt},
		{"author", b.Author},
		{"category", b.Category},
	}
	for _, f := range required {
		if f.value == "" {
			return NewValidationError(f.name, "is required")
		}
	}
	return nil
}

// Testimonial is a traveler review shown on the site.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Rating    int       `json:"rating"`
	Image     string    `json:"image"`
	Text      string    `json:"text"`
	Package   string    `json:"package"`
	Date      string    `json:"date"`
	Verified  bool      `json:"verified"`
	Featured  bool      `json:"featured"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the fields a create payload must supply.
func (t *Testimonial) Validate() error {
	required := []struct{ name, value string }{
		{"name", t.Name},
		{"location", t.Location},
		{"text", t.Text},
		{"package", t.Package},
	}
	for _, f := range required {
		if f.value == "" {
			return NewValidationError(f.name, "is required")
		}
	}
	if t.Rating < 1 || t.Rating > 5 {
		return NewValidationError("rating", "must be between 1 and 5")
	}
	return nil
}

// FAQ is a question/answer pair scoped to a location page.
type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"isActive"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the fields a create payload must supply.
func (f *FAQ) Validate() error {
	if f.Question == "" {
		return NewValidationError("question", "is required")
	}
	if f.Answer == "" {
		return NewValidationError("answer", "is required")
	}
	if f.Location == "" {
		return NewValidationError("location", "is required")
	}
	return nil
}

// SEOSettings are the per-page defaults for meta tags. Page is unique.
type SEOSettings struct {
	ID          string    `json:"id"`
	Page        string    `json:"page"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords,omitempty"`
	OGImage     string    `json:"ogImage,omitempty"`
	Canonical   string    `json:"canonical"`
	Robots      string    `json:"robots"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BlockKind identifies a site content block.
type BlockKind string

const (
	BlockHero   BlockKind = "hero"
	BlockHeader BlockKind = "header"
	BlockFooter BlockKind = "footer"
	BlockCTA    BlockKind = "cta"
)

// ValidBlockKind reports whether k is a known block kind.
func ValidBlockKind(k BlockKind) bool {
	switch k {
	case BlockHero, BlockHeader, BlockFooter, BlockCTA:
		return true
	}
	return false
}

// SiteBlock is a configurable content block (hero banner, header strip,
// footer, call-to-action). At most one block per kind is active; the
// storefront fetches the active one and the admin UI manages drafts.
type SiteBlock struct {
	ID              string    `json:"id"`
	Kind            BlockKind `json:"kind"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle,omitempty"`
	Description     string    `json:"description,omitempty"`
	BackgroundImage string    `json:"backgroundImage,omitempty"`
	ButtonText      string    `json:"buttonText,omitempty"`
	ButtonLink      string    `json:"buttonLink,omitempty"`
	Links           []string  `json:"links,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	Address         string    `json:"address,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Validate checks the fields a create payload must supply.
func (s *SiteBlock) Validate() error {
	if !ValidBlockKind(s.Kind) {
		return NewValidationError("kind", "must be one of: hero, header, footer, cta")
	}
	if s.Title == "" {
		return NewValidationError("title", "is required")
	}
	return nil
}
