package domain

import "time"

// ItineraryDay is one day of a tour itinerary.
type ItineraryDay struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Activities    []string `json:"activities"`
	Accommodation string   `json:"accommodation,omitempty"`
	Meals         string   `json:"meals,omitempty"`
	Image         string   `json:"image,omitempty"`
}

// Package is a bookable tour package, the primary catalog entity.
type Package struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Price            float64  `json:"price"`
	OriginalPrice    float64  `json:"originalPrice,omitempty"`
	Discount         float64  `json:"discount,omitempty"`
	Duration         string   `json:"duration"`
	Destination      string   `json:"destination"`
	Category         string   `json:"category"`
	HolidayTypeID    string   `json:"holidayType,omitempty"`
	Country          string   `json:"country"`
	State            string   `json:"state,omitempty"`
	TourType         TourType `json:"tourType"`

	Images     []string       `json:"images"`
	Highlights []string       `json:"highlights,omitempty"`
	Itinerary  []ItineraryDay `json:"itinerary,omitempty"`
	Inclusions []string       `json:"inclusions,omitempty"`
	Exclusions []string       `json:"exclusions,omitempty"`
	Terms      []string       `json:"terms,omitempty"`

	Rating     float64 `json:"rating"`
	IsActive   bool    `json:"isActive"`
	IsFeatured bool    `json:"isFeatured"`

	SEO SEOFields `json:"seo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SEOFields carries per-entity SEO metadata.
type SEOFields struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	OGImage     string   `json:"ogImage,omitempty"`
	Canonical   string   `json:"canonical,omitempty"`
}

// DiscountedPrice returns the effective price after discount.
func (p *Package) DiscountedPrice() float64 {
	if p.Discount > 0 {
		return p.Price - (p.Price * p.Discount / 100)
	}
	return p.Price
}

// Validate checks the fields a create payload must supply.
func (p *Package) Validate() error {
	required := []struct{ name, value string }{
		{"title", p.Title},
		{"description", p.Description},
		{"shortDescription", p.ShortDescription},
		{"duration", p.Duration},
		{"destination", p.Destination},
		{"category", p.Category},
		{"country", p.Country},
	}
	for _, f := range required {
		if f.value == "" {
			return NewValidationError(f.name, "is required")
		}
	}
	if p.Price < 0 {
		return NewValidationError("price", "must be a positive number")
	}
	if !ValidCategory(p.Category) {
		return NewValidationError("category", "unknown category")
	}
	if !ValidTourType(p.TourType) {
		return NewValidationError("tourType", "must be one of: international, india")
	}
	return nil
}

// PackageMatchWeights is the suggestion weight profile for packages.
// Kept as named constants so the weights are tunable and testable apart
// from the controller code that uses them. The exact-title bonus exceeds
// the sum of all secondary weights so an exact title match always ranks
// above any accumulation of substring hits.
const (
	PackageTitleWeight       = 10
	PackageTitleExactBonus   = 12
	PackageDestinationWeight = 8
	PackageDescriptionWeight = 3
)

// MatchFields implements Matchable with the package weight profile.
func (p *Package) MatchFields() []MatchField {
	return []MatchField{
		{Value: p.Title, Weight: PackageTitleWeight, ExactBonus: PackageTitleExactBonus},
		{Value: p.Destination, Weight: PackageDestinationWeight},
		{Value: p.Description, Weight: PackageDescriptionWeight},
	}
}

// PackageSuggestion is the reduced projection returned by suggest
// endpoints: never the full record.
type PackageSuggestion struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Slug        string  `json:"slug"`
	Image       *string `json:"image"`
}

// ToSuggestion shapes a package into its suggestion projection. The image
// is the first stored image or null.
func (p *Package) ToSuggestion() PackageSuggestion {
	var image *string
	if len(p.Images) > 0 {
		image = &p.Images[0]
	}
	return PackageSuggestion{
		ID:          p.ID,
		Title:       p.Title,
		Destination: p.Destination,
		Price:       p.Price,
		Duration:    p.Duration,
		Category:    p.Category,
		Slug:        p.Slug,
		Image:       image,
	}
}
