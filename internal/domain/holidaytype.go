package domain

import "time"

// HolidayType is a themed grouping (honeymoon, trekking, pilgrimage) that
// packages and destinations reference.
type HolidayType struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Image            string   `json:"image"`
	Duration         string   `json:"duration"`
	Travelers        string   `json:"travelers"`
	Badge            string   `json:"badge"`
	Price            string   `json:"price"`
	Country          string   `json:"country,omitempty"`
	State            string   `json:"state,omitempty"`
	TourType         TourType `json:"tourType,omitempty"`
	Category         string   `json:"category,omitempty"`

	IsActive   bool `json:"isActive"`
	IsFeatured bool `json:"isFeatured"`
	Order      int  `json:"order"`

	Highlights []string       `json:"highlights,omitempty"`
	Inclusions []string       `json:"inclusions,omitempty"`
	Exclusions []string       `json:"exclusions,omitempty"`
	Itinerary  []ItineraryDay `json:"itinerary,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the fields a create payload must supply.
func (h *HolidayType) Validate() error {
	required := []struct{ name, value string }{
		{"title", h.Title},
		{"description", h.Description},
		{"shortDescription", h.ShortDescription},
		{"image", h.Image},
		{"duration", h.Duration},
		{"travelers", h.Travelers},
		{"badge", h.Badge},
		{"price", h.Price},
	}
	for _, f := range required {
		if f.value == "" {
			return NewValidationError(f.name, "is required")
		}
	}
	if h.Category != "" && !ValidCategory(h.Category) {
		return NewValidationError("category", "unknown category")
	}
	return nil
}

// Holiday type suggestion weights. Short description carries a small bonus
// of its own, distinct from the full description, and the exact-title
// bonus outweighs both combined.
const (
	HolidayTypeTitleWeight     = 10
	HolidayTypeTitleExactBonus = 6
	HolidayTypeDescWeight      = 3
	HolidayTypeShortDescWeight = 2
)

// MatchFields implements Matchable with the holiday type profile.
func (h *HolidayType) MatchFields() []MatchField {
	return []MatchField{
		{Value: h.Title, Weight: HolidayTypeTitleWeight, ExactBonus: HolidayTypeTitleExactBonus},
		{Value: h.Description, Weight: HolidayTypeDescWeight},
		{Value: h.ShortDescription, Weight: HolidayTypeShortDescWeight},
	}
}

// HolidayTypeSuggestion is the reduced projection for type-ahead results.
type HolidayTypeSuggestion struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Slug             string `json:"slug"`
	Image            string `json:"image"`
	IsFeatured       bool   `json:"isFeatured"`
}

// ToSuggestion shapes a holiday type into its suggestion projection.
func (h *HolidayType) ToSuggestion() HolidayTypeSuggestion {
	return HolidayTypeSuggestion{
		ID:               h.ID,
		Title:            h.Title,
		ShortDescription: h.ShortDescription,
		Slug:             h.Slug,
		Image:            h.Image,
		IsFeatured:       h.IsFeatured,
	}
}
