package domain

import "time"

// Destination is a curated place page (e.g. "Kerala", "Bali") that groups
// packages and carries its own editorial content.
type Destination struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Image            string   `json:"image"`
	Location         string   `json:"location"`
	HolidayTypeID    string   `json:"holidayType,omitempty"`
	Country          string   `json:"country"`
	State            string   `json:"state,omitempty"`
	TourType         TourType `json:"tourType"`
	Category         string   `json:"category"`

	Rating     float64        `json:"rating"`
	Price      float64        `json:"price,omitempty"`
	Duration   string         `json:"duration,omitempty"`
	Highlights []string       `json:"highlights,omitempty"`
	Inclusions []string       `json:"inclusions,omitempty"`
	Exclusions []string       `json:"exclusions,omitempty"`
	Itinerary  []ItineraryDay `json:"itinerary,omitempty"`

	IsActive   bool `json:"isActive"`
	IsTrending bool `json:"isTrending"`
	VisitCount int  `json:"visitCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the fields a create payload must supply.
func (d *Destination) Validate() error {
	required := []struct{ name, value string }{
		{"name", d.Name},
		{"description", d.Description},
		{"shortDescription", d.ShortDescription},
		{"location", d.Location},
		{"country", d.Country},
		{"category", d.Category},
	}
	for _, f := range required {
		if f.value == "" {
			return NewValidationError(f.name, "is required")
		}
	}
	if !ValidTourType(d.TourType) {
		return NewValidationError("tourType", "must be one of: international, india")
	}
	if !ValidCategory(d.Category) {
		return NewValidationError("category", "unknown category")
	}
	return nil
}

// Destination suggestion weights: the location-aware profile. Name and
// location dominate, country and state let "Rajasthan" or "Vietnam" queries
// surface destinations whose names never mention them. The exact-name
// bonus exceeds the sum of all secondary weights so an exact name match
// always ranks first.
const (
	DestinationNameWeight     = 20
	DestinationNameExactBonus = 45
	DestinationLocationWeight = 15
	DestinationCountryWeight  = 12
	DestinationStateWeight    = 10
	DestinationDescWeight     = 5
)

// MatchFields implements Matchable with the location-aware profile.
func (d *Destination) MatchFields() []MatchField {
	return []MatchField{
		{Value: d.Name, Weight: DestinationNameWeight, ExactBonus: DestinationNameExactBonus},
		{Value: d.Location, Weight: DestinationLocationWeight},
		{Value: d.Country, Weight: DestinationCountryWeight},
		{Value: d.State, Weight: DestinationStateWeight},
		{Value: d.Description, Weight: DestinationDescWeight},
	}
}

// DestinationSuggestion is the reduced projection for type-ahead results.
type DestinationSuggestion struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
	State    string `json:"state,omitempty"`
	Slug     string `json:"slug"`
	Image    string `json:"image"`
}

// ToSuggestion shapes a destination into its suggestion projection.
func (d *Destination) ToSuggestion() DestinationSuggestion {
	return DestinationSuggestion{
		ID:       d.ID,
		Name:     d.Name,
		Location: d.Location,
		Country:  d.Country,
		State:    d.State,
		Slug:     d.Slug,
		Image:    d.Image,
	}
}
