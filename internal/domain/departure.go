package domain

import "time"

// DepartureStatus tracks a fixed departure through its lifecycle.
type DepartureStatus string

const (
	DepartureUpcoming  DepartureStatus = "upcoming"
	DepartureOngoing   DepartureStatus = "ongoing"
	DepartureCompleted DepartureStatus = "completed"
	DepartureCancelled DepartureStatus = "cancelled"
)

// ValidDepartureStatus reports whether s is a known status.
func ValidDepartureStatus(s DepartureStatus) bool {
	switch s {
	case DepartureUpcoming, DepartureOngoing, DepartureCompleted, DepartureCancelled:
		return true
	}
	return false
}

// FixedDeparture is a group tour with fixed travel dates and limited seats.
type FixedDeparture struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"shortDescription"`
	Price            float64 `json:"price"`
	OriginalPrice    float64 `json:"originalPrice,omitempty"`
	Discount         float64 `json:"discount,omitempty"`
	Duration         string  `json:"duration"`
	Destination      string  `json:"destination"`

	DepartureDate  time.Time `json:"departureDate"`
	ReturnDate     time.Time `json:"returnDate"`
	AvailableSeats int       `json:"availableSeats"`
	TotalSeats     int       `json:"totalSeats"`

	Images     []string       `json:"images"`
	Highlights []string       `json:"highlights,omitempty"`
	Itinerary  []ItineraryDay `json:"itinerary,omitempty"`
	Inclusions []string       `json:"inclusions,omitempty"`
	Exclusions []string       `json:"exclusions,omitempty"`
	Terms      []string       `json:"terms,omitempty"`

	Rating     float64         `json:"rating"`
	IsActive   bool            `json:"isActive"`
	IsFeatured bool            `json:"isFeatured"`
	Status     DepartureStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the fields a create payload must supply.
func (f *FixedDeparture) Validate() error {
	required := []struct{ name, value string }{
		{"title", f.Title},
		{"description", f.Description},
		{"shortDescription", f.ShortDescription},
		{"duration", f.Duration},
		{"destination", f.Destination},
	}
	for _, field := range required {
		if field.value == "" {
			return NewValidationError(field.name, "is required")
		}
	}
	if f.Price < 0 {
		return NewValidationError("price", "must be a positive number")
	}
	if f.DepartureDate.IsZero() || f.ReturnDate.IsZero() {
		return NewValidationError("departureDate", "departure and return dates are required")
	}
	if !f.ReturnDate.After(f.DepartureDate) {
		return NewValidationError("returnDate", "must be after the departure date")
	}
	if f.TotalSeats < 1 {
		return NewValidationError("totalSeats", "must be at least 1")
	}
	if f.AvailableSeats < 0 || f.AvailableSeats > f.TotalSeats {
		return NewValidationError("availableSeats", "must be between 0 and totalSeats")
	}
	if f.Status != "" && !ValidDepartureStatus(f.Status) {
		return NewValidationError("status", "must be one of: upcoming, ongoing, completed, cancelled")
	}
	return nil
}

// BookingPercentage returns the share of seats already booked.
func (f *FixedDeparture) BookingPercentage() float64 {
	if f.TotalSeats == 0 {
		return 0
	}
	return float64(f.TotalSeats-f.AvailableSeats) / float64(f.TotalSeats) * 100
}

// StatusAt derives the date-driven status for the given instant. Cancelled
// departures stay cancelled regardless of dates.
func (f *FixedDeparture) StatusAt(now time.Time) DepartureStatus {
	if f.Status == DepartureCancelled {
		return DepartureCancelled
	}
	switch {
	case now.After(f.ReturnDate):
		return DepartureCompleted
	case now.After(f.DepartureDate) || now.Equal(f.DepartureDate):
		return DepartureOngoing
	default:
		return DepartureUpcoming
	}
}

// MatchFields implements Matchable; fixed departures reuse the package
// suggestion profile.
func (f *FixedDeparture) MatchFields() []MatchField {
	return []MatchField{
		{Value: f.Title, Weight: PackageTitleWeight, ExactBonus: PackageTitleExactBonus},
		{Value: f.Destination, Weight: PackageDestinationWeight},
		{Value: f.Description, Weight: PackageDescriptionWeight},
	}
}
