package domain

// PackageCategories is the single source of truth for catalog categories,
// shared by packages, destinations and holiday types.
var PackageCategories = []string{
	"Beach Holidays",
	"Adventure Tours",
	"Trending Destinations",
	"Premium Packages",
	"Popular Packages",
	"Fixed Departure",
	"Mountain Treks",
	"Wildlife Safaris",
	"Pilgrimage Tours",
	"Honeymoon Packages",
	"Family Tours",
	"Luxury Tours",
	"Budget Tours",
}

// TourType classifies a tour as international or domestic.
type TourType string

const (
	TourTypeInternational TourType = "international"
	TourTypeIndia         TourType = "india"
)

// TourTypes lists all valid tour types.
var TourTypes = []TourType{TourTypeInternational, TourTypeIndia}

// ValidCategory reports whether c is a known package category.
func ValidCategory(c string) bool {
	for _, known := range PackageCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidTourType reports whether t is a known tour type.
func ValidTourType(t TourType) bool {
	return t == TourTypeInternational || t == TourTypeIndia
}
