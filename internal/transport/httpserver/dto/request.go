package dto

import (
	"travel-catalog-service/internal/domain"
)

// ListRequest carries the shared pagination query parameters.
type ListRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// PackageListRequest holds query parameters for package listings.
type PackageListRequest struct {
	ListRequest
	Category    string `query:"category" validate:"max=100"`
	Featured    bool   `query:"featured"`
	TourType    string `query:"tour_type" validate:"omitempty,oneof=international india"`
	Country     string `query:"country" validate:"max=100"`
	State       string `query:"state" validate:"max=100"`
	HolidayType string `query:"holiday_type" validate:"omitempty,uuid4"`
}

// ToFilter converts the request to a domain filter.
func (r *PackageListRequest) ToFilter() domain.PackageFilter {
	return domain.PackageFilter{
		ListParams:    domain.ListParams{Page: r.Page, Limit: r.Limit},
		Category:      r.Category,
		Featured:      r.Featured,
		TourType:      domain.TourType(r.TourType),
		Country:       r.Country,
		State:         r.State,
		HolidayTypeID: r.HolidayType,
	}
}

// PackageSearchRequest holds free-text search query parameters.
type PackageSearchRequest struct {
	Query    string  `query:"q" validate:"required,max=200"`
	Category string  `query:"category" validate:"max=100"`
	MinPrice float64 `query:"min_price" validate:"omitempty,min=0"`
	MaxPrice float64 `query:"max_price" validate:"omitempty,min=0"`
}

// ToSearch converts the request to domain search parameters.
func (r *PackageSearchRequest) ToSearch() domain.PackageSearch {
	return domain.PackageSearch{
		Query:    r.Query,
		Category: r.Category,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
}

// DestinationListRequest holds query parameters for destination listings.
type DestinationListRequest struct {
	ListRequest
	Trending    bool   `query:"trending"`
	TourType    string `query:"tour_type" validate:"omitempty,oneof=international india"`
	Country     string `query:"country" validate:"max=100"`
	State       string `query:"state" validate:"max=100"`
	Category    string `query:"category" validate:"max=100"`
	HolidayType string `query:"holiday_type" validate:"omitempty,uuid4"`
}

// ToFilter converts the request to a domain filter.
func (r *DestinationListRequest) ToFilter() domain.DestinationFilter {
	return domain.DestinationFilter{
		ListParams:    domain.ListParams{Page: r.Page, Limit: r.Limit},
		Trending:      r.Trending,
		TourType:      domain.TourType(r.TourType),
		Country:       r.Country,
		State:         r.State,
		Category:      r.Category,
		HolidayTypeID: r.HolidayType,
	}
}

// DepartureListRequest holds query parameters for fixed departure listings.
type DepartureListRequest struct {
	ListRequest
	Status   string `query:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	Featured bool   `query:"featured"`
}

// ToFilter converts the request to a domain filter.
func (r *DepartureListRequest) ToFilter() domain.DepartureFilter {
	return domain.DepartureFilter{
		ListParams: domain.ListParams{Page: r.Page, Limit: r.Limit},
		Status:     domain.DepartureStatus(r.Status),
		Featured:   r.Featured,
	}
}

// BlogListRequest holds query parameters for blog listings.
type BlogListRequest struct {
	ListRequest
	Category  string `query:"category" validate:"max=100"`
	Featured  bool   `query:"featured"`
	Published bool   `query:"published"`
}

// ToFilter converts the request to a domain filter.
func (r *BlogListRequest) ToFilter() domain.BlogFilter {
	return domain.BlogFilter{
		ListParams: domain.ListParams{Page: r.Page, Limit: r.Limit},
		Category:   r.Category,
		Featured:   r.Featured,
		Published:  r.Published,
	}
}

// SuggestRequest holds the type-ahead query string.
type SuggestRequest struct {
	Query string `query:"q" validate:"max=200"`
}
