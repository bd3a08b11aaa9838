package domain

// Pagination is the list envelope metadata used across all catalog
// listings: 1-indexed current page, total page count, and cursors for the
// UI's prev/next buttons.
type Pagination struct {
	Current int  `json:"current"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// NewPagination computes the envelope from a total row count and the
// requested page/limit.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	return Pagination{
		Current: page,
		Total:   totalPages,
		HasNext: int64(page*limit) < total,
		HasPrev: page > 1,
	}
}

// ListParams are the shared pagination knobs.
type ListParams struct {
	Page  int
	Limit int
}

// Normalize clamps paging values to sane bounds. This is bound correction,
// not validation.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset calculates the database offset for pagination.
func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PackageFilter narrows package listings.
type PackageFilter struct {
	ListParams
	Category      string
	Featured      bool
	TourType      TourType
	Country       string
	State         string
	HolidayTypeID string
}

// PackageSearch holds free-text search parameters for packages.
type PackageSearch struct {
	Query    string
	Category string
	MinPrice float64
	MaxPrice float64
}

// DestinationFilter narrows destination listings.
//
// The state filter has a quirk inherited from the storefront: for
// international tours the "state" the UI sends is often a country name, so
// the repository matches it against state OR country in that case.
type DestinationFilter struct {
	ListParams
	Trending      bool
	TourType      TourType
	Country       string
	State         string
	Category      string
	HolidayTypeID string
}

// DepartureFilter narrows fixed departure listings.
type DepartureFilter struct {
	ListParams
	Status   DepartureStatus
	Featured bool
}

// BlogFilter narrows blog listings.
type BlogFilter struct {
	ListParams
	Category  string
	Featured  bool
	Published bool
}
