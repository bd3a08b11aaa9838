package domain

import (
	"context"
	"time"
)

// PackageRepository defines persistence for packages.
// Implementations: internal/infra/postgres/package_repo.go
type PackageRepository interface {
	SlugIndex

	List(ctx context.Context, filter PackageFilter) ([]*Package, int64, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]*Package, error)
	Search(ctx context.Context, params PackageSearch) ([]*Package, error)
	// SuggestCandidates fetches active packages whose title, destination or
	// description contains query (case-insensitive), capped at limit.
	// Rows with an empty title or destination are excluded at this stage.
	SuggestCandidates(ctx context.Context, query string, limit int) ([]*Package, error)
	GetByID(ctx context.Context, id string) (*Package, error)
	GetBySlug(ctx context.Context, slug string) (*Package, error)
	Create(ctx context.Context, p *Package) error
	Update(ctx context.Context, p *Package) error
	Delete(ctx context.Context, id string) error
	DistinctCountries(ctx context.Context) ([]string, error)
	DistinctStates(ctx context.Context) ([]string, error)
}

// DestinationRepository defines persistence for destinations.
type DestinationRepository interface {
	SlugIndex

	List(ctx context.Context, filter DestinationFilter) ([]*Destination, int64, error)
	Search(ctx context.Context, query string, filter DestinationFilter) ([]*Destination, error)
	SuggestCandidates(ctx context.Context, query string, limit int) ([]*Destination, error)
	GetByID(ctx context.Context, id string) (*Destination, error)
	GetBySlug(ctx context.Context, slug string) (*Destination, error)
	Create(ctx context.Context, d *Destination) error
	Update(ctx context.Context, d *Destination) error
	Delete(ctx context.Context, id string) error
	IncrementVisits(ctx context.Context, id string) error
	DistinctCountries(ctx context.Context) ([]string, error)
	DistinctStates(ctx context.Context) ([]string, error)
	DistinctTourTypes(ctx context.Context) ([]string, error)
}

// DepartureRepository defines persistence for fixed departures.
type DepartureRepository interface {
	SlugIndex

	List(ctx context.Context, filter DepartureFilter) ([]*FixedDeparture, int64, error)
	GetByID(ctx context.Context, id string) (*FixedDeparture, error)
	GetBySlug(ctx context.Context, slug string) (*FixedDeparture, error)
	Create(ctx context.Context, f *FixedDeparture) error
	Update(ctx context.Context, f *FixedDeparture) error
	Delete(ctx context.Context, id string) error
	// ListEnded returns non-cancelled departures whose stored status lags
	// the given instant (departed but marked upcoming, or returned but not
	// completed). Used by the status roll-over job.
	ListEnded(ctx context.Context, now time.Time) ([]*FixedDeparture, error)
	UpdateStatus(ctx context.Context, id string, status DepartureStatus) error
}

// HolidayTypeRepository defines persistence for holiday types.
type HolidayTypeRepository interface {
	SlugIndex

	List(ctx context.Context, activeOnly bool) ([]*HolidayType, error)
	SuggestCandidates(ctx context.Context, query string, limit int) ([]*HolidayType, error)
	GetByID(ctx context.Context, id string) (*HolidayType, error)
	GetBySlug(ctx context.Context, slug string) (*HolidayType, error)
	Create(ctx context.Context, h *HolidayType) error
	Update(ctx context.Context, h *HolidayType) error
	Delete(ctx context.Context, id string) error
}

// ContentRepository defines persistence for editorial content: blogs,
// testimonials, FAQs, SEO settings and site blocks.
type ContentRepository interface {
	ListBlogs(ctx context.Context, filter BlogFilter) ([]*Blog, int64, error)
	GetBlog(ctx context.Context, id string) (*Blog, error)
	CreateBlog(ctx context.Context, b *Blog) error
	UpdateBlog(ctx context.Context, b *Blog) error
	DeleteBlog(ctx context.Context, id string) error
	IncrementBlogViews(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context, featuredOnly bool) ([]*Testimonial, error)
	GetTestimonial(ctx context.Context, id string) (*Testimonial, error)
	CreateTestimonial(ctx context.Context, t *Testimonial) error
	UpdateTestimonial(ctx context.Context, t *Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error

	ListFAQs(ctx context.Context, location string) ([]*FAQ, error)
	CreateFAQ(ctx context.Context, f *FAQ) error
	UpdateFAQ(ctx context.Context, f *FAQ) error
	DeleteFAQ(ctx context.Context, id string) error

	GetSEO(ctx context.Context, page string) (*SEOSettings, error)
	ListSEO(ctx context.Context) ([]*SEOSettings, error)
	UpsertSEO(ctx context.Context, s *SEOSettings) error

	ActiveBlock(ctx context.Context, kind BlockKind) (*SiteBlock, error)
	ListBlocks(ctx context.Context, kind BlockKind) ([]*SiteBlock, error)
	SaveBlock(ctx context.Context, b *SiteBlock) error
	DeleteBlock(ctx context.Context, id string) error
}

// Cache defines the interface for caching suggestion responses.
// Implementations: internal/infra/redis/cache.go
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// GeoProvider defines the third-party geographic data lookups.
// Implementations: internal/infra/geo/client.go
type GeoProvider interface {
	Countries(ctx context.Context) ([]Country, error)
	Country(ctx context.Context, iso2 string) (*Country, error)
	States(ctx context.Context, countryISO2 string) ([]GeoState, error)
	State(ctx context.Context, countryISO2, stateISO2 string) (*GeoState, error)
	CitiesByState(ctx context.Context, countryISO2, stateISO2 string) ([]City, error)
	CitiesByCountry(ctx context.Context, countryISO2 string) ([]City, error)
}

// Country is a third-party country record.
type Country struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	ISO2           string `json:"iso2"`
	ISO3           string `json:"iso3,omitempty"`
	PhoneCode      string `json:"phone_code,omitempty"`
	Capital        string `json:"capital,omitempty"`
	Currency       string `json:"currency,omitempty"`
	CurrencySymbol string `json:"currency_symbol,omitempty"`
	Region         string `json:"region,omitempty"`
	Subregion      string `json:"subregion,omitempty"`
	Latitude       string `json:"latitude,omitempty"`
	Longitude      string `json:"longitude,omitempty"`
	Emoji          string `json:"emoji,omitempty"`
}

// GeoState is a third-party state/province record.
type GeoState struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StateCode string `json:"state_code"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
	Type      string `json:"type,omitempty"`
}

// City is a third-party city record.
type City struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}
