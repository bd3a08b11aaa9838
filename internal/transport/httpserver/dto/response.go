package dto

import (
	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/imageurl"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// ListResponse wraps paginated listings.
type ListResponse struct {
	Data       any               `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

// SuggestionsResponse is the payload for single-collection type-ahead.
type SuggestionsResponse struct {
	Suggestions any `json:"suggestions"`
}

// CombinedSuggestionsResponse is the payload for the combined type-ahead.
// Both slices are always present, possibly empty.
type CombinedSuggestionsResponse struct {
	Destinations []domain.DestinationSuggestion `json:"destinations"`
	Packages     []domain.PackageSuggestion     `json:"packages"`
}

// Presenter shapes domain entities for responses, resolving stored image
// paths against the public base URL.
type Presenter struct {
	images *imageurl.Resolver
}

// NewPresenter creates a Presenter using the given image resolver.
func NewPresenter(images *imageurl.Resolver) *Presenter {
	return &Presenter{images: images}
}

func (p *Presenter) itinerary(days []domain.ItineraryDay) []domain.ItineraryDay {
	if days == nil {
		return nil
	}
	out := make([]domain.ItineraryDay, len(days))
	for i, d := range days {
		d.Image = p.images.Resolve(d.Image)
		out[i] = d
	}
	return out
}

// Package returns a response copy of pkg with resolved image URLs.
func (p *Presenter) Package(pkg *domain.Package) *domain.Package {
	cp := *pkg
	cp.Images = p.images.ResolveAll(pkg.Images)
	cp.Itinerary = p.itinerary(pkg.Itinerary)
	cp.SEO.OGImage = p.images.Resolve(pkg.SEO.OGImage)
	return &cp
}

// Packages maps Package over a slice.
func (p *Presenter) Packages(pkgs []*domain.Package) []*domain.Package {
	out := make([]*domain.Package, len(pkgs))
	for i, pkg := range pkgs {
		out[i] = p.Package(pkg)
	}
	return out
}

// Destination returns a response copy of d with resolved image URLs.
func (p *Presenter) Destination(d *domain.Destination) *domain.Destination {
	cp := *d
	cp.Image = p.images.Resolve(d.Image)
	cp.Itinerary = p.itinerary(d.Itinerary)
	return &cp
}

// Destinations maps Destination over a slice.
func (p *Presenter) Destinations(ds []*domain.Destination) []*domain.Destination {
	out := make([]*domain.Destination, len(ds))
	for i, d := range ds {
		out[i] = p.Destination(d)
	}
	return out
}

// Departure returns a response copy of f with resolved image URLs.
func (p *Presenter) Departure(f *domain.FixedDeparture) *domain.FixedDeparture {
	cp := *f
	cp.Images = p.images.ResolveAll(f.Images)
	cp.Itinerary = p.itinerary(f.Itinerary)
	return &cp
}

// Departures maps Departure over a slice.
func (p *Presenter) Departures(fs []*domain.FixedDeparture) []*domain.FixedDeparture {
	out := make([]*domain.FixedDeparture, len(fs))
	for i, f := range fs {
		out[i] = p.Departure(f)
	}
	return out
}

// HolidayType returns a response copy of h with resolved image URLs.
func (p *Presenter) HolidayType(h *domain.HolidayType) *domain.HolidayType {
	cp := *h
	cp.Image = p.images.Resolve(h.Image)
	cp.Itinerary = p.itinerary(h.Itinerary)
	return &cp
}

// HolidayTypes maps HolidayType over a slice.
func (p *Presenter) HolidayTypes(hs []*domain.HolidayType) []*domain.HolidayType {
	out := make([]*domain.HolidayType, len(hs))
	for i, h := range hs {
		out[i] = p.HolidayType(h)
	}
	return out
}

// Blog returns a response copy of b with resolved image URLs.
func (p *Presenter) Blog(b *domain.Blog) *domain.Blog {
	cp := *b
	cp.Image = p.images.Resolve(b.Image)
	cp.SEO.OGImage = p.images.Resolve(b.SEO.OGImage)
	return &cp
}

// Blogs maps Blog over a slice.
func (p *Presenter) Blogs(bs []*domain.Blog) []*domain.Blog {
	out := make([]*domain.Blog, len(bs))
	for i, b := range bs {
		out[i] = p.Blog(b)
	}
	return out
}

// Testimonial returns a response copy of t with resolved image URLs.
func (p *Presenter) Testimonial(t *domain.Testimonial) *domain.Testimonial {
	cp := *t
	cp.Image = p.images.Resolve(t.Image)
	return &cp
}

// Testimonials maps Testimonial over a slice.
func (p *Presenter) Testimonials(ts []*domain.Testimonial) []*domain.Testimonial {
	out := make([]*domain.Testimonial, len(ts))
	for i, t := range ts {
		out[i] = p.Testimonial(t)
	}
	return out
}

// Block returns a response copy of b with resolved image URLs.
func (p *Presenter) Block(b *domain.SiteBlock) *domain.SiteBlock {
	cp := *b
	cp.BackgroundImage = p.images.Resolve(b.BackgroundImage)
	return &cp
}

// Blocks maps Block over a slice.
func (p *Presenter) Blocks(bs []*domain.SiteBlock) []*domain.SiteBlock {
	out := make([]*domain.SiteBlock, len(bs))
	for i, b := range bs {
		out[i] = p.Block(b)
	}
	return out
}

// PackageSuggestions resolves images in a suggestion slice.
func (p *Presenter) PackageSuggestions(ss []domain.PackageSuggestion) []domain.PackageSuggestion {
	out := make([]domain.PackageSuggestion, len(ss))
	for i, s := range ss {
		if s.Image != nil {
			resolved := p.images.Resolve(*s.Image)
			s.Image = &resolved
		}
		out[i] = s
	}
	return out
}

// DestinationSuggestions resolves images in a suggestion slice.
func (p *Presenter) DestinationSuggestions(ss []domain.DestinationSuggestion) []domain.DestinationSuggestion {
	out := make([]domain.DestinationSuggestion, len(ss))
	for i, s := range ss {
		s.Image = p.images.Resolve(s.Image)
		out[i] = s
	}
	return out
}

// HolidayTypeSuggestions resolves images in a suggestion slice.
func (p *Presenter) HolidayTypeSuggestions(ss []domain.HolidayTypeSuggestion) []domain.HolidayTypeSuggestion {
	out := make([]domain.HolidayTypeSuggestion, len(ss))
	for i, s := range ss {
		s.Image = p.images.Resolve(s.Image)
		out[i] = s
	}
	return out
}
