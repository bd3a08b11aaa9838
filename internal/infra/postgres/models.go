package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"travel-catalog-service/internal/domain"
)

// ItineraryJSON stores a day-wise itinerary as a jsonb column.
type ItineraryJSON []domain.ItineraryDay

// Value implements driver.Valuer.
func (i ItineraryJSON) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (i *ItineraryJSON) Scan(src interface{}) error {
	if src == nil {
		*i = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported itinerary column type %T", src)
	}
	return json.Unmarshal(data, i)
}

// PackageModel is the GORM model for the packages table.
type PackageModel struct {
	ID               string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string  `gorm:"type:varchar(300);not null"`
	Slug             string  `gorm:"type:varchar(300);not null;uniqueIndex:uq_packages_slug"`
	Description      string  `gorm:"type:text;not null"`
	ShortDescription string  `gorm:"type:text;not null"`
	Price            float64 `gorm:"not null"`
	OriginalPrice    float64
	Discount         float64        `gorm:"default:0"`
	Duration         string         `gorm:"type:varchar(100);not null"`
	Destination      string         `gorm:"type:varchar(200);not null;index"`
	Category         string         `gorm:"type:varchar(50);not null;index"`
	HolidayTypeID    *string        `gorm:"type:uuid;index"`
	Country          string         `gorm:"type:varchar(100);not null;index"`
	State            string         `gorm:"type:varchar(100);index"`
	TourType         string         `gorm:"type:varchar(20);not null;index"`
	Images           pq.StringArray `gorm:"type:text[]"`
	Highlights       pq.StringArray `gorm:"type:text[]"`
	Itinerary        ItineraryJSON  `gorm:"type:jsonb"`
	Inclusions       pq.StringArray `gorm:"type:text[]"`
	Exclusions       pq.StringArray `gorm:"type:text[]"`
	Terms            pq.StringArray `gorm:"type:text[]"`
	Rating           float64        `gorm:"default:0"`
	IsActive         bool           `gorm:"default:true;index"`
	IsFeatured       bool           `gorm:"default:false"`
	SEOTitle         string         `gorm:"column:seo_title;type:varchar(200)"`
	SEODescription   string         `gorm:"column:seo_description;type:text"`
	SEOKeywords      pq.StringArray `gorm:"column:seo_keywords;type:text[]"`
	SEOOGImage       string         `gorm:"column:seo_og_image;type:text"`
	SEOCanonical     string         `gorm:"column:seo_canonical;type:text"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

// TableName returns the table name for PackageModel.
func (PackageModel) TableName() string { return "packages" }

// ToDomain converts PackageModel to domain.Package.
func (m *PackageModel) ToDomain() *domain.Package {
	holidayType := ""
	if m.HolidayTypeID != nil {
		holidayType = *m.HolidayTypeID
	}
	return &domain.Package{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		Price:            m.Price,
		OriginalPrice:    m.OriginalPrice,
		Discount:         m.Discount,
		Duration:         m.Duration,
		Destination:      m.Destination,
		Category:         m.Category,
		HolidayTypeID:    holidayType,
		Country:          m.Country,
		State:            m.State,
		TourType:         domain.TourType(m.TourType),
		Images:           m.Images,
		Highlights:       m.Highlights,
		Itinerary:        m.Itinerary,
		Inclusions:       m.Inclusions,
		Exclusions:       m.Exclusions,
		Terms:            m.Terms,
		Rating:           m.Rating,
		IsActive:         m.IsActive,
		IsFeatured:       m.IsFeatured,
		SEO: domain.SEOFields{
			Title:       m.SEOTitle,
			Description: m.SEODescription,
			Keywords:    m.SEOKeywords,
			OGImage:     m.SEOOGImage,
			Canonical:   m.SEOCanonical,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PackageFromDomain creates a PackageModel from domain.Package.
func PackageFromDomain(p *domain.Package) *PackageModel {
	var holidayType *string
	if p.HolidayTypeID != "" {
		holidayType = &p.HolidayTypeID
	}
	return &PackageModel{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		OriginalPrice:    p.OriginalPrice,
		Discount:         p.Discount,
		Duration:         p.Duration,
		Destination:      p.Destination,
		Category:         p.Category,
		HolidayTypeID:    holidayType,
		Country:          p.Country,
		State:            p.State,
		TourType:         string(p.TourType),
		Images:           p.Images,
		Highlights:       p.Highlights,
		Itinerary:        p.Itinerary,
		Inclusions:       p.Inclusions,
		Exclusions:       p.Exclusions,
		Terms:            p.Terms,
		Rating:           p.Rating,
		IsActive:         p.IsActive,
		IsFeatured:       p.IsFeatured,
		SEOTitle:         p.SEO.Title,
		SEODescription:   p.SEO.Description,
		SEOKeywords:      p.SEO.Keywords,
		SEOOGImage:       p.SEO.OGImage,
		SEOCanonical:     p.SEO.Canonical,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// DestinationModel is the GORM model for the destinations table.
type DestinationModel struct {
	ID               string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string `gorm:"type:varchar(200);not null;index"`
	Slug             string `gorm:"type:varchar(200);not null;uniqueIndex:uq_destinations_slug"`
	Description      string `gorm:"type:text;not null"`
	ShortDescription string `gorm:"type:text;not null"`
	Image            string `gorm:"type:text;not null"`
	Location         string `gorm:"type:varchar(200);not null;index"`
	HolidayTypeID    *string `gorm:"type:uuid;index"`
	Country          string  `gorm:"type:varchar(100);not null;index"`
	State            string  `gorm:"type:varchar(100);index"`
	TourType         string  `gorm:"type:varchar(20);not null;index"`
	Category         string  `gorm:"type:varchar(50);not null;index"`
	Rating           float64 `gorm:"default:0"`
	Price            float64
	Duration         string         `gorm:"type:varchar(100)"`
	Highlights       pq.StringArray `gorm:"type:text[]"`
	Inclusions       pq.StringArray `gorm:"type:text[]"`
	Exclusions       pq.StringArray `gorm:"type:text[]"`
	Itinerary        ItineraryJSON  `gorm:"type:jsonb"`
	IsActive         bool           `gorm:"default:true;index"`
	IsTrending       bool           `gorm:"default:false"`
	VisitCount       int            `gorm:"default:0"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

// TableName returns the table name for DestinationModel.
func (DestinationModel) TableName() string { return "destinations" }

// ToDomain converts DestinationModel to domain.Destination.
func (m *DestinationModel) ToDomain() *domain.Destination {
	holidayType := ""
	if m.HolidayTypeID != nil {
		holidayType = *m.HolidayTypeID
	}
	return &domain.Destination{
		ID:               m.ID,
		Name:             m.Name,
		Slug:             m.Slug,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		Image:            m.Image,
		Location:         m.Location,
		HolidayTypeID:    holidayType,
		Country:          m.Country,
		State:            m.State,
		TourType:         domain.TourType(m.TourType),
		Category:         m.Category,
		Rating:           m.Rating,
		Price:            m.Price,
		Duration:         m.Duration,
		Highlights:       m.Highlights,
		Inclusions:       m.Inclusions,
		Exclusions:       m.Exclusions,
		Itinerary:        m.Itinerary,
		IsActive:         m.IsActive,
		IsTrending:       m.IsTrending,
		VisitCount:       m.VisitCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// DestinationFromDomain creates a DestinationModel from domain.Destination.
func DestinationFromDomain(d *domain.Destination) *DestinationModel {
	var holidayType *string
	if d.HolidayTypeID != "" {
		holidayType = &d.HolidayTypeID
	}
	return &DestinationModel{
		ID:               d.ID,
		Name:             d.Name,
		Slug:             d.Slug,
		Description:      d.Description,
		ShortDescription: d.ShortDescription,
		Image:            d.Image,
		Location:         d.Location,
		HolidayTypeID:    holidayType,
		Country:          d.Country,
		State:            d.State,
		TourType:         string(d.TourType),
		Category:         d.Category,
		Rating:           d.Rating,
		Price:            d.Price,
		Duration:         d.Duration,
		Highlights:       d.Highlights,
		Inclusions:       d.Inclusions,
		Exclusions:       d.Exclusions,
		Itinerary:        d.Itinerary,
		IsActive:         d.IsActive,
		IsTrending:       d.IsTrending,
		VisitCount:       d.VisitCount,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// DepartureModel is the GORM model for the fixed_departures table.
type DepartureModel struct {
	ID               string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string  `gorm:"type:varchar(300);not null"`
	Slug             string  `gorm:"type:varchar(300);not null;uniqueIndex:uq_fixed_departures_slug"`
	Description      string  `gorm:"type:text;not null"`
	ShortDescription string  `gorm:"type:text;not null"`
	Price            float64 `gorm:"not null"`
	OriginalPrice    float64
	Discount         float64        `gorm:"default:0"`
	Duration         string         `gorm:"type:varchar(100);not null"`
	Destination      string         `gorm:"type:varchar(200);not null;index"`
	DepartureDate    time.Time      `gorm:"not null;index"`
	ReturnDate       time.Time      `gorm:"not null"`
	AvailableSeats   int            `gorm:"not null"`
	TotalSeats       int            `gorm:"not null"`
	Images           pq.StringArray `gorm:"type:text[]"`
	Highlights       pq.StringArray `gorm:"type:text[]"`
	Itinerary        ItineraryJSON  `gorm:"type:jsonb"`
	Inclusions       pq.StringArray `gorm:"type:text[]"`
	Exclusions       pq.StringArray `gorm:"type:text[]"`
	Terms            pq.StringArray `gorm:"type:text[]"`
	Rating           float64        `gorm:"default:0"`
	IsActive         bool           `gorm:"default:true;index"`
	IsFeatured       bool           `gorm:"default:false"`
	Status           string         `gorm:"type:varchar(20);default:'upcoming';index"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

// TableName returns the table name for DepartureModel.
func (DepartureModel) TableName() string { return "fixed_departures" }

// ToDomain converts DepartureModel to domain.FixedDeparture.
func (m *DepartureModel) ToDomain() *domain.FixedDeparture {
	return &domain.FixedDeparture{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		Price:            m.Price,
		OriginalPrice:    m.OriginalPrice,
		Discount:         m.Discount,
		Duration:         m.Duration,
		Destination:      m.Destination,
		DepartureDate:    m.DepartureDate,
		ReturnDate:       m.ReturnDate,
		AvailableSeats:   m.AvailableSeats,
		TotalSeats:       m.TotalSeats,
		Images:           m.Images,
		Highlights:       m.Highlights,
		Itinerary:        m.Itinerary,
		Inclusions:       m.Inclusions,
		Exclusions:       m.Exclusions,
		Terms:            m.Terms,
		Rating:           m.Rating,
		IsActive:         m.IsActive,
		IsFeatured:       m.IsFeatured,
		Status:           domain.DepartureStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// DepartureFromDomain creates a DepartureModel from domain.FixedDeparture.
func DepartureFromDomain(f *domain.FixedDeparture) *DepartureModel {
	return &DepartureModel{
		ID:               f.ID,
		Title:            f.Title,
		Slug:             f.Slug,
		Description:      f.Description,
		ShortDescription: f.ShortDescription,
		Price:            f.Price,
		OriginalPrice:    f.OriginalPrice,
		Discount:         f.Discount,
		Duration:         f.Duration,
		Destination:      f.Destination,
		DepartureDate:    f.DepartureDate,
		ReturnDate:       f.ReturnDate,
		AvailableSeats:   f.AvailableSeats,
		TotalSeats:       f.TotalSeats,
		Images:           f.Images,
		Highlights:       f.Highlights,
		Itinerary:        f.Itinerary,
		Inclusions:       f.Inclusions,
		Exclusions:       f.Exclusions,
		Terms:            f.Terms,
		Rating:           f.Rating,
		IsActive:         f.IsActive,
		IsFeatured:       f.IsFeatured,
		Status:           string(f.Status),
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}

// HolidayTypeModel is the GORM model for the holiday_types table.
type HolidayTypeModel struct {
	ID               string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string `gorm:"type:varchar(200);not null"`
	Slug             string `gorm:"type:varchar(200);not null;uniqueIndex:uq_holiday_types_slug"`
	Description      string `gorm:"type:text;not null"`
	ShortDescription string `gorm:"type:text;not null"`
	Image            string `gorm:"type:text;not null"`
	Duration         string `gorm:"type:varchar(100);not null"`
	Travelers        string `gorm:"type:varchar(100);not null"`
	Badge            string `gorm:"type:varchar(100);not null"`
	Price            string `gorm:"type:varchar(100);not null"`
	Country          string `gorm:"type:varchar(100)"`
	State            string `gorm:"type:varchar(100)"`
	TourType         string `gorm:"type:varchar(20)"`
	Category         string `gorm:"type:varchar(50)"`
	IsActive         bool   `gorm:"default:true;index"`
	IsFeatured       bool   `gorm:"default:false"`
	SortOrder        int    `gorm:"column:sort_order;default:0;index"`
	Highlights       pq.StringArray `gorm:"type:text[]"`
	Inclusions       pq.StringArray `gorm:"type:text[]"`
	Exclusions       pq.StringArray `gorm:"type:text[]"`
	Itinerary        ItineraryJSON  `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

// TableName returns the table name for HolidayTypeModel.
func (HolidayTypeModel) TableName() string { return "holiday_types" }

// ToDomain converts HolidayTypeModel to domain.HolidayType.
func (m *HolidayTypeModel) ToDomain() *domain.HolidayType {
	return &domain.HolidayType{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		Image:            m.Image,
		Duration:         m.Duration,
		Travelers:        m.Travelers,
		Badge:            m.Badge,
		Price:            m.Price,
		Country:          m.Country,
		State:            m.State,
		TourType:         domain.TourType(m.TourType),
		Category:         m.Category,
		IsActive:         m.IsActive,
		IsFeatured:       m.IsFeatured,
		Order:            m.SortOrder,
		Highlights:       m.Highlights,
		Inclusions:       m.Inclusions,
		Exclusions:       m.Exclusions,
		Itinerary:        m.Itinerary,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// HolidayTypeFromDomain creates a HolidayTypeModel from domain.HolidayType.
func HolidayTypeFromDomain(h *domain.HolidayType) *HolidayTypeModel {
	return &HolidayTypeModel{
		ID:               h.ID,
		Title:            h.Title,
		Slug:             h.Slug,
		Description:      h.Description,
		ShortDescription: h.ShortDescription,
		Image:            h.Image,
		Duration:         h.Duration,
		Travelers:        h.Travelers,
		Badge:            h.Badge,
		Price:            h.Price,
		Country:          h.Country,
		State:            h.State,
		TourType:         string(h.TourType),
		Category:         h.Category,
		IsActive:         h.IsActive,
		IsFeatured:       h.IsFeatured,
		SortOrder:        h.Order,
		Highlights:       h.Highlights,
		Inclusions:       h.Inclusions,
		Exclusions:       h.Exclusions,
		Itinerary:        h.Itinerary,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
}
