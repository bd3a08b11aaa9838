package postgres

import (
	"time"

	"github.com/lib/pq"

	"travel-catalog-service/internal/domain"
)

// BlogModel is the GORM model for the blogs table.
type BlogModel struct {
	ID             string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title          string         `gorm:"type:varchar(300);not null"`
	Content        string         `gorm:"type:text;not null"`
	Excerpt        string         `gorm:"type:text;not null"`
	Author         string         `gorm:"type:varchar(200);not null"`
	Image          string         `gorm:"type:text"`
	Tags           pq.StringArray `gorm:"type:text[]"`
	Category       string         `gorm:"type:varchar(100);not null;index"`
	ReadTime       int            `gorm:"default:0"`
	Views          int            `gorm:"default:0"`
	Likes          int            `gorm:"default:0"`
	IsPublished    bool           `gorm:"default:false;index"`
	IsFeatured     bool           `gorm:"default:false"`
	SEOTitle       string         `gorm:"column:seo_title;type:varchar(200)"`
	SEODescription string         `gorm:"column:seo_description;type:text"`
	SEOKeywords    pq.StringArray `gorm:"column:seo_keywords;type:text[]"`
	SEOOGImage     string         `gorm:"column:seo_og_image;type:text"`
	SEOCanonical   string         `gorm:"column:seo_canonical;type:text"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

// TableName returns the table name for BlogModel.
func (BlogModel) TableName() string { return "blogs" }

// ToDomain converts BlogModel to domain.Blog.
func (m *BlogModel) ToDomain() *domain.Blog {
	return &domain.Blog{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		Excerpt:     m.Excerpt,
		Author:      m.Author,
		Image:       m.Image,
		Tags:        m.Tags,
		Category:    m.Category,
		ReadTime:    m.ReadTime,
		Views:       m.Views,
		Likes:       m.Likes,
		IsPublished: m.IsPublished,
		IsFeatured:  m.IsFeatured,
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

// BlogFromDomain creates a BlogModel from domain.Blog.
func BlogFromDomain(b *domain.Blog) *BlogModel {
	return &BlogModel{
		ID:             b.ID,
		Title:          b.Title,
		Content:        b.Content,
		Excerpt:        b.Excerpt,
		Author:         b.Author,
		Image:          b.Image,
		Tags:           b.Tags,
		Category:       b.Category,
		ReadTime:       b.ReadTime,
		Views:          b.Views,
		Likes:          b.Likes,
		IsPublished:    b.IsPublished,
		IsFeatured:     b.IsFeatured,
		SEOTitle:       b.SEO.Title,
		SEODescription: b.SEO.Description,
		SEOKeywords:    b.SEO.Keywords,
		SEOOGImage:     b.SEO.OGImage,
		SEOCanonical:   b.SEO.Canonical,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// TestimonialModel is the GORM model for the testimonials table.
type TestimonialModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Location  string    `gorm:"type:varchar(200);not null"`
	Rating    int       `gorm:"not null"`
	Image     string    `gorm:"type:text"`
	Text      string    `gorm:"type:text;not null"`
	Package   string    `gorm:"type:varchar(300);not null"`
	Date      string    `gorm:"type:varchar(100)"`
	Verified  bool      `gorm:"default:false"`
	Featured  bool      `gorm:"default:false"`
	IsActive  bool      `gorm:"default:true;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for TestimonialModel.
func (TestimonialModel) TableName() string { return "testimonials" }

// ToDomain converts TestimonialModel to domain.Testimonial.
func (m *TestimonialModel) ToDomain() *domain.Testimonial {
	return &domain.Testimonial{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		Rating:    m.Rating,
		Image:     m.Image,
		Text:      m.Text,
		Package:   m.Package,
		Date:      m.Date,
		Verified:  m.Verified,
		Featured:  m.Featured,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TestimonialFromDomain creates a TestimonialModel from domain.Testimonial.
func TestimonialFromDomain(t *domain.Testimonial) *TestimonialModel {
	return &TestimonialModel{
		ID:        t.ID,
		Name:      t.Name,
		Location:  t.Location,
		Rating:    t.Rating,
		Image:     t.Image,
		Text:      t.Text,
		Package:   t.Package,
		Date:      t.Date,
		Verified:  t.Verified,
		Featured:  t.Featured,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FAQModel is the GORM model for the faqs table.
type FAQModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	Location  string    `gorm:"type:varchar(200);not null;index"`
	IsActive  bool      `gorm:"default:true;index"`
	SortOrder int       `gorm:"column:sort_order;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for FAQModel.
func (FAQModel) TableName() string { return "faqs" }

// ToDomain converts FAQModel to domain.FAQ.
func (m *FAQModel) ToDomain() *domain.FAQ {
	return &domain.FAQ{
		ID:        m.ID,
		Question:  m.Question,
		Answer:    m.Answer,
		Location:  m.Location,
		IsActive:  m.IsActive,
		Order:     m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FAQFromDomain creates a FAQModel from domain.FAQ.
func FAQFromDomain(f *domain.FAQ) *FAQModel {
	return &FAQModel{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Location:  f.Location,
		IsActive:  f.IsActive,
		SortOrder: f.Order,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// SEOSettingsModel is the GORM model for the seo_settings table.
type SEOSettingsModel struct {
	ID          string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Page        string         `gorm:"type:varchar(100);not null;uniqueIndex:uq_seo_settings_page"`
	Title       string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:text"`
	Keywords    pq.StringArray `gorm:"type:text[]"`
	OGImage     string         `gorm:"column:og_image;type:text"`
	Canonical   string         `gorm:"type:text"`
	Robots      string         `gorm:"type:varchar(100);default:'index, follow'"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

// TableName returns the table name for SEOSettingsModel.
func (SEOSettingsModel) TableName() string { return "seo_settings" }

// ToDomain converts SEOSettingsModel to domain.SEOSettings.
func (m *SEOSettingsModel) ToDomain() *domain.SEOSettings {
	return &domain.SEOSettings{
		ID:          m.ID,
		Page:        m.Page,
		Title:       m.Title,
		Description: m.Description,
		Keywords:    m.Keywords,
		OGImage:     m.OGImage,
		Canonical:   m.Canonical,
		Robots:      m.Robots,
		UpdatedAt:   m.UpdatedAt,
	}
}

// SEOSettingsFromDomain creates a SEOSettingsModel from domain.SEOSettings.
func SEOSettingsFromDomain(s *domain.SEOSettings) *SEOSettingsModel {
	return &SEOSettingsModel{
		ID:          s.ID,
		Page:        s.Page,
		Title:       s.Title,
		Description: s.Description,
		Keywords:    s.Keywords,
		OGImage:     s.OGImage,
		Canonical:   s.Canonical,
		Robots:      s.Robots,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SiteBlockModel is the GORM model for the site_blocks table.
type SiteBlockModel struct {
	ID              string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind            string         `gorm:"type:varchar(20);not null;index"`
	Title           string         `gorm:"type:varchar(300);not null"`
	Subtitle        string         `gorm:"type:varchar(300)"`
	Description     string         `gorm:"type:text"`
	BackgroundImage string         `gorm:"type:text"`
	ButtonText      string         `gorm:"type:varchar(100)"`
	ButtonLink      string         `gorm:"type:text"`
	Links           pq.StringArray `gorm:"type:text[]"`
	Phone           string         `gorm:"type:varchar(50)"`
	Email           string         `gorm:"type:varchar(200)"`
	Address         string         `gorm:"type:text"`
	IsActive        bool           `gorm:"default:false;index"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

// TableName returns the table name for SiteBlockModel.
func (SiteBlockModel) TableName() string { return "site_blocks" }

// ToDomain converts SiteBlockModel to domain.SiteBlock.
func (m *SiteBlockModel) ToDomain() *domain.SiteBlock {
	return &domain.SiteBlock{
		ID:              m.ID,
		Kind:            domain.BlockKind(m.Kind),
		Title:           m.Title,
		Subtitle:        m.Subtitle,
		Description:     m.Description,
		BackgroundImage: m.BackgroundImage,
		ButtonText:      m.ButtonText,
		ButtonLink:      m.ButtonLink,
		Links:           m.Links,
		Phone:           m.Phone,
		Email:           m.Email,
		Address:         m.Address,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// SiteBlockFromDomain creates a SiteBlockModel from domain.SiteBlock.
func SiteBlockFromDomain(s *domain.SiteBlock) *SiteBlockModel {
	return &SiteBlockModel{
		ID:              s.ID,
		Kind:            string(s.Kind),
		Title:           s.Title,
		Subtitle:        s.Subtitle,
		Description:     s.Description,
		BackgroundImage: s.BackgroundImage,
		ButtonText:      s.ButtonText,
		ButtonLink:      s.ButtonLink,
		Links:           s.Links,
		Phone:           s.Phone,
		Email:           s.Email,
		Address:         s.Address,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
