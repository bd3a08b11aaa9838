package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createCatalogTables creates the four catalog tables with their indexes.
// Every slugged table carries a unique index on slug: the application
// pre-checks availability, but this index is what actually guarantees it.
func createCatalogTables() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "001_create_catalog",
		Migrate: func(tx *gorm.DB) error {
			tables := []string{
				`CREATE TABLE IF NOT EXISTS holiday_types (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title VARCHAR(200) NOT NULL,
					slug VARCHAR(200) NOT NULL,
					description TEXT NOT NULL,
					short_description TEXT NOT NULL,
					image TEXT NOT NULL,
					duration VARCHAR(100) NOT NULL,
					travelers VARCHAR(100) NOT NULL,
					badge VARCHAR(100) NOT NULL,
					price VARCHAR(100) NOT NULL,
					country VARCHAR(100),
					state VARCHAR(100),
					tour_type VARCHAR(20),
					category VARCHAR(50),
					is_active BOOLEAN DEFAULT TRUE,
					is_featured BOOLEAN DEFAULT FALSE,
					sort_order INTEGER DEFAULT 0,
					highlights TEXT[],
					inclusions TEXT[],
					exclusions TEXT[],
					itinerary JSONB,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					CONSTRAINT uq_holiday_types_slug UNIQUE (slug)
				);`,

				`CREATE TABLE IF NOT EXISTS packages (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title VARCHAR(300) NOT NULL,
					slug VARCHAR(300) NOT NULL,
					description TEXT NOT NULL,
					short_description TEXT NOT NULL,
					price DECIMAL(12,2) NOT NULL,
					original_price DECIMAL(12,2),
					discount DECIMAL(5,2) DEFAULT 0,
					duration VARCHAR(100) NOT NULL,
					destination VARCHAR(200) NOT NULL,
					category VARCHAR(50) NOT NULL,
					holiday_type_id UUID REFERENCES holiday_types(id) ON DELETE SET NULL,
					country VARCHAR(100) NOT NULL,
					state VARCHAR(100),
					tour_type VARCHAR(20) NOT NULL,
					images TEXT[],
					highlights TEXT[],
					itinerary JSONB,
					inclusions TEXT[],
					exclusions TEXT[],
					terms TEXT[],
					rating DECIMAL(3,1) DEFAULT 0,
					is_active BOOLEAN DEFAULT TRUE,
					is_featured BOOLEAN DEFAULT FALSE,
					seo_title VARCHAR(200),
					seo_description TEXT,
					seo_keywords TEXT[],
					seo_og_image TEXT,
					seo_canonical TEXT,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					CONSTRAINT uq_packages_slug UNIQUE (slug)
				);`,

				`CREATE TABLE IF NOT EXISTS destinations (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name VARCHAR(200) NOT NULL,
					slug VARCHAR(200) NOT NULL,
					description TEXT NOT NULL,
					short_description TEXT NOT NULL,
					image TEXT NOT NULL,
					location VARCHAR(200) NOT NULL,
					holiday_type_id UUID REFERENCES holiday_types(id) ON DELETE SET NULL,
					country VARCHAR(100) NOT NULL,
					state VARCHAR(100),
					tour_type VARCHAR(20) NOT NULL,
					category VARCHAR(50) NOT NULL,
					rating DECIMAL(3,1) DEFAULT 0,
					price DECIMAL(12,2),
					duration VARCHAR(100),
					highlights TEXT[],
					inclusions TEXT[],
					exclusions TEXT[],
					itinerary JSONB,
					is_active BOOLEAN DEFAULT TRUE,
					is_trending BOOLEAN DEFAULT FALSE,
					visit_count INTEGER DEFAULT 0,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					CONSTRAINT uq_destinations_slug UNIQUE (slug)
				);`,

				`CREATE TABLE IF NOT EXISTS fixed_departures (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title VARCHAR(300) NOT NULL,
					slug VARCHAR(300) NOT NULL,
					description TEXT NOT NULL,
					short_description TEXT NOT NULL,
					price DECIMAL(12,2) NOT NULL,
					original_price DECIMAL(12,2),
					discount DECIMAL(5,2) DEFAULT 0,
					duration VARCHAR(100) NOT NULL,
					destination VARCHAR(200) NOT NULL,
					departure_date TIMESTAMP NOT NULL,
					return_date TIMESTAMP NOT NULL,
					available_seats INTEGER NOT NULL,
					total_seats INTEGER NOT NULL,
					images TEXT[],
					highlights TEXT[],
					itinerary JSONB,
					inclusions TEXT[],
					exclusions TEXT[],
					terms TEXT[],
					rating DECIMAL(3,1) DEFAULT 0,
					is_active BOOLEAN DEFAULT TRUE,
					is_featured BOOLEAN DEFAULT FALSE,
					status VARCHAR(20) DEFAULT 'upcoming',
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					CONSTRAINT uq_fixed_departures_slug UNIQUE (slug)
				);`,
			}

			for _, ddl := range tables {
				if err := tx.Exec(ddl).Error; err != nil {
					return err
				}
			}

			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_packages_category ON packages(category);",
				"CREATE INDEX IF NOT EXISTS idx_packages_destination ON packages(destination);",
				"CREATE INDEX IF NOT EXISTS idx_packages_country ON packages(country);",
				"CREATE INDEX IF NOT EXISTS idx_packages_tour_type ON packages(tour_type);",
				"CREATE INDEX IF NOT EXISTS idx_packages_active ON packages(is_active);",
				"CREATE INDEX IF NOT EXISTS idx_packages_title_lower ON packages(LOWER(title));",
				"CREATE INDEX IF NOT EXISTS idx_destinations_name ON destinations(name);",
				"CREATE INDEX IF NOT EXISTS idx_destinations_country ON destinations(country);",
				"CREATE INDEX IF NOT EXISTS idx_destinations_active ON destinations(is_active);",
				"CREATE INDEX IF NOT EXISTS idx_destinations_visits ON destinations(visit_count DESC);",
				"CREATE INDEX IF NOT EXISTS idx_departures_date ON fixed_departures(departure_date);",
				"CREATE INDEX IF NOT EXISTS idx_departures_status ON fixed_departures(status);",
				"CREATE INDEX IF NOT EXISTS idx_holiday_types_order ON holiday_types(sort_order);",
			}

			for _, idx := range indexes {
				if err := tx.Exec(idx).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			drops := []string{
				"DROP TABLE IF EXISTS fixed_departures;",
				"DROP TABLE IF EXISTS destinations;",
				"DROP TABLE IF EXISTS packages;",
				"DROP TABLE IF EXISTS holiday_types;",
			}
			for _, ddl := range drops {
				if err := tx.Exec(ddl).Error; err != nil {
					return err
				}
			}
			return nil
		},
	}
}
