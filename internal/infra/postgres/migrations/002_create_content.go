package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createContentTables creates the editorial tables: blogs, testimonials,
// FAQs, per-page SEO settings and site blocks.
func createContentTables() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "002_create_content",
		Migrate: func(tx *gorm.DB) error {
			tables := []string{
				`CREATE TABLE IF NOT EXISTS blogs (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title VARCHAR(300) NOT NULL,
					content TEXT NOT NULL,
					excerpt TEXT NOT NULL,
					author VARCHAR(200) NOT NULL,
					image TEXT,
					tags TEXT[],
					category VARCHAR(100) NOT NULL,
					read_time INTEGER DEFAULT 0,
					views INTEGER DEFAULT 0,
					likes INTEGER DEFAULT 0,
					is_published BOOLEAN DEFAULT FALSE,
					is_featured BOOLEAN DEFAULT FALSE,
					seo_title VARCHAR(200),
					seo_description TEXT,
					seo_keywords TEXT[],
					seo_og_image TEXT,
					seo_canonical TEXT,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);`,

				`CREATE TABLE IF NOT EXISTS testimonials (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name VARCHAR(200) NOT NULL,
					location VARCHAR(200) NOT NULL,
					rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
					image TEXT,
					text TEXT NOT NULL,
					package VARCHAR(300) NOT NULL,
					date VARCHAR(100),
					verified BOOLEAN DEFAULT FALSE,
					featured BOOLEAN DEFAULT FALSE,
					is_active BOOLEAN DEFAULT TRUE,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);`,

				`CREATE TABLE IF NOT EXISTS faqs (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					question TEXT NOT NULL,
					answer TEXT NOT NULL,
					location VARCHAR(200) NOT NULL,
					is_active BOOLEAN DEFAULT TRUE,
					sort_order INTEGER DEFAULT 0,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);`,

				`CREATE TABLE IF NOT EXISTS seo_settings (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					page VARCHAR(100) NOT NULL,
					title VARCHAR(200) NOT NULL,
					description TEXT,
					keywords TEXT[],
					og_image TEXT,
					canonical TEXT,
					robots VARCHAR(100) DEFAULT 'index, follow',
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					CONSTRAINT uq_seo_settings_page UNIQUE (page)
				);`,

				`CREATE TABLE IF NOT EXISTS site_blocks (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					kind VARCHAR(20) NOT NULL,
					title VARCHAR(300) NOT NULL,
					subtitle VARCHAR(300),
					description TEXT,
					background_image TEXT,
					button_text VARCHAR(100),
					button_link TEXT,
					links TEXT[],
					phone VARCHAR(50),
					email VARCHAR(200),
					address TEXT,
					is_active BOOLEAN DEFAULT FALSE,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);`,
			}

			for _, ddl := range tables {
				if err := tx.Exec(ddl).Error; err != nil {
					return err
				}
			}

			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_blogs_category ON blogs(category);",
				"CREATE INDEX IF NOT EXISTS idx_blogs_published ON blogs(is_published);",
				"CREATE INDEX IF NOT EXISTS idx_testimonials_active ON testimonials(is_active);",
				"CREATE INDEX IF NOT EXISTS idx_faqs_location ON faqs(location);",
				"CREATE INDEX IF NOT EXISTS idx_site_blocks_kind ON site_blocks(kind);",
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
				"DROP TABLE IF EXISTS site_blocks;",
				"DROP TABLE IF EXISTS seo_settings;",
				"DROP TABLE IF EXISTS faqs;",
				"DROP TABLE IF EXISTS testimonials;",
				"DROP TABLE IF EXISTS blogs;",
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
