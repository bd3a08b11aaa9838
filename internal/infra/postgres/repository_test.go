package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgresContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/infra/postgres/migrations"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connected GORM DB
//
// Prerequisites:
//   - Docker must be running
//   - Run: docker-compose up postgres
//
// OR
//   - Skip tests with: go test -short
func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgresContainer.Run(ctx,
		"postgres:16-alpine",
		postgresContainer.WithDatabase("testdb"),
		postgresContainer.WithUsername("testuser"),
		postgresContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf(`Failed to start PostgreSQL container: %v

Docker Prerequisites:
1. Ensure Docker is running
2. OR use existing postgres: docker-compose up postgres
3. OR skip integration tests: go test -short

`, err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, migrations.Run(db), "Failed to run migrations")

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}

	return db, cleanup
}

// createTestPackage is a factory function for creating test packages
func createTestPackage(title, slug string) *domain.Package {
	return &domain.Package{
		Title:            title,
		Slug:             slug,
		Description:      "A week through the backwaters and hill stations.",
		ShortDescription: "Backwaters and hills.",
		Price:            24999,
		Duration:         "7 Days / 6 Nights",
		Destination:      "Kerala",
		Category:         "Family Tours",
		Country:          "India",
		State:            "Kerala",
		TourType:         domain.TourTypeIndia,
		Images:           []string{"/uploads/kerala-1.jpg"},
		IsActive:         true,
	}
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test")
	}
}

func TestPackageRepository_CreateAndGet(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPackageRepository(db)
	ctx := context.Background()

	pkg := createTestPackage("Kerala Backwaters", "kerala-backwaters")
	require.NoError(t, repo.Create(ctx, pkg))
	require.NotEmpty(t, pkg.ID, "Create should backfill the generated id")

	got, err := repo.GetBySlug(ctx, "kerala-backwaters")
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, got.ID)
	assert.Equal(t, "Kerala Backwaters", got.Title)
	assert.Equal(t, []string{"/uploads/kerala-1.jpg"}, got.Images)

	byID, err := repo.GetByID(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Slug, byID.Slug)
}

func TestPackageRepository_GetMissing(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPackageRepository(db)
	ctx := context.Background()

	_, err := repo.GetBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageRepository_GetBySlugSkipsInactive(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPackageRepository(db)
	ctx := context.Background()

	pkg := createTestPackage("Kerala Backwaters", "kerala-backwaters")
	require.NoError(t, repo.Create(ctx, pkg))

	pkg.IsActive = false
	require.NoError(t, repo.Update(ctx, pkg))

	// Deactivation takes the package off its public URL but not off the
	// admin by-id read.
	_, err := repo.GetBySlug(ctx, "kerala-backwaters")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	byID, err := repo.GetByID(ctx, pkg.ID)
	require.NoError(t, err)
	assert.False(t, byID.IsActive)
}

func TestPackageRepository_SlugTaken(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPackageRepository(db)
	ctx := context.Background()

	pkg := createTestPackage("Kerala Backwaters", "kerala-backwaters")
	require.NoError(t, repo.Create(ctx, pkg))

	taken, err := repo.SlugTaken(ctx, "kerala-backwaters", "")
	require.NoError(t, err)
	assert.True(t, taken)

	// The owner itself is exempt when excluded.
	taken, err = repo.SlugTaken(ctx, "kerala-backwaters", pkg.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.SlugTaken(ctx, "kerala-backwaters-1", "")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestPackageRepository_DuplicateSlugConflict(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPackageRepository(db)
	ctx := context.Background()

	first := createTestPackage("Kerala Backwaters", "kerala-backwaters")
	require.NoError(t, repo.Create(ctx, first))

	// Same slug inserted directly, as if a concurrent request raced past
	// the availability pre-check. The unique index is the final arbiter.
	second := createTestPackage("Kerala Backwaters Again", "kerala-backwaters")
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err), "expected a slug conflict, got: %v", err)
}

func TestPackageRepository_SuggestCandidates(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPackageRepository(db)
	ctx := context.Background()

	kerala := createTestPackage("Kerala Backwaters", "kerala-backwaters")
	require.NoError(t, repo.Create(ctx, kerala))

	goa := createTestPackage("Goa Beach Escape", "goa-beach-escape")
	goa.Destination = "Goa"
	goa.State = "Goa"
	require.NoError(t, repo.Create(ctx, goa))

	inactive := createTestPackage("Kerala Hidden Gems", "kerala-hidden-gems")
	inactive.IsActive = false
	require.NoError(t, repo.Create(ctx, inactive))

	got, err := repo.SuggestCandidates(ctx, "kerala", 10)
	require.NoError(t, err)
	require.Len(t, got, 1, "inactive packages must not surface")
	assert.Equal(t, "kerala-backwaters", got[0].Slug)

	// Case-insensitive and matching on destination too.
	got, err = repo.SuggestCandidates(ctx, "GOA", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "goa-beach-escape", got[0].Slug)
}

func TestPackageRepository_ListFilters(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPackageRepository(db)
	ctx := context.Background()

	kerala := createTestPackage("Kerala Backwaters", "kerala-backwaters")
	require.NoError(t, repo.Create(ctx, kerala))

	bali := createTestPackage("Bali Honeymoon", "bali-honeymoon")
	bali.Destination = "Bali"
	bali.Country = "Indonesia"
	bali.State = ""
	bali.TourType = domain.TourTypeInternational
	bali.Category = "Honeymoon Packages"
	bali.IsFeatured = true
	require.NoError(t, repo.Create(ctx, bali))

	got, total, err := repo.List(ctx, domain.PackageFilter{TourType: domain.TourTypeInternational})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "bali-honeymoon", got[0].Slug)

	got, total, err = repo.List(ctx, domain.PackageFilter{Featured: true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "bali-honeymoon", got[0].Slug)

	countries, err := repo.DistinctCountries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"India", "Indonesia"}, countries)
}

func TestDestinationRepository_StateMatchesCountry(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewDestinationRepository(db)
	ctx := context.Background()

	vietnam := &domain.Destination{
		Name:             "Ha Long Bay",
		Slug:             "ha-long-bay",
		Description:      "Limestone karsts and emerald waters.",
		ShortDescription: "Limestone karsts.",
		Image:            "/uploads/halong.jpg",
		Location:         "Quang Ninh",
		Country:          "Vietnam",
		TourType:         domain.TourTypeInternational,
		Category:         "Adventure Tours",
		IsActive:         true,
	}
	require.NoError(t, repo.Create(ctx, vietnam))

	// The storefront sends the country name in the state field for
	// international tours; the filter must still find the row.
	got, _, err := repo.List(ctx, domain.DestinationFilter{State: "Vietnam"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ha-long-bay", got[0].Slug)
}

func TestDestinationRepository_IncrementVisits(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewDestinationRepository(db)
	ctx := context.Background()

	dest := &domain.Destination{
		Name:             "Munnar",
		Slug:             "munnar",
		Description:      "Tea gardens in the Western Ghats.",
		ShortDescription: "Tea gardens.",
		Image:            "/uploads/munnar.jpg",
		Location:         "Kerala",
		Country:          "India",
		State:            "Kerala",
		TourType:         domain.TourTypeIndia,
		Category:         "Mountain Treks",
		IsActive:         true,
	}
	require.NoError(t, repo.Create(ctx, dest))

	require.NoError(t, repo.IncrementVisits(ctx, dest.ID))
	require.NoError(t, repo.IncrementVisits(ctx, dest.ID))

	got, err := repo.GetByID(ctx, dest.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.VisitCount)

	assert.ErrorIs(t, repo.IncrementVisits(ctx, "00000000-0000-0000-0000-000000000000"), domain.ErrNotFound)
}

func TestDepartureRepository_ListEnded(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewDepartureRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	mk := func(title, slug string, dep, ret time.Time, status domain.DepartureStatus) *domain.FixedDeparture {
		f := &domain.FixedDeparture{
			Title:            title,
			Slug:             slug,
			Description:      "Group departure.",
			ShortDescription: "Group departure.",
			Price:            49999,
			Duration:         "6 Days",
			Destination:      "Leh",
			DepartureDate:    dep,
			ReturnDate:       ret,
			AvailableSeats:   10,
			TotalSeats:       20,
			IsActive:         true,
			Status:           status,
		}
		require.NoError(t, repo.Create(ctx, f))
		return f
	}

	departed := mk("Departed", "departed", now.Add(-48*time.Hour), now.Add(48*time.Hour), domain.DepartureUpcoming)
	returned := mk("Returned", "returned", now.Add(-96*time.Hour), now.Add(-24*time.Hour), domain.DepartureOngoing)
	mk("Future", "future", now.Add(72*time.Hour), now.Add(168*time.Hour), domain.DepartureUpcoming)
	mk("Cancelled", "cancelled", now.Add(-96*time.Hour), now.Add(-24*time.Hour), domain.DepartureCancelled)

	ended, err := repo.ListEnded(ctx, now)
	require.NoError(t, err)

	slugs := make([]string, 0, len(ended))
	for _, f := range ended {
		slugs = append(slugs, f.Slug)
	}
	assert.ElementsMatch(t, []string{"departed", "returned"}, slugs)

	require.NoError(t, repo.UpdateStatus(ctx, departed.ID, domain.DepartureOngoing))
	require.NoError(t, repo.UpdateStatus(ctx, returned.ID, domain.DepartureCompleted))

	got, err := repo.GetByID(ctx, returned.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DepartureCompleted, got.Status)
}

func TestContentRepository_SEOAndBlocks(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewContentRepository(db)
	ctx := context.Background()

	seo := &domain.SEOSettings{
		Page:        "home",
		Title:       "Travel Packages",
		Description: "Curated tours.",
		Keywords:    []string{"travel", "tours"},
		Robots:      "index, follow",
	}
	require.NoError(t, repo.UpsertSEO(ctx, seo))

	// Second upsert for the same page replaces, not duplicates.
	seo.Title = "Travel Packages 2026"
	require.NoError(t, repo.UpsertSEO(ctx, seo))

	got, err := repo.GetSEO(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Travel Packages 2026", got.Title)

	all, err := repo.ListSEO(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	first := &domain.SiteBlock{Kind: domain.BlockHero, Title: "Summer Sale", IsActive: true}
	require.NoError(t, repo.SaveBlock(ctx, first))

	second := &domain.SiteBlock{Kind: domain.BlockHero, Title: "Winter Sale", IsActive: true}
	require.NoError(t, repo.SaveBlock(ctx, second))

	// Activating the second hero deactivated the first.
	active, err := repo.ActiveBlock(ctx, domain.BlockHero)
	require.NoError(t, err)
	assert.Equal(t, "Winter Sale", active.Title)

	blocks, err := repo.ListBlocks(ctx, domain.BlockHero)
	require.NoError(t, err)
	assert.Len(t, blocks, 2)

	_, err = repo.ActiveBlock(ctx, domain.BlockFooter)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentRepository_Blogs(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewContentRepository(db)
	ctx := context.Background()

	blog := &domain.Blog{
		Title:       "10 Hidden Beaches",
		Content:     "Long form content.",
		Excerpt:     "Short teaser.",
		Author:      "Priya",
		Category:    "beaches",
		IsPublished: true,
	}
	require.NoError(t, repo.CreateBlog(ctx, blog))

	draft := &domain.Blog{
		Title:    "Draft Post",
		Content:  "WIP.",
		Excerpt:  "WIP.",
		Author:   "Priya",
		Category: "beaches",
	}
	require.NoError(t, repo.CreateBlog(ctx, draft))

	published, total, err := repo.ListBlogs(ctx, domain.BlogFilter{Published: true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, published, 1)
	assert.Equal(t, "10 Hidden Beaches", published[0].Title)

	require.NoError(t, repo.IncrementBlogViews(ctx, blog.ID))
	got, err := repo.GetBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)
}

func TestHolidayTypeRepository_ListOrder(t *testing.T) {
	skipShort(t)

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewHolidayTypeRepository(db)
	ctx := context.Background()

	mk := func(title, slug string, order int, active bool) {
		h := &domain.HolidayType{
			Title:            title,
			Slug:             slug,
			Description:      "Themed holidays.",
			ShortDescription: "Themed.",
			Image:            "/uploads/theme.jpg",
			Duration:         "5-7 Days",
			Travelers:        "2+",
			Badge:            "Popular",
			Price:            "From 19,999",
			IsActive:         active,
			Order:            order,
		}
		require.NoError(t, repo.Create(ctx, h))
	}

	mk("Trekking", "trekking", 2, true)
	mk("Honeymoon", "honeymoon", 1, true)
	mk("Hidden", "hidden", 0, false)

	got, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Honeymoon", got[0].Title)
	assert.Equal(t, "Trekking", got[1].Title)
}
