package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/validator"
)

func newTestValidator() *validator.Validator {
	return validator.New()
}

func TestPackageListRequest_Validation_Valid(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		req  PackageListRequest
	}{
		{
			name: "empty request",
			req:  PackageListRequest{},
		},
		{
			name: "paging only",
			req:  PackageListRequest{ListRequest: ListRequest{Page: 3, Limit: 50}},
		},
		{
			name: "full filter",
			req: PackageListRequest{
				ListRequest: ListRequest{Page: 1, Limit: 10},
				Category:    "Beach Holidays",
				Featured:    true,
				TourType:    "international",
				Country:     "Vietnam",
				HolidayType: "8d0c2b9e-4c5f-4a36-9d27-3a7a2f1b0c44",
			},
		},
		{
			name: "india tour type",
			req:  PackageListRequest{TourType: "india"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, v.Validate(&tt.req))
		})
	}
}

func TestPackageListRequest_Validation_Invalid(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		req  PackageListRequest
	}{
		{
			name: "negative page",
			req:  PackageListRequest{ListRequest: ListRequest{Page: -1, Limit: 10}},
		},
		{
			name: "limit over maximum",
			req:  PackageListRequest{ListRequest: ListRequest{Page: 1, Limit: 500}},
		},
		{
			name: "unknown tour type",
			req:  PackageListRequest{TourType: "domestic"},
		},
		{
			name: "malformed holiday type id",
			req:  PackageListRequest{HolidayType: "not-a-uuid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, v.Validate(&tt.req))
		})
	}
}

func TestPackageListRequest_ToFilter(t *testing.T) {
	req := PackageListRequest{
		ListRequest: ListRequest{Page: 2, Limit: 20},
		Category:    "Honeymoon Packages",
		TourType:    "international",
		Country:     "Switzerland",
	}

	filter := req.ToFilter()

	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, "Honeymoon Packages", filter.Category)
	assert.Equal(t, domain.TourTypeInternational, filter.TourType)
	assert.Equal(t, "Switzerland", filter.Country)
}

func TestPackageSearchRequest_Validation(t *testing.T) {
	v := newTestValidator()

	require.NoError(t, v.Validate(&PackageSearchRequest{Query: "goa", MinPrice: 1000, MaxPrice: 50000}))

	// Query is mandatory for free-text search
	assert.Error(t, v.Validate(&PackageSearchRequest{}))
	assert.Error(t, v.Validate(&PackageSearchRequest{Query: "goa", MinPrice: -5}))
}

func TestDepartureListRequest_Validation(t *testing.T) {
	v := newTestValidator()

	for _, status := range []string{"", "upcoming", "ongoing", "completed", "cancelled"} {
		req := DepartureListRequest{Status: status}
		assert.NoError(t, v.Validate(&req), "status %q should be accepted", status)
	}

	assert.Error(t, v.Validate(&DepartureListRequest{Status: "departed"}))
}

func TestDestinationListRequest_ToFilter_StatePassthrough(t *testing.T) {
	// The storefront sends a country name in the state slot for
	// international tours; the filter must carry it through untouched.
	req := DestinationListRequest{State: "Vietnam", TourType: "international"}

	filter := req.ToFilter()

	assert.Equal(t, "Vietnam", filter.State)
	assert.Equal(t, domain.TourTypeInternational, filter.TourType)
}

func TestBlogListRequest_ToFilter(t *testing.T) {
	req := BlogListRequest{
		ListRequest: ListRequest{Page: 1, Limit: 5},
		Category:    "Travel Tips",
		Published:   true,
	}

	filter := req.ToFilter()

	assert.Equal(t, "Travel Tips", filter.Category)
	assert.True(t, filter.Published)
	assert.False(t, filter.Featured)
}
