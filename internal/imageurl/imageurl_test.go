package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	r := NewResolver("https://travel.example.com/")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"relative uploads path", "/uploads/goa.jpg", "https://travel.example.com/uploads/goa.jpg"},
		{"relative without leading slash", "uploads/goa.jpg", "https://travel.example.com/uploads/goa.jpg"},
		{"already absolute", "https://cdn.example.com/goa.jpg", "https://cdn.example.com/goa.jpg"},
		{"absolute http", "http://cdn.example.com/goa.jpg", "http://cdn.example.com/goa.jpg"},
		{"double-prefix artifact", "/uploads/https://cdn.example.com/goa.jpg", "https://cdn.example.com/goa.jpg"},
		{"double-prefix http artifact", "/uploads/http://cdn.example.com/goa.jpg", "http://cdn.example.com/goa.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.in))
		})
	}
}

func TestResolveAll(t *testing.T) {
	r := NewResolver("https://travel.example.com")

	assert.Nil(t, r.ResolveAll(nil))
	assert.Equal(t,
		[]string{"https://travel.example.com/uploads/a.jpg", "https://cdn.example.com/b.jpg"},
		r.ResolveAll([]string{"/uploads/a.jpg", "https://cdn.example.com/b.jpg"}),
	)
}

func TestResolveFirst(t *testing.T) {
	r := NewResolver("https://travel.example.com")

	assert.Nil(t, r.ResolveFirst(nil))
	assert.Nil(t, r.ResolveFirst([]string{}))

	got := r.ResolveFirst([]string{"/uploads/a.jpg", "/uploads/b.jpg"})
	if assert.NotNil(t, got) {
		assert.Equal(t, "https://travel.example.com/uploads/a.jpg", *got)
	}
}
