package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlugs(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		expected []string
	}{
		{
			name:     "plain list passes through",
			in:       []string{"hotel", "flight"},
			expected: []string{"hotel", "flight"},
		},
		{
			name:     "legacy comma-joined string splits",
			in:       []string{"hotel, flight,cab"},
			expected: []string{"hotel", "flight", "cab"},
		},
		{
			name:     "mixed case and whitespace normalize",
			in:       []string{" Hotel ", "FINE_DINING"},
			expected: []string{"hotel", "fine_dining"},
		},
		{
			name:     "empties drop out",
			in:       []string{"", " , ", "courier"},
			expected: []string{"courier"},
		},
		{
			name:     "nil stays nil",
			in:       nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSlugs(tt.in))
		})
	}
}

func TestCatalogsCoverEngineSlugs(t *testing.T) {
	serviceSlugs := make(map[string]bool, len(ServiceCatalog))
	for _, s := range ServiceCatalog {
		serviceSlugs[s.Slug] = true
	}
	for _, slug := range []string{"hotel", "flight", "cab", "technician", "courier"} {
		assert.True(t, serviceSlugs[slug], "service catalog missing %s", slug)
	}

	interestSlugs := make(map[string]bool, len(InterestCatalog))
	for _, i := range InterestCatalog {
		interestSlugs[i.Slug] = true
	}
	for _, slug := range []string{"fine_dining", "spa", "shopping", "fitness", "tech", "music", "art"} {
		assert.True(t, interestSlugs[slug], "interest catalog missing %s", slug)
	}
}
