package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name        string
		page, limit *int
		want        domain.PaginationParams
	}{
		{"defaults", nil, nil, domain.PaginationParams{Page: 1, Limit: 20}},
		{"explicit", intPtr(3), intPtr(5), domain.PaginationParams{Page: 3, Limit: 5}},
		{"non-positive ignored", intPtr(0), intPtr(-1), domain.PaginationParams{Page: 1, Limit: 20}},
		{"limit capped", nil, intPtr(500), domain.PaginationParams{Page: 1, Limit: 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.NewPaginationParams(tc.page, tc.limit))
		})
	}
}

func TestPaginationParams_BoundsAndPages(t *testing.T) {
	p := domain.PaginationParams{Page: 2, Limit: 2}

	lo, hi := p.Bounds(5)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 4, hi)
	assert.Equal(t, 3, p.Pages(5))

	lo, hi = domain.PaginationParams{Page: 4, Limit: 2}.Bounds(5)
	assert.Equal(t, 5, lo, "page past the end is empty")
	assert.Equal(t, 5, hi)

	assert.Equal(t, 0, p.Pages(0))
}

func TestPaginationParams_Bounds_HugePageDoesNotOverflow(t *testing.T) {
	p := domain.PaginationParams{Page: 1 << 62, Limit: 20}

	lo, hi := p.Bounds(5)

	assert.Equal(t, 5, lo)
	assert.Equal(t, 5, hi)
}
