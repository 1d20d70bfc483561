package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poi-catalog/internal/pkg/utils"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		limit      int
		wantLen    int
		wantFirst  int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{
			name:  "first page of 25 by 10",
			total: 25, page: 1, limit: 10,
			wantLen: 10, wantFirst: 0, wantPages: 3, wantNext: true, wantPrev: false,
		},
		{
			name:  "middle page of 25 by 10",
			total: 25, page: 2, limit: 10,
			wantLen: 10, wantFirst: 10, wantPages: 3, wantNext: true, wantPrev: true,
		},
		{
			name:  "last partial page of 25 by 10",
			total: 25, page: 3, limit: 10,
			wantLen: 5, wantFirst: 20, wantPages: 3, wantNext: false, wantPrev: true,
		},
		{
			name:  "page beyond range is empty, not an error",
			total: 25, page: 7, limit: 10,
			wantLen: 0, wantPages: 3, wantNext: false, wantPrev: true,
		},
		{
			name:  "exact fit",
			total: 20, page: 2, limit: 10,
			wantLen: 10, wantFirst: 10, wantPages: 2, wantNext: false, wantPrev: true,
		},
		{
			name:  "empty input",
			total: 0, page: 1, limit: 10,
			wantLen: 0, wantPages: 0, wantNext: false, wantPrev: false,
		},
		{
			name:  "limit larger than total",
			total: 3, page: 1, limit: 50,
			wantLen: 3, wantFirst: 0, wantPages: 1, wantNext: false, wantPrev: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pg := utils.Paginate(makeItems(tt.total), tt.page, tt.limit)

			assert.Len(t, page, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, page[0])
			}
			assert.Equal(t, tt.total, pg.Total)
			assert.Equal(t, tt.wantPages, pg.TotalPages)
			assert.Equal(t, tt.wantNext, pg.HasNext)
			assert.Equal(t, tt.wantPrev, pg.HasPrev)
		})
	}
}

// Slice length must equal max(0, min(L, T-(P-1)*L)) for any inputs.
func TestPaginate_SliceLengthProperty(t *testing.T) {
	for total := 0; total <= 30; total++ {
		items := makeItems(total)
		for page := 1; page <= 5; page++ {
			for limit := 1; limit <= 12; limit++ {
				got, pg := utils.Paginate(items, page, limit)

				want := total - (page-1)*limit
				if want > limit {
					want = limit
				}
				if want < 0 {
					want = 0
				}
				assert.Len(t, got, want)
				assert.Equal(t, (total+limit-1)/limit, pg.TotalPages)
			}
		}
	}
}

func TestPaginate_NonPositiveInputsClamped(t *testing.T) {
	page, pg := utils.Paginate(makeItems(5), 0, 0)
	assert.Len(t, page, 1)
	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 1, pg.Limit)
}
