package utils

// Pagination - метаданные страницы, производные от (total, page, limit)
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Paginate slices an already filtered result list for a 1-based page of the
// given size. A page past the end yields an empty slice, not an error.
// Listing and search share this exact arithmetic.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(items)
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}

	pageItems := make([]T, 0, limit)
	if start < total {
		pageItems = append(pageItems, items[start:end]...)
	}

	return pageItems, Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
		HasNext:    end < total,
		HasPrev:    page > 1,
	}
}
