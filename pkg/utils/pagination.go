package utils

import "strconv"

// MaxPageLimit caps the page size a client may request.
const MaxPageLimit = 100

// PaginationParams is the page a list endpoint was asked for. Limit 0 means unpaged.
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
}

// GetPaginationParams normalises page to at least 1 and limit to [0, MaxPageLimit].
func GetPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 0:
		limit = 0
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return PaginationParams{Page: page, Limit: limit}
}

// ParsePagination reads raw query values; unparsable values fall back to defaults.
func ParsePagination(pageRaw, limitRaw string) PaginationParams {
	page, _ := strconv.Atoi(pageRaw)
	limit, _ := strconv.Atoi(limitRaw)
	return GetPaginationParams(page, limit)
}

// Enabled reports whether a limit was requested.
func (p PaginationParams) Enabled() bool {
	return p.Limit > 0
}

func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta describes the page. An unpaged list is reported as a single page holding everything.
func CalculateMeta(totalCount int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		return PaginationMeta{
			Page:       1,
			Limit:      int(totalCount),
			TotalCount: totalCount,
			TotalPages: 1,
		}
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}
