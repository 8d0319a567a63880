package pagination

import "gorm.io/gorm"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ledgerOrder lists newest transactions first. id breaks ties between rows
// created in the same instant so pages never overlap.
const ledgerOrder = "date DESC, created_at DESC, id DESC"

// PageRequest selects one page of a ledger listing.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in a missing page or page size and clamps the size to
// MaxPageSize for callers that skipped query binding.
func (p *PageRequest) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.PageSize < 1:
		p.PageSize = DefaultPageSize
	case p.PageSize > MaxPageSize:
		p.PageSize = MaxPageSize
	}
}

func (p PageRequest) offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse is one page of items plus the totals a client needs to page
// through the rest.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// NewPageResponse wraps data, the rows of req's page out of totalItems.
// A nil slice is returned as an empty list.
func NewPageResponse[T any](data []T, req PageRequest, totalItems int64) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	size := int64(req.PageSize)
	totalPages := int((totalItems + size - 1) / size)
	return PageResponse[T]{
		Data:       data,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasMore:    req.Page < totalPages,
	}
}

// Paginate is a GORM scope selecting req's page of a transaction query in
// ledger order. req must already have its defaults applied.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(ledgerOrder).Offset(req.offset()).Limit(req.PageSize)
	}
}
