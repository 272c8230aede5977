package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Lifecycle is the soft-delete flag shared by every soft-deletable entity.
// Repositories exclude documents with IsDeleted set from normal queries.
type Lifecycle struct {
	IsDeleted bool       `json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	DeletedBy string     `json:"deletedBy,omitempty"`
}

// PageInfo describes which page of a list the caller wants.
type PageInfo struct {
	PageNum  int
	PageSize int
}

const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPageNum keeps Offset far from int overflow.
	MaxPageNum      = 1_000_000
)

// Normalize applies the default page (1) and size (10) and caps both.
func (p PageInfo) Normalize() PageInfo {
	if p.PageNum < 1 {
		p.PageNum = DefaultPageNum
	}
	if p.PageNum > MaxPageNum {
		p.PageNum = MaxPageNum
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the number of records to skip for this page.
func (p PageInfo) Offset() int {
	p = p.Normalize()
	return (p.PageNum - 1) * p.PageSize
}

// Page is one page of records plus the total count across all pages.
type Page[T any] struct {
	Records      []T
	TotalRecords int64
	PageInfo     PageInfo
}

// TotalPages derives the page count from the total and page size.
func (p Page[T]) TotalPages() int {
	size := p.PageInfo.Normalize().PageSize
	pages := int(p.TotalRecords) / size
	if int(p.TotalRecords)%size > 0 {
		pages++
	}
	return pages
}
