package dto

import "github.com/SscSPs/hrops_backend/internal/core/domain"

// PageInfoRequest selects one page of a list. Zero values fall back to page 1 of 10.
type PageInfoRequest struct {
	PageNum  int `json:"pageNum" binding:"omitempty,min=1,max=1000000"`
	PageSize int `json:"pageSize" binding:"omitempty,min=1,max=100"`
}

// ToDomain converts the request into a normalized domain.PageInfo.
func (p PageInfoRequest) ToDomain() domain.PageInfo {
	return domain.PageInfo{PageNum: p.PageNum, PageSize: p.PageSize}.Normalize()
}

// ListRequest is the body of every list endpoint: a filter plus the page wanted.
type ListRequest[C any] struct {
	SearchCondition C               `json:"searchCondition"`
	PageInfo        PageInfoRequest `json:"pageInfo"`
}

// PaginationResponse describes where a page sits in the full result set.
type PaginationResponse struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
}

// ListResponse is the data payload of every list endpoint.
type ListResponse[R any] struct {
	Records    []R                `json:"records"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToListResponse converts a domain page, mapping each record with convert.
func ToListResponse[D any, R any](page domain.Page[D], convert func(*D) R) ListResponse[R] {
	records := make([]R, len(page.Records))
	for i := range page.Records {
		records[i] = convert(&page.Records[i])
	}
	return ListResponse[R]{
		Records: records,
		Pagination: PaginationResponse{
			CurrentPage:  page.PageInfo.Normalize().PageNum,
			TotalPages:   page.TotalPages(),
			TotalRecords: page.TotalRecords,
		},
	}
}

// PeriodQuery selects a calendar month.
type PeriodQuery struct {
	Month int `form:"month" json:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" json:"year" binding:"required,min=2000,max=2100"`
}
