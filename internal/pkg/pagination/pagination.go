// ================== internal/pkg/pagination/pagination.go ==================
package pagination

import "strconv"

// PaginationRequest represents a pagination request from client
type PaginationRequest struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// FromRequest creates pagination from HTTP request parameters
func FromRequest(pageStr, limitStr string) *PaginationRequest {
	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return &PaginationRequest{
		Page:  page,
		Limit: limit,
	}
}

// Offset returns the skip count for database queries.
func (p *PaginationRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
