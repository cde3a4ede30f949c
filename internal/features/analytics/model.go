// ================== internal/features/analytics/model.go ==================
package analytics

import (
	"github.com/xyz-asif/campusfix/internal/features/reports"
)

// Summary is the dashboard KPI card data.
type Summary struct {
	Total    int `json:"total"`
	Ongoing  int `json:"ongoing"`
	Resolved int `json:"resolved"`
	// PercentChange compares the active period against the immediately
	// preceding equivalent one (today vs yesterday, week vs lastWeek,
	// month vs lastMonth). Zero for ranges with no predecessor.
	PercentChange float64 `json:"percentChange"`
}

// DayCount is one point of the reports-over-time series.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Breakdown is the analytics page projection.
type Breakdown struct {
	Total      int          `json:"total"`
	Open       int          `json:"open"`
	Resolved   int          `json:"resolved"`
	ByType     []GroupCount `json:"byType"`
	ByStatus   []GroupCount `json:"byStatus"`
	ByLocation []GroupCount `json:"byLocation"`
	PerDay     []DayCount   `json:"perDay"`
	TopIssues  []GroupCount `json:"topIssues"`
}

// TableQuery drives the filtered/sorted/paginated reports table.
type TableQuery struct {
	Range     RangeMode
	Custom    *CustomRange
	Filter    AttributeFilter
	Search    string
	SortField string
	SortOrder string
	Page      int
	PageSize  int
}

// TablePage is one page of the reports table plus its totals.
type TablePage struct {
	Items []reports.Report `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
