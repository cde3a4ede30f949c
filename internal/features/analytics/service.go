// ================== internal/features/analytics/service.go ==================
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xyz-asif/campusfix/internal/features/reports"
)

// Service derives display projections from the live report set. Every call
// re-reads the full collection and re-runs the pure pipeline; there is no
// incremental state to get out of sync.
type Service struct {
	repo *reports.Repository
}

func NewService(repo *reports.Repository) *Service {
	return &Service{repo: repo}
}

// Summary computes the dashboard KPIs for a window plus the change against
// the previous equivalent window. The period-over-period comparison is
// date-only: attribute filters narrow the KPIs but not the trend, matching
// the dashboard.
func (s *Service) Summary(ctx context.Context, mode RangeMode, custom *CustomRange, filter AttributeFilter) (*Summary, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	ranged, err := FilterByDateRange(all, mode, custom, now)
	if err != nil {
		return nil, err
	}
	filtered := FilterByAttributes(ranged, filter)

	summary := &Summary{Total: len(filtered)}
	for i := range filtered {
		if filtered[i].IsOngoing() {
			summary.Ongoing++
		}
		if filtered[i].IsResolvedStatus() {
			summary.Resolved++
		}
	}

	if prev, ok := PreviousEquivalent(mode); ok {
		previous, err := FilterByDateRange(all, prev, nil, now)
		if err != nil {
			return nil, err
		}
		summary.PercentChange = PercentChange(len(ranged), len(previous))
	}

	return summary, nil
}

// Breakdown computes the analytics charts: counts by issue type, status and
// location, the reports-per-day series, and the top five issue types.
func (s *Service) Breakdown(ctx context.Context, mode RangeMode, custom *CustomRange, filter AttributeFilter) (*Breakdown, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ranged, err := FilterByDateRange(all, mode, custom, time.Now())
	if err != nil {
		return nil, err
	}
	filtered := FilterByAttributes(ranged, filter)

	byType := Group(filtered, func(r *reports.Report) (string, bool) {
		return r.Type, r.Type != ""
	})
	byStatus := Group(filtered, func(r *reports.Report) (string, bool) {
		return r.Status, r.Status != ""
	})
	byLocation := Group(filtered, func(r *reports.Report) (string, bool) {
		display := r.DisplayCategory()
		return display, display != ""
	})

	breakdown := &Breakdown{
		Total:      len(filtered),
		ByType:     byType.Entries(),
		ByStatus:   byStatus.Entries(),
		ByLocation: byLocation.Entries(),
		PerDay:     perDaySeries(filtered),
		TopIssues:  TopN(byType, 5),
	}

	for i := range filtered {
		if filtered[i].IsResolvedStatus() {
			breakdown.Resolved++
		} else {
			breakdown.Open++
		}
	}

	return breakdown, nil
}

// Table computes the reports-table projection: search, attribute and date
// filters, then a stable sort, then one page.
func (s *Service) Table(ctx context.Context, query TableQuery) (*TablePage, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ranged, err := FilterByDateRange(all, query.Range, query.Custom, time.Now())
	if err != nil {
		return nil, err
	}

	filtered := FilterByAttributes(ranged, query.Filter)
	filtered = SearchReports(filtered, query.Search)

	field := query.SortField
	if field == "" {
		field = "timestamp"
	}
	order := query.SortOrder
	if order == "" {
		order = "desc"
	}
	sorted := SortReports(filtered, field, order)

	return &TablePage{
		Items: Paginate(sorted, query.Page, query.PageSize),
		Total: len(sorted),
		Page:  query.Page,
		Limit: query.PageSize,
	}, nil
}

// perDaySeries buckets reports by calendar day, ascending.
func perDaySeries(records []reports.Report) []DayCount {
	days := make(map[string]int)
	order := make(map[string]time.Time)

	for i := range records {
		ts := records[i].Timestamp
		if ts == nil {
			continue
		}
		key := fmt.Sprintf("%d-%d-%d", ts.Year(), int(ts.Month()), ts.Day())
		days[key]++
		if _, seen := order[key]; !seen {
			order[key] = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
		}
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return order[keys[i]].Before(order[keys[j]])
	})

	series := make([]DayCount, 0, len(keys))
	for _, key := range keys {
		series = append(series, DayCount{Day: key, Count: days[key]})
	}
	return series
}
