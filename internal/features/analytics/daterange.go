// ================== internal/features/analytics/daterange.go ==================
package analytics

import (
	"time"

	"github.com/xyz-asif/campusfix/internal/features/reports"
	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

// RangeMode selects the time window a projection covers.
type RangeMode string

const (
	RangeToday     RangeMode = "today"
	RangeYesterday RangeMode = "yesterday"
	RangeWeek      RangeMode = "week"
	RangeLastWeek  RangeMode = "lastWeek"
	RangeMonth     RangeMode = "month"
	RangeLastMonth RangeMode = "lastMonth"
	RangeYear      RangeMode = "year"
	RangeAll       RangeMode = "all"
	RangeCustom    RangeMode = "custom"
)

// CustomRange is an explicit date window. End is inclusive through the end
// of its calendar day.
type CustomRange struct {
	Start time.Time
	End   time.Time
}

// ParseRangeMode validates a query-string range value. Empty defaults to all.
func ParseRangeMode(s string) (RangeMode, error) {
	switch RangeMode(s) {
	case RangeToday, RangeYesterday, RangeWeek, RangeLastWeek,
		RangeMonth, RangeLastMonth, RangeYear, RangeAll, RangeCustom:
		return RangeMode(s), nil
	case "":
		return RangeAll, nil
	default:
		return "", apperrors.Validation("unknown date range: " + s)
	}
}

// PreviousEquivalent returns the window immediately preceding the given one,
// for period-over-period comparisons. Ranges without a natural predecessor
// return ok=false.
func PreviousEquivalent(mode RangeMode) (RangeMode, bool) {
	switch mode {
	case RangeToday:
		return RangeYesterday, true
	case RangeWeek:
		return RangeLastWeek, true
	case RangeMonth:
		return RangeLastMonth, true
	default:
		return "", false
	}
}

// FilterByDateRange keeps the reports whose creation timestamp falls inside
// the window. RangeAll is the identity filter; every other mode drops
// records without a valid timestamp so malformed intake data never counts as
// in-range. Custom requires both dates.
func FilterByDateRange(records []reports.Report, mode RangeMode, custom *CustomRange, now time.Time) ([]reports.Report, error) {
	if mode == RangeAll {
		return records, nil
	}

	if mode == RangeCustom {
		if custom == nil || custom.Start.IsZero() || custom.End.IsZero() {
			return nil, apperrors.Validation("custom range requires both start and end dates")
		}
	}

	filtered := make([]reports.Report, 0, len(records))
	for i := range records {
		if records[i].Timestamp == nil {
			continue
		}
		if inRange(*records[i].Timestamp, mode, custom, now) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered, nil
}

func inRange(ts time.Time, mode RangeMode, custom *CustomRange, now time.Time) bool {
	switch mode {
	case RangeToday:
		return sameDay(ts, now)
	case RangeYesterday:
		return sameDay(ts, now.AddDate(0, 0, -1))
	case RangeWeek:
		weekAgo := now.AddDate(0, 0, -7)
		return !ts.Before(weekAgo) && !ts.After(now)
	case RangeLastWeek:
		twoWeeksAgo := now.AddDate(0, 0, -14)
		weekAgo := now.AddDate(0, 0, -7)
		return !ts.Before(twoWeeksAgo) && ts.Before(weekAgo)
	case RangeMonth:
		return ts.Year() == now.Year() && ts.Month() == now.Month()
	case RangeLastMonth:
		lastMonth := now.AddDate(0, -1, 0)
		return ts.Year() == lastMonth.Year() && ts.Month() == lastMonth.Month()
	case RangeYear:
		return ts.Year() == now.Year()
	case RangeCustom:
		end := endOfDay(custom.End)
		return !ts.Before(custom.Start) && !ts.After(end)
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// endOfDay extends the inclusive end date through 23:59:59.999 local time.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
