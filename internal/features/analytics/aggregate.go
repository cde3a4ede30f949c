// ================== internal/features/analytics/aggregate.go ==================
//
// Pure projection helpers over the live report set. Each admin page used to
// reimplement these inline against its own snapshot; they are centralized
// here and re-run on every snapshot. None of them perform I/O or mutate
// their input.
package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/xyz-asif/campusfix/internal/features/reports"
)

// AttributeFilter narrows reports by exact attribute match. Empty or "all"
// fields are no-ops. Category is compared after lowercase normalization;
// intake clients disagree on capitalization.
type AttributeFilter struct {
	Category string
	Type     string
	Status   string
}

func (f AttributeFilter) matches(r *reports.Report) bool {
	if f.Category != "" && f.Category != "all" &&
		r.NormalizedCategory() != strings.ToLower(f.Category) {
		return false
	}
	if f.Type != "" && f.Type != "all" && r.Type != f.Type {
		return false
	}
	if f.Status != "" && f.Status != "all" && r.Status != f.Status {
		return false
	}
	return true
}

// FilterByAttributes keeps the reports matching every set field.
func FilterByAttributes(records []reports.Report, f AttributeFilter) []reports.Report {
	filtered := make([]reports.Report, 0, len(records))
	for i := range records {
		if f.matches(&records[i]) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}

// GroupCount is one key/count pair of a breakdown.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// GroupCounts maps derived keys to counts, preserving first-seen key order.
type GroupCounts struct {
	keys   []string
	counts map[string]int
}

func (g *GroupCounts) add(key string) {
	if _, seen := g.counts[key]; !seen {
		g.keys = append(g.keys, key)
	}
	g.counts[key]++
}

// Count returns the count for a key, zero when absent.
func (g *GroupCounts) Count(key string) int {
	return g.counts[key]
}

// Entries returns the groups in first-seen order.
func (g *GroupCounts) Entries() []GroupCount {
	entries := make([]GroupCount, 0, len(g.keys))
	for _, key := range g.keys {
		entries = append(entries, GroupCount{Key: key, Count: g.counts[key]})
	}
	return entries
}

// Group counts reports by a derived key. keyFn returns ok=false to skip a
// record (missing field); malformed records never raise, they are excluded.
func Group(records []reports.Report, keyFn func(*reports.Report) (string, bool)) *GroupCounts {
	g := &GroupCounts{counts: make(map[string]int)}
	for i := range records {
		if key, ok := keyFn(&records[i]); ok {
			g.add(key)
		}
	}
	return g
}

// TopN returns the n largest groups, descending by count. Ties keep
// first-seen order. n below zero is treated as zero.
func TopN(g *GroupCounts, n int) []GroupCount {
	if n < 0 {
		n = 0
	}
	entries := g.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// PercentChange compares the active period against the previous one,
// rounded to one decimal. A zero previous period reads as +100% when
// anything arrived, otherwise 0.
func PercentChange(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	change := float64(current-previous) / float64(previous) * 100
	return math.Round(change*10) / 10
}

// SortReports stably sorts by a field. Records missing the field sort last
// in either direction; timestamps compare as instants.
func SortReports(records []reports.Report, field, direction string) []reports.Report {
	sorted := make([]reports.Report, len(records))
	copy(sorted, records)

	desc := strings.EqualFold(direction, "desc")

	sort.SliceStable(sorted, func(i, j int) bool {
		aStr, aTime, aOK := fieldValue(&sorted[i], field)
		bStr, bTime, bOK := fieldValue(&sorted[j], field)

		if !aOK || !bOK {
			// Missing values sink to the end regardless of direction.
			return aOK && !bOK
		}

		if aTime != nil && bTime != nil {
			if desc {
				return aTime.After(*bTime)
			}
			return aTime.Before(*bTime)
		}

		if desc {
			return aStr > bStr
		}
		return aStr < bStr
	})

	return sorted
}

func fieldValue(r *reports.Report, field string) (string, *time.Time, bool) {
	switch field {
	case "timestamp":
		return "", r.Timestamp, r.Timestamp != nil
	case "category":
		return r.Category, nil, r.Category != ""
	case "type":
		return r.Type, nil, r.Type != ""
	case "status":
		return r.Status, nil, r.Status != ""
	case "userEmail":
		return r.UserEmail, nil, r.UserEmail != ""
	case "assignedTo":
		return r.AssignedTo, nil, r.AssignedTo != ""
	case "id":
		return r.ID.Hex(), nil, !r.ID.IsZero()
	default:
		return "", nil, false
	}
}

// Paginate slices out a 1-indexed page. An out-of-range page yields an empty
// slice, never an error.
func Paginate(records []reports.Report, page, pageSize int) []reports.Report {
	if page < 1 || pageSize < 1 {
		return []reports.Report{}
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []reports.Report{}
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	return records[start:end]
}

// SearchReports keeps reports whose id, category, type, or status contains
// the term, case-insensitively. An empty term is a no-op.
func SearchReports(records []reports.Report, term string) []reports.Report {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}

	filtered := make([]reports.Report, 0, len(records))
	for i := range records {
		r := &records[i]
		if strings.Contains(strings.ToLower(r.ID.Hex()), term) ||
			strings.Contains(strings.ToLower(r.Category), term) ||
			strings.Contains(strings.ToLower(r.Type), term) ||
			strings.Contains(strings.ToLower(r.Status), term) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}
