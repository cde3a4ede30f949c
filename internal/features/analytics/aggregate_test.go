package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/campusfix/internal/features/reports"
)

func reportAt(ts time.Time) reports.Report {
	return reports.Report{ID: primitive.NewObjectID(), Timestamp: &ts}
}

func TestPercentChange(t *testing.T) {
	require.Equal(t, float64(0), PercentChange(0, 0))
	require.Equal(t, float64(100), PercentChange(5, 0))
	require.Equal(t, float64(50), PercentChange(15, 10))
	require.Equal(t, float64(-50), PercentChange(5, 10))
	require.Equal(t, 33.3, PercentChange(4, 3))
}

func TestGroupNormalizedCategories(t *testing.T) {
	records := []reports.Report{
		{Category: "dorm"},
		{Category: "Dorm"},
		{Category: "FACULTY"},
	}

	counts := Group(records, func(r *reports.Report) (string, bool) {
		display := r.DisplayCategory()
		return display, display != ""
	})

	entries := counts.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, GroupCount{Key: "Dorm", Count: 2}, entries[0])
	require.Equal(t, GroupCount{Key: "Faculty", Count: 1}, entries[1])
}

func TestGroupSkipsMissingKeys(t *testing.T) {
	records := []reports.Report{
		{Type: "Leak"},
		{},
		{Type: "Leak"},
	}

	counts := Group(records, func(r *reports.Report) (string, bool) {
		return r.Type, r.Type != ""
	})

	require.Equal(t, 2, counts.Count("Leak"))
	require.Len(t, counts.Entries(), 1)
}

func TestTopN(t *testing.T) {
	records := []reports.Report{
		{Type: "Leak"}, {Type: "Leak"}, {Type: "Leak"},
		{Type: "Electrical"},
		{Type: "Broken Window"}, {Type: "Broken Window"},
		{Type: "Paint"},
	}

	counts := Group(records, func(r *reports.Report) (string, bool) {
		return r.Type, r.Type != ""
	})

	top := TopN(counts, 2)
	require.Equal(t, []GroupCount{
		{Key: "Leak", Count: 3},
		{Key: "Broken Window", Count: 2},
	}, top)

	// Ties keep first-seen order.
	tied := TopN(counts, 4)
	require.Equal(t, "Electrical", tied[2].Key)
	require.Equal(t, "Paint", tied[3].Key)

	// n beyond the group count returns everything; zero and below return
	// nothing.
	require.Len(t, TopN(counts, 10), 4)
	require.Empty(t, TopN(counts, 0))
	require.Empty(t, TopN(counts, -3))
}

func TestFilterByAttributes(t *testing.T) {
	records := []reports.Report{
		{Category: "Dorm", Type: "Leak", Status: "Pending"},
		{Category: "dorm", Type: "Electrical", Status: "Resolved"},
		{Category: "Faculty", Type: "Leak", Status: "Pending"},
	}

	filtered := FilterByAttributes(records, AttributeFilter{Category: "Dorm"})
	require.Len(t, filtered, 2)

	filtered = FilterByAttributes(records, AttributeFilter{Category: "dorm", Type: "Leak"})
	require.Len(t, filtered, 1)

	filtered = FilterByAttributes(records, AttributeFilter{Category: "all", Type: "all", Status: "all"})
	require.Len(t, filtered, 3)

	filtered = FilterByAttributes(records, AttributeFilter{Status: "Resolved"})
	require.Len(t, filtered, 1)
}

func TestSortReportsMissingFieldSortsLast(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	withTS := reportAt(now)
	older := reportAt(earlier)
	missing := reports.Report{ID: primitive.NewObjectID()}

	sorted := SortReports([]reports.Report{missing, withTS, older}, "timestamp", "asc")
	require.Equal(t, older.ID, sorted[0].ID)
	require.Equal(t, withTS.ID, sorted[1].ID)
	require.Equal(t, missing.ID, sorted[2].ID)

	sorted = SortReports([]reports.Report{missing, older, withTS}, "timestamp", "desc")
	require.Equal(t, withTS.ID, sorted[0].ID)
	require.Equal(t, older.ID, sorted[1].ID)
	require.Equal(t, missing.ID, sorted[2].ID)
}

func TestSortReportsByStringFieldIsStable(t *testing.T) {
	a := reports.Report{ID: primitive.NewObjectID(), Status: "Pending", Type: "A"}
	b := reports.Report{ID: primitive.NewObjectID(), Status: "Pending", Type: "B"}
	c := reports.Report{ID: primitive.NewObjectID(), Status: "In Progress", Type: "C"}

	sorted := SortReports([]reports.Report{a, b, c}, "status", "asc")
	require.Equal(t, "In Progress", sorted[0].Status)
	// Equal keys keep input order.
	require.Equal(t, "A", sorted[1].Type)
	require.Equal(t, "B", sorted[2].Type)
}

func TestSortReportsDoesNotMutateInput(t *testing.T) {
	a := reports.Report{ID: primitive.NewObjectID(), Status: "Pending"}
	b := reports.Report{ID: primitive.NewObjectID(), Status: "In Progress"}
	input := []reports.Report{a, b}

	SortReports(input, "status", "asc")
	require.Equal(t, a.ID, input[0].ID)
}

func TestPaginate(t *testing.T) {
	records := make([]reports.Report, 25)
	for i := range records {
		records[i] = reports.Report{ID: primitive.NewObjectID()}
	}

	page := Paginate(records, 3, 10)
	require.Len(t, page, 5)
	require.Equal(t, records[20].ID, page[0].ID)
	require.Equal(t, records[24].ID, page[4].ID)

	require.Empty(t, Paginate(records, 10, 10))
	require.Empty(t, Paginate(records, 0, 10))
	require.Empty(t, Paginate(records, 1, 0))

	first := Paginate(records, 1, 10)
	require.Len(t, first, 10)
	require.Equal(t, records[0].ID, first[0].ID)
}

func TestSearchReports(t *testing.T) {
	idA, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	idB, err := primitive.ObjectIDFromHex("64b2f00aa11bb22cc33dd44e")
	require.NoError(t, err)

	records := []reports.Report{
		{ID: idA, Category: "Dorm", Type: "Water Leak", Status: "Pending"},
		{ID: idB, Category: "Faculty", Type: "Electrical", Status: "Resolved"},
	}

	require.Len(t, SearchReports(records, "leak"), 1)
	require.Len(t, SearchReports(records, "FACULTY"), 1)
	require.Len(t, SearchReports(records, ""), 2)
	require.Empty(t, SearchReports(records, "heating"))

	// Matches against the document id too.
	require.Len(t, SearchReports(records, "439011"), 1)
}
