package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/xyz-asif/campusfix/internal/features/staff"
	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

func testMember() *staff.Member {
	return &staff.Member{
		Email:       "jane@campus.edu",
		DisplayName: "Jane Doe",
		Department:  "Plumbing",
		Role:        "staff",
	}
}

func TestAssignFreshReport(t *testing.T) {
	now := time.Now()
	report := &Report{Status: StatusPending}

	update, err := Assign(report, testMember(), now)
	require.NoError(t, err)
	require.Equal(t, "jane@campus.edu", update["assignedTo"])
	require.Equal(t, "Jane Doe", update["assignedStaffName"])
	require.Equal(t, "Plumbing", update["assignedStaffDepartment"])
	require.Equal(t, StatusInProgress, update["status"])
	require.Equal(t, now, update["assignedAt"])
}

func TestAssignAlreadyAssignedReport(t *testing.T) {
	report := &Report{Status: StatusInProgress, AssignedTo: "someone@campus.edu"}

	_, err := Assign(report, testMember(), time.Now())
	require.Error(t, err)
	require.True(t, apperrors.IsInvalidTransition(err))
}

func TestAssignThenReassignClearsResolution(t *testing.T) {
	now := time.Now()
	report := &Report{Status: StatusPending}

	update, err := Assign(report, testMember(), now)
	require.NoError(t, err)
	applyUpdate(report, update)

	// Staff submits a resolution out of band, then the admin reassigns.
	image := "https://cdn.example.com/fix.jpg"
	note := "replaced the valve"
	report.ResolutionImage = &image
	report.ResolutionNote = &note
	ts := now
	report.ResolutionTimestamp = &ts
	report.PendingReview = true

	update, err = Reassign(report, testMember(), now)
	require.NoError(t, err)
	applyUpdate(report, update)

	require.Nil(t, report.ResolutionImage)
	require.Nil(t, report.ResolutionNote)
	require.Nil(t, report.ResolutionTimestamp)
	require.False(t, report.PendingReview)
	require.Equal(t, StatusInProgress, report.Status)
}

func TestReassignResolvedReportRefused(t *testing.T) {
	report := &Report{Status: StatusResolved, AssignedTo: "someone@campus.edu"}

	_, err := Reassign(report, testMember(), time.Now())
	require.Error(t, err)
	require.True(t, apperrors.IsInvalidTransition(err))

	// Case-insensitive: intake clients are sloppy about capitalization.
	report.Status = "resolved"
	_, err = Reassign(report, testMember(), time.Now())
	require.True(t, apperrors.IsInvalidTransition(err))
}

func TestReassignRejectedReportAllowed(t *testing.T) {
	// Rejection is not terminal for assignment, only Resolved is.
	report := &Report{Status: StatusRejected, AssignedTo: "someone@campus.edu"}

	update, err := Reassign(report, testMember(), time.Now())
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, update["status"])
}

func TestOverrideStatus(t *testing.T) {
	report := &Report{Status: StatusInProgress}

	update, err := OverrideStatus(report, StatusResolved)
	require.NoError(t, err)
	require.Equal(t, bson.M{"status": StatusResolved}, update)

	// Idempotent no-op when unchanged.
	update, err = OverrideStatus(report, StatusInProgress)
	require.NoError(t, err)
	require.Nil(t, update)

	// Override never touches resolution fields.
	update, err = OverrideStatus(report, StatusPending)
	require.NoError(t, err)
	require.NotContains(t, update, "resolutionImage")
	require.NotContains(t, update, "pendingReview")

	_, err = OverrideStatus(report, StatusRejected)
	require.True(t, apperrors.IsValidation(err))
}

func TestOverrideStatusDefaultsMissingStatusToPending(t *testing.T) {
	report := &Report{}

	update, err := OverrideStatus(report, StatusPending)
	require.NoError(t, err)
	require.Nil(t, update)
}

func TestResolve(t *testing.T) {
	now := time.Now()
	update := Resolve(now)

	require.Equal(t, StatusResolved, update["status"])
	require.Equal(t, now, update["resolvedAt"])
	require.Equal(t, false, update["pendingReview"])
}

func TestReviewRequiresPendingReview(t *testing.T) {
	report := &Report{Status: StatusInProgress}

	_, err := Review(report, DecisionApprove, "", "admin", time.Now())
	require.Error(t, err)
	require.True(t, apperrors.IsInvalidTransition(err))
}

func TestReviewApprove(t *testing.T) {
	now := time.Now()
	report := &Report{Status: StatusPendingReview}

	update, err := Review(report, DecisionApprove, "looks good", "admin@campus.edu", now)
	require.NoError(t, err)
	require.Equal(t, StatusResolved, update["status"])
	require.Equal(t, "looks good", update["reviewNote"])
	require.Equal(t, "admin@campus.edu", update["reviewedBy"])
	require.Equal(t, now, update["reviewedAt"])
}

func TestReviewReject(t *testing.T) {
	report := &Report{Status: StatusPendingReview}

	update, err := Review(report, DecisionReject, "photo does not match", "admin", time.Now())
	require.NoError(t, err)
	require.Equal(t, StatusRejected, update["status"])
	require.Equal(t, "photo does not match", update["reviewNote"])
}

func TestReviewInvalidDecision(t *testing.T) {
	report := &Report{Status: StatusPendingReview}

	_, err := Review(report, "maybe", "", "admin", time.Now())
	require.True(t, apperrors.IsValidation(err))
}

func TestCategoryNormalization(t *testing.T) {
	require.Equal(t, "dorm", (&Report{Category: "Dorm"}).NormalizedCategory())
	require.Equal(t, "dorm", (&Report{Category: "DORM"}).NormalizedCategory())
	require.Equal(t, "Faculty", (&Report{Category: "FACULTY"}).DisplayCategory())
	require.Equal(t, "", (&Report{}).DisplayCategory())
}

// applyUpdate mirrors what the store does with a $set document, for the
// fields the lifecycle touches.
func applyUpdate(r *Report, update bson.M) {
	for key, value := range update {
		switch key {
		case "status":
			r.Status = value.(string)
		case "assignedTo":
			r.AssignedTo = value.(string)
		case "assignedStaffName":
			r.AssignedStaffName = value.(string)
		case "assignedStaffDepartment":
			r.AssignedStaffDepartment = value.(string)
		case "assignedAt":
			t := value.(time.Time)
			r.AssignedAt = &t
		case "resolutionImage":
			r.ResolutionImage = nil
			if s, ok := value.(string); ok {
				r.ResolutionImage = &s
			}
		case "resolutionNote":
			r.ResolutionNote = nil
			if s, ok := value.(string); ok {
				r.ResolutionNote = &s
			}
		case "resolutionTimestamp":
			r.ResolutionTimestamp = nil
			if t, ok := value.(time.Time); ok {
				r.ResolutionTimestamp = &t
			}
		case "pendingReview":
			r.PendingReview = value.(bool)
		}
	}
}
