// ================== internal/features/reports/lifecycle.go ==================
//
// Report lifecycle rules. Every admin surface used to apply these field
// updates inline; they live here so assignment, resolution and review always
// carry the same side effects. Each function validates its precondition
// against the in-memory report and returns the partial update to apply as a
// single-document write. None of them touch the store.
package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/xyz-asif/campusfix/internal/features/staff"
	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

// Review decisions.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// Assign computes the update for a fresh assignment. Calling it on a report
// that already has an assignee is a caller error.
func Assign(r *Report, member *staff.Member, now time.Time) (bson.M, error) {
	if r.AssignedTo != "" {
		return nil, apperrors.InvalidTransition("report is already assigned; use reassign")
	}
	return assignmentFields(member, now), nil
}

// Reassign moves the report to a new assignee and clears any stale resolution
// claim so the new assignee does not inherit it. Blocked once resolved.
func Reassign(r *Report, member *staff.Member, now time.Time) (bson.M, error) {
	if r.IsResolvedStatus() {
		return nil, apperrors.InvalidTransition("resolved reports cannot be reassigned")
	}

	update := assignmentFields(member, now)
	update["resolutionImage"] = nil
	update["resolutionNote"] = nil
	update["resolutionTimestamp"] = nil
	update["pendingReview"] = false
	return update, nil
}

func assignmentFields(member *staff.Member, now time.Time) bson.M {
	return bson.M{
		"assignedTo":              member.Email,
		"assignedStaffName":       member.FullName(),
		"assignedStaffDepartment": member.DepartmentLabel(),
		"status":                  StatusInProgress,
		"assignedAt":              now,
	}
}

// OverrideStatus is the manual escape hatch. It changes the status and
// nothing else: unlike Reassign it leaves resolution fields alone. Returns
// (nil, nil) when the status is already the requested one.
func OverrideStatus(r *Report, newStatus string) (bson.M, error) {
	switch newStatus {
	case StatusPending, StatusInProgress, StatusResolved:
	default:
		return nil, apperrors.Validation("status must be one of Pending, In Progress, Resolved")
	}

	if newStatus == r.CurrentStatus() {
		return nil, nil
	}

	return bson.M{"status": newStatus}, nil
}

// Resolve marks a report resolved, used when an admin approves directly from
// the detail view.
func Resolve(now time.Time) bson.M {
	return bson.M{
		"status":        StatusResolved,
		"resolvedAt":    now,
		"pendingReview": false,
	}
}

// Review applies the admin decision on a staff-submitted resolution. Only a
// report sitting in Pending Review can be reviewed. Approval resolves the
// report, rejection sends it to Rejected; both stamp the review metadata.
func Review(r *Report, decision, note, reviewer string, now time.Time) (bson.M, error) {
	if !statusEquals(r.CurrentStatus(), StatusPendingReview) {
		return nil, apperrors.InvalidTransition("report is not pending review")
	}

	var status string
	switch decision {
	case DecisionApprove:
		status = StatusResolved
	case DecisionReject:
		status = StatusRejected
	default:
		return nil, apperrors.Validation("decision must be approve or reject")
	}

	return bson.M{
		"status":     status,
		"reviewedAt": now,
		"reviewNote": note,
		"reviewedBy": reviewer,
	}, nil
}
