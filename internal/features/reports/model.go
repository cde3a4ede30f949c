// ================== internal/features/reports/model.go ==================
package reports

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report statuses. Stored values keep the original capitalization; all
// comparisons go through statusEquals, which is case-insensitive.
const (
	StatusPending       = "Pending"
	StatusInProgress    = "In Progress"
	StatusPendingReview = "Pending Review"
	StatusResolved      = "Resolved"
	StatusRejected      = "Rejected"
)

// GeoPoint is the optional map location attached by the intake app.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Report is a filed facility-maintenance issue. Reports are created by the
// student-facing intake app and never deleted here; this service only moves
// them through the lifecycle.
type Report struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Type     string             `bson:"type,omitempty" json:"type,omitempty"`

	// Location fields. College/Block/House/Room apply to dorm reports,
	// Faculty/Room to faculty reports; Floor is shared.
	College  string    `bson:"college,omitempty" json:"college,omitempty"`
	Block    string    `bson:"block,omitempty" json:"block,omitempty"`
	Floor    string    `bson:"floor,omitempty" json:"floor,omitempty"`
	House    string    `bson:"house,omitempty" json:"house,omitempty"`
	Room     string    `bson:"room,omitempty" json:"room,omitempty"`
	Faculty  string    `bson:"faculty,omitempty" json:"faculty,omitempty"`
	Location *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`

	Status string `bson:"status,omitempty" json:"status,omitempty"`

	AssignedTo              string     `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	AssignedStaffName       string     `bson:"assignedStaffName,omitempty" json:"assignedStaffName,omitempty"`
	AssignedStaffDepartment string     `bson:"assignedStaffDepartment,omitempty" json:"assignedStaffDepartment,omitempty"`
	AssignedAt              *time.Time `bson:"assignedAt,omitempty" json:"assignedAt,omitempty"`

	ResolutionImage     *string    `bson:"resolutionImage" json:"resolutionImage"`
	ResolutionNote      *string    `bson:"resolutionNote" json:"resolutionNote"`
	ResolutionTimestamp *time.Time `bson:"resolutionTimestamp" json:"resolutionTimestamp"`
	PendingReview       bool       `bson:"pendingReview" json:"pendingReview"`
	ResolvedBy          string     `bson:"resolvedBy,omitempty" json:"resolvedBy,omitempty"`
	ResolvedAt          *time.Time `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	ReviewedAt          *time.Time `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	ReviewNote          string     `bson:"reviewNote,omitempty" json:"reviewNote,omitempty"`
	ReviewedBy          string     `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`

	UserEmail         string     `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	ReporterFullPhone string     `bson:"reporterFullPhone,omitempty" json:"reporterFullPhone,omitempty"`
	ImageURL          string     `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Description       string     `bson:"description,omitempty" json:"description,omitempty"`
	Notes             string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Timestamp         *time.Time `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// CurrentStatus returns the effective status, defaulting to Pending for
// records created before the intake app stamped one.
func (r *Report) CurrentStatus() string {
	if r.Status == "" {
		return StatusPending
	}
	return r.Status
}

// NormalizedCategory lowercases the category for comparison; intake clients
// disagree on capitalization ("dorm" vs "Dorm").
func (r *Report) NormalizedCategory() string {
	return strings.ToLower(strings.TrimSpace(r.Category))
}

// DisplayCategory capitalizes the normalized category for display.
func (r *Report) DisplayCategory() string {
	normalized := r.NormalizedCategory()
	if normalized == "" {
		return ""
	}
	return strings.ToUpper(normalized[:1]) + normalized[1:]
}

// IsResolvedStatus reports whether the effective status is Resolved.
func (r *Report) IsResolvedStatus() bool {
	return statusEquals(r.CurrentStatus(), StatusResolved)
}

// IsOngoing reports whether the report still counts as open work
// (Pending or In Progress).
func (r *Report) IsOngoing() bool {
	return statusEquals(r.CurrentStatus(), StatusPending) ||
		statusEquals(r.CurrentStatus(), StatusInProgress)
}

func statusEquals(a, b string) bool {
	return strings.EqualFold(a, b)
}

// AssignRequest carries the staff member to assign or reassign.
type AssignRequest struct {
	StaffID string `json:"staffId" binding:"required" example:"507f1f77bcf86cd799439011"`
}

// UpdateStatusRequest is the manual admin status override.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" enums:"Pending,In Progress,Resolved"`
}

// ReviewRequest is the admin decision on a staff-submitted resolution.
type ReviewRequest struct {
	Decision string `json:"decision" binding:"required" enums:"approve,reject"`
	Note     string `json:"note"`
}
