// ================== internal/features/tickets/model.go ==================
package tickets

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket statuses.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"
)

// Response author types.
const (
	AuthorAdmin   = "admin"
	AuthorStudent = "student"
)

// Response is one message on a ticket thread. Responses are append-only and
// keep insertion order.
type Response struct {
	ID         string    `bson:"id" json:"id"`
	Message    string    `bson:"message" json:"message"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	Author     string    `bson:"author" json:"author"`
	AuthorType string    `bson:"authorType" json:"authorType" enums:"admin,student"`
}

// Ticket is a student-submitted support ticket, optionally linked to a
// report. Tickets are created by the student-facing app and never deleted
// here.
type Ticket struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail        string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	ReportID         string             `bson:"reportId,omitempty" json:"reportId,omitempty"`
	ReportCategory   string             `bson:"reportCategory,omitempty" json:"reportCategory,omitempty"`
	IssueDescription string             `bson:"issueDescription,omitempty" json:"issueDescription,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Status           string             `bson:"status,omitempty" json:"status,omitempty"`
	Responses        []Response         `bson:"responses,omitempty" json:"responses,omitempty"`
	CreatedAt        *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	LastResponseAt   *time.Time         `bson:"lastResponseAt,omitempty" json:"lastResponseAt,omitempty"`
	ResolvedAt       *time.Time         `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}

// CurrentStatus returns the effective status, defaulting to Open.
func (t *Ticket) CurrentStatus() string {
	if t.Status == "" {
		return StatusOpen
	}
	return t.Status
}

// AddResponseRequest carries a new admin reply.
type AddResponseRequest struct {
	Message string `json:"message" binding:"required"`
}

// UpdateStatusRequest is the direct admin status override.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" enums:"Open,In Progress,Resolved,Closed"`
}

// Stats are the ticket KPI counters shown on the tickets page.
type Stats struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
}
