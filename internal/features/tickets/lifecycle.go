// ================== internal/features/tickets/lifecycle.go ==================
//
// Ticket lifecycle rules, kept apart from storage the same way the report
// lifecycle is.
package tickets

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

// NewResponse validates and builds a thread response. The message must be
// non-empty after trimming.
func NewResponse(message, author, authorType string, now time.Time) (Response, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Response{}, apperrors.Validation("response message must not be empty")
	}

	if author == "" {
		author = "Admin"
	}
	if authorType == "" {
		authorType = AuthorAdmin
	}

	return Response{
		ID:         uuid.NewString(),
		Message:    trimmed,
		Timestamp:  now,
		Author:     author,
		AuthorType: authorType,
	}, nil
}

// responseSideEffects is the status and timestamp update that accompanies
// every appended response. The ticket lands in In Progress no matter what
// state it was in before, including Resolved and Closed; the student app
// behaves the same way and admins rely on replies reopening tickets.
func responseSideEffects(now time.Time) bson.M {
	return bson.M{
		"status":         StatusInProgress,
		"updatedAt":      now,
		"lastResponseAt": now,
	}
}

// OverrideStatus is the direct admin status change. Returns (nil, nil) when
// the ticket already has the requested status.
func OverrideStatus(t *Ticket, newStatus string, now time.Time) (bson.M, error) {
	switch newStatus {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
	default:
		return nil, apperrors.Validation("status must be one of Open, In Progress, Resolved, Closed")
	}

	if newStatus == t.CurrentStatus() {
		return nil, nil
	}

	return bson.M{"status": newStatus, "updatedAt": now}, nil
}

// Resolve closes out a ticket.
func Resolve(now time.Time) bson.M {
	return bson.M{
		"status":     StatusResolved,
		"resolvedAt": now,
		"updatedAt":  now,
	}
}
