package tickets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

func TestNewResponse(t *testing.T) {
	now := time.Now()

	resp, err := NewResponse("  the plumber is on the way  ", "admin@campus.edu", AuthorAdmin, now)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Equal(t, "the plumber is on the way", resp.Message)
	require.Equal(t, "admin@campus.edu", resp.Author)
	require.Equal(t, AuthorAdmin, resp.AuthorType)
	require.Equal(t, now, resp.Timestamp)

	second, err := NewResponse("ok", "", "", now)
	require.NoError(t, err)
	require.Equal(t, "Admin", second.Author)
	require.Equal(t, AuthorAdmin, second.AuthorType)
	require.NotEqual(t, resp.ID, second.ID)
}

func TestNewResponseEmptyMessage(t *testing.T) {
	_, err := NewResponse("   ", "admin", AuthorAdmin, time.Now())
	require.Error(t, err)
	require.True(t, apperrors.IsValidation(err))
}

func TestOverrideStatus(t *testing.T) {
	ticket := &Ticket{Status: StatusOpen}
	now := time.Now()

	update, err := OverrideStatus(ticket, StatusClosed, now)
	require.NoError(t, err)
	require.Equal(t, StatusClosed, update["status"])
	require.Equal(t, now, update["updatedAt"])

	// No-op when unchanged; missing status counts as Open.
	update, err = OverrideStatus(ticket, StatusOpen, now)
	require.NoError(t, err)
	require.Nil(t, update)

	update, err = OverrideStatus(&Ticket{}, StatusOpen, now)
	require.NoError(t, err)
	require.Nil(t, update)

	_, err = OverrideStatus(ticket, "Escalated", now)
	require.True(t, apperrors.IsValidation(err))
}

func TestResolve(t *testing.T) {
	now := time.Now()
	update := Resolve(now)

	require.Equal(t, StatusResolved, update["status"])
	require.Equal(t, now, update["resolvedAt"])
	require.Equal(t, now, update["updatedAt"])
}

// A response always drags the ticket to In Progress, even one that is
// already Resolved or Closed.
func TestResponseReopensResolvedTicket(t *testing.T) {
	now := time.Now()
	update := responseSideEffects(now)

	require.Equal(t, StatusInProgress, update["status"])
	require.Equal(t, now, update["lastResponseAt"])
	require.Equal(t, now, update["updatedAt"])
}
