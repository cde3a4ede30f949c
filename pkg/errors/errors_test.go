package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifiers(t *testing.T) {
	require.True(t, IsNotFound(NotFound("report")))
	require.True(t, IsInvalidTransition(InvalidTransition("already assigned")))
	require.True(t, IsValidation(Validation("message is required")))
	require.True(t, IsStore(Store(fmt.Errorf("connection reset"))))

	require.False(t, IsNotFound(Validation("nope")))
	require.False(t, IsStore(nil))
}

func TestMessagesCarryDetail(t *testing.T) {
	err := NotFound("staff member")
	require.Contains(t, err.Error(), "staff member")

	err = InvalidTransition("report is already assigned")
	require.Contains(t, err.Error(), "already assigned")
}
