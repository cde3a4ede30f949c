package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("student@campus.edu"))
	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("no-at-sign"))
	require.False(t, IsValidEmail("a@b"))
}

func TestIsValidDate(t *testing.T) {
	require.True(t, IsValidDate("2026-08-30"))
	require.False(t, IsValidDate("30-08-2026"))
	require.False(t, IsValidDate("2026-8-30"))
}

func TestIsStrongPassword(t *testing.T) {
	require.True(t, IsStrongPassword("Str0ng!pass"))
	require.False(t, IsStrongPassword("short1!"))
	require.False(t, IsStrongPassword("alllowercase1!"))
	require.False(t, IsStrongPassword("NoNumbers!"))
}
