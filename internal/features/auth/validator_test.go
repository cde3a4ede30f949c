package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateLogin(t *testing.T) {
	req := &LoginRequest{Email: "  Admin@Campus.EDU ", Password: "longenough1"}
	require.NoError(t, validateLogin(req))
	require.Equal(t, "admin@campus.edu", req.Email)

	require.Error(t, validateLogin(&LoginRequest{Email: "not-an-email", Password: "longenough1"}))
	require.Error(t, validateLogin(&LoginRequest{Email: "a@b.co", Password: "short"}))
}
