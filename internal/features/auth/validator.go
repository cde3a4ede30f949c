// ================== internal/features/auth/validator.go ==================
package auth

import (
	"errors"
	"strings"

	"github.com/xyz-asif/campusfix/internal/pkg/validator"
)

func validateLogin(req *LoginRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if !validator.IsValidEmail(req.Email) {
		return errors.New("a valid email is required")
	}
	if len(req.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
