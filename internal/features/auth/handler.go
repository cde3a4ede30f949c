// ================== internal/features/auth/handler.go ==================
package auth

import (
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/xyz-asif/campusfix/internal/pkg/response"
	"github.com/xyz-asif/campusfix/internal/pkg/token"
	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

type Handler struct {
	repo           *Repository
	firebaseClient *fbauth.Client
}

func NewHandler(repo *Repository, firebaseClient *fbauth.Client) *Handler {
	return &Handler{repo: repo, firebaseClient: firebaseClient}
}

// Login godoc
// @Summary      Admin email/password login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  LoginRequest  true  "Credentials"
// @Success      200  {object}  response.SuccessResponse{data=AuthResponse}
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := validateLogin(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	admin, err := h.repo.GetAdminByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Same message as a bad password, so probes can't tell
			// registered emails apart.
			response.AuthenticationError(c, "Invalid email or password")
			return
		}
		response.DatabaseError(c, "Failed to look up account")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		response.AuthenticationError(c, "Invalid email or password")
		return
	}

	h.respondWithToken(c, admin)
}

// FirebaseLogin godoc
// @Summary      Exchange a Firebase ID token for an API token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  FirebaseLoginRequest  true  "Firebase ID token"
// @Success      200  {object}  response.SuccessResponse{data=AuthResponse}
// @Failure      401  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /auth/firebase [post]
func (h *Handler) FirebaseLogin(c *gin.Context) {
	var req FirebaseLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if h.firebaseClient == nil {
		response.ServiceUnavailable(c, "Firebase login not configured")
		return
	}

	fbUser, err := VerifyFirebaseToken(c.Request.Context(), h.firebaseClient, req.IDToken)
	if err != nil {
		response.AuthenticationError(c, "Invalid token")
		return
	}

	admin, err := h.repo.GetAdminByEmail(c.Request.Context(), fbUser.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// A valid Firebase identity that is not an admin account.
			response.AuthorizationError(c, "Not an admin account")
			return
		}
		response.DatabaseError(c, "Failed to look up account")
		return
	}

	h.respondWithToken(c, admin)
}

// GetMe godoc
// @Summary      Current admin profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SuccessResponse{data=Admin}
// @Failure      401  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	admin, err := h.repo.GetAdminByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			response.Unauthorized(c, "Account no longer exists")
			return
		}
		response.DatabaseError(c, "Failed to load account")
		return
	}

	response.Success(c, admin)
}

func (h *Handler) respondWithToken(c *gin.Context, admin *Admin) {
	accessToken, err := token.GenerateToken(admin.ID.Hex(), admin.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	now := time.Now()
	if err := h.repo.TouchLogin(c.Request.Context(), admin.ID, now); err == nil {
		admin.LastLoginAt = &now
	}

	response.Success(c, AuthResponse{User: admin, AccessToken: accessToken})
}
