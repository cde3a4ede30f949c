package staff

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/campusfix/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List staff members
// @Description Get all users with the staff role, for assignment dropdowns
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /staff [get]
func (h *Handler) List(c *gin.Context) {
	members, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get staff members")
		return
	}

	response.Success(c, members)
}
