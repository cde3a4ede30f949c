// ================== internal/features/tickets/handler.go ==================
package tickets

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/campusfix/internal/pkg/pagination"
	"github.com/xyz-asif/campusfix/internal/pkg/response"
	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List support tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} response.PaginatedResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /tickets [get]
func (h *Handler) List(c *gin.Context) {
	status := c.Query("status")
	page := pagination.FromRequest(c.Query("page"), c.Query("limit"))

	total, err := h.repo.Count(c.Request.Context(), status)
	if err != nil {
		response.DatabaseError(c, "Failed to count tickets")
		return
	}

	results, err := h.repo.List(c.Request.Context(), status, page.Limit, page.Offset())
	if err != nil {
		response.DatabaseError(c, "Failed to get tickets")
		return
	}

	response.Paginated(c, results, total, page.Limit, page.Page)
}

// Stats godoc
// @Summary Ticket status counters
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /tickets/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.repo.CountByStatus(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get ticket stats")
		return
	}

	response.Success(c, stats)
}

// Get godoc
// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	ticket, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, ticket)
}

// AddResponse godoc
// @Summary Reply to a ticket
// @Description Appends an admin response and moves the ticket to In Progress
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body AddResponseRequest true "Response message"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /tickets/{id}/responses [post]
func (h *Handler) AddResponse(c *gin.Context) {
	var req AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	now := time.Now()
	resp, err := NewResponse(req.Message, c.GetString("email"), AuthorAdmin, now)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.repo.AppendResponse(c.Request.Context(), c.Param("id"), resp, now); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithUpdated(c)
}

// UpdateStatus godoc
// @Summary Override ticket status
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /tickets/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	ctx := c.Request.Context()

	ticket, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	update, err := OverrideStatus(ticket, req.Status, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	if update == nil {
		response.Success(c, ticket)
		return
	}

	if err := h.repo.Update(ctx, c.Param("id"), update); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithUpdated(c)
}

// Resolve godoc
// @Summary Resolve a ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/resolve [post]
func (h *Handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.repo.GetByID(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	if err := h.repo.Update(ctx, c.Param("id"), Resolve(time.Now())); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithUpdated(c)
}

func (h *Handler) respondWithUpdated(c *gin.Context) {
	ticket, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve updated ticket")
		return
	}
	response.Success(c, ticket)
}

func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		response.NotFound(c, err.Error())
	case apperrors.IsValidation(err):
		response.ValidationFailed(c, err.Error())
	default:
		response.DatabaseError(c, err.Error())
	}
}
