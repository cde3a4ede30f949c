// ================== internal/features/reports/handler.go ==================
package reports

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/xyz-asif/campusfix/internal/features/staff"
	"github.com/xyz-asif/campusfix/internal/pkg/pagination"
	"github.com/xyz-asif/campusfix/internal/pkg/response"
	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

type Handler struct {
	repo      *Repository
	staffRepo *staff.Repository
}

func NewHandler(repo *Repository, staffRepo *staff.Repository) *Handler {
	return &Handler{repo: repo, staffRepo: staffRepo}
}

// List godoc
// @Summary List reports
// @Description Get a page of reports, newest first, with optional category/type/status filters
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param type query string false "Filter by issue type"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} response.PaginatedResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
	}

	page := pagination.FromRequest(c.Query("page"), c.Query("limit"))

	total, err := h.repo.Count(c.Request.Context(), filter)
	if err != nil {
		response.DatabaseError(c, "Failed to count reports")
		return
	}

	results, err := h.repo.List(c.Request.Context(), filter, page.Limit, page.Offset())
	if err != nil {
		response.DatabaseError(c, "Failed to get reports")
		return
	}

	response.Paginated(c, results, total, page.Limit, page.Page)
}

// ListPendingReview godoc
// @Summary List reports pending review
// @Description Get reports whose staff-submitted resolution awaits an admin decision
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /reports/pending-reviews [get]
func (h *Handler) ListPendingReview(c *gin.Context) {
	results, err := h.repo.ListPendingReview(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get pending reviews")
		return
	}

	response.Success(c, results)
}

// Get godoc
// @Summary Get a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	report, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, report)
}

// Assign godoc
// @Summary Assign a report to a staff member
// @Description Fresh assignment only; already-assigned reports must be reassigned
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body AssignRequest true "Staff member to assign"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /reports/{id}/assign [post]
func (h *Handler) Assign(c *gin.Context) {
	h.applyAssignment(c, Assign)
}

// Reassign godoc
// @Summary Reassign a report to a different staff member
// @Description Clears any previous resolution data; refused once the report is resolved
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body AssignRequest true "Staff member to assign"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /reports/{id}/reassign [post]
func (h *Handler) Reassign(c *gin.Context) {
	h.applyAssignment(c, Reassign)
}

func (h *Handler) applyAssignment(c *gin.Context, op func(*Report, *staff.Member, time.Time) (bson.M, error)) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	ctx := c.Request.Context()

	report, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	member, err := h.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		respondError(c, err)
		return
	}

	update, err := op(report, member, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.repo.Update(ctx, c.Param("id"), update); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithUpdated(c)
}

// UpdateStatus godoc
// @Summary Manually override report status
// @Description Direct status change without resolution side effects; no-op when unchanged
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /reports/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	ctx := c.Request.Context()

	report, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	update, err := OverrideStatus(report, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	if update == nil {
		// Status already matches; nothing to write.
		response.Success(c, report)
		return
	}

	if err := h.repo.Update(ctx, c.Param("id"), update); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithUpdated(c)
}

// Resolve godoc
// @Summary Resolve a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/resolve [post]
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

// Review godoc
// @Summary Review a staff-submitted resolution
// @Description Approve resolves the report, reject sends it to Rejected; only valid while pending review
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body ReviewRequest true "Review decision"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /reports/{id}/review [post]
func (h *Handler) Review(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	ctx := c.Request.Context()

	report, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	reviewer := c.GetString("email")
	if reviewer == "" {
		reviewer = "admin"
	}

	update, err := Review(report, req.Decision, req.Note, reviewer, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.repo.Update(ctx, c.Param("id"), update); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithUpdated(c)
}

func (h *Handler) respondWithUpdated(c *gin.Context) {
	report, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve updated report")
		return
	}
	response.Success(c, report)
}

func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		response.NotFound(c, err.Error())
	case apperrors.IsInvalidTransition(err):
		response.Conflict(c, err.Error(), "INVALID_TRANSITION")
	case apperrors.IsValidation(err):
		response.ValidationFailed(c, err.Error())
	default:
		response.DatabaseError(c, err.Error())
	}
}
