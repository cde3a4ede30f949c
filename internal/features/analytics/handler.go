// ================== internal/features/analytics/handler.go ==================
package analytics

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/campusfix/internal/pkg/pagination"
	"github.com/xyz-asif/campusfix/internal/pkg/response"
	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Summary godoc
// @Summary Dashboard KPI summary
// @Description Report totals for a time window plus the change against the previous equivalent window
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "today|yesterday|week|lastWeek|month|lastMonth|year|all|custom"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Param category query string false "Filter by category"
// @Param type query string false "Filter by issue type"
// @Success 200 {object} response.SuccessResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /analytics/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	mode, custom, err := parseRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	filter := AttributeFilter{
		Category: c.Query("category"),
		Type:     c.Query("type"),
	}

	summary, err := h.service.Summary(c.Request.Context(), mode, custom, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, summary)
}

// Breakdown godoc
// @Summary Analytics chart data
// @Description Counts by issue type, status and location, the per-day series, and top issues
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "today|yesterday|week|lastWeek|month|lastMonth|year|all|custom"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Param location query string false "Filter by category (location)"
// @Param type query string false "Filter by issue type"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.SuccessResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /analytics/breakdown [get]
func (h *Handler) Breakdown(c *gin.Context) {
	mode, custom, err := parseRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	filter := AttributeFilter{
		Category: c.Query("location"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
	}

	breakdown, err := h.service.Breakdown(c.Request.Context(), mode, custom, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, breakdown)
}

// Table godoc
// @Summary Reports table projection
// @Description Search, filter, sort and paginate the full report set
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "Date range mode"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Param category query string false "Filter by category"
// @Param type query string false "Filter by issue type"
// @Param status query string false "Filter by status"
// @Param search query string false "Search id, category, type and status"
// @Param sort query string false "Sort field (default timestamp)"
// @Param order query string false "asc or desc (default desc)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} response.SuccessResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /analytics/reports [get]
func (h *Handler) Table(c *gin.Context) {
	mode, custom, err := parseRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page := pagination.FromRequest(c.Query("page"), c.Query("limit"))

	query := TableQuery{
		Range:  mode,
		Custom: custom,
		Filter: AttributeFilter{
			Category: c.Query("category"),
			Type:     c.Query("type"),
			Status:   c.Query("status"),
		},
		Search:    c.Query("search"),
		SortField: c.Query("sort"),
		SortOrder: c.Query("order"),
		Page:      page.Page,
		PageSize:  page.Limit,
	}

	table, err := h.service.Table(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, table)
}

func parseRange(c *gin.Context) (RangeMode, *CustomRange, error) {
	mode, err := ParseRangeMode(c.Query("range"))
	if err != nil {
		return "", nil, err
	}

	if mode != RangeCustom {
		return mode, nil, nil
	}

	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.Local)
	if err != nil {
		return "", nil, apperrors.Validation("custom range requires a start date (YYYY-MM-DD)")
	}
	end, err := time.ParseInLocation("2006-01-02", c.Query("end"), time.Local)
	if err != nil {
		return "", nil, apperrors.Validation("custom range requires an end date (YYYY-MM-DD)")
	}

	return mode, &CustomRange{Start: start, End: end}, nil
}

func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		response.ValidationFailed(c, err.Error())
	default:
		response.DatabaseError(c, "Failed to aggregate reports")
	}
}
