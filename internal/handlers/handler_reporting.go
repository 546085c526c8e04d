package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/dto"
	"github.com/evokeessence/evoke_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to commission reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the admin analytics routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/commissions", h.getPlatformCommissions)
		reportingGroup.GET("/contractors/:contractorID", h.getContractorCommissions)
	}
}

// getPlatformCommissions godoc
// @Summary Platform commission report
// @Description Sums platform fees per currency over non-failed deposits and converts the total into the reporting currency
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date, inclusive (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.PlatformCommissionReportResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /admin/reports/commissions [get]
func (h *reportingHandler) getPlatformCommissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseReportWindow(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.PlatformCommissionReport(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, logger, err, "generate commission report")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlatformCommissionReportResponse(report))
}

// getContractorCommissions godoc
// @Summary Contractor commission report
// @Description Recomputes the commission owed to a contractor from each attributed deposit's net amount and frozen rate
// @Tags reports
// @Produce json
// @Param contractorID path string true "Contractor ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date, inclusive (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ContractorCommissionReportResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Contractor not found"
// @Security BearerAuth
// @Router /admin/reports/contractors/{contractorID} [get]
func (h *reportingHandler) getContractorCommissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractorID := c.Param("contractorID")

	from, to, ok := parseReportWindow(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.ContractorCommissionReport(c.Request.Context(), contractorID, from, to)
	if err != nil {
		respondWithError(c, logger, err, "generate contractor report")
		return
	}

	c.JSON(http.StatusOK, dto.ToContractorCommissionReportResponse(report))
}

// parseReportWindow reads fromDate and toDate, defaulting to the current month to date.
func parseReportWindow(c *gin.Context, logger *slog.Logger) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	fromStr := c.DefaultQuery("fromDate", firstOfMonth.Format(dto.DateLayout))
	from, err := time.Parse(dto.DateLayout, fromStr)
	if err != nil {
		logger.Warn("Invalid fromDate format", slog.String("fromDate", fromStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	toStr := c.DefaultQuery("toDate", now.Format(dto.DateLayout))
	to, err := time.Parse(dto.DateLayout, toStr)
	if err != nil {
		logger.Warn("Invalid toDate format", slog.String("toDate", toStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}
