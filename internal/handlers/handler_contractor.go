package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/dto"
	"github.com/evokeessence/evoke_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contractorHandler handles back-office contractor management.
type contractorHandler struct {
	contractorService portssvc.ContractorSvcFacade
}

func newContractorHandler(cs portssvc.ContractorSvcFacade) *contractorHandler {
	return &contractorHandler{contractorService: cs}
}

// registerAdminContractorRoutes registers contractor routes under the admin group.
func registerAdminContractorRoutes(rg *gin.RouterGroup, contractorService portssvc.ContractorSvcFacade) {
	h := newContractorHandler(contractorService)

	contractors := rg.Group("/contractors")
	{
		contractors.POST("", h.createContractor)
		contractors.GET("", h.listContractors)
		contractors.GET("/:contractorID", h.getContractor)
		contractors.PATCH("/:contractorID", h.updateContractorStatus)
	}
}

// createContractor godoc
// @Summary Create a contractor
// @Description Onboards a referral contractor with a unique referral code and a commission rate in [0, 1)
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   contractor body dto.CreateContractorRequest true "Contractor details"
// @Success 201 {object} dto.ContractorResponse
// @Failure 400 {object} map[string]string "Invalid input or rate"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Referral code already in use"
// @Security BearerAuth
// @Router /admin/contractors [post]
func (h *contractorHandler) createContractor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateContractor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contractor, err := h.contractorService.CreateContractor(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "create contractor")
		return
	}

	logger.Info("Contractor created successfully", slog.String("contractor_id", contractor.ContractorID))
	c.JSON(http.StatusCreated, dto.ToContractorResponse(contractor))
}

// listContractors godoc
// @Summary List contractors
// @Tags admin
// @Produce  json
// @Param   limit  query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListContractorsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /admin/contractors [get]
func (h *contractorHandler) listContractors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListContractorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListContractors", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	contractors, err := h.contractorService.ListContractors(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "list contractors")
		return
	}

	c.JSON(http.StatusOK, dto.ToListContractorsResponse(contractors))
}

// getContractor godoc
// @Summary Get a contractor
// @Tags admin
// @Produce  json
// @Param   contractorID path string true "Contractor ID"
// @Success 200 {object} dto.ContractorResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Contractor not found"
// @Security BearerAuth
// @Router /admin/contractors/{contractorID} [get]
func (h *contractorHandler) getContractor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	contractor, err := h.contractorService.GetContractorByID(c.Request.Context(), c.Param("contractorID"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve contractor")
		return
	}

	c.JSON(http.StatusOK, dto.ToContractorResponse(contractor))
}

// updateContractorStatus godoc
// @Summary Activate or deactivate a contractor
// @Description An inactive contractor's referral code no longer attributes new registrations or deposits. Existing attributions are unchanged.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   contractorID path string true "Contractor ID"
// @Param   status body dto.UpdateContractorStatusRequest true "New status"
// @Success 200 {object} dto.ContractorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Contractor not found"
// @Security BearerAuth
// @Router /admin/contractors/{contractorID} [patch]
func (h *contractorHandler) updateContractorStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateContractorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateContractorStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contractor, err := h.contractorService.SetContractorActive(c.Request.Context(), c.Param("contractorID"), *req.IsActive, actorID)
	if err != nil {
		respondWithError(c, logger, err, "update contractor status")
		return
	}

	c.JSON(http.StatusOK, dto.ToContractorResponse(contractor))
}
