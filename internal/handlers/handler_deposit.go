package handlers

import (
	"log/slog"
	"net/http"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/dto"
	"github.com/evokeessence/evoke_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// depositHandler handles HTTP requests related to deposits.
type depositHandler struct {
	depositService portssvc.DepositSvcFacade
}

func newDepositHandler(ds portssvc.DepositSvcFacade) *depositHandler {
	return &depositHandler{depositService: ds}
}

// registerDepositRoutes registers the user deposit routes. createMiddleware
// wraps only deposit creation.
func registerDepositRoutes(rg *gin.RouterGroup, depositService portssvc.DepositSvcFacade, createMiddleware ...gin.HandlerFunc) {
	h := newDepositHandler(depositService)

	deposits := rg.Group("/deposits")
	{
		deposits.POST("", append(createMiddleware, h.createDeposit)...)
		deposits.GET("", h.listDeposits)
		deposits.GET("/:depositID", h.getDeposit)
	}
}

// registerAdminDepositRoutes registers back-office deposit routes.
func registerAdminDepositRoutes(rg *gin.RouterGroup, depositService portssvc.DepositSvcFacade) {
	h := newDepositHandler(depositService)
	rg.PATCH("/deposits/:depositID/status", h.updateDepositStatus)
}

// createDeposit godoc
// @Summary Record a deposit
// @Description Records a SEPA or crypto deposit. The platform fee, settlement conversion and contractor attribution are fixed at creation.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param   deposit body dto.CreateDepositRequest true "Deposit details"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Request with this idempotency key in progress"
// @Failure 422 {object} map[string]string "Idempotency key reused with a different body"
// @Failure 503 {object} map[string]string "No exchange rate available"
// @Security BearerAuth
// @Router /deposits [post]
func (h *depositHandler) createDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deposit, err := h.depositService.CreateDeposit(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create deposit")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// listDeposits godoc
// @Summary List my deposits
// @Description Lists the authenticated user's deposits, newest first
// @Tags deposits
// @Produce  json
// @Param   limit     query int    false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListDepositsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /deposits [get]
func (h *depositHandler) listDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDepositsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListDeposits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.depositService.ListDeposits(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, logger, err, "list deposits")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getDeposit godoc
// @Summary Get a deposit
// @Tags deposits
// @Produce  json
// @Param   depositID path string true "Deposit ID"
// @Success 200 {object} dto.DepositResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Security BearerAuth
// @Router /deposits/{depositID} [get]
func (h *depositHandler) getDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deposit, err := h.depositService.GetDeposit(c.Request.Context(), c.Param("depositID"), userID)
	if err != nil {
		respondWithError(c, logger, err, "retrieve deposit")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// updateDepositStatus godoc
// @Summary Update deposit status
// @Description Moves a deposit pending -> processing -> completed, or to failed. Other transitions are rejected.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   depositID path string true "Deposit ID"
// @Param   status body dto.UpdateDepositStatusRequest true "New status"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Security BearerAuth
// @Router /admin/deposits/{depositID}/status [patch]
func (h *depositHandler) updateDepositStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDepositStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDepositStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deposit, err := h.depositService.UpdateDepositStatus(c.Request.Context(), c.Param("depositID"), domain.DepositStatus(req.Status), actorID)
	if err != nil {
		respondWithError(c, logger, err, "update deposit status")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}
