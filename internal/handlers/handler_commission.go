package handlers

import (
	"log/slog"
	"net/http"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/dto"
	"github.com/evokeessence/evoke_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type commissionHandler struct {
	commissionService portssvc.CommissionSvc
}

func newCommissionHandler(cs portssvc.CommissionSvc) *commissionHandler {
	return &commissionHandler{commissionService: cs}
}

// registerCommissionRoutes registers the commission preview route.
func registerCommissionRoutes(rg *gin.RouterGroup, commissionService portssvc.CommissionSvc) {
	h := newCommissionHandler(commissionService)
	rg.POST("/commissions/split", h.splitCommission)
}

// splitCommission godoc
// @Summary Preview a commission split
// @Description Splits a raw amount into the platform fee and net amount. With contractorRate, also returns the contractor fee on the net.
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   split body dto.SplitCommissionRequest true "Amount to split"
// @Success 200 {object} dto.SplitCommissionResponse
// @Failure 400 {object} map[string]string "Invalid amount or rate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /commissions/split [post]
func (h *commissionHandler) splitCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SplitCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SplitCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	split, err := h.commissionService.SplitPlatformCommission(c.Request.Context(), req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "split commission")
		return
	}

	var contractorFee *decimal.Decimal
	if req.ContractorRate != nil {
		rate, err := domain.NewCommissionRate(*req.ContractorRate)
		if err != nil {
			respondWithError(c, logger, apperrors.NewValidationError(err.Error()), "split commission")
			return
		}
		fee, err := h.commissionService.ContractorCommission(c.Request.Context(), split.Net, rate)
		if err != nil {
			respondWithError(c, logger, err, "split commission")
			return
		}
		contractorFee = &fee
	}

	c.JSON(http.StatusOK, dto.ToSplitCommissionResponse(split, contractorFee))
}
