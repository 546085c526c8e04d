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

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers the public exchange rate routes.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.getRateTable)
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
	}
}

// registerAdminExchangeRateRoutes registers back-office rate maintenance.
func registerAdminExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)
	rg.POST("/exchange-rates/refresh", h.refreshRates)
}

// getRateTable godoc
// @Summary Get the cross-rate table
// @Description Returns every supported pair from the table currently in use and where it came from
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRateTableResponse
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getRateTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, source, err := h.exchangeRateService.CurrentTable(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "retrieve exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateTableResponse(table, source))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the rate for a currency pair. Falls back to cached or static rates when the provider is unreachable.
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Unsupported currency code"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 503 {object} map[string]string "No exchange rate available"
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode))

	quote, err := h.exchangeRateService.Quote(c.Request.Context(), fromCode, toCode)
	if err != nil {
		respondWithError(c, logger, err, "retrieve exchange rate")
		return
	}

	logger.Debug("Exchange rate retrieved", slog.String("source", string(quote.Source)))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(quote))
}

// refreshRates godoc
// @Summary Force an exchange rate refresh
// @Description Fetches a new table from the provider regardless of cache age. Provider errors are reported, not masked.
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ExchangeRateTableResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} map[string]string "Provider unavailable"
// @Security BearerAuth
// @Router /admin/exchange-rates/refresh [post]
func (h *exchangeRateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.exchangeRateService.Refresh(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "refresh exchange rates")
		return
	}

	logger.Info("Exchange rates refreshed by admin")
	c.JSON(http.StatusOK, dto.ToExchangeRateTableResponse(table, domain.RateSourceLive))
}
