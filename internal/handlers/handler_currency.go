package handlers

import (
	"log/slog"
	"net/http"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/dto"
	"github.com/evokeessence/evoke_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies and conversions.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerPublicCurrencyRoutes registers the unauthenticated currency routes.
func registerPublicCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)
	rg.GET("/currencies", h.listCurrencies)
}

// registerConversionRoutes registers the conversion route.
func registerConversionRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)
	rg.POST("/conversions", h.convert)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the currencies deposits, conversions and settlements may use
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies := h.currencyService.ListCurrencies(c.Request.Context())

	logger.Debug("Currencies listed", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between two supported currencies, rounded to 2 decimal places
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input or unsupported currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "No exchange rate available"
// @Security BearerAuth
// @Router /conversions [post]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Amount.IsNegative() {
		respondWithError(c, logger, apperrors.NewValidationError("amount must not be negative"), "convert amount")
		return
	}

	conversion, err := h.currencyService.ConvertWithQuote(c.Request.Context(), req.Amount, req.From, req.To)
	if err != nil {
		respondWithError(c, logger, err, "convert amount")
		return
	}

	logger.Info("Amount converted",
		slog.String("from", conversion.From),
		slog.String("to", conversion.To),
		slog.String("rate_source", string(conversion.Quote.Source)))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}
