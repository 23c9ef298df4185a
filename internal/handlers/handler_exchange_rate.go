package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
	"github.com/hxudev/currency_exchange_api/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		rateService: rs,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.listRates)
		rates.GET("/latest", h.getLatestRate)
		rates.GET("/convert", h.convert)
		rates.GET("/:id", h.getRateByID)
		rates.POST("", h.createRate)
	}
}

// listRates godoc
// @Summary List exchange rates
// @Tags exchange-rates
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.APIResponse{data=[]dto.ExchangeRateResponse}
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params struct {
		Limit  int `form:"limit,default=20"`
		Offset int `form:"offset,default=0"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationDetails(c, validationDetails(params, err))
		return
	}

	rates, err := h.rateService.ListRates(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list exchange rates from service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getRateByID godoc
// @Summary Get an exchange rate by id
// @Tags exchange-rates
// @Produce  json
// @Param   id path int true "Rate ID"
// @Success 200 {object} dto.APIResponse{data=dto.ExchangeRateResponse}
// @Failure 404 {object} dto.APIResponse "Rate not found"
// @Router /exchange-rates/{id} [get]
func (h *exchangeRateHandler) getRateByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rateID, ok := parseIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("rate_id", rateID))

	rate, err := h.rateService.GetRateByID(c.Request.Context(), rateID)
	if err != nil {
		logger.Warn("Failed to get exchange rate", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// getLatestRate godoc
// @Summary Get the latest effective rate for a currency pair
// @Tags exchange-rates
// @Produce  json
// @Param   from query int true "Source currency id"
// @Param   to query int true "Target currency id"
// @Success 200 {object} dto.APIResponse{data=dto.ExchangeRateResponse}
// @Failure 404 {object} dto.APIResponse "No rate for the pair"
// @Router /exchange-rates/latest [get]
func (h *exchangeRateHandler) getLatestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params struct {
		From int64 `form:"from" binding:"required,gt=0"`
		To   int64 `form:"to" binding:"required,gt=0"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationDetails(c, validationDetails(params, err))
		return
	}

	rate, err := h.rateService.GetRate(c.Request.Context(), params.From, params.To)
	if err != nil {
		logger.Warn("Failed to get latest exchange rate", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Applies the latest effective rate for the pair
// @Tags exchange-rates
// @Produce  json
// @Param   from query int true "Source currency id"
// @Param   to query int true "Target currency id"
// @Param   amount query number true "Amount to convert"
// @Success 200 {object} dto.APIResponse{data=dto.ConversionResponse}
// @Failure 404 {object} dto.APIResponse "No rate for the pair"
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		respondValidationDetails(c, validationDetails(params, err))
		return
	}

	conversion, err := h.rateService.Convert(c.Request.Context(), params.From, params.To, params.Amount)
	if err != nil {
		logger.Warn("Failed to convert amount", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToConversionResponse(conversion))
}

// createRate godoc
// @Summary Record a new exchange rate
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Rate details"
// @Success 201 {object} dto.APIResponse{data=dto.ExchangeRateResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input or unknown currency"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRate", slog.String("error", err.Error()))
		respondValidationDetails(c, validationDetails(req, err))
		return
	}

	createdRate, err := h.rateService.CreateRate(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create exchange rate in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Exchange rate created successfully", slog.Int64("rate_id", createdRate.RateID))
	respondCreated(c, dto.ToExchangeRateResponse(createdRate), "Exchange rate created successfully")
}
