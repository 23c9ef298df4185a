package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
	"github.com/hxudev/currency_exchange_api/internal/middleware"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/search", h.searchCurrencies)
		currencies.GET("/check-name", h.checkNameAvailability)
		currencies.GET("/check-symbol", h.checkSymbolAvailability)
		currencies.GET("/:id", h.getCurrencyByID)
		currencies.POST("", h.createCurrency)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves a page of currencies, optionally filtered by a search term
// @Tags currencies
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Case-insensitive substring filter"
// @Success 200 {object} dto.APIResponse{data=dto.ListCurrenciesResponse}
// @Failure 500 {object} dto.APIResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCurrenciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCurrencies", slog.String("error", err.Error()))
		respondValidationDetails(c, validationDetails(params, err))
		return
	}

	currencies, pagination, err := h.currencyService.ListCurrencies(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ListCurrenciesResponse{
		Currencies: dto.ToListCurrencyResponse(currencies),
		Pagination: pagination,
		SearchTerm: strings.TrimSpace(params.Search),
	})
}

// searchCurrencies godoc
// @Summary Search currencies
// @Description Retrieves currencies whose name or symbol contains the mandatory search term
// @Tags currencies
// @Produce  json
// @Param   q query string true "Search term"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListCurrenciesResponse}
// @Failure 400 {object} dto.APIResponse "Missing search term"
// @Router /currencies/search [get]
func (h *currencyHandler) searchCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		respondValidationDetails(c, []dto.ValidationErrorDetail{{
			Field:   "q",
			Message: "is a required field",
		}})
		return
	}

	var params dto.ListCurrenciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationDetails(c, validationDetails(params, err))
		return
	}

	logger = logger.With(slog.String("search_term", term))

	currencies, pagination, err := h.currencyService.SearchCurrencies(c.Request.Context(), term, params)
	if err != nil {
		logger.Error("Failed to search currencies in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ListCurrenciesResponse{
		Currencies: dto.ToListCurrencyResponse(currencies),
		Pagination: pagination,
		SearchTerm: term,
	})
}

// getCurrencyByID godoc
// @Summary Get a currency by id
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.APIResponse{data=dto.CurrencyResponse}
// @Failure 404 {object} dto.APIResponse "Currency not found"
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrencyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencyID, ok := parseIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("currency_id", currencyID))

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		logger.Warn("Failed to get currency", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToCurrencyResponse(currency))
}

// checkNameAvailability godoc
// @Summary Check whether a currency name is available
// @Tags currencies
// @Produce  json
// @Param   name query string true "Currency name"
// @Param   excludeId query int false "Currency id to exclude (for edits)"
// @Success 200 {object} dto.APIResponse{data=dto.AvailabilityResponse}
// @Router /currencies/check-name [get]
func (h *currencyHandler) checkNameAvailability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		respondValidationDetails(c, []dto.ValidationErrorDetail{{
			Field:   "name",
			Message: "is a required field",
		}})
		return
	}

	available, err := h.currencyService.CheckNameAvailability(c.Request.Context(), name, parseExcludeID(c))
	if err != nil {
		logger.Error("Failed to check name availability", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.AvailabilityResponse{Available: available, Name: name})
}

// checkSymbolAvailability godoc
// @Summary Check whether a currency symbol is already in use
// @Tags currencies
// @Produce  json
// @Param   symbol query string true "Currency symbol"
// @Param   excludeId query int false "Currency id to exclude (for edits)"
// @Success 200 {object} dto.APIResponse{data=dto.AvailabilityResponse}
// @Router /currencies/check-symbol [get]
func (h *currencyHandler) checkSymbolAvailability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		respondValidationDetails(c, []dto.ValidationErrorDetail{{
			Field:   "symbol",
			Message: "is a required field",
		}})
		return
	}

	available, err := h.currencyService.CheckSymbolAvailability(c.Request.Context(), symbol, parseExcludeID(c))
	if err != nil {
		logger.Error("Failed to check symbol availability", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.AvailabilityResponse{Available: available, Symbol: symbol})
}

// createCurrency godoc
// @Summary Create a new currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.APIResponse{data=dto.CurrencyResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 409 {object} dto.APIResponse "Currency name already exists"
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		respondValidationDetails(c, validationDetails(req, err))
		return
	}

	logger.Info("Received request to create currency", slog.String("currency_name", req.CurrencyName))

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create currency in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Currency created successfully", slog.Int64("currency_id", createdCurrency.CurrencyID))
	respondCreated(c, dto.ToCurrencyResponse(createdCurrency), "Currency created successfully")
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Applies a partial update; at least one field must be supplied
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CurrencyResponse}
// @Failure 404 {object} dto.APIResponse "Currency not found"
// @Failure 409 {object} dto.APIResponse "Currency name already exists"
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencyID, ok := parseIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("currency_id", currencyID))

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrency", slog.String("error", err.Error()))
		respondValidationDetails(c, validationDetails(req, err))
		return
	}
	if req.CurrencyName == nil && req.CurrencySymbol == nil {
		respondValidationDetails(c, []dto.ValidationErrorDetail{{
			Field:   "body",
			Message: "at least one of currency_name or currency_symbol must be provided",
		}})
		return
	}

	updatedCurrency, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyID, req)
	if err != nil {
		logger.Warn("Failed to update currency in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Currency updated successfully")
	respondData(c, http.StatusOK, dto.ToCurrencyResponse(updatedCurrency))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Currency is referenced by exchange rates"
// @Failure 404 {object} dto.APIResponse "Currency not found"
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencyID, ok := parseIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("currency_id", currencyID))

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), currencyID); err != nil {
		logger.Warn("Failed to delete currency in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Currency deleted successfully")
	respondMessage(c, http.StatusOK, "Currency deleted successfully")
}
