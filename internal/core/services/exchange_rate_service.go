package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	portsrepo "github.com/hxudev/currency_exchange_api/internal/core/ports/repositories"
	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
)

type exchangeRateService struct {
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewExchangeRateService creates the exchange-rate business-logic service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateRate validates the pair and persists a new rate.
func (s *exchangeRateService) CreateRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyID == req.ToCurrencyID {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrValidation)
	}

	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.FromCurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: from currency %d not found", apperrors.ErrValidation, req.FromCurrencyID)
		}
		return nil, fmt.Errorf("failed to validate from currency %d: %w", req.FromCurrencyID, err)
	}
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.ToCurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: to currency %d not found", apperrors.ErrValidation, req.ToCurrencyID)
		}
		return nil, fmt.Errorf("failed to validate to currency %d: %w", req.ToCurrencyID, err)
	}

	effective := time.Now()
	if req.DateEffective != nil {
		effective = *req.DateEffective
	}

	created, err := s.rateRepo.CreateRate(ctx, domain.ExchangeRate{
		FromCurrencyID: req.FromCurrencyID,
		ToCurrencyID:   req.ToCurrencyID,
		Rate:           req.Rate,
		DateEffective:  effective,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}
	return created, nil
}

// GetRateByID returns a specific rate.
func (s *exchangeRateService) GetRateByID(ctx context.Context, rateID int64) (*domain.ExchangeRate, error) {
	return s.rateRepo.FindRateByID(ctx, rateID)
}

// GetRate returns the latest effective rate for the pair.
func (s *exchangeRateService) GetRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error) {
	return s.rateRepo.FindLatestRate(ctx, fromCurrencyID, toCurrencyID)
}

// ListRates returns persisted rates ordered by id ascending.
func (s *exchangeRateService) ListRates(ctx context.Context, limit, offset int) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	return rates, nil
}

// Convert applies the latest rate for the pair to the amount.
func (s *exchangeRateService) Convert(ctx context.Context, fromCurrencyID, toCurrencyID int64, amount decimal.Decimal) (*domain.Conversion, error) {
	if amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindLatestRate(ctx, fromCurrencyID, toCurrencyID)
	if err != nil {
		return nil, err
	}

	return &domain.Conversion{
		FromCurrencyID: fromCurrencyID,
		ToCurrencyID:   toCurrencyID,
		Rate:           rate.Rate,
		Amount:         amount,
		Converted:      amount.Mul(rate.Rate),
	}, nil
}
