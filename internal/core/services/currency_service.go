package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	portsrepo "github.com/hxudev/currency_exchange_api/internal/core/ports/repositories"
	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
)

type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates the currency business-logic service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CreateCurrency rejects duplicate names, then persists. Symbol duplication
// is allowed: "¥" legitimately serves both CNY and JPY.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	name := strings.TrimSpace(req.CurrencyName)
	symbol := strings.TrimSpace(req.CurrencySymbol)
	if name == "" {
		return nil, fmt.Errorf("%w: currency_name must not be blank", apperrors.ErrValidation)
	}
	if symbol == "" {
		return nil, fmt.Errorf("%w: currency_symbol must not be blank", apperrors.ErrValidation)
	}

	exists, err := s.currencyRepo.IsNameExists(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check currency name uniqueness: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("currency name %q already exists: %w", name, apperrors.ErrDuplicate)
	}

	created, err := s.currencyRepo.CreateCurrency(ctx, domain.Currency{Name: name, Symbol: symbol})
	if err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}
	return created, nil
}

// GetCurrencyByID returns the entity or apperrors.ErrNotFound.
func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	return currency, nil
}

// ListCurrencies returns one page ordered by id ascending plus metadata.
func (s *currencyService) ListCurrencies(ctx context.Context, params dto.ListCurrenciesParams) ([]domain.Currency, dto.Pagination, error) {
	params = normalizeListParams(params)

	filter := domain.CurrencyFilter{
		Search: strings.TrimSpace(params.Search),
		Limit:  params.Limit,
		Offset: (params.Page - 1) * params.Limit,
	}

	currencies, total, err := s.currencyRepo.ListCurrencies(ctx, filter)
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}

	return currencies, paginationMeta(params.Page, params.Limit, total), nil
}

// SearchCurrencies is ListCurrencies with a mandatory term.
func (s *currencyService) SearchCurrencies(ctx context.Context, term string, params dto.ListCurrenciesParams) ([]domain.Currency, dto.Pagination, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, dto.Pagination{}, fmt.Errorf("%w: search term must not be blank", apperrors.ErrValidation)
	}
	params.Search = term
	return s.ListCurrencies(ctx, params)
}

// UpdateCurrency applies only the supplied fields, re-checking name
// uniqueness against every other record.
func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	patch := domain.CurrencyPatch{}

	if req.CurrencyName != nil {
		name := strings.TrimSpace(*req.CurrencyName)
		if name == "" {
			return nil, fmt.Errorf("%w: currency_name must not be blank", apperrors.ErrValidation)
		}
		exists, err := s.currencyRepo.IsNameExists(ctx, name, currencyID)
		if err != nil {
			return nil, fmt.Errorf("failed to check currency name uniqueness: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("currency name %q already exists: %w", name, apperrors.ErrDuplicate)
		}
		patch.Name = &name
	}
	if req.CurrencySymbol != nil {
		symbol := strings.TrimSpace(*req.CurrencySymbol)
		if symbol == "" {
			return nil, fmt.Errorf("%w: currency_symbol must not be blank", apperrors.ErrValidation)
		}
		patch.Symbol = &symbol
	}

	updated, err := s.currencyRepo.UpdateCurrency(ctx, currencyID, patch)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCurrency deletes by id; ErrNotFound and ErrReferenced pass through.
func (s *currencyService) DeleteCurrency(ctx context.Context, currencyID int64) error {
	return s.currencyRepo.DeleteCurrency(ctx, currencyID)
}

// CheckNameAvailability reports whether a name is free.
func (s *currencyService) CheckNameAvailability(ctx context.Context, name string, excludeID int64) (bool, error) {
	exists, err := s.currencyRepo.IsNameExists(ctx, strings.TrimSpace(name), excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check name availability: %w", err)
	}
	return !exists, nil
}

// CheckSymbolAvailability reports whether a symbol is unused. Duplicates
// remain legal either way.
func (s *currencyService) CheckSymbolAvailability(ctx context.Context, symbol string, excludeID int64) (bool, error) {
	exists, err := s.currencyRepo.IsSymbolExists(ctx, strings.TrimSpace(symbol), excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check symbol availability: %w", err)
	}
	return !exists, nil
}

func normalizeListParams(p dto.ListCurrenciesParams) dto.ListCurrenciesParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	return p
}

func paginationMeta(page, limit int, total int64) dto.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return dto.Pagination{
		CurrentPage: page,
		PerPage:     limit,
		Total:       total,
		TotalPages:  totalPages,
	}
}
