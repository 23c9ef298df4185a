package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/core/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindRateByID(ctx context.Context, rateID int64) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindLatestRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrencyID, toCurrencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRates(ctx context.Context, limit, offset int) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) CreateRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, suite.mockCurrencyRepo)
}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestCreateRate_Success() {
	ctx := context.Background()
	effective := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: 1,
		ToCurrencyID:   2,
		Rate:           decimal.RequireFromString("7.25"),
		DateEffective:  &effective,
	}
	created := &domain.ExchangeRate{RateID: 10, FromCurrencyID: 1, ToCurrencyID: 2, Rate: req.Rate, DateEffective: effective}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(1)).Return(&domain.Currency{CurrencyID: 1}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(2)).Return(&domain.Currency{CurrencyID: 2}, nil).Once()
	suite.mockRateRepo.On("CreateRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.FromCurrencyID == 1 && r.ToCurrencyID == 2 && r.Rate.Equal(req.Rate) && r.DateEffective.Equal(effective)
	})).Return(created, nil).Once()

	rate, err := suite.service.CreateRate(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal(int64(10), rate.RateID)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateRate_NonPositiveRate() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: 1,
		ToCurrencyID:   2,
		Rate:           decimal.Zero,
	}

	rate, err := suite.service.CreateRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "CreateRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateRate_SamePair() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: 3,
		ToCurrencyID:   3,
		Rate:           decimal.RequireFromString("1.0"),
	}

	rate, err := suite.service.CreateRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateRate_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: 1,
		ToCurrencyID:   99,
		Rate:           decimal.RequireFromString("0.5"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(1)).Return(&domain.Currency{CurrencyID: 1}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.CreateRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "CreateRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_Success() {
	ctx := context.Background()
	stored := &domain.ExchangeRate{
		RateID:         4,
		FromCurrencyID: 1,
		ToCurrencyID:   2,
		Rate:           decimal.RequireFromString("7.25"),
	}

	suite.mockRateRepo.On("FindLatestRate", ctx, int64(1), int64(2)).Return(stored, nil).Once()

	conversion, err := suite.service.Convert(ctx, 1, 2, decimal.RequireFromString("100"))

	suite.Require().NoError(err)
	suite.Require().NotNil(conversion)
	suite.True(conversion.Converted.Equal(decimal.RequireFromString("725")))
	suite.True(conversion.Rate.Equal(stored.Rate))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_NegativeAmount() {
	ctx := context.Background()

	conversion, err := suite.service.Convert(ctx, 1, 2, decimal.RequireFromString("-1"))

	suite.Require().Error(err)
	suite.Nil(conversion)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindLatestRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_NoRateForPair() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindLatestRate", ctx, int64(5), int64(6)).Return(nil, apperrors.ErrNotFound).Once()

	conversion, err := suite.service.Convert(ctx, 5, 6, decimal.RequireFromString("10"))

	suite.Require().Error(err)
	suite.Nil(conversion)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestListRates_NilRowsBecomeEmptySlice() {
	ctx := context.Background()

	suite.mockRateRepo.On("ListRates", ctx, 20, 0).Return(nil, nil).Once()

	rates, err := suite.service.ListRates(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetRateByID_PassesThrough() {
	ctx := context.Background()
	expected := &domain.ExchangeRate{RateID: 8}

	suite.mockRateRepo.On("FindRateByID", ctx, int64(8)).Return(expected, nil).Once()

	rate, err := suite.service.GetRateByID(ctx, 8)

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
