package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	"github.com/hxudev/currency_exchange_api/internal/core/domain"
	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/core/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.Currency, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Currency), args.Get(1).(int64), args.Error(2)
}

func (m *MockCurrencyRepository) IsNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyRepository) IsSymbolExists(ctx context.Context, symbol string, excludeID int64) (bool, error) {
	args := m.Called(ctx, symbol, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyRepository) CreateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currencyID int64, patch domain.CurrencyPatch) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyName:   "Renminbi",
		CurrencySymbol: "¥",
	}
	created := &domain.Currency{CurrencyID: 1, Name: "Renminbi", Symbol: "¥"}

	suite.mockRepo.On("IsNameExists", ctx, "Renminbi", int64(0)).Return(false, nil).Once()
	suite.mockRepo.On("CreateCurrency", ctx, domain.Currency{Name: "Renminbi", Symbol: "¥"}).Return(created, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(int64(1), currency.CurrencyID)
	suite.Equal("Renminbi", currency.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_TrimsWhitespace() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyName:   "  Euro  ",
		CurrencySymbol: " € ",
	}
	created := &domain.Currency{CurrencyID: 2, Name: "Euro", Symbol: "€"}

	suite.mockRepo.On("IsNameExists", ctx, "Euro", int64(0)).Return(false, nil).Once()
	suite.mockRepo.On("CreateCurrency", ctx, domain.Currency{Name: "Euro", Symbol: "€"}).Return(created, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Euro", currency.Name)
	suite.Equal("€", currency.Symbol)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_BlankName() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyName:   "   ",
		CurrencySymbol: "$",
	}

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyName:   "Dollar",
		CurrencySymbol: "$",
	}

	suite.mockRepo.On("IsNameExists", ctx, "Dollar", int64(0)).Return(true, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_Success() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyID: 7, Name: "Yen", Symbol: "¥"}

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(7)).Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByID(ctx, 7)

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByID(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NormalizesParams() {
	ctx := context.Background()
	rows := []domain.Currency{{CurrencyID: 1, Name: "Dollar", Symbol: "$"}}

	// Page 0 and limit 0 fall back to page 1 / default page size.
	suite.mockRepo.On("ListCurrencies", ctx, domain.CurrencyFilter{Limit: 10, Offset: 0}).
		Return(rows, int64(1), nil).Once()

	currencies, pagination, err := suite.service.ListCurrencies(ctx, dto.ListCurrenciesParams{Page: 0, Limit: 0})

	suite.Require().NoError(err)
	suite.Len(currencies, 1)
	suite.Equal(1, pagination.CurrentPage)
	suite.Equal(10, pagination.PerPage)
	suite.Equal(int64(1), pagination.Total)
	suite.Equal(1, pagination.TotalPages)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_CapsPageSize() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx, domain.CurrencyFilter{Limit: 100, Offset: 100}).
		Return([]domain.Currency{}, int64(250), nil).Once()

	_, pagination, err := suite.service.ListCurrencies(ctx, dto.ListCurrenciesParams{Page: 2, Limit: 1000})

	suite.Require().NoError(err)
	suite.Equal(100, pagination.PerPage)
	suite.Equal(3, pagination.TotalPages)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilRowsBecomeEmptySlice() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx, domain.CurrencyFilter{Limit: 10}).
		Return(nil, int64(0), nil).Once()

	currencies, _, err := suite.service.ListCurrencies(ctx, dto.ListCurrenciesParams{Page: 1, Limit: 10})

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSearchCurrencies_BlankTerm() {
	ctx := context.Background()

	_, _, err := suite.service.SearchCurrencies(ctx, "   ", dto.ListCurrenciesParams{Page: 1, Limit: 10})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestSearchCurrencies_PassesTermAsFilter() {
	ctx := context.Background()
	rows := []domain.Currency{{CurrencyID: 3, Name: "Dollar", Symbol: "$"}}

	suite.mockRepo.On("ListCurrencies", ctx, domain.CurrencyFilter{Search: "Dol", Limit: 10}).
		Return(rows, int64(1), nil).Once()

	currencies, _, err := suite.service.SearchCurrencies(ctx, "Dol", dto.ListCurrenciesParams{Page: 1, Limit: 10})

	suite.Require().NoError(err)
	suite.Len(currencies, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_Success() {
	ctx := context.Background()
	newName := "Pound Sterling"
	updated := &domain.Currency{CurrencyID: 5, Name: "Pound Sterling", Symbol: "£"}

	suite.mockRepo.On("IsNameExists", ctx, "Pound Sterling", int64(5)).Return(false, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, int64(5), mock.MatchedBy(func(p domain.CurrencyPatch) bool {
		return p.Name != nil && *p.Name == "Pound Sterling" && p.Symbol == nil
	})).Return(updated, nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, 5, dto.UpdateCurrencyRequest{CurrencyName: &newName})

	suite.Require().NoError(err)
	suite.Equal("Pound Sterling", currency.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_DuplicateName() {
	ctx := context.Background()
	newName := "Euro"

	suite.mockRepo.On("IsNameExists", ctx, "Euro", int64(5)).Return(true, nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, 5, dto.UpdateCurrencyRequest{CurrencyName: &newName})

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCurrency", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_SymbolOnlySkipsNameCheck() {
	ctx := context.Background()
	newSymbol := "₺"
	updated := &domain.Currency{CurrencyID: 5, Name: "Lira", Symbol: "₺"}

	suite.mockRepo.On("UpdateCurrency", ctx, int64(5), mock.MatchedBy(func(p domain.CurrencyPatch) bool {
		return p.Name == nil && p.Symbol != nil && *p.Symbol == "₺"
	})).Return(updated, nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, 5, dto.UpdateCurrencyRequest{CurrencySymbol: &newSymbol})

	suite.Require().NoError(err)
	suite.Equal("₺", currency.Symbol)
	suite.mockRepo.AssertNotCalled(suite.T(), "IsNameExists", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_Referenced() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCurrency", ctx, int64(4)).Return(apperrors.ErrReferenced).Once()

	err := suite.service.DeleteCurrency(ctx, 4)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferenced)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCheckNameAvailability() {
	ctx := context.Background()

	suite.mockRepo.On("IsNameExists", ctx, "Dollar", int64(0)).Return(true, nil).Once()
	suite.mockRepo.On("IsNameExists", ctx, "Florin", int64(0)).Return(false, nil).Once()

	available, err := suite.service.CheckNameAvailability(ctx, "Dollar", 0)
	suite.Require().NoError(err)
	suite.False(available)

	available, err = suite.service.CheckNameAvailability(ctx, "Florin", 0)
	suite.Require().NoError(err)
	suite.True(available)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCheckSymbolAvailability_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("IsSymbolExists", ctx, "$", int64(0)).Return(false, assert.AnError).Once()

	available, err := suite.service.CheckSymbolAvailability(ctx, "$", 0)

	suite.Require().Error(err)
	suite.False(available)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
