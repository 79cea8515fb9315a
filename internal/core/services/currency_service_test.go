package services_test

import (
	"context"
	"testing"

	"github.com/ratewise/currency_rates_app/internal/apperrors"
	"github.com/ratewise/currency_rates_app/internal/core/domain"
	portssvc "github.com/ratewise/currency_rates_app/internal/core/ports/services"
	"github.com/ratewise/currency_rates_app/internal/core/services"
	"github.com/ratewise/currency_rates_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error) {
	args := m.Called(ctx, abbreviation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
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
		Name:         "Test Currency",
		Abbreviation: "TST",
		Symbol:       "T",
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Name == req.Name && c.Abbreviation == req.Abbreviation && c.Symbol == req.Symbol
	})).Return(&domain.Currency{
		CurrencyID:   7,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Symbol:       req.Symbol,
	}, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(int64(7), currency.CurrencyID)
	suite.Equal(req.Name, currency.Name)
	suite.Equal(req.Abbreviation, currency.Abbreviation)
	suite.Equal(req.Symbol, currency.Symbol)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_BlankName() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Name:         "   ",
		Abbreviation: "TST",
		Symbol:       "T",
	}

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_LowercaseAbbreviation() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Name:         "Test Currency",
		Abbreviation: "tst",
		Symbol:       "T",
	}

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_SaveError() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Name:         "Error Currency",
		Abbreviation: "ERR",
		Symbol:       "E",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil, expectedErr).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_RoundTrip() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Name:         "US Dollar",
		Abbreviation: "USD",
		Symbol:       "$",
	}
	created := &domain.Currency{
		CurrencyID:   1,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Symbol:       req.Symbol,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(created, nil).Once()
	suite.mockRepo.On("FindCurrencyByID", ctx, int64(1)).Return(created, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)
	suite.Require().NoError(err)

	fetched, err := suite.service.GetCurrencyByID(ctx, currency.CurrencyID)
	suite.Require().NoError(err)
	suite.Equal(currency, fetched)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_Success() {
	ctx := context.Background()
	expectedCurrency := &domain.Currency{CurrencyID: 3, Abbreviation: "TST"}

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(3)).Return(expectedCurrency, nil).Once()

	currency, err := suite.service.GetCurrencyByID(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal(expectedCurrency, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(999999)).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByID(ctx, 999999)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByAbbreviation_Success() {
	ctx := context.Background()
	expectedCurrency := &domain.Currency{CurrencyID: 1, Abbreviation: "USD"}

	suite.mockRepo.On("FindCurrencyByAbbreviation", ctx, "USD").Return(expectedCurrency, nil).Once()

	currency, err := suite.service.GetCurrencyByAbbreviation(ctx, "usd")

	suite.Require().NoError(err)
	suite.Equal(expectedCurrency, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByAbbreviation_BadLength() {
	ctx := context.Background()

	currency, err := suite.service.GetCurrencyByAbbreviation(ctx, "USDX")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByAbbreviation", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	ctx := context.Background()
	expectedCurrencies := []domain.Currency{{Abbreviation: "TST"}, {Abbreviation: "CUR"}}

	suite.mockRepo.On("ListCurrencies", ctx).Return(expectedCurrencies, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expectedCurrencies, currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var expectedCurrencies []domain.Currency // Empty slice

	suite.mockRepo.On("ListCurrencies", ctx).Return(expectedCurrencies, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_Success() {
	ctx := context.Background()
	existing := &domain.Currency{CurrencyID: 5, Name: "Old Name", Abbreviation: "OLD", Symbol: "O"}
	req := dto.UpdateCurrencyRequest{Name: "New Name", Abbreviation: "NEW", Symbol: "N"}

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyID == 5 && c.Name == req.Name && c.Abbreviation == req.Abbreviation && c.Symbol == req.Symbol
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCurrency(ctx, 5, req)

	suite.Require().NoError(err)
	suite.Equal(req.Name, updated.Name)
	suite.Equal(req.Abbreviation, updated.Abbreviation)
	suite.Equal(req.Symbol, updated.Symbol)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_NotFound() {
	ctx := context.Background()
	req := dto.UpdateCurrencyRequest{Name: "New Name", Abbreviation: "NEW", Symbol: "N"}

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateCurrency(ctx, 42, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCurrency", ctx, int64(5)).Return(nil).Once()

	err := suite.service.DeleteCurrency(ctx, 5)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCurrency", ctx, int64(42)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCurrency(ctx, 42)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
