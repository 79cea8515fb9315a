package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/currency_rates_app/internal/apperrors"
	"github.com/ratewise/currency_rates_app/internal/core/domain"
	portssvc "github.com/ratewise/currency_rates_app/internal/core/ports/services"
	"github.com/ratewise/currency_rates_app/internal/dto"
	"github.com/ratewise/currency_rates_app/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) GetCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error) {
	args := m.Called(ctx, abbreviation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, currencyID int64) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock RateReaderService ---
type MockRateReaderService struct {
	mock.Mock
}

func (m *MockRateReaderService) GetRateByID(ctx context.Context, rateID int64) (*domain.Rate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}
func (m *MockRateReaderService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}
func (m *MockRateReaderService) ListRatesByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Rate, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}
func (m *MockRateReaderService) GetRatesByAbbreviationAndDate(ctx context.Context, abbreviation string, date time.Time) ([]domain.Rate, error) {
	args := m.Called(ctx, abbreviation, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}
func (m *MockRateReaderService) GetBulkRates(ctx context.Context, abbreviations []string) ([]domain.Rate, error) {
	args := m.Called(ctx, abbreviations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

var _ portssvc.RateReaderSvc = (*MockRateReaderService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCurrencyService *MockCurrencyService
	mockRateService     *MockRateReaderService
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidations(slog.Default())
	suite.router = gin.New()
	suite.mockCurrencyService = new(MockCurrencyService)
	suite.mockRateService = new(MockRateReaderService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCurrencyRoutes(v1, suite.mockCurrencyService, suite.mockRateService)
}

func (suite *CurrencyHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_Success() {
	reqBody := dto.CreateCurrencyRequest{Name: "US Dollar", Abbreviation: "USD", Symbol: "$"}
	created := &domain.Currency{
		CurrencyID:   1,
		Name:         "US Dollar",
		Abbreviation: "USD",
		Symbol:       "$",
		AuditFields:  domain.AuditFields{CreatedAt: time.Now(), LastUpdatedAt: time.Now()},
	}

	suite.mockCurrencyService.On("CreateCurrency", mock.Anything, reqBody).Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/currencies", reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(1), body.CurrencyID)
	suite.Equal("USD", body.Abbreviation)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_BindingFailures() {
	testCases := []dto.CreateCurrencyRequest{
		{Name: "", Abbreviation: "USD", Symbol: "$"},
		{Name: "   ", Abbreviation: "USD", Symbol: "$"},
		{Name: "US Dollar", Abbreviation: "usd", Symbol: "$"},
		{Name: "US Dollar", Abbreviation: "USDX", Symbol: "$"},
		{Name: "US Dollar", Abbreviation: "USD", Symbol: ""},
	}
	for _, reqBody := range testCases {
		w := suite.doJSON(http.MethodPost, "/api/v1/currencies", reqBody)
		suite.Equal(http.StatusBadRequest, w.Code, "body %+v", reqBody)
	}
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_Duplicate() {
	reqBody := dto.CreateCurrencyRequest{Name: "US Dollar", Abbreviation: "USD", Symbol: "$"}

	suite.mockCurrencyService.On("CreateCurrency", mock.Anything, reqBody).
		Return(nil, fmt.Errorf("%w: abbreviation USD", apperrors.ErrDuplicate)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/currencies", reqBody)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByID_Success() {
	currency := &domain.Currency{CurrencyID: 1, Name: "US Dollar", Abbreviation: "USD", Symbol: "$"}

	suite.mockCurrencyService.On("GetCurrencyByID", mock.Anything, int64(1)).Return(currency, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/currencies/1", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("USD", body.Abbreviation)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByID_NotFound() {
	suite.mockCurrencyService.On("GetCurrencyByID", mock.Anything, int64(999999)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/currencies/999999", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByID_InvalidID() {
	w := suite.doJSON(http.MethodGet, "/api/v1/currencies/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "GetCurrencyByID", mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Success() {
	currencies := []domain.Currency{
		{CurrencyID: 1, Name: "US Dollar", Abbreviation: "USD", Symbol: "$"},
		{CurrencyID: 2, Name: "Euro", Abbreviation: "EUR", Symbol: "€"},
	}

	suite.mockCurrencyService.On("ListCurrencies", mock.Anything).Return(currencies, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 2)
	suite.Equal("EUR", body[1].Abbreviation)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencyRates_Success() {
	currency := &domain.Currency{CurrencyID: 1, Name: "US Dollar", Abbreviation: "USD", Symbol: "$"}
	rates := []domain.Rate{
		{RateID: 2, CurrencyID: 1, Value: decimal.RequireFromString("1.30"), EffectiveDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{RateID: 1, CurrencyID: 1, Value: decimal.RequireFromString("1.25"), EffectiveDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockCurrencyService.On("GetCurrencyByID", mock.Anything, int64(1)).Return(currency, nil).Once()
	suite.mockRateService.On("ListRatesByCurrencyID", mock.Anything, int64(1)).Return(rates, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/currencies/1/rates", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 2)
	suite.Equal(int64(2), body[0].RateID)
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencyRates_CurrencyNotFound() {
	suite.mockCurrencyService.On("GetCurrencyByID", mock.Anything, int64(999999)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/currencies/999999/rates", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockRateService.AssertNotCalled(suite.T(), "ListRatesByCurrencyID", mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestUpdateCurrency_NotFound() {
	reqBody := dto.UpdateCurrencyRequest{Name: "US Dollar", Abbreviation: "USD", Symbol: "$"}

	suite.mockCurrencyService.On("UpdateCurrency", mock.Anything, int64(999999), reqBody).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/currencies/999999", reqBody)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestDeleteCurrency_Success() {
	suite.mockCurrencyService.On("DeleteCurrency", mock.Anything, int64(1)).Return(nil).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/currencies/1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestDeleteCurrency_NotFound() {
	suite.mockCurrencyService.On("DeleteCurrency", mock.Anything, int64(999999)).
		Return(apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/currencies/999999", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
