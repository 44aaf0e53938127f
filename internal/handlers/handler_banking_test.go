package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ledger"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/handlers"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BankingService ---
type MockBankingService struct {
	mock.Mock
}

func (m *MockBankingService) Deposit(ctx context.Context, customerID int, accountNumber int, req dto.DepositRequest) (*dto.LedgerReceipt, error) {
	args := m.Called(ctx, customerID, accountNumber, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LedgerReceipt), args.Error(1)
}

func (m *MockBankingService) Withdraw(ctx context.Context, customerID int, accountNumber int, req dto.WithdrawRequest) (*dto.LedgerReceipt, error) {
	args := m.Called(ctx, customerID, accountNumber, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LedgerReceipt), args.Error(1)
}

func (m *MockBankingService) Transfer(ctx context.Context, customerID int, req dto.TransferRequest) (*dto.LedgerReceipt, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LedgerReceipt), args.Error(1)
}

var _ portssvc.BankingSvcFacade = (*MockBankingService)(nil)

// --- Test Suite ---
type BankingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBankingService *MockBankingService
	jwtSecret          string
}

func (suite *BankingHandlerTestSuite) generateTestToken(customerID int) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "banking-test",
		Subject:   strconv.Itoa(customerID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BankingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockBankingService = new(MockBankingService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		LoginRateLimit: "10-M",
	}
	services := &portssvc.ServiceContainer{Banking: suite.mockBankingService}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func TestBankingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BankingHandlerTestSuite))
}

func (suite *BankingHandlerTestSuite) doRequest(method, path, body string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BankingHandlerTestSuite) TestDeposit_Success() {
	receipt := &dto.LedgerReceipt{
		AccountNumber: 4100,
		Balance:       decimal.RequireFromString("140.50"),
	}
	suite.mockBankingService.On("Deposit", mock.Anything, 2100, 4100, mock.MatchedBy(func(req dto.DepositRequest) bool {
		return req.Amount.Equal(decimal.RequireFromString("40.50")) && req.Comment == "pay day"
	})).Return(receipt, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts/4100/deposit",
		`{"amount": 40.50, "comment": "pay day"}`, suite.generateTestToken(2100))

	suite.Equal(http.StatusOK, w.Code)
	var got dto.LedgerReceipt
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(4100, got.AccountNumber)
	suite.True(got.Balance.Equal(decimal.RequireFromString("140.50")))
	suite.mockBankingService.AssertExpectations(suite.T())
}

func (suite *BankingHandlerTestSuite) TestDeposit_MissingToken() {
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts/4100/deposit", `{"amount": 10}`, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBankingService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BankingHandlerTestSuite) TestWithdraw_InsufficientFunds() {
	suite.mockBankingService.On("Withdraw", mock.Anything, 2100, 4100, mock.Anything).
		Return(nil, ledger.ErrInsufficientFunds).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts/4100/withdraw",
		`{"amount": 500}`, suite.generateTestToken(2100))

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("amount", body["field"])
}

func (suite *BankingHandlerTestSuite) TestWithdraw_StaleBalanceConflict() {
	suite.mockBankingService.On("Withdraw", mock.Anything, 2100, 4100, mock.Anything).
		Return(nil, apperrors.NewAppError(409, "account 4100 balance changed since validation", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts/4100/withdraw",
		`{"amount": 80}`, suite.generateTestToken(2100))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *BankingHandlerTestSuite) TestTransfer_DestinationMissing() {
	suite.mockBankingService.On("Transfer", mock.Anything, 2100, mock.Anything).
		Return(nil, ledger.ErrDestinationNotFound).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transfers",
		`{"sourceAccountNumber": 4100, "destinationAccountNumber": 9999, "amount": 10}`,
		suite.generateTestToken(2100))

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("destinationAccountNumber", body["field"])
}

func (suite *BankingHandlerTestSuite) TestDeposit_InvalidAccountNumber() {
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts/notanumber/deposit",
		`{"amount": 10}`, suite.generateTestToken(2100))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBankingService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
