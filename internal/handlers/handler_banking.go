package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ledger"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankingHandler handles the money-movement endpoints.
type bankingHandler struct {
	bankingService portssvc.BankingSvcFacade
}

func newBankingHandler(bs portssvc.BankingSvcFacade) *bankingHandler {
	return &bankingHandler{bankingService: bs}
}

// registerBankingRoutes registers deposit, withdraw and transfer routes.
func registerBankingRoutes(rg *gin.RouterGroup, bankingService portssvc.BankingSvcFacade) {
	h := newBankingHandler(bankingService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("/:accountNumber/deposit", h.deposit)
		accounts.POST("/:accountNumber/withdraw", h.withdraw)
	}
	rg.POST("/transfers", h.transfer)
}

// fieldError is the error body for a rejected money-movement request. The
// field tells the client which input to highlight.
type fieldError struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeLedgerError maps ledger and service errors onto HTTP responses.
func writeLedgerError(c *gin.Context, logger *slog.Logger, err error, operation string) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, fieldError{Error: err.Error(), Field: "amount"})
	case errors.Is(err, ledger.ErrInsufficientFunds):
		c.JSON(http.StatusBadRequest, fieldError{Error: err.Error(), Field: "amount"})
	case errors.Is(err, ledger.ErrInsufficientFundsForFee):
		c.JSON(http.StatusBadRequest, fieldError{Error: err.Error(), Field: "amount"})
	case errors.Is(err, ledger.ErrDestinationNotFound):
		c.JSON(http.StatusBadRequest, fieldError{Error: err.Error(), Field: "destinationAccountNumber"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, fieldError{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, fieldError{Error: "Account balance changed, please retry"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, fieldError{Error: "Account not found"})
	default:
		logger.Error("Ledger operation failed", slog.String("operation", operation), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, fieldError{Error: "Operation failed"})
	}
}

// deposit credits one of the customer's accounts.
func (h *bankingHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		logger.Error("Customer ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.bankingService.Deposit(c.Request.Context(), customerID, accountNumber, req)
	if err != nil {
		writeLedgerError(c, logger, err, "deposit")
		return
	}

	logger.Info("Deposit completed", slog.Int("account_number", accountNumber))
	c.JSON(http.StatusOK, receipt)
}

// withdraw debits one of the customer's accounts.
func (h *bankingHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		logger.Error("Customer ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.bankingService.Withdraw(c.Request.Context(), customerID, accountNumber, req)
	if err != nil {
		writeLedgerError(c, logger, err, "withdraw")
		return
	}

	logger.Info("Withdrawal completed", slog.Int("account_number", accountNumber))
	c.JSON(http.StatusOK, receipt)
}

// transfer moves funds between two accounts.
func (h *bankingHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		logger.Error("Customer ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.bankingService.Transfer(c.Request.Context(), customerID, req)
	if err != nil {
		writeLedgerError(c, logger, err, "transfer")
		return
	}

	logger.Info("Transfer completed",
		slog.Int("source_account", req.SourceAccountNumber),
		slog.Int("destination_account", req.DestinationAccountNumber),
	)
	c.JSON(http.StatusOK, receipt)
}
