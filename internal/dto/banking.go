package dto

import (
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest is the payload for crediting an account.
type DepositRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Comment string          `json:"comment"` // Optional, defaults to empty
}

// WithdrawRequest is the payload for debiting an account.
type WithdrawRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Comment string          `json:"comment"`
}

// TransferRequest is the payload for moving funds between accounts.
type TransferRequest struct {
	SourceAccountNumber      int             `json:"sourceAccountNumber" binding:"required"`
	DestinationAccountNumber int             `json:"destinationAccountNumber" binding:"required"`
	Amount                   decimal.Decimal `json:"amount" binding:"required"`
	Comment                  string          `json:"comment"`
}

// TransactionResponse mirrors one ledger record.
type TransactionResponse struct {
	TransactionID            string          `json:"transactionID"`
	AccountNumber            int             `json:"accountNumber"`
	Kind                     string          `json:"kind"`
	Amount                   decimal.Decimal `json:"amount"`
	Comment                  string          `json:"comment"`
	DestinationAccountNumber *int            `json:"destinationAccountNumber,omitempty"`
	TransactionTimeUTC       time.Time       `json:"transactionTimeUtc"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:            txn.TransactionID,
		AccountNumber:            txn.AccountNumber,
		Kind:                     string(txn.Kind),
		Amount:                   txn.Amount,
		Comment:                  txn.Comment,
		DestinationAccountNumber: txn.DestinationAccountNumber,
		TransactionTimeUTC:       txn.TransactionTimeUTC,
	}
}

// ToTransactionResponses converts a slice of records.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}

// LedgerReceipt is returned by the money-movement operations: the updated
// source-account balance and the records appended by the operation. The
// destination balance of a transfer is deliberately not included.
type LedgerReceipt struct {
	AccountNumber int                   `json:"accountNumber"`
	Balance       decimal.Decimal       `json:"balance"`
	Transactions  []TransactionResponse `json:"transactions"`
}
