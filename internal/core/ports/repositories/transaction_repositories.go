package repositories

import (
	"context"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations over the append-only ledger.
type TransactionReader interface {
	// ListTransactionsByAccount retrieves a page of an account's
	// transactions, newest first. nextToken is an opaque cursor; a nil
	// return token means the last page was reached.
	ListTransactionsByAccount(ctx context.Context, accountNumber int, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// CountChargeableTransactions counts the account's prior withdrawals and
	// source-side transfer legs, the input to the service-fee rule.
	CountChargeableTransactions(ctx context.Context, accountNumber int) (int, error)
}

// LedgerEntryWriter persists the outcome of one ledger operation.
type LedgerEntryWriter interface {
	// SaveLedgerEntry writes all transaction records and applies all balance
	// deltas of a single ledger operation as one atomic unit: it locks the
	// touched accounts, updates their balances and inserts the records
	// within one database transaction. Partial application never happens.
	//
	// priorBalances holds the balance each touched account had when the
	// operation was validated. If a locked row no longer matches, the write
	// is aborted with apperrors.ErrConflict so the caller can retry against
	// fresh balances.
	SaveLedgerEntry(ctx context.Context, entries []domain.Transaction, priorBalances map[int]decimal.Decimal, balanceChanges map[int]decimal.Decimal) error
}

// TransactionRepositoryFacade combines ledger read and write interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	LedgerEntryWriter
}
