package repositories

import (
	"context"
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByNumber retrieves a specific account by its account number.
	FindAccountByNumber(ctx context.Context, accountNumber int) (*domain.Account, error)

	// ListAccountsByCustomer retrieves all accounts owned by a customer,
	// ordered by account number.
	ListAccountsByCustomer(ctx context.Context, customerID int) ([]domain.Account, error)
}

// AccountLedgerSupport defines the operations ledger persistence needs to
// run inside a database transaction.
type AccountLedgerSupport interface {
	// FindAccountsByNumbersForUpdate selects accounts and locks them for
	// update within a transaction.
	FindAccountsByNumbersForUpdate(ctx context.Context, tx pgx.Tx, accountNumbers []int) (map[int]domain.Account, error)

	// UpdateAccountBalancesInTx applies balance deltas to multiple accounts
	// within a given transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[int]decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountLedgerSupport
}
