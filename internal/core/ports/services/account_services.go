package services

import (
	"context"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
)

// AccountSvcFacade exposes account reads for the acting customer.
type AccountSvcFacade interface {
	// ListAccounts retrieves the customer's accounts with balances.
	ListAccounts(ctx context.Context, customerID int) ([]domain.Account, error)

	// GetAccount retrieves one account, returning not-found for accounts
	// the customer does not own.
	GetAccount(ctx context.Context, customerID int, accountNumber int) (*domain.Account, error)

	// GetStatement retrieves a page of the account's transactions, newest
	// first. nextToken is an opaque cursor from a previous page.
	GetStatement(ctx context.Context, customerID int, accountNumber int, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}
