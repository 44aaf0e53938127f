package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	portsrepo "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/repositories"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/middleware"
)

// accountService implements the AccountSvcFacade interface.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionReader
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionReader) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context, customerID int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByCustomer(ctx, customerID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts",
			slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts for customer %d: %w", customerID, err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *accountService) GetAccount(ctx context.Context, customerID int, accountNumber int) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if account.CustomerID != customerID {
		// Not-found rather than forbidden, to obscure existence.
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *accountService) GetStatement(ctx context.Context, customerID int, accountNumber int, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if _, err := s.GetAccount(ctx, customerID, accountNumber); err != nil {
		return nil, nil, err
	}

	transactions, token, err := s.txnRepo.ListTransactionsByAccount(ctx, accountNumber, limit, nextToken)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list transactions",
			slog.Int("account_number", accountNumber), slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to list transactions for account %d: %w", accountNumber, err)
	}
	return transactions, token, nil
}
