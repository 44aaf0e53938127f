package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ledger"
	portsrepo "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/repositories"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrSameAccount rejects transfers whose source and destination coincide.
var ErrSameAccount = errors.New("destination account must differ from the source account")

// bankingService orchestrates the ledger engine: it loads the accounts a
// request touches, supplies the chargeable-transaction count, runs the pure
// engine and hands the result to the repository for atomic persistence.
type bankingService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
}

// NewBankingService creates a new banking service.
func NewBankingService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.BankingSvcFacade {
	return &bankingService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.BankingSvcFacade = (*bankingService)(nil)

// ownedAccount loads an account and verifies the acting customer owns it.
// Accounts of other customers read as not found to obscure their existence.
func (s *bankingService) ownedAccount(ctx context.Context, customerID int, accountNumber int) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if account.CustomerID != customerID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *bankingService) Deposit(ctx context.Context, customerID int, accountNumber int, req dto.DepositRequest) (*dto.LedgerReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.ownedAccount(ctx, customerID, accountNumber)
	if err != nil {
		return nil, err
	}

	res, err := ledger.Deposit(*account, req.Amount, req.Comment, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	prior := map[int]decimal.Decimal{
		account.AccountNumber: account.Balance,
	}
	changes := map[int]decimal.Decimal{
		account.AccountNumber: res.Source.Balance.Sub(account.Balance),
	}
	receipt, err := s.persist(ctx, res, prior, changes)
	if err != nil {
		return nil, err
	}

	logger.Info("Deposit posted",
		slog.Int("account_number", accountNumber),
		slog.String("amount", req.Amount.String()))
	return receipt, nil
}

func (s *bankingService) Withdraw(ctx context.Context, customerID int, accountNumber int, req dto.WithdrawRequest) (*dto.LedgerReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.ownedAccount(ctx, customerID, accountNumber)
	if err != nil {
		return nil, err
	}

	priorChargeable, err := s.txnRepo.CountChargeableTransactions(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to count chargeable transactions for account %d: %w", accountNumber, err)
	}

	res, err := ledger.Withdraw(*account, req.Amount, req.Comment, time.Now().UTC(), priorChargeable)
	if err != nil {
		return nil, err
	}

	prior := map[int]decimal.Decimal{
		account.AccountNumber: account.Balance,
	}
	changes := map[int]decimal.Decimal{
		account.AccountNumber: res.Source.Balance.Sub(account.Balance),
	}
	receipt, err := s.persist(ctx, res, prior, changes)
	if err != nil {
		return nil, err
	}

	logger.Info("Withdrawal posted",
		slog.Int("account_number", accountNumber),
		slog.String("amount", req.Amount.String()),
		slog.Int("entries", len(res.Entries)))
	return receipt, nil
}

func (s *bankingService) Transfer(ctx context.Context, customerID int, req dto.TransferRequest) (*dto.LedgerReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.SourceAccountNumber == req.DestinationAccountNumber {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrSameAccount)
	}

	source, err := s.ownedAccount(ctx, customerID, req.SourceAccountNumber)
	if err != nil {
		return nil, err
	}

	// Any existing account can receive a transfer, not only the customer's.
	destination, err := s.accountRepo.FindAccountByNumber(ctx, req.DestinationAccountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ledger.ErrDestinationNotFound
		}
		return nil, err
	}

	priorChargeable, err := s.txnRepo.CountChargeableTransactions(ctx, req.SourceAccountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to count chargeable transactions for account %d: %w", req.SourceAccountNumber, err)
	}

	res, err := ledger.Transfer(*source, destination, req.Amount, req.Comment, time.Now().UTC(), priorChargeable)
	if err != nil {
		return nil, err
	}

	prior := map[int]decimal.Decimal{
		source.AccountNumber:      source.Balance,
		destination.AccountNumber: destination.Balance,
	}
	changes := map[int]decimal.Decimal{
		source.AccountNumber:      res.Source.Balance.Sub(source.Balance),
		destination.AccountNumber: res.Destination.Balance.Sub(destination.Balance),
	}
	receipt, err := s.persist(ctx, res, prior, changes)
	if err != nil {
		return nil, err
	}

	logger.Info("Transfer posted",
		slog.Int("source_account", req.SourceAccountNumber),
		slog.Int("destination_account", req.DestinationAccountNumber),
		slog.String("amount", req.Amount.String()),
		slog.Int("entries", len(res.Entries)))
	return receipt, nil
}

// persist assigns record IDs and commits the engine result as one atomic
// unit via the repository. The prior balances travel along so the repository
// can abort if another operation committed against an account in between.
func (s *bankingService) persist(ctx context.Context, res ledger.Result, prior map[int]decimal.Decimal, changes map[int]decimal.Decimal) (*dto.LedgerReceipt, error) {
	entries := res.Entries
	for i := range entries {
		entries[i].TransactionID = uuid.NewString()
	}

	if err := s.txnRepo.SaveLedgerEntry(ctx, entries, prior, changes); err != nil {
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	return &dto.LedgerReceipt{
		AccountNumber: res.Source.AccountNumber,
		Balance:       res.Source.Balance,
		Transactions:  dto.ToTransactionResponses(entries),
	}, nil
}
