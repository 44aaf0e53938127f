package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ledger"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByCustomer(ctx context.Context, customerID int) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByNumbersForUpdate(ctx context.Context, tx pgx.Tx, accountNumbers []int) (map[int]domain.Account, error) {
	args := m.Called(ctx, tx, accountNumbers)
	var accounts map[int]domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).(map[int]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[int]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, now)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountNumber int, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountNumber, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) CountChargeableTransactions(ctx context.Context, accountNumber int) (int, error) {
	args := m.Called(ctx, accountNumber)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveLedgerEntry(ctx context.Context, entries []domain.Transaction, priorBalances map[int]decimal.Decimal, balanceChanges map[int]decimal.Decimal) error {
	args := m.Called(ctx, entries, priorBalances, balanceChanges)
	return args.Error(0)
}

// --- Test Suite ---
type BankingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.BankingSvcFacade
}

func (suite *BankingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewBankingService(suite.mockAccountRepo, suite.mockTxnRepo)
}

func TestBankingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankingServiceTestSuite))
}

const (
	ownerID       = 2100
	sourceNumber  = 4100
	destNumber    = 4200
	otherCustomer = 2200
)

func account(number, customer int, balance string) *domain.Account {
	return &domain.Account{
		AccountNumber: number,
		AccountType:   domain.Savings,
		CustomerID:    customer,
		Balance:       decimal.RequireFromString(balance),
	}
}

func (suite *BankingServiceTestSuite) TestDeposit_Success() {
	ctx := context.Background()
	acc := account(sourceNumber, ownerID, "100")

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, sourceNumber).Return(acc, nil).Once()
	suite.mockTxnRepo.On("SaveLedgerEntry", ctx, mock.MatchedBy(func(entries []domain.Transaction) bool {
		return len(entries) == 1 &&
			entries[0].Kind == domain.Deposit &&
			entries[0].TransactionID != "" &&
			entries[0].Amount.Equal(decimal.RequireFromString("40.50"))
	}), mock.MatchedBy(func(prior map[int]decimal.Decimal) bool {
		return prior[sourceNumber].Equal(decimal.NewFromInt(100))
	}), mock.MatchedBy(func(changes map[int]decimal.Decimal) bool {
		return changes[sourceNumber].Equal(decimal.RequireFromString("40.50"))
	})).Return(nil).Once()

	receipt, err := suite.service.Deposit(ctx, ownerID, sourceNumber, dto.DepositRequest{
		Amount:  decimal.RequireFromString("40.50"),
		Comment: "pay day",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.Equal(sourceNumber, receipt.AccountNumber)
	suite.True(receipt.Balance.Equal(decimal.RequireFromString("140.50")))
	suite.Len(receipt.Transactions, 1)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BankingServiceTestSuite) TestDeposit_ForeignAccountReadsAsNotFound() {
	ctx := context.Background()
	acc := account(sourceNumber, otherCustomer, "100")

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, sourceNumber).Return(acc, nil).Once()

	receipt, err := suite.service.Deposit(ctx, ownerID, sourceNumber, dto.DepositRequest{
		Amount: decimal.NewFromInt(10),
	})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(receipt)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveLedgerEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BankingServiceTestSuite) TestWithdraw_FeeRecordedWithoutExtraDebit() {
	ctx := context.Background()
	acc := account(sourceNumber, ownerID, "100")

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, sourceNumber).Return(acc, nil).Once()
	suite.mockTxnRepo.On("CountChargeableTransactions", ctx, sourceNumber).Return(2, nil).Once()
	suite.mockTxnRepo.On("SaveLedgerEntry", ctx, mock.MatchedBy(func(entries []domain.Transaction) bool {
		if len(entries) != 2 {
			return false
		}
		return entries[0].Kind == domain.Withdrawal &&
			entries[1].Kind == domain.ServiceFee &&
			entries[1].Amount.Equal(ledger.ServiceFeeAmount)
	}), mock.MatchedBy(func(prior map[int]decimal.Decimal) bool {
		return prior[sourceNumber].Equal(decimal.NewFromInt(100))
	}), mock.MatchedBy(func(changes map[int]decimal.Decimal) bool {
		// The withdrawal fee is recorded but does not debit the balance.
		return changes[sourceNumber].Equal(decimal.NewFromInt(-30))
	})).Return(nil).Once()

	receipt, err := suite.service.Withdraw(ctx, ownerID, sourceNumber, dto.WithdrawRequest{
		Amount: decimal.NewFromInt(30),
	})

	suite.Require().NoError(err)
	suite.True(receipt.Balance.Equal(decimal.NewFromInt(70)))
	suite.Len(receipt.Transactions, 2)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BankingServiceTestSuite) TestWithdraw_InsufficientFunds() {
	ctx := context.Background()
	acc := account(sourceNumber, ownerID, "50")

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, sourceNumber).Return(acc, nil).Once()
	suite.mockTxnRepo.On("CountChargeableTransactions", ctx, sourceNumber).Return(0, nil).Once()

	receipt, err := suite.service.Withdraw(ctx, ownerID, sourceNumber, dto.WithdrawRequest{
		Amount: decimal.NewFromInt(50), // Must leave a strictly positive balance
	})

	suite.Require().ErrorIs(err, ledger.ErrInsufficientFunds)
	suite.Nil(receipt)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveLedgerEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BankingServiceTestSuite) TestTransfer_SuccessWithFee() {
	ctx := context.Background()
	source := account(sourceNumber, ownerID, "100")
	destination := account(destNumber, otherCustomer, "50")

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, sourceNumber).Return(source, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, destNumber).Return(destination, nil).Once()
	suite.mockTxnRepo.On("CountChargeableTransactions", ctx, sourceNumber).Return(2, nil).Once()
	suite.mockTxnRepo.On("SaveLedgerEntry", ctx, mock.MatchedBy(func(entries []domain.Transaction) bool {
		if len(entries) != 3 {
			return false
		}
		// The fee row precedes the two transfer legs
		feeRow, sourceLeg, destLeg := entries[0], entries[1], entries[2]
		return feeRow.Kind == domain.ServiceFee &&
			feeRow.Comment == "Service fee for transfer" &&
			sourceLeg.Kind == domain.Transfer &&
			sourceLeg.DestinationAccountNumber != nil && *sourceLeg.DestinationAccountNumber == destNumber &&
			destLeg.Kind == domain.Transfer &&
			destLeg.DestinationAccountNumber == nil
	}), mock.MatchedBy(func(prior map[int]decimal.Decimal) bool {
		return prior[sourceNumber].Equal(decimal.NewFromInt(100)) &&
			prior[destNumber].Equal(decimal.NewFromInt(50))
	}), mock.MatchedBy(func(changes map[int]decimal.Decimal) bool {
		// The transfer fee does debit the source balance.
		return changes[sourceNumber].Equal(decimal.RequireFromString("-30.05")) &&
			changes[destNumber].Equal(decimal.NewFromInt(30))
	})).Return(nil).Once()

	receipt, err := suite.service.Transfer(ctx, ownerID, dto.TransferRequest{
		SourceAccountNumber:      sourceNumber,
		DestinationAccountNumber: destNumber,
		Amount:                   decimal.NewFromInt(30),
	})

	suite.Require().NoError(err)
	suite.Equal(sourceNumber, receipt.AccountNumber)
	suite.True(receipt.Balance.Equal(decimal.RequireFromString("69.95")))
	suite.Len(receipt.Transactions, 3)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BankingServiceTestSuite) TestTransfer_SameAccountRejected() {
	ctx := context.Background()

	receipt, err := suite.service.Transfer(ctx, ownerID, dto.TransferRequest{
		SourceAccountNumber:      sourceNumber,
		DestinationAccountNumber: sourceNumber,
		Amount:                   decimal.NewFromInt(10),
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Require().ErrorIs(err, services.ErrSameAccount)
	suite.Nil(receipt)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByNumber", mock.Anything, mock.Anything)
}

func (suite *BankingServiceTestSuite) TestTransfer_DestinationMissing() {
	ctx := context.Background()
	source := account(sourceNumber, ownerID, "100")

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, sourceNumber).Return(source, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, destNumber).Return(nil, apperrors.ErrNotFound).Once()

	receipt, err := suite.service.Transfer(ctx, ownerID, dto.TransferRequest{
		SourceAccountNumber:      sourceNumber,
		DestinationAccountNumber: destNumber,
		Amount:                   decimal.NewFromInt(10),
	})

	suite.Require().ErrorIs(err, ledger.ErrDestinationNotFound)
	suite.Nil(receipt)
}

func (suite *BankingServiceTestSuite) TestTransfer_FeeShortfall() {
	ctx := context.Background()
	source := account(sourceNumber, ownerID, "30.02")
	destination := account(destNumber, otherCustomer, "50")

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, sourceNumber).Return(source, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, destNumber).Return(destination, nil).Once()
	suite.mockTxnRepo.On("CountChargeableTransactions", ctx, sourceNumber).Return(2, nil).Once()

	receipt, err := suite.service.Transfer(ctx, ownerID, dto.TransferRequest{
		SourceAccountNumber:      sourceNumber,
		DestinationAccountNumber: destNumber,
		Amount:                   decimal.NewFromInt(30),
	})

	suite.Require().ErrorIs(err, ledger.ErrInsufficientFundsForFee)
	suite.Nil(receipt)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveLedgerEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BankingServiceTestSuite) TestWithdraw_StaleBalanceConflictSurfaces() {
	ctx := context.Background()
	acc := account(sourceNumber, ownerID, "100")

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, sourceNumber).Return(acc, nil).Once()
	suite.mockTxnRepo.On("CountChargeableTransactions", ctx, sourceNumber).Return(0, nil).Once()
	// Another operation committed between the funds check and the write, so
	// the repository rejects the stale deltas.
	suite.mockTxnRepo.On("SaveLedgerEntry", ctx, mock.Anything, mock.MatchedBy(func(prior map[int]decimal.Decimal) bool {
		return prior[sourceNumber].Equal(decimal.NewFromInt(100))
	}), mock.Anything).Return(apperrors.NewAppError(409, "account 4100 balance changed since validation", apperrors.ErrConflict)).Once()

	receipt, err := suite.service.Withdraw(ctx, ownerID, sourceNumber, dto.WithdrawRequest{
		Amount: decimal.NewFromInt(80),
	})

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(receipt)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BankingServiceTestSuite) TestWithdraw_PersistenceFailureSurfaces() {
	ctx := context.Background()
	acc := account(sourceNumber, ownerID, "100")

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, sourceNumber).Return(acc, nil).Once()
	suite.mockTxnRepo.On("CountChargeableTransactions", ctx, sourceNumber).Return(0, nil).Once()
	suite.mockTxnRepo.On("SaveLedgerEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	receipt, err := suite.service.Withdraw(ctx, ownerID, sourceNumber, dto.WithdrawRequest{
		Amount: decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.Contains(err.Error(), assert.AnError.Error())
	suite.Nil(receipt)
}
