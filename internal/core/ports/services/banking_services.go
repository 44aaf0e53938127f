package services

import (
	"context"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
)

// BankingSvcFacade exposes the three money-movement operations. The acting
// customer is always an explicit argument; ownership of the source account
// is enforced against it before any mutation.
type BankingSvcFacade interface {
	// Deposit credits an account owned by customerID.
	Deposit(ctx context.Context, customerID int, accountNumber int, req dto.DepositRequest) (*dto.LedgerReceipt, error)

	// Withdraw debits an account owned by customerID, applying the service
	// fee once the chargeable-transaction threshold is reached.
	Withdraw(ctx context.Context, customerID int, accountNumber int, req dto.WithdrawRequest) (*dto.LedgerReceipt, error)

	// Transfer moves funds from an account owned by customerID to any
	// existing destination account, atomically.
	Transfer(ctx context.Context, customerID int, req dto.TransferRequest) (*dto.LedgerReceipt, error)
}
