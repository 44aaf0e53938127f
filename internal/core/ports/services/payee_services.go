package services

import (
	"context"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
)

// PayeeSvcFacade exposes the payee directory.
type PayeeSvcFacade interface {
	// GetPayee retrieves one payee.
	GetPayee(ctx context.Context, payeeID int) (*domain.Payee, error)

	// ListPayees retrieves all registered payees.
	ListPayees(ctx context.Context) ([]domain.Payee, error)
}

// BillPaySvcFacade manages scheduled bill payments. Scheduling stores
// metadata only; no execution engine consumes it.
type BillPaySvcFacade interface {
	// ScheduleBillPay records a new scheduled payment against an account
	// owned by customerID.
	ScheduleBillPay(ctx context.Context, customerID int, req dto.ScheduleBillPayRequest) (*domain.BillPay, error)

	// GetBillPay retrieves one scheduled payment owned by customerID.
	GetBillPay(ctx context.Context, customerID int, billPayID int) (*domain.BillPay, error)

	// ListBillPays retrieves the scheduled payments for one of the
	// customer's accounts.
	ListBillPays(ctx context.Context, customerID int, accountNumber int) ([]domain.BillPay, error)

	// CancelBillPay removes a scheduled payment owned by customerID.
	CancelBillPay(ctx context.Context, customerID int, billPayID int) error
}
