package repositories

import (
	"context"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
)

// PayeeReader defines read operations for the payee directory.
// Payees are reference data maintained out of band; there is no writer.
type PayeeReader interface {
	// FindPayeeByID retrieves a payee by its identifier.
	FindPayeeByID(ctx context.Context, payeeID int) (*domain.Payee, error)

	// ListPayees retrieves all registered payees, ordered by name.
	ListPayees(ctx context.Context) ([]domain.Payee, error)
}

// BillPayReader defines read operations for scheduled bill payments.
type BillPayReader interface {
	// FindBillPayByID retrieves a scheduled payment by its identifier.
	FindBillPayByID(ctx context.Context, billPayID int) (*domain.BillPay, error)

	// ListBillPaysByAccount retrieves all scheduled payments for an account,
	// ordered by schedule time.
	ListBillPaysByAccount(ctx context.Context, accountNumber int) ([]domain.BillPay, error)
}

// BillPayWriter defines write operations for scheduled bill payments.
type BillPayWriter interface {
	// SaveBillPay persists a new scheduled payment and returns its
	// generated identifier.
	SaveBillPay(ctx context.Context, billPay domain.BillPay) (int, error)

	// DeleteBillPay removes a scheduled payment.
	DeleteBillPay(ctx context.Context, billPayID int) error
}

// BillPayRepositoryFacade combines all bill-pay repository interfaces.
type BillPayRepositoryFacade interface {
	BillPayReader
	BillPayWriter
}
