package repositories

import (
	"context"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
)

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by their identifier.
	FindCustomerByID(ctx context.Context, customerID int) (*domain.Customer, error)

	// FindCredentialByLoginID retrieves login credentials by login ID.
	FindCredentialByLoginID(ctx context.Context, loginID string) (*domain.Credential, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	// UpdateCustomer updates a customer's profile fields.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
