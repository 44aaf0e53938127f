package services

import (
	"context"
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
)

// CustomerSvcFacade exposes profile reads and updates plus login
// verification.
type CustomerSvcFacade interface {
	// GetCustomer retrieves a customer's profile.
	GetCustomer(ctx context.Context, customerID int) (*domain.Customer, error)

	// UpdateProfile applies the editable profile fields.
	UpdateProfile(ctx context.Context, customerID int, req dto.UpdateProfileRequest) (*domain.Customer, error)

	// VerifyLogin checks a login ID and password against stored credentials
	// and returns the owning customer on success.
	VerifyLogin(ctx context.Context, loginID string, password string) (*domain.Customer, error)
}

// TokenSvcFacade issues access tokens for authenticated customers.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT whose subject is the
	// customer ID, returning the token and its expiry.
	GenerateAccessToken(ctx context.Context, customer *domain.Customer) (string, time.Time, error)
}
