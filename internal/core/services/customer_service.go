package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	portsrepo "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/repositories"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/middleware"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/utils"
)

// customerService implements the CustomerSvcFacade interface.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) GetCustomer(ctx context.Context, customerID int) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find customer",
				slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateProfile(ctx context.Context, customerID int, req dto.UpdateProfileRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		customer.Name = *req.Name
		updated = true
	}
	if req.Address != nil {
		customer.Address = *req.Address
		updated = true
	}
	if req.City != nil {
		customer.City = *req.City
		updated = true
	}
	if req.State != nil {
		customer.State = *req.State
		updated = true
	}
	if req.PostCode != nil {
		customer.PostCode = *req.PostCode
		updated = true
	}
	if req.TFN != nil {
		customer.TFN = *req.TFN
		updated = true
	}
	if req.Mobile != nil {
		customer.Mobile = *req.Mobile
		updated = true
	}
	if !updated {
		return customer, nil
	}

	now := time.Now().UTC()
	customer.LastUpdatedAt = now
	customer.LastUpdatedBy = strconv.Itoa(customerID)

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer profile",
			slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Customer profile updated", slog.Int("customer_id", customerID))
	return customer, nil
}

func (s *customerService) VerifyLogin(ctx context.Context, loginID string, password string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	credential, err := s.customerRepo.FindCredentialByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Unknown login reads the same as a bad password.
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up credential", slog.String("error", err.Error()))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, credential.PasswordHash) {
		logger.Warn("Login attempt with wrong password", slog.String("login_id", loginID))
		return nil, apperrors.ErrUnauthorized
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, credential.CustomerID)
	if err != nil {
		logger.Error("Credential without customer",
			slog.String("login_id", loginID), slog.String("error", err.Error()))
		return nil, apperrors.ErrInternal
	}
	return customer, nil
}
