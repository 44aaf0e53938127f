package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	portsrepo "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/repositories"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/middleware"
)

// payeeService implements the PayeeSvcFacade interface.
type payeeService struct {
	payeeRepo portsrepo.PayeeReader
}

// NewPayeeService creates a new payee service.
func NewPayeeService(payeeRepo portsrepo.PayeeReader) portssvc.PayeeSvcFacade {
	return &payeeService{payeeRepo: payeeRepo}
}

var _ portssvc.PayeeSvcFacade = (*payeeService)(nil)

func (s *payeeService) GetPayee(ctx context.Context, payeeID int) (*domain.Payee, error) {
	return s.payeeRepo.FindPayeeByID(ctx, payeeID)
}

func (s *payeeService) ListPayees(ctx context.Context) ([]domain.Payee, error) {
	payees, err := s.payeeRepo.ListPayees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payees: %w", err)
	}
	if payees == nil {
		payees = []domain.Payee{}
	}
	return payees, nil
}

// billPayService implements the BillPaySvcFacade interface. It manages
// scheduled-payment metadata only; nothing here executes the payments.
type billPayService struct {
	billPayRepo portsrepo.BillPayRepositoryFacade
	payeeRepo   portsrepo.PayeeReader
	accountRepo portsrepo.AccountReader
}

// NewBillPayService creates a new bill-pay service.
func NewBillPayService(billPayRepo portsrepo.BillPayRepositoryFacade, payeeRepo portsrepo.PayeeReader, accountRepo portsrepo.AccountReader) portssvc.BillPaySvcFacade {
	return &billPayService{
		billPayRepo: billPayRepo,
		payeeRepo:   payeeRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.BillPaySvcFacade = (*billPayService)(nil)

// ownedAccount verifies the acting customer owns the account; foreign
// accounts read as not found.
func (s *billPayService) ownedAccount(ctx context.Context, customerID int, accountNumber int) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if account.CustomerID != customerID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *billPayService) ScheduleBillPay(ctx context.Context, customerID int, req dto.ScheduleBillPayRequest) (*domain.BillPay, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.Period.Valid() {
		return nil, fmt.Errorf("%w: unknown schedule period %q", apperrors.ErrValidation, req.Period)
	}

	if _, err := s.ownedAccount(ctx, customerID, req.AccountNumber); err != nil {
		return nil, err
	}
	if _, err := s.payeeRepo.FindPayeeByID(ctx, req.PayeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: payee %d does not exist", apperrors.ErrValidation, req.PayeeID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	billPay := domain.BillPay{
		AccountNumber:   req.AccountNumber,
		PayeeID:         req.PayeeID,
		Amount:          req.Amount,
		ScheduleTimeUTC: req.ScheduleTimeUTC.UTC(),
		Period:          req.Period,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     strconv.Itoa(customerID),
			LastUpdatedAt: now,
			LastUpdatedBy: strconv.Itoa(customerID),
		},
	}

	id, err := s.billPayRepo.SaveBillPay(ctx, billPay)
	if err != nil {
		logger.Error("Failed to save bill payment",
			slog.Int("account_number", req.AccountNumber), slog.String("error", err.Error()))
		return nil, err
	}
	billPay.BillPayID = id

	logger.Info("Bill payment scheduled",
		slog.Int("billpay_id", id),
		slog.Int("account_number", req.AccountNumber),
		slog.Int("payee_id", req.PayeeID))
	return &billPay, nil
}

func (s *billPayService) GetBillPay(ctx context.Context, customerID int, billPayID int) (*domain.BillPay, error) {
	billPay, err := s.billPayRepo.FindBillPayByID(ctx, billPayID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedAccount(ctx, customerID, billPay.AccountNumber); err != nil {
		return nil, err
	}
	return billPay, nil
}

func (s *billPayService) ListBillPays(ctx context.Context, customerID int, accountNumber int) ([]domain.BillPay, error) {
	if _, err := s.ownedAccount(ctx, customerID, accountNumber); err != nil {
		return nil, err
	}

	billPays, err := s.billPayRepo.ListBillPaysByAccount(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill payments for account %d: %w", accountNumber, err)
	}
	if billPays == nil {
		billPays = []domain.BillPay{}
	}
	return billPays, nil
}

func (s *billPayService) CancelBillPay(ctx context.Context, customerID int, billPayID int) error {
	if _, err := s.GetBillPay(ctx, customerID, billPayID); err != nil {
		return err
	}

	if err := s.billPayRepo.DeleteBillPay(ctx, billPayID); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Bill payment cancelled",
		slog.Int("billpay_id", billPayID), slog.Int("customer_id", customerID))
	return nil
}
