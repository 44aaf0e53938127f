package services

import (
	portsrepo "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/repositories"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Banking = NewBankingService(repos.AccountRepo, repos.TransactionRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.TransactionRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Payee = NewPayeeService(repos.PayeeRepo)
	container.BillPay = NewBillPayService(repos.BillPayRepo, repos.PayeeRepo, repos.AccountRepo)
	container.Token = NewTokenService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BankingSvcFacade  = (*bankingService)(nil)
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.CustomerSvcFacade = (*customerService)(nil)
	_ portssvc.PayeeSvcFacade    = (*payeeService)(nil)
	_ portssvc.BillPaySvcFacade  = (*billPayService)(nil)
	_ portssvc.TokenSvcFacade    = (*tokenService)(nil)
)
