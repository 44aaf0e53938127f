package pgsql

import (
	portsrepo "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	customerRepo := newPgxCustomerRepository(dbPool)
	payeeRepo := newPgxPayeeRepository(dbPool)
	billPayRepo := newPgxBillPayRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		CustomerRepo:    customerRepo,
		PayeeRepo:       payeeRepo,
		BillPayRepo:     billPayRepo,
	}
}
