package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	portsrepo "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// FindCustomerByID retrieves a customer by their identifier.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, tfn, address, city, state, postcode, mobile, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		WHERE customer_id = $1;
	`
	var customer domain.Customer
	var tfn, address, city, state, postCode, mobile sql.NullString

	err := r.Pool.QueryRow(ctx, query, customerID).Scan(
		&customer.CustomerID,
		&customer.Name,
		&tfn,
		&address,
		&city,
		&state,
		&postCode,
		&mobile,
		&customer.CreatedAt,
		&customer.CreatedBy,
		&customer.LastUpdatedAt,
		&customer.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %d: %w", customerID, err)
	}

	customer.TFN = tfn.String
	customer.Address = address.String
	customer.City = city.String
	customer.State = state.String
	customer.PostCode = postCode.String
	customer.Mobile = mobile.String
	return &customer, nil
}

// FindCredentialByLoginID retrieves login credentials by login ID.
func (r *PgxCustomerRepository) FindCredentialByLoginID(ctx context.Context, loginID string) (*domain.Credential, error) {
	query := `
		SELECT login_id, customer_id, password_hash
		FROM credentials
		WHERE login_id = $1;
	`
	var credential domain.Credential
	err := r.Pool.QueryRow(ctx, query, loginID).Scan(
		&credential.LoginID,
		&credential.CustomerID,
		&credential.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credential by login ID: %w", err)
	}
	return &credential, nil
}

// UpdateCustomer updates a customer's profile fields.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, tfn = $3, address = $4, city = $5, state = $6, postcode = $7, mobile = $8, last_updated_at = $9, last_updated_by = $10
		WHERE customer_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		nullable(customer.TFN),
		nullable(customer.Address),
		nullable(customer.City),
		nullable(customer.State),
		nullable(customer.PostCode),
		nullable(customer.Mobile),
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %d: %w", customer.CustomerID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %d not found for update", apperrors.ErrNotFound, customer.CustomerID)
	}
	return nil
}
