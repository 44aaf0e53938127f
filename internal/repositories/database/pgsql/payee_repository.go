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

type PgxPayeeRepository struct {
	BaseRepository
}

// newPgxPayeeRepository creates a new repository for the payee directory.
func newPgxPayeeRepository(pool *pgxpool.Pool) portsrepo.PayeeReader {
	return &PgxPayeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayeeReader = (*PgxPayeeRepository)(nil)

const payeeColumns = `payee_id, name, address, city, state, postcode, phone`

func scanPayee(row pgx.Row) (domain.Payee, error) {
	var payee domain.Payee
	var address, city, state, postCode, phone sql.NullString
	err := row.Scan(
		&payee.PayeeID,
		&payee.Name,
		&address,
		&city,
		&state,
		&postCode,
		&phone,
	)
	if err != nil {
		return domain.Payee{}, err
	}
	payee.Address = address.String
	payee.City = city.String
	payee.State = state.String
	payee.PostCode = postCode.String
	payee.Phone = phone.String
	return payee, nil
}

// FindPayeeByID retrieves a payee by its identifier.
func (r *PgxPayeeRepository) FindPayeeByID(ctx context.Context, payeeID int) (*domain.Payee, error) {
	query := `
		SELECT ` + payeeColumns + `
		FROM payees
		WHERE payee_id = $1;
	`
	payee, err := scanPayee(r.Pool.QueryRow(ctx, query, payeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payee by ID %d: %w", payeeID, err)
	}
	return &payee, nil
}

// ListPayees retrieves all registered payees, ordered by name.
func (r *PgxPayeeRepository) ListPayees(ctx context.Context) ([]domain.Payee, error) {
	query := `
		SELECT ` + payeeColumns + `
		FROM payees
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payees: %w", err)
	}
	defer rows.Close()

	payees := []domain.Payee{}
	for rows.Next() {
		payee, err := scanPayee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payee row: %w", err)
		}
		payees = append(payees, payee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payee rows: %w", err)
	}
	return payees, nil
}
