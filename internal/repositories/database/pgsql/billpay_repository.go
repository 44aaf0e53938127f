package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	portsrepo "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillPayRepository struct {
	BaseRepository
}

// newPgxBillPayRepository creates a new repository for scheduled bill payments.
func newPgxBillPayRepository(pool *pgxpool.Pool) portsrepo.BillPayRepositoryFacade {
	return &PgxBillPayRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillPayRepositoryFacade = (*PgxBillPayRepository)(nil)

const billPayColumns = `bill_pay_id, account_number, payee_id, amount, schedule_time_utc, period, created_at, created_by, last_updated_at, last_updated_by`

func scanBillPay(row pgx.Row) (domain.BillPay, error) {
	var bp domain.BillPay
	err := row.Scan(
		&bp.BillPayID,
		&bp.AccountNumber,
		&bp.PayeeID,
		&bp.Amount,
		&bp.ScheduleTimeUTC,
		&bp.Period,
		&bp.CreatedAt,
		&bp.CreatedBy,
		&bp.LastUpdatedAt,
		&bp.LastUpdatedBy,
	)
	return bp, err
}

// SaveBillPay persists a new scheduled payment and returns its generated
// identifier.
func (r *PgxBillPayRepository) SaveBillPay(ctx context.Context, billPay domain.BillPay) (int, error) {
	query := `
		INSERT INTO bill_pays (account_number, payee_id, amount, schedule_time_utc, period, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING bill_pay_id;
	`
	var billPayID int
	err := r.Pool.QueryRow(ctx, query,
		billPay.AccountNumber,
		billPay.PayeeID,
		billPay.Amount,
		billPay.ScheduleTimeUTC,
		billPay.Period,
		billPay.CreatedAt,
		billPay.CreatedBy,
		billPay.LastUpdatedAt,
		billPay.LastUpdatedBy,
	).Scan(&billPayID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Foreign key violation
			return 0, fmt.Errorf("%w: account or payee does not exist", apperrors.ErrValidation)
		}
		return 0, fmt.Errorf("failed to save bill pay: %w", err)
	}
	return billPayID, nil
}

// FindBillPayByID retrieves a scheduled payment by its identifier.
func (r *PgxBillPayRepository) FindBillPayByID(ctx context.Context, billPayID int) (*domain.BillPay, error) {
	query := `
		SELECT ` + billPayColumns + `
		FROM bill_pays
		WHERE bill_pay_id = $1;
	`
	bp, err := scanBillPay(r.Pool.QueryRow(ctx, query, billPayID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill pay by ID %d: %w", billPayID, err)
	}
	return &bp, nil
}

// ListBillPaysByAccount retrieves all scheduled payments for an account,
// ordered by schedule time.
func (r *PgxBillPayRepository) ListBillPaysByAccount(ctx context.Context, accountNumber int) ([]domain.BillPay, error) {
	query := `
		SELECT ` + billPayColumns + `
		FROM bill_pays
		WHERE account_number = $1
		ORDER BY schedule_time_utc;
	`
	rows, err := r.Pool.Query(ctx, query, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill pays for account %d: %w", accountNumber, err)
	}
	defer rows.Close()

	billPays := []domain.BillPay{}
	for rows.Next() {
		bp, err := scanBillPay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill pay row: %w", err)
		}
		billPays = append(billPays, bp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill pay rows: %w", err)
	}
	return billPays, nil
}

// DeleteBillPay removes a scheduled payment.
func (r *PgxBillPayRepository) DeleteBillPay(ctx context.Context, billPayID int) error {
	query := `DELETE FROM bill_pays WHERE bill_pay_id = $1;`
	ct, err := r.Pool.Exec(ctx, query, billPayID)
	if err != nil {
		return fmt.Errorf("failed to delete bill pay %d: %w", billPayID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: bill pay %d not found", apperrors.ErrNotFound, billPayID)
	}
	return nil
}
