package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	portsrepo "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/repositories"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for ledger data.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveLedgerEntry persists the transaction records and balance deltas of one
// ledger operation atomically. It locks the touched accounts, verifies their
// balances still match the snapshot the operation was validated against, then
// applies the balance changes and inserts the records within a single
// database transaction so that partial application never happens.
func (r *PgxTransactionRepository) SaveLedgerEntry(ctx context.Context, entries []domain.Transaction, priorBalances map[int]decimal.Decimal, balanceChanges map[int]decimal.Decimal) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	now := entries[0].TransactionTimeUTC

	// 1. Lock the touched accounts so concurrent operations serialize
	accountNumbers := make([]int, 0, len(balanceChanges))
	for number := range balanceChanges {
		accountNumbers = append(accountNumbers, number)
	}
	locked, err := r.accountRepo.FindAccountsByNumbersForUpdate(ctx, tx, accountNumbers)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	// 2. Reject writes against stale balances. The funds checks ran on a
	// snapshot read outside this transaction; a concurrent operation that
	// committed in between invalidates them, so the deltas must not apply.
	for number, prior := range priorBalances {
		if current, ok := locked[number]; ok && !current.Balance.Equal(prior) {
			return apperrors.NewAppError(409,
				fmt.Sprintf("account %d balance changed from %s to %s since validation", number, prior, current.Balance),
				apperrors.ErrConflict)
		}
	}

	// 3. Apply the balance deltas
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, now); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}

	// 4. Insert the transaction records
	batch := &pgx.Batch{}
	insertQuery := `
		INSERT INTO transactions (transaction_id, account_number, transaction_kind, amount, comment, destination_account_number, transaction_time_utc)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, entry := range entries {
		var comment sql.NullString
		if entry.Comment != "" {
			comment = sql.NullString{String: entry.Comment, Valid: true}
		}
		batch.Queue(insertQuery,
			entry.TransactionID,
			entry.AccountNumber,
			entry.Kind,
			entry.Amount,
			comment,
			entry.DestinationAccountNumber,
			entry.TransactionTimeUTC,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute transaction insert batch", err)
	}

	return r.Commit(ctx, tx)
}

const transactionColumns = `transaction_id, account_number, transaction_kind, amount, comment, destination_account_number, transaction_time_utc`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var txn domain.Transaction
	var comment sql.NullString
	var destination sql.NullInt64
	err := row.Scan(
		&txn.TransactionID,
		&txn.AccountNumber,
		&txn.Kind,
		&txn.Amount,
		&comment,
		&destination,
		&txn.TransactionTimeUTC,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	if comment.Valid {
		txn.Comment = comment.String
	}
	if destination.Valid {
		dest := int(destination.Int64)
		txn.DestinationAccountNumber = &dest
	}
	return txn, nil
}

// ListTransactionsByAccount retrieves a page of an account's transactions,
// newest first, using token-based pagination. It returns the transactions,
// a token for the next page, and an error.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountNumber int, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 4
	}
	// Fetch one extra row to determine whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_number = $1
	`
	// Ordering must be stable; the transaction ID breaks timestamp ties.
	orderByClause := `ORDER BY transaction_time_utc DESC, transaction_id DESC`

	args := []interface{}{accountNumber}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastTime, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison keeps the cursor condition aligned with the
		// ORDER BY clause.
		query += ` AND (transaction_time_utc, transaction_id) < ($2, $3)`
		args = append(args, lastTime, lastID)
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query transactions for account %d", accountNumber), err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0, fetchLimit)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var newNextToken *string
	if len(transactions) > limit {
		transactions = transactions[:limit]
		last := transactions[len(transactions)-1]
		token := pagination.EncodeToken(last.TransactionTimeUTC, last.TransactionID)
		newNextToken = &token
	}
	return transactions, newNextToken, nil
}

// CountChargeableTransactions counts the account's withdrawals and
// source-side transfer legs. Destination legs carry no destination account
// number and are excluded.
func (r *PgxTransactionRepository) CountChargeableTransactions(ctx context.Context, accountNumber int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE account_number = $1
		  AND (transaction_kind = 'W' OR (transaction_kind = 'T' AND destination_account_number IS NOT NULL));
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, accountNumber).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count chargeable transactions for account %d: %w", accountNumber, err)
	}
	return count, nil
}
