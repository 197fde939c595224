package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"icona/internal/domain"
	"icona/internal/infra"
	"icona/internal/sqlinline"
)

// CreditRepositoryPG implements domain.CreditRepository on PostgreSQL.
// Balance changes and their ledger rows are written in one statement.
type CreditRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewCreditRepository(sql infra.SQLExecutor) *CreditRepositoryPG {
	return &CreditRepositoryPG{sql: sql}
}

// EnsureAccount returns the account, creating it with its signup credits on
// first sight. A concurrent first insert can leave QEnsureAccount with no
// visible row; the committed row is then read back.
func (r *CreditRepositoryPG) EnsureAccount(ctx context.Context, accountID, email string, signupCredits int) (*domain.Account, error) {
	if signupCredits < 0 {
		signupCredits = 0
	}
	row := r.sql.QueryRow(ctx, sqlinline.QEnsureAccount, accountID, email, signupCredits, uuid.NewString())
	acct, err := scanAccount(row)
	if errors.Is(err, domain.ErrNotFound) {
		return r.GetAccount(ctx, accountID)
	}
	return acct, err
}

func (r *CreditRepositoryPG) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return scanAccount(r.sql.QueryRow(ctx, sqlinline.QGetAccount, accountID))
}

func (r *CreditRepositoryPG) Deduct(ctx context.Context, accountID string, amount int, reason domain.CreditReason, reference string) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("deduct: amount must be positive, got %d", amount)
	}
	var balance int
	err := r.sql.QueryRow(ctx, sqlinline.QDeductCredits, accountID, amount, uuid.NewString(), string(reason), reference).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrInsufficientCredits
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *CreditRepositoryPG) Add(ctx context.Context, accountID string, amount int, reason domain.CreditReason, reference string) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("add: amount must be positive, got %d", amount)
	}
	var balance int
	err := r.sql.QueryRow(ctx, sqlinline.QAddCredits, accountID, amount, uuid.NewString(), string(reason), reference).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *CreditRepositoryPG) GrantWeekly(ctx context.Context, accountID string) (int, error) {
	var balance int
	err := r.sql.QueryRow(ctx, sqlinline.QGrantWeeklyCredit, accountID, uuid.NewString()).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotEligible
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *CreditRepositoryPG) ListTransactions(ctx context.Context, accountID string, limit int) ([]domain.CreditTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListCreditTransactions, accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CreditTransaction
	for rows.Next() {
		var tx domain.CreditTransaction
		var reason string
		if err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Delta, &reason, &tx.Reference, &tx.CreatedAt); err != nil {
			return nil, err
		}
		tx.Reason = domain.CreditReason(reason)
		out = append(out, tx)
	}
	return out, rows.Err()
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.ID, &a.Email, &a.Credits, &a.FreeCreditsUsed, &a.LastFreeCreditAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

var _ domain.CreditRepository = (*CreditRepositoryPG)(nil)
