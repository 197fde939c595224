package domain

import (
	"context"
	"time"
)

// CreditRepository persists accounts and their credit ledger.
type CreditRepository interface {
	EnsureAccount(ctx context.Context, accountID, email string, signupCredits int) (*Account, error)
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	// Deduct atomically removes amount credits and returns the new balance.
	// It returns ErrInsufficientCredits when the balance is too low.
	Deduct(ctx context.Context, accountID string, amount int, reason CreditReason, reference string) (int, error)
	Add(ctx context.Context, accountID string, amount int, reason CreditReason, reference string) (int, error)
	// GrantWeekly adds one credit if the last free grant is at least a week old.
	// It returns ErrNotEligible otherwise.
	GrantWeekly(ctx context.Context, accountID string) (int, error)
	ListTransactions(ctx context.Context, accountID string, limit int) ([]CreditTransaction, error)
}

// UsageRepository stores usage events.
type UsageRepository interface {
	Record(ctx context.Context, event UsageEvent) error
	Summary(ctx context.Context, since time.Time) ([]EndpointUsage, error)
}
