package domain

import "time"

// Account is the credit-holding profile of an authenticated user.
type Account struct {
	ID               string
	Email            string
	Credits          int
	FreeCreditsUsed  int
	LastFreeCreditAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WeeklyGrantInterval is the minimum spacing between free credit grants.
const WeeklyGrantInterval = 7 * 24 * time.Hour

// EligibleForWeeklyCredit reports whether a free credit can be granted at now.
func (a Account) EligibleForWeeklyCredit(now time.Time) bool {
	if a.LastFreeCreditAt == nil {
		return true
	}
	return now.Sub(*a.LastFreeCreditAt) >= WeeklyGrantInterval
}

// CreditReason labels ledger entries.
type CreditReason string

const (
	CreditReasonSignup     CreditReason = "signup"
	CreditReasonGeneration CreditReason = "generation"
	CreditReasonRefinement CreditReason = "refinement"
	CreditReasonRefund     CreditReason = "refund"
	CreditReasonWeekly     CreditReason = "weekly_free"
	CreditReasonGrant      CreditReason = "grant"
)

// CreditTransaction is one ledger movement; Delta is negative for spends.
type CreditTransaction struct {
	ID        string
	AccountID string
	Delta     int
	Reason    CreditReason
	Reference string
	CreatedAt time.Time
}
