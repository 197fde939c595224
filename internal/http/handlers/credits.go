package handlers

import (
	"net/http"
	"time"

	"icona/internal/domain"
	"icona/internal/middleware"
)

const recentTransactions = 10

type transactionView struct {
	ID        string              `json:"id"`
	Delta     int                 `json:"delta"`
	Reason    domain.CreditReason `json:"reason"`
	Reference string              `json:"reference,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

type creditsResponse struct {
	Credits          int               `json:"credits"`
	FreeCreditsUsed  int               `json:"free_credits_used"`
	LastFreeCreditAt *time.Time        `json:"last_free_credit_at"`
	WeeklyEligible   bool              `json:"weekly_eligible"`
	NextWeeklyAt     *time.Time        `json:"next_weekly_at,omitempty"`
	Transactions     []transactionView `json:"transactions"`
}

func (a *App) account(r *http.Request) (*domain.Account, error) {
	ctx := r.Context()
	return a.Credits.EnsureAccount(ctx, a.currentUserID(r), middleware.UserEmailFromContext(ctx), a.signupCredits)
}

func (a *App) CreditsGet(w http.ResponseWriter, r *http.Request) {
	if a.currentUserID(r) == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	acct, err := a.account(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	txs, err := a.Credits.ListTransactions(r.Context(), acct.ID, recentTransactions)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	views := make([]transactionView, 0, len(txs))
	for _, tx := range txs {
		views = append(views, transactionView{
			ID:        tx.ID,
			Delta:     tx.Delta,
			Reason:    tx.Reason,
			Reference: tx.Reference,
			CreatedAt: tx.CreatedAt,
		})
	}
	resp := creditsResponse{
		Credits:          acct.Credits,
		FreeCreditsUsed:  acct.FreeCreditsUsed,
		LastFreeCreditAt: acct.LastFreeCreditAt,
		WeeklyEligible:   acct.EligibleForWeeklyCredit(a.now()),
		Transactions:     views,
	}
	if !resp.WeeklyEligible {
		next := acct.LastFreeCreditAt.Add(domain.WeeklyGrantInterval)
		resp.NextWeeklyAt = &next
	}
	a.json(w, http.StatusOK, resp)
}

// CreditsWeekly claims the free weekly credit.
func (a *App) CreditsWeekly(w http.ResponseWriter, r *http.Request) {
	if a.currentUserID(r) == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	acct, err := a.account(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	balance, err := a.Credits.GrantWeekly(r.Context(), acct.ID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.Logger.Info().Str("user_id", acct.ID).Int("credits", balance).Msg("weekly credit granted")
	a.json(w, http.StatusOK, map[string]int{"credits": balance})
}
