package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"icona/internal/adapter/repo"
	"icona/internal/domain"
	"icona/internal/infra/sqltest"
	"icona/internal/middleware"
	"icona/internal/sqlinline"
)

func TestCreditsGetCreatesAccount(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	rec := httptest.NewRecorder()
	env.app.CreditsGet(rec, request(t, http.MethodGet, "/v1/credits", "acct-1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[creditsResponse](t, rec)
	if resp.Credits != 1 || !resp.WeeklyEligible || resp.NextWeeklyAt != nil {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(resp.Transactions) != 1 || resp.Transactions[0].Reason != domain.CreditReasonSignup {
		t.Fatalf("transactions = %+v", resp.Transactions)
	}
}

func TestCreditsWeekly(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	rec := httptest.NewRecorder()
	env.app.CreditsWeekly(rec, request(t, http.MethodPost, "/v1/credits/weekly", "acct-1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if got := decodeBody[map[string]int](t, rec)["credits"]; got != 2 {
		t.Fatalf("credits = %d, want 2", got)
	}

	rec = httptest.NewRecorder()
	env.app.CreditsWeekly(rec, request(t, http.MethodPost, "/v1/credits/weekly", "acct-1", nil))
	if rec.Code != http.StatusConflict || errorCode(t, rec) != "not_eligible" {
		t.Fatalf("second claim status = %d body=%s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	env.app.CreditsGet(rec, request(t, http.MethodGet, "/v1/credits", "acct-1", nil))
	resp := decodeBody[creditsResponse](t, rec)
	if resp.WeeklyEligible || resp.NextWeeklyAt == nil {
		t.Fatalf("expected next weekly time, got %+v", resp)
	}
	if d := resp.NextWeeklyAt.Sub(*resp.LastFreeCreditAt); d != domain.WeeklyGrantInterval {
		t.Fatalf("next weekly offset = %s", d)
	}
}

// The postgres repository behind the handler, driven through the SQL stub.
func TestCreditsGetWithPostgresRepository(t *testing.T) {
	created := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	lastFree := created.Add(24 * time.Hour)
	stub := &sqltest.Stub{
		QueryRowFn: func(query string, args []any) pgx.Row {
			if !sqltest.Same(query, sqlinline.QEnsureAccount) {
				t.Fatalf("unexpected query %s", sqltest.Marker(query))
			}
			if args[0] != "acct-9" || args[1] != "ada@example.com" {
				t.Fatalf("args = %v", args)
			}
			return sqltest.Row("acct-9", "ada@example.com", 3, 1, &lastFree, created, created)
		},
		QueryFn: func(query string, args []any) (pgx.Rows, error) {
			if !sqltest.Same(query, sqlinline.QListCreditTransactions) {
				t.Fatalf("unexpected query %s", sqltest.Marker(query))
			}
			return &sqltest.Rows{Records: [][]any{
				{"tx-2", "acct-9", 1, "weekly_free", "", lastFree},
				{"tx-1", "acct-9", 2, "signup", "", created},
			}}, nil
		},
	}
	app := NewApp(Deps{
		Pipeline: newTestEnv(t, envOptions{}).app.Pipeline,
		Credits:  repo.NewCreditRepository(stub),
		Logger:   zerolog.Nop(),
	})
	app.now = func() time.Time { return lastFree.Add(48 * time.Hour) }

	req := request(t, http.MethodGet, "/v1/credits", "acct-9", nil)
	req = req.WithContext(middleware.ContextWithUserEmail(req.Context(), "ada@example.com"))
	rec := httptest.NewRecorder()
	app.CreditsGet(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[creditsResponse](t, rec)
	if resp.Credits != 3 || resp.WeeklyEligible || len(resp.Transactions) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Transactions[0].Reason != domain.CreditReasonWeekly {
		t.Fatalf("transactions = %+v", resp.Transactions)
	}
}
