package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"icona/internal/catalog"
	"icona/internal/domain"
	"icona/internal/middleware"
	"icona/internal/pipeline"
	"icona/internal/sanitize"
	"icona/internal/usage"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

func pngBase64() string { return base64.StdEncoding.EncodeToString(pngBytes) }

type fakeText struct {
	mu    sync.Mutex
	calls int
	reply string
	err   error
}

func (f *fakeText) GenerateText(context.Context, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.reply, f.err
}

type fakeImages struct {
	calls   int
	prompts []string
	err     error
}

func (f *fakeImages) EditImage(_ context.Context, src domain.Image, prompt string) (domain.Image, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return domain.Image{}, f.err
	}
	return domain.Image{Data: []byte("rendered"), MIMEType: "image/png"}, nil
}

type fakeSuggest struct {
	items []string
	err   error
}

func (f fakeSuggest) Suggestions(context.Context, string) ([]string, error) { return f.items, f.err }

type fakeCaptioner struct {
	caption string
	err     error
}

func (f fakeCaptioner) Caption(context.Context, domain.Image) (string, error) { return f.caption, f.err }

// fakeCredits is an in-memory ledger.
type fakeCredits struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	ledger   []domain.CreditTransaction
	deductFn func() error
}

func newFakeCredits() *fakeCredits {
	return &fakeCredits{accounts: map[string]*domain.Account{}}
}

func (f *fakeCredits) EnsureAccount(_ context.Context, id, email string, signup int) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	a := &domain.Account{ID: id, Email: email, Credits: signup}
	f.accounts[id] = a
	if signup > 0 {
		f.ledger = append(f.ledger, domain.CreditTransaction{AccountID: id, Delta: signup, Reason: domain.CreditReasonSignup})
	}
	cp := *a
	return &cp, nil
}

func (f *fakeCredits) GetAccount(_ context.Context, id string) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeCredits) Deduct(_ context.Context, id string, amount int, reason domain.CreditReason, ref string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deductFn != nil {
		if err := f.deductFn(); err != nil {
			return 0, err
		}
	}
	a, ok := f.accounts[id]
	if !ok || a.Credits < amount {
		return 0, domain.ErrInsufficientCredits
	}
	a.Credits -= amount
	f.ledger = append(f.ledger, domain.CreditTransaction{AccountID: id, Delta: -amount, Reason: reason, Reference: ref})
	return a.Credits, nil
}

func (f *fakeCredits) Add(_ context.Context, id string, amount int, reason domain.CreditReason, ref string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	a.Credits += amount
	f.ledger = append(f.ledger, domain.CreditTransaction{AccountID: id, Delta: amount, Reason: reason, Reference: ref})
	return a.Credits, nil
}

func (f *fakeCredits) GrantWeekly(_ context.Context, id string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	now := time.Now()
	if !a.EligibleForWeeklyCredit(now) {
		return 0, domain.ErrNotEligible
	}
	a.Credits++
	a.FreeCreditsUsed++
	a.LastFreeCreditAt = &now
	f.ledger = append(f.ledger, domain.CreditTransaction{AccountID: id, Delta: 1, Reason: domain.CreditReasonWeekly})
	return a.Credits, nil
}

func (f *fakeCredits) ListTransactions(_ context.Context, id string, limit int) ([]domain.CreditTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.CreditTransaction
	for i := len(f.ledger) - 1; i >= 0 && len(out) < limit; i-- {
		if f.ledger[i].AccountID == id {
			out = append(out, f.ledger[i])
		}
	}
	return out, nil
}

func (f *fakeCredits) reasons(id string) []domain.CreditReason {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.CreditReason
	for _, tx := range f.ledger {
		if tx.AccountID == id {
			out = append(out, tx.Reason)
		}
	}
	return out
}

type fakeUsage struct {
	mu      sync.Mutex
	events  []domain.UsageEvent
	summary []domain.EndpointUsage
	since   time.Time
}

func (f *fakeUsage) Record(_ context.Context, ev domain.UsageEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeUsage) Summary(_ context.Context, since time.Time) ([]domain.EndpointUsage, error) {
	f.since = since
	return f.summary, nil
}

func (f *fakeUsage) endpoints() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, ev := range f.events {
		out = append(out, ev.Endpoint)
	}
	return out
}

type testEnv struct {
	app     *App
	text    *fakeText
	images  *fakeImages
	credits *fakeCredits
	usage   *fakeUsage
}

type envOptions struct {
	policy  sanitize.Policy
	catalog *catalog.Registry
	suggest pipeline.SuggestionSource
	deps    func(*Deps)
}

func newTestEnv(t *testing.T, o envOptions) *testEnv {
	t.Helper()
	env := &testEnv{
		text:    &fakeText{reply: "A cinematic portrait prompt."},
		images:  &fakeImages{},
		credits: newFakeCredits(),
		usage:   &fakeUsage{},
	}
	reg := o.catalog
	if reg == nil {
		reg = catalog.Default()
	}
	suggest := o.suggest
	if suggest == nil {
		suggest = fakeSuggest{items: []string{"warmer light", "add rain", "closer crop", "extra"}}
	}
	p, err := pipeline.New(pipeline.Options{
		Catalog:         reg,
		Text:            env.text,
		Images:          env.images,
		Suggestions:     suggest,
		InjectionPolicy: o.policy,
		Logger:          zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	deps := Deps{
		Pipeline:       p,
		Credits:        env.credits,
		Usage:          usage.NewTracker(env.usage, usage.DefaultPricing, zerolog.Nop()),
		UsageStats:     env.usage,
		Captioner:      fakeCaptioner{caption: "Back in '55 #oldhollywood"},
		Logger:         zerolog.Nop(),
		AdminIDs:       []string{"admin-1"},
		SignupCredits:  1,
		GenerationCost: 1,
		MaxUploadBytes: 1 << 10,
	}
	if o.deps != nil {
		o.deps(&deps)
	}
	env.app = NewApp(deps)
	return env
}

// request builds a request carrying an authenticated user and a request id.
func request(t *testing.T, method, target, userID string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	ctx := middleware.ContextWithUserID(req.Context(), userID)
	var rid string
	middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		rid = middleware.RequestIDFromContext(r.Context())
		ctx = r.Context()
	})).ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))
	if rid == "" {
		t.Fatal("request id not assigned")
	}
	return req.WithContext(ctx)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[errorBody](t, rec).Error.Code
}
