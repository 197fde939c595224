// Command credits administers the credit ledger: schema setup, manual
// grants, balance lookups, usage summaries and development tokens.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"icona/internal/adapter/repo"
	"icona/internal/domain"
	"icona/internal/infra"
	"icona/internal/middleware"
)

const usageText = `usage: credits <command> [flags]

commands:
  migrate                      create tables when missing
  grant  -id ID -amount N      add credits to an account
  show   -id ID                print balance and recent ledger entries
  usage  [-hours N]            per-endpoint usage and estimated cost
  token  -sub ID [-email E]    sign a development JWT with JWT_SECRET
`

func main() {
	_ = godotenv.Load()
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		exitWithError(err)
	}
}

func run(cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "token":
		return runToken(args, out)
	case "migrate", "grant", "show", "usage":
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usageText)
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "credits").Str("sub", cmd).Logger()
	runner := infra.NewSQLRunner(pool, logger)

	switch cmd {
	case "migrate":
		if err := repo.Migrate(ctx, runner); err != nil {
			return err
		}
		fmt.Fprintln(out, "schema is up to date")
		return nil
	case "grant":
		return runGrant(ctx, repo.NewCreditRepository(runner), args, out)
	case "show":
		return runShow(ctx, repo.NewCreditRepository(runner), args, out)
	default:
		return runUsage(ctx, repo.NewUsageRepository(runner), args, out)
	}
}

func runGrant(ctx context.Context, credits domain.CreditRepository, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("grant", flag.ContinueOnError)
	id := fs.String("id", "", "account id (JWT subject)")
	email := fs.String("email", "", "email used when the account does not exist yet")
	amount := fs.Int("amount", 1, "credits to add")
	note := fs.String("note", "", "ledger reference")
	if err := fs.Parse(args); err != nil {
		return err
	}
	accountID := strings.TrimSpace(*id)
	if accountID == "" {
		return errors.New("-id is required")
	}
	if *amount <= 0 {
		return fmt.Errorf("-amount must be positive, got %d", *amount)
	}
	if _, err := credits.EnsureAccount(ctx, accountID, strings.TrimSpace(*email), 0); err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}
	ref := strings.TrimSpace(*note)
	if ref == "" {
		ref = "cli-" + uuid.NewString()
	}
	balance, err := credits.Add(ctx, accountID, *amount, domain.CreditReasonGrant, ref)
	if err != nil {
		return fmt.Errorf("failed to grant credits: %w", err)
	}
	fmt.Fprintf(out, "Account %s granted %d credit(s); balance=%d reference=%s\n", accountID, *amount, balance, ref)
	return nil
}

func runShow(ctx context.Context, credits domain.CreditRepository, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	id := fs.String("id", "", "account id (JWT subject)")
	limit := fs.Int("limit", 20, "ledger entries to print")
	if err := fs.Parse(args); err != nil {
		return err
	}
	acct, err := credits.GetAccount(ctx, strings.TrimSpace(*id))
	if err != nil {
		return fmt.Errorf("failed to load account %q: %w", *id, err)
	}
	fmt.Fprintf(out, "account=%s email=%s credits=%d free_credits_used=%d\n", acct.ID, acct.Email, acct.Credits, acct.FreeCreditsUsed)
	if acct.LastFreeCreditAt != nil {
		fmt.Fprintf(out, "last_free_credit_at=%s\n", acct.LastFreeCreditAt.UTC().Format(time.RFC3339))
	}
	txs, err := credits.ListTransactions(ctx, acct.ID, *limit)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tDELTA\tREASON\tREFERENCE")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%+d\t%s\t%s\n", tx.CreatedAt.UTC().Format(time.RFC3339), tx.Delta, tx.Reason, tx.Reference)
	}
	return tw.Flush()
}

func runUsage(ctx context.Context, usage domain.UsageRepository, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("usage", flag.ContinueOnError)
	hours := fs.Int("hours", 24, "window size in hours")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *hours <= 0 {
		return fmt.Errorf("-hours must be positive, got %d", *hours)
	}
	since := time.Now().Add(-time.Duration(*hours) * time.Hour).UTC()
	rows, err := usage.Summary(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to load usage: %w", err)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENDPOINT\tREQUESTS\tIMAGES\tIN_TOKENS\tOUT_TOKENS\tCOST_USD")
	var total float64
	for _, r := range rows {
		total += r.Cost
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.4f\n", r.Endpoint, r.Requests, r.Images, r.InputTokens, r.OutputTokens, r.Cost)
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t\t\t%.4f\n", total)
	return tw.Flush()
}

func runToken(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	sub := fs.String("sub", "", "subject (account id)")
	email := fs.String("email", "", "email claim")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if strings.TrimSpace(*sub) == "" {
		return errors.New("-sub is required")
	}
	claims := middleware.NewTokenClaims(strings.TrimSpace(*sub), strings.TrimSpace(*email), time.Now(), *ttl)
	token, err := middleware.SignJWT(secret, claims)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
