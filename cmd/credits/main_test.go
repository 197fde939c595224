package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"icona/internal/adapter/repo"
	"icona/internal/infra/sqltest"
	"icona/internal/middleware"
	"icona/internal/sqlinline"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	var out bytes.Buffer
	if err := run("token", []string{"-sub", "acct-1", "-email", "a@b.c", "-ttl", "1h"}, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	claims, err := middleware.VerifyJWT("cli-secret", strings.TrimSpace(out.String()))
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Subject != "acct-1" || claims.Email != "a@b.c" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestTokenRequiresSecretAndSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if err := run("token", []string{"-sub", "x"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected missing secret error")
	}
	t.Setenv("JWT_SECRET", "s")
	if err := run("token", nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected missing subject error")
	}
}

func TestUnknownCommand(t *testing.T) {
	if err := run("explode", nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGrant(t *testing.T) {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	stub := &sqltest.Stub{QueryRowFn: func(query string, args []any) pgx.Row {
		switch {
		case sqltest.Same(query, sqlinline.QEnsureAccount):
			if args[2] != 0 {
				t.Fatalf("grant must not add signup credits, got %v", args[2])
			}
			return sqltest.Row("acct-1", "", 0, 0, nil, created, created)
		case sqltest.Same(query, sqlinline.QAddCredits):
			if args[1] != 5 || args[3] != "grant" || args[4] != "promo" {
				t.Fatalf("args = %v", args)
			}
			return sqltest.Row(5)
		}
		t.Fatalf("unexpected query %s", sqltest.Marker(query))
		return nil
	}}
	var out bytes.Buffer
	err := runGrant(context.Background(), repo.NewCreditRepository(stub), []string{"-id", "acct-1", "-amount", "5", "-note", "promo"}, &out)
	if err != nil {
		t.Fatalf("runGrant returned error: %v", err)
	}
	if !strings.Contains(out.String(), "balance=5") {
		t.Fatalf("output = %q", out.String())
	}

	if err := runGrant(context.Background(), repo.NewCreditRepository(stub), []string{"-id", "acct-1", "-amount", "0"}, &out); err == nil {
		t.Fatal("expected error for non-positive amount")
	}
}

func TestUsageTable(t *testing.T) {
	stub := &sqltest.Stub{QueryFn: func(query string, args []any) (pgx.Rows, error) {
		return &sqltest.Rows{Records: [][]any{
			{"image", 4, 4, int64(400), int64(0), 0.156},
			{"prompt", 4, 0, int64(8000), int64(1200), 0.0054},
		}}, nil
	}}
	var out bytes.Buffer
	if err := runUsage(context.Background(), repo.NewUsageRepository(stub), []string{"-hours", "12"}, &out); err != nil {
		t.Fatalf("runUsage returned error: %v", err)
	}
	if !strings.Contains(out.String(), "0.1614") {
		t.Fatalf("total missing:\n%s", out.String())
	}
}
