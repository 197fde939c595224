package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"icona/internal/infra/sqltest"
	"icona/internal/sqlinline"
)

func TestMigrate(t *testing.T) {
	stub := &sqltest.Stub{}
	if err := Migrate(context.Background(), stub); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	calls := stub.Calls()
	if len(calls) != 1 || calls[0].Marker != sqltest.Marker(sqlinline.QEnsureSchema) || len(calls[0].Args) != 0 {
		t.Fatalf("calls = %+v", calls)
	}

	boom := errors.New("permission denied")
	failing := &sqltest.Stub{ExecFn: func(string, []any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, boom
	}}
	if err := Migrate(context.Background(), failing); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}
