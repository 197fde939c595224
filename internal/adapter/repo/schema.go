package repo

import (
	"context"
	"fmt"

	"icona/internal/infra"
	"icona/internal/sqlinline"
)

// Migrate creates the ledger and usage tables when they are missing. Every
// statement is idempotent, so it runs on each API start.
func Migrate(ctx context.Context, sql infra.SQLExecutor) error {
	if _, err := sql.Exec(ctx, sqlinline.QEnsureSchema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
