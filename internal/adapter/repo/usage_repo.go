package repo

import (
	"context"
	"encoding/json"
	"time"

	"icona/internal/domain"
	"icona/internal/infra"
	"icona/internal/sqlinline"
)

type UsageRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewUsageRepository(sql infra.SQLExecutor) *UsageRepositoryPG {
	return &UsageRepositoryPG{sql: sql}
}

func (r *UsageRepositoryPG) Record(ctx context.Context, ev domain.UsageEvent) error {
	var props []byte
	if len(ev.Properties) > 0 {
		b, err := json.Marshal(ev.Properties)
		if err != nil {
			return err
		}
		props = b
	}
	_, err := r.sql.Exec(ctx, sqlinline.QInsertUsageEvent,
		ev.AccountID,
		ev.RequestID,
		ev.Endpoint,
		ev.Success,
		ev.InputTokens,
		ev.OutputTokens,
		ev.ImageCount,
		ev.EstimatedCost,
		ev.LatencyMS,
		props,
		ev.CreatedAt,
	)
	return err
}

func (r *UsageRepositoryPG) Summary(ctx context.Context, since time.Time) ([]domain.EndpointUsage, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QUsageSummary, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EndpointUsage
	for rows.Next() {
		var u domain.EndpointUsage
		if err := rows.Scan(&u.Endpoint, &u.Requests, &u.Images, &u.InputTokens, &u.OutputTokens, &u.Cost); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

var _ domain.UsageRepository = (*UsageRepositoryPG)(nil)
