package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestExtractMarker(t *testing.T) {
	q := "\n  --sql 0a2b1725-0df2-4bdd-acfe-0ef5f72fb95d\nselect 1;\n"
	marker, body, err := extractMarker(q)
	if err != nil {
		t.Fatalf("extractMarker returned error: %v", err)
	}
	if marker != "0a2b1725-0df2-4bdd-acfe-0ef5f72fb95d" || body != "select 1;" {
		t.Fatalf("marker=%q body=%q", marker, body)
	}

	for _, bad := range []string{"", "select 1", "--sql nope\nselect 1", "-- 0a2b1725-0df2-4bdd-acfe-0ef5f72fb95d\nselect 1"} {
		if _, _, err := extractMarker(bad); !errors.Is(err, ErrMissingMarker) {
			t.Errorf("extractMarker(%q) err = %v", bad, err)
		}
	}
}

func TestRunnerRejectsUnmarkedQueriesBeforeTouchingPool(t *testing.T) {
	r := NewSQLRunner(nil, zerolog.Nop())
	if _, err := r.Exec(context.Background(), "delete from accounts"); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("Exec err = %v", err)
	}
	if err := r.QueryRow(context.Background(), "select 1").Scan(); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("QueryRow err = %v", err)
	}
	if _, err := r.Query(context.Background(), "select 1"); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("Query err = %v", err)
	}
}
