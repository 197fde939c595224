// Package sqltest provides an in-memory infra.SQLExecutor for tests.
package sqltest

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Call is one recorded statement.
type Call struct {
	Marker string
	Query  string
	Args   []any
}

// Stub routes statements to handler funcs. Unset handlers return
// pgx.ErrNoRows for rows and a zero tag for Exec.
type Stub struct {
	ExecFn     func(query string, args []any) (pgconn.CommandTag, error)
	QueryRowFn func(query string, args []any) pgx.Row
	QueryFn    func(query string, args []any) (pgx.Rows, error)

	mu    sync.Mutex
	calls []Call
}

func (s *Stub) record(query string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Marker: Marker(query), Query: query, Args: args})
}

func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Stub) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.record(query, args)
	if s.ExecFn == nil {
		return pgconn.CommandTag{}, nil
	}
	return s.ExecFn(query, args)
}

func (s *Stub) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	s.record(query, args)
	if s.QueryRowFn == nil {
		return Row()
	}
	return s.QueryRowFn(query, args)
}

func (s *Stub) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	s.record(query, args)
	if s.QueryFn == nil {
		return &Rows{}, nil
	}
	return s.QueryFn(query, args)
}

// Marker returns the uuid of a "--sql <uuid>" first line.
func Marker(query string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	return strings.TrimSpace(strings.TrimPrefix(first, "--sql"))
}

// Same reports whether two queries carry the same marker.
func Same(a, b string) bool {
	return Marker(a) == Marker(b)
}

type row struct {
	values []any
	err    error
}

// Row returns a pgx.Row scanning values in order. With no values it
// reports pgx.ErrNoRows.
func Row(values ...any) pgx.Row {
	if len(values) == 0 {
		return row{err: pgx.ErrNoRows}
	}
	return row{values: values}
}

// ErrRow returns a pgx.Row failing with err.
func ErrRow(err error) pgx.Row {
	return row{err: err}
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

// Rows is a pgx.Rows over fixed records.
type Rows struct {
	Records [][]any
	Error   error

	pos    int
	closed bool
}

func (r *Rows) Close()                                       { r.closed = true }
func (r *Rows) Err() error                                   { return r.Error }
func (r *Rows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *Rows) RawValues() [][]byte                          { return nil }
func (r *Rows) Conn() *pgx.Conn                              { return nil }

func (r *Rows) Next() bool {
	if r.closed || r.pos >= len(r.Records) {
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.pos == 0 || r.pos > len(r.Records) {
		return fmt.Errorf("sqltest: scan without current row")
	}
	return assign(dest, r.Records[r.pos-1])
}

func (r *Rows) Values() ([]any, error) {
	if r.pos == 0 || r.pos > len(r.Records) {
		return nil, fmt.Errorf("sqltest: no current row")
	}
	return r.Records[r.pos-1], nil
}

func assign(dest, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("sqltest: scan %d columns into %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d)
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("sqltest: destination %d is not a pointer", i)
		}
		elem := target.Elem()
		if values[i] == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(elem.Type()):
			elem.Set(v)
		case elem.Kind() == reflect.Pointer && v.Type().AssignableTo(elem.Type().Elem()):
			p := reflect.New(elem.Type().Elem())
			p.Elem().Set(v)
			elem.Set(p)
		case v.Type().ConvertibleTo(elem.Type()):
			elem.Set(v.Convert(elem.Type()))
		default:
			return fmt.Errorf("sqltest: cannot scan %T into %s", values[i], elem.Type())
		}
	}
	return nil
}
