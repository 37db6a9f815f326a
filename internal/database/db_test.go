package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRows struct{}

func (fakeRows) Close()                                       {}
func (fakeRows) Err() error                                   { return nil }
func (fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (fakeRows) Next() bool                                   { return false }
func (fakeRows) Scan(dest ...any) error                       { return nil }
func (fakeRows) Values() ([]any, error)                       { return nil, nil }
func (fakeRows) RawValues() [][]byte                          { return nil }
func (fakeRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDBPanicsWhenUnset(t *testing.T) {
	db := &FakeDB{}
	require.PanicsWithValue(t, "unexpected Exec", func() { db.Exec(context.Background(), "") })
	require.PanicsWithValue(t, "unexpected Query", func() { db.Query(context.Background(), "") })
	require.PanicsWithValue(t, "unexpected QueryRow", func() { db.QueryRow(context.Background(), "") })
	require.PanicsWithValue(t, "unexpected Ping", func() { db.Ping(context.Background()) })
	require.NotPanics(t, db.Close)
}

func TestFakeDBDelegates(t *testing.T) {
	var calls []string
	db := &FakeDB{
		ExecFn: func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
			calls = append(calls, "exec")
			return pgconn.NewCommandTag("DELETE 1"), errors.New("e")
		},
		QueryFn: func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
			calls = append(calls, "query")
			return fakeRows{}, nil
		},
		QueryRowFn: func(ctx context.Context, s string, args ...any) pgx.Row {
			calls = append(calls, "row")
			return fakeRows{}
		},
		PingFn:  func(ctx context.Context) error { calls = append(calls, "ping"); return nil },
		CloseFn: func() { calls = append(calls, "close") },
	}

	tag, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")
	require.NoError(t, db.Ping(context.Background()))
	db.Close()

	require.Equal(t, []string{"exec", "query", "row", "ping", "close"}, calls)
}
