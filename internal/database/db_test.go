package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// scanRow 只回填第一个目标字段
type scanRow struct{ name string }

func (r scanRow) Scan(dest ...any) error {
	*dest[0].(*string) = r.name
	return nil
}

func TestFakeDB(t *testing.T) {
	ctx := context.Background()

	db := &FakeDB{}
	require.Panics(t, func() { db.QueryRow(ctx, "") })
	require.Panics(t, func() { db.Ping(ctx) })
	require.NotPanics(t, db.Close)

	var gotSQL string
	var gotArgs []any
	closed := false
	db = &FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			gotSQL, gotArgs = sql, args
			return scanRow{name: "admin"}
		},
		PingFn:  func(context.Context) error { return errors.New("down") },
		CloseFn: func() { closed = true },
	}

	var name string
	require.NoError(t, db.QueryRow(ctx, "SELECT name FROM users WHERE name = $1", "admin").Scan(&name))
	require.Equal(t, "admin", name)
	require.Equal(t, "SELECT name FROM users WHERE name = $1", gotSQL)
	require.Equal(t, []any{"admin"}, gotArgs)
	require.EqualError(t, db.Ping(ctx), "down")
	db.Close()
	require.True(t, closed)
}
