package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zhangwu-showcase/internal/cache"
	"zhangwu-showcase/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func doPing(t *testing.T, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestPingHandler(t *testing.T) {
	t.Run("no backends", func(t *testing.T) {
		rec := doPing(t, PingHandler(nil, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
	})

	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return errors.New("fail") }}
		rec := doPing(t, PingHandler(db, &cache.FakeCache{}))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"detail":"database unhealthy"}`, rec.Body.String())
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		dbCalled := false
		db := &database.FakeDB{PingFn: func(context.Context) error { dbCalled = true; return nil }}
		cch := &cache.FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("set"))
		}}
		rec := doPing(t, PingHandler(db, cch))
		require.True(t, dbCalled)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("ok", func(t *testing.T) {
		var key string
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		cch := &cache.FakeCache{SetFn: func(_ context.Context, k string, _ any, _ time.Duration) *redis.StatusCmd {
			key = k
			return redis.NewStatusResult("OK", nil)
		}}
		rec := doPing(t, PingHandler(db, cch))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, pingCacheKey, key)
		require.Contains(t, rec.Body.String(), "pong")
	})
}
