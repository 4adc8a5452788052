package home

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler(t *testing.T) {
	e := echo.New()
	var bodies []string
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/home/stats", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, StatsHandler()(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}
	require.JSONEq(t, `{"forest_coverage":34.5,"sandy_land_fixed":200,"industry_output":56.8,"tourist_visits":12000}`, bodies[0])
	require.Equal(t, bodies[0], bodies[1])
	require.Equal(t, bodies[1], bodies[2])
}
