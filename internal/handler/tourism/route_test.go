package tourism

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"zhangwu-showcase/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRouteHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tourism/route", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, RouteHandler()(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var stops []dto.RouteStop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stops))
	require.Equal(t, []dto.RouteStop{
		{Title: "集结", Desc: "治沙学校"},
		{Title: "第一站", Desc: "董福财陈列馆"},
		{Title: "第二站", Desc: "万亩松林"},
		{Title: "体验", Desc: "有机农产采摘"},
		{Title: "终点", Desc: "硅砂产业园"},
	}, stops)
}
