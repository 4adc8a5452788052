package home

import (
	"net/http"

	"zhangwu-showcase/internal/content"

	"github.com/labstack/echo/v4"
)

// StatsHandler 首页统计数据
// @Summary     首页统计
// @Description 森林覆盖率、治沙面积、产业产值与游客人次
// @Tags        home
// @Produce     json
// @Success     200 {object} dto.HomeStatsResponse
// @Router      /home/stats [get]
func StatsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, content.HomeStats())
	}
}
