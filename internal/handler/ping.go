// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"zhangwu-showcase/internal/cache"
	"zhangwu-showcase/internal/database"
	"zhangwu-showcase/internal/dto"

	"github.com/labstack/echo/v4"
)

const pingCacheKey = "health:ping"

// PingHandler 健康检查
// db 或 rdb 为 nil 表示未启用该后端，直接跳过
// @Summary     Health Check
// @Description 返回 pong，并检查已启用的数据库与缓存连接
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "database unhealthy"})
			}
		}
		if rdb != nil {
			if err := rdb.Set(ctx, pingCacheKey, "pong", 10*time.Second).Err(); err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, dto.PingResponse{Message: "pong"})
	}
}
