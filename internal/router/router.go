// File: internal/router/router.go
package router

import (
	"zhangwu-showcase/internal/cache"
	"zhangwu-showcase/internal/database"
	"zhangwu-showcase/internal/handler"
	"zhangwu-showcase/internal/handler/auth"
	"zhangwu-showcase/internal/handler/home"
	"zhangwu-showcase/internal/handler/industry"
	"zhangwu-showcase/internal/handler/tourism"
	"zhangwu-showcase/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	_ "zhangwu-showcase/docs" // 引入 swag 生成的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// Deps 路由所需的依赖，DB 与 Cache 可为 nil
type Deps struct {
	Verifier service.CredentialVerifier
	Issuer   service.TokenIssuer
	DB       database.DB
	Cache    cache.Cache
	Logger   *zap.Logger
}

// Setup 注册所有路由
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	// 健康检查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	api.POST("/login", auth.LoginHandler(d.Verifier, d.Issuer, d.Logger))

	// 展示数据
	api.GET("/home/stats", home.StatsHandler())
	api.GET("/industry/compare", industry.CompareHandler())
	api.GET("/tourism/route", tourism.RouteHandler())

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
