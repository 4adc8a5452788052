// @title        Zhangwu Showcase API
// @version      1.0
// @description  章武县展示平台后端 API 文件
// @host         localhost:8000
// @BasePath     /api
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zhangwu-showcase/internal/cache"
	"zhangwu-showcase/internal/config"
	"zhangwu-showcase/internal/database"
	"zhangwu-showcase/internal/logger"
	"zhangwu-showcase/internal/middleware"
	"zhangwu-showcase/internal/router"
	"zhangwu-showcase/internal/service"
	"zhangwu-showcase/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	notifyContext   = signal.NotifyContext
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	exitFunc        = os.Exit
)

func newServer(d router.Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(d.Logger)
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomw.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, d)
	return e
}

func run() error {
	cfgPath := os.Getenv("CONFIG_FILE")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	lg, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	deps := router.Deps{
		Verifier: service.StaticVerifier{
			Username:    cfg.Auth.Username,
			Password:    cfg.Auth.Password,
			DisplayName: cfg.Auth.DisplayName,
		},
		Issuer: service.StaticTokenIssuer{Token: cfg.Auth.StaticToken},
		Logger: lg,
	}

	// 设置 DATABASE_URL 时改由 users 数据表校验账号
	if cfg.Database.URL != "" {
		db, err := newPgxPool(context.Background(), cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("DB 连接失败: %w", err)
		}
		defer db.Close()

		if err := runMigrationsFn(cfg.Database.URL); err != nil {
			return fmt.Errorf("Migration 执行失败: %w", err)
		}
		deps.DB = db
		deps.Verifier = service.UserStoreVerifier{DB: db}
		lg.Info("using database credential store")
	}

	if cfg.Redis.Addr != "" {
		rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("Redis 连接失败: %w", err)
		}
		defer rdb.Close()
		deps.Cache = rdb
		lg.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	}

	if cfg.Auth.JWTSecret != "" {
		deps.Issuer = service.JWTIssuer{Secret: cfg.Auth.JWTSecret, TTL: cfg.Auth.TokenTTL}
		lg.Info("issuing signed tokens", zap.Duration("ttl", cfg.Auth.TokenTTL))
	}

	e := newServer(deps)

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := cfg.Addr()
	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, addr) }()
	lg.Info("server listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("服务启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("关闭服务失败: %w", err)
	}
	lg.Info("server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
