// File: cmd/service/main.go
// @title        User Directory
// @version      1.0
// @description  使用者目錄：以 HTML 表單建立、列出、編輯與刪除使用者
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"os"

	"user-directory/internal/cache"
	"user-directory/internal/config"
	"user-directory/internal/database"
	"user-directory/internal/logging"
	"user-directory/internal/middleware"
	"user-directory/internal/router"
	"user-directory/internal/service"
	"user-directory/internal/store"
	"user-directory/internal/view"
	"user-directory/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	_ "user-directory/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
	logOutput       = os.Stderr
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, logOutput)
	if err != nil {
		return fmt.Errorf("無效的 LOG_LEVEL: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Warn().Err(err).Msg("關閉 Redis 連線失敗")
		}
	}()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	dir := service.NewDirectory(
		store.NewUserStore(db),
		service.NewPoolHasher(wp),
		service.WithCache(rdb, cfg.ListCacheTTL),
		service.WithLogger(logger.With().Str("component", "directory").Logger()),
	)

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("載入模板失敗: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	// 註冊路由並注入 db、cache 與 directory
	router.Setup(e, db, rdb, dir)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info().Str("addr", cfg.ListenAddr).Int("workers", cfg.WorkerCount).Msg("server starting")
	return startServer(e, cfg.ListenAddr)
}

func main() {
	if err := run(); err != nil {
		l := zerolog.New(logOutput).With().Timestamp().Logger()
		l.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}
