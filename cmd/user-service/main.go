// File: cmd/user-service/main.go
// @title        Shoplite User Service API
// @version      1.0
// @description  User CRUD 微服務
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"shoplite/internal/bootstrap"
	"shoplite/internal/cache"
	"shoplite/internal/config"
	"shoplite/internal/database"
	appmw "shoplite/internal/middleware"
	"shoplite/internal/router"
	"shoplite/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "shoplite/docs" // swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const defaultPort = 3001

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	seedFn          = store.SeedUsers
	bootstrapRun    = bootstrap.Run
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig(defaultPort)
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	var cch cache.Cache
	if cfg.RedisAddr != "" {
		cch, err = newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %v", err)
		}
		defer cch.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.LogLevel == "debug"
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(appmw.CORS(cfg.CORSOrigins))

	// 等待資料庫就緒：ping → migrate → seed，失敗則重試
	attempt := func(ctx context.Context) error {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		if err := runMigrationsFn(cfg.DatabaseURL, "users"); err != nil {
			return err
		}
		return seedFn(ctx, db)
	}
	bootCfg := bootstrap.Config{
		MaxAttempts:   cfg.MaxRetries,
		RetryInterval: cfg.RetryInterval,
		Report: func(attempt int, err error) {
			e.Logger.Warnf("database not ready (attempt %d/%d): %v", attempt, cfg.MaxRetries, err)
		},
	}
	if err := bootstrapRun(context.Background(), bootCfg, attempt); err != nil {
		// Serve anyway: /health/ready keeps reporting the outage and the
		// orchestrator decides, instead of this process crash-looping.
		e.Logger.Errorf("starting degraded, database unavailable: %v", err)
	}

	router.SetupUsers(e, db, cch)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return startServer(e, fmt.Sprintf(":%d", cfg.Port))
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
