package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"split-app-go/internal/config"
	"split-app-go/internal/db"
	expensesdomain "split-app-go/internal/domain/expenses"
	groupsdomain "split-app-go/internal/domain/groups"
	"split-app-go/internal/metrics"
	"split-app-go/internal/repository/inmemory"
	expensesrepo "split-app-go/internal/repository/postgres/expenses"
	groupsrepo "split-app-go/internal/repository/postgres/groups"
	"split-app-go/internal/transport/httpserver"
	"split-app-go/internal/transport/httpserver/handler"
	"split-app-go/pkg/logger"
)

const seedTimeout = 30 * time.Second

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(cfg.DB.GetDSN(), log); err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.SeedSampleData {
		ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
		err := db.Seed(ctx, dbConn, log)
		cancel()
		if err != nil {
			closeDB(dbConn)
			return nil, err
		}
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		closeDB(dbConn)
		return nil, fmt.Errorf("db handle: %w", err)
	}

	groupsRepo := groupsrepo.NewPostgres(dbConn)
	expensesRepo := expensesrepo.NewPostgres(dbConn)

	groupsService := groupsdomain.NewService(groupsRepo, groupsdomain.WithCache(inmemory.NewGroupCache(), cfg.GroupCacheTTL))
	expensesService := expensesdomain.NewService(expensesRepo, groupsService, cfg.CurrencySymbol)

	log.Info("app: initializing router")
	m := metrics.New()
	handlers := handler.New(sqlDB, groupsService, expensesService, m, log)
	router := httpserver.NewRouter(cfg, handlers, m)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(gormDB *gorm.DB) {
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
