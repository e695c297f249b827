// Package initializer builds the application dependencies from config:
// logger, database, repositories, and the upstream price client.
package initializer

import (
	"github.com/c2ccalc/c2ccalc/infra"
	"github.com/c2ccalc/c2ccalc/infra/provider/binance"
	infrarepo "github.com/c2ccalc/c2ccalc/infra/repository"
	infraquote "github.com/c2ccalc/c2ccalc/infra/repository/quote"
	infrarecord "github.com/c2ccalc/c2ccalc/infra/repository/record"
	infrauser "github.com/c2ccalc/c2ccalc/infra/repository/user"
	"github.com/c2ccalc/c2ccalc/pkg/app"
	"github.com/c2ccalc/c2ccalc/pkg/config"
)

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}

	if err := db.AutoMigrate(
		&infrauser.User{},
		&infrarecord.Record{},
		&infraquote.Quote{},
	); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		return nil, err
	}

	deps.Uow = infrarepo.NewUoW(db)
	deps.QuoteStore = infraquote.New(db)
	deps.AdFetcher = binance.New(cfg.Binance, logger)

	return deps, nil
}
