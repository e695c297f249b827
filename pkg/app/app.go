// Package app wires repositories, providers, and services into a single
// application container handed to the web layer.
package app

import (
	"log/slog"

	"github.com/c2ccalc/c2ccalc/pkg/config"
	"github.com/c2ccalc/c2ccalc/pkg/provider"
	"github.com/c2ccalc/c2ccalc/pkg/quote"
	"github.com/c2ccalc/c2ccalc/pkg/repository"
	quoterepo "github.com/c2ccalc/c2ccalc/pkg/repository/quote"
	authsvc "github.com/c2ccalc/c2ccalc/pkg/service/auth"
	recordsvc "github.com/c2ccalc/c2ccalc/pkg/service/record"
	usersvc "github.com/c2ccalc/c2ccalc/pkg/service/user"
)

// Deps holds the infrastructure dependencies the services are built on.
type Deps struct {
	Uow        repository.UnitOfWork
	QuoteStore quoterepo.Repository
	AdFetcher  provider.AdFetcher
	Logger     *slog.Logger
}

// App aggregates the configured services.
type App struct {
	Deps
	Config        *config.App
	AuthService   *authsvc.Service
	UserService   *usersvc.Service
	RecordService *recordsvc.Service
	QuoteEngine   *quote.Engine
}

func New(deps Deps, cfg *config.App) *App {
	return &App{
		Deps:          deps,
		Config:        cfg,
		AuthService:   authsvc.New(deps.Uow, cfg.Auth.Jwt, deps.Logger),
		UserService:   usersvc.New(deps.Uow, deps.Logger),
		RecordService: recordsvc.New(deps.Uow, deps.Logger),
		QuoteEngine:   quote.NewEngine(deps.QuoteStore, deps.AdFetcher, cfg.QuoteCache, deps.Logger),
	}
}
