package main

import (
	"fmt"
	"log/slog"

	"github.com/c2ccalc/c2ccalc/infra/initializer"
	"github.com/c2ccalc/c2ccalc/pkg/app"
	"github.com/c2ccalc/c2ccalc/pkg/config"
	"github.com/c2ccalc/c2ccalc/webapi"
	log "github.com/charmbracelet/log"
)

// @title C2C Calculator API
// @version 1.0.0
// @description P2P crypto/fiat price calculator API
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	logger := slog.Default()

	a := app.New(*deps, cfg)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	return fiberApp.Listen(addr)
}
