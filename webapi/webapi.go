// Package webapi builds the Fiber application: middleware, health check,
// and all route groups.
package webapi

import (
	"github.com/c2ccalc/c2ccalc/pkg/app"
	"github.com/c2ccalc/c2ccalc/webapi/auth"
	"github.com/c2ccalc/c2ccalc/webapi/common"
	"github.com/c2ccalc/c2ccalc/webapi/quote"
	"github.com/c2ccalc/c2ccalc/webapi/record"
	"github.com/c2ccalc/c2ccalc/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp constructs the Fiber app with middleware and routes mounted.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "c2ccalc",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return common.ProblemDetailsJSON(c, fe.Message, nil, fe.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
				return forwarded
			}
			return c.IP()
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "ok", nil)
	})

	quote.Routes(fiberApp, a.QuoteEngine)
	auth.Routes(fiberApp, a.AuthService)
	user.Routes(fiberApp, a.UserService, a.Config.Auth.Jwt)
	record.Routes(fiberApp, a.RecordService, a.AuthService, a.Config.Auth.Jwt)

	return fiberApp
}
