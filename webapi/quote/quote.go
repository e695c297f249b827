package quote

import (
	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	quotesvc "github.com/c2ccalc/c2ccalc/pkg/quote"
	"github.com/c2ccalc/c2ccalc/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the public price endpoints.
func Routes(app *fiber.App, engine *quotesvc.Engine) {
	group := app.Group("/c2c")
	group.Get("/price", GetPrice(engine))
	group.Get("/force-refresh", ForceRefresh(engine))
}

// GetPrice returns the best P2P price for the key, served from cache when
// fresh enough.
// @Summary Get P2P price
// @Description Get the best P2P price for an asset/fiat pair, cached within the freshness window
// @Tags c2c
// @Accept json
// @Produce json
// @Param asset query string false "Crypto asset" default(USDT)
// @Param fiat query string false "Fiat currency" default(CNY)
// @Param tradeType query string false "Trade direction (BUY or SELL)" default(SELL)
// @Success 200 {object} PriceResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Failure 503 {object} common.ProblemDetails
// @Router /c2c/price [get]
func GetPrice(engine *quotesvc.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := keyFromQuery(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid trade direction", err)
		}
		quote, err := engine.GetPrice(c.Context(), key)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get price", err)
		}
		return c.JSON(toResponse(quote))
	}
}

// ForceRefresh bypasses the cache and fetches a fresh price. A failed
// refresh fails loudly; there is no stale fallback on this path.
// @Summary Force refresh P2P price
// @Description Fetch a fresh price from upstream, bypassing the cache
// @Tags c2c
// @Accept json
// @Produce json
// @Param asset query string false "Crypto asset" default(USDT)
// @Param fiat query string false "Fiat currency" default(CNY)
// @Param tradeType query string false "Trade direction (BUY or SELL)" default(SELL)
// @Success 200 {object} PriceResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /c2c/force-refresh [get]
func ForceRefresh(engine *quotesvc.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := keyFromQuery(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid trade direction", err)
		}
		quote, err := engine.ForceRefresh(c.Context(), key)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to refresh price", err)
		}
		return c.JSON(toResponse(quote))
	}
}

func keyFromQuery(c *fiber.Ctx) (domain.QuoteKey, error) {
	direction, err := domain.ParseTradeDirection(c.Query("tradeType", string(domain.DirectionSell)))
	if err != nil {
		return domain.QuoteKey{}, err
	}
	return domain.NewQuoteKey(
		c.Query("asset", "USDT"),
		c.Query("fiat", "CNY"),
		direction,
	), nil
}

func toResponse(quote *dto.QuoteRead) PriceResponse {
	return PriceResponse{
		Price:     quote.Price,
		UpdatedAt: quote.ObservedAt,
	}
}
