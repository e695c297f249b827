// Package binance implements the upstream AdFetcher against the Binance
// C2C advertisement search endpoint.
package binance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"context"

	"github.com/c2ccalc/c2ccalc/pkg/config"
	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/provider"
	"github.com/shopspring/decimal"
)

// successCode is the status literal the envelope carries on success.
const successCode = "000000"

// Client issues one POST per FetchBestPrice call. No retries; retry policy
// belongs to the caller.
type Client struct {
	apiURL     string
	rows       int
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg *config.Binance, logger *slog.Logger) *Client {
	return &Client{
		apiURL: cfg.ApiUrl,
		rows:   cfg.Rows,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// searchRequest is the fixed request body of the adv/search endpoint.
type searchRequest struct {
	Fiat                      string   `json:"fiat"`
	Page                      int      `json:"page"`
	Rows                      int      `json:"rows"`
	TradeType                 string   `json:"tradeType"`
	Asset                     string   `json:"asset"`
	Countries                 []string `json:"countries"`
	ProMerchantAds            bool     `json:"proMerchantAds"`
	ShieldMerchantAds         bool     `json:"shieldMerchantAds"`
	FilterType                string   `json:"filterType"`
	Periods                   []int    `json:"periods"`
	AdditionalKycVerifyFilter int      `json:"additionalKycVerifyFilter"`
	PublisherType             *string  `json:"publisherType"`
	PayTypes                  []string `json:"payTypes"`
	Classifies                []string `json:"classifies"`
	TradedWith                bool     `json:"tradedWith"`
	Followed                  bool     `json:"followed"`
}

// searchResponse is the envelope. Data stays raw so a missing/null payload
// can be told apart from an empty page.
type searchResponse struct {
	Code string          `json:"code"`
	Data json.RawMessage `json:"data"`
}

type searchAd struct {
	Adv struct {
		Price string `json:"price"`
	} `json:"adv"`
	Advertiser json.RawMessage `json:"advertiser"`
}

// FetchBestPrice requests one bounded page of tradable advertisements for
// the key and reduces it to the maximum advertised price. The reduction is
// always a maximum, regardless of the direction label: for SELL the user
// wants the highest price a counterparty will pay, and the endpoint orders
// BUY pages the same way. An empty page yields decimal zero with no error;
// callers must treat zero as no liquidity, not as a valid quote.
func (c *Client) FetchBestPrice(
	ctx context.Context,
	key domain.QuoteKey,
) (decimal.Decimal, error) {
	log := c.logger.With("context", "FetchBestPrice", "key", key.String())

	payload := searchRequest{
		Fiat:              key.Fiat,
		Page:              1,
		Rows:              c.rows,
		TradeType:         string(key.Direction),
		Asset:             key.Asset,
		Countries:         []string{},
		ShieldMerchantAds: true,
		FilterType:        "tradable",
		Periods:           []int{},
		PayTypes:          []string{},
		Classifies:        []string{"mass", "profession", "fiat_trade"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: request failed: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to read response: %v", domain.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf(
			"%w: status %d: %s", domain.ErrUpstreamUnavailable, resp.StatusCode, raw,
		)
	}

	// Fail closed on any envelope mismatch, carrying the raw envelope for
	// diagnostics.
	var env searchResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		return decimal.Zero, fmt.Errorf(
			"%w: undecodable envelope: %v: %s", domain.ErrUpstreamUnavailable, err, raw,
		)
	}
	if env.Code != successCode {
		return decimal.Zero, fmt.Errorf(
			"%w: code %q: %s", domain.ErrUpstreamUnavailable, env.Code, raw,
		)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return decimal.Zero, fmt.Errorf(
			"%w: missing listing payload: %s", domain.ErrUpstreamUnavailable, raw,
		)
	}

	var ads []searchAd
	if err := json.Unmarshal(env.Data, &ads); err != nil {
		return decimal.Zero, fmt.Errorf(
			"%w: undecodable listing payload: %v: %s", domain.ErrUpstreamUnavailable, err, raw,
		)
	}
	if len(ads) == 0 {
		log.Warn("no tradable advertisements for key, returning zero sentinel")
		return decimal.Zero, nil
	}

	best := decimal.Zero
	for _, ad := range ads {
		price, err := decimal.NewFromString(ad.Adv.Price)
		if err != nil {
			return decimal.Zero, fmt.Errorf(
				"%w: malformed advertised price %q: %v", domain.ErrUpstreamUnavailable, ad.Adv.Price, err,
			)
		}
		if price.GreaterThan(best) {
			best = price
		}
	}

	log.Debug("reduced advertisement page to best price",
		"ads", len(ads),
		"best_price", best,
	)
	return best, nil
}

var _ provider.AdFetcher = (*Client)(nil)
