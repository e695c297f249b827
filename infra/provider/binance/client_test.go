package binance_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/c2ccalc/c2ccalc/infra/provider/binance"
	"github.com/c2ccalc/c2ccalc/pkg/config"
	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = domain.NewQuoteKey("USDT", "CNY", domain.DirectionSell)

func newClient(url string) *binance.Client {
	return binance.New(&config.Binance{
		ApiUrl:      url,
		Rows:        10,
		HTTPTimeout: 2 * time.Second,
	}, slog.Default())
}

func adsBody(prices ...string) string {
	type adv struct {
		Price string `json:"price"`
	}
	type ad struct {
		Adv        adv            `json:"adv"`
		Advertiser map[string]any `json:"advertiser"`
	}
	ads := make([]ad, 0, len(prices))
	for _, p := range prices {
		ads = append(ads, ad{Adv: adv{Price: p}, Advertiser: map[string]any{"nickName": "seller"}})
	}
	body, _ := json.Marshal(map[string]any{"code": "000000", "data": ads})
	return string(body)
}

func TestFetchBestPrice_ReturnsMaximum(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "USDT", req["asset"])
		assert.Equal(t, "CNY", req["fiat"])
		assert.Equal(t, "SELL", req["tradeType"])
		assert.Equal(t, "tradable", req["filterType"])
		assert.EqualValues(t, 10, req["rows"])
		assert.EqualValues(t, 1, req["page"])

		w.Write([]byte(adsBody("6.95", "7.02", "6.88"))) //nolint:errcheck
	}))
	defer srv.Close()

	price, err := newClient(srv.URL).FetchBestPrice(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, "7.02", price.String())
}

func TestFetchBestPrice_EmptyPage_ZeroSentinel(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"000000","data":[]}`)) //nolint:errcheck
	}))
	defer srv.Close()

	price, err := newClient(srv.URL).FetchBestPrice(context.Background(), testKey)
	require.NoError(t, err, "an empty page is a sentinel, not an error")
	assert.True(t, price.IsZero())
}

func TestFetchBestPrice_NonSuccessCode(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"100001","data":null,"message":"system busy"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).FetchBestPrice(context.Background(), testKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "system busy", "raw envelope carried for diagnostics")
}

func TestFetchBestPrice_NullPayload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"000000","data":null}`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).FetchBestPrice(context.Background(), testKey)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestFetchBestPrice_MalformedEnvelope(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).FetchBestPrice(context.Background(), testKey)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestFetchBestPrice_MalformedPrice_FailsClosed(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(adsBody("7.02", "not-a-price"))) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).FetchBestPrice(context.Background(), testKey)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestFetchBestPrice_HTTPError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).FetchBestPrice(context.Background(), testKey)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestFetchBestPrice_ContextCanceled(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(adsBody("7.02"))) //nolint:errcheck
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newClient(srv.URL).FetchBestPrice(ctx, testKey)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
