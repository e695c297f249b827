package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Binance configures the upstream C2C advertisement search endpoint.
type Binance struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://p2p.binance.com/bapi/c2c/v2/friendly/c2c/adv/search"`
	Rows        int           `envconfig:"ROWS" default:"10"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// QuoteCache holds the policy knobs of the quote cache engine. They are
// policy, not mechanism: call sites must never hardcode these.
type QuoteCache struct {
	FreshnessWindow time.Duration `envconfig:"FRESHNESS_WINDOW" default:"20m"`
	FetchTimeout    time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[c2ccalc]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env        string      `envconfig:"APP_ENV" default:"development"`
	Server     *Server     `envconfig:"SERVER"`
	Log        *Log        `envconfig:"LOG"`
	DB         *DB         `envconfig:"DATABASE"`
	Auth       *Auth       `envconfig:"AUTH"`
	Binance    *Binance    `envconfig:"BINANCE"`
	QuoteCache *QuoteCache `envconfig:"QUOTE_CACHE"`
	RateLimit  *RateLimit  `envconfig:"RATE_LIMIT"`
}
