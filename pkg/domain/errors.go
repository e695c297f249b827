package domain

import "errors"

var (
	// ErrUserUnauthorized is returned when credentials or tokens do not
	// resolve to a valid user.
	ErrUserUnauthorized = errors.New("user unauthorized")

	// ErrUserExists is returned when registering a username or email that
	// is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrRecordNotFound is returned when a calculation record does not
	// exist or does not belong to the requesting user.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidTradeDirection is returned for a trade direction that is
	// neither BUY nor SELL.
	ErrInvalidTradeDirection = errors.New("invalid trade direction")

	// ErrUpstreamUnavailable covers failed, timed out, or malformed
	// responses from the upstream advertisement search endpoint.
	ErrUpstreamUnavailable = errors.New("upstream quote source unavailable")

	// ErrQuoteStorageUnavailable covers read or write failures of the
	// quote store. It is never masked by the stale fallback.
	ErrQuoteStorageUnavailable = errors.New("quote storage unavailable")

	// ErrNoQuoteAvailable is returned when the upstream fails and no
	// historical quote exists for the key.
	ErrNoQuoteAvailable = errors.New("no quote available")
)
