// Package common provides the shared response envelope, RFC 9457 problem
// details, request binding, and domain-error-to-status mapping for the web
// API.
package common

import (
	"errors"

	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. The variadic
// tail accepts an optional string detail and/or int status override; when
// no status is given it is derived from the error via ErrorToStatusCode.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, details ...any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   fiber.StatusInternalServerError,
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Status = ErrorToStatusCode(err)
		pd.Detail = err.Error()
	}
	for _, d := range details {
		switch v := d.(type) {
		case string:
			pd.Detail = v
		case int:
			pd.Status = v
		}
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(pd.Status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidTradeDirection):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUserUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserExists):
		return fiber.StatusConflict
	// NoQuoteAvailable wraps the upstream error, so it must be checked
	// first to keep the two distinguishable at the transport layer.
	case errors.Is(err, domain.ErrNoQuoteAvailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrQuoteStorageUnavailable):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns the populated struct, or writes an
// error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		werr := ProblemDetailsJSON(c, "Invalid request body", nil, err.Error(), fiber.StatusBadRequest)
		if werr != nil {
			return nil, werr
		}
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		werr := ProblemDetailsJSON(c, "Validation failed", nil, err.Error(), fiber.StatusBadRequest)
		if werr != nil {
			return nil, werr
		}
		return nil, err
	}
	return &input, nil
}
