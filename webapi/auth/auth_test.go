package auth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/c2ccalc/c2ccalc/internal/fixtures/mocks"
	"github.com/c2ccalc/c2ccalc/pkg/config"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	authsvc "github.com/c2ccalc/c2ccalc/pkg/service/auth"
	"github.com/c2ccalc/c2ccalc/pkg/utils"
	"github.com/c2ccalc/c2ccalc/webapi/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *mocks.MockUnitOfWork) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := authsvc.New(uow, &config.Jwt{Secret: "test-secret", Expiry: time.Hour}, logger)
	app := fiber.New()
	auth.Routes(app, svc)
	return app, uow
}

func TestLoginReturnsToken(t *testing.T) {
	app, uow := newTestApp(t)
	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	uow.Users.On("GetByUsername", mock.Anything, "alice").
		Return(&dto.UserRead{
			ID:             uuid.New(),
			Username:       "alice",
			Email:          "alice@example.com",
			HashedPassword: hashed,
		}, nil)

	req := httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"identity":"alice","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Data.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	app, uow := newTestApp(t)
	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	uow.Users.On("GetByUsername", mock.Anything, "alice").
		Return(&dto.UserRead{ID: uuid.New(), Username: "alice", HashedPassword: hashed}, nil)

	req := httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"identity":"alice","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"identity":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
