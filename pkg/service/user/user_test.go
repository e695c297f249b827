package user_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/c2ccalc/c2ccalc/internal/fixtures/mocks"
	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	usersvc "github.com/c2ccalc/c2ccalc/pkg/service/user"
	"github.com/c2ccalc/c2ccalc/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*usersvc.Service, *mocks.MockUnitOfWork) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usersvc.New(uow, logger), uow
}

func TestCreateUser(t *testing.T) {
	svc, uow := newService(t)
	uow.Users.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	uow.Users.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	uow.Users.On("Create", mock.Anything, mock.AnythingOfType("*dto.UserCreate")).Return(nil)

	user, err := svc.CreateUser(context.Background(), "alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, utils.CheckPasswordHash("secret123", user.Password))
	uow.Users.AssertExpectations(t)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc, uow := newService(t)
	uow.Users.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	user, err := svc.CreateUser(context.Background(), "alice", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Nil(t, user)
	uow.Users.AssertNotCalled(t, "Create")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, uow := newService(t)
	uow.Users.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	uow.Users.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

	user, err := svc.CreateUser(context.Background(), "alice", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Nil(t, user)
	uow.Users.AssertNotCalled(t, "Create")
}

func TestCreateUserInvalidEmail(t *testing.T) {
	svc, uow := newService(t)
	uow.Users.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	uow.Users.On("ExistsByEmail", mock.Anything, "not-an-email").Return(false, nil)

	user, err := svc.CreateUser(context.Background(), "alice", "not-an-email", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.Nil(t, user)
	uow.Users.AssertNotCalled(t, "Create")
}

func TestGetUser(t *testing.T) {
	svc, uow := newService(t)
	id := uuid.New()
	want := &dto.UserRead{ID: id, Username: "alice"}
	uow.Users.On("Get", mock.Anything, id).Return(want, nil)

	got, err := svc.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetUserRepoError(t *testing.T) {
	svc, uow := newService(t)
	id := uuid.New()
	uow.Users.On("Get", mock.Anything, id).Return(nil, errors.New("connection reset"))

	got, err := svc.GetUser(context.Background(), id)
	assert.Error(t, err)
	assert.Nil(t, got)
}
