// Package user provides business logic for user registration and lookup.
package user

import (
	"context"
	"log/slog"

	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	"github.com/c2ccalc/c2ccalc/pkg/repository"
	"github.com/google/uuid"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateUser registers a new user. Username and email must be unique;
// the password is validated and hashed by the domain constructor.
func (s *Service) CreateUser(
	ctx context.Context,
	username, email, password string,
) (u *domain.User, err error) {
	log := s.logger.With("context", "CreateUser", "username", username)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if taken, err := repo.ExistsByUsername(ctx, username); err != nil {
			return err
		} else if taken {
			return domain.ErrUserExists
		}
		if taken, err := repo.ExistsByEmail(ctx, email); err != nil {
			return err
		} else if taken {
			return domain.ErrUserExists
		}
		u, err = domain.NewUser(username, email, password)
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.UserCreate{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
		})
	})
	if err != nil {
		log.Warn("user creation failed", "error", err)
		u = nil
		return
	}
	log.Info("user created", "user_id", u.ID)
	return
}

// GetUser retrieves a user by ID, or nil if not found.
func (s *Service) GetUser(
	ctx context.Context,
	id uuid.UUID,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		u = nil
	}
	return
}
