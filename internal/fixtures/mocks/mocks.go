// Package mocks provides testify test doubles for the repository,
// unit-of-work, and provider contracts.
package mocks

import (
	"context"
	"time"

	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	"github.com/c2ccalc/c2ccalc/pkg/provider"
	"github.com/c2ccalc/c2ccalc/pkg/repository"
	quoterepo "github.com/c2ccalc/c2ccalc/pkg/repository/quote"
	recordrepo "github.com/c2ccalc/c2ccalc/pkg/repository/record"
	userrepo "github.com/c2ccalc/c2ccalc/pkg/repository/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockQuoteRepository mocks the quote store contract.
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindFreshest(
	ctx context.Context,
	key domain.QuoteKey,
	notOlderThan time.Duration,
) (*dto.QuoteRead, error) {
	args := m.Called(ctx, key, notOlderThan)
	if q := args.Get(0); q != nil {
		return q.(*dto.QuoteRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteRepository) FindLatest(
	ctx context.Context,
	key domain.QuoteKey,
) (*dto.QuoteRead, error) {
	args := m.Called(ctx, key)
	if q := args.Get(0); q != nil {
		return q.(*dto.QuoteRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteRepository) Append(
	ctx context.Context,
	key domain.QuoteKey,
	price decimal.Decimal,
	observedAt time.Time,
) (*dto.QuoteRead, error) {
	args := m.Called(ctx, key, price, observedAt)
	if q := args.Get(0); q != nil {
		return q.(*dto.QuoteRead), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAdFetcher mocks the upstream price fetcher.
type MockAdFetcher struct {
	mock.Mock
}

func (m *MockAdFetcher) FetchBestPrice(
	ctx context.Context,
	key domain.QuoteKey,
) (decimal.Decimal, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockUserRepository mocks the user repository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, create *dto.UserCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*dto.UserRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*dto.UserRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*dto.UserRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockRecordRepository mocks the calculation record repository.
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, create *dto.RecordCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *MockRecordRepository) Get(ctx context.Context, id uuid.UUID) (*dto.RecordRead, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*dto.RecordRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter recordrepo.ListFilter,
) ([]*dto.RecordRead, error) {
	args := m.Called(ctx, userID, filter)
	if r := args.Get(0); r != nil {
		return r.([]*dto.RecordRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.RecordUpdate,
) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockRecordRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecordRepository) SoftDeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockUnitOfWork mocks the unit of work. Do runs the given function against
// the mock itself so tests can stub the repository accessors.
type MockUnitOfWork struct {
	mock.Mock
	Users   *MockUserRepository
	Records *MockRecordRepository
}

// NewMockUnitOfWork returns a unit of work whose Do callback receives the
// same mock, wired to the embedded repository mocks.
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Users:   &MockUserRepository{},
		Records: &MockRecordRepository{},
	}
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

func (m *MockUnitOfWork) UserRepository() (userrepo.Repository, error) {
	return m.Users, nil
}

func (m *MockUnitOfWork) RecordRepository() (recordrepo.Repository, error) {
	return m.Records, nil
}

var (
	_ repository.UnitOfWork = (*MockUnitOfWork)(nil)
	_ userrepo.Repository   = (*MockUserRepository)(nil)
	_ recordrepo.Repository = (*MockRecordRepository)(nil)
	_ quoterepo.Repository  = (*MockQuoteRepository)(nil)
	_ provider.AdFetcher    = (*MockAdFetcher)(nil)
)
