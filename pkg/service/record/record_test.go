package record_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/c2ccalc/c2ccalc/internal/fixtures/mocks"
	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	recordrepo "github.com/c2ccalc/c2ccalc/pkg/repository/record"
	recordsvc "github.com/c2ccalc/c2ccalc/pkg/service/record"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*recordsvc.Service, *mocks.MockUnitOfWork) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return recordsvc.New(uow, logger), uow
}

func TestCreateRecordComputesTotal(t *testing.T) {
	svc, uow := newService(t)
	userID := uuid.New()
	var created *dto.RecordCreate
	uow.Records.On("Create", mock.Anything, mock.AnythingOfType("*dto.RecordCreate")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*dto.RecordCreate)
		}).
		Return(nil)

	record, err := svc.CreateRecord(
		context.Background(),
		userID,
		"sell 1000 usdt",
		decimal.RequireFromString("1000"),
		decimal.RequireFromString("7.02"),
	)
	require.NoError(t, err)
	assert.True(t, record.Total.Equal(decimal.RequireFromString("7020")))
	require.NotNil(t, created)
	assert.Equal(t, userID, created.UserID)
	assert.True(t, created.Total.Equal(decimal.RequireFromString("7020")))
}

func TestCreateRecordRejectsNonPositiveAmount(t *testing.T) {
	svc, uow := newService(t)

	record, err := svc.CreateRecord(
		context.Background(),
		uuid.New(),
		"bad",
		decimal.Zero,
		decimal.RequireFromString("7.02"),
	)
	assert.ErrorIs(t, err, domain.ErrRecordAmountNotPositive)
	assert.Nil(t, record)
	uow.Records.AssertNotCalled(t, "Create")
}

func TestListRecordsFavoritesOnly(t *testing.T) {
	svc, uow := newService(t)
	userID := uuid.New()
	want := []*dto.RecordRead{{ID: uuid.New(), UserID: userID, Favorite: true}}
	uow.Records.On("ListByUser", mock.Anything, userID, recordrepo.ListFilter{FavoritesOnly: true}).
		Return(want, nil)

	got, err := svc.ListRecords(context.Background(), userID, true)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestToggleFavorite(t *testing.T) {
	svc, uow := newService(t)
	userID := uuid.New()
	recordID := uuid.New()
	uow.Records.On("Get", mock.Anything, recordID).
		Return(&dto.RecordRead{ID: recordID, UserID: userID, Favorite: false}, nil)
	uow.Records.On("Update", mock.Anything, recordID, mock.MatchedBy(func(u *dto.RecordUpdate) bool {
		return u.Favorite != nil && *u.Favorite && u.Name == nil
	})).Return(nil)

	record, err := svc.ToggleFavorite(context.Background(), userID, recordID)
	require.NoError(t, err)
	assert.True(t, record.Favorite)
	uow.Records.AssertExpectations(t)
}

func TestToggleFavoriteForeignRecord(t *testing.T) {
	svc, uow := newService(t)
	recordID := uuid.New()
	uow.Records.On("Get", mock.Anything, recordID).
		Return(&dto.RecordRead{ID: recordID, UserID: uuid.New()}, nil)

	record, err := svc.ToggleFavorite(context.Background(), uuid.New(), recordID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Nil(t, record)
	uow.Records.AssertNotCalled(t, "Update")
}

func TestRenameRecord(t *testing.T) {
	svc, uow := newService(t)
	userID := uuid.New()
	recordID := uuid.New()
	uow.Records.On("Get", mock.Anything, recordID).
		Return(&dto.RecordRead{ID: recordID, UserID: userID, Name: "old"}, nil)
	uow.Records.On("Update", mock.Anything, recordID, mock.MatchedBy(func(u *dto.RecordUpdate) bool {
		return u.Name != nil && *u.Name == "new name" && u.Favorite == nil
	})).Return(nil)

	record, err := svc.RenameRecord(context.Background(), userID, recordID, "new name")
	require.NoError(t, err)
	assert.Equal(t, "new name", record.Name)
}

func TestDeleteRecordMissing(t *testing.T) {
	svc, uow := newService(t)
	recordID := uuid.New()
	uow.Records.On("Get", mock.Anything, recordID).Return(nil, nil)

	err := svc.DeleteRecord(context.Background(), uuid.New(), recordID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	uow.Records.AssertNotCalled(t, "SoftDelete")
}

func TestDeleteRecord(t *testing.T) {
	svc, uow := newService(t)
	userID := uuid.New()
	recordID := uuid.New()
	uow.Records.On("Get", mock.Anything, recordID).
		Return(&dto.RecordRead{ID: recordID, UserID: userID}, nil)
	uow.Records.On("SoftDelete", mock.Anything, recordID).Return(nil)

	require.NoError(t, svc.DeleteRecord(context.Background(), userID, recordID))
	uow.Records.AssertExpectations(t)
}

func TestClearRecords(t *testing.T) {
	svc, uow := newService(t)
	userID := uuid.New()
	uow.Records.On("SoftDeleteAllByUser", mock.Anything, userID).Return(nil)

	require.NoError(t, svc.ClearRecords(context.Background(), userID))
	uow.Records.AssertExpectations(t)
}
