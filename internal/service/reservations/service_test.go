package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type stubReservationRepo struct {
	byID           map[int64]*domain.Reservation
	byDate         []*domain.Reservation
	byUser         []*domain.Reservation
	canceledIDs    []int64
	getByDateErr   error
	getByUserErr   error
	cancelErr      error
	lastUserFilter domain.UserReservationsFilter
}

func (s *stubReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (s *stubReservationRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Reservation, error) {
	if s.getByDateErr != nil {
		return nil, s.getByDateErr
	}
	return s.byDate, nil
}

func (s *stubReservationRepo) GetByUserWithFilter(_ context.Context, filter domain.UserReservationsFilter) ([]*domain.Reservation, error) {
	s.lastUserFilter = filter
	if s.getByUserErr != nil {
		return nil, s.getByUserErr
	}
	return s.byUser, nil
}

func (s *stubReservationRepo) Cancel(_ context.Context, id int64) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.canceledIDs = append(s.canceledIDs, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testReservation(t *testing.T) *domain.Reservation {
	t.Helper()
	return &domain.Reservation{
		ID:        10,
		RoomID:    5,
		UserID:    1,
		Date:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "12:00"),
		Title:     "Планёрка",
		Status:    domain.StatusConfirmed,
		UserName:  ptr.Ptr("Иван Петров"),
	}
}

func TestGetByID_Success(t *testing.T) {
	repo := &stubReservationRepo{byID: map[int64]*domain.Reservation{10: testReservation(t)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2025-02-01", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "12:00", resp.EndTime)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.UserName)
	assert.Equal(t, "Иван Петров", *resp.UserName)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &stubReservationRepo{byID: map[int64]*domain.Reservation{}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 99, 1)
	require.ErrorIs(t, err, ErrReservationNotFound)
	assert.Nil(t, resp)
}

func TestGetByID_AccessDenied(t *testing.T) {
	repo := &stubReservationRepo{byID: map[int64]*domain.Reservation{10: testReservation(t)}}
	svc := NewService(repo, nopLogger{})

	// Бронирование принадлежит user=1, запрашивает user=2
	resp, err := svc.GetByID(context.Background(), 10, 2)
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, resp)
}

func TestGetUserReservations_StatusFilter(t *testing.T) {
	repo := &stubReservationRepo{byUser: []*domain.Reservation{testReservation(t)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 1,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)

	require.NotNil(t, repo.lastUserFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastUserFilter.Status)
}

func TestGetUserReservations_InvalidStatus(t *testing.T) {
	repo := &stubReservationRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 1,
		Status: ptr.Ptr("pending"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestGetUserReservations_InvalidUserID(t *testing.T) {
	svc := NewService(&stubReservationRepo{}, nopLogger{})

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestGetRoomReservations_Success(t *testing.T) {
	repo := &stubReservationRepo{byDate: []*domain.Reservation{testReservation(t)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetRoomReservations(context.Background(), &models.GetRoomReservationsRequest{
		RoomID: 5,
		Date:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(10), resp.Reservations[0].ID)
}

func TestGetRoomReservations_InvalidInput(t *testing.T) {
	svc := NewService(&stubReservationRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.GetRoomReservationsRequest
	}{
		{name: "zero room id", req: &models.GetRoomReservationsRequest{Date: time.Now()}},
		{name: "zero date", req: &models.GetRoomReservationsRequest{RoomID: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.GetRoomReservations(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestCancel_Success(t *testing.T) {
	repo := &stubReservationRepo{byID: map[int64]*domain.Reservation{10: testReservation(t)}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, repo.canceledIDs)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &stubReservationRepo{byID: map[int64]*domain.Reservation{}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 99, &models.CancelReservationRequest{UserID: 1})
	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &stubReservationRepo{byID: map[int64]*domain.Reservation{10: testReservation(t)}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: 2})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.canceledIDs)
}

func TestCancel_AlreadyCanceledIsNoOp(t *testing.T) {
	canceled := testReservation(t)
	canceled.Status = domain.StatusCanceled
	canceled.CanceledAt = ptr.Ptr(time.Now())

	repo := &stubReservationRepo{byID: map[int64]*domain.Reservation{10: canceled}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: 1})
	require.NoError(t, err)

	// Повторная отмена не трогает хранилище
	assert.Empty(t, repo.canceledIDs)
}

func TestCancel_OwnershipCheckedBeforeStatus(t *testing.T) {
	// Даже для уже отменённого бронирования чужой пользователь получает access denied
	canceled := testReservation(t)
	canceled.Status = domain.StatusCanceled

	repo := &stubReservationRepo{byID: map[int64]*domain.Reservation{10: canceled}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: 2})
	require.ErrorIs(t, err, ErrAccessDenied)
}
