package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-ReservationService/internal/scheduling"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Стабы коллабораторов

type stubReservationRepo struct {
	existing  []*domain.Reservation
	createErr error
	created   *domain.Reservation
}

func (s *stubReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	res.ID = 42
	res.CreatedAt = time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)
	res.UpdatedAt = res.CreatedAt
	s.created = res
	return res, nil
}

func (s *stubReservationRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Reservation, error) {
	return s.existing, nil
}

type stubRoomRepo struct {
	err error
}

func (s *stubRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Room{ID: id, Name: "Переговорная 5", Type: domain.RoomTypeMeeting}, nil
}

type stubStaffClient struct {
	err error
}

func (s *stubStaffClient) GetEmployeeWithGracefulDegradation(_ context.Context, id int64) (*staffservice.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &staffservice.Employee{ID: id, Name: "Иван Петров"}, nil
}

type stubTxManager struct{}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *stubReservationRepo, rooms *stubRoomRepo, staff *stubStaffClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, rooms, staff, &stubTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    100,
		RoomID:    5,
		Date:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
		StartTime: "10:30",
		EndTime:   "11:30",
		Title:     "планёрка",
	}
}

var testNow = time.Date(2025, 1, 10, 14, 0, 0, 0, time.Local)

func TestExecute_Success(t *testing.T) {
	repo := &stubReservationRepo{}
	uc := newTestUseCase(repo, &stubRoomRepo{}, &stubStaffClient{}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, resp.UserName)
	assert.Equal(t, "Иван Петров", *resp.UserName)
	require.NotNil(t, repo.created)
	assert.Equal(t, types.TimeString("10:30"), repo.created.StartTime)
}

func TestExecute_RoomNotFound(t *testing.T) {
	repo := &stubReservationRepo{}
	uc := newTestUseCase(repo, &stubRoomRepo{err: roomRepo.ErrRoomNotFound}, &stubStaffClient{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Nil(t, repo.created)
}

func TestExecute_InvalidRange(t *testing.T) {
	repo := &stubReservationRepo{}
	uc := newTestUseCase(repo, &stubRoomRepo{}, &stubStaffClient{}, testNow)

	req := validRequest()
	req.StartTime = "09:00"
	req.EndTime = "08:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, scheduling.ErrInvalidRange)
	assert.Nil(t, repo.created)
}

func TestExecute_PastStart(t *testing.T) {
	repo := &stubReservationRepo{}
	uc := newTestUseCase(repo, &stubRoomRepo{}, &stubStaffClient{}, testNow)

	tests := []struct {
		name  string
		date  time.Time
		start types.TimeString
		end   types.TimeString
	}{
		{
			name:  "today earlier than now",
			date:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
			start: "13:00",
			end:   "14:00",
		},
		{
			name:  "yesterday",
			date:  time.Date(2025, 1, 9, 0, 0, 0, 0, time.Local),
			start: "15:00",
			end:   "16:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Date = tt.date
			req.StartTime = tt.start
			req.EndTime = tt.end

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, scheduling.ErrPastStart)
		})
	}
	assert.Nil(t, repo.created)
}

func TestExecute_Conflict(t *testing.T) {
	repo := &stubReservationRepo{
		existing: []*domain.Reservation{
			{
				ID:        7,
				RoomID:    5,
				StartTime: "10:00",
				EndTime:   "11:00",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, &stubRoomRepo{}, &stubStaffClient{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, scheduling.ErrConflict)

	var conflictErr *scheduling.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, int64(7), conflictErr.ExistingID)
	assert.Nil(t, repo.created)
}

func TestExecute_BoundaryTouchIsNotConflict(t *testing.T) {
	repo := &stubReservationRepo{
		existing: []*domain.Reservation{
			{
				ID:        7,
				RoomID:    5,
				StartTime: "10:00",
				EndTime:   "11:00",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, &stubRoomRepo{}, &stubStaffClient{}, testNow)

	req := validRequest()
	req.StartTime = "11:00"
	req.EndTime = "12:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

// Гонка двух клиентов за один слот: локальная проверка прошла,
// но хранилище уже приняло конкурентную запись
func TestExecute_ConcurrentSlotTaken(t *testing.T) {
	repo := &stubReservationRepo{createErr: reservationRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &stubRoomRepo{}, &stubStaffClient{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_StaffDirectoryDegraded(t *testing.T) {
	repo := &stubReservationRepo{}
	uc := newTestUseCase(repo, &stubRoomRepo{}, &stubStaffClient{err: staffservice.ErrServiceDegraded}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.UserName)
}

func TestExecute_InvalidInput(t *testing.T) {
	repo := &stubReservationRepo{}
	uc := newTestUseCase(repo, &stubRoomRepo{}, &stubStaffClient{}, testNow)

	req := validRequest()
	req.Title = "   "

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
