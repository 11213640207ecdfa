package update_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/scheduling"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type stubRepo struct {
	byID      map[int64]*domain.Reservation
	byRoom    []*domain.Reservation
	updateErr error
	updated   bool
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := s.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	// Копия, чтобы тесты не зависели от мутаций usecase'а
	cp := *res
	return &cp, nil
}

func (s *stubRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Reservation, error) {
	return s.byRoom, nil
}

func (s *stubRepo) UpdateRange(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString, _ string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = true
	return nil
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

var (
	testNow  = time.Date(2025, 1, 10, 14, 0, 0, 0, time.Local)
	testDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
)

func ownReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        1,
		RoomID:    5,
		UserID:    100,
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		Title:     "планёрка",
		Status:    domain.StatusConfirmed,
	}
}

func otherReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        2,
		RoomID:    5,
		UserID:    200,
		Date:      testDate,
		StartTime: "12:00",
		EndTime:   "13:00",
		Status:    domain.StatusConfirmed,
	}
}

func newTestUseCase(repo *stubRepo) *UseCase {
	uc := NewUseCase(repo, &stubTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func request(start, end types.TimeString) *Request {
	return &Request{
		ReservationID: 1,
		UserID:        100,
		Date:          testDate,
		StartTime:     start,
		EndTime:       end,
	}
}

// Перенос в пределах собственного прежнего интервала не конфликтует
// сам с собой
func TestExecute_SelfExclusion(t *testing.T) {
	own := ownReservation()
	repo := &stubRepo{
		byID:   map[int64]*domain.Reservation{1: own},
		byRoom: []*domain.Reservation{own, otherReservation()},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), request("10:30", "11:30"))
	require.NoError(t, err)
	assert.True(t, repo.updated)
	assert.Equal(t, types.TimeString("10:30"), resp.StartTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

// Перенос, пересекающийся с чужим бронированием, отклоняется
func TestExecute_ConflictWithOther(t *testing.T) {
	own := ownReservation()
	repo := &stubRepo{
		byID:   map[int64]*domain.Reservation{1: own},
		byRoom: []*domain.Reservation{own, otherReservation()},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), request("12:30", "13:30"))
	require.ErrorIs(t, err, scheduling.ErrConflict)

	var conflictErr *scheduling.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, int64(2), conflictErr.ExistingID)
	assert.False(t, repo.updated)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.Reservation{}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), request("10:00", "11:00"))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_NotOwner(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.Reservation{1: ownReservation()}}
	uc := newTestUseCase(repo)

	req := request("10:00", "11:00")
	req.UserID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.False(t, repo.updated)
}

// Владелец проверяется раньше валидации интервала
func TestExecute_OwnershipCheckedBeforeRange(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.Reservation{1: ownReservation()}}
	uc := newTestUseCase(repo)

	req := request("09:00", "08:00")
	req.UserID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestExecute_InvalidRange(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.Reservation{1: ownReservation()}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), request("09:00", "08:00"))
	assert.ErrorIs(t, err, scheduling.ErrInvalidRange)
	assert.False(t, repo.updated)
}

func TestExecute_PastStart(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.Reservation{1: ownReservation()}}
	uc := newTestUseCase(repo)

	req := request("13:00", "14:00")
	req.Date = time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local) // сегодня, раньше now

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, scheduling.ErrPastStart)
}

func TestExecute_CanceledReservation(t *testing.T) {
	canceled := ownReservation()
	canceled.Status = domain.StatusCanceled
	repo := &stubRepo{byID: map[int64]*domain.Reservation{1: canceled}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), request("10:00", "11:00"))
	assert.ErrorIs(t, err, ErrAlreadyCanceled)
}

func TestExecute_ConcurrentSlotTaken(t *testing.T) {
	own := ownReservation()
	repo := &stubRepo{
		byID:      map[int64]*domain.Reservation{1: own},
		byRoom:    []*domain.Reservation{own},
		updateErr: reservationRepo.ErrSlotTaken,
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), request("15:00", "16:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_KeepsTitleWhenNil(t *testing.T) {
	own := ownReservation()
	repo := &stubRepo{
		byID:   map[int64]*domain.Reservation{1: own},
		byRoom: []*domain.Reservation{own},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), request("15:00", "16:00"))
	require.NoError(t, err)
	assert.Equal(t, "планёрка", resp.Title)
}
