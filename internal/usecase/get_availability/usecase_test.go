package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// testNow = 2025-01-10 14:00 — "сегодня" в тестах
var testNow = time.Date(2025, 1, 10, 14, 0, 0, 0, time.Local)

type stubReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (s *stubReservationRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.reservations, nil
}

type stubRoomRepo struct {
	room *domain.Room
	err  error
}

func (s *stubRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.room, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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

func testRoom() *domain.Room {
	return &domain.Room{
		ID:       5,
		Name:     "Переговорная 5",
		Type:     domain.RoomTypeMeeting,
		Capacity: 8,
		Floor:    2,
	}
}

func newTestUseCase(resRepo ReservationRepository, rooms RoomRepository, now time.Time) *UseCase {
	uc := NewUseCase(resRepo, rooms, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_OccupiedAndSelectableCells(t *testing.T) {
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local) // будущая дата
	resRepo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:        7,
				RoomID:    5,
				UserID:    1,
				Date:      date,
				StartTime: mustTime(t, "10:00"),
				EndTime:   mustTime(t, "12:00"),
				Title:     "Планёрка",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(resRepo, &stubRoomRepo{room: testRoom()}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 5, Date: date})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.RoomID)
	assert.Equal(t, "Переговорная 5", resp.RoomName)
	assert.Equal(t, "meeting_room", resp.RoomType)
	assert.Len(t, resp.Cells, 24)

	for hour := 0; hour < 24; hour++ {
		cell := resp.Cells[hour]
		assert.Equal(t, hour, cell.Hour)
		if hour >= 10 && hour < 12 {
			assert.True(t, cell.Occupied, "hour %d", hour)
			require.NotNil(t, cell.ReservationID, "hour %d", hour)
			assert.Equal(t, int64(7), *cell.ReservationID)
			require.NotNil(t, cell.Title, "hour %d", hour)
			assert.Equal(t, "Планёрка", *cell.Title)
			assert.False(t, cell.Selectable, "hour %d", hour)
		} else {
			assert.False(t, cell.Occupied, "hour %d", hour)
			assert.Nil(t, cell.ReservationID, "hour %d", hour)
			// будущая дата: свободные часы доступны для выбора
			assert.True(t, cell.Selectable, "hour %d", hour)
		}
	}

	// DayProgress только для сегодняшней даты
	assert.Nil(t, resp.DayProgress)
}

func TestExecute_PartialHourOccupiesBothCells(t *testing.T) {
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	resRepo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:        3,
				RoomID:    5,
				Date:      date,
				StartTime: mustTime(t, "10:30"),
				EndTime:   mustTime(t, "11:30"),
				Title:     "Созвон",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(resRepo, &stubRoomRepo{room: testRoom()}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 5, Date: date})
	require.NoError(t, err)

	assert.True(t, resp.Cells[10].Occupied)
	assert.True(t, resp.Cells[11].Occupied)
	assert.False(t, resp.Cells[9].Occupied)
	assert.False(t, resp.Cells[12].Occupied)
}

func TestExecute_TodaySelectability(t *testing.T) {
	today := time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)
	uc := newTestUseCase(&stubReservationRepo{}, &stubRoomRepo{room: testRoom()}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 5, Date: today})
	require.NoError(t, err)

	// now = 14:00 — прошедшие часы недоступны, текущий и будущие доступны
	assert.False(t, resp.Cells[13].Selectable)
	assert.True(t, resp.Cells[14].Selectable)
	assert.True(t, resp.Cells[23].Selectable)

	require.NotNil(t, resp.DayProgress)
	assert.InDelta(t, 14.0*60/1440, *resp.DayProgress, 1e-9)
}

func TestExecute_PastDateAllUnselectable(t *testing.T) {
	past := time.Date(2025, 1, 9, 0, 0, 0, 0, time.Local)
	uc := newTestUseCase(&stubReservationRepo{}, &stubRoomRepo{room: testRoom()}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 5, Date: past})
	require.NoError(t, err)

	for _, cell := range resp.Cells {
		assert.False(t, cell.Selectable, "hour %d", cell.Hour)
	}
	assert.Nil(t, resp.DayProgress)
}

func TestExecute_CanceledReservationsIgnored(t *testing.T) {
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	resRepo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:         4,
				RoomID:     5,
				Date:       date,
				StartTime:  mustTime(t, "09:00"),
				EndTime:    mustTime(t, "10:00"),
				Title:      "Отменённая встреча",
				Status:     domain.StatusCanceled,
				CanceledAt: ptr.Ptr(testNow),
			},
		},
	}
	uc := newTestUseCase(resRepo, &stubRoomRepo{room: testRoom()}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 5, Date: date})
	require.NoError(t, err)

	assert.False(t, resp.Cells[9].Occupied)
	assert.True(t, resp.Cells[9].Selectable)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(&stubReservationRepo{}, &stubRoomRepo{err: roomRepo.ErrRoomNotFound}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 99, Date: testNow})
	require.ErrorIs(t, err, ErrRoomNotFound)
	assert.Nil(t, resp)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&stubReservationRepo{}, &stubRoomRepo{room: testRoom()}, testNow)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero room id", req: &Request{RoomID: 0, Date: testNow}},
		{name: "negative room id", req: &Request{RoomID: -1, Date: testNow}},
		{name: "zero date", req: &Request{RoomID: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}
