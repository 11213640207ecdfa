package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/service/rooms/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type stubRoomRepo struct {
	rooms    []*domain.Room
	getErr   error
	listErr  error
	lastType *domain.RoomType
}

func (s *stubRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, r := range s.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func (s *stubRoomRepo) List(_ context.Context, roomType *domain.RoomType) ([]*domain.Room, error) {
	s.lastType = roomType
	if s.listErr != nil {
		return nil, s.listErr
	}
	if roomType == nil {
		return s.rooms, nil
	}
	var filtered []*domain.Room
	for _, r := range s.rooms {
		if r.Type == *roomType {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRooms() []*domain.Room {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	return []*domain.Room{
		{ID: 1, Name: "Переговорная 1", Type: domain.RoomTypeMeeting, Capacity: 8, Floor: 1, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Репетиционная 2", Type: domain.RoomTypePractice, Capacity: 4, Floor: 2, CreatedAt: now, UpdatedAt: now},
	}
}

func TestGetByID_Success(t *testing.T) {
	svc := NewService(&stubRoomRepo{rooms: testRooms()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Переговорная 1", resp.Name)
	assert.Equal(t, "meeting_room", resp.Type)
	assert.Equal(t, 8, resp.Capacity)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&stubRoomRepo{rooms: testRooms()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrRoomNotFound)
	assert.Nil(t, resp)
}

func TestList_All(t *testing.T) {
	repo := &stubRoomRepo{rooms: testRooms()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRoomsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 2)
	assert.Nil(t, repo.lastType)
}

func TestList_FilterByType(t *testing.T) {
	repo := &stubRoomRepo{rooms: testRooms()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRoomsRequest{Type: ptr.Ptr("practice_room")})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "Репетиционная 2", resp.Rooms[0].Name)

	require.NotNil(t, repo.lastType)
	assert.Equal(t, domain.RoomTypePractice, *repo.lastType)
}

func TestList_InvalidType(t *testing.T) {
	svc := NewService(&stubRoomRepo{rooms: testRooms()}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRoomsRequest{Type: ptr.Ptr("ballroom")})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}
