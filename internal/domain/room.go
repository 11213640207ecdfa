package domain

import "time"

// RoomType represents the kind of bookable room
type RoomType string

const (
	RoomTypeMeeting  RoomType = "meeting_room"
	RoomTypePractice RoomType = "practice_room"
)

// Room represents a bookable room. Reference data owned by the portal
// administration; immutable to the reservation core.
type Room struct {
	ID       int64
	Name     string
	Type     RoomType
	Capacity int
	Floor    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidRoomType returns true if t is a known room type
func IsValidRoomType(t RoomType) bool {
	return t == RoomTypeMeeting || t == RoomTypePractice
}
