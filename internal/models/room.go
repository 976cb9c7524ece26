package models

import (
	"time"
)

// BuzzState represents the state of a room's buzzing window
type BuzzState string

const (
	// BuzzStateIdle indicates the window is clear and open for the next claim
	BuzzStateIdle BuzzState = "idle"

	// BuzzStateClaimed indicates a player holds the first-buzzer slot and is
	// awaiting resolution by the host
	BuzzStateClaimed BuzzState = "claimed"
)

// FirstQuestionID is the sentinel question a freshly created room points at
const FirstQuestionID = "1"

// Room represents one live trivia game session owned by a host
type Room struct {
	// ID is the unique identifier for the room
	ID string

	// RoomNumber is the human-friendly number players type in to join
	RoomNumber string

	// RoomPassword is the second half of the join credentials
	RoomPassword string

	// Host is the player who created the room; their exit destroys it
	Host *Player

	// CurrentQuestionID is the catalog question currently shown to the room
	CurrentQuestionID string

	// BuzzingOpen is true while a claimed buzz is awaiting resolution
	BuzzingOpen bool

	// FirstBuzzer is the ID of the player holding the buzzer slot, empty when clear
	FirstBuzzer string

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room was last updated
	UpdatedAt time.Time
}

// HostID returns the ID of the room's host, or empty if none is set
func (r *Room) HostID() string {
	if r.Host == nil {
		return ""
	}
	return r.Host.ID
}

// BuzzState derives the window state from the first-buzzer slot. The claim and
// settle transactions write FirstBuzzer and BuzzingOpen together, so the pair
// is never observable split.
func (r *Room) BuzzState() BuzzState {
	if r.FirstBuzzer != "" {
		return BuzzStateClaimed
	}
	return BuzzStateIdle
}
