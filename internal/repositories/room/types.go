package room

import "github.com/alimhan/buzzroom/internal/models"

type CreateRoomInput struct {
	Room *models.Room
}

type CreateRoomOutput struct {
	RoomID string
}

type GetRoomInput struct {
	RoomID string
}

type FindRoomByCredentialsInput struct {
	RoomNumber   string
	RoomPassword string
}

type DeleteRoomInput struct {
	RoomID string
}

type UpsertPlayerInput struct {
	RoomID string
	Player *models.Player
}

type DeletePlayerInput struct {
	RoomID   string
	PlayerID string
}

type ListPlayersInput struct {
	RoomID string
}

type ClaimFirstBuzzerInput struct {
	RoomID   string
	PlayerID string
}

type ClaimFirstBuzzerOutput struct {
	// Accepted is true when the caller won the slot. A false value is the
	// normal losing-race outcome, not an error.
	Accepted bool

	// FirstBuzzer is the player holding the slot after the call
	FirstBuzzer string
}

type SettleBuzzInput struct {
	RoomID string

	// Delta is the signed score adjustment for the current first buzzer
	Delta int
}

type SettleBuzzOutput struct {
	// Settled is false when the window was already clear and nothing changed
	Settled bool

	// PlayerID is the player whose score was adjusted
	PlayerID string

	// NewScore is the player's score after the adjustment
	NewScore int
}

type SetCurrentQuestionInput struct {
	RoomID     string
	QuestionID string
}
