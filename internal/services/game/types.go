package game

import "github.com/alimhan/buzzroom/internal/models"

type CreateRoomInput struct {
	RoomNumber   string
	RoomPassword string
	Host         *models.Player
}

type CreateRoomOutput struct {
	RoomID string
}

type JoinRoomInput struct {
	RoomNumber   string
	RoomPassword string
	Player       *models.Player
}

type JoinRoomOutput struct {
	RoomID   string
	PlayerID string
}

type ExitRoomInput struct {
	RoomID   string
	PlayerID string
}

type ExitRoomOutput struct {
	// RoomDeleted is true when the departing player was the host and the
	// whole room was torn down
	RoomDeleted bool
}

type DeleteRoomInput struct {
	RoomID string
}

type DeleteRoomOutput struct {
}

type GetRoomInput struct {
	RoomID string
}

type GetRoomOutput struct {
	Room    *models.Room
	Players []*models.Player
}

type AdvanceQuestionInput struct {
	RoomID            string
	CurrentQuestionID string
}

type AdvanceQuestionOutput struct {
	QuestionID string
}

type ClaimFirstBuzzerInput struct {
	RoomID   string
	PlayerID string
}

type ClaimFirstBuzzerOutput struct {
	// Accepted is true when this player won the buzzer race
	Accepted bool

	// FirstBuzzer is the player holding the slot after the call
	FirstBuzzer string
}

type ResolveBuzzInput struct {
	RoomID     string
	QuestionID string
}

type ResolveBuzzOutput struct {
	// Settled is false when the window was already clear and nothing changed
	Settled bool

	// PlayerID is the player whose score was adjusted
	PlayerID string

	// NewScore is the player's score after the award
	NewScore int
}

type CancelBuzzInput struct {
	RoomID     string
	QuestionID string
}

type CancelBuzzOutput struct {
	// Settled is false when the window was already clear and nothing changed
	Settled bool

	// PlayerID is the player whose score was adjusted
	PlayerID string

	// NewScore is the player's score after the penalty
	NewScore int
}

type CompileFinalScoreboardInput struct {
	RoomID string
}

type CompileFinalScoreboardOutput struct {
	// QuestionID is the pseudo question holding the standings; empty when the
	// room had no players
	QuestionID string

	// Text is the ranked listing, one "rank. name - score" line per player
	Text string

	// PlayerCount is the number of ranked players
	PlayerCount int
}
