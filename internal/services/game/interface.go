package game

import "context"

// Service defines the interface for room and buzzer operations
type Service interface {
	// CreateRoom creates a new room owned by the host
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a player to the room matching the join credentials
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// ExitRoom removes a player; a host exit deletes the whole room
	ExitRoom(ctx context.Context, input *ExitRoomInput) (*ExitRoomOutput, error)

	// DeleteRoom removes a room and its roster
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) (*DeleteRoomOutput, error)

	// GetRoom retrieves a room and its roster
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// AdvanceQuestion moves the room to the next catalog question, wrapping at
	// the end of the catalog. It does not touch the buzzing window.
	AdvanceQuestion(ctx context.Context, input *AdvanceQuestionInput) (*AdvanceQuestionOutput, error)

	// ClaimFirstBuzzer arbitrates a buzz attempt; exactly one claim per open
	// window is accepted
	ClaimFirstBuzzer(ctx context.Context, input *ClaimFirstBuzzerInput) (*ClaimFirstBuzzerOutput, error)

	// ResolveBuzz awards the question's points to the first buzzer and clears
	// the window
	ResolveBuzz(ctx context.Context, input *ResolveBuzzInput) (*ResolveBuzzOutput, error)

	// CancelBuzz deducts the question's points from the first buzzer and
	// clears the window
	CancelBuzz(ctx context.Context, input *CancelBuzzInput) (*CancelBuzzOutput, error)

	// CompileFinalScoreboard materializes the ranked standings as a pseudo
	// question and points the room at it
	CompileFinalScoreboard(ctx context.Context, input *CompileFinalScoreboardInput) (*CompileFinalScoreboardOutput, error)
}
