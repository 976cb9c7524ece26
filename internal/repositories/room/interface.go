package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/alimhan/buzzroom/internal/repositories/room Repository

import (
	"context"

	"github.com/alimhan/buzzroom/internal/models"
)

// Repository defines the interface for room and roster persistence
type Repository interface {
	// CreateRoom persists a new room; fails if the room ID is taken
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// FindRoomByCredentials retrieves the room matching both number and password
	FindRoomByCredentials(ctx context.Context, input *FindRoomByCredentialsInput) (*models.Room, error)

	// DeleteRoom removes the room, its roster and its join index as one batch
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// UpsertPlayer merges a player into the room's roster, preserving score
	UpsertPlayer(ctx context.Context, input *UpsertPlayerInput) (*models.Player, error)

	// DeletePlayer removes a single player from the room's roster
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error

	// ListPlayers returns the roster ordered by score descending, ID ascending
	ListPlayers(ctx context.Context, input *ListPlayersInput) ([]*models.Player, error)

	// ClaimFirstBuzzer atomically takes the first-buzzer slot if it is free
	ClaimFirstBuzzer(ctx context.Context, input *ClaimFirstBuzzerInput) (*ClaimFirstBuzzerOutput, error)

	// SettleBuzz atomically applies a score delta to the current first buzzer
	// and clears the buzzing window
	SettleBuzz(ctx context.Context, input *SettleBuzzInput) (*SettleBuzzOutput, error)

	// SetCurrentQuestion updates the room's current question
	SetCurrentQuestion(ctx context.Context, input *SetCurrentQuestionInput) error
}
