package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound     GameError = "room not found"
	ErrRoomExists       GameError = "room already exists"
	ErrQuestionNotFound GameError = "question not found"
	ErrPlayerNotFound   GameError = "player not found"
	ErrInvalidInput     GameError = "invalid input"
	ErrStoreUnavailable GameError = "store unavailable"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRoomRepo      GameError = "room repository cannot be nil"
	ErrNilQuestionRepo  GameError = "question repository cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
