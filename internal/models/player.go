package models

// Player represents a participant in a room
type Player struct {
	// ID is the unique identifier for the player, stable across reconnects
	ID string

	// Name is the display name of the player
	Name string

	// Avatar is the player's chosen avatar identifier
	Avatar string

	// Score is the player's running score; it may go negative
	Score int
}
