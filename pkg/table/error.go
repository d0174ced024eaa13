package table

import "errors"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrRoomNotFound is returned when no table exists for a room code
var ErrRoomNotFound = UserError("room not found")

// ErrRoomFull is returned when a new player tries to join a table that has no open seats
var ErrRoomFull = UserError("room is full")

// ErrGameInProgress is returned when an operation requires the table to be between hands
var ErrGameInProgress = UserError("game is already in progress")

// ErrPlayerNotAtTable happens when the player is not seated at the table
var ErrPlayerNotAtTable = UserError("player is not a member of the table")

// ErrInvalidSettings wraps every settings validation failure
var ErrInvalidSettings = errors.New("invalid settings")

// ErrCodeExhausted is returned when a unique room code could not be generated
var ErrCodeExhausted = errors.New("could not generate a unique room code")
