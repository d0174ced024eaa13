package holdem

import "fmt"

// ParticipantError is an error caused by something the participant did
// It is safe to show to the player
type ParticipantError string

func (p ParticipantError) Error() string {
	return string(p)
}

func newParticipantError(format string, a ...interface{}) ParticipantError {
	return ParticipantError(fmt.Sprintf(format, a...))
}

// errors returned by the engine
var (
	ErrPlayerNotFound      = ParticipantError("player not found")
	ErrAlreadyFolded       = ParticipantError("you have already folded")
	ErrNotYourTurn         = ParticipantError("it is not your turn")
	ErrAlreadySeen         = ParticipantError("you have already seen your cards")
	ErrCannotPlayBlind     = ParticipantError("you cannot play blind after seeing your cards")
	ErrMustSeeCards        = ParticipantError("you must see your cards before you can call")
	ErrCannotCheck         = ParticipantError("you cannot check with an active bet")
	ErrNothingToCall       = ParticipantError("there is nothing to call")
	ErrInsufficientBalance = ParticipantError("insufficient balance")
	ErrInvalidRaiseAmount  = ParticipantError("raise amount must be greater than zero")
	ErrInsufficientPlayers = ParticipantError("at least two connected players are required to start")
	ErrTooManyPlayers      = ParticipantError("too many players are connected to start")
	ErrNoGameInProgress    = ParticipantError("no game is in progress")
	ErrAwaitingWinners     = ParticipantError("waiting for the host to declare the winners")
	ErrNotAwaitingWinners  = ParticipantError("the hand is not waiting on a winner declaration")
	ErrInvalidWinner       = ParticipantError("winners must be players still in the hand")
	ErrMaxPlayersTooLow    = ParticipantError("max players cannot be less than the number of connected players")
)
