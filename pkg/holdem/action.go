package holdem

import (
	"encoding/json"
	"fmt"
)

// Kind identifies an action
type Kind string

// kind constants
const (
	KindFold  Kind = "fold"
	KindCheck Kind = "check"
	KindCall  Kind = "call"
	KindRaise Kind = "raise"
	KindBlind Kind = "blind"
	KindSeen  Kind = "seen"
)

var allowedKinds = map[Kind]bool{
	KindFold:  true,
	KindCheck: true,
	KindCall:  true,
	KindRaise: true,
	KindBlind: true,
	KindSeen:  true,
}

// KindFromString returns the kind for the given identifier
func KindFromString(s string) (Kind, error) {
	if _, ok := allowedKinds[Kind(s)]; ok {
		return Kind(s), nil
	}

	return "", newParticipantError("unknown action: %s", s)
}

func (k Kind) String() string {
	switch k {
	case KindFold:
		return "Fold"
	case KindCheck:
		return "Check"
	case KindCall:
		return "Call"
	case KindRaise:
		return "Raise"
	case KindBlind:
		return "Blind"
	case KindSeen:
		return "Seen"
	}

	return ""
}

// MarshalJSON encodes the kind into JSON
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(k),
		Name: k.String(),
	})
}

// Action is something a player does on their turn
// The set of actions is closed, only this package implements it
type Action interface {
	Kind() Kind
	isAction()
}

// Fold gives up the hand
type Fold struct{}

// Check passes without betting
type Check struct{}

// Call matches the seen tier
type Call struct{}

// Raise commits Amount over the player's tier minimum
type Raise struct {
	Amount int
}

// Blind matches the blind tier without looking at the cards
type Blind struct{}

// Seen looks at the cards, moving the player to the seen tier
type Seen struct{}

// Kind returns KindFold
func (Fold) Kind() Kind { return KindFold }

// Kind returns KindCheck
func (Check) Kind() Kind { return KindCheck }

// Kind returns KindCall
func (Call) Kind() Kind { return KindCall }

// Kind returns KindRaise
func (Raise) Kind() Kind { return KindRaise }

// Kind returns KindBlind
func (Blind) Kind() Kind { return KindBlind }

// Kind returns KindSeen
func (Seen) Kind() Kind { return KindSeen }

func (Fold) isAction()  {}
func (Check) isAction() {}
func (Call) isAction()  {}
func (Raise) isAction() {}
func (Blind) isAction() {}
func (Seen) isAction()  {}

// NewAction builds an action from its wire identifier
// amount is only used by raise
func NewAction(kind string, amount int) (Action, error) {
	k, err := KindFromString(kind)
	if err != nil {
		return nil, err
	}

	switch k {
	case KindFold:
		return Fold{}, nil
	case KindCheck:
		return Check{}, nil
	case KindCall:
		return Call{}, nil
	case KindRaise:
		return Raise{Amount: amount}, nil
	case KindBlind:
		return Blind{}, nil
	default:
		return Seen{}, nil
	}
}

// LogMessage returns a message formatted for the log
func LogMessage(k Kind, amount int) string {
	switch k {
	case KindFold:
		return "folded"
	case KindCheck:
		return "checked"
	case KindCall:
		return fmt.Sprintf("called ${%d}", amount)
	case KindRaise:
		return fmt.Sprintf("raised to ${%d}", amount)
	case KindBlind:
		return fmt.Sprintf("played blind ${%d}", amount)
	case KindSeen:
		return "saw their cards"
	}

	return ""
}

// WinMessage returns the log message for a payout
func WinMessage(amount int) string {
	return fmt.Sprintf("won ${%d}", amount)
}
