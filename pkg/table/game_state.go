package table

import (
	"encoding/json"
	"time"
)

// Phase is a betting round within a hand
type Phase int

// constants for Phase
const (
	PhasePreflop Phase = iota
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
)

func (p Phase) String() string {
	switch p {
	case PhasePreflop:
		return "preflop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	}

	return ""
}

// CardsOnTable returns how many community cards are showing during the phase
func (p Phase) CardsOnTable() int {
	switch p {
	case PhaseFlop:
		return 3
	case PhaseTurn:
		return 4
	case PhaseRiver, PhaseShowdown:
		return 5
	}

	return 0
}

// Next returns the phase that follows
// Showdown has no successor, the hand settles instead
func (p Phase) Next() Phase {
	if p >= PhaseShowdown {
		return PhaseShowdown
	}

	return p + 1
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}

// ActionRecord is the last accepted player action
type ActionRecord struct {
	PlayerID string    `json:"playerId"`
	Action   string    `json:"action"`
	Amount   int       `json:"amount"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
}

// Payout is the amount credited to a single player at settlement
type Payout struct {
	PlayerID string `json:"playerId"`
	Amount   int    `json:"amount"`
}

// Settlement describes how a pot was distributed
type Settlement struct {
	Round   int       `json:"round"`
	Pot     int       `json:"pot"`
	Phase   Phase     `json:"phase"`
	Payouts []*Payout `json:"payouts"`
	// LastAction is the last player action of the hand
	LastAction *ActionRecord `json:"lastAction,omitempty"`
	Time       time.Time     `json:"time"`
}

// Total returns the sum of all payouts
func (s *Settlement) Total() int {
	total := 0
	for _, p := range s.Payouts {
		total += p.Amount
	}

	return total
}

// GameState is the betting state of the table
type GameState struct {
	CurrentRound int `json:"currentRound"`
	// DealerIndex is an index into the connected players
	DealerIndex int `json:"dealerIndex"`
	// CurrentTurn is an index into the active players
	CurrentTurn         int    `json:"currentTurn"`
	CurrentTurnPlayerID string `json:"currentTurnPlayerId"`
	Pot                 int    `json:"pot"`
	// CallAmount applies to players who have seen their cards
	CallAmount int `json:"callAmount"`
	// BlindAmount applies to players who have not seen their cards
	BlindAmount     int           `json:"blindAmount"`
	CardsOnTable    int           `json:"cardsOnTable"`
	Phase           Phase         `json:"phase"`
	InProgress      bool          `json:"isGameInProgress"`
	AwaitingWinners bool          `json:"awaitingWinnerDeclaration"`
	LastAction      *ActionRecord `json:"lastAction"`
	LastSettlement  *Settlement   `json:"lastSettlement"`
}

func newGameState(settings Settings) GameState {
	g := GameState{CurrentRound: 1}
	g.ResetThresholds(settings)
	g.ClearTurn()
	return g
}

// ResetThresholds sets the call and blind amounts back to the base unit
func (g *GameState) ResetThresholds(settings Settings) {
	g.BlindAmount = settings.SmallBlind()
	g.CallAmount = settings.BigBlind()
}

// SetPhase moves to the phase and updates the community card count
func (g *GameState) SetPhase(p Phase) {
	g.Phase = p
	g.CardsOnTable = p.CardsOnTable()
}

// ClearTurn removes the turn marker
func (g *GameState) ClearTurn() {
	g.CurrentTurn = -1
	g.CurrentTurnPlayerID = ""
}
