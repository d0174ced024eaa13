package table

import "fmt"

// Player is a seat at the table
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Balance      int    `json:"balance"`
	CurrentBet   int    `json:"currentBet"`
	HasFolded    bool   `json:"hasFolded"`
	HasSeenCards bool   `json:"hasSeenCards"`
	IsDealer     bool   `json:"isDealer"`
	IsConnected  bool   `json:"isConnected"`
}

func newPlayer(id, name, avatar string, balance int) *Player {
	return &Player{
		ID:          id,
		Name:        name,
		Avatar:      avatar,
		Balance:     balance,
		IsConnected: true,
	}
}

// ResetForHand clears all per-hand state
func (p *Player) ResetForHand() {
	p.CurrentBet = 0
	p.HasFolded = false
	p.HasSeenCards = false
	p.IsDealer = false
}

// IsActive returns true if the player is connected and still in the hand
func (p *Player) IsActive() bool {
	return p.IsConnected && !p.HasFolded
}

// IsAllIn returns true if the player has nothing left to bet
func (p *Player) IsAllIn() bool {
	return p.Balance == 0
}

// CanAct returns true if the player can be handed the turn
func (p *Player) CanAct() bool {
	return p.IsActive() && !p.IsAllIn()
}

// Commit moves chips from the player's balance into their current bet
// The caller must ensure amount does not exceed the balance
func (p *Player) Commit(amount int) {
	p.Balance -= amount
	p.CurrentBet += amount
}

// String returns a traceable identifier for the player
func (p *Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.ID)
}
