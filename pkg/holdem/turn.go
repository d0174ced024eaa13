package holdem

import (
	"pokerpot-server/pkg/table"
)

// tierMinimum is what the player must have in front of them to be level with the table
func tierMinimum(state *table.GameState, p *table.Player) int {
	if p.HasSeenCards {
		return state.CallAmount
	}

	return state.BlindAmount
}

// isRoundComplete returns true when every active player matched their tier or is all-in
func isRoundComplete(state *table.GameState, active []*table.Player) bool {
	for _, p := range active {
		if p.IsAllIn() {
			continue
		}

		if p.CurrentBet != tierMinimum(state, p) {
			return false
		}
	}

	return true
}

// turnPlayer returns the player CurrentTurn points to within the active ordering
func turnPlayer(t *table.Table) *table.Player {
	active := t.ActivePlayers()
	i := t.State.CurrentTurn
	if i < 0 || i >= len(active) {
		return nil
	}

	return active[i]
}

func (e *Engine) setTurn(t *table.Table, p *table.Player) {
	for i, active := range t.ActivePlayers() {
		if active == p {
			t.State.CurrentTurn = i
			t.State.CurrentTurnPlayerID = p.ID
			return
		}
	}

	// should not happen, callers only pass players who can act
	e.log(t).WithField("player", p.ID).Error("cannot give the turn to an inactive player")
	t.State.ClearTurn()
}

// nextToAct walks the seats after from and returns the first player who can act
// Returns nil if nobody else can act
func nextToAct(t *table.Table, from *table.Player) *table.Player {
	players := t.Players()
	n := len(players)
	start := t.Seat(from.ID)

	for i := 1; i < n; i++ {
		p := players[(start+i)%n]
		if p.CanAct() {
			return p
		}
	}

	return nil
}

// firstToActPreflop returns the dealer when heads-up, otherwise the seat after the big blind
// connected must be in seat order, all-in seats are skipped
func firstToActPreflop(connected []*table.Player, dealerIndex int) *table.Player {
	n := len(connected)
	start := dealerIndex
	if n > 2 {
		start = dealerIndex + 3
	}

	for i := 0; i < n; i++ {
		p := connected[(start+i)%n]
		if p.CanAct() {
			return p
		}
	}

	return nil
}

// firstToActPostflop returns the first player after the dealer button who can act
func firstToActPostflop(t *table.Table) *table.Player {
	players := t.Players()
	n := len(players)

	dealerSeat := -1
	for i, p := range players {
		if p.IsDealer {
			dealerSeat = i
			break
		}
	}

	for i := 1; i <= n; i++ {
		p := players[(dealerSeat+i+n)%n]
		if p.CanAct() {
			return p
		}
	}

	return nil
}
