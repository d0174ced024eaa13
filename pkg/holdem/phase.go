package holdem

import (
	"github.com/sirupsen/logrus"
	"pokerpot-server/pkg/table"
)

// advancePhase moves the hand to the next street
// Streets where nobody can act are run out until a player can act or the hand reaches showdown.
func (e *Engine) advancePhase(t *table.Table) *table.Settlement {
	for {
		next := t.State.Phase.Next()
		t.State.SetPhase(next)

		log := e.log(t).WithFields(logrus.Fields{
			"phase": next.String(),
			"cards": t.State.CardsOnTable,
			"pot":   t.State.Pot,
		})
		log.Info("phase advanced")

		if next == table.PhaseShowdown {
			return e.showdown(t)
		}

		for _, p := range t.ConnectedPlayers() {
			p.CurrentBet = 0
		}

		// everybody has seen their cards by the river
		if next == table.PhaseRiver {
			for _, p := range t.ActivePlayers() {
				p.HasSeenCards = true
			}
		}

		t.State.ResetThresholds(t.Settings)

		if first := firstToActPostflop(t); first != nil {
			e.setTurn(t, first)
			return nil
		}

		log.Debug("no player can act, running out the street")
	}
}

// showdown settles the pot between the remaining players, or waits for the host to declare winners
func (e *Engine) showdown(t *table.Table) *table.Settlement {
	t.State.ClearTurn()

	if t.Settings.HostDeclaresWinners {
		t.State.AwaitingWinners = true
		e.log(t).WithField("pot", t.State.Pot).Info("waiting for the host to declare winners")
		return nil
	}

	return e.endHand(t, t.ActivePlayers())
}
