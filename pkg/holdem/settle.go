package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
	"pokerpot-server/pkg/table"
)

// DeclareWinners settles a hand that is waiting on the host
// The pot is split between the winners in seat order.
func (e *Engine) DeclareWinners(t *table.Table, playerIDs []string) (*table.Settlement, error) {
	if !t.State.InProgress {
		return nil, ErrNoGameInProgress
	}

	if !t.State.AwaitingWinners {
		return nil, ErrNotAwaitingWinners
	}

	if len(playerIDs) == 0 {
		return nil, ErrInvalidWinner
	}

	for _, id := range playerIDs {
		p, ok := t.Player(id)
		if !ok || !p.IsActive() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidWinner, id)
		}
	}

	winners := funk.Filter(t.Players(), func(p *table.Player) bool {
		return funk.ContainsString(playerIDs, p.ID)
	}).([]*table.Player)

	return e.endHand(t, winners), nil
}

// endHand pays the winners, moves the button and resets the table for the next hand
// winners must be in seat order. The first seats receive any odd units.
func (e *Engine) endHand(t *table.Table, winners []*table.Player) *table.Settlement {
	s := &table.Settlement{
		Round:      t.State.CurrentRound,
		Pot:        t.State.Pot,
		Phase:      t.State.Phase,
		Payouts:    make([]*table.Payout, 0, len(winners)),
		LastAction: t.State.LastAction,
		Time:       e.now(),
	}

	log := e.log(t).WithField("pot", s.Pot)
	if len(winners) == 0 {
		// should not happen, a hand always ends with someone still in it
		log.Warn("no players left to pay, the pot is forfeited")
	}

	for i, share := range SplitPot(s.Pot, len(winners)) {
		winners[i].Balance += share
		s.Payouts = append(s.Payouts, &table.Payout{
			PlayerID: winners[i].ID,
			Amount:   share,
		})

		log.WithFields(logrus.Fields{
			"player": winners[i].ID,
			"amount": share,
		}).Info("player won")
	}

	log.WithFields(logrus.Fields{
		"round": s.Round,
		"paid":  s.Total(),
	}).Info("hand settled")

	e.resetHand(t)
	t.State.LastSettlement = s

	return s
}

func (e *Engine) resetHand(t *table.Table) {
	if connected := len(t.ConnectedPlayers()); connected > 0 {
		t.State.DealerIndex = (t.State.DealerIndex + 1) % connected
	} else {
		t.State.DealerIndex = 0
	}

	for _, p := range t.Players() {
		p.ResetForHand()
	}

	t.State.CurrentRound++
	t.State.Pot = 0
	t.State.SetPhase(table.PhasePreflop)
	t.State.InProgress = false
	t.State.AwaitingWinners = false
	t.State.LastAction = nil
	t.State.ResetThresholds(t.Settings)
	t.State.ClearTurn()
}
