package holdem

import (
	"github.com/sirupsen/logrus"
	"pokerpot-server/pkg/table"
)

// postBlinds takes the small and big blind from the seats after the button
// Heads-up the dealer posts the small blind.
func (e *Engine) postBlinds(t *table.Table, connected []*table.Player, dealerIndex int) {
	n := len(connected)
	small := t.Settings.SmallBlind()
	big := t.Settings.BigBlind()

	sb := connected[(dealerIndex+1)%n]
	bb := connected[(dealerIndex+2)%n]
	if n == 2 {
		sb = connected[dealerIndex]
		bb = connected[(dealerIndex+1)%n]
	}

	e.postBlind(t, sb, small, "small")
	e.postBlind(t, bb, big, "big")

	// the big blind is a forced commitment to the seen tier
	bb.HasSeenCards = true

	t.State.BlindAmount = small
	t.State.CallAmount = big
}

// postBlind commits the blind, or whatever is left of a short stack
func (e *Engine) postBlind(t *table.Table, p *table.Player, amount int, name string) {
	if amount > p.Balance {
		amount = p.Balance
	}

	commit(t, p, amount)

	e.log(t).WithFields(logrus.Fields{
		"player": p.ID,
		"blind":  name,
		"amount": amount,
		"allIn":  p.IsAllIn(),
	}).Debug("posted blind")
}
