package holdem

import (
	"github.com/sirupsen/logrus"
	"pokerpot-server/pkg/table"
)

// UpdatePlayerBalance sets a player's balance between hands
// Balances are clamped between zero and table.MaxChips.
func (e *Engine) UpdatePlayerBalance(t *table.Table, playerID string, balance int) error {
	if t.State.InProgress {
		return table.ErrGameInProgress
	}

	p, ok := t.Player(playerID)
	if !ok {
		return ErrPlayerNotFound
	}

	if balance < 0 {
		balance = 0
	} else if balance > table.MaxChips {
		balance = table.MaxChips
	}

	e.log(t).WithFields(logrus.Fields{
		"player":     playerID,
		"oldBalance": p.Balance,
		"newBalance": balance,
	}).Info("player balance updated")

	p.Balance = balance
	return nil
}

// UpdateSettings applies a partial settings change between hands
func (e *Engine) UpdateSettings(t *table.Table, patch table.SettingsPatch) error {
	if t.State.InProgress {
		return table.ErrGameInProgress
	}

	updated := t.Settings.Apply(patch)
	if err := updated.Validate(); err != nil {
		return err
	}

	if updated.MaxPlayers < len(t.ConnectedPlayers()) {
		return ErrMaxPlayersTooLow
	}

	changesBet := t.Settings.ChangesBet(patch)
	t.Settings = updated
	if changesBet {
		t.State.ResetThresholds(updated)
	}

	e.log(t).WithField("settings", updated).Info("room settings updated")
	return nil
}
