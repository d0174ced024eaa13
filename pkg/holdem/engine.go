package holdem

import (
	"time"

	"github.com/sirupsen/logrus"
	"pokerpot-server/pkg/table"
)

// Engine runs the betting for a table
// It holds no table state of its own. Every call borrows the table it is given
// and must be made from the goroutine that owns that table.
type Engine struct {
	logger logrus.FieldLogger
	now    func() time.Time
}

// NewEngine returns a new engine
func NewEngine(logger logrus.FieldLogger) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Engine{
		logger: logger,
		now:    time.Now,
	}
}

func (e *Engine) log(t *table.Table) logrus.FieldLogger {
	return e.logger.WithFields(logrus.Fields{
		"room":  t.Code,
		"round": t.State.CurrentRound,
	})
}

// StartGame deals a new hand: it resets the players, moves the button, posts the blinds and
// hands the turn to the first player to act
// A settlement is returned if the blinds left nobody able to act and the hand ran out immediately
func (e *Engine) StartGame(t *table.Table) (*table.Settlement, error) {
	if t.State.InProgress {
		return nil, table.ErrGameInProgress
	}

	connected := t.ConnectedPlayers()
	if len(connected) < table.MinPlayers {
		return nil, ErrInsufficientPlayers
	}

	if len(connected) > t.Settings.MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	for _, p := range t.Players() {
		p.ResetForHand()

		// seats that are not dealt in sit the hand out even if they reconnect
		p.HasFolded = !p.IsConnected
	}

	dealerIndex := t.State.DealerIndex % len(connected)
	t.State.DealerIndex = dealerIndex
	connected[dealerIndex].IsDealer = true

	t.State.InProgress = true
	t.State.AwaitingWinners = false
	t.State.SetPhase(table.PhasePreflop)
	t.State.Pot = 0
	t.State.LastAction = nil
	t.State.LastSettlement = nil

	e.postBlinds(t, connected, dealerIndex)

	log := e.log(t)
	log.WithFields(logrus.Fields{
		"dealer":  connected[dealerIndex].ID,
		"players": len(connected),
		"pot":     t.State.Pot,
	}).Info("hand started")

	first := firstToActPreflop(connected, dealerIndex)
	if first == nil {
		log.Debug("no player can act after the blinds")
		return e.advancePhase(t), nil
	}

	e.setTurn(t, first)
	return nil, nil
}

// ProcessAction validates and applies a player's action
// A rejected action leaves the table untouched. A settlement is returned when the action ended the hand.
func (e *Engine) ProcessAction(t *table.Table, playerID string, action Action) (*table.Settlement, error) {
	player, owed, err := e.validate(t, playerID, action)
	if err != nil {
		return nil, err
	}

	logAmount := e.apply(t, player, action, owed)

	t.State.LastAction = &table.ActionRecord{
		PlayerID: player.ID,
		Action:   string(action.Kind()),
		Amount:   owed,
		Message:  LogMessage(action.Kind(), logAmount),
		Time:     e.now(),
	}

	e.log(t).WithFields(logrus.Fields{
		"player": player.ID,
		"action": action.Kind(),
		"amount": owed,
		"pot":    t.State.Pot,
		"phase":  t.State.Phase.String(),
	}).Debug("player acted")

	// seeing your cards is a status change, the player keeps the turn
	if action.Kind() == KindSeen {
		return nil, nil
	}

	return e.afterAction(t, player), nil
}

// validate runs every legality check for the action and returns the amount the action moves into the pot
// NOTE: must not mutate the table
func (e *Engine) validate(t *table.Table, playerID string, action Action) (*table.Player, int, error) {
	if !t.State.InProgress {
		return nil, 0, ErrNoGameInProgress
	}

	if t.State.AwaitingWinners {
		return nil, 0, ErrAwaitingWinners
	}

	player, ok := t.Player(playerID)
	if !ok {
		return nil, 0, ErrPlayerNotFound
	}

	if player.HasFolded {
		return nil, 0, ErrAlreadyFolded
	}

	if turn := turnPlayer(t); turn == nil || turn.ID != playerID {
		return nil, 0, ErrNotYourTurn
	}

	minimum := tierMinimum(&t.State, player)

	switch a := action.(type) {
	case Fold:
		return player, 0, nil
	case Check:
		if player.CurrentBet != minimum {
			return nil, 0, ErrCannotCheck
		}

		return player, 0, nil
	case Call:
		if !player.HasSeenCards {
			return nil, 0, ErrMustSeeCards
		}

		owed := t.State.CallAmount - player.CurrentBet
		if owed <= 0 {
			return nil, 0, ErrNothingToCall
		}

		// a short call goes all-in
		if owed > player.Balance {
			owed = player.Balance
		}

		return player, owed, nil
	case Raise:
		if a.Amount <= 0 {
			return nil, 0, ErrInvalidRaiseAmount
		}

		if a.Amount > player.Balance {
			return nil, 0, ErrInsufficientBalance
		}

		owed := minimum + a.Amount - player.CurrentBet
		if owed <= 0 {
			return nil, 0, ErrInvalidRaiseAmount
		}

		if owed > player.Balance {
			return nil, 0, ErrInsufficientBalance
		}

		return player, owed, nil
	case Blind:
		if player.HasSeenCards {
			return nil, 0, ErrCannotPlayBlind
		}

		owed := t.State.BlindAmount - player.CurrentBet
		if owed <= 0 {
			return nil, 0, ErrNothingToCall
		}

		if owed > player.Balance {
			return nil, 0, ErrInsufficientBalance
		}

		return player, owed, nil
	case Seen:
		if player.HasSeenCards {
			return nil, 0, ErrAlreadySeen
		}

		return player, 0, nil
	}

	return nil, 0, newParticipantError("unknown action: %T", action)
}

// apply performs an action that already passed validate
// Returns the amount to show in the log message
func (e *Engine) apply(t *table.Table, player *table.Player, action Action, owed int) int {
	switch action.(type) {
	case Fold:
		player.HasFolded = true
	case Seen:
		player.HasSeenCards = true
	case Call, Blind:
		commit(t, player, owed)
	case Raise:
		commit(t, player, owed)
		total := player.CurrentBet
		if player.HasSeenCards {
			t.State.CallAmount = total
			t.State.BlindAmount = total / 2
		} else {
			t.State.BlindAmount = total
			t.State.CallAmount = total * 2
		}

		return total
	}

	return owed
}

func commit(t *table.Table, player *table.Player, amount int) {
	player.Commit(amount)
	t.State.Pot += amount
}

// afterAction passes the turn, completes the round, or ends the hand
func (e *Engine) afterAction(t *table.Table, actor *table.Player) *table.Settlement {
	active := t.ActivePlayers()
	if len(active) <= 1 {
		return e.endHand(t, active)
	}

	if isRoundComplete(&t.State, active) {
		return e.advancePhase(t)
	}

	next := nextToAct(t, actor)
	if next == nil {
		e.log(t).WithField("player", actor.ID).Warn("could not find an eligible seat, completing the round")
		return e.advancePhase(t)
	}

	e.setTurn(t, next)
	return nil
}

// PlayerLeft repairs the turn after a player disconnected mid-hand
// The caller must already have marked the player as disconnected.
func (e *Engine) PlayerLeft(t *table.Table, playerID string) *table.Settlement {
	if !t.State.InProgress {
		return nil
	}

	active := t.ActivePlayers()
	if len(active) <= 1 {
		return e.endHand(t, active)
	}

	if t.State.AwaitingWinners || t.State.CurrentTurnPlayerID != playerID {
		e.SyncTurn(t)
		return nil
	}

	if isRoundComplete(&t.State, active) {
		return e.advancePhase(t)
	}

	leaver, _ := t.Player(playerID)
	next := nextToAct(t, leaver)
	if next == nil {
		return e.advancePhase(t)
	}

	e.setTurn(t, next)
	return nil
}

// SyncTurn recomputes CurrentTurn after the active ordering changed without the turn moving,
// for instance when a player reconnects
func (e *Engine) SyncTurn(t *table.Table) {
	id := t.State.CurrentTurnPlayerID
	if id == "" {
		return
	}

	for i, p := range t.ActivePlayers() {
		if p.ID == id {
			t.State.CurrentTurn = i
			return
		}
	}

	e.log(t).WithField("player", id).Warn("player in turn is no longer active")
	t.State.ClearTurn()
}
