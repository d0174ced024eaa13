package table

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
)

// Table is a room where players share a single game
// A table is not safe for concurrent use. All access must go through one goroutine.
type Table struct {
	Code     string
	HostID   string
	Settings Settings
	State    GameState
	Created  time.Time

	// players is in seat order
	players []*Player
	seats   map[string]int
}

// New returns a new table with no players
func New(code string, settings Settings) *Table {
	return &Table{
		Code:     code,
		Settings: settings,
		State:    newGameState(settings),
		Created:  time.Now(),
		players:  make([]*Player, 0, settings.MaxPlayers),
		seats:    make(map[string]int),
	}
}

// Players returns every seated player in seat order
func (t *Table) Players() []*Player {
	return t.players
}

// Player returns the player with the id
func (t *Table) Player(id string) (*Player, bool) {
	i, ok := t.seats[id]
	if !ok {
		return nil, false
	}

	return t.players[i], true
}

// Seat returns the seat index for the player, or -1 if they are not seated
func (t *Table) Seat(id string) int {
	i, ok := t.seats[id]
	if !ok {
		return -1
	}

	return i
}

// ConnectedPlayers returns the connected players in seat order
func (t *Table) ConnectedPlayers() []*Player {
	return funk.Filter(t.players, func(p *Player) bool {
		return p.IsConnected
	}).([]*Player)
}

// ActivePlayers returns the connected players who have not folded, in seat order
func (t *Table) ActivePlayers() []*Player {
	return funk.Filter(t.players, func(p *Player) bool {
		return p.IsActive()
	}).([]*Player)
}

// HasConnectedPlayers returns true if anybody is still at the table
func (t *Table) HasConnectedPlayers() bool {
	for _, p := range t.players {
		if p.IsConnected {
			return true
		}
	}

	return false
}

// IsHost returns true if the player is the host
func (t *Table) IsHost(playerID string) bool {
	return playerID != "" && t.HostID == playerID
}

// Join seats a new player, or reconnects a returning one
func (t *Table) Join(id, name, avatar string) (player *Player, reconnected bool, err error) {
	log := logrus.WithFields(logrus.Fields{
		"room":   t.Code,
		"player": id,
	})

	if p, ok := t.Player(id); ok {
		p.IsConnected = true
		if name != "" {
			p.Name = name
		}

		if avatar != "" {
			p.Avatar = avatar
		}

		if t.HostID == "" {
			t.HostID = id
		}

		log.Info("player reconnected")
		return p, true, nil
	}

	if len(t.players) >= t.Settings.MaxPlayers {
		return nil, false, ErrRoomFull
	}

	if t.State.InProgress {
		return nil, false, ErrGameInProgress
	}

	p := newPlayer(id, name, avatar, t.Settings.InitialBalance)
	t.seats[id] = len(t.players)
	t.players = append(t.players, p)

	if t.HostID == "" {
		t.HostID = id
	}

	log.WithField("players", len(t.players)).Info("player joined")
	return p, false, nil
}

// Leave marks the player as disconnected and reassigns the host if needed
// Returns true if no connected players remain and the table should be torn down
func (t *Table) Leave(id string) (shouldDelete bool, err error) {
	p, ok := t.Player(id)
	if !ok {
		return false, ErrPlayerNotAtTable
	}

	p.IsConnected = false
	log := logrus.WithFields(logrus.Fields{
		"room":   t.Code,
		"player": id,
	})
	log.Info("player left")

	if t.HostID == id {
		t.HostID = ""
		for _, other := range t.players {
			if other.IsConnected {
				t.HostID = other.ID
				log.WithField("host", other.ID).Info("host transferred")
				break
			}
		}
	}

	return !t.HasConnectedPlayers(), nil
}

// Snapshot is a point-in-time copy of the table
type Snapshot struct {
	Code     string    `json:"code"`
	HostID   string    `json:"hostId"`
	Settings Settings  `json:"settings"`
	Players  []*Player `json:"players"`
	State    GameState `json:"gameState"`
	Created  time.Time `json:"created"`
}

// Snapshot returns a deep copy that is safe to hand to other goroutines
func (t *Table) Snapshot() *Snapshot {
	players := make([]*Player, len(t.players))
	for i, p := range t.players {
		cp := *p
		players[i] = &cp
	}

	state := t.State
	if state.LastAction != nil {
		la := *state.LastAction
		state.LastAction = &la
	}

	if s := state.LastSettlement; s != nil {
		payouts := make([]*Payout, len(s.Payouts))
		for i, po := range s.Payouts {
			cp := *po
			payouts[i] = &cp
		}

		cs := *s
		cs.Payouts = payouts
		if s.LastAction != nil {
			la := *s.LastAction
			cs.LastAction = &la
		}
		state.LastSettlement = &cs
	}

	return &Snapshot{
		Code:     t.Code,
		HostID:   t.HostID,
		Settings: t.Settings,
		Players:  players,
		State:    state,
		Created:  t.Created,
	}
}

// ConnectedCount returns the number of connected players
func (s *Snapshot) ConnectedCount() int {
	n := 0
	for _, p := range s.Players {
		if p.IsConnected {
			n++
		}
	}

	return n
}
