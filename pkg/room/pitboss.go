package room

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/weedbox/timebank"
	"pokerpot-server/internal/rng"
	"pokerpot-server/pkg/history"
	"pokerpot-server/pkg/holdem"
	"pokerpot-server/pkg/table"
)

// Options configure a PitBoss
// The zero value is usable.
type Options struct {
	Logger          logrus.FieldLogger
	Recorder        history.Recorder
	Generator       rng.Generator
	CodeLength      int
	DefaultSettings *table.Settings

	// SweepInterval is how often rooms without connected players are removed
	// Zero disables the sweeper.
	SweepInterval time.Duration

	// SignToken returns a reconnect token for the player, or an empty string
	SignToken func(roomCode, playerID string) (string, error)
}

// PitBoss is responsible for dispatching players to rooms
type PitBoss struct {
	registry        *table.Registry
	engine          *holdem.Engine
	recorder        history.Recorder
	defaultSettings table.Settings
	signToken       func(roomCode, playerID string) (string, error)
	log             logrus.FieldLogger

	dealers map[string]*Dealer
	lock    sync.RWMutex

	sweepInterval time.Duration
	sweeper       *timebank.TimeBank
	sweepLock     sync.Mutex
}

// Stats is a summary of the open rooms
type Stats struct {
	Rooms            int `json:"rooms"`
	ConnectedPlayers int `json:"connectedPlayers"`
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(opts Options) *PitBoss {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	recorder := opts.Recorder
	if recorder == nil {
		recorder = history.Nop{}
	}

	generator := opts.Generator
	if generator == nil {
		generator = rng.Crypto{}
	}

	settings := table.DefaultSettings()
	if opts.DefaultSettings != nil {
		settings = *opts.DefaultSettings
	}

	signToken := opts.SignToken
	if signToken == nil {
		signToken = func(string, string) (string, error) { return "", nil }
	}

	return &PitBoss{
		registry:        table.NewRegistry(generator, opts.CodeLength),
		engine:          holdem.NewEngine(log),
		recorder:        recorder,
		defaultSettings: settings,
		signToken:       signToken,
		log:             log,
		dealers:         make(map[string]*Dealer),
		sweepInterval:   opts.SweepInterval,
	}
}

// StartShift starts the empty-room sweeper
func (p *PitBoss) StartShift() {
	if p.sweepInterval <= 0 {
		return
	}

	p.sweepLock.Lock()
	p.sweeper = timebank.NewTimeBank()
	p.sweepLock.Unlock()

	p.scheduleSweep()
}

// EndShift stops the sweeper and every dealer
func (p *PitBoss) EndShift() {
	p.sweepLock.Lock()
	if p.sweeper != nil {
		p.sweeper.Cancel()
		p.sweeper = nil
	}
	p.sweepLock.Unlock()

	p.lock.Lock()
	for code, dealer := range p.dealers {
		dealer.EndShift()
		delete(p.dealers, code)
	}
	p.lock.Unlock()
}

func (p *PitBoss) scheduleSweep() {
	p.sweepLock.Lock()
	defer p.sweepLock.Unlock()

	if p.sweeper == nil {
		return
	}

	err := p.sweeper.NewTask(p.sweepInterval, func(isCancelled bool) {
		if isCancelled {
			return
		}

		if removed := p.Cleanup(); len(removed) > 0 {
			p.log.WithField("rooms", removed).Info("swept empty rooms")
		}

		p.sweepLock.Lock()
		if p.sweeper != nil {
			p.sweeper = timebank.NewTimeBank()
		}
		p.sweepLock.Unlock()

		p.scheduleSweep()
	})

	if err != nil {
		p.log.WithError(err).Error("could not schedule the room sweeper")
	}
}

// CodeLength returns the length of room codes
func (p *PitBoss) CodeLength() int {
	return p.registry.CodeLength()
}

// DefaultSettings returns the settings new rooms start from
func (p *PitBoss) DefaultSettings() table.Settings {
	return p.defaultSettings
}

func (p *PitBoss) dealer(code string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	d, ok := p.dealers[code]
	if !ok {
		return nil, table.ErrRoomNotFound
	}

	return d, nil
}

// closeRoom removes the room from the registry and stops its dealer
// It is safe to call from inside the dealer's run loop.
func (p *PitBoss) closeRoom(code string) {
	p.lock.Lock()
	d, ok := p.dealers[code]
	delete(p.dealers, code)
	p.lock.Unlock()

	p.registry.Delete(code)
	if !ok {
		return
	}

	d.EndShift()

	// the room's hands are dropped once any pending record has landed
	if f, ok := p.recorder.(history.Forgetter); ok {
		go func() {
			d.recording.Wait()
			f.Forget(code)
		}()
	}
}

// CreateRoom opens a room with the caller as host
func (p *PitBoss) CreateRoom(hostID, name, avatar string, settings table.Settings) (*table.Snapshot, error) {
	tbl, err := p.registry.Create(hostID, name, avatar, settings)
	if err != nil {
		return nil, err
	}

	// nothing else can reach the table until its dealer is registered
	snapshot := tbl.Snapshot()

	d := NewDealer(p, tbl)
	d.StartShift()

	p.lock.Lock()
	p.dealers[tbl.Code] = d
	p.lock.Unlock()

	return snapshot, nil
}

// JoinRoom seats the player, or reconnects them if they already have a seat
func (p *PitBoss) JoinRoom(code, playerID, name, avatar string) (*table.Snapshot, error) {
	d, err := p.dealer(code)
	if err != nil {
		return nil, err
	}

	var snapshot *table.Snapshot
	err = d.do(func(t *table.Table) error {
		player, reconnected, err := t.Join(playerID, name, avatar)
		if err != nil {
			return err
		}

		message := "joined the room"
		if reconnected {
			message = "reconnected"
			p.engine.SyncTurn(t)
		}

		d.roomChanged(nil, newLogMessage(player.ID, message))
		snapshot = t.Snapshot()
		return nil
	})

	return snapshot, err
}

// LeaveRoom marks the player as disconnected
// If nobody is left, the room is deleted and deleted is true.
func (p *PitBoss) LeaveRoom(code, playerID string) (snapshot *table.Snapshot, deleted bool, err error) {
	d, err := p.dealer(code)
	if err != nil {
		return nil, false, err
	}

	err = d.do(func(t *table.Table) error {
		shouldDelete, err := t.Leave(playerID)
		if err != nil {
			return err
		}

		settlement := p.engine.PlayerLeft(t, playerID)
		d.roomChanged(settlement, newLogMessage(playerID, "left the room"))

		deleted = shouldDelete
		snapshot = t.Snapshot()
		if deleted {
			p.closeRoom(t.Code)
		}

		return nil
	})

	if err != nil {
		return nil, false, err
	}

	return snapshot, deleted, nil
}

// StartGame deals the next hand
// Only the host can start a hand.
func (p *PitBoss) StartGame(code, callerID string) (*table.Snapshot, error) {
	return p.hostDo(code, callerID, func(d *Dealer, t *table.Table) error {
		settlement, err := p.engine.StartGame(t)
		if err != nil {
			return err
		}

		d.roomChanged(settlement, newLogMessage("", "a new hand was dealt"))
		return nil
	})
}

// Act performs a betting action for the player
func (p *PitBoss) Act(code, playerID string, action holdem.Action) (*table.Snapshot, error) {
	return p.roomDo(code, func(d *Dealer, t *table.Table) error {
		settlement, err := p.engine.ProcessAction(t, playerID, action)
		if err != nil {
			return err
		}

		record := t.State.LastAction
		if settlement != nil {
			record = settlement.LastAction
		}

		var messages []*LogMessage
		if record != nil {
			messages = append(messages, actionLogMessage(record))
		}

		d.roomChanged(settlement, messages...)
		return nil
	})
}

// UpdatePlayerBalance sets a player's balance between hands
// Only the host can change balances.
func (p *PitBoss) UpdatePlayerBalance(code, callerID, playerID string, balance int) (*table.Snapshot, error) {
	return p.hostDo(code, callerID, func(d *Dealer, t *table.Table) error {
		if err := p.engine.UpdatePlayerBalance(t, playerID, balance); err != nil {
			return err
		}

		d.roomChanged(nil, newLogMessage(playerID, "had their balance updated"))
		return nil
	})
}

// UpdateSettings changes the room settings between hands
// Only the host can change settings.
func (p *PitBoss) UpdateSettings(code, callerID string, patch table.SettingsPatch) (*table.Snapshot, error) {
	return p.hostDo(code, callerID, func(d *Dealer, t *table.Table) error {
		if err := p.engine.UpdateSettings(t, patch); err != nil {
			return err
		}

		d.roomChanged(nil, newLogMessage("", "the room settings were updated"))
		return nil
	})
}

// DeclareWinners settles a hand that is waiting on the host
func (p *PitBoss) DeclareWinners(code, callerID string, playerIDs []string) (*table.Snapshot, error) {
	return p.hostDo(code, callerID, func(d *Dealer, t *table.Table) error {
		settlement, err := p.engine.DeclareWinners(t, playerIDs)
		if err != nil {
			return err
		}

		d.roomChanged(settlement)
		return nil
	})
}

// Room returns a snapshot of the room
func (p *PitBoss) Room(code string) (*table.Snapshot, error) {
	return p.roomDo(code, func(*Dealer, *table.Table) error {
		return nil
	})
}

// Hands returns the most recent settled hands for the room
func (p *PitBoss) Hands(ctx context.Context, code string, limit int) ([]history.HandRecord, error) {
	return p.recorder.Hands(ctx, code, limit)
}

// Stats returns the number of open rooms and connected players
func (p *PitBoss) Stats() Stats {
	var stats Stats
	for _, code := range p.registry.Codes() {
		snapshot, err := p.Room(code)
		if err != nil {
			continue
		}

		stats.Rooms++
		stats.ConnectedPlayers += snapshot.ConnectedCount()
	}

	return stats
}

// Cleanup removes every room without a connected player and returns their codes
func (p *PitBoss) Cleanup() []string {
	removed := make([]string, 0)
	for _, code := range p.registry.Codes() {
		d, err := p.dealer(code)
		if err != nil {
			continue
		}

		empty := false
		_ = d.do(func(t *table.Table) error {
			if empty = !t.HasConnectedPlayers(); empty {
				p.closeRoom(t.Code)
			}

			return nil
		})

		if empty {
			removed = append(removed, code)
		}
	}

	sort.Strings(removed)
	return removed
}

func (p *PitBoss) roomDo(code string, fn func(d *Dealer, t *table.Table) error) (*table.Snapshot, error) {
	d, err := p.dealer(code)
	if err != nil {
		return nil, err
	}

	var snapshot *table.Snapshot
	err = d.do(func(t *table.Table) error {
		if err := fn(d, t); err != nil {
			return err
		}

		snapshot = t.Snapshot()
		return nil
	})

	return snapshot, err
}

func (p *PitBoss) hostDo(code, callerID string, fn func(d *Dealer, t *table.Table) error) (*table.Snapshot, error) {
	return p.roomDo(code, func(d *Dealer, t *table.Table) error {
		if !t.IsHost(callerID) {
			return ErrNotHost
		}

		return fn(d, t)
	})
}
