package room

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"pokerpot-server/pkg/history"
	"pokerpot-server/pkg/table"
)

type state int

const (
	stateClientEvent state = iota
	stateRoomEvent
	stateHandSettled
)

const recordTimeout = time.Second * 5

// Dealer owns a single table
// Every read and write of the table happens inside the dealer's run loop.
type Dealer struct {
	pitBoss     *PitBoss
	table       *table.Table
	clients     map[*Client]bool
	lock        sync.RWMutex
	log         logrus.FieldLogger
	logMessages []*LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
	closeOnce     sync.Once

	// recording counts hand records still being written
	recording sync.WaitGroup
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, tbl *table.Table) *Dealer {
	return &Dealer{
		pitBoss:       pitBoss,
		table:         tbl,
		clients:       make(map[*Client]bool),
		log:           pitBoss.log.WithField("room", tbl.Code),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.log.Debug("creating dealer run loop")
	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent, stateRoomEvent:
				d.sendRoomData()
			case stateHandSettled:
				d.sendSettlement()
				d.sendRoomData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.log.Debug("terminating dealer run loop")
			return
		}
	}
}

// do runs fn in the run loop and waits for it to finish
// If the dealer has ended its shift, table.ErrRoomNotFound is returned.
func (d *Dealer) do(fn func(t *table.Table) error) error {
	result := make(chan error, 1)
	select {
	case d.execInRunLoop <- func() {
		select {
		case <-d.close:
			result <- table.ErrRoomNotFound
		default:
			result <- fn(d.table)
		}
	}:
	case <-d.close:
		return table.ErrRoomNotFound
	}

	select {
	case err := <-result:
		return err
	case <-d.close:
		select {
		case err := <-result:
			return err
		default:
			return table.ErrRoomNotFound
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	d.clients[client] = true
	d.lock.Unlock()

	d.changed(stateClientEvent)
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.changed(stateClientEvent)
		return false
	}

	return true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

func (d *Dealer) changed(s state) {
	select {
	case d.stateChanged <- s:
	default:
		d.log.WithField("state", s).Warn("state channel is full")
	}
}

// roomChanged queues a broadcast after an accepted request
// NOTE: must only be called from the run loop
func (d *Dealer) roomChanged(settlement *table.Settlement, messages ...*LogMessage) {
	d.addLogMessages(messages...)
	if settlement == nil {
		d.changed(stateRoomEvent)
		return
	}

	d.addLogMessages(settlementLogMessages(settlement)...)
	d.recordHand(settlement)
	d.changed(stateHandSettled)
}

// recordHand writes the settlement to the hand ledger without blocking the run loop
// NOTE: must only be called from the run loop
func (d *Dealer) recordHand(s *table.Settlement) {
	record := history.NewHandRecord(d.table.Code, s)
	recorder := d.pitBoss.recorder
	log := d.log.WithField("round", record.Round)

	d.recording.Add(1)
	go func() {
		defer d.recording.Done()

		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := recorder.RecordHand(ctx, record); err != nil {
			log.WithError(err).Error("could not record hand")
		}
	}()
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendRoomData() {
	res := newRoomResponse(d.table.Snapshot())
	logs := &Response{
		Key:  "logs",
		Data: append([]*LogMessage{}, d.logMessages...),
	}

	for _, client := range d.Clients() {
		client.Send(res)
		client.Send(logs)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendSettlement() {
	s := d.table.Snapshot().State.LastSettlement
	if s == nil {
		// should not happen
		d.log.Error("hand settled, but there's no settlement")
		return
	}

	for _, client := range d.Clients() {
		client.Send(&Response{
			Key:  "settlement",
			Data: s,
		})
	}
}
