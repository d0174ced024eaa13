package history

import (
	"context"
	"sync"
	"time"

	"pokerpot-server/pkg/table"
)

// HandRecord is a settled hand
type HandRecord struct {
	ID       int64           `json:"id"`
	RoomCode string          `json:"roomCode"`
	Round    int             `json:"round"`
	Pot      int             `json:"pot"`
	Phase    string          `json:"phase"`
	Payouts  []*table.Payout `json:"payouts"`
	Created  time.Time       `json:"created"`
}

// NewHandRecord builds a record from a settlement
func NewHandRecord(roomCode string, s *table.Settlement) HandRecord {
	payouts := make([]*table.Payout, len(s.Payouts))
	for i, p := range s.Payouts {
		cp := *p
		payouts[i] = &cp
	}

	return HandRecord{
		RoomCode: roomCode,
		Round:    s.Round,
		Pot:      s.Pot,
		Phase:    s.Phase.String(),
		Payouts:  payouts,
		Created:  s.Time,
	}
}

// Recorder stores settled hands
type Recorder interface {
	RecordHand(ctx context.Context, record HandRecord) error

	// Hands returns up to limit hands for the room, newest first
	Hands(ctx context.Context, roomCode string, limit int) ([]HandRecord, error)
}

// Forgetter is implemented by recorders that can drop a room's hands once the room is closed
type Forgetter interface {
	Forget(roomCode string)
}

// Nop discards every hand
type Nop struct{}

// RecordHand does nothing
func (Nop) RecordHand(context.Context, HandRecord) error {
	return nil
}

// Hands always returns an empty list
func (Nop) Hands(context.Context, string, int) ([]HandRecord, error) {
	return []HandRecord{}, nil
}

// Memory keeps the most recent hands per room in memory
type Memory struct {
	limit int
	hands map[string][]HandRecord
	ids   int64
	lock  sync.Mutex
}

// NewMemory returns a recorder that keeps up to limit hands per room
func NewMemory(limit int) *Memory {
	return &Memory{
		limit: limit,
		hands: make(map[string][]HandRecord),
	}
}

// RecordHand stores the hand, dropping the oldest one for the room if needed
func (m *Memory) RecordHand(_ context.Context, record HandRecord) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.ids++
	record.ID = m.ids

	hands := append(m.hands[record.RoomCode], record)
	if count := len(hands); m.limit > 0 && count > m.limit {
		hands = hands[count-m.limit:]
	}

	m.hands[record.RoomCode] = hands
	return nil
}

// Hands returns the stored hands for the room, newest first
func (m *Memory) Hands(_ context.Context, roomCode string, limit int) ([]HandRecord, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	stored := m.hands[roomCode]
	records := make([]HandRecord, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		if limit > 0 && len(records) == limit {
			break
		}

		records = append(records, stored[i])
	}

	return records, nil
}

var _ Forgetter = (*Memory)(nil)

// Forget drops every hand stored for the room
func (m *Memory) Forget(roomCode string) {
	m.lock.Lock()
	delete(m.hands, roomCode)
	m.lock.Unlock()
}
