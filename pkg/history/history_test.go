package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pokerpot-server/pkg/table"
)

var cbg = context.Background()

func settlement(round, pot int) *table.Settlement {
	return &table.Settlement{
		Round: round,
		Pot:   pot,
		Phase: table.PhaseShowdown,
		Payouts: []*table.Payout{
			{PlayerID: "1", Amount: pot},
		},
		Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewHandRecord(t *testing.T) {
	a := assert.New(t)

	s := settlement(3, 120)
	r := NewHandRecord("ABC123", s)
	a.Equal("ABC123", r.RoomCode)
	a.Equal(3, r.Round)
	a.Equal(120, r.Pot)
	a.Equal("showdown", r.Phase)
	a.Equal(s.Time, r.Created)

	s.Payouts[0].Amount = 1
	a.Equal(120, r.Payouts[0].Amount, "payouts are copied")
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	assert.NoError(t, r.RecordHand(cbg, HandRecord{}))

	hands, err := r.Hands(cbg, "ABC123", 10)
	assert.NoError(t, err)
	assert.Empty(t, hands)
}

func TestMemory(t *testing.T) {
	a := assert.New(t)

	m := NewMemory(3)
	for i := 1; i <= 5; i++ {
		a.NoError(m.RecordHand(cbg, NewHandRecord("ABC123", settlement(i, i*10))))
	}
	a.NoError(m.RecordHand(cbg, NewHandRecord("XYZ789", settlement(1, 10))))

	hands, err := m.Hands(cbg, "ABC123", 10)
	a.NoError(err)
	if a.Len(hands, 3) {
		a.Equal(5, hands[0].Round)
		a.Equal(4, hands[1].Round)
		a.Equal(3, hands[2].Round)
		a.Equal(int64(5), hands[0].ID)
	}

	hands, _ = m.Hands(cbg, "ABC123", 1)
	a.Len(hands, 1)

	m.Forget("ABC123")
	hands, _ = m.Hands(cbg, "ABC123", 10)
	a.Empty(hands)

	hands, _ = m.Hands(cbg, "XYZ789", 10)
	a.Len(hands, 1)
}
