package room

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerpot-server/pkg/table"
)

func TestDealer_AddClient(t *testing.T) {
	d := NewDealer(NewPitBoss(Options{}), table.New("ABCDEF", table.DefaultSettings()))
	c := NewClient(nil, nil, "1", false)
	c2 := NewClient(nil, nil, "2", false)

	d.AddClient(c)
	d.AddClient(c2)
	assert.Len(t, d.Clients(), 2)

	assert.False(t, d.RemoveClient(c))
	assert.True(t, d.RemoveClient(c2))
}

func TestDealer_do(t *testing.T) {
	a := assert.New(t)

	d := NewDealer(NewPitBoss(Options{}), table.New("ABCDEF", table.DefaultSettings()))
	d.StartShift()

	var code string
	a.NoError(d.do(func(t *table.Table) error {
		code = t.Code
		return nil
	}))
	a.Equal("ABCDEF", code)

	errTest := errors.New("test")
	a.Equal(errTest, d.do(func(*table.Table) error {
		return errTest
	}))

	d.EndShift()
	d.EndShift()
	a.Equal(table.ErrRoomNotFound, d.do(func(*table.Table) error {
		t.Error("should not run after the shift ended")
		return nil
	}))
}

func TestDealer_broadcast(t *testing.T) {
	a := assert.New(t)

	p, _ := newTestPitBoss()
	defer p.EndShift()

	code := setupRoom(t, p, table.DefaultSettings(), 1)
	d, err := p.dealer(code)
	a.NoError(err)

	c := NewClient(nil, p, "1", false)
	d.AddClient(c)

	res := waitFor(t, c, func(res *Response) bool {
		return res.Key == "room"
	})
	a.Equal(code, res.Data.(*table.Snapshot).Code)

	res = waitFor(t, c, func(res *Response) bool {
		return res.Key == "logs"
	})
	a.Empty(res.Data.([]*LogMessage))
}

func TestDealer_addLogMessages(t *testing.T) {
	d := NewDealer(NewPitBoss(Options{}), table.New("ABCDEF", table.DefaultSettings()))
	for i := 0; i < logMessageLimit+5; i++ {
		d.addLogMessages(newLogMessage("1", "checked"))
	}

	assert.Len(t, d.logMessages, logMessageLimit)
}
