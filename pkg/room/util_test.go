package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pokerpot-server/internal/rng"
	"pokerpot-server/pkg/history"
	"pokerpot-server/pkg/table"
)

func newTestPitBoss() (*PitBoss, *history.Memory) {
	recorder := history.NewMemory(10)
	return NewPitBoss(Options{
		Recorder:  recorder,
		Generator: rng.NewSequence(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11),
		SignToken: func(roomCode, playerID string) (string, error) {
			return "token-" + roomCode + "-" + playerID, nil
		},
	}), recorder
}

// setupRoom creates a room hosted by player "1" and seats players "2".."n"
func setupRoom(t *testing.T, p *PitBoss, settings table.Settings, n int) string {
	t.Helper()

	snapshot, err := p.CreateRoom("1", "Player 1", "avatar", settings)
	if err != nil {
		t.Fatal(err)
	}

	for i := 2; i <= n; i++ {
		id := string(rune('0' + i))
		if _, err := p.JoinRoom(snapshot.Code, id, "Player "+id, "avatar"); err != nil {
			t.Fatal(err)
		}
	}

	return snapshot.Code
}

func playerByID(snapshot *table.Snapshot, id string) *table.Player {
	for _, p := range snapshot.Players {
		if p.ID == id {
			return p
		}
	}

	return nil
}

// waitFor reads the client's messages until one matches
func waitFor(t *testing.T, c *Client, match func(res *Response) bool) *Response {
	t.Helper()

	timeout := time.After(time.Second * 2)
	for {
		select {
		case msg := <-c.SendChan():
			if res, ok := msg.(*Response); ok && match(res) {
				return res
			}
		case <-timeout:
			t.Fatal("timed out waiting for message")
			return nil
		}
	}
}

func waitForKey(t *testing.T, c *Client, key, ctx string) *Response {
	t.Helper()
	return waitFor(t, c, func(res *Response) bool {
		return res.Key == key && res.Context == ctx
	})
}

func assertError(t *testing.T, c *Client, ctx string, expects string) {
	t.Helper()

	res := waitFor(t, c, func(res *Response) bool {
		return res.Context == ctx
	})
	assert.Equal(t, "error", res.Key)
	assert.Equal(t, expects, res.Value)
}
