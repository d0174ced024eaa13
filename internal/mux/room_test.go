package mux

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerpot-server/pkg/history"
	"pokerpot-server/pkg/room"
	"pokerpot-server/pkg/table"
)

func TestMux_getRoomCode(t *testing.T) {
	a := assert.New(t)

	m := newTestMux()
	ts := httptest.NewServer(m)
	defer ts.Close()

	created, err := m.pitBoss.CreateRoom("host", "Host", "avatar", table.DefaultSettings())
	if !a.NoError(err) {
		return
	}

	var snapshot table.Snapshot
	assertGet(t, ts, "/room/"+created.Code, &snapshot, http.StatusOK)
	a.Equal(created.Code, snapshot.Code)
	a.Equal("host", snapshot.HostID)
	a.Len(snapshot.Players, 1)

	// codes are case insensitive
	assertGet(t, ts, "/room/abcdef", &snapshot, http.StatusOK)
	a.Equal("ABCDEF", snapshot.Code)

	var errResp errorResponse
	assertGet(t, ts, "/room/ZZZZZZ", &errResp, http.StatusNotFound)
	a.Equal(http.StatusNotFound, errResp.StatusCode)
	a.Equal(table.ErrRoomNotFound.Error(), errResp.Message)
}

func TestMux_getRoomCodeHands(t *testing.T) {
	a := assert.New(t)

	recorder := history.NewMemory(10)
	m := NewMux("v1.2.3", room.NewPitBoss(room.Options{Recorder: recorder}), testAdminToken)
	ts := httptest.NewServer(m)
	defer ts.Close()

	var hands []history.HandRecord
	assertGet(t, ts, "/room/ABCDEF/hands", &hands, http.StatusOK)
	a.Len(hands, 0)

	for i := 0; i < 3; i++ {
		a.NoError(recorder.RecordHand(context.Background(), history.HandRecord{RoomCode: "ABCDEF", Round: i, Pot: 20}))
	}

	assertGet(t, ts, "/room/ABCDEF/hands", &hands, http.StatusOK)
	a.Len(hands, 3)

	assertGet(t, ts, "/room/abcdef/hands?rows=2", &hands, http.StatusOK)
	if a.Len(hands, 2) {
		a.Equal(2, hands[0].Round)
	}

	var errResp errorResponse
	assertGet(t, ts, "/room/ABCDEF/hands?rows=0", &errResp, http.StatusBadRequest)
	a.Equal("rows must be greater than zero", errResp.Message)
}

func TestMux_getStats(t *testing.T) {
	a := assert.New(t)

	m := newTestMux()
	ts := httptest.NewServer(m)
	defer ts.Close()

	var stats room.Stats
	assertGet(t, ts, "/stats", &stats, http.StatusOK)
	a.Equal(0, stats.Rooms)

	created, _ := m.pitBoss.CreateRoom("host", "Host", "avatar", table.DefaultSettings())
	_, _ = m.pitBoss.JoinRoom(created.Code, "guest", "Guest", "avatar")

	assertGet(t, ts, "/stats", &stats, http.StatusOK)
	a.Equal(1, stats.Rooms)
	a.Equal(2, stats.ConnectedPlayers)
}
