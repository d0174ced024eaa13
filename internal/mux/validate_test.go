package mux

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerpot-server/pkg/room"
)

func TestMux_validatePayload(t *testing.T) {
	a := assert.New(t)
	m := newTestMux()

	fresh := room.NewClient(nil, m.pitBoss, "player", false)
	returning := room.NewClient(nil, m.pitBoss, "player", true)

	msg := &room.PayloadIn{Action: "createRoom", AdditionalData: room.AdditionalData{"name": "  Bob  ", "avatar": "cat"}}
	a.NoError(m.validatePayload(fresh, msg))
	a.Equal("Bob", msg.AdditionalData["name"])

	msg = &room.PayloadIn{Action: "createRoom", AdditionalData: room.AdditionalData{"avatar": "cat"}}
	a.NoError(m.validatePayload(fresh, msg))
	a.NotEmpty(msg.AdditionalData["name"])

	msg = &room.PayloadIn{Action: "createRoom", AdditionalData: room.AdditionalData{"name": "Bob"}}
	a.Equal(errAvatarRequired, m.validatePayload(fresh, msg))

	msg = &room.PayloadIn{Action: "createRoom", AdditionalData: room.AdditionalData{"name": strings.Repeat("x", 51), "avatar": "cat"}}
	a.Equal(errNameTooLong, m.validatePayload(fresh, msg))

	msg = &room.PayloadIn{Action: "joinRoom", RoomCode: " abcdef ", AdditionalData: room.AdditionalData{"avatar": "cat"}}
	a.NoError(m.validatePayload(fresh, msg))
	a.Equal("ABCDEF", msg.RoomCode)

	msg = &room.PayloadIn{Action: "joinRoom", RoomCode: "ABC"}
	a.Equal(errInvalidRoomCode, m.validatePayload(fresh, msg))

	msg = &room.PayloadIn{Action: "joinRoom", RoomCode: "ABCDEF"}
	a.NoError(m.validatePayload(returning, msg))
	a.Equal("", msg.AdditionalData["name"], "a returning player keeps their name")

	a.Equal(errPlayerIDRequired, m.validatePayload(fresh, &room.PayloadIn{Action: "updateBalance", AdditionalData: room.AdditionalData{"balance": float64(10)}}))
	a.Equal(errInvalidBalance, m.validatePayload(fresh, &room.PayloadIn{Action: "updateBalance", AdditionalData: room.AdditionalData{"playerId": "2", "balance": float64(-1)}}))
	a.Equal(errInvalidBalance, m.validatePayload(fresh, &room.PayloadIn{Action: "updateBalance", AdditionalData: room.AdditionalData{"playerId": "2"}}))
	a.Equal(errInvalidBalance, m.validatePayload(fresh, &room.PayloadIn{Action: "updateBalance", AdditionalData: room.AdditionalData{"playerId": "2", "balance": float64(4e18)}}))
	a.NoError(m.validatePayload(fresh, &room.PayloadIn{Action: "updateBalance", AdditionalData: room.AdditionalData{"playerId": "2", "balance": float64(0)}}))

	a.Equal(errActionTypeRequired, m.validatePayload(fresh, &room.PayloadIn{Action: "playerAction"}))
	a.NoError(m.validatePayload(fresh, &room.PayloadIn{Action: "playerAction", AdditionalData: room.AdditionalData{"type": "call"}}))

	a.NoError(m.validatePayload(fresh, &room.PayloadIn{Action: "startGame"}))
}
