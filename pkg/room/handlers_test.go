package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerpot-server/pkg/holdem"
	"pokerpot-server/pkg/table"
)

func TestPitBoss_ReceivedMessage(t *testing.T) {
	a := assert.New(t)

	p, _ := newTestPitBoss()
	defer p.EndShift()

	host := NewClient(nil, p, "1", false)
	guest := NewClient(nil, p, "2", false)

	host.ReceivedMessage(&PayloadIn{Action: "startGame", Context: "c0"})
	assertError(t, host, "c0", ErrNotInRoom.Error())

	host.ReceivedMessage(&PayloadIn{
		Action:  "createRoom",
		Context: "c1",
		AdditionalData: AdditionalData{
			"name":   "Host",
			"avatar": "cat",
			"settings": map[string]interface{}{
				"initialBetAmount": float64(5),
			},
		},
	})

	res := waitForKey(t, host, "session", "c1")
	session := res.Data.(*Session)
	a.Equal("1", session.PlayerID)
	a.Equal("token-ABCDEF-1", session.Token)
	a.Equal(5, session.Room.Settings.InitialBetAmount)
	a.Equal("ABCDEF", host.RoomCode())

	host.ReceivedMessage(&PayloadIn{Action: "createRoom", Context: "c2"})
	assertError(t, host, "c2", ErrAlreadyInRoom.Error())

	guest.ReceivedMessage(&PayloadIn{Action: "joinRoom", RoomCode: "ZZZZZZ", Context: "c3"})
	assertError(t, guest, "c3", table.ErrRoomNotFound.Error())

	guest.ReceivedMessage(&PayloadIn{
		Action:         "joinRoom",
		RoomCode:       "ABCDEF",
		Context:        "c4",
		AdditionalData: AdditionalData{"name": "Guest", "avatar": "dog"},
	})
	res = waitForKey(t, guest, "session", "c4")
	a.Len(res.Data.(*Session).Room.Players, 2)

	// the host is told about the new player
	waitFor(t, host, func(res *Response) bool {
		s, ok := res.Data.(*table.Snapshot)
		return res.Key == "room" && ok && len(s.Players) == 2
	})

	guest.ReceivedMessage(&PayloadIn{Action: "startGame", Context: "c5"})
	assertError(t, guest, "c5", ErrNotHost.Error())

	host.ReceivedMessage(&PayloadIn{Action: "dance", Context: "c6"})
	assertError(t, host, "c6", "unknown action: dance")

	host.ReceivedMessage(&PayloadIn{Action: "startGame", Context: "c7"})
	waitForKey(t, host, "status", "c7")

	host.ReceivedMessage(&PayloadIn{
		Action:         "playerAction",
		Context:        "c8",
		AdditionalData: AdditionalData{"type": "bet"},
	})
	assertError(t, host, "c8", "unknown action: bet")

	guest.ReceivedMessage(&PayloadIn{
		Action:         "playerAction",
		Context:        "c9",
		AdditionalData: AdditionalData{"type": "fold"},
	})
	assertError(t, guest, "c9", holdem.ErrNotYourTurn.Error())

	host.ReceivedMessage(&PayloadIn{
		Action:         "playerAction",
		Context:        "c10",
		AdditionalData: AdditionalData{"type": "raise", "amount": float64(20)},
	})
	waitForKey(t, host, "status", "c10")

	host.ReceivedMessage(&PayloadIn{
		Action:         "updateBalance",
		Context:        "c11",
		AdditionalData: AdditionalData{"playerId": "2", "balance": float64(10)},
	})
	assertError(t, host, "c11", table.ErrGameInProgress.Error())

	// the guest drops, the host takes the pot
	p.ClientDisconnected(guest)
	a.Equal("", guest.RoomCode())

	s, err := p.Room("ABCDEF")
	a.NoError(err)
	a.False(s.State.InProgress)
	a.False(playerByID(s, "2").IsConnected)
	a.Equal(1010, playerByID(s, "1").Balance)

	waitFor(t, host, func(res *Response) bool {
		return res.Key == "settlement"
	})

	host.ReceivedMessage(&PayloadIn{
		Action:         "updateSettings",
		Context:        "c12",
		AdditionalData: AdditionalData{"maxPlayers": float64(4), "hostDeclaresWinners": true},
	})
	waitForKey(t, host, "status", "c12")

	s, _ = p.Room("ABCDEF")
	a.Equal(4, s.Settings.MaxPlayers)
	a.True(s.Settings.HostDeclaresWinners)

	host.ReceivedMessage(&PayloadIn{
		Action:         "declareWinners",
		Context:        "c13",
		AdditionalData: AdditionalData{"winners": []interface{}{"1"}},
	})
	assertError(t, host, "c13", holdem.ErrNoGameInProgress.Error())

	host.ReceivedMessage(&PayloadIn{Action: "leaveRoom", Context: "c14"})
	waitForKey(t, host, "status", "c14")

	_, err = p.Room("ABCDEF")
	a.Equal(table.ErrRoomNotFound, err)

	host.ReceivedMessage(&PayloadIn{Action: "leaveRoom", Context: "c15"})
	assertError(t, host, "c15", ErrNotInRoom.Error())
}

func TestAdditionalData(t *testing.T) {
	a := assert.New(t)

	data := AdditionalData{
		"string":  "value",
		"int":     float64(5),
		"bool":    true,
		"strings": []interface{}{"a", "b"},
		"mixed":   []interface{}{"a", float64(1)},
		"nested":  map[string]interface{}{"initialBalance": float64(500), "maxPlayers": "x"},
	}

	s, ok := data.GetString("string")
	a.True(ok)
	a.Equal("value", s)

	i, ok := data.GetInt("int")
	a.True(ok)
	a.Equal(5, i)

	_, ok = data.GetInt("string")
	a.False(ok)

	b, ok := data.GetBool("bool")
	a.True(ok)
	a.True(b)

	strs, ok := data.GetStringSlice("strings")
	a.True(ok)
	a.Equal([]string{"a", "b"}, strs)

	_, ok = data.GetStringSlice("mixed")
	a.False(ok)

	nested, ok := data.GetData("nested")
	a.True(ok)

	patch := nested.SettingsPatch()
	if a.NotNil(patch.InitialBalance) {
		a.Equal(500, *patch.InitialBalance)
	}
	a.Nil(patch.MaxPlayers)
	a.Nil(patch.InitialBetAmount)
	a.Nil(patch.HostDeclaresWinners)

	var empty AdditionalData
	a.Equal(table.SettingsPatch{}, empty.SettingsPatch())
}
