package mux

import (
	"errors"
	"fmt"
	"strings"

	"pokerpot-server/internal/rng"
	"pokerpot-server/internal/util"
	"pokerpot-server/pkg/room"
	"pokerpot-server/pkg/table"
	"pokerpot-server/pkg/token"
)

const maxNameLength = 50

var errNameTooLong = errors.New("name cannot be longer than 50 characters")
var errAvatarRequired = errors.New("avatar is required")
var errInvalidRoomCode = errors.New("room code is invalid")
var errPlayerIDRequired = errors.New("playerId is required")
var errInvalidBalance = fmt.Errorf("balance must be between 0 and %d", table.MaxChips)
var errActionTypeRequired = errors.New("type is required")

// validatePayload checks a client message before it reaches the pit boss
// Names are trimmed in place and a blank name is replaced with a random one.
func (m *Mux) validatePayload(client *room.Client, msg *room.PayloadIn) error {
	if msg.AdditionalData == nil {
		msg.AdditionalData = room.AdditionalData{}
	}

	data := msg.AdditionalData

	switch msg.Action {
	case "createRoom":
		return validateProfile(data, false)
	case "joinRoom":
		msg.RoomCode = strings.ToUpper(strings.TrimSpace(msg.RoomCode))
		if !token.IsValid(msg.RoomCode, m.pitBoss.CodeLength()) {
			return errInvalidRoomCode
		}

		return validateProfile(data, client.Reconnected())
	case "updateBalance":
		if id, _ := data.GetString("playerId"); id == "" {
			return errPlayerIDRequired
		}

		if balance, ok := data.GetInt("balance"); !ok || balance < 0 || balance > table.MaxChips {
			return errInvalidBalance
		}
	case "playerAction":
		if kind, _ := data.GetString("type"); kind == "" {
			return errActionTypeRequired
		}
	}

	return nil
}

// validateProfile checks the name and avatar a player shows to the room
// A reconnecting player keeps the profile of their seat, so neither is required.
func validateProfile(data room.AdditionalData, reconnected bool) error {
	name, _ := data.GetString("name")
	name = strings.TrimSpace(name)
	if len(name) > maxNameLength {
		return errNameTooLong
	}

	if name == "" && !reconnected {
		name = util.GetRandomName(rng.Crypto{})
	}

	data["name"] = name

	if avatar, _ := data.GetString("avatar"); avatar == "" && !reconnected {
		return errAvatarRequired
	}

	return nil
}
