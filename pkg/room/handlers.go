package room

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"pokerpot-server/pkg/holdem"
	"pokerpot-server/pkg/table"
)

// ReceivedMessage is called when a client sends a message to the server
// It runs on the client's read goroutine and answers the client directly. Room updates
// are broadcast by the room's dealer.
func (p *PitBoss) ReceivedMessage(c *Client, msg *PayloadIn) {
	res, err := p.handleMessage(c, msg)
	if err != nil {
		p.log.WithError(err).WithFields(logrus.Fields{
			"client": c.String(),
			"action": msg.Action,
		}).Info("could not perform action")

		c.Send(NewErrorResponse(msg.Context, err))
		return
	}

	res.Context = msg.Context
	c.Send(res)
}

func (p *PitBoss) handleMessage(c *Client, msg *PayloadIn) (*Response, error) {
	data := msg.AdditionalData

	switch msg.Action {
	case "createRoom":
		if c.roomCode != "" {
			return nil, ErrAlreadyInRoom
		}

		overrides, _ := data.GetData("settings")
		settings := p.defaultSettings.Apply(overrides.SettingsPatch())
		name, _ := data.GetString("name")
		avatar, _ := data.GetString("avatar")

		snapshot, err := p.CreateRoom(c.playerID, name, avatar, settings)
		if err != nil {
			return nil, err
		}

		return p.attach(c, snapshot)
	case "joinRoom":
		if c.roomCode != "" && c.roomCode != msg.RoomCode {
			return nil, ErrAlreadyInRoom
		}

		name, _ := data.GetString("name")
		avatar, _ := data.GetString("avatar")

		snapshot, err := p.JoinRoom(msg.RoomCode, c.playerID, name, avatar)
		if err != nil {
			return nil, err
		}

		return p.attach(c, snapshot)
	case "leaveRoom":
		code := c.roomCode
		if code == "" {
			return nil, ErrNotInRoom
		}

		p.detach(c)
		if _, _, err := p.LeaveRoom(code, c.playerID); err != nil {
			return nil, err
		}

		return OK(), nil
	}

	if c.roomCode == "" {
		return nil, ErrNotInRoom
	}

	var err error
	switch msg.Action {
	case "startGame":
		_, err = p.StartGame(c.roomCode, c.playerID)
	case "playerAction":
		kind, _ := data.GetString("type")
		amount, _ := data.GetInt("amount")

		var action holdem.Action
		if action, err = holdem.NewAction(kind, amount); err != nil {
			return nil, err
		}

		_, err = p.Act(c.roomCode, c.playerID, action)
	case "updateBalance":
		playerID, _ := data.GetString("playerId")
		balance, _ := data.GetInt("balance")
		_, err = p.UpdatePlayerBalance(c.roomCode, c.playerID, playerID, balance)
	case "updateSettings":
		overrides, ok := data.GetData("settings")
		if !ok {
			overrides = data
		}

		_, err = p.UpdateSettings(c.roomCode, c.playerID, overrides.SettingsPatch())
	case "declareWinners":
		winners, _ := data.GetStringSlice("winners")
		_, err = p.DeclareWinners(c.roomCode, c.playerID, winners)
	default:
		return nil, table.UserError(fmt.Sprintf("unknown action: %s", msg.Action))
	}

	if err != nil {
		return nil, err
	}

	return OK(), nil
}

// ClientDisconnected is called when a client's connection closes
// A player whose connection drops leaves their room but keeps their seat for a reconnect.
func (p *PitBoss) ClientDisconnected(c *Client) {
	code := c.roomCode
	if code == "" {
		return
	}

	p.detach(c)
	if _, _, err := p.LeaveRoom(code, c.playerID); err != nil && err != table.ErrRoomNotFound {
		p.log.WithError(err).WithField("client", c.String()).Warn("could not leave room after disconnect")
	}
}

// attach subscribes the client to the room's broadcasts and builds the session reply
func (p *PitBoss) attach(c *Client, snapshot *table.Snapshot) (*Response, error) {
	d, err := p.dealer(snapshot.Code)
	if err != nil {
		return nil, err
	}

	if c.roomCode != snapshot.Code {
		c.roomCode = snapshot.Code
		d.AddClient(c)
	}

	token, err := p.signToken(snapshot.Code, c.playerID)
	if err != nil {
		p.log.WithError(err).WithField("client", c.String()).Warn("could not sign reconnect token")
	}

	return &Response{
		Key: "session",
		Data: &Session{
			PlayerID: c.playerID,
			Token:    token,
			Room:     snapshot,
		},
	}, nil
}

func (p *PitBoss) detach(c *Client) {
	if d, err := p.dealer(c.roomCode); err == nil {
		d.RemoveClient(c)
	}

	c.roomCode = ""
}
