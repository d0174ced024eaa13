package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	pitBoss *PitBoss

	// playerID and roomCode are only touched by the connection's read goroutine
	playerID    string
	roomCode    string
	reconnected bool
}

// NewClient returns a new client object
// If reconnected is true, playerID came from a reconnect token.
func NewClient(conn *websocket.Conn, pitBoss *PitBoss, playerID string, reconnected bool) *Client {
	return &Client{
		send:        make(chan interface{}, 256),
		Close:       make(chan string),
		Conn:        conn,
		pitBoss:     pitBoss,
		playerID:    playerID,
		reconnected: reconnected,
	}
}

// Send sends a message to the web client
// Returns false if the client's buffer is full and the message was dropped
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send buffer is full, dropping message")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// PlayerID returns the id the client plays under
func (c *Client) PlayerID() string {
	return c.playerID
}

// RoomCode returns the room the client is in, if any
func (c *Client) RoomCode() string {
	return c.roomCode
}

// Reconnected returns true if the client restored its identity from a token
func (c *Client) Reconnected() bool {
	return c.reconnected
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.playerID, c.roomCode)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.pitBoss == nil {
		logrus.WithField("msg", msg).Warn("received message, but pit boss not found")
		return
	}

	c.pitBoss.ReceivedMessage(c, msg)
}
