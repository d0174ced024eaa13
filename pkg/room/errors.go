package room

import "pokerpot-server/pkg/table"

// ErrNotHost is returned when a host-only request comes from another player
var ErrNotHost = table.UserError("only the host can do that")

// ErrNotInRoom is returned when a room request comes from a client that has not joined a room
var ErrNotInRoom = table.UserError("you are not in a room")

// ErrAlreadyInRoom is returned when a client in a room tries to create or join another one
var ErrAlreadyInRoom = table.UserError("you are already in a room")
