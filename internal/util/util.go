package util

import (
	"github.com/google/uuid"
)

// NewPlayerID returns a new connection-scoped player id
func NewPlayerID() string {
	return uuid.New().String()
}
