package room

import (
	"time"

	"github.com/google/uuid"
	"pokerpot-server/pkg/holdem"
	"pokerpot-server/pkg/table"
)

const logMessageLimit = 25

// LogMessage is a line in the room's activity log
// If PlayerIDs is empty, it's a general statement, otherwise the client renders it as "{player} did X"
type LogMessage struct {
	UUID      string    `json:"uuid"`
	PlayerIDs []string  `json:"playerIds"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
}

func newLogMessage(playerID string, message string) *LogMessage {
	var playerIDs []string
	if playerID != "" {
		playerIDs = []string{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   message,
		Time:      time.Now(),
	}
}

func actionLogMessage(record *table.ActionRecord) *LogMessage {
	return newLogMessage(record.PlayerID, record.Message)
}

func settlementLogMessages(s *table.Settlement) []*LogMessage {
	if len(s.Payouts) == 0 {
		return []*LogMessage{newLogMessage("", "the pot was forfeited")}
	}

	messages := make([]*LogMessage, 0, len(s.Payouts))
	for _, p := range s.Payouts {
		messages = append(messages, newLogMessage(p.PlayerID, holdem.WinMessage(p.Amount)))
	}

	return messages
}

// addLogMessages adds log messages, keeping only the most recent
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages ...*LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}
