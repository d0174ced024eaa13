package history

import (
	"context"
	"database/sql"
	"encoding/json"

	"pokerpot-server/pkg/db"
)

// Postgres writes hands to the `hands` table
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a recorder backed by dbh
func NewPostgres(dbh *sql.DB) *Postgres {
	return &Postgres{db: dbh}
}

const handsColumns = `id, room_code, round, pot, phase, payouts, created`

// RecordHand inserts the hand
func (p *Postgres) RecordHand(ctx context.Context, record HandRecord) error {
	payouts, err := json.Marshal(record.Payouts)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO hands (room_code, round, pot, phase, payouts, created)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = p.db.ExecContext(ctx, query, record.RoomCode, record.Round, record.Pot, record.Phase, payouts, record.Created.UTC())
	return err
}

// Hands returns the most recent hands for the room
func (p *Postgres) Hands(ctx context.Context, roomCode string, limit int) ([]HandRecord, error) {
	const query = `
SELECT ` + handsColumns + `
FROM hands
WHERE room_code = $1
ORDER BY created DESC, id DESC
LIMIT $2`

	rows, err := p.db.QueryContext(ctx, query, roomCode, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]HandRecord, 0)
	for rows.Next() {
		record, err := handByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func handByRow(row db.Scanner) (HandRecord, error) {
	var h HandRecord
	var payouts []byte

	if err := row.Scan(&h.ID, &h.RoomCode, &h.Round, &h.Pot, &h.Phase, &payouts, &h.Created); err != nil {
		return HandRecord{}, err
	}

	if payouts != nil {
		if err := json.Unmarshal(payouts, &h.Payouts); err != nil {
			return HandRecord{}, err
		}
	}

	return h, nil
}
