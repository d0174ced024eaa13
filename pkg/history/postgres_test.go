package history

import (
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"pokerpot-server/pkg/db"
)

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("POKERPOT_PG_DSN")
	if dsn == "" {
		t.Skip("POKERPOT_PG_DSN is not set")
	}

	a := assert.New(t)
	if !a.NoError(db.LoadInstance(dsn)) {
		return
	}
	a.NoError(db.Migrate("../../sql"))

	p := NewPostgres(db.Instance())
	code := strings.ToUpper(uuid.New().String()[:8])

	a.NoError(p.RecordHand(cbg, NewHandRecord(code, settlement(1, 50))))
	a.NoError(p.RecordHand(cbg, NewHandRecord(code, settlement(2, 70))))

	hands, err := p.Hands(cbg, code, 1)
	a.NoError(err)
	if a.Len(hands, 1) {
		a.Equal(2, hands[0].Round)
		a.Equal(70, hands[0].Pot)
		a.Equal("showdown", hands[0].Phase)
		a.Equal(70, hands[0].Payouts[0].Amount)
	}
}
