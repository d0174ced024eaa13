package holdem

import (
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokerpot-server/pkg/table"
)

// setupTable seats one player per balance, with ids "1", "2", ...
func setupTable(settings table.Settings, balances ...int) *table.Table {
	tbl := table.New("TEST01", settings)
	for i, balance := range balances {
		id := strconv.Itoa(i + 1)
		p, _, err := tbl.Join(id, "Player "+id, "")
		if err != nil {
			panic(err)
		}

		p.Balance = balance
	}

	return tbl
}

func setupGame(balances ...int) (*Engine, *table.Table) {
	return setupGameWithSettings(table.DefaultSettings(), balances...)
}

func setupGameWithSettings(settings table.Settings, balances ...int) (*Engine, *table.Table) {
	e := NewEngine(logrus.StandardLogger())
	tbl := setupTable(settings, balances...)
	if _, err := e.StartGame(tbl); err != nil {
		panic(err)
	}

	return e, tbl
}

func player(tbl *table.Table, id string) *table.Player {
	p, ok := tbl.Player(id)
	if !ok {
		panic("player not found: " + id)
	}

	return p
}

// chipTotal is every chip at the table, balances plus the pot
func chipTotal(tbl *table.Table) int {
	total := tbl.State.Pot
	for _, p := range tbl.Players() {
		total += p.Balance
	}

	return total
}

func assertTurn(t *testing.T, tbl *table.Table, playerID string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, playerID, tbl.State.CurrentTurnPlayerID, msgAndArgs...)

	active := tbl.ActivePlayers()
	if assert.True(t, tbl.State.CurrentTurn >= 0 && tbl.State.CurrentTurn < len(active), msgAndArgs...) {
		assert.Equal(t, playerID, active[tbl.State.CurrentTurn].ID, msgAndArgs...)
	}
}

func assertAction(t *testing.T, e *Engine, tbl *table.Table, playerID string, action Action, msgAndArgs ...interface{}) *table.Settlement {
	t.Helper()

	before := chipTotal(tbl)
	s, err := e.ProcessAction(tbl, playerID, action)
	assert.NoError(t, err, msgAndArgs...)
	assert.Equal(t, before, chipTotal(tbl), "chips are conserved")

	return s
}

func assertActionFailed(t *testing.T, e *Engine, tbl *table.Table, playerID string, action Action, expectedErr error, msgAndArgs ...interface{}) {
	t.Helper()

	before := tbl.Snapshot()
	s, err := e.ProcessAction(tbl, playerID, action)
	assert.Equal(t, expectedErr, err, msgAndArgs...)
	assert.Nil(t, s)
	assert.Equal(t, before, tbl.Snapshot(), "a rejected action leaves the table unchanged")
}
