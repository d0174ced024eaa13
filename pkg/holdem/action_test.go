package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFromString(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"fold", "check", "call", "raise", "blind", "seen"} {
		k, err := KindFromString(s)
		a.NoError(err)
		a.Equal(s, string(k))
		a.NotEmpty(k.String())
	}

	k, err := KindFromString("bet")
	a.EqualError(err, "unknown action: bet")
	a.Equal(Kind(""), k)
	a.Equal("", Kind("bet").String())
}

func TestKind_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(KindSeen)
	assert.NoError(t, err)
	assert.Equal(t, `{"id":"seen","name":"Seen"}`, string(b))
}

func TestNewAction(t *testing.T) {
	a := assert.New(t)

	expects := map[string]Action{
		"fold":  Fold{},
		"check": Check{},
		"call":  Call{},
		"raise": Raise{Amount: 25},
		"blind": Blind{},
		"seen":  Seen{},
	}

	for s, expected := range expects {
		action, err := NewAction(s, 25)
		a.NoError(err)
		a.Equal(expected, action)
		a.Equal(Kind(s), action.Kind())
	}

	_, err := NewAction("allin", 0)
	a.Error(err)
}

func TestLogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("folded", LogMessage(KindFold, 0))
	a.Equal("checked", LogMessage(KindCheck, 0))
	a.Equal("called ${20}", LogMessage(KindCall, 20))
	a.Equal("raised to ${40}", LogMessage(KindRaise, 40))
	a.Equal("played blind ${10}", LogMessage(KindBlind, 10))
	a.Equal("saw their cards", LogMessage(KindSeen, 0))
	a.Equal("", LogMessage(Kind("x"), 0))
	a.Equal("won ${130}", WinMessage(130))
}
