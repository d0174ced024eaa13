package room

import (
	"pokerpot-server/pkg/table"
)

// Response is the envelope for every message sent to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// NewErrorResponse returns a response carrying the error message
func NewErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newRoomResponse(snapshot *table.Snapshot) *Response {
	return &Response{
		Key:  "room",
		Data: snapshot,
	}
}

// Session is sent to a client after it creates or joins a room
// Token can be presented when reconnecting to keep the same seat.
type Session struct {
	PlayerID string          `json:"playerId"`
	Token    string          `json:"token,omitempty"`
	Room     *table.Snapshot `json:"room"`
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	RoomCode       string         `json:"roomCode"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	}

	return 0, false
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// GetStringSlice returns a slice of strings
func (a AdditionalData) GetStringSlice(key string) ([]string, bool) {
	switch slice := a[key].(type) {
	case []string:
		return slice, true
	case []interface{}:
		strs := make([]string, len(slice))
		for i, val := range slice {
			s, ok := val.(string)
			if !ok {
				return nil, false
			}

			strs[i] = s
		}
		return strs, true
	}

	return nil, false
}

// GetData returns a nested object
func (a AdditionalData) GetData(key string) (AdditionalData, bool) {
	switch val := a[key].(type) {
	case AdditionalData:
		return val, true
	case map[string]interface{}:
		return AdditionalData(val), true
	}

	return nil, false
}

// SettingsPatch reads the settings keys into a patch
// Keys that are missing or of the wrong type are left out of the patch.
func (a AdditionalData) SettingsPatch() table.SettingsPatch {
	var patch table.SettingsPatch
	if v, ok := a.GetInt("initialBalance"); ok {
		patch.InitialBalance = &v
	}

	if v, ok := a.GetInt("initialBetAmount"); ok {
		patch.InitialBetAmount = &v
	}

	if v, ok := a.GetInt("maxPlayers"); ok {
		patch.MaxPlayers = &v
	}

	if v, ok := a.GetBool("hostDeclaresWinners"); ok {
		patch.HostDeclaresWinners = &v
	}

	return patch
}
