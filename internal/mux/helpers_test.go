package mux

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerpot-server/internal/jwt"
	"pokerpot-server/internal/rng"
	"pokerpot-server/pkg/room"
)

const testAdminToken = "admin-token"

func newTestPitBoss() *room.PitBoss {
	return room.NewPitBoss(room.Options{
		Generator: rng.NewSequence(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11),
		SignToken: jwt.Sign,
	})
}

func newTestMux() *Mux {
	jwt.SetSecret("test-secret")
	return NewMux("v1.2.3", newTestPitBoss(), testAdminToken)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int, bearer ...string) *http.Response {
	t.Helper()

	if len(bearer) > 0 {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", bearer[0]))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int, bearer ...string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode, bearer...)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int, bearer ...string) *http.Response {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case nil:
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return nil
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	return assertDo(t, req, respObj, statusCode, bearer...)
}
