package mux

import (
	"errors"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
	"pokerpot-server/pkg/table"
)

func roomCode(r *http.Request) string {
	return strings.ToUpper(gmux.Vars(r)["code"])
}

func (m *Mux) getRoomCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := m.pitBoss.Room(roomCode(r))
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

func (m *Mux) getRoomCodeHands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := parseRowsOption(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hands, err := m.pitBoss.Hands(r.Context(), roomCode(r), rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, hands)
	}
}

func (m *Mux) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.pitBoss.Stats())
	}
}

// if err is table.ErrRoomNotFound, treat as 404, otherwise treat as a 500
func writeMaybeNotFoundError(w http.ResponseWriter, err error) {
	if errors.Is(err, table.ErrRoomNotFound) {
		writeJSONError(w, http.StatusNotFound, err)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}
