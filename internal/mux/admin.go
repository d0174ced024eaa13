package mux

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type cleanupResponse struct {
	Removed []string `json:"removed"`
	Count   int      `json:"count"`
}

func (m *Mux) postAdminCleanup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed := m.pitBoss.Cleanup()
		logrus.WithField("rooms", removed).Info("admin cleanup")

		writeJSON(w, http.StatusOK, cleanupResponse{
			Removed: removed,
			Count:   len(removed),
		})
	}
}
