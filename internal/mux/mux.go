package mux

import (
	"crypto/subtle"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
	"pokerpot-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version    string
	adminToken string
	pitBoss    *room.PitBoss

	// store for testing purposes
	adminRouter *gmux.Router
}

// NewMux returns a new HTTP mux
// If adminToken is empty, the admin endpoints are disabled.
func NewMux(version string, pitBoss *room.PitBoss, adminToken string) *Mux {
	this := &Mux{
		Router:     gmux.NewRouter(),
		version:    version,
		adminToken: adminToken,
		pitBoss:    pitBoss,
	}

	this.adminRouter = this.Router.PathPrefix("/admin").Subrouter()
	this.adminRouter.Use(this.adminMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/stats").Handler(this.getStats())
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

		rr := r.PathPrefix("/room/{code:[A-Za-z0-9]+}").Subrouter()
		rr.Methods(http.MethodGet).Path("").Handler(this.getRoomCode())
		rr.Methods(http.MethodGet).Path("/hands").Handler(this.getRoomCodeHands())
	}

	// requires the admin token
	{
		r := this.adminRouter
		r.Methods(http.MethodPost).Path("/cleanup").Handler(this.postAdminCleanup())
	}

	return this
}

func (m *Mux) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.Split(r.Header.Get("Authorization"), " ")
		if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		if m.adminToken == "" || subtle.ConstantTimeCompare([]byte(authHeader[1]), []byte(m.adminToken)) != 1 {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
