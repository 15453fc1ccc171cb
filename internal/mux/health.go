package mux

import "net/http"

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	MaxHands int    `json:"maxHands"`
}

// getHealth reports the version and the /best hand limit the server was started with
func (m *Mux) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, healthResponse{
			Status:   "OK",
			Version:  m.version,
			MaxHands: m.maxHands,
		})
	}
}
