package mux

import (
	"errors"
	"fmt"
	"net/http"

	"pokerrank/pkg/deck"
	"pokerrank/pkg/poker"
)

type rankRequest struct {
	Hand string `json:"hand"`
}

type rankResponse struct {
	Hand  string      `json:"hand"`
	Score poker.Score `json:"score"`
}

func (m *Mux) postRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rankRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		h, err := deck.HandFromString(req.Hand)
		if err != nil {
			writeHandError(w, r, err)
			return
		}

		score := poker.Rank(h)
		logFromRequest(r).WithField("hand", h.String()).WithField("category", score.Category.String()).Debug("ranked hand")

		writeJSON(w, r, http.StatusOK, rankResponse{
			Hand:  h.String(),
			Score: score,
		})
	}
}

type bestRequest struct {
	Hands []string `json:"hands"`
}

type bestResponse struct {
	Index   int         `json:"index"`
	Hand    string      `json:"hand"`
	Score   poker.Score `json:"score"`
	Winners []int       `json:"winners"`
}

func (m *Mux) postBest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bestRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if m.maxHands > 0 && len(req.Hands) > m.maxHands {
			writeJSONError(w, r, http.StatusBadRequest, fmt.Errorf("cannot compare more than %d hands", m.maxHands))
			return
		}

		hands := make([]deck.Hand, len(req.Hands))
		for i, s := range req.Hands {
			h, err := deck.HandFromString(s)
			if err != nil {
				writeHandError(w, r, fmt.Errorf("hand %d: %w", i, err))
				return
			}

			hands[i] = h
		}

		winners, err := poker.Winners(hands)
		if err != nil {
			writeHandError(w, r, err)
			return
		}

		best := hands[winners[0]]
		logFromRequest(r).WithField("hands", len(hands)).WithField("winners", len(winners)).Debug("picked best hand")

		writeJSON(w, r, http.StatusOK, bestResponse{
			Index:   winners[0],
			Hand:    best.String(),
			Score:   poker.Rank(best),
			Winners: winners,
		})
	}
}

// writeHandError treats bad cards and bad hands as the caller's fault, everything else as a 500
func writeHandError(w http.ResponseWriter, r *http.Request, err error) {
	var parseErr *deck.ParseError
	var inputErr *deck.InputError
	if errors.As(err, &parseErr) || errors.As(err, &inputErr) {
		writeJSONError(w, r, http.StatusBadRequest, err)
		return
	}

	writeJSONError(w, r, http.StatusInternalServerError, err)
}
