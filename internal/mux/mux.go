package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"pokerrank/internal/config"
)

type ctxKey int

const (
	ctxLogKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string

	// maxHands is the upper bound on hands in a single /best request
	maxHands int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		maxHands: config.Instance().MaxHands,
	}

	this.Router.Use(this.requestIDMiddleware)

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/rank").Handler(this.postRank())
	r.Methods(http.MethodPost).Path("/best").Handler(this.postBest())

	return this
}

// requestIDMiddleware tags the request, and its log entry, with an X-Request-ID
func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", id)

		log := logrus.WithField("requestID", id)
		newCtx := context.WithValue(r.Context(), ctxLogKey, log)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func logFromRequest(r *http.Request) *logrus.Entry {
	if log, ok := r.Context().Value(ctxLogKey).(*logrus.Entry); ok {
		return log
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
