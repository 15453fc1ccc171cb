package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_requestIDMiddleware(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	resp := assertGetWithResp(t, ts, "/health", nil, http.StatusOK)
	if assert.NotNil(t, resp) {
		_, err := uuid.Parse(resp.Header.Get("X-Request-ID"))
		assert.NoError(t, err)
	}

	// a valid id is passed through
	id := uuid.New().String()
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set("X-Request-ID", id)
	resp = assertDo(t, req, nil, http.StatusOK)
	if assert.NotNil(t, resp) {
		assert.Equal(t, id, resp.Header.Get("X-Request-ID"))
	}

	// anything else is replaced
	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set("X-Request-ID", "not-a-uuid")
	resp = assertDo(t, req, nil, http.StatusOK)
	if assert.NotNil(t, resp) {
		assert.NotEqual(t, "not-a-uuid", resp.Header.Get("X-Request-ID"))
	}
}

func Test_logFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotNil(t, logFromRequest(r))
}
