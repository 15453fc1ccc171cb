package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/bmizerany/assert"
	"pokerrank/internal/config"
)

func TestHealthHandler(t *testing.T) {
	ts := httptest.NewServer(NewMux("v0.3.1-pokerrank"))
	defer ts.Close()

	var expects healthResponse
	assertGet(t, ts, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v0.3.1-pokerrank", expects.Version)
	assert.Equal(t, config.Instance().MaxHands, expects.MaxHands)
}

func TestHealthHandler_maxHands(t *testing.T) {
	m := NewMux("")
	m.maxHands = 7

	ts := httptest.NewServer(m)
	defer ts.Close()

	var expects healthResponse
	assertGet(t, ts, "/health", &expects, 200)
	assert.Equal(t, "", expects.Version)
	assert.Equal(t, 7, expects.MaxHands)
}
