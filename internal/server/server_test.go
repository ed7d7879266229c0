package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haguru/credkeeper/internal/interfaces"
	"github.com/haguru/credkeeper/pkg/zerolog"
)

var _ interfaces.Server = (*Server)(nil)

func TestServer_AddRoute(t *testing.T) {
	s := NewServer("localhost", "0", zerolog.NewNopLogger())
	assert.Equal(t, "localhost:0", s.server.Addr)

	err := s.AddRoute("/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	rr = httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	assert.Error(t, s.AddRoute("", http.NotFoundHandler()))
	assert.Error(t, s.AddRoute("/nil", nil))
}

func TestServer_ShutdownStopsListen(t *testing.T) {
	s := NewServer("127.0.0.1", "0", zerolog.NewNopLogger())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}
