package interfaces

import (
	"context"
	"net/http"
)

// Server interface defines the methods for a server implementation.
type Server interface {
	AddRoute(route string, handler http.Handler) error
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}
