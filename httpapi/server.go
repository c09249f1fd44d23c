// Package httpapi exposes the negotiated-congestion router as a single
// stdlib net/http handler: POST /route accepts a textual graph plus a
// routing plan and returns the routed plan and per-iteration metrics as
// JSON. spec.md lists an HTTP surface among the out-of-scope external
// collaborators and gives it no wire format; this is a minimal,
// deliberately narrow addition so the repository is operable as a
// service, not only a CLI. No pack example wires an HTTP framework (see
// DESIGN.md), so this builds directly on net/http.ServeMux.
package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Server wraps a configured http.Handler and the logger its handlers
// share, mirroring negotiate.Router's injected-logger discipline.
type Server struct {
	mux    *http.ServeMux
	logger zerolog.Logger
}

// NewServer builds a Server with its routes registered.
func NewServer(logger zerolog.Logger) *Server {
	s := &Server{mux: http.NewServeMux(), logger: logger}
	s.mux.HandleFunc("/route", s.handleRoute)

	return s
}

// Handler returns the Server's http.Handler, ready for http.ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.mux
}
