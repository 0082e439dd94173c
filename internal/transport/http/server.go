package http

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"

	"pharmaguard/functions/internal/config"
	"pharmaguard/functions/internal/handler"
	"pharmaguard/functions/internal/metrics"
)

// Server exposes one function in of-watchdog mode: the request body on "/"
// is the invocation payload, the response body is the function's JSON.
type Server struct {
	fn  handler.Func
	srv *http.Server
}

func NewServer(cfg *config.Config, fn handler.Func) *Server {
	s := &Server{fn: fn}

	mux := http.NewServeMux()
	mux.Handle("/", NewJSONMiddleware().Wrap(http.HandlerFunc(s.handleInvoke)))
	mux.HandleFunc("/healthz", handleHealthz)
	mux.HandleFunc("/metrics", metrics.HandleMetrics)

	s.srv = &http.Server{
		Addr:    net.JoinHostPort("", cfg.HTTPPort),
		Handler: mux,
	}
	return s
}

func (s *Server) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the root handler, for tests driving the mux directly.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	req, err := io.ReadAll(r.Body)
	if err != nil {
		msg, _ := json.Marshal(map[string]string{"error": err.Error()})
		w.Write(msg)
		return
	}

	// Invocation responses are always 200 with the outcome in-band,
	// matching the stdio channel.
	w.Write(s.fn(r.Context(), req))
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
