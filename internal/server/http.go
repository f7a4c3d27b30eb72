package server

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"

	"github.com/forknroll/go-boilerplate-base/internal/config"
	"github.com/forknroll/go-boilerplate-base/internal/logger"
)

const requestTimeoutMessage = `{"error":"Service Unavailable"}`

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	if cfg.RequestTimeout > 0 {
		handler = jsonTimeout(http.TimeoutHandler(handler, cfg.RequestTimeout, requestTimeoutMessage))
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			ErrorLog:          stdlog.New(logger.Child("net/http"), "", 0),
		},
		logger: logger,
	}
}

// jsonTimeout labels the body http.TimeoutHandler writes on expiry as JSON.
// A 503 that already carries a Content-Type is left untouched.
func jsonTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(timeoutWriter{w}, r)
	})
}

type timeoutWriter struct {
	http.ResponseWriter
}

func (w timeoutWriter) WriteHeader(statusCode int) {
	if statusCode == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w timeoutWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// listen binds the configured address so bind errors surface before serving.
func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", h.server.Addr, err)
	}
	h.listener = ln
	return nil
}

// serve blocks until the server is shut down. A graceful shutdown is not
// reported as an error.
func (h *httpServer) serve() error {
	if h.listener == nil {
		return errServerNotListening
	}

	h.logger.Info().Str("address", h.listener.Addr().String()).Msg("HTTP server listening")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
