package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/flagmaster/pkg/api/handlers"
	"github.com/cbodonnell/flagmaster/pkg/api/middleware"
	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/stats"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port int
	TLS  *TLSConfig
	// AllowOrigin is sent as Access-Control-Allow-Origin, defaulting to "*"
	AllowOrigin string
	Provider    countries.Provider
	Store       stats.Store
}

// NewRouter builds the API routes without binding a listener.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	allowOrigin := opts.AllowOrigin
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewCORSMiddleware(allowOrigin))

	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet)
	r.HandleFunc("/countries", handlers.HandleGetCountries(opts.Provider)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/stats/{mode}", handlers.HandleGetStats(opts.Store)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/stats/{mode}", handlers.HandlePutStats(opts.Store)).Methods(http.MethodPut)

	return gzhttp.GzipHandler(r)
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer and blocks until it is stopped
func (s *APIServer) Start() error {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return fmt.Errorf("API server error: %v", err)
	}
	return nil
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
